package query

type Stop struct {
	Name string
}

// Stops lists ports, optionally narrowed by a case insensitive search over
// name, island and address.
type Stops struct {
	Search string
}
