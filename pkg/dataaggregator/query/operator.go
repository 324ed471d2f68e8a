package query

type Operator struct {
	Name string
}

// Operators lists operators, optionally narrowed by a case insensitive search
// over name and main routes.
type Operators struct {
	Search string
}
