package query

type Fares struct {
	Departure string
	Arrival   string
}
