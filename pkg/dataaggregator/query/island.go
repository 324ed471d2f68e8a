package query

import "github.com/setoferry/setoferry/pkg/ctdf"

type Islands struct{}

// Island finds one island by its name in either language.
type Island struct {
	Name string
}

type IslandSummaries struct{}

type BicycleRentals struct {
	Query ctdf.QueryBicycleRentals
}
