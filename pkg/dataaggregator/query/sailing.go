package query

import "github.com/setoferry/setoferry/pkg/ctdf"

type Sailings struct {
	Query ctdf.QuerySailings
}

type PopularRoutes struct {
	Routes []ctdf.PopularRoute
}
