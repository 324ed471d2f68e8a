package ctdf

import (
	"golang.org/x/exp/slices"
)

const popularRouteDepartureCount = 3

type PopularRoute struct {
	Departure   string `yaml:"departure" json:"departure" validate:"required"`
	Arrival     string `yaml:"arrival" json:"arrival" validate:"required"`
	Description string `yaml:"description" json:"description"`
}

type PopularRouteSummary struct {
	PopularRoute

	TotalSchedules int      `json:"totalSchedules"`
	Companies      []string `json:"companies"`
	NextDepartures []string `json:"nextDepartures"`
	MinPrice       *int     `json:"minPrice"`
}

// GeneratePopularRouteSummaries looks up each popular route in the timetable
// and reports how it is served.
func GeneratePopularRouteSummaries(timetable *Timetable, routes []PopularRoute) []*PopularRouteSummary {
	summaries := []*PopularRouteSummary{}

	for _, route := range routes {
		query := NewQuerySailings()
		query.Departure = route.Departure
		query.Arrival = route.Arrival

		summary := &PopularRouteSummary{
			PopularRoute:   route,
			Companies:      []string{},
			NextDepartures: []string{},
		}

		sailings := FilterSailings(timetable.Sailings, query)
		for _, group := range GenerateItineraryGroupsFromSailings(sailings) {
			summary.TotalSchedules += group.TotalSchedules
			for _, company := range group.Companies {
				if !slices.Contains(summary.Companies, company) {
					summary.Companies = append(summary.Companies, company)
				}
			}
			if group.MinPrice != nil && (summary.MinPrice == nil || *group.MinPrice < *summary.MinPrice) {
				minPrice := *group.MinPrice
				summary.MinPrice = &minPrice
			}
		}

		sorted := make([]*Sailing, len(sailings))
		copy(sorted, sailings)
		slices.SortStableFunc(sorted, compareDepartures)

		for _, sailing := range sorted {
			if len(summary.NextDepartures) == popularRouteDepartureCount {
				break
			}
			summary.NextDepartures = append(summary.NextDepartures, sailing.DepartureTime)
		}

		summaries = append(summaries, summary)
	}

	return summaries
}
