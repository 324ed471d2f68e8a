package ctdf

import (
	"golang.org/x/exp/slices"
)

// RouteKey identifies a departure to arrival path. Two sailings with the same
// key belong to the same ItineraryGroup regardless of operator.
type RouteKey struct {
	Departure string
	Arrival   string
}

func (k RouteKey) String() string {
	return k.Departure + "→" + k.Arrival
}

type ItineraryGroup struct {
	RouteKey  string `json:"routeKey"`
	Departure string `json:"departure"`
	Arrival   string `json:"arrival"`

	Sailings  []*Sailing `json:"sailings"`
	Companies []string   `json:"companies"`
	Notes     []string   `json:"notes"`

	// nil when no member fare contains a price
	MinPrice      *int `json:"minPrice"`
	MinChildPrice *int `json:"minChildPrice"`

	TotalSchedules int  `json:"totalSchedules"`
	DateLimited    bool `json:"dateLimited"`
}

func newItineraryGroup(key RouteKey) *ItineraryGroup {
	return &ItineraryGroup{
		RouteKey:  key.String(),
		Departure: key.Departure,
		Arrival:   key.Arrival,
		Sailings:  []*Sailing{},
		Companies: []string{},
		Notes:     []string{},
	}
}

func (g *ItineraryGroup) add(sailing *Sailing) {
	g.Sailings = append(g.Sailings, sailing)
	g.TotalSchedules++

	if !slices.Contains(g.Companies, sailing.Company) {
		g.Companies = append(g.Companies, sailing.Company)
	}
	if sailing.Notes != "" && !slices.Contains(g.Notes, sailing.Notes) {
		g.Notes = append(g.Notes, sailing.Notes)
	}

	g.MinPrice = minFare(g.MinPrice, sailing.AdultFare)
	g.MinChildPrice = minFare(g.MinChildPrice, sailing.ChildFare)

	if sailing.IsDateLimited() {
		g.DateLimited = true
	}
}

func (g *ItineraryGroup) sortSailings() {
	slices.SortStableFunc(g.Sailings, compareDepartures)
}

func minFare(current *int, fare string) *int {
	amount, ok := ParseFare(fare)
	if !ok {
		return current
	}
	if current == nil || amount < *current {
		return &amount
	}
	return current
}

// compareDepartures orders by departure clock time. Sailings with an
// unparseable departure time sort after every parseable one.
func compareDepartures(a, b *Sailing) int {
	aDeparture, aOK := a.DepartureClockTime()
	bDeparture, bOK := b.DepartureClockTime()

	switch {
	case aOK && bOK:
		return int(aDeparture) - int(bDeparture)
	case aOK:
		return -1
	case bOK:
		return 1
	default:
		return 0
	}
}

// GenerateItineraryGroupsFromSailings groups sailings by departure and arrival
// port. Groups appear in the order their path is first seen and the sailings
// within each group are sorted by departure time.
func GenerateItineraryGroupsFromSailings(sailings []*Sailing) []*ItineraryGroup {
	groups := []*ItineraryGroup{}
	groupsByKey := map[RouteKey]*ItineraryGroup{}

	for _, sailing := range sailings {
		key := sailing.RouteKey()

		group, exists := groupsByKey[key]
		if !exists {
			group = newItineraryGroup(key)
			groupsByKey[key] = group
			groups = append(groups, group)
		}

		group.add(sailing)
	}

	for _, group := range groups {
		group.sortSailings()
	}

	return groups
}
