package ctdf

import (
	"sync/atomic"
	"time"
)

// Timetable is one fully loaded dataset. It is never modified once built; a
// reload builds a new Timetable and swaps it into the TimetableStore.
type Timetable struct {
	Version    string
	LoadedAt   time.Time
	DataSource *DataSource

	Sailings  []*Sailing
	Operators []*Operator
	Stops     []*Stop
	Fares     []*FareSummary
	Islands   []*Island
}

func (t *Timetable) GetOperator(name string) *Operator {
	for _, operator := range t.Operators {
		if operator.Name == name {
			return operator
		}
	}
	return nil
}

func (t *Timetable) GetStop(name string) *Stop {
	for _, stop := range t.Stops {
		if stop.Name == name {
			return stop
		}
	}
	return nil
}

func (t *Timetable) SearchOperators(search string) []*Operator {
	operators := []*Operator{}
	for _, operator := range t.Operators {
		if operator.MatchesSearch(search) {
			operators = append(operators, operator)
		}
	}
	return operators
}

func (t *Timetable) SearchStops(search string) []*Stop {
	stops := []*Stop{}
	for _, stop := range t.Stops {
		if stop.MatchesSearch(search) {
			stops = append(stops, stop)
		}
	}
	return stops
}

// SearchFares filters fare summaries by case insensitive departure and arrival
// port substrings. Empty values match everything.
func (t *Timetable) SearchFares(departure string, arrival string) []*FareSummary {
	fares := []*FareSummary{}
	for _, fare := range t.Fares {
		if departure != "" && !containsFold(fare.DeparturePort, departure) {
			continue
		}
		if arrival != "" && !containsFold(fare.ArrivalPort, arrival) {
			continue
		}
		fares = append(fares, fare)
	}
	return fares
}

// GetIsland finds an island by its name in either language.
func (t *Timetable) GetIsland(name string) *Island {
	for _, island := range t.Islands {
		if island.MatchesName(name) {
			return island
		}
	}
	return nil
}

func (t *Timetable) GetIslandSummaries() []*IslandSummary {
	summaries := make([]*IslandSummary, 0, len(t.Islands))
	for _, island := range t.Islands {
		summaries = append(summaries, island.GetSummary())
	}
	return summaries
}

// SearchBicycleRentals lists matching rentals in island order, then file order
// within each island.
func (t *Timetable) SearchBicycleRentals(query QueryBicycleRentals) []*BicycleRentalResult {
	results := []*BicycleRentalResult{}
	for _, island := range t.Islands {
		if query.Island != "" && !island.MatchesName(query.Island) {
			continue
		}

		for _, rental := range island.BicycleRentals {
			if !query.Matches(rental) {
				continue
			}

			results = append(results, &BicycleRentalResult{
				IslandName:   island.Name,
				IslandNameEn: island.NameEn,
				Rental:       rental,
			})
		}
	}
	return results
}

// TimetableStore publishes the current Timetable to concurrent readers.
type TimetableStore struct {
	current atomic.Pointer[Timetable]
}

func NewTimetableStore(timetable *Timetable) *TimetableStore {
	store := &TimetableStore{}
	if timetable != nil {
		store.current.Store(timetable)
	}
	return store
}

// Load returns the current timetable, or nil before the first load.
func (s *TimetableStore) Load() *Timetable {
	return s.current.Load()
}

// Swap replaces the current timetable and returns the previous one.
func (s *TimetableStore) Swap(timetable *Timetable) *Timetable {
	return s.current.Swap(timetable)
}
