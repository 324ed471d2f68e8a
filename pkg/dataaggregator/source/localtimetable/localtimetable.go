package localtimetable

import (
	"errors"
	"reflect"

	"github.com/setoferry/setoferry/pkg/ctdf"
	"github.com/setoferry/setoferry/pkg/dataaggregator/query"
	"github.com/setoferry/setoferry/pkg/dataaggregator/source"
	"github.com/setoferry/setoferry/pkg/dataaggregator/source/cachedresults"
	"github.com/setoferry/setoferry/pkg/stats/calculator"
)

var ErrTimetableNotLoaded = errors.New("timetable has not been loaded")

// Source answers every lookup from the in memory timetable held in Store.
type Source struct {
	Store *ctdf.TimetableStore
	Cache *cachedresults.Cache
}

func (s Source) GetName() string {
	return "Local Timetable"
}

func (s Source) Supports() []reflect.Type {
	return []reflect.Type{
		reflect.TypeOf(ctdf.SailingSearchResults{}),
		reflect.TypeOf([]*ctdf.PopularRouteSummary{}),
		reflect.TypeOf(ctdf.Operator{}),
		reflect.TypeOf([]*ctdf.Operator{}),
		reflect.TypeOf(ctdf.Stop{}),
		reflect.TypeOf([]*ctdf.Stop{}),
		reflect.TypeOf([]*ctdf.FareSummary{}),
		reflect.TypeOf(ctdf.Island{}),
		reflect.TypeOf([]*ctdf.Island{}),
		reflect.TypeOf([]*ctdf.IslandSummary{}),
		reflect.TypeOf([]*ctdf.BicycleRentalResult{}),
		reflect.TypeOf(ctdf.Timetable{}),
		reflect.TypeOf(calculator.TimetableStats{}),
	}
}

func (s Source) Lookup(q any) (interface{}, error) {
	timetable := s.Store.Load()
	if timetable == nil {
		return nil, ErrTimetableNotLoaded
	}

	switch q := q.(type) {
	case query.Sailings:
		return s.SailingsQuery(timetable, q)
	case query.PopularRoutes:
		return ctdf.GeneratePopularRouteSummaries(timetable, q.Routes), nil
	case query.Operator:
		return s.OperatorQuery(timetable, q)
	case query.Operators:
		return s.OperatorsQuery(timetable, q)
	case query.Stop:
		return s.StopQuery(timetable, q)
	case query.Stops:
		return s.StopsQuery(timetable, q)
	case query.Fares:
		return timetable.SearchFares(q.Departure, q.Arrival), nil
	case query.Islands:
		return timetable.Islands, nil
	case query.Island:
		return s.IslandQuery(timetable, q)
	case query.IslandSummaries:
		return timetable.GetIslandSummaries(), nil
	case query.BicycleRentals:
		return timetable.SearchBicycleRentals(q.Query), nil
	case query.Timetable:
		return timetable, nil
	case query.TimetableStats:
		stats := calculator.GetTimetableStats(timetable)
		return &stats, nil
	default:
		return nil, source.ErrUnsupportedSource
	}
}
