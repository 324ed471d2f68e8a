package calculator

import (
	"time"

	"github.com/setoferry/setoferry/pkg/ctdf"
)

type TimetableStats struct {
	Version  string
	LoadedAt time.Time

	Sailings  SailingsStats
	Operators OperatorsStats
	Stops     StopsStats
	Fares     int
	Islands   IslandsStats
}

func GetTimetableStats(timetable *ctdf.Timetable) TimetableStats {
	return TimetableStats{
		Version:   timetable.Version,
		LoadedAt:  timetable.LoadedAt,
		Sailings:  GetSailings(timetable.Sailings),
		Operators: GetOperators(timetable),
		Stops:     GetStops(timetable),
		Fares:     len(timetable.Fares),
		Islands:   GetIslands(timetable),
	}
}
