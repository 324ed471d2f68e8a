package calculator

import (
	"github.com/setoferry/setoferry/pkg/ctdf"
)

type StopsStats struct {
	Total int

	// Sailings departing from or arriving at each port
	Sailings map[string]int
}

func GetStops(timetable *ctdf.Timetable) StopsStats {
	stats := StopsStats{
		Total:    len(timetable.Stops),
		Sailings: map[string]int{},
	}

	for _, sailing := range timetable.Sailings {
		stats.Sailings[sailing.DeparturePort]++

		if sailing.ArrivalPort != sailing.DeparturePort {
			stats.Sailings[sailing.ArrivalPort]++
		}
	}

	return stats
}
