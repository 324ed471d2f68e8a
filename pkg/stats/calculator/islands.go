package calculator

import (
	"github.com/setoferry/setoferry/pkg/ctdf"
)

type IslandsStats struct {
	Total int

	BicycleRentals  int
	BusSchedules    int
	OtherTransports int
}

func GetIslands(timetable *ctdf.Timetable) IslandsStats {
	stats := IslandsStats{
		Total: len(timetable.Islands),
	}

	for _, island := range timetable.Islands {
		stats.BicycleRentals += len(island.BicycleRentals)
		stats.BusSchedules += len(island.BusSchedules)
		stats.OtherTransports += len(island.OtherTransports)
	}

	return stats
}
