package calculator

import (
	"github.com/setoferry/setoferry/pkg/ctdf"
)

type SailingsStats struct {
	Total int

	Routes         int
	DateLimited    int
	AllowsVehicles int
	AllowsBicycles int

	ShipTypes map[string]int

	Anomalies int
}

func GetSailings(sailings []*ctdf.Sailing) SailingsStats {
	stats := SailingsStats{
		Total: len(sailings),
		ShipTypes: CountAggregate(sailings, func(sailing *ctdf.Sailing) string {
			return sailing.ShipType
		}),
		Anomalies: len(FindAnomalies(sailings)),
	}

	routes := map[ctdf.RouteKey]bool{}

	for _, sailing := range sailings {
		routes[sailing.RouteKey()] = true

		if sailing.IsDateLimited() {
			stats.DateLimited++
		}
		if sailing.AllowsVehicles {
			stats.AllowsVehicles++
		}
		if sailing.AllowsBicycles {
			stats.AllowsBicycles++
		}
	}

	stats.Routes = len(routes)

	return stats
}
