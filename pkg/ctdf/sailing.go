package ctdf

import (
	"encoding/json"
)

// OperatingDaysDateLimited marks a sailing that only runs during specific
// calendar windows or events rather than year round.
const OperatingDaysDateLimited = "期間限定"

// Sailing is one scheduled departure to arrival voyage. Sailings are reference
// data: they are built once by the importer and never modified afterwards.
type Sailing struct {
	DeparturePort string `json:"departure_port"`
	ArrivalPort   string `json:"arrival_port"`
	DepartureTime string `json:"departure_time"`
	ArrivalTime   string `json:"arrival_time"`

	Company  string `json:"company"`
	ShipType string `json:"ship_type"`

	AllowsVehicles bool `json:"allows_vehicles"`
	AllowsBicycles bool `json:"allows_bicycles"`

	AdultFare string `json:"adult_fare"`
	ChildFare string `json:"child_fare"`

	OperatingDays string `json:"operating_days"`
	Notes         string `json:"notes,omitempty"`
}

func (s *Sailing) DepartureClockTime() (ClockTime, bool) {
	clock, err := ParseClockTime(s.DepartureTime)
	return clock, err == nil
}

func (s *Sailing) ArrivalClockTime() (ClockTime, bool) {
	clock, err := ParseClockTime(s.ArrivalTime)
	return clock, err == nil
}

func (s *Sailing) Duration() SailingDuration {
	return CalculateSailingDuration(s.DepartureTime, s.ArrivalTime)
}

func (s *Sailing) IsDateLimited() bool {
	return s.OperatingDays == OperatingDaysDateLimited
}

func (s *Sailing) RouteKey() RouteKey {
	return RouteKey{Departure: s.DeparturePort, Arrival: s.ArrivalPort}
}

// MarshalJSON adds the derived duration next to the stored fields.
func (s Sailing) MarshalJSON() ([]byte, error) {
	type sailing Sailing

	return json.Marshal(struct {
		sailing
		Duration SailingDuration `json:"duration"`
	}{
		sailing:  sailing(s),
		Duration: s.Duration(),
	})
}
