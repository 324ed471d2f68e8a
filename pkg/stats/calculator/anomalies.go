package calculator

import (
	"fmt"
	"strings"

	"github.com/setoferry/setoferry/pkg/ctdf"
)

// Anomaly is a sailing field that could not be used by a derived
// computation. Anomalies never stop a sailing from being searched.
type Anomaly struct {
	Index int
	Field string
	Value string

	DeparturePort string
	ArrivalPort   string
}

func (a Anomaly) String() string {
	return fmt.Sprintf("sailing %d (%s → %s): unusable %s %q", a.Index, a.DeparturePort, a.ArrivalPort, a.Field, a.Value)
}

// FindAnomalies reports unparseable times and adult fares that are missing or
// carry digits that do not read as a yen amount. Text only fares such as
// "お問い合わせください" are valid enquiry prices. Index is 1-based in
// timetable order.
func FindAnomalies(sailings []*ctdf.Sailing) []Anomaly {
	anomalies := []Anomaly{}

	for i, sailing := range sailings {
		anomaly := func(field string, value string) Anomaly {
			return Anomaly{
				Index:         i + 1,
				Field:         field,
				Value:         value,
				DeparturePort: sailing.DeparturePort,
				ArrivalPort:   sailing.ArrivalPort,
			}
		}

		if _, ok := sailing.DepartureClockTime(); !ok {
			anomalies = append(anomalies, anomaly("departure_time", sailing.DepartureTime))
		}
		if _, ok := sailing.ArrivalClockTime(); !ok {
			anomalies = append(anomalies, anomaly("arrival_time", sailing.ArrivalTime))
		}
		if unreadableFare(sailing.AdultFare) {
			anomalies = append(anomalies, anomaly("adult_fare", sailing.AdultFare))
		}
	}

	return anomalies
}

func unreadableFare(fare string) bool {
	if strings.TrimSpace(fare) == "" {
		return true
	}
	if !strings.ContainsAny(fare, "0123456789") {
		return false
	}
	_, ok := ctdf.ParseFare(fare)
	return !ok
}
