package ctdf

import (
	"encoding/json"
	"fmt"
	"time"

	iso8601 "github.com/senseyeio/duration"
)

const UnknownDurationDisplay = "unknown duration"

// SailingDuration is the elapsed time of a single sailing. Known is false when
// either clock time could not be parsed.
type SailingDuration struct {
	Minutes int
	Known   bool
}

// CalculateSailingDuration returns the elapsed minutes between two HH:MM clock
// times. An arrival at or before the departure clock time is taken to be on the
// following day, so 23:50 to 00:10 is 20 minutes and equal times are 0.
func CalculateSailingDuration(departureTime string, arrivalTime string) SailingDuration {
	departure, err := ParseClockTime(departureTime)
	if err != nil {
		return SailingDuration{}
	}
	arrival, err := ParseClockTime(arrivalTime)
	if err != nil {
		return SailingDuration{}
	}

	return SailingDuration{
		Minutes: ElapsedMinutes(departure, arrival),
		Known:   true,
	}
}

func ElapsedMinutes(departure ClockTime, arrival ClockTime) int {
	return ((int(arrival)-int(departure))%MinutesPerDay + MinutesPerDay) % MinutesPerDay
}

func (d SailingDuration) Duration() time.Duration {
	return time.Duration(d.Minutes) * time.Minute
}

func (d SailingDuration) String() string {
	if !d.Known {
		return UnknownDurationDisplay
	}

	hours := d.Minutes / 60
	minutes := d.Minutes % 60
	if hours == 0 {
		return fmt.Sprintf("%d minutes", minutes)
	}

	return fmt.Sprintf("%d hours %d minutes", hours, minutes)
}

// ISO8601 renders the duration as e.g. PT1H5M. Unknown durations render empty.
func (d SailingDuration) ISO8601() string {
	if !d.Known {
		return ""
	}

	return iso8601.Duration{TH: d.Minutes / 60, TM: d.Minutes % 60}.String()
}

func (d SailingDuration) MarshalJSON() ([]byte, error) {
	var minutes *int
	if d.Known {
		minutes = &d.Minutes
	}

	return json.Marshal(struct {
		Minutes *int   `json:"minutes"`
		Display string `json:"display"`
		ISO8601 string `json:"iso8601,omitempty"`
	}{
		Minutes: minutes,
		Display: d.String(),
		ISO8601: d.ISO8601(),
	})
}
