package ctdf

import (
	"strconv"
	"strings"
)

// ParseFare pulls the yen amount out of a display fare such as "¥1,220" or
// "大人 520円". Every non digit is dropped. Strings without digits, or with more
// digits than fit in an int, are not a price.
func ParseFare(fare string) (int, bool) {
	var digits strings.Builder
	for _, r := range fare {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}

	if digits.Len() == 0 {
		return 0, false
	}

	amount, err := strconv.Atoi(digits.String())
	if err != nil {
		return 0, false
	}

	return amount, true
}

// FareSummary is one row of the published fare table for a route.
type FareSummary struct {
	DeparturePort string `json:"departure_port"`
	ArrivalPort   string `json:"arrival_port"`
	Company       string `json:"company"`
	AdultFare     string `json:"adult_fare"`
	ChildFare     string `json:"child_fare"`
	Notes         string `json:"notes,omitempty"`
}
