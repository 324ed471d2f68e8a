package ctdf

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const MinutesPerDay = 24 * 60

var ErrInvalidClockTime = errors.New("clock time must be H:MM or HH:MM on a 24 hour clock")

// ClockTime is a time of day expressed as minutes after midnight (0-1439).
// Timetable strings are converted to it at the boundary so comparisons never
// depend on zero padding.
type ClockTime int

func ParseClockTime(value string) (ClockTime, error) {
	value = strings.TrimSpace(value)
	// Full width colons turn up in hand edited Japanese timetables
	value = strings.ReplaceAll(value, "：", ":")

	hourString, minuteString, found := strings.Cut(value, ":")
	if !found || len(hourString) == 0 || len(hourString) > 2 || len(minuteString) != 2 {
		return 0, ErrInvalidClockTime
	}

	hour, err := strconv.Atoi(hourString)
	if err != nil || hour < 0 || hour > 23 || !isDigits(hourString) {
		return 0, ErrInvalidClockTime
	}
	minute, err := strconv.Atoi(minuteString)
	if err != nil || minute < 0 || minute > 59 || !isDigits(minuteString) {
		return 0, ErrInvalidClockTime
	}

	return ClockTime(hour*60 + minute), nil
}

func (c ClockTime) Hour() int {
	return int(c) / 60
}

func (c ClockTime) Minute() int {
	return int(c) % 60
}

// Add shifts the clock by minutes, wrapping around midnight.
func (c ClockTime) Add(minutes int) ClockTime {
	return ClockTime(((int(c)+minutes)%MinutesPerDay + MinutesPerDay) % MinutesPerDay)
}

func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour(), c.Minute())
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
