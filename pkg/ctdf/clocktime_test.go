package ctdf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClockTime(t *testing.T) {
	tests := []struct {
		input    string
		expected ClockTime
	}{
		{"00:00", 0},
		{"08:25", 8*60 + 25},
		{"9:05", 9*60 + 5},
		{"23:59", 23*60 + 59},
		{" 12:30 ", 12*60 + 30},
		{"７:00", -1},
		{"07：30", 7*60 + 30},
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			clock, err := ParseClockTime(test.input)
			if test.expected < 0 {
				assert.ErrorIs(t, err, ErrInvalidClockTime)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, test.expected, clock)
		})
	}
}

func TestParseClockTimeRejectsMalformed(t *testing.T) {
	for _, input := range []string{"", "0800", "24:00", "12:60", "12:5", "123:00", "-1:00", "ab:cd", "12:+5", "未定"} {
		t.Run(input, func(t *testing.T) {
			_, err := ParseClockTime(input)
			assert.ErrorIs(t, err, ErrInvalidClockTime)
		})
	}
}

func TestClockTimeString(t *testing.T) {
	clock, err := ParseClockTime("9:05")
	require.NoError(t, err)

	assert.Equal(t, "09:05", clock.String())
	assert.Equal(t, 9, clock.Hour())
	assert.Equal(t, 5, clock.Minute())
}

func TestClockTimeAddWraps(t *testing.T) {
	assert.Equal(t, ClockTime(10), ClockTime(MinutesPerDay-10).Add(20))
	assert.Equal(t, ClockTime(MinutesPerDay-10), ClockTime(10).Add(-20))
	assert.Equal(t, ClockTime(30), ClockTime(30).Add(MinutesPerDay))
}
