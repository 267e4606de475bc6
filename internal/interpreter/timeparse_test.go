package interpreter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var clockBase = time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)

func TestParseClock(t *testing.T) {
	cases := []struct {
		text string
		hour int
		min  int
	}{
		{"09:00", 9, 0},
		{"9:05", 9, 5},
		{"17:30", 17, 30},
		{"09:00:45", 9, 0}, // seconds are zeroed
		{"9:00 AM", 9, 0},
		{"9:00 PM", 21, 0},
		{"12:00 PM", 12, 0}, // noon stays 12
		{"12:30 AM", 0, 30}, // midnight wraps to 0
		{"9:15am", 9, 15},
		{"0.375", 9, 0},         // fractional-day serial = 09:00
		{"0.729166666667", 17, 30}, // 17:30 as a serial
	}

	for _, c := range cases {
		got, ok := ParseClock(c.text, clockBase)
		require.True(t, ok, "ParseClock(%q)", c.text)
		assert.Equal(t, c.hour, got.Hour(), "hour of %q", c.text)
		assert.Equal(t, c.min, got.Minute(), "minute of %q", c.text)
		assert.Equal(t, 0, got.Second(), "second of %q", c.text)
		// Anchored to the base calendar date
		assert.Equal(t, clockBase.Year(), got.Year())
		assert.Equal(t, clockBase.Month(), got.Month())
		assert.Equal(t, clockBase.Day(), got.Day())
	}
}

func TestParseClock_Invalid(t *testing.T) {
	for _, text := range []string{"", "lunch", "9h30", "--:--"} {
		_, ok := ParseClock(text, clockBase)
		assert.False(t, ok, "ParseClock(%q) should fail", text)
	}
}
