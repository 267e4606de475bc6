package interpreter

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Clock text: 1-2 digit hour, 2-digit minute, optional seconds, optional AM/PM.
var clockPattern = regexp.MustCompile(`(?i)(\d{1,2}):(\d{2})(?::(\d{2}))?\s*(AM|PM)?`)

// ParseClock converts free-form punch text into a point in time on the
// calendar date of base. Text that is neither clock-shaped nor a numeric
// fractional-day serial reports false. Seconds are always zeroed.
func ParseClock(text string, base time.Time) (time.Time, bool) {
	if text == "" {
		return time.Time{}, false
	}

	m := clockPattern.FindStringSubmatch(text)
	if m == nil {
		serial, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
		if err != nil {
			return time.Time{}, false
		}
		totalMinutes := int(math.Round(serial * 24 * 60))
		return atClock(base, totalMinutes/60, totalMinutes%60), true
	}

	hour, _ := strconv.Atoi(m[1])
	minute, _ := strconv.Atoi(m[2])

	switch strings.ToUpper(m[4]) {
	case "PM":
		if hour != 12 {
			hour += 12
		}
	case "AM":
		if hour == 12 {
			hour = 0
		}
	}

	return atClock(base, hour, minute), true
}

func atClock(base time.Time, hour, minute int) time.Time {
	return time.Date(base.Year(), base.Month(), base.Day(), hour, minute, 0, 0, base.Location())
}
