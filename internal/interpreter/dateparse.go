package interpreter

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// DateOrder controls how the positional fallback reads delimited date text.
// Day-first matches the source sheets this system was built for; month-first
// is available for sheets exported with US-style dates.
type DateOrder int

const (
	DayFirst DateOrder = iota
	MonthFirst
)

// Spreadsheet serials count days since 1899-12-30, which sits 25569 days
// before the Unix epoch date.
const serialEpochOffsetDays = 25569

// Free-form layouts tried before the positional fallback.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
	"2006/01/02",
	"January 2, 2006",
	"Jan 2, 2006",
	"2 January 2006",
}

var dateDelimiter = regexp.MustCompile(`[/\-.]`)

// ParseDate converts a heterogeneous date cell into a calendar date.
// Accepted shapes: a native time.Time, a numeric spreadsheet serial, or
// text (free-form layouts first, then exactly three delimited numeric parts
// read positionally per order). Anything else reports false.
func ParseDate(value any, order DateOrder) (time.Time, bool) {
	switch v := value.(type) {
	case time.Time:
		return v, true
	case float64:
		return serialToDate(v), true
	case int:
		return serialToDate(float64(v)), true
	case string:
		return parseDateText(v, order)
	}
	return time.Time{}, false
}

func serialToDate(serial float64) time.Time {
	days := int64(math.Floor(serial - serialEpochOffsetDays))
	return time.Unix(days*86400, 0).UTC()
}

func parseDateText(text string, order DateOrder) (time.Time, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return time.Time{}, false
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, text); err == nil {
			return t, true
		}
	}

	parts := dateDelimiter.Split(text, -1)
	if len(parts) != 3 {
		return time.Time{}, false
	}

	nums := make([]int, 3)
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return time.Time{}, false
		}
		nums[i] = n
	}

	day, month := nums[0], nums[1]
	if order == MonthFirst {
		day, month = nums[1], nums[0]
	}
	year := nums[2]

	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC), true
}
