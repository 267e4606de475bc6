package interpreter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/worklens/attendance-backend-go/internal/domain/attendance"
)

// 2024-01-01 is a Monday; the week that follows covers every weekday.
func weekOf(t *testing.T) []time.Time {
	t.Helper()
	var days []time.Time
	for i := 0; i < 7; i++ {
		days = append(days, time.Date(2024, 1, 1+i, 0, 0, 0, 0, time.UTC))
	}
	return days
}

func TestExpectedHours(t *testing.T) {
	cases := []struct {
		date time.Time
		want float64
	}{
		{time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), 8.5}, // Monday
		{time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC), 8.5}, // Friday
		{time.Date(2024, 1, 6, 0, 0, 0, 0, time.UTC), 4},   // Saturday
		{time.Date(2024, 1, 7, 0, 0, 0, 0, time.UTC), 0},   // Sunday
	}
	for _, c := range cases {
		assert.Equal(t, c.want, ExpectedHours(c.date), "date %s", c.date.Format("2006-01-02"))
	}
}

func TestDayStatus(t *testing.T) {
	monday := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	saturday := time.Date(2024, 1, 6, 0, 0, 0, 0, time.UTC)
	sunday := time.Date(2024, 1, 7, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, attendance.StatusPresent, DayStatus(monday, "09:00", "17:30"))
	assert.Equal(t, attendance.StatusLeave, DayStatus(monday, "", "17:30"))
	assert.Equal(t, attendance.StatusLeave, DayStatus(monday, "09:00", ""))
	assert.Equal(t, attendance.StatusHalfDay, DayStatus(saturday, "09:00", "13:00"))
	assert.Equal(t, attendance.StatusLeave, DayStatus(saturday, "", ""))
	assert.Equal(t, attendance.StatusWeekend, DayStatus(sunday, "", ""))
	// Sunday is Weekend even with punches recorded
	assert.Equal(t, attendance.StatusWeekend, DayStatus(sunday, "09:00", "17:00"))
}

// A Weekend day always has zero expected hours, and vice versa.
func TestCalendarConsistency(t *testing.T) {
	for _, date := range weekOf(t) {
		for _, punches := range [][2]string{{"", ""}, {"09:00", ""}, {"09:00", "17:00"}} {
			status := DayStatus(date, punches[0], punches[1])
			expected := ExpectedHours(date)
			assert.Equal(t, status == attendance.StatusWeekend, expected == 0,
				"date %s punches %v", date.Format("2006-01-02"), punches)
		}
	}
}
