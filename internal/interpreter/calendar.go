package interpreter

import (
	"time"

	"github.com/worklens/attendance-backend-go/internal/domain/attendance"
)

// ExpectedHours returns the policy working hours for a calendar date.
// Business rules: Monday-Friday 8.5h, Saturday 4h (half day), Sunday off.
func ExpectedHours(date time.Time) float64 {
	switch date.Weekday() {
	case time.Sunday:
		return 0
	case time.Saturday:
		return 4
	default:
		return 8.5
	}
}

// DayStatus classifies a day from its date and raw punch presence.
// A Weekend day always has zero expected hours and vice versa.
func DayStatus(date time.Time, inPunch, outPunch string) attendance.Status {
	missingPunch := inPunch == "" || outPunch == ""

	switch date.Weekday() {
	case time.Sunday:
		return attendance.StatusWeekend
	case time.Saturday:
		if missingPunch {
			return attendance.StatusLeave
		}
		return attendance.StatusHalfDay
	default:
		if missingPunch {
			return attendance.StatusLeave
		}
		return attendance.StatusPresent
	}
}
