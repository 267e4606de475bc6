package interpreter

import (
	"math"

	"github.com/worklens/attendance-backend-go/internal/domain/attendance"
)

// Aggregate reduces one employee-month of records, already sorted ascending
// by date, into its summary and per-day productivity series. leaveLimit is a
// policy value, not derived from the data.
func Aggregate(records []attendance.Record, leaveLimit int) (attendance.MonthlySummary, []attendance.DailyProductivity) {
	var expected, actual float64
	summary := attendance.MonthlySummary{LeaveLimit: leaveLimit}

	for _, r := range records {
		expected += r.ExpectedHours
		actual += r.WorkedHours

		switch r.Status {
		case attendance.StatusPresent:
			summary.PresentDays++
		case attendance.StatusLeave:
			summary.LeaveDays++
		case attendance.StatusWeekend:
			summary.WeekendDays++
		case attendance.StatusHalfDay:
			summary.HalfDays++
		}
	}

	summary.LeavesUsed = summary.LeaveDays
	summary.TotalExpectedHours = math.Round(expected*10) / 10
	summary.TotalActualHours = math.Round(actual*10) / 10
	if expected > 0 {
		summary.ProductivityScore = int(math.Round(actual / expected * 100))
	}

	daily := make([]attendance.DailyProductivity, 0, len(records))
	for _, r := range records {
		if r.ExpectedHours <= 0 {
			continue
		}
		daily = append(daily, attendance.DailyProductivity{
			Date:          r.Date.Format("Jan 2"),
			Productivity:  int(math.Round(r.Productivity)),
			ExpectedHours: r.ExpectedHours,
			ActualHours:   r.WorkedHours,
		})
	}

	return summary, daily
}
