package interpreter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/worklens/attendance-backend-go/internal/domain/attendance"
)

func record(day int, status attendance.Status, worked, expected float64) attendance.Record {
	productivity := 0.0
	if expected > 0 {
		productivity = worked / expected * 100
	}
	return attendance.Record{
		Date:          time.Date(2024, 1, day, 0, 0, 0, 0, time.UTC),
		Status:        status,
		WorkedHours:   worked,
		ExpectedHours: expected,
		Productivity:  productivity,
	}
}

func TestAggregate_Totals(t *testing.T) {
	records := []attendance.Record{
		record(1, attendance.StatusPresent, 8.5, 8.5),
		record(2, attendance.StatusPresent, 7.25, 8.5),
		record(3, attendance.StatusLeave, 0, 8.5),
		record(6, attendance.StatusHalfDay, 4, 4),
		record(7, attendance.StatusWeekend, 0, 0),
	}

	summary, daily := Aggregate(records, 2)

	assert.Equal(t, 2, summary.PresentDays)
	assert.Equal(t, 1, summary.LeaveDays)
	assert.Equal(t, 1, summary.HalfDays)
	assert.Equal(t, 1, summary.WeekendDays)
	assert.Equal(t, summary.LeaveDays, summary.LeavesUsed)
	assert.Equal(t, 2, summary.LeaveLimit)

	// Hour totals carry one decimal, the score rounds to a whole percent
	assert.Equal(t, 29.5, summary.TotalExpectedHours)
	assert.Equal(t, 19.8, summary.TotalActualHours)
	assert.Equal(t, 67, summary.ProductivityScore) // 19.75 / 29.5

	// The weekend day drops out of the daily series
	assert.Len(t, daily, 4)
	assert.Equal(t, "Jan 1", daily[0].Date)
	assert.Equal(t, 100, daily[0].Productivity)
	assert.Equal(t, 85, daily[1].Productivity) // 7.25 / 8.5 rounds up
}

func TestAggregate_Empty(t *testing.T) {
	summary, daily := Aggregate(nil, 2)

	assert.Zero(t, summary.PresentDays)
	assert.Zero(t, summary.TotalExpectedHours)
	assert.Zero(t, summary.ProductivityScore)
	assert.Empty(t, daily)
}

func TestAggregate_ZeroExpectedMonth(t *testing.T) {
	records := []attendance.Record{
		record(7, attendance.StatusWeekend, 0, 0),
		record(14, attendance.StatusWeekend, 0, 0),
	}

	summary, daily := Aggregate(records, 2)
	assert.Zero(t, summary.ProductivityScore)
	assert.Empty(t, daily)
}
