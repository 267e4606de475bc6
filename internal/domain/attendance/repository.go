package attendance

import (
	"context"
)

// AttendanceRepository defines data access for attendance records and
// monthly summaries, keyed by (employeeID, month "YYYY-MM", year).
type AttendanceRepository interface {
	// CreateRecord inserts a single attendance record
	CreateRecord(ctx context.Context, record Record) (Record, error)

	// DeleteByMonth removes all records for one employee-month.
	// Used to make re-uploads of the same month idempotent.
	DeleteByMonth(ctx context.Context, employeeID string, month string, year int) error

	// ListByMonth returns the stored records for one employee-month ordered by date ascending
	ListByMonth(ctx context.Context, employeeID string, month string, year int) ([]Record, error)

	// UpsertSummary inserts or updates the monthly summary for its employee-month key.
	// leave_limit is set on insert and preserved on update.
	UpsertSummary(ctx context.Context, summary MonthlySummary) (MonthlySummary, error)

	// GetSummary returns the stored summary with the employee name attached
	GetSummary(ctx context.Context, employeeID string, month string, year int) (MonthlySummary, error)
}
