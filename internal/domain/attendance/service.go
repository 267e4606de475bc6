package attendance

import (
	"context"
)

// AttendanceService defines business logic for attendance sheet imports and reports
type AttendanceService interface {
	// ImportSheet parses an uploaded spreadsheet and replaces the stored
	// employee-month it covers
	ImportSheet(ctx context.Context, req ImportRequest) (ImportResponse, error)

	// GetMonthlyReport reconstructs the dashboard payload for one stored employee-month
	GetMonthlyReport(ctx context.Context, query ReportQuery) (ReportResponse, error)
}
