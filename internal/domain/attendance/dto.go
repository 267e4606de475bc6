package attendance

import (
	"mime/multipart"
	"strings"
	"time"

	"github.com/worklens/attendance-backend-go/internal/pkg/validator"
)

// ========================================
// ATTENDANCE DTOs
// ========================================

type ImportRequest struct {
	File       multipart.File        `json:"-"`
	FileHeader *multipart.FileHeader `json:"-"`
}

func (r *ImportRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.File == nil || r.FileHeader == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "file",
			Message: "spreadsheet file is required",
		})
		return errs
	}

	if !strings.HasSuffix(strings.ToLower(r.FileHeader.Filename), ".xlsx") {
		return ErrInvalidFileType
	}

	if r.FileHeader.Size > 10<<20 { // 10MB
		errs = append(errs, validator.ValidationError{
			Field:   "file",
			Message: "spreadsheet size must not exceed 10MB",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ImportResponse struct {
	EmployeeID      string `json:"employeeId"`
	Month           string `json:"month"`
	Year            int    `json:"year"`
	RecordsImported int    `json:"recordsImported"`
	Message         string `json:"message"`
}

type ReportQuery struct {
	EmployeeID string
	Month      string // YYYY-MM
	Year       int
}

func (q *ReportQuery) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(q.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if !validator.IsValidMonth(q.Month) {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be in YYYY-MM format",
		})
	}

	if q.Year <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year is required and must be positive",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type RecordResponse struct {
	Date          string  `json:"date"`
	EmployeeName  string  `json:"employeeName"`
	InTime        *string `json:"inTime"`
	OutTime       *string `json:"outTime"`
	WorkedHours   float64 `json:"workedHours"`
	ExpectedHours float64 `json:"expectedHours"`
	Status        Status  `json:"status"`
	Productivity  float64 `json:"productivity"`
}

// StatsResponse mirrors MonthlySummary for display. LeavesUsed and LeaveDays
// intentionally carry the same value under two names.
type StatsResponse struct {
	TotalExpectedHours float64 `json:"totalExpectedHours"`
	TotalActualHours   float64 `json:"totalActualHours"`
	LeavesUsed         int     `json:"leavesUsed"`
	LeaveLimit         int     `json:"leaveLimit"`
	ProductivityScore  int     `json:"productivityScore"`
	PresentDays        int     `json:"presentDays"`
	LeaveDays          int     `json:"leaveDays"`
	WeekendDays        int     `json:"weekendDays"`
	HalfDays           int     `json:"halfDays"`
}

// DailyProductivity is one point of the per-day productivity display series.
// Only days with expected hours appear in it.
type DailyProductivity struct {
	Date          string  `json:"date"`
	Productivity  int     `json:"productivity"`
	ExpectedHours float64 `json:"expectedHours"`
	ActualHours   float64 `json:"actualHours"`
}

type ReportResponse struct {
	Records           []RecordResponse    `json:"records"`
	Stats             StatsResponse       `json:"stats"`
	DailyProductivity []DailyProductivity `json:"dailyProductivity"`
	EmployeeName      string              `json:"employeeName"`
	Month             string              `json:"month"`
}

// NewStatsResponse maps a stored summary to its display form.
func NewStatsResponse(s MonthlySummary) StatsResponse {
	return StatsResponse{
		TotalExpectedHours: s.TotalExpectedHours,
		TotalActualHours:   s.TotalActualHours,
		LeavesUsed:         s.LeavesUsed,
		LeaveLimit:         s.LeaveLimit,
		ProductivityScore:  s.ProductivityScore,
		PresentDays:        s.PresentDays,
		LeaveDays:          s.LeaveDays,
		WeekendDays:        s.WeekendDays,
		HalfDays:           s.HalfDays,
	}
}

// NewRecordResponse maps a stored record to its display form.
func NewRecordResponse(r Record, employeeName string) RecordResponse {
	return RecordResponse{
		Date:          r.Date.Format(time.RFC3339),
		EmployeeName:  employeeName,
		InTime:        r.InTime,
		OutTime:       r.OutTime,
		WorkedHours:   r.WorkedHours,
		ExpectedHours: r.ExpectedHours,
		Status:        r.Status,
		Productivity:  r.Productivity,
	}
}
