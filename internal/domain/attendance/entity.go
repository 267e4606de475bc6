package attendance

import (
	"time"
)

// Status classifies one employee-day based on day-of-week and punch presence.
type Status string

const (
	StatusPresent Status = "Present"
	StatusLeave   Status = "Leave"
	StatusHalfDay Status = "Half-Day"
	StatusWeekend Status = "Weekend"
)

// Record is one employee's attendance for one calendar date.
// InTime and OutTime hold the raw punch text exactly as it appeared in the
// source sheet; nil means no punch was recorded.
type Record struct {
	ID            string
	EmployeeID    string
	Date          time.Time
	EmployeeName  string
	InTime        *string
	OutTime       *string
	WorkedHours   float64
	ExpectedHours float64
	Status        Status
	Productivity  float64
	Month         string // YYYY-MM
	Year          int
	CreatedAt     time.Time
}

// MonthlySummary aggregates one employee-month of records.
// LeavesUsed and LeaveDays always carry the same count; both are stored
// because downstream consumers read them under both names.
type MonthlySummary struct {
	ID                 string
	EmployeeID         string
	Month              string // YYYY-MM
	Year               int
	TotalExpectedHours float64
	TotalActualHours   float64
	LeavesUsed         int
	LeaveDays          int
	LeaveLimit         int
	ProductivityScore  int
	PresentDays        int
	WeekendDays        int
	HalfDays           int
	CreatedAt          time.Time
	UpdatedAt          time.Time

	// DTO
	EmployeeName *string
}
