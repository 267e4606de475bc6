package postgresql

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/worklens/attendance-backend-go/internal/domain/attendance"
	"github.com/worklens/attendance-backend-go/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

// CreateRecord implements attendance.AttendanceRepository.
func (a *attendanceRepository) CreateRecord(ctx context.Context, record attendance.Record) (attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	record.ID = uuid.New().String()

	query := `
		INSERT INTO attendance_records (
			id, employee_id, date, in_time, out_time,
			worked_hours, expected_hours, status, productivity,
			month, year, created_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW()
		) RETURNING created_at
	`

	err := q.QueryRow(ctx, query,
		record.ID,
		record.EmployeeID,
		record.Date,
		record.InTime,
		record.OutTime,
		record.WorkedHours,
		record.ExpectedHours,
		record.Status,
		record.Productivity,
		record.Month,
		record.Year,
	).Scan(&record.CreatedAt)

	if err != nil {
		return attendance.Record{}, fmt.Errorf("failed to create attendance record: %w", err)
	}

	return record, nil
}

// DeleteByMonth implements attendance.AttendanceRepository.
func (a *attendanceRepository) DeleteByMonth(ctx context.Context, employeeID string, month string, year int) error {
	q := GetQuerier(ctx, a.db)

	query := `
		DELETE FROM attendance_records
		WHERE employee_id = $1 AND month = $2 AND year = $3
	`

	if _, err := q.Exec(ctx, query, employeeID, month, year); err != nil {
		return fmt.Errorf("failed to delete attendance records for month: %w", err)
	}

	return nil
}

// ListByMonth implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListByMonth(ctx context.Context, employeeID string, month string, year int) ([]attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT id, employee_id, date, in_time, out_time,
			   worked_hours, expected_hours, status, productivity,
			   month, year, created_at
		FROM attendance_records
		WHERE employee_id = $1 AND month = $2 AND year = $3
		ORDER BY date ASC
	`

	rows, err := q.Query(ctx, query, employeeID, month, year)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendance records: %w", err)
	}
	defer rows.Close()

	var records []attendance.Record
	for rows.Next() {
		var rec attendance.Record
		err := rows.Scan(
			&rec.ID, &rec.EmployeeID, &rec.Date, &rec.InTime, &rec.OutTime,
			&rec.WorkedHours, &rec.ExpectedHours, &rec.Status, &rec.Productivity,
			&rec.Month, &rec.Year, &rec.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		// Dates are UTC midnights; the driver may decode into the local zone
		rec.Date = rec.Date.UTC()
		records = append(records, rec)
	}

	return records, nil
}

// UpsertSummary implements attendance.AttendanceRepository.
// leave_limit is written on insert only; re-uploads keep the stored value.
func (a *attendanceRepository) UpsertSummary(ctx context.Context, summary attendance.MonthlySummary) (attendance.MonthlySummary, error) {
	q := GetQuerier(ctx, a.db)

	summary.ID = uuid.New().String()

	query := `
		INSERT INTO monthly_summaries (
			id, employee_id, month, year,
			total_expected_hours, total_actual_hours,
			leaves_used, leave_days, leave_limit, productivity_score,
			present_days, weekend_days, half_days,
			created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, NOW(), NOW()
		)
		ON CONFLICT (employee_id, month, year) DO UPDATE SET
			total_expected_hours = EXCLUDED.total_expected_hours,
			total_actual_hours = EXCLUDED.total_actual_hours,
			leaves_used = EXCLUDED.leaves_used,
			leave_days = EXCLUDED.leave_days,
			productivity_score = EXCLUDED.productivity_score,
			present_days = EXCLUDED.present_days,
			weekend_days = EXCLUDED.weekend_days,
			half_days = EXCLUDED.half_days,
			updated_at = NOW()
		RETURNING id, leave_limit, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		summary.ID,
		summary.EmployeeID,
		summary.Month,
		summary.Year,
		summary.TotalExpectedHours,
		summary.TotalActualHours,
		summary.LeavesUsed,
		summary.LeaveDays,
		summary.LeaveLimit,
		summary.ProductivityScore,
		summary.PresentDays,
		summary.WeekendDays,
		summary.HalfDays,
	).Scan(&summary.ID, &summary.LeaveLimit, &summary.CreatedAt, &summary.UpdatedAt)

	if err != nil {
		return attendance.MonthlySummary{}, fmt.Errorf("failed to upsert monthly summary: %w", err)
	}

	return summary, nil
}

// GetSummary implements attendance.AttendanceRepository.
func (a *attendanceRepository) GetSummary(ctx context.Context, employeeID string, month string, year int) (attendance.MonthlySummary, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT s.id, s.employee_id, s.month, s.year,
			   s.total_expected_hours, s.total_actual_hours,
			   s.leaves_used, s.leave_days, s.leave_limit, s.productivity_score,
			   s.present_days, s.weekend_days, s.half_days,
			   s.created_at, s.updated_at,
			   e.name AS employee_name
		FROM monthly_summaries s
		LEFT JOIN employees e ON e.id = s.employee_id
		WHERE s.employee_id = $1 AND s.month = $2 AND s.year = $3
	`

	var summary attendance.MonthlySummary
	err := q.QueryRow(ctx, query, employeeID, month, year).Scan(
		&summary.ID, &summary.EmployeeID, &summary.Month, &summary.Year,
		&summary.TotalExpectedHours, &summary.TotalActualHours,
		&summary.LeavesUsed, &summary.LeaveDays, &summary.LeaveLimit, &summary.ProductivityScore,
		&summary.PresentDays, &summary.WeekendDays, &summary.HalfDays,
		&summary.CreatedAt, &summary.UpdatedAt,
		&summary.EmployeeName,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.MonthlySummary{}, attendance.ErrMonthNotFound
		}
		return attendance.MonthlySummary{}, fmt.Errorf("failed to get monthly summary: %w", err)
	}

	return summary, nil
}
