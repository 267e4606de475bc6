package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/worklens/attendance-backend-go/internal/domain/attendance"
	"github.com/worklens/attendance-backend-go/internal/domain/employee"
	"github.com/worklens/attendance-backend-go/internal/interpreter"
	"github.com/worklens/attendance-backend-go/internal/pkg/database"
	"github.com/worklens/attendance-backend-go/internal/pkg/spreadsheet"
	"github.com/worklens/attendance-backend-go/internal/repository/postgresql"
	"golang.org/x/sync/errgroup"
)

type AttendanceServiceImpl struct {
	db *database.DB
	attendance.AttendanceRepository
	employee.EmployeeRepository
	interpreter *interpreter.Interpreter
}

func NewAttendanceService(
	db *database.DB,
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	itp *interpreter.Interpreter,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		db:                   db,
		AttendanceRepository: attendanceRepo,
		EmployeeRepository:   employeeRepo,
		interpreter:          itp,
	}
}

// ImportSheet implements attendance.AttendanceService.
// The whole employee-month is replaced in one transaction, so re-uploading
// the same sheet is idempotent.
func (s *AttendanceServiceImpl) ImportSheet(ctx context.Context, req attendance.ImportRequest) (attendance.ImportResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.ImportResponse{}, err
	}

	rows, err := spreadsheet.ReadWorkbook(req.File)
	if err != nil {
		return attendance.ImportResponse{}, fmt.Errorf("failed to read spreadsheet: %w", err)
	}

	result, err := s.interpreter.Interpret(rows)
	if err != nil {
		return attendance.ImportResponse{}, err
	}

	// Storage key comes from the earliest record
	first := result.Records[0]
	monthKey := first.Date.Format("2006-01")
	year := first.Date.Year()

	var resp attendance.ImportResponse
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := postgresql.ContextWithTx(ctx, tx)

		emp, err := s.EmployeeRepository.GetByName(txCtx, result.EmployeeName)
		if err != nil {
			return err
		}
		if emp == nil {
			created, err := s.EmployeeRepository.Create(txCtx, employee.Employee{Name: result.EmployeeName})
			if err != nil {
				return err
			}
			emp = &created
		}

		if err := s.AttendanceRepository.DeleteByMonth(txCtx, emp.ID, monthKey, year); err != nil {
			return err
		}

		for _, rec := range result.Records {
			rec.EmployeeID = emp.ID
			rec.Month = monthKey
			rec.Year = year
			if _, err := s.AttendanceRepository.CreateRecord(txCtx, rec); err != nil {
				return err
			}
		}

		summary := result.Stats
		summary.EmployeeID = emp.ID
		summary.Month = monthKey
		summary.Year = year
		if _, err := s.AttendanceRepository.UpsertSummary(txCtx, summary); err != nil {
			return err
		}

		resp = attendance.ImportResponse{
			EmployeeID:      emp.ID,
			Month:           monthKey,
			Year:            year,
			RecordsImported: len(result.Records),
			Message:         fmt.Sprintf("Successfully processed %d attendance records", len(result.Records)),
		}
		return nil
	})
	if err != nil {
		return attendance.ImportResponse{}, err
	}

	return resp, nil
}

// GetMonthlyReport implements attendance.AttendanceService.
// Records and summary are fetched concurrently; the display payload is
// rebuilt exactly as the import produced it, with the stored leave limit.
func (s *AttendanceServiceImpl) GetMonthlyReport(ctx context.Context, query attendance.ReportQuery) (attendance.ReportResponse, error) {
	if err := query.Validate(); err != nil {
		return attendance.ReportResponse{}, err
	}

	var (
		records []attendance.Record
		summary attendance.MonthlySummary
	)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		records, err = s.AttendanceRepository.ListByMonth(gCtx, query.EmployeeID, query.Month, query.Year)
		return err
	})

	g.Go(func() error {
		var err error
		summary, err = s.AttendanceRepository.GetSummary(gCtx, query.EmployeeID, query.Month, query.Year)
		return err
	})

	if err := g.Wait(); err != nil {
		return attendance.ReportResponse{}, err
	}

	employeeName := interpreter.DefaultEmployeeName
	if summary.EmployeeName != nil && *summary.EmployeeName != "" {
		employeeName = *summary.EmployeeName
	}

	recordResponses := make([]attendance.RecordResponse, 0, len(records))
	for _, rec := range records {
		recordResponses = append(recordResponses, attendance.NewRecordResponse(rec, employeeName))
	}

	_, daily := interpreter.Aggregate(records, summary.LeaveLimit)

	return attendance.ReportResponse{
		Records:           recordResponses,
		Stats:             attendance.NewStatsResponse(summary),
		DailyProductivity: daily,
		EmployeeName:      employeeName,
		Month:             monthLabel(query.Month),
	}, nil
}

// monthLabel turns the YYYY-MM storage key into a long display label.
func monthLabel(monthKey string) string {
	parsed, err := time.Parse("2006-01", monthKey)
	if err != nil {
		return monthKey
	}
	return parsed.Format("January 2006")
}
