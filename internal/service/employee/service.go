package employee

import (
	"context"
	"fmt"
	"time"

	"github.com/worklens/attendance-backend-go/internal/domain/employee"
)

type EmployeeServiceImpl struct {
	employee.EmployeeRepository
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{
		EmployeeRepository: employeeRepo,
	}
}

// ListEmployees implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListEmployees(ctx context.Context) (employee.ListEmployeesResponse, error) {
	employees, err := s.EmployeeRepository.List(ctx)
	if err != nil {
		return employee.ListEmployeesResponse{}, fmt.Errorf("failed to list employees: %w", err)
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		months, err := s.EmployeeRepository.ListMonths(ctx, emp.ID)
		if err != nil {
			return employee.ListEmployeesResponse{}, fmt.Errorf("failed to list months for employee %s: %w", emp.ID, err)
		}

		options := make([]employee.MonthOption, 0, len(months))
		for _, m := range months {
			options = append(options, employee.MonthOption{
				Month: m.Month,
				Year:  m.Year,
				Label: monthLabel(m.Month),
			})
		}

		responses = append(responses, employee.EmployeeResponse{
			ID:              emp.ID,
			Name:            emp.Name,
			Email:           emp.Email,
			AvailableMonths: options,
		})
	}

	return employee.ListEmployeesResponse{Employees: responses}, nil
}

func monthLabel(monthKey string) string {
	parsed, err := time.Parse("2006-01", monthKey)
	if err != nil {
		return monthKey
	}
	return parsed.Format("January 2006")
}
