package employee

import (
	"context"
)

// EmployeeService defines business logic for employee listings
type EmployeeService interface {
	// ListEmployees returns all employees with the months they have data for
	ListEmployees(ctx context.Context) (ListEmployeesResponse, error)
}
