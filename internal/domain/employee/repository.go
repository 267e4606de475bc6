package employee

import (
	"context"
)

// EmployeeRepository defines data access methods for employees
type EmployeeRepository interface {
	// Create creates a new employee
	Create(ctx context.Context, employee Employee) (Employee, error)

	// GetByID retrieves an employee by ID
	GetByID(ctx context.Context, id string) (Employee, error)

	// GetByName retrieves an employee by display name.
	// Returns (nil, nil) when no employee matches, so callers can find-or-create.
	GetByName(ctx context.Context, name string) (*Employee, error)

	// List retrieves all employees ordered by name ascending
	List(ctx context.Context) ([]Employee, error)

	// ListMonths retrieves the stored summary months for one employee,
	// newest first
	ListMonths(ctx context.Context, employeeID string) ([]AvailableMonth, error)
}
