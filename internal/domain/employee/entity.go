package employee

import (
	"time"
)

type Employee struct {
	ID        string
	Name      string
	Email     *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// AvailableMonth is one employee-month for which a summary has been stored.
type AvailableMonth struct {
	Month string // YYYY-MM
	Year  int
}
