package employee

// ========================================
// EMPLOYEE DTOs
// ========================================

type MonthOption struct {
	Month string `json:"month"`
	Year  int    `json:"year"`
	Label string `json:"label"`
}

type EmployeeResponse struct {
	ID              string        `json:"id"`
	Name            string        `json:"name"`
	Email           *string       `json:"email"`
	AvailableMonths []MonthOption `json:"availableMonths"`
}

type ListEmployeesResponse struct {
	Employees []EmployeeResponse `json:"employees"`
}
