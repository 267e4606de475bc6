package response

import (
	"errors"
	"net/http"

	"github.com/worklens/attendance-backend-go/internal/domain/attendance"
	"github.com/worklens/attendance-backend-go/internal/domain/employee"
	"github.com/worklens/attendance-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Attendance domain errors
	switch {
	case errors.Is(err, attendance.ErrEmptySheet):
		BadRequest(w, "No data found in the spreadsheet", nil)
	case errors.Is(err, attendance.ErrNoValidRecords):
		BadRequest(w, "Could not parse any valid attendance records", nil)
	case errors.Is(err, attendance.ErrInvalidFileType):
		BadRequest(w, "Invalid file type. Please upload a .xlsx file", nil)
	case errors.Is(err, attendance.ErrMonthNotFound):
		NotFound(w, "No data found for the specified month")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
