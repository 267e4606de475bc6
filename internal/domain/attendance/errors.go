package attendance

import "errors"

// Attendance domain errors
var (
	// Import errors
	ErrEmptySheet      = errors.New("no data found in the spreadsheet")
	ErrNoValidRecords  = errors.New("could not parse any valid attendance records")
	ErrInvalidFileType = errors.New("invalid file type: only .xlsx files are supported")

	// Report errors
	ErrMonthNotFound = errors.New("no attendance data found for the specified month")
)
