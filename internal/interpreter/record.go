package interpreter

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/worklens/attendance-backend-go/internal/domain/attendance"
)

// DefaultEmployeeName is used when no name column ever resolves.
const DefaultEmployeeName = "Employee"

// nameAccumulator threads the carry-forward state of the record-building fold:
// sheets often fill the name column on the first row only, so the last
// non-empty name propagates to later rows.
type nameAccumulator struct {
	lastSeenName string
	records      []attendance.Record
}

// buildRecord turns one raw row into one attendance record. The second return
// is the updated carry-forward name. ok is false when the row has no
// resolvable date; such rows are silently skipped, not errors.
func (itp *Interpreter) buildRecord(row Row, cols Columns, carriedName string) (rec attendance.Record, name string, ok bool) {
	name = carriedName

	if cols.Date == "" {
		return attendance.Record{}, name, false
	}
	date, valid := ParseDate(row.Value(cols.Date), itp.dateOrder)
	if !valid {
		return attendance.Record{}, name, false
	}

	if cols.EmployeeName != "" {
		if s := cellText(row.Value(cols.EmployeeName)); s != "" {
			name = s
		}
	}

	var inText, outText string
	if cols.InTime != "" {
		inText = cellText(row.Value(cols.InTime))
	}
	if cols.OutTime != "" {
		outText = cellText(row.Value(cols.OutTime))
	}

	worked := workedHours(inText, outText, date)
	expected := ExpectedHours(date)
	status := DayStatus(date, inText, outText)

	productivity := 0.0
	if expected > 0 {
		productivity = worked / expected * 100
	}

	displayName := name
	if displayName == "" {
		displayName = DefaultEmployeeName
	}

	rec = attendance.Record{
		Date:          date,
		EmployeeName:  displayName,
		InTime:        punchText(inText),
		OutTime:       punchText(outText),
		WorkedHours:   worked,
		ExpectedHours: expected,
		Status:        status,
		Productivity:  productivity,
	}
	return rec, name, true
}

// workedHours computes the span between the two punches in hours, rounded to
// two decimals. Missing or unparseable punches degrade to zero, and an
// out-before-in span clamps to zero instead of going negative.
func workedHours(inText, outText string, base time.Time) float64 {
	if inText == "" || outText == "" {
		return 0
	}

	in, okIn := ParseClock(inText, base)
	out, okOut := ParseClock(outText, base)
	if !okIn || !okOut {
		return 0
	}

	hours := out.Sub(in).Hours()
	return math.Max(0, math.Round(hours*100)/100)
}

// punchText keeps the raw punch verbatim for display; empty becomes nil.
func punchText(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// cellText stringifies a raw cell value the way it appeared in the sheet.
func cellText(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	case int:
		return strconv.Itoa(s)
	default:
		return fmt.Sprint(s)
	}
}
