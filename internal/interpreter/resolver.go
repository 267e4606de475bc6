package interpreter

import (
	"strings"
)

// HeaderRule is one named heuristic for recognizing a column by its header.
// Match receives the lower-cased, trimmed header text.
type HeaderRule struct {
	Name  string
	Match func(header string) bool
}

// ColumnRules holds the ordered rule lists used to identify each field.
// Rules are evaluated in order; within a rule, row columns are scanned in
// source order and the first match wins. The set is exported so callers can
// append synonyms for their sheets without touching parsing logic.
type ColumnRules struct {
	Date         []HeaderRule
	EmployeeName []HeaderRule
	InTime       []HeaderRule
	OutTime      []HeaderRule
}

// Columns holds the resolved column header per field; empty means the row
// has no recognizable column for that field.
type Columns struct {
	Date         string
	EmployeeName string
	InTime       string
	OutTime      string
}

// DefaultColumnRules returns the built-in header heuristics.
func DefaultColumnRules() ColumnRules {
	return ColumnRules{
		Date: []HeaderRule{
			{Name: "date-or-day", Match: func(h string) bool {
				return strings.Contains(h, "date") || h == "day"
			}},
		},
		EmployeeName: []HeaderRule{
			{Name: "name-or-employee", Match: func(h string) bool {
				return strings.Contains(h, "name") || strings.Contains(h, "employee")
			}},
		},
		InTime: []HeaderRule{
			{Name: "in-time-or-punch", Match: func(h string) bool {
				return strings.Contains(h, "in") && (strings.Contains(h, "time") || strings.Contains(h, "punch"))
			}},
			{Name: "in-exact", Match: func(h string) bool {
				return h == "in"
			}},
		},
		OutTime: []HeaderRule{
			{Name: "out-time-or-punch", Match: func(h string) bool {
				return strings.Contains(h, "out") && (strings.Contains(h, "time") || strings.Contains(h, "punch"))
			}},
			{Name: "out-exact", Match: func(h string) bool {
				return h == "out"
			}},
		},
	}
}

// Resolve identifies at most one column per field on the given row.
func (cr ColumnRules) Resolve(row Row) Columns {
	return Columns{
		Date:         firstMatch(cr.Date, row),
		EmployeeName: firstMatch(cr.EmployeeName, row),
		InTime:       firstMatch(cr.InTime, row),
		OutTime:      firstMatch(cr.OutTime, row),
	}
}

func firstMatch(rules []HeaderRule, row Row) string {
	for _, rule := range rules {
		for _, cell := range row {
			header := strings.ToLower(strings.TrimSpace(cell.Column))
			if rule.Match(header) {
				return cell.Column
			}
		}
	}
	return ""
}
