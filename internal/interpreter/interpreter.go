// Package interpreter turns loosely-structured attendance sheet rows into
// typed daily records and monthly summary statistics. It is a pure,
// single-pass batch transform: no I/O, no state between invocations.
package interpreter

import (
	"sort"

	"github.com/worklens/attendance-backend-go/internal/domain/attendance"
)

// DefaultLeaveLimit is the policy allowance of leave days per month.
const DefaultLeaveLimit = 2

type Interpreter struct {
	rules      ColumnRules
	leaveLimit int
	dateOrder  DateOrder
}

type Option func(*Interpreter)

// WithLeaveLimit overrides the monthly leave allowance reported in summaries.
func WithLeaveLimit(limit int) Option {
	return func(itp *Interpreter) {
		itp.leaveLimit = limit
	}
}

// WithColumnRules replaces the header heuristics, e.g. to add synonyms.
func WithColumnRules(rules ColumnRules) Option {
	return func(itp *Interpreter) {
		itp.rules = rules
	}
}

// WithDateOrder sets how delimited date text is read (day-first by default).
func WithDateOrder(order DateOrder) Option {
	return func(itp *Interpreter) {
		itp.dateOrder = order
	}
}

func New(opts ...Option) *Interpreter {
	itp := &Interpreter{
		rules:      DefaultColumnRules(),
		leaveLimit: DefaultLeaveLimit,
		dateOrder:  DayFirst,
	}
	for _, opt := range opts {
		opt(itp)
	}
	return itp
}

// Result bundles everything derived from one sheet: the chronological
// records, their aggregate stats, the per-day productivity series, the
// resolved employee name and a long month label from the earliest record.
type Result struct {
	Records           []attendance.Record
	Stats             attendance.MonthlySummary
	DailyProductivity []attendance.DailyProductivity
	EmployeeName      string
	Month             string
}

// Interpret processes one employee-month of raw rows in source order.
// Rows without a resolvable date are skipped silently; only whole-batch
// emptiness is an error: attendance.ErrEmptySheet when there are no rows at
// all, attendance.ErrNoValidRecords when every row was skipped.
func (itp *Interpreter) Interpret(rows []Row) (*Result, error) {
	if len(rows) == 0 {
		return nil, attendance.ErrEmptySheet
	}

	acc := nameAccumulator{}
	for _, row := range rows {
		cols := itp.rules.Resolve(row)
		rec, name, ok := itp.buildRecord(row, cols, acc.lastSeenName)
		acc.lastSeenName = name
		if !ok {
			continue
		}
		acc.records = append(acc.records, rec)
	}

	if len(acc.records) == 0 {
		return nil, attendance.ErrNoValidRecords
	}

	records := acc.records
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Date.Before(records[j].Date)
	})

	stats, daily := Aggregate(records, itp.leaveLimit)

	employeeName := acc.lastSeenName
	if employeeName == "" {
		employeeName = DefaultEmployeeName
	}

	return &Result{
		Records:           records,
		Stats:             stats,
		DailyProductivity: daily,
		EmployeeName:      employeeName,
		Month:             records[0].Date.Format("January 2006"),
	}, nil
}
