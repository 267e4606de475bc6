package interpreter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func rowWithColumns(columns ...string) Row {
	row := make(Row, 0, len(columns))
	for _, c := range columns {
		row = append(row, Cell{Column: c, Value: "x"})
	}
	return row
}

func TestResolve_CommonHeaders(t *testing.T) {
	rules := DefaultColumnRules()

	cols := rules.Resolve(rowWithColumns("Employee Name", "Date", "In-Time", "Out-Time"))
	assert.Equal(t, "Date", cols.Date)
	assert.Equal(t, "Employee Name", cols.EmployeeName)
	assert.Equal(t, "In-Time", cols.InTime)
	assert.Equal(t, "Out-Time", cols.OutTime)
}

func TestResolve_HeterogeneousWording(t *testing.T) {
	rules := DefaultColumnRules()

	cols := rules.Resolve(rowWithColumns("DAY", "employee", "Punch In", "Punch Out"))
	assert.Equal(t, "DAY", cols.Date)
	assert.Equal(t, "employee", cols.EmployeeName)
	assert.Equal(t, "Punch In", cols.InTime)
	assert.Equal(t, "Punch Out", cols.OutTime)
}

func TestResolve_ExactInOutFallback(t *testing.T) {
	rules := DefaultColumnRules()

	cols := rules.Resolve(rowWithColumns("Date", "In", "Out"))
	assert.Equal(t, "In", cols.InTime)
	assert.Equal(t, "Out", cols.OutTime)
}

func TestResolve_PrimaryRuleBeatsFallback(t *testing.T) {
	rules := DefaultColumnRules()

	// "In" appears before "In Time" but the time/punch rule runs first
	cols := rules.Resolve(rowWithColumns("Date", "In", "In Time"))
	assert.Equal(t, "In Time", cols.InTime)
}

func TestResolve_NoDateColumn(t *testing.T) {
	rules := DefaultColumnRules()

	cols := rules.Resolve(rowWithColumns("Employee", "In", "Out"))
	assert.Empty(t, cols.Date)
}

func TestResolve_CustomRule(t *testing.T) {
	rules := DefaultColumnRules()
	rules.Date = append(rules.Date, HeaderRule{
		Name: "fecha",
		Match: func(h string) bool {
			return strings.Contains(h, "fecha")
		},
	})

	cols := rules.Resolve(rowWithColumns("Fecha", "Nombre"))
	assert.Equal(t, "Fecha", cols.Date)
}
