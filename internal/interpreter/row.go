package interpreter

// Cell is one column value of a raw sheet row. Value may be a string,
// a float64 (spreadsheet serial) or a time.Time, depending on how the
// source delivered the cell.
type Cell struct {
	Column string
	Value  any
}

// Row is one raw sheet row with its cells in source column order.
// Order matters: column resolution picks the first matching field.
type Row []Cell

// Value returns the value of the named column, or nil when the row has no
// such column.
func (r Row) Value(column string) any {
	for _, c := range r {
		if c.Column == column {
			return c.Value
		}
	}
	return nil
}
