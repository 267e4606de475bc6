// Package spreadsheet converts uploaded workbooks into the ordered row maps
// the attendance interpreter consumes.
package spreadsheet

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/worklens/attendance-backend-go/internal/interpreter"
)

// ReadWorkbook reads the first sheet of an xlsx workbook. The first row is
// treated as the header row; every following row becomes an interpreter.Row
// with cells in column order, one per non-empty header. Cells come back as
// the formatted text the sheet displays. Fully blank rows are dropped.
func ReadWorkbook(r io.Reader) ([]interpreter.Row, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	headers := rows[0]

	out := make([]interpreter.Row, 0, len(rows)-1)
	for _, raw := range rows[1:] {
		row := make(interpreter.Row, 0, len(headers))
		blank := true
		for i, header := range headers {
			if strings.TrimSpace(header) == "" {
				continue
			}
			value := ""
			if i < len(raw) {
				value = raw[i]
			}
			if strings.TrimSpace(value) != "" {
				blank = false
			}
			row = append(row, interpreter.Cell{Column: header, Value: value})
		}
		if blank {
			continue
		}
		out = append(out, row)
	}

	return out, nil
}
