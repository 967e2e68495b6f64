package output

import (
	"fmt"
	"io"
	"strings"
)

// Table renders aligned columns for text output: candidate lists, chain
// listings, and format summaries. Columns are left-aligned and sized to the
// widest cell; a dashed rule separates the header from the rows.
type Table struct {
	headers  []string
	rows     [][]string
	noHeader bool
}

// NewTable creates a table with the given column headers.
func NewTable(headers ...string) *Table {
	return &Table{headers: headers}
}

// AddRow appends one row. Short rows are padded with empty cells.
func (t *Table) AddRow(cells ...string) {
	t.rows = append(t.rows, cells)
}

// SetNoHeader suppresses the header and its rule.
func (t *Table) SetNoHeader(noHeader bool) {
	t.noHeader = noHeader
}

// Render writes the table to w.
func (t *Table) Render(w io.Writer) error {
	widths := t.columnWidths()
	if len(widths) == 0 {
		return nil
	}

	if !t.noHeader && len(t.headers) > 0 {
		if err := writeCells(w, t.headers, widths); err != nil {
			return err
		}
		rule := make([]string, len(widths))
		for i, width := range widths {
			rule[i] = strings.Repeat("-", width)
		}
		if err := writeCells(w, rule, widths); err != nil {
			return err
		}
	}

	for _, row := range t.rows {
		if err := writeCells(w, row, widths); err != nil {
			return err
		}
	}
	return nil
}

// String renders the table to a string.
func (t *Table) String() string {
	var sb strings.Builder
	_ = t.Render(&sb)
	return sb.String()
}

// columnWidths sizes every column to its widest header or cell.
func (t *Table) columnWidths() []int {
	cols := len(t.headers)
	for _, row := range t.rows {
		if len(row) > cols {
			cols = len(row)
		}
	}

	widths := make([]int, cols)
	grow := func(row []string) {
		for i, cell := range row {
			if i < cols && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}
	grow(t.headers)
	for _, row := range t.rows {
		grow(row)
	}
	return widths
}

func writeCells(w io.Writer, cells []string, widths []int) error {
	parts := make([]string, len(widths))
	for i, width := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		parts[i] = fmt.Sprintf("%-*s", width, cell)
	}
	_, err := fmt.Fprintln(w, strings.Join(parts, "  "))
	return err
}
