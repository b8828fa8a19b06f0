package texttab

import (
	"fmt"
	"strings"
)

// Border glyphs and layout constants.
const (
	corner     = '+'
	rowRule    = '-'
	headerRule = '='
	wall       = '|'
	padding    = 1 // spaces on each side of a cell
)

// scorePrecision formats numeric score cells, three decimals in the
// texttable tradition.
const scorePrecision = "%.3f"

// Table accumulates rows and renders them as a bordered grid.
// The zero value is usable; methods return the receiver for chaining.
type Table struct {
	header []string   // optional header row, set once
	rows   [][]string // data rows in insertion order
}

// New returns an empty table.
func New() *Table { return &Table{} }

// SetHeader installs the header row. The last call wins.
func (t *Table) SetHeader(cells ...string) *Table {
	t.header = cells
	return t
}

// AddRow appends one data row. Rows may differ in width; rendering
// pads to the widest row.
func (t *Table) AddRow(cells ...string) *Table {
	t.rows = append(t.rows, cells)
	return t
}

// Render draws the table. An empty table renders as an empty string.
func (t *Table) Render() string {
	// Collect every row that participates in layout.
	all := t.rows
	if t.header != nil {
		all = append([][]string{t.header}, t.rows...)
	}
	if len(all) == 0 {
		return ""
	}

	// Column widths: maximum cell width per column across all rows.
	cols := 0
	for _, row := range all {
		if len(row) > cols {
			cols = len(row)
		}
	}
	widths := make([]int, cols)
	for _, row := range all {
		for j, cell := range row {
			if len(cell) > widths[j] {
				widths[j] = len(cell)
			}
		}
	}

	var b strings.Builder
	rule := ruleLine(widths, rowRule)
	b.WriteString(rule)
	for i, row := range all {
		writeRow(&b, row, widths)
		if i == 0 && t.header != nil {
			b.WriteString(ruleLine(widths, headerRule))
			continue
		}
		b.WriteString(rule)
	}

	return b.String()
}

// ruleLine builds one horizontal rule: +----+----+ with the given fill.
func ruleLine(widths []int, fill rune) string {
	var b strings.Builder
	b.WriteRune(corner)
	for _, w := range widths {
		b.WriteString(strings.Repeat(string(fill), w+2*padding))
		b.WriteRune(corner)
	}
	b.WriteByte('\n')
	return b.String()
}

// writeRow draws one cell row, left-aligned and padded to widths.
func writeRow(b *strings.Builder, row []string, widths []int) {
	b.WriteRune(wall)
	for j, w := range widths {
		cell := ""
		if j < len(row) {
			cell = row[j]
		}
		b.WriteByte(' ')
		b.WriteString(cell)
		b.WriteString(strings.Repeat(" ", w-len(cell)))
		b.WriteByte(' ')
		b.WriteRune(wall)
	}
	b.WriteByte('\n')
}

// FormatParams renders name/value pairs under a Parameter/Value header,
// in the given order. Callers typically pass config.Params.Pairs().
func FormatParams(pairs [][2]string) string {
	t := New().SetHeader("Parameter", "Value")
	for _, p := range pairs {
		t.AddRow(p[0], p[1])
	}
	return t.Render()
}

// FormatScores renders every stride-th performance row, keeping the
// first three columns (epoch, AUC, F1-micro) as the periodic progress
// view. stride values below one fall back to every row.
func FormatScores(perf [][]float64, stride int) string {
	if stride < 1 {
		stride = 1
	}
	t := New()
	for i, row := range perf {
		if i%stride != 0 {
			continue
		}
		cells := make([]string, 0, 3)
		for j, v := range row {
			if j >= 3 {
				break
			}
			cells = append(cells, fmt.Sprintf(scorePrecision, v))
		}
		t.AddRow(cells...)
	}
	return t.Render()
}
