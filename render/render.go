package render

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/peektab-org/peektab/frame"
)

// ============================================================================
// RENDERER — Fixed-Width Text Output
// ============================================================================
// Console rendering of tables and summaries. Display limits arrive through
// an explicit Options value; the renderer holds no ambient configuration.
// Numeric columns align right, text columns align left, every row carries
// its table position in a leading index column.
// ============================================================================

// DefaultMaxRows caps printed rows when the caller does not say otherwise.
const DefaultMaxRows = 200

// Options is the display configuration for table output.
type Options struct {
	// MaxRows is the most rows printed before the middle is elided.
	// Zero means DefaultMaxRows.
	MaxRows int
}

func (o Options) maxRows() int {
	if o.MaxRows <= 0 {
		return DefaultMaxRows
	}
	return o.MaxRows
}

// WriteTable prints the rows a view selects: an index column
// of table positions, one fixed-width column per table column. Views wider
// than MaxRows keep the first and last halves with a "..." row between,
// followed by a dimensions line.
func WriteTable(w io.Writer, v *frame.View, opts Options) {
	t := v.Table()

	shown, elided := visibleRows(v.Len(), opts.maxRows())

	// Column widths over header plus visible cells.
	names := t.Columns()
	widths := make([]int, len(names))
	for i, name := range names {
		widths[i] = len(name)
	}
	idxWidth := 0
	for _, r := range shown {
		pos := strconv.Itoa(v.Position(r))
		if len(pos) > idxWidth {
			idxWidth = len(pos)
		}
		for i := range names {
			if l := len(v.Cell(r, i).String()); l > widths[i] {
				widths[i] = l
			}
		}
	}

	// Header: blank index cell, then column names.
	var b strings.Builder
	b.WriteString(strings.Repeat(" ", idxWidth))
	for i, name := range names {
		b.WriteString("  ")
		b.WriteString(pad(name, widths[i], t.ColumnAt(i).Type == frame.TypeNumeric))
	}
	fmt.Fprintln(w, b.String())

	prev := -1
	for _, r := range shown {
		if prev >= 0 && r != prev+1 {
			fmt.Fprintln(w, pad("...", idxWidth, false))
		}
		prev = r

		b.Reset()
		b.WriteString(pad(strconv.Itoa(v.Position(r)), idxWidth, true))
		for i := range names {
			b.WriteString("  ")
			b.WriteString(pad(v.Cell(r, i).String(), widths[i], t.ColumnAt(i).Type == frame.TypeNumeric))
		}
		fmt.Fprintln(w, b.String())
	}

	if elided {
		fmt.Fprintf(w, "\n[%d rows x %d columns]\n", v.Len(), t.NumCols())
	}
}

// visibleRows picks which view rows to print: all of them, or the first
// and last halves of the row limit when the view is too tall.
func visibleRows(n, max int) (rows []int, elided bool) {
	if n <= max {
		rows = make([]int, n)
		for i := range rows {
			rows[i] = i
		}
		return rows, false
	}
	head := (max + 1) / 2
	tail := max - head
	for i := 0; i < head; i++ {
		rows = append(rows, i)
	}
	for i := n - tail; i < n; i++ {
		rows = append(rows, i)
	}
	return rows, true
}

// WriteColumns lists column names, one per line.
func WriteColumns(w io.Writer, t *frame.Table) {
	for _, name := range t.Columns() {
		fmt.Fprintln(w, name)
	}
}

// WriteShape prints (rows, columns).
func WriteShape(w io.Writer, t *frame.Table) {
	fmt.Fprintf(w, "(%d, %d)\n", t.Rows(), t.NumCols())
}

// WriteInfo prints per-column metadata: position, name, non-missing count,
// and dtype.
func WriteInfo(w io.Writer, t *frame.Table) {
	fmt.Fprintf(w, "Table: %d rows, %d columns\n", t.Rows(), t.NumCols())

	nameWidth := len("column")
	for _, name := range t.Columns() {
		if len(name) > nameWidth {
			nameWidth = len(name)
		}
	}

	fmt.Fprintf(w, " #   %s  non-missing  dtype\n", pad("column", nameWidth, false))
	for i := 0; i < t.NumCols(); i++ {
		col := t.ColumnAt(i)
		fmt.Fprintf(w, " %-3d %s  %11d  %s\n", i, pad(col.Name, nameWidth, false),
			col.NonMissing(), col.Type)
	}
}

// pad fits s into width; right indicates right alignment.
func pad(s string, width int, right bool) string {
	if len(s) >= width {
		return s
	}
	fill := strings.Repeat(" ", width-len(s))
	if right {
		return fill + s
	}
	return s + fill
}

// fmtStat renders one summary number.
func fmtStat(v float64) string {
	if math.IsNaN(v) {
		return "NaN"
	}
	if v == math.Trunc(v) && math.Abs(v) < 1e15 {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatFloat(v, 'g', 6, 64)
}
