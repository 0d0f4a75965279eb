package frame

import "math/rand"

// ============================================================================
// VIEW — Zero-Copy Row Selection
// ============================================================================
// A View is an ordered list of row positions into a Table. Head, tail,
// sample, and slice results are all views; the Table itself is never
// copied or reordered.
// ============================================================================

// View is a read-only selection of table rows, in selection order.
type View struct {
	table *Table
	rows  []int
}

// NewView selects every row of t in positional order.
func NewView(t *Table) *View {
	rows := make([]int, t.Rows())
	for i := range rows {
		rows[i] = i
	}
	return &View{table: t, rows: rows}
}

// Select builds a view over explicit row positions. Positions must be
// valid for t; the slice resolver only ever produces valid ones.
func Select(t *Table, positions []int) *View {
	return &View{table: t, rows: positions}
}

// Len returns the number of selected rows.
func (v *View) Len() int { return len(v.rows) }

// Table returns the underlying table.
func (v *View) Table() *Table { return v.table }

// Position returns the table row position of the i-th selected row.
func (v *View) Position(i int) int { return v.rows[i] }

// Cell returns the cell at selected row i, column position col.
func (v *View) Cell(i, col int) Cell {
	return v.table.Cell(v.rows[i], col)
}

// Head keeps the first n rows. A negative n keeps all but the last |n|.
func (v *View) Head(n int) *View {
	if n < 0 {
		n = len(v.rows) + n
	}
	if n < 0 {
		n = 0
	}
	if n > len(v.rows) {
		n = len(v.rows)
	}
	return &View{table: v.table, rows: v.rows[:n]}
}

// Tail keeps the last n rows. A negative n drops the first |n|.
func (v *View) Tail(n int) *View {
	if n < 0 {
		n = len(v.rows) + n
	}
	if n < 0 {
		n = 0
	}
	if n > len(v.rows) {
		n = len(v.rows)
	}
	return &View{table: v.table, rows: v.rows[len(v.rows)-n:]}
}

// Sample keeps n rows drawn without replacement, in draw order. Asking for
// more rows than exist returns all rows in random order.
func (v *View) Sample(n int, rng *rand.Rand) *View {
	if n > len(v.rows) {
		n = len(v.rows)
	}
	if n < 0 {
		n = 0
	}
	picked := make([]int, 0, n)
	for _, i := range rng.Perm(len(v.rows))[:n] {
		picked = append(picked, v.rows[i])
	}
	return &View{table: v.table, rows: picked}
}
