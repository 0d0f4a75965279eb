package frame

import "fmt"

// ============================================================================
// FRAME TYPES — Cell / Column / Table
// ============================================================================
// The in-memory dataset. A Table is built once by the ingest package and
// never mutated afterwards; consumers (views, summarizer) only read it.
// ============================================================================

// CellKind tags the value held in a Cell.
type CellKind int

const (
	KindMissing CellKind = iota
	KindNumber
	KindText
)

// Cell is one value slot: a float64, a string, or missing.
type Cell struct {
	Kind CellKind
	Num  float64
	Str  string
}

// Number wraps a float64 in a Cell.
func Number(v float64) Cell { return Cell{Kind: KindNumber, Num: v} }

// Text wraps a string in a Cell.
func Text(s string) Cell { return Cell{Kind: KindText, Str: s} }

// Missing is the absent-value Cell.
func Missing() Cell { return Cell{Kind: KindMissing} }

// IsMissing reports whether the cell holds no value.
func (c Cell) IsMissing() bool { return c.Kind == KindMissing }

// String renders the cell for display. Missing renders as empty.
func (c Cell) String() string {
	switch c.Kind {
	case KindNumber:
		return formatFloat(c.Num)
	case KindText:
		return c.Str
	default:
		return ""
	}
}

// formatFloat prints whole numbers without decimals, fractional with up to
// six significant decimals.
func formatFloat(v float64) string {
	if v == float64(int64(v)) && v < 1e15 && v > -1e15 {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%g", v)
}

// ============================================================================
// DTYPE
// ============================================================================

// DType is a column's inferred type.
type DType int

const (
	// TypeNumeric columns hold Number or Missing cells only.
	TypeNumeric DType = iota
	// TypeText columns hold Text or Missing cells only.
	TypeText
)

func (d DType) String() string {
	if d == TypeNumeric {
		return "numeric"
	}
	return "text"
}

// MarshalJSON emits the dtype name rather than its ordinal.
func (d DType) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// ============================================================================
// COLUMN
// ============================================================================

// Column is a named, typed, ordered sequence of cells, one per row.
type Column struct {
	Name  string
	Type  DType
	Cells []Cell
}

// Len returns the number of cells (one per table row).
func (c *Column) Len() int { return len(c.Cells) }

// NonMissing returns the count of cells holding a value.
func (c *Column) NonMissing() int {
	n := 0
	for _, cell := range c.Cells {
		if !cell.IsMissing() {
			n++
		}
	}
	return n
}

// ============================================================================
// TABLE
// ============================================================================

// Table is an ordered set of same-length columns sharing a row count.
// Column order is the order first encountered during ingestion; a duplicate
// header name overwrites the earlier column in place (last write wins),
// keeping the original position.
type Table struct {
	cols   []Column
	byName map[string]int
	rows   int
}

// NewTable builds a Table from columns. All columns must share one length;
// mismatched lengths are a construction bug, reported as an error.
func NewTable(cols []Column) (*Table, error) {
	t := &Table{byName: make(map[string]int, len(cols))}
	for _, col := range cols {
		if len(t.cols) == 0 {
			t.rows = col.Len()
		} else if col.Len() != t.rows {
			return nil, fmt.Errorf("column %q has %d cells, table has %d rows",
				col.Name, col.Len(), t.rows)
		}
		if at, dup := t.byName[col.Name]; dup {
			t.cols[at] = col
			continue
		}
		t.byName[col.Name] = len(t.cols)
		t.cols = append(t.cols, col)
	}
	return t, nil
}

// Rows returns the row count.
func (t *Table) Rows() int { return t.rows }

// NumCols returns the column count.
func (t *Table) NumCols() int { return len(t.cols) }

// Columns returns column names in table order.
func (t *Table) Columns() []string {
	names := make([]string, len(t.cols))
	for i, c := range t.cols {
		names[i] = c.Name
	}
	return names
}

// Column returns the named column, or a ColumnNotFoundError.
func (t *Table) Column(name string) (*Column, error) {
	i, ok := t.byName[name]
	if !ok {
		return nil, &ColumnNotFoundError{Column: name}
	}
	return &t.cols[i], nil
}

// ColumnAt returns the column at position i in table order.
func (t *Table) ColumnAt(i int) *Column { return &t.cols[i] }

// Cell returns the value at (row, column position).
func (t *Table) Cell(row, col int) Cell { return t.cols[col].Cells[row] }
