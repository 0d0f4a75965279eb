package ingest

import (
	"math"
	"strconv"

	"github.com/peektab-org/peektab/frame"
)

// ============================================================================
// TYPE INFERENCE
// ============================================================================
// Total classification over raw string cells, with no control flow by
// thrown parse failures. A column is numeric iff every non-empty cell parses as a
// finite float64; empty cells never block inference. Deterministic: the
// same text always infers the same dtypes.
// ============================================================================

// parseNumber classifies one raw cell as a finite float64. The bool result
// is the classification tag; false means the cell is not numeric.
func parseNumber(s string) (float64, bool) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, false
	}
	return f, true
}

// inferType classifies one column's raw cells. The empty string marks a
// missing cell. A column with zero cells defaults to text.
func inferType(raw []string) frame.DType {
	if len(raw) == 0 {
		return frame.TypeText
	}
	for _, s := range raw {
		if s == "" {
			continue
		}
		if _, ok := parseNumber(s); !ok {
			return frame.TypeText
		}
	}
	// All non-empty cells parsed. An entirely empty column lands here
	// too: it behaves like a float column whose values are all missing.
	return frame.TypeNumeric
}

// buildColumn converts raw cells into a typed frame.Column.
func buildColumn(name string, raw []string) frame.Column {
	col := frame.Column{Name: name, Type: inferType(raw), Cells: make([]frame.Cell, len(raw))}
	for i, s := range raw {
		switch {
		case s == "":
			col.Cells[i] = frame.Missing()
		case col.Type == frame.TypeNumeric:
			v, _ := parseNumber(s)
			col.Cells[i] = frame.Number(v)
		default:
			col.Cells[i] = frame.Text(s)
		}
	}
	return col
}
