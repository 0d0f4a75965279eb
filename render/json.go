package render

import (
	"github.com/peektab-org/peektab/frame"
)

// TableJSON is a marshal-ready shape for row output. Missing cells become
// JSON nulls, numbers stay numbers.
type TableJSON struct {
	Columns   []string      `json:"columns"`
	DTypes    []frame.DType `json:"dtypes"`
	Positions []int         `json:"positions"`
	Rows      [][]any       `json:"rows"`
}

// BuildJSON converts a view into its JSON shape.
func BuildJSON(v *frame.View) TableJSON {
	t := v.Table()

	out := TableJSON{
		Columns:   t.Columns(),
		DTypes:    make([]frame.DType, t.NumCols()),
		Positions: make([]int, v.Len()),
		Rows:      make([][]any, v.Len()),
	}
	for i := 0; i < t.NumCols(); i++ {
		out.DTypes[i] = t.ColumnAt(i).Type
	}

	for r := 0; r < v.Len(); r++ {
		out.Positions[r] = v.Position(r)
		row := make([]any, t.NumCols())
		for c := 0; c < t.NumCols(); c++ {
			cell := v.Cell(r, c)
			switch cell.Kind {
			case frame.KindNumber:
				row[c] = cell.Num
			case frame.KindText:
				row[c] = cell.Str
			default:
				row[c] = nil
			}
		}
		out.Rows[r] = row
	}
	return out
}
