package frame

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func numericColumn(name string, vals ...float64) Column {
	cells := make([]Cell, len(vals))
	for i, v := range vals {
		cells[i] = Number(v)
	}
	return Column{Name: name, Type: TypeNumeric, Cells: cells}
}

func textColumn(name string, vals ...string) Column {
	cells := make([]Cell, len(vals))
	for i, v := range vals {
		if v == "" {
			cells[i] = Missing()
		} else {
			cells[i] = Text(v)
		}
	}
	return Column{Name: name, Type: TypeText, Cells: cells}
}

func TestDescribeNumericColumn(t *testing.T) {
	tbl, err := NewTable([]Column{numericColumn("a", 10, 20, 30)})
	require.NoError(t, err)

	s, err := DescribeColumn(tbl, "a")
	require.NoError(t, err)
	require.NotNil(t, s.Numeric)
	assert.Nil(t, s.Text)

	assert.Equal(t, 3, s.Count)
	assert.Equal(t, 20.0, s.Numeric.Mean)
	assert.Equal(t, 10.0, s.Numeric.Std)
	assert.Equal(t, 10.0, s.Numeric.Min)
	assert.Equal(t, 15.0, s.Numeric.P25)
	assert.Equal(t, 20.0, s.Numeric.P50)
	assert.Equal(t, 25.0, s.Numeric.P75)
	assert.Equal(t, 30.0, s.Numeric.Max)
}

func TestDescribeSkipsMissing(t *testing.T) {
	col := Column{Name: "a", Type: TypeNumeric, Cells: []Cell{
		Number(1), Missing(), Number(3), Missing(),
	}}
	tbl, err := NewTable([]Column{col})
	require.NoError(t, err)

	s, err := DescribeColumn(tbl, "a")
	require.NoError(t, err)
	assert.Equal(t, 2, s.Count)
	assert.Equal(t, 2.0, s.Numeric.Mean)
	assert.Equal(t, 1.0, s.Numeric.Min)
	assert.Equal(t, 3.0, s.Numeric.Max)
}

func TestDescribeUndefinedStats(t *testing.T) {
	// Single value: std needs two. All missing: everything but count is NaN.
	tbl, err := NewTable([]Column{
		numericColumn("one", 5),
	})
	require.NoError(t, err)
	s, err := DescribeColumn(tbl, "one")
	require.NoError(t, err)
	assert.Equal(t, 1, s.Count)
	assert.Equal(t, 5.0, s.Numeric.Mean)
	assert.True(t, math.IsNaN(s.Numeric.Std))

	empty := Column{Name: "none", Type: TypeNumeric, Cells: []Cell{Missing(), Missing()}}
	tbl, err = NewTable([]Column{empty})
	require.NoError(t, err)
	s, err = DescribeColumn(tbl, "none")
	require.NoError(t, err)
	assert.Equal(t, 0, s.Count)
	assert.True(t, math.IsNaN(s.Numeric.Mean))
	assert.True(t, math.IsNaN(s.Numeric.Min))
}

func TestDescribeTextColumn(t *testing.T) {
	tbl, err := NewTable([]Column{textColumn("c", "x", "y", "", "x", "z")})
	require.NoError(t, err)

	s, err := DescribeColumn(tbl, "c")
	require.NoError(t, err)
	require.NotNil(t, s.Text)
	assert.Nil(t, s.Numeric)

	// The empty cell is missing: out of count and unique.
	assert.Equal(t, 4, s.Count)
	assert.Equal(t, 3, s.Text.Unique)
	assert.Equal(t, "x", s.Text.Top)
	assert.Equal(t, 2, s.Text.Freq)
}

func TestDescribeTopTieFirstOccurrence(t *testing.T) {
	tbl, err := NewTable([]Column{textColumn("c", "b", "a", "a", "b")})
	require.NoError(t, err)

	s, err := DescribeColumn(tbl, "c")
	require.NoError(t, err)
	// a and b both occur twice; b appeared first.
	assert.Equal(t, "b", s.Text.Top)
	assert.Equal(t, 2, s.Text.Freq)
}

func TestDescribeColumnNotFound(t *testing.T) {
	tbl, err := NewTable([]Column{numericColumn("a", 1)})
	require.NoError(t, err)

	_, err = DescribeColumn(tbl, "nope")
	var notFound *ColumnNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "nope", notFound.Column)
	assert.Contains(t, err.Error(), "nope")
}

func TestDescribeWholeTable(t *testing.T) {
	tbl, err := NewTable([]Column{
		numericColumn("n", 1, 2, 3),
		textColumn("s", "a", "b", "a"),
	})
	require.NoError(t, err)

	summary := Describe(tbl)
	require.Len(t, summary, 2)

	// Column order is table order; each summary carries only the fields
	// its dtype defines.
	assert.Equal(t, "n", summary[0].Column)
	assert.NotNil(t, summary[0].Numeric)
	assert.Nil(t, summary[0].Text)
	assert.Equal(t, "s", summary[1].Column)
	assert.Nil(t, summary[1].Numeric)
	assert.NotNil(t, summary[1].Text)
}

func TestNumericStatsJSONNaNAsNull(t *testing.T) {
	empty := Column{Name: "a", Type: TypeNumeric, Cells: []Cell{Missing()}}
	tbl, err := NewTable([]Column{empty})
	require.NoError(t, err)

	s, err := DescribeColumn(tbl, "a")
	require.NoError(t, err)

	out, err := json.Marshal(s)
	require.NoError(t, err)
	assert.Contains(t, string(out), `"mean":null`)
}
