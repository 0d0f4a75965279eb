package ingest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peektab-org/peektab/frame"
)

var salesCSV = []byte(`region,units,price,note
north,12,9.99,ok
south,7,14.50,
north,3,2.5e1,backorder
west,,1.25,ok
`)

func TestLoadBytesShape(t *testing.T) {
	tbl, err := LoadBytes("sales.csv", salesCSV, ',')
	require.NoError(t, err)

	assert.Equal(t, 4, tbl.Rows())
	assert.Equal(t, []string{"region", "units", "price", "note"}, tbl.Columns())
	for i := 0; i < tbl.NumCols(); i++ {
		assert.Equal(t, 4, tbl.ColumnAt(i).Len())
	}
}

func TestTypeInference(t *testing.T) {
	tbl, err := LoadBytes("sales.csv", salesCSV, ',')
	require.NoError(t, err)

	region, _ := tbl.Column("region")
	units, _ := tbl.Column("units")
	price, _ := tbl.Column("price")
	note, _ := tbl.Column("note")

	assert.Equal(t, frame.TypeText, region.Type)
	// Empty cells never block numeric inference.
	assert.Equal(t, frame.TypeNumeric, units.Type)
	assert.Equal(t, frame.TypeNumeric, price.Type)
	assert.Equal(t, frame.TypeText, note.Type)

	// Exponent notation parses.
	assert.Equal(t, 25.0, price.Cells[2].Num)
	// The empty units cell is missing, not zero.
	assert.True(t, units.Cells[3].IsMissing())
}

func TestTypeInferenceDeterministic(t *testing.T) {
	first, err := LoadBytes("sales.csv", salesCSV, ',')
	require.NoError(t, err)
	second, err := LoadBytes("sales.csv", salesCSV, ',')
	require.NoError(t, err)

	for i := 0; i < first.NumCols(); i++ {
		assert.Equal(t, first.ColumnAt(i).Type, second.ColumnAt(i).Type)
	}
}

func TestNonFiniteIsNotNumeric(t *testing.T) {
	tbl, err := LoadBytes("x.csv", []byte("a\n1\nInf\n"), ',')
	require.NoError(t, err)
	col, _ := tbl.Column("a")
	assert.Equal(t, frame.TypeText, col.Type)

	tbl, err = LoadBytes("x.csv", []byte("a\n1\nNaN\n"), ',')
	require.NoError(t, err)
	col, _ = tbl.Column("a")
	assert.Equal(t, frame.TypeText, col.Type)
}

func TestZeroDataRowsDefaultsToText(t *testing.T) {
	tbl, err := LoadBytes("empty.csv", []byte("a,b\n"), ',')
	require.NoError(t, err)
	assert.Equal(t, 0, tbl.Rows())
	assert.Equal(t, frame.TypeText, tbl.ColumnAt(0).Type)
	assert.Equal(t, frame.TypeText, tbl.ColumnAt(1).Type)
}

func TestRaggedRows(t *testing.T) {
	// Short rows pad with missing trailing cells.
	tbl, err := LoadBytes("r.csv", []byte("a,b,c\n1,2\n4,5,6\n"), ',')
	require.NoError(t, err)
	c, _ := tbl.Column("c")
	assert.True(t, c.Cells[0].IsMissing())
	assert.Equal(t, 6.0, c.Cells[1].Num)

	// Extra cells are malformed input.
	_, err = LoadBytes("r.csv", []byte("a,b\n1,2,3\n"), ',')
	var ingestErr *frame.IngestError
	require.ErrorAs(t, err, &ingestErr)
	assert.Contains(t, err.Error(), "line 2")
}

func TestEmptyInput(t *testing.T) {
	_, err := LoadBytes("empty.csv", nil, ',')
	var ingestErr *frame.IngestError
	require.ErrorAs(t, err, &ingestErr)
	assert.Contains(t, err.Error(), "header")
}

func TestDuplicateHeaderLastWriteWins(t *testing.T) {
	tbl, err := LoadBytes("dup.csv", []byte("a,a\n1,2\n"), ',')
	require.NoError(t, err)
	require.Equal(t, []string{"a"}, tbl.Columns())
	col, _ := tbl.Column("a")
	assert.Equal(t, 2.0, col.Cells[0].Num)
}

func TestResolveSeparator(t *testing.T) {
	assert.Equal(t, ',', ResolveSeparator("data.csv", 0))
	assert.Equal(t, '\t', ResolveSeparator("data.tsv", 0))
	assert.Equal(t, '\t', ResolveSeparator("data.txt", 0))
	assert.Equal(t, ',', ResolveSeparator("data.dat", 0))
	// Explicit override beats the extension.
	assert.Equal(t, ';', ResolveSeparator("data.tsv", ';'))
}

func TestLoadTabSeparated(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.tsv")
	require.NoError(t, os.WriteFile(path, []byte("a\tb\n1\tx\n"), 0o644))

	tbl, err := Load(path, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, tbl.Rows())
	a, _ := tbl.Column("a")
	assert.Equal(t, frame.TypeNumeric, a.Type)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.csv"), 0)
	var ingestErr *frame.IngestError
	require.ErrorAs(t, err, &ingestErr)
}
