package frame

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fiveRowTable(t *testing.T) *Table {
	t.Helper()
	tbl, err := NewTable([]Column{numericColumn("a", 0, 1, 2, 3, 4)})
	require.NoError(t, err)
	return tbl
}

func positions(v *View) []int {
	out := make([]int, v.Len())
	for i := range out {
		out[i] = v.Position(i)
	}
	return out
}

func TestViewHeadTail(t *testing.T) {
	v := NewView(fiveRowTable(t))

	assert.Equal(t, []int{0, 1}, positions(v.Head(2)))
	assert.Equal(t, []int{3, 4}, positions(v.Tail(2)))
	assert.Equal(t, []int{0, 1, 2, 3, 4}, positions(v.Head(10)))
	assert.Equal(t, []int{0, 1, 2, 3, 4}, positions(v.Tail(10)))
	assert.Equal(t, 0, v.Head(0).Len())

	// Negative counts drop from the other end.
	assert.Equal(t, []int{0, 1, 2}, positions(v.Head(-2)))
	assert.Equal(t, []int{2, 3, 4}, positions(v.Tail(-2)))
}

func TestViewSelect(t *testing.T) {
	tbl := fiveRowTable(t)
	v := Select(tbl, []int{4, 0, 2})

	assert.Equal(t, []int{4, 0, 2}, positions(v))
	assert.Equal(t, 4.0, v.Cell(0, 0).Num)
	assert.Equal(t, 2.0, v.Cell(2, 0).Num)
}

func TestViewSample(t *testing.T) {
	v := NewView(fiveRowTable(t))
	rng := rand.New(rand.NewSource(1))

	s := v.Sample(3, rng)
	require.Equal(t, 3, s.Len())
	got := positions(s)
	sort.Ints(got)
	for i := 1; i < len(got); i++ {
		assert.NotEqual(t, got[i-1], got[i], "sample must draw without replacement")
	}

	// Oversampling returns every row.
	assert.Equal(t, 5, v.Sample(100, rng).Len())
}
