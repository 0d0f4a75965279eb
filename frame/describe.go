package frame

import (
	"encoding/json"
	"math"
	"sort"
	"sync"
)

// ============================================================================
// SUMMARIZER — Per-Column Descriptive Statistics
// ============================================================================
// Numeric columns get count/mean/std/min/quartiles/max; text columns get
// count/unique/top/freq. Missing cells never enter the arithmetic but do
// not fail it: an all-missing column reports NaN where a value would be
// undefined. Columns are independent, so whole-table describe fans out one
// worker per column, each writing a distinct result slot.
// ============================================================================

// NumericStats are statistics over a numeric column's non-missing cells.
// Mean and the order statistics are NaN when count is 0; Std is NaN when
// count is below 2 (sample standard deviation, denominator count-1).
type NumericStats struct {
	Mean float64
	Std  float64
	Min  float64
	P25  float64
	P50  float64
	P75  float64
	Max  float64
}

// MarshalJSON emits null for NaN fields, since JSON has no NaN literal.
func (s NumericStats) MarshalJSON() ([]byte, error) {
	opt := func(v float64) *float64 {
		if math.IsNaN(v) {
			return nil
		}
		return &v
	}
	return json.Marshal(struct {
		Mean *float64 `json:"mean"`
		Std  *float64 `json:"std"`
		Min  *float64 `json:"min"`
		P25  *float64 `json:"p25"`
		P50  *float64 `json:"p50"`
		P75  *float64 `json:"p75"`
		Max  *float64 `json:"max"`
	}{opt(s.Mean), opt(s.Std), opt(s.Min), opt(s.P25), opt(s.P50), opt(s.P75), opt(s.Max)})
}

// TextStats are statistics over a text column's non-missing cells.
// Top is the most frequent value; a frequency tie goes to the value that
// appeared first in row order.
type TextStats struct {
	Unique int    `json:"unique"`
	Top    string `json:"top"`
	Freq   int    `json:"freq"`
}

// StatSummary is the superset summary record for one column. Exactly one
// of Numeric or Text is set, matching the column's dtype. Inapplicable
// fields are absent, never zero.
type StatSummary struct {
	Column  string        `json:"column"`
	Type    DType         `json:"dtype"`
	Count   int           `json:"count"`
	Numeric *NumericStats `json:"numeric,omitempty"`
	Text    *TextStats    `json:"text,omitempty"`
}

// TableSummary holds one StatSummary per column, in table order.
type TableSummary []StatSummary

// Describe summarizes every column of t, in column order.
func Describe(t *Table) TableSummary {
	out := make(TableSummary, t.NumCols())
	var wg sync.WaitGroup
	for i := 0; i < t.NumCols(); i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			out[i] = summarize(t.ColumnAt(i))
		}(i)
	}
	wg.Wait()
	return out
}

// DescribeColumn summarizes one named column, or fails with a
// ColumnNotFoundError.
func DescribeColumn(t *Table, name string) (StatSummary, error) {
	col, err := t.Column(name)
	if err != nil {
		return StatSummary{}, err
	}
	return summarize(col), nil
}

func summarize(col *Column) StatSummary {
	if col.Type == TypeNumeric {
		return summarizeNumeric(col)
	}
	return summarizeText(col)
}

// ============================================================================
// NUMERIC
// ============================================================================

func summarizeNumeric(col *Column) StatSummary {
	vals := make([]float64, 0, len(col.Cells))
	for _, c := range col.Cells {
		if !c.IsMissing() {
			vals = append(vals, c.Num)
		}
	}

	nan := math.NaN()
	stats := &NumericStats{Mean: nan, Std: nan, Min: nan, P25: nan, P50: nan, P75: nan, Max: nan}
	summary := StatSummary{Column: col.Name, Type: TypeNumeric, Count: len(vals), Numeric: stats}
	if len(vals) == 0 {
		return summary
	}

	var sum float64
	for _, v := range vals {
		sum += v
	}
	stats.Mean = sum / float64(len(vals))

	if len(vals) > 1 {
		var m2 float64
		for _, v := range vals {
			d := v - stats.Mean
			m2 += d * d
		}
		stats.Std = math.Sqrt(m2 / float64(len(vals)-1))
	}

	sorted := make([]float64, len(vals))
	copy(sorted, vals)
	sort.Float64s(sorted)

	stats.Min = sorted[0]
	stats.Max = sorted[len(sorted)-1]
	stats.P25 = quantile(sorted, 0.25)
	stats.P50 = quantile(sorted, 0.50)
	stats.P75 = quantile(sorted, 0.75)
	return summary
}

// quantile interpolates linearly between order statistics of a sorted
// slice: position = (len-1)*q, blend of floor and ceil ranks.
func quantile(sorted []float64, q float64) float64 {
	if len(sorted) == 0 {
		return math.NaN()
	}
	if q <= 0 {
		return sorted[0]
	}
	if q >= 1 {
		return sorted[len(sorted)-1]
	}
	pos := q * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	w := pos - float64(lo)
	return sorted[lo]*(1-w) + sorted[hi]*w
}

// ============================================================================
// TEXT
// ============================================================================

func summarizeText(col *Column) StatSummary {
	counts := make(map[string]int)
	firstSeen := make(map[string]int)
	total := 0

	for i, c := range col.Cells {
		if c.IsMissing() {
			continue
		}
		total++
		if _, seen := counts[c.Str]; !seen {
			firstSeen[c.Str] = i
		}
		counts[c.Str]++
	}

	stats := &TextStats{Unique: len(counts)}
	for v, n := range counts {
		if n > stats.Freq || (n == stats.Freq && firstSeen[v] < firstSeen[stats.Top]) {
			stats.Top = v
			stats.Freq = n
		}
	}

	return StatSummary{Column: col.Name, Type: TypeText, Count: total, Text: stats}
}
