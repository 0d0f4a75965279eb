package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/peektab-org/peektab/frame"
)

// ============================================================================
// SUMMARY GRID — describe() output
// ============================================================================
// Whole-table summaries render as a grid: one row per statistic, one
// column per table column. Statistics that do not apply to a column's
// dtype print as "-". Single-column summaries render vertically.
// ============================================================================

// statRow names one grid line and extracts its value from a summary.
type statRow struct {
	label   string
	numeric bool // applies to numeric columns when true, text when false
	value   func(frame.StatSummary) string
}

var statRows = []statRow{
	{"count", true, func(s frame.StatSummary) string { return strconv.Itoa(s.Count) }},
	{"unique", false, func(s frame.StatSummary) string { return strconv.Itoa(s.Text.Unique) }},
	{"top", false, func(s frame.StatSummary) string { return s.Text.Top }},
	{"freq", false, func(s frame.StatSummary) string { return strconv.Itoa(s.Text.Freq) }},
	{"mean", true, func(s frame.StatSummary) string { return fmtStat(s.Numeric.Mean) }},
	{"std", true, func(s frame.StatSummary) string { return fmtStat(s.Numeric.Std) }},
	{"min", true, func(s frame.StatSummary) string { return fmtStat(s.Numeric.Min) }},
	{"25%", true, func(s frame.StatSummary) string { return fmtStat(s.Numeric.P25) }},
	{"50%", true, func(s frame.StatSummary) string { return fmtStat(s.Numeric.P50) }},
	{"75%", true, func(s frame.StatSummary) string { return fmtStat(s.Numeric.P75) }},
	{"max", true, func(s frame.StatSummary) string { return fmtStat(s.Numeric.Max) }},
}

// applies reports whether a grid row has a value for a column summary.
// The count row applies to every column.
func (r statRow) applies(s frame.StatSummary) bool {
	if r.label == "count" {
		return true
	}
	if r.numeric {
		return s.Numeric != nil
	}
	return s.Text != nil
}

// WriteSummary prints a whole-table describe grid. Rows that apply to no
// column are dropped, so an all-numeric table shows no unique/top/freq.
func WriteSummary(w io.Writer, summary frame.TableSummary) {
	if len(summary) == 0 {
		fmt.Fprintln(w, "(empty table)")
		return
	}

	var rows []statRow
	for _, r := range statRows {
		for _, s := range summary {
			if r.applies(s) {
				rows = append(rows, r)
				break
			}
		}
	}

	labelWidth := 0
	for _, r := range rows {
		if len(r.label) > labelWidth {
			labelWidth = len(r.label)
		}
	}

	cells := make([][]string, len(rows))
	widths := make([]int, len(summary))
	for j, s := range summary {
		widths[j] = len(s.Column)
	}
	for i, r := range rows {
		cells[i] = make([]string, len(summary))
		for j, s := range summary {
			v := "-"
			if r.applies(s) {
				v = r.value(s)
			}
			cells[i][j] = v
			if len(v) > widths[j] {
				widths[j] = len(v)
			}
		}
	}

	var b strings.Builder
	b.WriteString(strings.Repeat(" ", labelWidth))
	for j, s := range summary {
		b.WriteString("  ")
		b.WriteString(pad(s.Column, widths[j], true))
	}
	fmt.Fprintln(w, b.String())

	for i, r := range rows {
		b.Reset()
		b.WriteString(pad(r.label, labelWidth, false))
		for j := range summary {
			b.WriteString("  ")
			b.WriteString(pad(cells[i][j], widths[j], true))
		}
		fmt.Fprintln(w, b.String())
	}
}

// WriteColumnSummary prints one column's summary vertically, with a
// trailing name and dtype line.
func WriteColumnSummary(w io.Writer, s frame.StatSummary) {
	for _, r := range statRows {
		if !r.applies(s) {
			continue
		}
		fmt.Fprintf(w, "%s  %s\n", pad(r.label, 6, false), r.value(s))
	}
	fmt.Fprintf(w, "Name: %s, dtype: %s\n", s.Column, s.Type)
}
