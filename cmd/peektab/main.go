package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"
	"unicode/utf8"

	"github.com/peektab-org/peektab/frame"
	"github.com/peektab-org/peektab/ingest"
	"github.com/peektab-org/peektab/render"
	"github.com/peektab-org/peektab/snapshot"
)

// ============================================================================
// PEEKTAB CLI — Quick inspection of tabular files
// ============================================================================

const version = "0.1.0"

// Exit codes. Each core error kind maps to its own stable code.
const (
	exitOK       = 0
	exitUsage    = 1
	exitIngest   = 2
	exitNoColumn = 3
	exitSnapshot = 4
	exitSlice    = 5
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("peektab", flag.ExitOnError)

	sep := fs.String("sep", "", "Field separator (overrides extension detection)")
	head := fs.Int("head", -1, "Show first N rows")
	tail := fs.Int("tail", -1, "Show last N rows")
	sample := fs.Int("sample", -1, "Show a random sample of N rows")
	describe := fs.Bool("describe", false, "Show per-column statistics for the whole table")
	column := fs.String("column", "", "Show statistics for one column only")
	columns := fs.Bool("columns", false, "List column names")
	shape := fs.Bool("shape", false, "Show (rows, columns)")
	info := fs.Bool("info", false, "Show per-column metadata")
	sliceExpr := fs.String("slice", "", "Show rows by range notation start:stop:step")
	maxRows := fs.Int("max-rows", render.DefaultMaxRows, "Max rows to print when showing rows")
	save := fs.String("save", "", "Write the table to a snapshot file at the given path")
	format := fs.String("format", "text", "Output format: text, json")
	outFile := fs.String("out", "", "Write output to file instead of stdout")
	showVersion := fs.Bool("version", false, "Print version and exit")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `peektab: quickly inspect a CSV/TSV/snapshot file

Usage:
  peektab [flags] path

Flags must come before the path.

The path is parsed as delimited text (comma by default, tab for .tsv and
.txt) or, when it ends in %s, as a binary table snapshot.

Flags:
`, ingest.SnapshotExt)
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Examples:
  peektab -head 10 data.csv
  peektab -describe data.tsv
  peektab -column price data.csv
  peektab -slice 10:20:2 data.csv
  peektab -save data%s data.csv
`, ingest.SnapshotExt)
	}

	fs.Parse(args)

	if *showVersion {
		fmt.Printf("peektab %s\n", version)
		return exitOK
	}

	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: exactly one path argument is required")
		fs.Usage()
		return exitUsage
	}
	path := fs.Arg(0)

	sepRune, err := parseSep(*sep)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return exitUsage
	}

	// ── Output writer ─────────────────────────────────────────────────────
	var w io.Writer = os.Stdout
	if *outFile != "" {
		f, err := os.Create(*outFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: cannot create output file: %v\n", err)
			return exitUsage
		}
		defer f.Close()
		w = f
	}

	// ── Ingest ────────────────────────────────────────────────────────────
	t, err := ingest.Load(path, sepRune)
	if err != nil {
		return fail(err)
	}

	opts := render.Options{MaxRows: *maxRows}
	acted := false

	// ── Actions ───────────────────────────────────────────────────────────
	if *columns {
		acted = true
		if *format == "json" {
			writeJSON(w, t.Columns())
		} else {
			render.WriteColumns(w, t)
		}
	}
	if *shape {
		acted = true
		if *format == "json" {
			writeJSON(w, map[string]int{"rows": t.Rows(), "columns": t.NumCols()})
		} else {
			render.WriteShape(w, t)
		}
	}
	if *info {
		acted = true
		render.WriteInfo(w, t)
	}
	if *describe || *column != "" {
		acted = true
		if *column != "" {
			summary, err := frame.DescribeColumn(t, *column)
			if err != nil {
				return fail(err)
			}
			if *format == "json" {
				writeJSON(w, summary)
			} else {
				render.WriteColumnSummary(w, summary)
			}
		} else {
			summary := frame.Describe(t)
			if *format == "json" {
				writeJSON(w, summary)
			} else {
				render.WriteSummary(w, summary)
			}
		}
	}
	if *head >= 0 {
		acted = true
		writeView(w, frame.NewView(t).Head(*head), opts, *format)
	}
	if *tail >= 0 {
		acted = true
		writeView(w, frame.NewView(t).Tail(*tail), opts, *format)
	}
	if *sample >= 0 {
		acted = true
		rng := rand.New(rand.NewSource(time.Now().UnixNano()))
		writeView(w, frame.NewView(t).Sample(*sample, rng), opts, *format)
	}
	if *sliceExpr != "" {
		acted = true
		spec, err := frame.ParseSlice(*sliceExpr)
		if err != nil {
			return fail(err)
		}
		positions, err := spec.Resolve(t.Rows())
		if err != nil {
			return fail(err)
		}
		writeView(w, frame.Select(t, positions), opts, *format)
	}

	// No action flag: default to the first five rows.
	if !acted && *save == "" {
		writeView(w, frame.NewView(t).Head(5), opts, *format)
	}

	// ── Snapshot write ────────────────────────────────────────────────────
	if *save != "" {
		if err := snapshot.WriteFile(*save, t); err != nil {
			return fail(err)
		}
	}

	return exitOK
}

// fail prints the error and maps it to its exit code.
func fail(err error) int {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)

	var ingestErr *frame.IngestError
	var colErr *frame.ColumnNotFoundError
	var sliceErr *frame.SliceError
	var snapErr *frame.SnapshotWriteError
	switch {
	case errors.As(err, &colErr):
		return exitNoColumn
	case errors.As(err, &sliceErr):
		return exitSlice
	case errors.As(err, &snapErr):
		return exitSnapshot
	case errors.As(err, &ingestErr):
		return exitIngest
	}
	return exitIngest
}

func writeView(w io.Writer, v *frame.View, opts render.Options, format string) {
	if format == "json" {
		writeJSON(w, render.BuildJSON(v))
		return
	}
	render.WriteTable(w, v, opts)
}

func writeJSON(w io.Writer, v any) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot marshal output: %v\n", err)
		return
	}
	fmt.Fprintln(w, string(out))
}

// parseSep turns the -sep flag into a separator rune. The literal "\t" is
// accepted so shells need no real tab character.
func parseSep(s string) (rune, error) {
	if s == "" {
		return 0, nil
	}
	if s == "\\t" || s == "\t" {
		return '\t', nil
	}
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("separator must be a single character, got %q", s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, nil
}
