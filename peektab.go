// Package peektab provides a small engine for inspecting tabular files.
//
// Usage:
//
//	import (
//	    "github.com/peektab-org/peektab/frame"
//	    "github.com/peektab-org/peektab/ingest"
//	)
//
//	t, err := ingest.Load("data.csv", 0)
//	summary := frame.Describe(t)
//
// The ingest package builds an immutable frame.Table from delimited text
// or a binary snapshot, inferring a numeric or text dtype per column.
// The frame package resolves start:stop:step row ranges and computes
// per-column descriptive statistics; render turns those results into
// fixed-width console output. All computation is local and in memory:
// one rectangular dataset, inspected read-only.
package peektab
