package frame

import "fmt"

// ============================================================================
// ERROR TAXONOMY
// ============================================================================
// Four terminal error kinds. None are retried; the CLI boundary maps each
// to a distinct, stable exit code. All carry enough context to name the
// offending input in their message.
// ============================================================================

// IngestError reports malformed delimited text or an undecodable /
// non-table snapshot payload.
type IngestError struct {
	Source string // path or source description
	Reason string
	Err    error // underlying cause, if any
}

func (e *IngestError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("ingest %s: %s: %v", e.Source, e.Reason, e.Err)
	}
	return fmt.Sprintf("ingest %s: %s", e.Source, e.Reason)
}

func (e *IngestError) Unwrap() error { return e.Err }

// ColumnNotFoundError reports a describe request for an absent column.
type ColumnNotFoundError struct {
	Column string
}

func (e *ColumnNotFoundError) Error() string {
	return fmt.Sprintf("column %q not found", e.Column)
}

// SliceError reports a malformed row-range expression.
type SliceError struct {
	Spec   string // the full expression as given
	Reason string
}

func (e *SliceError) Error() string {
	return fmt.Sprintf("invalid slice %q: %s", e.Spec, e.Reason)
}

// SnapshotWriteError reports a failed snapshot serialization or an
// unwritable target.
type SnapshotWriteError struct {
	Target string
	Err    error
}

func (e *SnapshotWriteError) Error() string {
	return fmt.Sprintf("write snapshot %s: %v", e.Target, e.Err)
}

func (e *SnapshotWriteError) Unwrap() error { return e.Err }
