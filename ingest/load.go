package ingest

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peektab-org/peektab/frame"
	"github.com/peektab-org/peektab/snapshot"
)

// ============================================================================
// INGESTOR — Delimited Text and Snapshot Loading
// ============================================================================
// Builds a frame.Table from a file path. The extension decides the route:
// the snapshot extension goes through the binary codec, everything else is
// delimited text. Ingestion either fully succeeds or returns no table.
// ============================================================================

// SnapshotExt marks a path as a binary snapshot rather than delimited text.
const SnapshotExt = ".arrow"

// Load reads and parses the file at path. sep overrides separator
// detection for text sources; 0 means resolve from the extension
// (tab for .tsv/.txt, comma otherwise).
func Load(path string, sep rune) (*frame.Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &frame.IngestError{Source: path, Reason: "cannot read file", Err: err}
	}

	if strings.EqualFold(filepath.Ext(path), SnapshotExt) {
		t, err := snapshot.Decode(data)
		if err != nil {
			return nil, &frame.IngestError{Source: path, Reason: "cannot decode snapshot", Err: err}
		}
		return t, nil
	}

	return LoadBytes(path, data, ResolveSeparator(path, sep))
}

// ResolveSeparator applies the separator precedence: explicit override,
// then extension-implied, then comma.
func ResolveSeparator(path string, override rune) rune {
	if override != 0 {
		return override
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".tsv", ".txt":
		return '\t'
	}
	return ','
}

// LoadBytes parses delimited text held in memory. source names the input
// in error messages.
func LoadBytes(source string, data []byte, sep rune) (*frame.Table, error) {
	return LoadReader(source, bytes.NewReader(data), sep)
}

// LoadReader parses delimited text from r. The first line defines column
// names; each following line becomes one row. A row shorter than the
// header gets Missing trailing cells; a longer row is rejected as
// malformed.
func LoadReader(source string, r io.Reader, sep rune) (*frame.Table, error) {
	cr := csv.NewReader(r)
	cr.Comma = sep
	cr.FieldsPerRecord = -1 // ragged-row policy is enforced below

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, &frame.IngestError{Source: source, Reason: "no header row"}
		}
		return nil, &frame.IngestError{Source: source, Reason: "malformed header", Err: err}
	}
	for i, h := range header {
		header[i] = strings.TrimSpace(h)
	}

	// Column-major accumulation; empty string marks a missing cell.
	raw := make([][]string, len(header))
	for line := 2; ; line++ {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, &frame.IngestError{Source: source,
				Reason: fmt.Sprintf("malformed row at line %d", line), Err: err}
		}
		if len(record) > len(header) {
			return nil, &frame.IngestError{Source: source,
				Reason: fmt.Sprintf("line %d has %d fields, header has %d",
					line, len(record), len(header))}
		}
		for i := range header {
			cell := ""
			if i < len(record) {
				cell = strings.TrimSpace(record[i])
			}
			raw[i] = append(raw[i], cell)
		}
	}

	cols := make([]frame.Column, len(header))
	for i, name := range header {
		cols[i] = buildColumn(name, raw[i])
	}

	t, err := frame.NewTable(cols)
	if err != nil {
		return nil, &frame.IngestError{Source: source, Reason: "inconsistent columns", Err: err}
	}
	return t, nil
}
