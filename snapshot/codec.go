// Package snapshot serializes a frame.Table to and from the Arrow IPC
// file format. Numeric columns map to nullable float64 fields, text
// columns to nullable utf8 fields, missing cells to nulls. A round trip
// preserves column names, order, dtypes, and every cell.
package snapshot

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/ipc"
	"github.com/apache/arrow-go/v18/arrow/memory"

	"github.com/peektab-org/peektab/frame"
)

// Encode serializes t into Arrow IPC file bytes.
func Encode(t *frame.Table) ([]byte, error) {
	var buf bytes.Buffer
	if err := EncodeTo(&buf, t); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// EncodeTo writes t to w as a single-batch Arrow IPC file.
func EncodeTo(w io.Writer, t *frame.Table) error {
	schema := arrow.NewSchema(schemaFields(t), nil)

	b := array.NewRecordBuilder(memory.DefaultAllocator, schema)
	defer b.Release()

	for i := 0; i < t.NumCols(); i++ {
		col := t.ColumnAt(i)
		switch fb := b.Field(i).(type) {
		case *array.Float64Builder:
			for _, c := range col.Cells {
				if c.IsMissing() {
					fb.AppendNull()
				} else {
					fb.Append(c.Num)
				}
			}
		case *array.StringBuilder:
			for _, c := range col.Cells {
				if c.IsMissing() {
					fb.AppendNull()
				} else {
					fb.Append(c.Str)
				}
			}
		}
	}

	rec := b.NewRecord()
	defer rec.Release()

	fw, err := ipc.NewFileWriter(w, ipc.WithSchema(schema))
	if err != nil {
		return err
	}
	if err := fw.Write(rec); err != nil {
		fw.Close()
		return err
	}
	return fw.Close()
}

// WriteFile serializes t to path. Failures, including an unwritable
// target, surface as a SnapshotWriteError.
func WriteFile(path string, t *frame.Table) error {
	f, err := os.Create(path)
	if err != nil {
		return &frame.SnapshotWriteError{Target: path, Err: err}
	}
	if err := EncodeTo(f, t); err != nil {
		f.Close()
		return &frame.SnapshotWriteError{Target: path, Err: err}
	}
	if err := f.Close(); err != nil {
		return &frame.SnapshotWriteError{Target: path, Err: err}
	}
	return nil
}

// Decode reads Arrow IPC file bytes back into a table. Payloads that are
// not table-shaped (undecodable bytes, or columns of a kind the frame
// cannot hold) fail with an error naming the decoded kind.
func Decode(data []byte) (*frame.Table, error) {
	fr, err := ipc.NewFileReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("not an arrow table: %w", err)
	}
	defer fr.Close()

	schema := fr.Schema()
	cols := make([]frame.Column, schema.NumFields())
	for i := 0; i < schema.NumFields(); i++ {
		field := schema.Field(i)
		switch field.Type.ID() {
		case arrow.FLOAT64:
			cols[i] = frame.Column{Name: field.Name, Type: frame.TypeNumeric}
		case arrow.STRING:
			cols[i] = frame.Column{Name: field.Name, Type: frame.TypeText}
		default:
			return nil, fmt.Errorf("not a table column: %q holds %s, want float64 or utf8",
				field.Name, field.Type.Name())
		}
	}

	for {
		rec, err := fr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("corrupt snapshot batch: %w", err)
		}
		for i := range cols {
			appendArray(&cols[i], rec.Column(i))
		}
	}

	return frame.NewTable(cols)
}

// appendArray copies one record batch's column into the frame column.
func appendArray(col *frame.Column, arr arrow.Array) {
	for j := 0; j < arr.Len(); j++ {
		if arr.IsNull(j) {
			col.Cells = append(col.Cells, frame.Missing())
			continue
		}
		switch a := arr.(type) {
		case *array.Float64:
			col.Cells = append(col.Cells, frame.Number(a.Value(j)))
		case *array.String:
			col.Cells = append(col.Cells, frame.Text(a.Value(j)))
		}
	}
}

func schemaFields(t *frame.Table) []arrow.Field {
	fields := make([]arrow.Field, t.NumCols())
	for i := 0; i < t.NumCols(); i++ {
		col := t.ColumnAt(i)
		dt := arrow.DataType(arrow.BinaryTypes.String)
		if col.Type == frame.TypeNumeric {
			dt = arrow.PrimitiveTypes.Float64
		}
		fields[i] = arrow.Field{Name: col.Name, Type: dt, Nullable: true}
	}
	return fields
}
