package frame

import (
	"fmt"
	"strconv"
	"strings"
)

// ============================================================================
// SLICE RESOLVER — start:stop:step over row positions
// ============================================================================
// Parses the positional-range notation into an explicit SliceSpec, then
// resolves it against a row count into concrete positions. Parsing is
// exhaustive: every malformed input is rejected before resolution.
// ============================================================================

// SliceSpec is a parsed positional range. A nil field was left empty and
// takes its positional default at resolve time.
type SliceSpec struct {
	Start *int
	Stop  *int
	Step  *int

	raw string // original expression, for error messages
}

// ParseSlice parses up to three colon-separated integer-or-empty fields.
// A lone field is the exclusive upper bound: "5" means rows 0 through 4.
func ParseSlice(text string) (SliceSpec, error) {
	fields := strings.Split(text, ":")
	if len(fields) > 3 {
		return SliceSpec{}, &SliceError{Spec: text, Reason: "more than three fields"}
	}

	names := []string{"start", "stop", "step"}
	if len(fields) == 1 {
		names = []string{"stop"}
	}

	parsed := make([]*int, len(fields))
	for i, f := range fields {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		n, err := strconv.Atoi(f)
		if err != nil {
			return SliceSpec{}, &SliceError{
				Spec:   text,
				Reason: fmt.Sprintf("%s field %q is not an integer", names[i], f),
			}
		}
		parsed[i] = &n
	}

	spec := SliceSpec{raw: text}
	if len(fields) == 1 {
		spec.Stop = parsed[0]
		return spec, nil
	}
	spec.Start = parsed[0]
	spec.Stop = parsed[1]
	if len(fields) == 3 {
		spec.Step = parsed[2]
	}
	return spec, nil
}

// Resolve produces the concrete row positions the spec selects out of
// rowCount rows. Negative bounds are offsets from the end; out-of-range
// bounds clamp. An empty range resolves to zero positions, not an error.
func (s SliceSpec) Resolve(rowCount int) ([]int, error) {
	step := 1
	if s.Step != nil {
		step = *s.Step
	}
	if step == 0 {
		return nil, &SliceError{Spec: s.raw, Reason: "step cannot be zero"}
	}

	// Defaults depend on direction: forward walks 0..rowCount, backward
	// walks rowCount-1 down to (exclusive) -1.
	var start, stop int
	if step > 0 {
		start, stop = 0, rowCount
	} else {
		start, stop = rowCount-1, -1
	}
	if s.Start != nil {
		start = clampBound(*s.Start, rowCount, step)
	}
	if s.Stop != nil {
		stop = clampBound(*s.Stop, rowCount, step)
	}

	var positions []int
	if step > 0 {
		for i := start; i < stop; i += step {
			positions = append(positions, i)
		}
	} else {
		for i := start; i > stop; i += step {
			positions = append(positions, i)
		}
	}
	return positions, nil
}

// clampBound normalizes one bound: negative values offset from rowCount,
// then the result clamps into range for the walk direction.
func clampBound(i, rowCount, step int) int {
	if i < 0 {
		i += rowCount
		if i < 0 {
			if step > 0 {
				return 0
			}
			return -1
		}
		return i
	}
	if i >= rowCount {
		if step > 0 {
			return rowCount
		}
		return rowCount - 1
	}
	return i
}
