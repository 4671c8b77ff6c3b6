package litho

import (
	"errors"
	"fmt"
)

// ErrInvalidContainer indicates the workbook file is not a readable zip
// container.
var ErrInvalidContainer = errors.New("invalid spreadsheet container")

// DecodeError reports a fatal failure decoding one part of the container.
// Only the workbook manifest, the relationship manifest, the shared-strings
// part and located sheet parts can produce one; per-cell anomalies never do.
type DecodeError struct {
	Part string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s: %v", e.Part, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

func newDecodeError(part string, err error) *DecodeError {
	return &DecodeError{Part: part, Err: err}
}
