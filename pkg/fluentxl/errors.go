package fluentxl

import (
	"errors"
	"fmt"
)

// ErrSheetNotFound indicates the named worksheet does not exist.
var ErrSheetNotFound = errors.New("sheet not found")

// ErrSheetExists indicates a worksheet with the name already exists.
var ErrSheetExists = errors.New("sheet already exists")

// ErrInvalidRef indicates a malformed cell or range reference.
var ErrInvalidRef = errors.New("invalid cell reference")

// OperationError is a failed operation on a sheet, cell or range.
type OperationError struct {
	Sheet string
	Ref   string // cell or range, empty for sheet-level operations
	Op    string // e.g. "set value", "style", "merge"
	Err   error
}

func (e *OperationError) Error() string {
	if e.Ref == "" {
		return fmt.Sprintf("%s on sheet %q: %v", e.Op, e.Sheet, e.Err)
	}
	return fmt.Sprintf("%s on %q!%s: %v", e.Op, e.Sheet, e.Ref, e.Err)
}

func (e *OperationError) Unwrap() error {
	return e.Err
}

// NewOperationError creates a new OperationError.
func NewOperationError(sheet, ref, op string, err error) *OperationError {
	return &OperationError{
		Sheet: sheet,
		Ref:   ref,
		Op:    op,
		Err:   err,
	}
}
