package xlspect

import (
	"errors"
	"fmt"
)

// ErrSheetNotFound indicates the requested sheet name is not in the workbook.
var ErrSheetNotFound = errors.New("sheet not found")

// LoadKind classifies a workbook load failure.
type LoadKind string

const (
	// LoadCorrupt means the container could not be parsed.
	LoadCorrupt LoadKind = "corrupt"
	// LoadEmpty means the file contained no sheets.
	LoadEmpty LoadKind = "empty"
	// LoadUnsupported means the container is recognized but not readable,
	// e.g. a password-protected workbook.
	LoadUnsupported LoadKind = "unsupported"
	// LoadTimeout means the load exceeded its wall-clock bound.
	LoadTimeout LoadKind = "timeout"
)

// LoadError represents a workbook load failure. Load errors abort the whole
// pipeline and are surfaced verbatim; none are retried automatically.
type LoadError struct {
	Kind LoadKind
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load workbook (%s): %v", e.Kind, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

func newLoadError(kind LoadKind, err error) *LoadError {
	return &LoadError{Kind: kind, Err: err}
}

// SerializeError represents a workbook re-serialization failure. It never
// affects the in-memory workbook: the caller may retry the same download
// without reloading the file.
type SerializeError struct {
	Err error
}

func (e *SerializeError) Error() string {
	return fmt.Sprintf("serialize workbook: %v", e.Err)
}

func (e *SerializeError) Unwrap() error {
	return e.Err
}
