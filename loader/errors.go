package loader

import (
	"errors"
	"fmt"
)

// Error kinds.
var (
	// ErrResourceNotFound indicates the input path does not exist.
	ErrResourceNotFound = errors.New("loader: resource not found")

	// ErrMalformedInput indicates unparsable or structurally invalid content.
	ErrMalformedInput = errors.New("loader: malformed input")
)

// Error locates a load failure. Line is 0 when unknown.
type Error struct {
	Path string
	Line int
	Err  error
}

// Error implements error.
func (e *Error) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s:%d: %v", e.Path, e.Line, e.Err)
	}

	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

// Unwrap exposes the kind (and any cause) to errors.Is/As.
func (e *Error) Unwrap() error { return e.Err }

// malformed wraps a cause as ErrMalformedInput at path:line.
func malformed(path string, line int, format string, args ...any) *Error {
	return &Error{Path: path, Line: line, Err: fmt.Errorf("%w: "+format, append([]any{ErrMalformedInput}, args...)...)}
}

// invalid wraps both ErrMalformedInput and cause at path:line.
func invalid(path string, line int, what string, cause error) *Error {
	return &Error{Path: path, Line: line, Err: fmt.Errorf("%w: %s: %w", ErrMalformedInput, what, cause)}
}
