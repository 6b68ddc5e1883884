package minify

import (
	"errors"
	"fmt"
)

// ErrUnwrapShape is matched by errors.Is for every UnwrapShapeError
var ErrUnwrapShape = errors.New("wrapped declarations came back in an unexpected shape")

// Error is a minification failure for one file
type Error struct {
	Filename string
	Offset   int // 1-based UTF-16 offset of the template, 0 when unknown
	Cause    error
}

func (e *Error) Error() string {
	if e.Offset > 0 {
		return fmt.Sprintf("failed to minify CSS in %s at offset %d: %v", e.Filename, e.Offset, e.Cause)
	}
	return fmt.Sprintf("failed to minify CSS in %s: %v", e.Filename, e.Cause)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// UnwrapShapeError is the cause of an Error when the declaration-block
// fallback produced output without the expected wrapper. It points at a
// defect in classification or the fallback, not at user input.
type UnwrapShapeError struct {
	Output string
}

func (e *UnwrapShapeError) Error() string {
	return fmt.Sprintf("%v: %q", ErrUnwrapShape, e.Output)
}

func (e *UnwrapShapeError) Unwrap() error {
	return ErrUnwrapShape
}
