package cssstrings

import (
	"errors"
	"fmt"

	"github.com/yacobolo/cssstrings/internal/minify"
	"github.com/yacobolo/cssstrings/internal/placeholder"
)

// Errors returned by Transform. Use errors.As and errors.Is to inspect them.
type (
	// MinifyError is a CSS engine failure; it carries the file and template offset
	MinifyError = minify.Error
	// UnwrapShapeError is the MinifyError cause when the declaration fallback
	// returned output without the wrapper
	UnwrapShapeError = minify.UnwrapShapeError
	// MissingPlaceholderError reports an interpolation the engine dropped
	MissingPlaceholderError = placeholder.MissingPlaceholderError
	// RulePositionError reports a whole-rule interpolation the engine moved,
	// typically into a selector while flattening nested rules
	RulePositionError = placeholder.RulePositionError
)

// ErrNestingUnsupported is returned for nested CSS by engines other than esbuild
var ErrNestingUnsupported = minify.ErrNestingUnsupported

// ErrUnwrapShape matches every UnwrapShapeError
var ErrUnwrapShape = minify.ErrUnwrapShape

// TemplateError is any other failure while rewriting one template
type TemplateError struct {
	Filename string
	Offset   int // 1-based UTF-16 offset of the opening backtick
	Err      error
}

func (e *TemplateError) Error() string {
	return fmt.Sprintf("%s: css template at offset %d: %v", e.Filename, e.Offset, e.Err)
}

func (e *TemplateError) Unwrap() error {
	return e.Err
}

// errorOffset returns the 1-based template offset carried by err, or 0
func errorOffset(err error) int {
	var minifyErr *MinifyError
	if errors.As(err, &minifyErr) {
		return minifyErr.Offset
	}
	var templateErr *TemplateError
	if errors.As(err, &templateErr) {
		return templateErr.Offset
	}
	return 0
}
