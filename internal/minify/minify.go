// Package minify wraps the external CSS minifiers.
//
// Minify hands the CSS to the configured engine. When that fails and the
// input is a bare declaration list (inline style content), it retries with
// the declarations wrapped in a reserved selector and strips the wrapper off
// the result.
package minify

import (
	"fmt"
	"strings"

	"github.com/yacobolo/cssstrings/internal/log"
)

// WrapperSelector is the reserved selector used by the declaration fallback
const WrapperSelector = ".__CSS_STR_DECLS__"

// Engine is one external CSS minifier
type Engine interface {
	Name() string
	Minify(css, filename string, opts Options) (string, error)
}

// Minify minifies css with defaults applied to opts. Failures are returned as *Error.
func Minify(css, filename string, opts Options) (string, error) {
	opts = opts.WithDefaults()

	engine, err := EngineFor(opts.Engine)
	if err != nil {
		return "", &Error{Filename: filename, Cause: err}
	}

	out, err := engine.Minify(css, filename, opts)
	if err == nil {
		return out, nil
	}

	if !IsDeclarationsOnly(css) {
		return "", &Error{Filename: filename, Cause: err}
	}

	log.Debug("%s: retrying as declaration block after: %v", filename, err)

	wrapped, wrapErr := engine.Minify(WrapperSelector+"{"+css+"}", filename, opts)
	if wrapErr != nil {
		return "", &Error{
			Filename: filename,
			Cause:    fmt.Errorf("declaration block fallback: %w (first attempt: %v)", wrapErr, err),
		}
	}

	inner, ok := unwrap(wrapped)
	if !ok {
		return "", &Error{Filename: filename, Cause: &UnwrapShapeError{Output: wrapped}}
	}
	return inner, nil
}

// IsDeclarationsOnly reports whether css looks like `prop: value;` pairs with
// no block and no at-rule
func IsDeclarationsOnly(css string) bool {
	trimmed := strings.TrimSpace(css)
	if trimmed == "" || strings.HasPrefix(trimmed, "@") {
		return false
	}
	if strings.ContainsAny(trimmed, "{}") {
		return false
	}
	return strings.Contains(trimmed, ":") && strings.Contains(trimmed, ";")
}

func unwrap(out string) (string, bool) {
	prefix := WrapperSelector + "{"
	if !strings.HasPrefix(out, prefix) || !strings.HasSuffix(out, "}") || len(out) < len(prefix)+1 {
		return "", false
	}
	return out[len(prefix) : len(out)-1], true
}
