package minify

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/evanw/esbuild/pkg/api"
	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// cssSyntaxError is esbuild's message ID for recoverable CSS syntax problems,
// which it reports as warnings
const cssSyntaxError = "css-syntax-error"

type esbuildEngine struct{}

func (esbuildEngine) Name() string { return EngineESBuild }

func (esbuildEngine) Minify(css, filename string, opts Options) (string, error) {
	result := api.Transform(css, api.TransformOptions{
		Loader:           api.LoaderCSS,
		Sourcefile:       filename,
		MinifyWhitespace: true,
		MinifySyntax:     true,
		Engines:          opts.Targets.engines(),
		Supported:        opts.supported(),
		LogLevel:         api.LogLevelSilent,
	})

	failures := result.Errors
	if !opts.Lenient {
		for _, w := range result.Warnings {
			if w.ID == cssSyntaxError {
				failures = append(failures, w)
			}
		}
	}
	if len(failures) > 0 {
		return "", messagesError(failures)
	}

	return trimCustomPropertySpace(strings.TrimSpace(string(result.Code))), nil
}

// trimCustomPropertySpace drops the whitespace esbuild keeps after the colon
// of a `--name: value` declaration. Whitespace that is the whole value stays.
func trimCustomPropertySpace(text string) string {
	if !strings.Contains(text, "--") {
		return text
	}

	var (
		out       strings.Builder
		l         = css.NewLexer(parse.NewInputString(text))
		boundary  = true // last token was `{`, `}`, `;` or nothing
		propStart bool   // last token is a custom property name opening a declaration
		inValue   bool   // just past the colon of a custom property
		pending   []byte // whitespace held back until the value starts
	)

	for {
		tt, data := l.Next()
		if tt == css.ErrorToken {
			if l.Err() != io.EOF {
				return text
			}
			out.Write(pending)
			return out.String()
		}

		if tt == css.WhitespaceToken {
			if inValue {
				pending = append(pending, data...)
			} else {
				out.Write(data)
			}
			continue
		}

		if inValue {
			if tt == css.SemicolonToken || tt == css.RightBraceToken {
				out.Write(pending)
			}
			inValue, pending = false, pending[:0]
		}

		inValue = tt == css.ColonToken && propStart
		propStart = tt == css.CustomPropertyNameToken && boundary
		boundary = tt == css.LeftBraceToken || tt == css.RightBraceToken || tt == css.SemicolonToken

		out.Write(data)
	}
}
