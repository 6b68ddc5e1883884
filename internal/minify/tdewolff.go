package minify

import (
	"errors"
	"fmt"
	"io"
	"strings"

	tdminify "github.com/tdewolff/minify/v2"
	tdcss "github.com/tdewolff/minify/v2/css"
	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"

	"github.com/yacobolo/cssstrings/internal/placeholder"
)

// ErrNestingUnsupported is returned by engines that cannot flatten nested rules
var ErrNestingUnsupported = errors.New("engine does not lower CSS nesting")

var minifier = tdminify.New()

type tdewolffEngine struct{}

func (tdewolffEngine) Name() string { return EngineTdewolff }

// Minify ignores targets and features: tdewolff never lowers syntax, so
// nested input is refused.
func (tdewolffEngine) Minify(text, _ string, _ Options) (string, error) {
	if err := checkFlat(EngineTdewolff, text); err != nil {
		return "", err
	}

	var out strings.Builder
	if err := tdcss.Minify(minifier, &out, strings.NewReader(text), nil); err != nil {
		return "", err
	}
	return restorePlaceholderCase(strings.TrimSpace(out.String())), nil
}

// checkFlat refuses nested rules, then validates text against the tdewolff
// stylesheet grammar.
func checkFlat(engine, text string) error {
	if hasNesting(text) {
		return fmt.Errorf("%s: %w; use the %s engine", engine, ErrNestingUnsupported, EngineESBuild)
	}
	return validate(text)
}

// validate runs the tdewolff stylesheet grammar over text. Lenient engines
// accept anything, so this is what lets the declaration fallback kick in.
func validate(text string) error {
	p := css.NewParser(parse.NewInputString(text), false)
	for {
		gt, _, _ := p.Next()
		if gt != css.ErrorGrammar {
			continue
		}
		if err := p.Err(); err != io.EOF {
			return fmt.Errorf("invalid CSS: %w", err)
		}
		return nil
	}
}

// hasNesting reports whether a block opens inside a style rule's block.
// Blocks of at-rules (@media, @supports, @keyframes) may hold rules.
func hasNesting(text string) bool {
	var (
		l         = css.NewLexer(parse.NewInputString(text))
		styles    []bool // per open block: true for a style rule
		atRule    bool   // the current prelude starts with an at-keyword
		inPrelude bool   // a prelude has started since the last boundary
	)

	for {
		tt, _ := l.Next()
		switch tt {
		case css.ErrorToken:
			return false
		case css.WhitespaceToken, css.CommentToken:
			continue
		case css.LeftBraceToken:
			if len(styles) > 0 && styles[len(styles)-1] {
				return true
			}
			styles = append(styles, !atRule)
			atRule, inPrelude = false, false
		case css.RightBraceToken:
			if len(styles) > 0 {
				styles = styles[:len(styles)-1]
			}
			atRule, inPrelude = false, false
		case css.SemicolonToken:
			atRule, inPrelude = false, false
		default:
			if !inPrelude {
				atRule = tt == css.AtKeywordToken
				inPrelude = true
			}
		}
	}
}

// restorePlaceholderCase undoes case folding of placeholder names, which
// tdewolff applies to type selectors.
func restorePlaceholderCase(text string) string {
	lower := strings.ToLower(placeholder.DefaultPrefix)
	if lower == placeholder.DefaultPrefix {
		return text
	}
	return strings.ReplaceAll(text, lower, placeholder.DefaultPrefix)
}
