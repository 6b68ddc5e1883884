package placeholder

import (
	"fmt"
	"strings"
)

// MissingPlaceholderError reports a placeholder the minifier dropped or rewrote
type MissingPlaceholderError struct {
	Index       int
	Placeholder string
}

func (e *MissingPlaceholderError) Error() string {
	return fmt.Sprintf("placeholder %d (%s) missing from minified output", e.Index, e.Placeholder)
}

// RulePositionError reports a rule placeholder the minifier moved off a rule
// boundary, e.g. into a descendant selector when lowering nesting
type RulePositionError struct {
	Index       int
	Placeholder string
	Preceding   string
}

func (e *RulePositionError) Error() string {
	return fmt.Sprintf("placeholder %d (%s) no longer stands at a rule boundary after minification (preceded by %q)", e.Index, e.Placeholder, e.Preceding)
}

// Restore escapes the minified CSS for re-embedding in a template literal and
// puts every expression back as ${expr}. placeholders[i] pairs with exprs[i].
// A rule placeholder must still sit at a rule boundary.
//
// Escaping happens on the minifier output alone, so restored interpolations
// are never escaped and any other `${` in the CSS is.
func Restore(minified string, placeholders, exprs []string) (string, error) {
	if len(placeholders) != len(exprs) {
		return "", fmt.Errorf("placeholder count %d does not match expression count %d", len(placeholders), len(exprs))
	}

	escaped := EscapeInterpolation(EscapeTemplateLiteral(minified))

	if len(placeholders) == 0 {
		return escaped, nil
	}

	pairs := make([]string, 0, 2*len(placeholders))
	for i, p := range placeholders {
		if !strings.Contains(escaped, p) {
			return "", &MissingPlaceholderError{Index: i, Placeholder: p}
		}
		if IsRuleToken(p) {
			if err := checkRuleBoundary(escaped, i, p); err != nil {
				return "", err
			}
		}
		pairs = append(pairs, p, "${"+exprs[i]+"}")
	}

	// One pass over the text: restored expressions are never rescanned
	return strings.NewReplacer(pairs...).Replace(escaped), nil
}

// checkRuleBoundary requires every occurrence of rule token p to start the
// text or follow `{`, `}` or `;`, ignoring whitespace
func checkRuleBoundary(text string, i int, p string) error {
	for from := 0; ; {
		at := strings.Index(text[from:], p)
		if at < 0 {
			return nil
		}
		at += from
		if c, ok := LastNonWhitespace(text[:at]); ok && c != '{' && c != '}' && c != ';' {
			start := max(0, at-16)
			return &RulePositionError{Index: i, Placeholder: p, Preceding: text[start:at]}
		}
		from = at + len(p)
	}
}
