// Package placeholder substitutes CSS-safe tokens for template interpolations
// and reverses the substitution after minification.
//
// Each ${expr} is replaced by one of three shapes chosen from the local
// lexical context (see Classify):
//
//	identifier  __CSS_STR_EXPR_0__                        .${cls} { }   --${name}: 1px
//	value       var(--__CSS_STR_EXPR_0__)                 color: ${c}
//	rule        .____CSS_STR_EXPR_0__{--__CSS_STR_EXPR_0__:0}   a{} ${chunk} b{}
//
// The heuristic only looks at one character either side of the interpolation
// plus a single brace/colon backscan; it is not a CSS parser.
package placeholder

import (
	"strconv"
	"strings"

	"github.com/yacobolo/cssstrings/internal/log"
	"github.com/yacobolo/cssstrings/internal/template"
)

// DefaultPrefix is reserved for placeholder names. Source CSS must not contain it.
const DefaultPrefix = "__CSS_STR_EXPR_"

// BuildResult is the combined CSS plus one placeholder per expression, in order
type BuildResult struct {
	Combined     string
	Placeholders []string
}

// Name returns the reserved identifier for expression index i
func Name(prefix string, i int) string {
	return prefix + strconv.Itoa(i) + "__"
}

// Token renders the placeholder of the given kind for expression index i
func Token(kind Kind, prefix string, i int) string {
	name := Name(prefix, i)
	switch kind {
	case KindIdentifier:
		return name
	case KindRule:
		return ".__" + name + "{--" + name + ":0}"
	default:
		return "var(--" + name + ")"
	}
}

// IsRuleToken reports whether token has the rule placeholder shape
func IsRuleToken(token string) bool {
	return strings.HasPrefix(token, ".__") && strings.HasSuffix(token, ":0}")
}

// Build concatenates the segments into one CSS text, substituting a
// context-appropriate placeholder for every expression segment.
func Build(segments []template.Segment, prefix string) BuildResult {
	var (
		combined     strings.Builder
		placeholders []string
	)

	for i, seg := range segments {
		if seg.Kind == template.SegmentText {
			combined.WriteString(seg.Value)
			continue
		}

		nextText, hasNextText := "", false
		if i+1 < len(segments) && segments[i+1].Kind == template.SegmentText {
			nextText, hasNextText = segments[i+1].Value, true
		}

		exprIndex := len(placeholders)
		kind := Classify(NewContext(combined.String(), nextText, hasNextText))
		token := Token(kind, prefix, exprIndex)

		log.Debug("expression %d (%s) -> %s placeholder", exprIndex, seg.Value, kind)

		placeholders = append(placeholders, token)
		combined.WriteString(token)
	}

	return BuildResult{
		Combined:     combined.String(),
		Placeholders: placeholders,
	}
}
