package placeholder

import "strings"

// Kind is the lexical shape of a placeholder
type Kind int

const (
	// KindValue is var(--name), valid wherever a declaration value is
	KindValue Kind = iota
	// KindIdentifier is a bare identifier for selector fragments and custom property names
	KindIdentifier
	// KindRule is a complete dummy rule for interpolations occupying a rule position
	KindRule
)

// String returns the kind name used in debug logging
func (k Kind) String() string {
	switch k {
	case KindIdentifier:
		return "identifier"
	case KindRule:
		return "rule"
	default:
		return "value"
	}
}

// Context is the local lexical neighbourhood of one interpolation.
// Prev is the last non-whitespace byte already emitted and Next the first
// non-whitespace byte of the following text segment.
type Context struct {
	Combined string // CSS emitted so far, placeholders included
	Prev     byte
	HasPrev  bool
	Next     byte
	HasNext  bool
}

// NewContext derives the context from the emitted buffer and the next text segment.
// Pass hasNextText=false when the following segment is not text.
func NewContext(combined, nextText string, hasNextText bool) Context {
	ctx := Context{Combined: combined}
	ctx.Prev, ctx.HasPrev = LastNonWhitespace(combined)
	if hasNextText {
		ctx.Next, ctx.HasNext = FirstNonWhitespace(nextText)
	}
	return ctx
}

func (c Context) prevIs(chars string) bool {
	return c.HasPrev && strings.IndexByte(chars, c.Prev) >= 0
}

func (c Context) nextIs(chars string) bool {
	return c.HasNext && strings.IndexByte(chars, c.Next) >= 0
}

// InValue reports whether the interpolation sits inside a declaration value
func (c Context) InValue() bool {
	return c.prevIs(":") || InDeclarationValue(c.Combined)
}

// InCustomPropertyName matches `--${expr}:`
func (c Context) InCustomPropertyName() bool {
	return strings.HasSuffix(c.Combined, "--") && c.nextIs(":")
}

// ProbablySelector matches `.${x}`, `#${x}` and whole-selector `${x} { ... }`
func (c Context) ProbablySelector() bool {
	if c.InValue() {
		return false
	}
	return c.prevIs(".#") || c.nextIs("{,.#:[>+~*")
}

// ProbablyRuleList matches an interpolation standing alone between rules
func (c Context) ProbablyRuleList() bool {
	if c.InValue() {
		return false
	}
	boundaryBefore := !c.HasPrev || c.prevIs("{};")
	boundaryAfter := !c.HasNext || c.nextIs("}@") || isSelectorStart(c.Next)
	return boundaryBefore && boundaryAfter
}

// Classify picks the placeholder shape. Rule beats identifier beats value.
func Classify(c Context) Kind {
	switch {
	case c.ProbablyRuleList():
		return KindRule
	case c.InCustomPropertyName() || c.ProbablySelector():
		return KindIdentifier
	default:
		return KindValue
	}
}

// isSelectorStart reports whether c can begin a compound selector.
// The zero byte (no next character) is not a selector start.
func isSelectorStart(c byte) bool {
	switch {
	case c == '.', c == '#', c == '*', c == ':', c == '[', c == '&', c == '-', c == '_':
		return true
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
		return true
	}
	return false
}

// InDeclarationValue scans back from the end of combined and reports whether
// it ends inside an open declaration (`prop: value` with no `{` before the
// next terminator) of an open block.
func InDeclarationValue(combined string) bool {
	lastOpen := strings.LastIndexByte(combined, '{')
	lastClose := strings.LastIndexByte(combined, '}')
	if lastOpen == -1 || lastOpen < lastClose {
		return false
	}

	statementStart := max(lastOpen, strings.LastIndexByte(combined, ';'))

	colon := indexFrom(combined, ':', statementStart+1)
	if colon == -1 {
		return false
	}

	nextOpen := indexFrom(combined, '{', colon+1)
	declEnd := minFound(indexFrom(combined, ';', colon+1), indexFrom(combined, '}', colon+1))

	// A `{` before the declaration ends means the colon belonged to a nested selector
	if nextOpen != -1 && (declEnd == -1 || nextOpen < declEnd) {
		return false
	}
	return true
}

// indexFrom is strings.IndexByte starting at from, returning an absolute index or -1
func indexFrom(s string, c byte, from int) int {
	if from >= len(s) {
		return -1
	}
	i := strings.IndexByte(s[from:], c)
	if i == -1 {
		return -1
	}
	return from + i
}

// minFound returns the smaller of two indexes, ignoring -1
func minFound(a, b int) int {
	switch {
	case a == -1:
		return b
	case b == -1:
		return a
	}
	return min(a, b)
}
