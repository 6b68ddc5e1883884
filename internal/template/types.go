package template

// SegmentKind distinguishes literal text from an embedded expression
type SegmentKind int

const (
	// SegmentText is literal template text (cooked, escapes decoded)
	SegmentText SegmentKind = iota
	// SegmentExpr is the source text of a ${...} expression
	SegmentExpr
)

// Segment is one ordered piece of a template literal.
// For SegmentText, Value is the cooked text; for SegmentExpr, Value is the
// verbatim source text of the expression (never evaluated).
type Segment struct {
	Kind  SegmentKind
	Value string
}

// Text builds a text segment
func Text(value string) Segment {
	return Segment{Kind: SegmentText, Value: value}
}

// Expr builds an expression segment
func Expr(source string) Segment {
	return Segment{Kind: SegmentExpr, Value: source}
}

// Template is a template literal indexed by the offset of its opening backtick
type Template struct {
	StartBacktick int // Byte offset of the opening backtick
	EndBacktick   int // Byte offset of the closing backtick
	Segments      []Segment
}

// Exprs returns the expression source texts in document order
func (t Template) Exprs() []string {
	var exprs []string
	for _, seg := range t.Segments {
		if seg.Kind == SegmentExpr {
			exprs = append(exprs, seg.Value)
		}
	}
	return exprs
}

// Index maps an opening-backtick offset to its template
type Index map[int]Template
