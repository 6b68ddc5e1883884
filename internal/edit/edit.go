// Package edit accumulates replacements against an unmodified source text and
// renders them, plus a source map, in one final pass.
package edit

import (
	"fmt"
	"sort"
	"strings"
)

// Edit replaces Original[Start:End] with Text
type Edit struct {
	Start int
	End   int
	Text  string
}

// Set is a list of non-overlapping edits against one original text
type Set struct {
	original string
	edits    []Edit
}

// New starts an empty edit set over original
func New(original string) *Set {
	return &Set{original: original}
}

// Replace records a replacement of original[start:end].
// Offsets always refer to the original text, never to edited output.
func (s *Set) Replace(start, end int, text string) error {
	if start < 0 || end < start || end > len(s.original) {
		return fmt.Errorf("edit range [%d,%d) outside source of length %d", start, end, len(s.original))
	}
	for _, e := range s.edits {
		if start < e.End && e.Start < end {
			return fmt.Errorf("edit range [%d,%d) overlaps [%d,%d)", start, end, e.Start, e.End)
		}
	}
	s.edits = append(s.edits, Edit{Start: start, End: end, Text: text})
	return nil
}

// Len returns the number of recorded edits
func (s *Set) Len() int {
	return len(s.edits)
}

// Original returns the unedited text
func (s *Set) Original() string {
	return s.original
}

// sorted returns the edits ordered by start offset
func (s *Set) sorted() []Edit {
	edits := make([]Edit, len(s.edits))
	copy(edits, s.edits)
	sort.SliceStable(edits, func(i, j int) bool {
		return edits[i].Start < edits[j].Start
	})
	return edits
}

// Apply renders the edited text
func (s *Set) Apply() string {
	var b strings.Builder
	b.Grow(len(s.original))

	pos := 0
	for _, e := range s.sorted() {
		b.WriteString(s.original[pos:e.Start])
		b.WriteString(e.Text)
		pos = e.End
	}
	b.WriteString(s.original[pos:])

	return b.String()
}
