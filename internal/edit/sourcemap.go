package edit

import (
	"encoding/base64"
	"encoding/json"
	"strings"
	"unicode/utf8"
)

// SourceMap is a version 3 source map. Columns count UTF-16 code units.
type SourceMap struct {
	Version        int      `json:"version"`
	File           string   `json:"file,omitempty"`
	Sources        []string `json:"sources"`
	SourcesContent []string `json:"sourcesContent"`
	Names          []string `json:"names"`
	Mappings       string   `json:"mappings"`
}

// String returns the JSON encoding of the map
func (m *SourceMap) String() string {
	data, err := json.Marshal(m)
	if err != nil {
		// only strings and ints, cannot fail
		panic(err)
	}
	return string(data)
}

// DataURL returns the map as a base64 data URL for a sourceMappingURL comment
func (m *SourceMap) DataURL() string {
	return "data:application/json;charset=utf-8;base64," + base64.StdEncoding.EncodeToString([]byte(m.String()))
}

// SourceMap maps every unchanged character of the edited output to itself and
// each replacement (and each line it spans) to the start of the replaced range.
func (s *Set) SourceMap(source string) *SourceMap {
	var (
		m   mappings
		ori position
		pos int
	)

	copyUnchanged := func(text string) {
		for _, r := range text {
			m.add(ori.line, ori.col)
			m.advance(r)
			ori.advance(r)
		}
	}

	for _, e := range s.sorted() {
		copyUnchanged(s.original[pos:e.Start])

		m.add(ori.line, ori.col)
		for _, r := range e.Text {
			m.advance(r)
			if r == '\n' {
				m.add(ori.line, ori.col)
			}
		}

		for _, r := range s.original[e.Start:e.End] {
			ori.advance(r)
		}
		pos = e.End
	}
	copyUnchanged(s.original[pos:])

	return &SourceMap{
		Version:        3,
		Sources:        []string{source},
		SourcesContent: []string{s.original},
		Names:          []string{},
		Mappings:       m.b.String(),
	}
}

// position is a zero-based line and UTF-16 column in the original text
type position struct {
	line, col int
}

func (p *position) advance(r rune) {
	if r == '\n' {
		p.line++
		p.col = 0
		return
	}
	p.col += utf16Len(r)
}

// mappings encodes segments of [genCol, source 0, origLine, origCol]
type mappings struct {
	b                 strings.Builder
	genCol            int
	lastGenCol        int
	lastLine, lastCol int
	lineHasSegment    bool
}

func (m *mappings) add(origLine, origCol int) {
	if m.lineHasSegment {
		m.b.WriteByte(',')
	}
	writeVLQ(&m.b, m.genCol-m.lastGenCol)
	writeVLQ(&m.b, 0)
	writeVLQ(&m.b, origLine-m.lastLine)
	writeVLQ(&m.b, origCol-m.lastCol)

	m.lastGenCol = m.genCol
	m.lastLine, m.lastCol = origLine, origCol
	m.lineHasSegment = true
}

// advance moves the generated position past r
func (m *mappings) advance(r rune) {
	if r != '\n' {
		m.genCol += utf16Len(r)
		return
	}
	m.b.WriteByte(';')
	m.genCol, m.lastGenCol = 0, 0
	m.lineHasSegment = false
}

func utf16Len(r rune) int {
	if r >= 0x10000 && r <= utf8.MaxRune {
		return 2
	}
	return 1
}

const base64Digits = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"

func writeVLQ(b *strings.Builder, v int) {
	u := v << 1
	if v < 0 {
		u = (-v << 1) | 1
	}
	for {
		digit := u & 31
		u >>= 5
		if u > 0 {
			digit |= 32
		}
		b.WriteByte(base64Digits[digit])
		if u == 0 {
			return
		}
	}
}
