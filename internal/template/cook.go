package template

import (
	"strconv"
	"strings"
	"unicode/utf16"
	"unicode/utf8"
)

// Cook decodes the escape sequences of a raw template chunk into the string
// value it has at runtime. Line terminators are normalised to LF. Escapes that
// are invalid in a template (allowed in tagged templates) are kept raw.
func Cook(raw string) string {
	if !strings.ContainsAny(raw, "\\\r") {
		return raw
	}

	var b strings.Builder
	b.Grow(len(raw))

	for i := 0; i < len(raw); {
		c := raw[i]

		if c == '\r' {
			b.WriteByte('\n')
			i++
			if i < len(raw) && raw[i] == '\n' {
				i++
			}
			continue
		}

		if c != '\\' || i+1 >= len(raw) {
			b.WriteByte(c)
			i++
			continue
		}

		n := cookEscape(&b, raw, i+1)
		if n == 0 {
			// invalid escape, keep the backslash and move on
			b.WriteByte(c)
			i++
			continue
		}
		i += 1 + n
	}

	return b.String()
}

// cookEscape writes the value of the escape starting at raw[at] (just after
// the backslash) and returns the number of bytes consumed, or 0 if invalid.
func cookEscape(b *strings.Builder, raw string, at int) int {
	switch c := raw[at]; c {
	case 'n':
		b.WriteByte('\n')
	case 't':
		b.WriteByte('\t')
	case 'r':
		b.WriteByte('\r')
	case 'b':
		b.WriteByte('\b')
	case 'f':
		b.WriteByte('\f')
	case 'v':
		b.WriteByte('\v')
	case '0':
		if at+1 < len(raw) && isDigit(raw[at+1]) {
			return 0
		}
		b.WriteByte(0)
	case '\n':
		// line continuation
	case '\r':
		if at+1 < len(raw) && raw[at+1] == '\n' {
			return 2
		}
	case 'x':
		r, ok := parseHex(raw, at+1, 2)
		if !ok {
			return 0
		}
		b.WriteRune(r)
		return 3
	case 'u':
		return cookUnicode(b, raw, at)
	default:
		if isDigit(c) {
			return 0
		}
		r, size := utf8.DecodeRuneInString(raw[at:])
		// U+2028 and U+2029 are line continuations too
		if r != '\u2028' && r != '\u2029' {
			b.WriteRune(r)
		}
		return size
	}
	return 1
}

// cookUnicode handles \uXXXX, surrogate pairs and \u{X...}; raw[at] is 'u'
func cookUnicode(b *strings.Builder, raw string, at int) int {
	if at+1 < len(raw) && raw[at+1] == '{' {
		end := strings.IndexByte(raw[at+2:], '}')
		if end <= 0 {
			return 0
		}
		v, err := strconv.ParseUint(raw[at+2:at+2+end], 16, 32)
		if err != nil || v > utf8.MaxRune {
			return 0
		}
		b.WriteRune(rune(v))
		return end + 3
	}

	r, ok := parseHex(raw, at+1, 4)
	if !ok {
		return 0
	}

	if utf16.IsSurrogate(r) && strings.HasPrefix(raw[at+5:], `\u`) {
		if lo, ok := parseHex(raw, at+7, 4); ok {
			if pair := utf16.DecodeRune(r, lo); pair != utf8.RuneError {
				b.WriteRune(pair)
				return 11
			}
		}
	}

	b.WriteRune(r)
	return 5
}

func parseHex(s string, at, n int) (rune, bool) {
	if at+n > len(s) {
		return 0, false
	}
	v, err := strconv.ParseUint(s[at:at+n], 16, 32)
	if err != nil {
		return 0, false
	}
	return rune(v), true
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
