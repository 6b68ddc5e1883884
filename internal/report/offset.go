package report

import (
	"unicode/utf16"
	"unicode/utf8"
)

// CharOffset converts byte offset off in source to a character offset
// counted in UTF-16 code units, as JavaScript tooling counts them.
// Invalid UTF-8 bytes count as one unit each.
func CharOffset(source string, off int) int {
	if off > len(source) {
		off = len(source)
	}

	units := 0
	for i := 0; i < off; {
		r, size := utf8.DecodeRuneInString(source[i:])
		if r == utf8.RuneError && size == 1 {
			units++
			i++
			continue
		}
		units += utf16.RuneLen(r)
		i += size
	}
	return units
}

// ByteOffset is the inverse of CharOffset. A character offset that falls
// inside a surrogate pair is clamped to the start of the rune.
func ByteOffset(source string, chars int) int {
	units, i := 0, 0
	for i < len(source) && units < chars {
		r, size := utf8.DecodeRuneInString(source[i:])
		n := 1
		if !(r == utf8.RuneError && size == 1) {
			n = utf16.RuneLen(r)
		}
		if units+n > chars {
			break
		}
		units += n
		i += size
	}
	return i
}
