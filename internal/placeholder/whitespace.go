package placeholder

// IsWhitespace reports whether c is CSS whitespace (space, LF, CR, tab, form feed)
func IsWhitespace(c byte) bool {
	return c == ' ' || c == '\n' || c == '\r' || c == '\t' || c == '\f'
}

// LastNonWhitespace returns the last non-whitespace byte of text.
// ok is false when text is empty or all whitespace.
func LastNonWhitespace(text string) (c byte, ok bool) {
	for i := len(text) - 1; i >= 0; i-- {
		if !IsWhitespace(text[i]) {
			return text[i], true
		}
	}
	return 0, false
}

// FirstNonWhitespace returns the first non-whitespace byte of text.
// ok is false when text is empty or all whitespace.
func FirstNonWhitespace(text string) (c byte, ok bool) {
	for i := 0; i < len(text); i++ {
		if !IsWhitespace(text[i]) {
			return text[i], true
		}
	}
	return 0, false
}
