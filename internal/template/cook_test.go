package template

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCook(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "plain", raw: ".a { color: red; }", want: ".a { color: red; }"},
		{name: "escaped backtick", raw: "a{content:\"\\`\"}", want: "a{content:\"`\"}"},
		{name: "escaped dollar", raw: `\${x}`, want: "${x}"},
		{name: "escaped backslash", raw: `a\\b`, want: `a\b`},
		{name: "simple escapes", raw: `\n\t\r\b\f\v`, want: "\n\t\r\b\f\v"},
		{name: "null", raw: `\0`, want: "\x00"},
		{name: "hex", raw: `\x41`, want: "A"},
		{name: "unicode", raw: `\u00e9`, want: "é"},
		{name: "unicode braces", raw: `\u{1F600}`, want: "😀"},
		{name: "surrogate pair", raw: `\uD83D\uDE00`, want: "😀"},
		{name: "line continuation", raw: "a\\\nb", want: "ab"},
		{name: "crlf continuation", raw: "a\\\r\nb", want: "ab"},
		{name: "crlf normalised", raw: "a\r\nb\rc", want: "a\nb\nc"},
		{name: "identity escape", raw: `\q`, want: "q"},
		{name: "invalid hex kept raw", raw: `\xZZ`, want: `\xZZ`},
		{name: "trailing backslash kept", raw: `a\`, want: `a\`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Cook(tt.raw))
		})
	}
}
