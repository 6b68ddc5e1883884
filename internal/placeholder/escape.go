package placeholder

import "strings"

// EscapeTemplateLiteral doubles backslashes, then escapes backticks, so the
// text keeps its runtime value inside a template literal.
func EscapeTemplateLiteral(content string) string {
	content = strings.ReplaceAll(content, `\`, `\\`)
	return strings.ReplaceAll(content, "`", "\\`")
}

// EscapeInterpolation turns every literal `${` into `\${`.
// Must run after EscapeTemplateLiteral.
func EscapeInterpolation(content string) string {
	return strings.ReplaceAll(content, "${", `\${`)
}
