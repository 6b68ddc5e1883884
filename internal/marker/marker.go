// Package marker finds opt-in `/* css */` comments that precede template literals.
package marker

import (
	"regexp"

	"github.com/yacobolo/cssstrings/internal/placeholder"
	"github.com/yacobolo/cssstrings/internal/template"
)

// Pattern matches the marker comment: /* css */ or /*css*/
var Pattern = regexp.MustCompile(`/\*\s*css\s*\*/`)

// Present reports whether code contains any marker at all
func Present(code string) bool {
	return Pattern.MatchString(code)
}

// Result holds the outcome of one scan
type Result struct {
	// Templates are the marked templates, in document order
	Templates []template.Template
	// Unresolved holds backtick offsets that followed a marker but had no indexed template
	Unresolved []int
}

// Scan walks code for markers followed (after whitespace) by a backtick and
// resolves each against idx. Markers before anything else are ignored. The
// scan resumes after each consumed template's closing backtick.
func Scan(code string, idx template.Index) Result {
	var result Result

	for from := 0; from < len(code); {
		loc := Pattern.FindStringIndex(code[from:])
		if loc == nil {
			break
		}

		i := from + loc[1]
		for i < len(code) && placeholder.IsWhitespace(code[i]) {
			i++
		}

		if i >= len(code) || code[i] != '`' {
			from = i
			continue
		}

		tmpl, ok := idx[i]
		if !ok {
			result.Unresolved = append(result.Unresolved, i)
			from = i + 1
			continue
		}

		result.Templates = append(result.Templates, tmpl)
		from = tmpl.EndBacktick + 1
	}

	return result
}
