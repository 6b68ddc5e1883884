// Package report holds diagnostics and renders them for the terminal in
// golangci-lint format.
package report

// Issue is a single diagnostic in golangci-lint format
type Issue struct {
	FromLinter  string   `json:"FromLinter"`  // "cssstrings"
	Text        string   `json:"Text"`        // "failed to minify CSS in src/a.ts: ..."
	Severity    string   `json:"Severity"`    // "warning" or "error"
	SourceLines []string `json:"SourceLines"` // Line holding the template's opening backtick
	Pos         IssuePos `json:"Pos"`
}

// IssuePos specifies the exact location of an issue
type IssuePos struct {
	Filename string `json:"Filename"`
	Offset   int    `json:"Offset"` // 1-based UTF-16 character offset of the opening backtick
	Line     int    `json:"Line"`
	Column   int    `json:"Column"` // 1-based byte column
}

// Severity constants
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
)

// Linter name shown after each issue
const LinterName = "cssstrings"

// Issue message formats
const (
	IssueUnresolvedTemplate = "marked template at offset %d could not be parsed; left unminified"
	IssueReservedPrefix     = "marked template at offset %d contains the reserved prefix %q; left unminified"
	IssueMinifiable         = "css template can be minified (%d -> %d bytes)"
)

// Locate computes the 1-based line and column of byte offset off in source,
// along with the text of that line.
func Locate(source string, off int) (line, column int, text string) {
	if off > len(source) {
		off = len(source)
	}
	line = 1
	start := 0
	for i := 0; i < off; i++ {
		if source[i] == '\n' {
			line++
			start = i + 1
		}
	}
	end := start
	for end < len(source) && source[end] != '\n' {
		end++
	}
	return line, off - start + 1, source[start:end]
}

// NewIssue builds an issue pointing at byte offset off of source. The
// reported Offset counts characters, the Column counts bytes.
func NewIssue(filename, source string, off int, severity, text string) Issue {
	line, col, lineText := Locate(source, off)
	return Issue{
		FromLinter:  LinterName,
		Text:        text,
		Severity:    severity,
		SourceLines: []string{lineText},
		Pos: IssuePos{
			Filename: filename,
			Offset:   CharOffset(source, off) + 1,
			Line:     line,
			Column:   col,
		},
	}
}

// Count returns the number of errors and warnings in issues
func Count(issues []Issue) (errors, warnings int) {
	for _, issue := range issues {
		switch issue.Severity {
		case SeverityError:
			errors++
		case SeverityWarning:
			warnings++
		}
	}
	return errors, warnings
}
