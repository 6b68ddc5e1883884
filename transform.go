package cssstrings

import (
	"errors"
	"fmt"
	"strings"

	"github.com/yacobolo/cssstrings/internal/edit"
	"github.com/yacobolo/cssstrings/internal/log"
	"github.com/yacobolo/cssstrings/internal/marker"
	"github.com/yacobolo/cssstrings/internal/minify"
	"github.com/yacobolo/cssstrings/internal/placeholder"
	"github.com/yacobolo/cssstrings/internal/report"
	"github.com/yacobolo/cssstrings/internal/template"
)

// Re-exported so callers outside this module can configure and inspect results.
type (
	MinifyOptions = minify.Options
	Targets       = minify.Targets
	Feature       = minify.Feature
	SourceMap     = edit.SourceMap
	Issue         = report.Issue
	IssuePos      = report.IssuePos
)

// Options configures Transform
type Options struct {
	// Minify is forwarded to the CSS engine after defaults are applied
	Minify MinifyOptions

	// indexer finds template literals; tests swap it out
	indexer template.Indexer
}

// Result is the outcome of transforming one file
type Result struct {
	Code     string     // Full source with marked templates minified
	Map      *SourceMap // Nil when nothing changed
	Warnings []Issue    // Unresolved or skipped markers
	Changes  []Change   // One per rewritten template, in document order
}

// Change describes one rewritten template body
type Change struct {
	Start  int // Byte offset just after the opening backtick
	End    int // Byte offset of the closing backtick
	Before string
	After  string
}

// Changed reports whether any template was rewritten
func (r *Result) Changed() bool {
	return r != nil && len(r.Changes) > 0
}

var defaultIndexer template.Indexer = template.NewTreeSitter()

// Transform minifies every marked CSS template in code. id is the module id
// and may carry a `?query` suffix.
//
// It returns a nil Result when id is not a target file or code holds no
// marker. Markers that cannot be resolved to a template are skipped and
// reported as warnings. A template that cannot be minified fails the whole
// file; the error names the file and the template's 1-based offset.
// Offsets in warnings and errors count UTF-16 code units.
func Transform(code, id string, opts Options) (*Result, error) {
	if !IsTargetFile(id) || !marker.Present(code) {
		return nil, nil
	}

	filename := stripQuery(id)
	indexer := opts.indexer
	if indexer == nil {
		indexer = defaultIndexer
	}

	idx, err := indexer.Index(code, LanguageOf(filename))
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", filename, err)
	}

	scan := marker.Scan(code, idx)
	result := &Result{Code: code}

	for _, off := range scan.Unresolved {
		result.warn(filename, code, off, fmt.Sprintf(report.IssueUnresolvedTemplate, report.CharOffset(code, off)+1))
	}

	edits := edit.New(code)
	for _, tmpl := range scan.Templates {
		start, end := tmpl.StartBacktick+1, tmpl.EndBacktick
		before := code[start:end]

		charOffset := report.CharOffset(code, tmpl.StartBacktick) + 1

		// Engines may case-fold identifiers, so any casing of the prefix is reserved
		if strings.Contains(strings.ToUpper(before), placeholder.DefaultPrefix) {
			result.warn(filename, code, tmpl.StartBacktick, fmt.Sprintf(report.IssueReservedPrefix, charOffset, placeholder.DefaultPrefix))
			continue
		}

		after, err := minifyTemplate(tmpl, filename, opts.Minify)
		if err != nil {
			return nil, templateError(filename, charOffset, err)
		}
		if after == before {
			continue
		}

		if err := edits.Replace(start, end, after); err != nil {
			return nil, fmt.Errorf("%s: %w", filename, err)
		}
		result.Changes = append(result.Changes, Change{Start: start, End: end, Before: before, After: after})
		log.Debug("%s: minified template at offset %d (%d -> %d bytes)", filename, start, len(before), len(after))
	}

	if !result.Changed() {
		if len(result.Warnings) == 0 {
			return nil, nil
		}
		return result, nil
	}

	result.Code = edits.Apply()
	result.Map = edits.SourceMap(filename)
	return result, nil
}

func (r *Result) warn(filename, code string, off int, text string) {
	issue := report.NewIssue(filename, code, off, report.SeverityWarning, text)
	log.Warn("%s:%d:%d: %s", filename, issue.Pos.Line, issue.Pos.Column, text)
	r.Warnings = append(r.Warnings, issue)
}

// minifyTemplate runs one template through placeholder substitution, the
// CSS engine and restoration. The result is ready to sit between backticks.
func minifyTemplate(tmpl template.Template, filename string, opts MinifyOptions) (string, error) {
	built := placeholder.Build(tmpl.Segments, placeholder.DefaultPrefix)

	minified, err := minify.Minify(built.Combined, filename, opts)
	if err != nil {
		return "", err
	}

	return placeholder.Restore(minified, built.Placeholders, tmpl.Exprs())
}

// templateError attaches the template offset to a per-template failure
func templateError(filename string, offset int, err error) error {
	var minifyErr *minify.Error
	if errors.As(err, &minifyErr) {
		minifyErr.Offset = offset
		return minifyErr
	}
	return &TemplateError{Filename: filename, Offset: offset, Err: err}
}
