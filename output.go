package cssstrings

import (
	"fmt"
	"io"
	"os"

	"github.com/yacobolo/cssstrings/internal/report"
)

// OutputFormat represents the report output format
type OutputFormat string

const (
	// OutputIssues prints issues in golangci-lint format plus a count summary
	OutputIssues OutputFormat = "issues"
	// OutputSummary prints one line per changed file
	OutputSummary OutputFormat = "summary"
	// OutputFull prints changed files, then issues
	OutputFull OutputFormat = "full"
	// OutputJSON prints a machine-readable report
	OutputJSON OutputFormat = "json"
)

// ReportConfig controls terminal rendering of a run
type ReportConfig = report.Config

// DetermineOutputFormat selects the output format from the flag value.
// Unknown values fall back to the default.
func DetermineOutputFormat(formatFlag string) OutputFormat {
	switch OutputFormat(formatFlag) {
	case OutputIssues, OutputSummary, OutputFull, OutputJSON:
		return OutputFormat(formatFlag)
	default:
		return OutputIssues
	}
}

// WriteOutput writes the run result in the specified format
func WriteOutput(w io.Writer, result *RunResult, format OutputFormat, config ReportConfig) {
	switch format {
	case OutputIssues:
		reporter := report.NewReporter(w, config)
		reporter.PrintIssues(result.Issues)
		reporter.PrintSummary(result.Issues, result.FilesScanned)

	case OutputSummary:
		printFiles(w, result, report.ShouldUseColors(config.UseColors))

	case OutputFull:
		reporter := report.NewReporter(w, config)
		printFiles(w, result, reporter.UseColors())
		fmt.Fprintln(w, "")
		reporter.PrintIssues(result.Issues)
		reporter.PrintSummary(result.Issues, result.FilesScanned)

	case OutputJSON:
		if err := WriteJSON(w, result); err != nil {
			os.Stderr.WriteString("Error writing JSON: " + err.Error() + "\n")
		}
	}
}

// printFiles lists changed files with their size reduction
func printFiles(w io.Writer, result *RunResult, useColors bool) {
	for _, f := range result.Files {
		status := "would change"
		style := report.StyleWarning
		if f.Written {
			status = "written"
			style = report.StyleWritten
		}
		fmt.Fprintf(w, "%s %s, %d -> %d bytes (%s)\n",
			report.RenderStyle(report.StyleLocation, f.Path+":", useColors),
			report.PluralizeCount(f.Templates, "template", "templates"),
			f.BytesBefore, f.BytesAfter,
			report.RenderStyle(style, status, useColors))
	}

	fmt.Fprintf(w, "%d of %s changed, %d bytes saved\n",
		len(result.Files),
		report.PluralizeCount(result.FilesScanned, "file", "files"),
		result.BytesSaved())
}
