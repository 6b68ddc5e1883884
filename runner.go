package cssstrings

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/yacobolo/cssstrings/internal/log"
	"github.com/yacobolo/cssstrings/internal/report"
)

// Config holds configuration for a batch run over many files
type Config struct {
	Paths       []string // Glob patterns (e.g., "src/**/*.{ts,tsx}")
	Options     Options  // Forwarded to Transform
	Write       bool     // Rewrite changed files in place (Minify only)
	Concurrency int      // Files processed at once; 0 = NumCPU
}

// FileResult describes one file whose templates changed
type FileResult struct {
	Path        string
	BytesBefore int
	BytesAfter  int
	Templates   int  // Templates rewritten
	Written     bool // File was rewritten on disk
}

// RunResult contains the outcome of Minify or Check
type RunResult struct {
	Files        []FileResult // Changed files, sorted by path
	Issues       []Issue      // Warnings and per-file errors
	FilesScanned int
	ErrorCount   int
	WarningCount int
}

// BytesSaved sums the size reduction over all changed files
func (r *RunResult) BytesSaved() int {
	saved := 0
	for _, f := range r.Files {
		saved += f.BytesBefore - f.BytesAfter
	}
	return saved
}

// Minify transforms every file matched by config.Paths and, when
// config.Write is set, writes changed files back in place. A template that
// fails to minify is reported as an error issue for its file; other files
// are still processed.
func Minify(ctx context.Context, config Config) (*RunResult, error) {
	return run(ctx, config, config.Write, false)
}

// Check reports, without writing anything, every marked template whose
// minified form differs from its source.
func Check(ctx context.Context, config Config) (*RunResult, error) {
	return run(ctx, config, false, true)
}

func run(ctx context.Context, config Config, write, reportChanges bool) (*RunResult, error) {
	paths := config.Paths
	if len(paths) == 0 {
		paths = DefaultPaths
	}

	files, stats, err := DiscoverFiles(paths)
	if err != nil {
		return nil, fmt.Errorf("failed to discover files: %w", err)
	}
	log.Debug("discovered %d files, skipped %d", stats.FilesScanned, stats.FilesSkipped)

	limit := config.Concurrency
	if limit <= 0 {
		limit = runtime.NumCPU()
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	var (
		mu     sync.Mutex
		result = &RunResult{FilesScanned: len(files)}
	)

	for _, path := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			file, issues, err := processFile(path, config.Options, write, reportChanges)
			if err != nil {
				return err
			}

			mu.Lock()
			defer mu.Unlock()
			if file != nil {
				result.Files = append(result.Files, *file)
			}
			result.Issues = append(result.Issues, issues...)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(result.Files, func(i, j int) bool {
		return result.Files[i].Path < result.Files[j].Path
	})
	report.SortIssues(result.Issues)
	result.ErrorCount, result.WarningCount = report.Count(result.Issues)

	return result, nil
}

// processFile transforms one file. Only I/O failures are returned as errors;
// transform failures become issues.
func processFile(path string, opts Options, write, reportChanges bool) (*FileResult, []Issue, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("reading %s: %w", path, err)
	}
	code := string(data)

	res, err := Transform(code, path, opts)
	if err != nil {
		off := report.ByteOffset(code, errorOffset(err)-1)
		log.Debug("%v", err)
		return nil, []Issue{report.NewIssue(path, code, off, report.SeverityError, err.Error())}, nil
	}
	if res == nil {
		return nil, nil, nil
	}

	issues := res.Warnings
	if reportChanges {
		for _, c := range res.Changes {
			text := fmt.Sprintf(report.IssueMinifiable, len(c.Before), len(c.After))
			issues = append(issues, report.NewIssue(path, code, c.Start-1, report.SeverityWarning, text))
		}
	}

	if !res.Changed() {
		return nil, issues, nil
	}

	file := &FileResult{
		Path:        path,
		BytesBefore: len(code),
		BytesAfter:  len(res.Code),
		Templates:   len(res.Changes),
	}

	if write {
		info, err := os.Stat(path)
		if err != nil {
			return nil, nil, fmt.Errorf("stat %s: %w", path, err)
		}
		if err := os.WriteFile(path, []byte(res.Code), info.Mode().Perm()); err != nil {
			return nil, nil, fmt.Errorf("writing %s: %w", path, err)
		}
		file.Written = true
		log.Info("wrote %s (%d -> %d bytes)", path, file.BytesBefore, file.BytesAfter)
	}

	return file, issues, nil
}
