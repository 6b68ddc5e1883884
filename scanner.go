package cssstrings

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	ignore "github.com/sabhiram/go-gitignore"
)

// DefaultPaths are scanned when no patterns are configured
var DefaultPaths = []string{"src/**/*.{js,jsx,ts,tsx}"}

// ScanStats tracks file discovery statistics
type ScanStats struct {
	FilesDiscovered int // Files matched by the glob patterns
	FilesScanned    int // Files kept after filtering
	FilesSkipped    int // Files dropped as generated, vendored, ignored or non-source
}

var (
	gitIgnoreCache *ignore.GitIgnore
	gitIgnoreOnce  sync.Once
)

// isGenerated reports bundler output that should never be rewritten in place
func isGenerated(path string) bool {
	return strings.HasSuffix(path, ".min.js") ||
		strings.HasSuffix(path, ".d.ts")
}

// loadGitIgnore loads the .gitignore file once (thread-safe).
// A missing .gitignore is fine.
func loadGitIgnore() *ignore.GitIgnore {
	gitIgnoreOnce.Do(func() {
		gi, err := ignore.CompileIgnoreFile(".gitignore")
		if err != nil {
			gitIgnoreCache = nil
			return
		}
		gitIgnoreCache = gi
	})
	return gitIgnoreCache
}

// shouldSkipFile determines if a file should be excluded from processing.
//
// Two-layer filtering:
// 1. Pattern check (fast): non-source, vendored and generated files
// 2. Gitignore check: only for relative paths inside the project
func shouldSkipFile(path string) bool {
	slashed := "/" + filepath.ToSlash(path)
	if !IsTargetFile(slashed) || isGenerated(slashed) {
		return true
	}

	if !filepath.IsAbs(path) {
		gi := loadGitIgnore()
		if gi != nil && gi.MatchesPath(path) {
			return true
		}
	}

	return false
}

// DiscoverFiles expands glob patterns to the JS/TS files to process,
// deduplicated and sorted.
func DiscoverFiles(patterns []string) ([]string, ScanStats, error) {
	var files []string
	seen := make(map[string]bool)
	stats := ScanStats{}

	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, stats, err
		}

		for _, match := range matches {
			if seen[match] {
				continue
			}
			info, err := os.Stat(match)
			if err != nil || info.IsDir() {
				continue
			}

			seen[match] = true
			stats.FilesDiscovered++

			if shouldSkipFile(match) {
				stats.FilesSkipped++
				continue
			}
			files = append(files, match)
			stats.FilesScanned++
		}
	}

	sort.Strings(files)
	return files, stats, nil
}

// GetRelativePath returns a relative path from the current working directory
func GetRelativePath(absPath string) string {
	cwd, err := os.Getwd()
	if err != nil {
		return absPath
	}

	rel, err := filepath.Rel(cwd, absPath)
	if err != nil {
		return absPath
	}

	return rel
}
