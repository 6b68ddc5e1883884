package cssstrings

import (
	"strings"

	"github.com/yacobolo/cssstrings/internal/template"
)

// vendorDir marks paths that belong to installed dependencies
const vendorDir = "/node_modules/"

// stripQuery removes a `?query` suffix from a module id
func stripQuery(id string) string {
	if i := strings.IndexByte(id, '?'); i >= 0 {
		return id[:i]
	}
	return id
}

// IsTargetFile reports whether id names a JS/TS source outside node_modules.
// Any `?query` suffix is ignored and extensions match case-sensitively.
func IsTargetFile(id string) bool {
	path := stripQuery(id)
	if strings.Contains(path, vendorDir) {
		return false
	}
	return LanguageOf(path) != template.LanguageUnknown
}

// LanguageOf returns the grammar for id from its extension
func LanguageOf(id string) template.Language {
	path := stripQuery(id)
	switch {
	case strings.HasSuffix(path, ".tsx"):
		return template.LanguageTSX
	case strings.HasSuffix(path, ".ts"):
		return template.LanguageTS
	case strings.HasSuffix(path, ".jsx"):
		return template.LanguageJSX
	case strings.HasSuffix(path, ".js"):
		return template.LanguageJS
	default:
		return template.LanguageUnknown
	}
}
