package minify

import (
	"fmt"
	"sort"
	"strings"

	"github.com/evanw/esbuild/pkg/api"
)

// Targets maps a browser name to its minimum supported version, e.g. {"chrome": "90"}
type Targets map[string]string

// DefaultTargets is used when no targets are configured
func DefaultTargets() Targets {
	return Targets{
		"chrome":  "90",
		"firefox": "90",
		"safari":  "15",
	}
}

var browserEngines = map[string]api.EngineName{
	"chrome":  api.EngineChrome,
	"edge":    api.EngineEdge,
	"firefox": api.EngineFirefox,
	"ie":      api.EngineIE,
	"ios":     api.EngineIOS,
	"ios_saf": api.EngineIOS,
	"opera":   api.EngineOpera,
	"safari":  api.EngineSafari,
}

// ParseTargets reads "browser=version" pairs
func ParseTargets(pairs []string) (Targets, error) {
	targets := Targets{}
	for _, pair := range pairs {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		browser, version, ok := strings.Cut(pair, "=")
		if !ok || version == "" {
			return nil, fmt.Errorf("invalid target %q (want browser=version)", pair)
		}
		targets[strings.ToLower(strings.TrimSpace(browser))] = strings.TrimSpace(version)
	}
	return targets, targets.Validate()
}

// Validate rejects browsers esbuild has no compatibility data for
func (t Targets) Validate() error {
	for browser := range t {
		if _, ok := browserEngines[browser]; !ok {
			return fmt.Errorf("unknown target browser %q", browser)
		}
	}
	return nil
}

// engines converts the targets to esbuild engines, in a stable order
func (t Targets) engines() []api.Engine {
	browsers := make([]string, 0, len(t))
	for b := range t {
		browsers = append(browsers, b)
	}
	sort.Strings(browsers)

	engines := make([]api.Engine, 0, len(browsers))
	for _, b := range browsers {
		if name, ok := browserEngines[b]; ok {
			engines = append(engines, api.Engine{Name: name, Version: t[b]})
		}
	}
	return engines
}

// BrowserNames lists the browsers accepted in Targets, sorted
func BrowserNames() []string {
	names := make([]string, 0, len(browserEngines))
	for name := range browserEngines {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
