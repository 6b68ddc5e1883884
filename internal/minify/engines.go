package minify

import (
	"fmt"
	"sort"
)

// Engine names accepted in Options.Engine.
//
// Only esbuild honors Targets, Include and Exclude and flattens nested rules.
// tdewolff and cssmin minify flat stylesheets only: nested input, including a
// rule-position interpolation inside a block, fails with ErrNestingUnsupported.
const (
	EngineESBuild  = "esbuild"
	EngineTdewolff = "tdewolff"
	EngineCSSMin   = "cssmin"
)

var engines = map[string]Engine{
	EngineESBuild:  esbuildEngine{},
	EngineTdewolff: tdewolffEngine{},
	EngineCSSMin:   cssminEngine{},
}

// EngineFor looks up a registered engine by name
func EngineFor(name string) (Engine, error) {
	if e, ok := engines[name]; ok {
		return e, nil
	}
	return nil, fmt.Errorf("unknown minify engine %q (available: %v)", name, EngineNames())
}

// EngineNames lists the registered engines
func EngineNames() []string {
	names := make([]string, 0, len(engines))
	for name := range engines {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
