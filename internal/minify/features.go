package minify

import (
	"fmt"
	"sort"
	"strings"
)

// Feature is a bit set of CSS syntax features to always lower (Include) or
// never lower (Exclude), regardless of targets
type Feature uint32

const (
	FeatureNesting Feature = 1 << iota
	FeatureColorFunctions
	FeatureHexAlphaColors
	FeatureHWB
	FeatureInsetProperty
	FeatureIsSelector
	FeatureModernColorSyntax
	FeatureGradientDoublePosition
	FeatureGradientInterpolation
	FeatureGradientMidpoints
	FeatureRebeccaPurple
)

// featureNames maps each feature to its esbuild "supported" key
var featureNames = map[Feature]string{
	FeatureNesting:                "nesting",
	FeatureColorFunctions:         "color-functions",
	FeatureHexAlphaColors:         "hex-rgba",
	FeatureHWB:                    "hwb",
	FeatureInsetProperty:          "inset-property",
	FeatureIsSelector:             "is-pseudo-class",
	FeatureModernColorSyntax:      "modern-rgb-hsl",
	FeatureGradientDoublePosition: "gradient-double-position",
	FeatureGradientInterpolation:  "gradient-interpolation",
	FeatureGradientMidpoints:      "gradient-midpoints",
	FeatureRebeccaPurple:          "rebecca-purple",
}

// ParseFeatures converts feature names (as in featureNames) to a bit set
func ParseFeatures(names []string) (Feature, error) {
	var set Feature
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		found := false
		for f, n := range featureNames {
			if n == name {
				set |= f
				found = true
				break
			}
		}
		if !found {
			return 0, fmt.Errorf("unknown CSS feature %q", name)
		}
	}
	return set, nil
}

// Names returns the sorted names of the features in the set
func (f Feature) Names() []string {
	var names []string
	for bit, name := range featureNames {
		if f&bit != 0 {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// FeatureNames lists every known feature name, sorted
func FeatureNames() []string {
	var all Feature
	for bit := range featureNames {
		all |= bit
	}
	return all.Names()
}
