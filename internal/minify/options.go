package minify

// Options is forwarded to the minify engine
type Options struct {
	Engine  string  // "esbuild" (default), "tdewolff" or "cssmin"
	Targets Targets // Defaults to DefaultTargets when empty
	Include Feature // Always lowered; FeatureNesting is always added
	Exclude Feature // Never lowered
	Lenient bool    // Accept output despite esbuild CSS syntax warnings
}

// WithDefaults fills unset fields and forces nesting support on
func (o Options) WithDefaults() Options {
	if o.Engine == "" {
		o.Engine = EngineESBuild
	}
	if len(o.Targets) == 0 {
		o.Targets = DefaultTargets()
	}
	o.Include |= FeatureNesting
	o.Exclude &^= FeatureNesting
	return o
}

// supported builds esbuild's feature override map
func (o Options) supported() map[string]bool {
	supported := make(map[string]bool)
	for bit, name := range featureNames {
		switch {
		case o.Include&bit != 0:
			supported[name] = false
		case o.Exclude&bit != 0:
			supported[name] = true
		}
	}
	return supported
}
