package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/yacobolo/cssstrings"
	"github.com/yacobolo/cssstrings/internal/minify"
)

// defaultConfigPath is read when --config is not given
const defaultConfigPath = ".cssstrings.yaml"

var k = koanf.New(".")

// loadConfig loads configuration with precedence: flags > env > file > defaults.
// It must be called after cobra parses flags (in PreRunE or RunE).
func loadConfig(cmd *cobra.Command) error {
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = defaultConfigPath
	}

	if err := loadConfigFromPath(configPath); err != nil {
		return err
	}

	// Only flags that were explicitly set, from the command and its parents.
	// Unset flags must not shadow the namespaced config keys.
	flags := cmd.Flags()
	provider := posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
		if !f.Changed {
			return "", nil
		}
		return f.Name, posflag.FlagVal(flags, f)
	})
	if err := k.Load(provider, nil); err != nil {
		return fmt.Errorf("loading command flags: %w", err)
	}

	return nil
}

// loadConfigFromPath loads configuration from a file and environment variables.
// This is separated from loadConfig to allow testing without a cobra command.
func loadConfigFromPath(configPath string) error {
	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return fmt.Errorf("loading config file %s: %w", configPath, err)
		}
	}

	if err := k.Load(env.Provider("CSSSTRINGS_", ".", func(s string) string {
		// CSSSTRINGS_MINIFY_ENGINE -> minify.engine
		// CSSSTRINGS_MINIFY_TARGETS_CHROME -> minify.targets.chrome
		// CSSSTRINGS_VERBOSE -> verbose
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, "CSSSTRINGS_")),
			"_", ".",
		)
	}), nil); err != nil {
		return fmt.Errorf("loading environment variables: %w", err)
	}

	return nil
}

// buildOptions constructs the transform options from koanf state
func buildOptions() (cssstrings.Options, error) {
	opts := cssstrings.Options{}
	opts.Minify.Engine = getStringWithFallback("engine", "minify.engine", minify.EngineESBuild)
	opts.Minify.Lenient = getBoolWithFallback("lenient", "minify.lenient", false)

	if _, err := minify.EngineFor(opts.Minify.Engine); err != nil {
		return opts, err
	}

	targets, err := buildTargets()
	if err != nil {
		return opts, err
	}
	opts.Minify.Targets = targets

	if opts.Minify.Include, err = minify.ParseFeatures(getStringsWithFallback("include", "minify.include", nil)); err != nil {
		return opts, fmt.Errorf("minify.include: %w", err)
	}
	if opts.Minify.Exclude, err = minify.ParseFeatures(getStringsWithFallback("exclude", "minify.exclude", nil)); err != nil {
		return opts, fmt.Errorf("minify.exclude: %w", err)
	}

	return opts, nil
}

// buildTargets reads --target browser=version pairs, falling back to the
// minify.targets map. Nil means the minifier defaults.
func buildTargets() (minify.Targets, error) {
	if pairs := k.Strings("target"); len(pairs) > 0 {
		return minify.ParseTargets(pairs)
	}

	m := k.StringMap("minify.targets")
	if len(m) == 0 {
		return nil, nil
	}
	targets := make(minify.Targets, len(m))
	for browser, version := range m {
		targets[strings.ToLower(browser)] = version
	}
	if err := targets.Validate(); err != nil {
		return nil, fmt.Errorf("minify.targets: %w", err)
	}
	return targets, nil
}

// buildRunConfig constructs the library's batch Config from koanf state
func buildRunConfig() (cssstrings.Config, error) {
	opts, err := buildOptions()
	if err != nil {
		return cssstrings.Config{}, err
	}

	return cssstrings.Config{
		Paths:       getStringsWithFallback("paths", "paths", cssstrings.DefaultPaths),
		Options:     opts,
		Write:       getBoolWithFallback("write", "minify.write", false),
		Concurrency: getIntWithFallback("concurrency", "concurrency", 0),
	}, nil
}

// buildReportConfig constructs terminal rendering options from koanf state
func buildReportConfig() cssstrings.ReportConfig {
	return cssstrings.ReportConfig{
		UseColors:       getBoolWithFallback("color", "color", false),
		PrintLines:      getBoolWithFallback("print-lines", "check.print-lines", true),
		PrintLinterName: getBoolWithFallback("print-linter-name", "check.print-linter-name", true),
	}
}

// getStringWithFallback checks the flag key first, then the config file key, then returns the default.
func getStringWithFallback(flagKey, configKey, defaultVal string) string {
	if v := k.String(flagKey); v != "" {
		return v
	}
	if v := k.String(configKey); v != "" {
		return v
	}
	return defaultVal
}

// getStringsWithFallback checks the flag key first, then the config file key, then returns the default.
func getStringsWithFallback(flagKey, configKey string, defaultVal []string) []string {
	if v := k.Strings(flagKey); len(v) > 0 {
		return v
	}
	if v := k.Strings(configKey); len(v) > 0 {
		return v
	}
	return defaultVal
}

// getBoolWithFallback checks the flag key first, then the config file key, then returns the default.
func getBoolWithFallback(flagKey, configKey string, defaultVal bool) bool {
	if k.Exists(flagKey) {
		return k.Bool(flagKey)
	}
	if k.Exists(configKey) {
		return k.Bool(configKey)
	}
	return defaultVal
}

// getIntWithFallback checks the flag key first, then the config file key, then returns the default.
func getIntWithFallback(flagKey, configKey string, defaultVal int) int {
	if k.Exists(flagKey) {
		return k.Int(flagKey)
	}
	if k.Exists(configKey) {
		return k.Int(configKey)
	}
	return defaultVal
}
