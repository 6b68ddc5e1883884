package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yacobolo/cssstrings"
	"github.com/yacobolo/cssstrings/internal/minify"
)

var minifyCmd = &cobra.Command{
	Use:   "minify",
	Short: "Minify marked CSS templates in JS/TS files",
	Long: `Minify every /* css */ template in the files matched by --paths.
Without --write the changes are only reported.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runMinify(cmd.Context())
	},
}

// addTransformFlags registers the flags shared by minify and check
func addTransformFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringSlice("paths", cssstrings.DefaultPaths, "File patterns to process")
	f.String("engine", minify.EngineESBuild, fmt.Sprintf("CSS minifier: %v", minify.EngineNames()))
	f.StringSlice("target", nil, "Browser targets as browser=version (default chrome=90,firefox=90,safari=15)")
	f.StringSlice("include", nil, "CSS features to always lower (nesting is always included)")
	f.StringSlice("exclude", nil, "CSS features to never lower")
	f.Bool("lenient", false, "Accept esbuild output despite CSS syntax warnings")
	f.Int("concurrency", 0, "Files processed in parallel (0=NumCPU)")
	registerValueCompletions(cmd)
}

func init() {
	addTransformFlags(minifyCmd)
	minifyCmd.Flags().BoolP("write", "w", false, "Rewrite files in place")
}

func runMinify(ctx context.Context) error {
	config, err := buildRunConfig()
	if err != nil {
		return err
	}

	result, err := cssstrings.Minify(ctx, config)
	if err != nil {
		return fmt.Errorf("minify failed: %w", err)
	}

	quiet := getBoolWithFallback("quiet", "quiet", false)
	if !quiet {
		format := cssstrings.OutputFull
		if len(result.Issues) == 0 {
			format = cssstrings.OutputSummary
		}
		cssstrings.WriteOutput(os.Stdout, result, format, buildReportConfig())
	}

	if result.ErrorCount > 0 {
		os.Exit(1)
	}
	return nil
}
