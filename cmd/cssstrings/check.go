package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yacobolo/cssstrings"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Report marked CSS templates that are not minified",
	Long: `Report every /* css */ template whose minified form differs from the
source, plus markers that could not be resolved and templates that fail to minify.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runCheck(cmd.Context())
	},
}

func init() {
	addTransformFlags(checkCmd)
	f := checkCmd.Flags()
	f.Bool("strict", false, "Exit 1 on any issue (CI mode)")
	f.String("output-format", "", "Output format: issues|summary|full|json")
	f.Bool("print-lines", true, "Show source lines with issues")
	f.Bool("print-linter-name", true, "Show (cssstrings) suffix on issues")
	_ = checkCmd.RegisterFlagCompletionFunc("output-format", completeOutputFormat)
}

func runCheck(ctx context.Context) error {
	config, err := buildRunConfig()
	if err != nil {
		return err
	}
	config.Write = false

	result, err := cssstrings.Check(ctx, config)
	if err != nil {
		return fmt.Errorf("check failed: %w", err)
	}

	quiet := getBoolWithFallback("quiet", "quiet", false)
	outputFormat := getStringWithFallback("output-format", "check.output-format", "")
	format := cssstrings.DetermineOutputFormat(outputFormat)

	if !quiet {
		cssstrings.WriteOutput(os.Stdout, result, format, buildReportConfig())
	}

	if exitCode(result, getBoolWithFallback("strict", "check.strict", false)) != 0 {
		os.Exit(1)
	}
	return nil
}

// exitCode fails on errors, or on any issue in strict mode
func exitCode(result *cssstrings.RunResult, strict bool) int {
	if result.ErrorCount > 0 {
		return 1
	}
	if strict && len(result.Issues) > 0 {
		return 1
	}
	return 0
}
