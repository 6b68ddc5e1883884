package main

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yacobolo/cssstrings"
	"github.com/yacobolo/cssstrings/internal/minify"
)

var completionCmd = &cobra.Command{
	Use:       "completion [bash|zsh|fish|powershell]",
	Short:     "Generate shell completion scripts",
	Long:      `Generate shell completion scripts for cssstrings commands, flags and flag values.`,
	ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE: func(_ *cobra.Command, args []string) error {
		switch args[0] {
		case "bash":
			return rootCmd.GenBashCompletionV2(os.Stdout, true)
		case "zsh":
			return rootCmd.GenZshCompletion(os.Stdout)
		case "fish":
			return rootCmd.GenFishCompletion(os.Stdout, true)
		case "powershell":
			return rootCmd.GenPowerShellCompletionWithDesc(os.Stdout)
		}
		return nil
	},
}

// registerValueCompletions completes engine, feature and target flag values
func registerValueCompletions(cmd *cobra.Command) {
	fixed := func(values []string) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
			return values, cobra.ShellCompDirectiveNoFileComp
		}
	}

	_ = cmd.RegisterFlagCompletionFunc("engine", fixed(minify.EngineNames()))
	_ = cmd.RegisterFlagCompletionFunc("include", fixed(minify.FeatureNames()))
	_ = cmd.RegisterFlagCompletionFunc("exclude", fixed(minify.FeatureNames()))
	_ = cmd.RegisterFlagCompletionFunc("target", completeTarget)
}

// completeTarget offers "browser=" prefixes until a browser is chosen
func completeTarget(_ *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if strings.Contains(toComplete, "=") {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	var out []string
	for _, name := range minify.BrowserNames() {
		out = append(out, name+"=")
	}
	return out, cobra.ShellCompDirectiveNoFileComp | cobra.ShellCompDirectiveNoSpace
}

func completeOutputFormat(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	return []string{
		string(cssstrings.OutputIssues),
		string(cssstrings.OutputSummary),
		string(cssstrings.OutputFull),
		string(cssstrings.OutputJSON),
	}, cobra.ShellCompDirectiveNoFileComp
}
