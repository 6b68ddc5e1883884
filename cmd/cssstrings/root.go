package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/yacobolo/cssstrings/internal/log"
)

var rootCmd = &cobra.Command{
	Use:   "cssstrings",
	Short: "Minify CSS inside marked JS/TS template literals",
	Long: `Minify CSS written in template literals marked with /* css */.
Interpolations are kept verbatim; everything around them is minified.`,
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		setLogLevel(cmd)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags (inherited by all subcommands)
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().Bool("quiet", false, "Suppress all output (exit code only)")
	rootCmd.PersistentFlags().Bool("color", false, "Force color output")
	rootCmd.PersistentFlags().String("config", defaultConfigPath, "Config file path")

	rootCmd.AddCommand(minifyCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(versionCmd)
}

// setLogLevel maps --verbose and --quiet onto the logger. Warnings and
// errors reach the user as issues, so the logger stays quiet by default.
func setLogLevel(cmd *cobra.Command) {
	verbose, _ := cmd.Flags().GetBool("verbose")
	quiet, _ := cmd.Flags().GetBool("quiet")
	switch {
	case quiet:
		log.SetOutput(io.Discard)
	case verbose:
		log.SetLevel(log.LevelDebug)
	default:
		log.SetLevel(log.LevelError)
	}
}
