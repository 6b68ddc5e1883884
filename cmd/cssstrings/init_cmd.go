package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default .cssstrings.yaml config file",
	Long:  `Create a .cssstrings.yaml configuration file in the current directory with sensible defaults.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")
		return writeDefaultConfig(defaultConfigPath, force)
	},
}

const defaultConfig = `# cssstrings configuration
# Templates opt in with a /* css */ marker: const s = /* css */ ` + "`.a { color: red; }`" + `

verbose: false
concurrency: 0             # 0 = one worker per CPU

paths:
  - "src/**/*.{js,jsx,ts,tsx}"

# Minifier settings
minify:
  engine: esbuild          # esbuild | tdewolff | cssmin
  targets:
    chrome: "90"
    firefox: "90"
    safari: "15"
  include: []              # features to always lower; nesting is always lowered
  exclude: []              # features to never lower
  lenient: false           # accept esbuild output despite CSS syntax warnings
  write: false             # rewrite files in place

# Check settings
check:
  strict: false            # exit 1 on any issue, not only errors
  output-format: issues    # issues | summary | full | json
  print-lines: true
  print-linter-name: true
`

// writeDefaultConfig creates path unless it exists and force is false
func writeDefaultConfig(path string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}

	if err := os.WriteFile(path, []byte(defaultConfig), 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	fmt.Printf("Created %s\n", path)
	return nil
}

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite existing config file")
}
