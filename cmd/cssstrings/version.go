package main

import (
	"fmt"
	"io"
	"runtime/debug"

	"github.com/spf13/cobra"
)

// version is set at build time via ldflags:
//
//	go build -ldflags "-X main.version=1.0.0" ./cmd/cssstrings
var version = "dev"

// engineModules are the CSS minifier modules reported by `version --engines`
var engineModules = []string{
	"github.com/evanw/esbuild",
	"github.com/tdewolff/minify/v2",
	"github.com/dchest/cssmin",
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version of cssstrings",
	Run: func(cmd *cobra.Command, _ []string) {
		engines, _ := cmd.Flags().GetBool("engines")
		printVersion(cmd.OutOrStdout(), engines)
	},
}

func init() {
	versionCmd.Flags().Bool("engines", false, "Also print the bundled CSS engine versions")
}

func printVersion(w io.Writer, engines bool) {
	fmt.Fprintf(w, "cssstrings %s\n", version)
	if !engines {
		return
	}

	deps := map[string]string{}
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, dep := range info.Deps {
			deps[dep.Path] = dep.Version
		}
	}
	for _, path := range engineModules {
		v, ok := deps[path]
		if !ok {
			v = "unknown"
		}
		fmt.Fprintf(w, "  %s %s\n", path, v)
	}
}
