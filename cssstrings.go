// Package cssstrings minifies CSS written inside JavaScript and TypeScript
// template literals.
//
// A template opts in with a leading marker comment:
//
//	const button = /* css */ `
//	  .btn { color: ${color}; }
//	`;
//
// Interpolations are swapped for CSS placeholders that fit their position
// (value, identifier or whole rule), the CSS is minified, and the
// placeholders are turned back into the original `${expr}` text.
//
// # Per-file transform
//
// Transform rewrites one source file and returns the new text with a source map:
//
//	res, err := cssstrings.Transform(code, "src/button.ts", cssstrings.Options{})
//	if res.Changed() {
//		fmt.Println(res.Code)
//	}
//
// # Batch runs
//
// Minify and Check process every file matched by glob patterns in parallel:
//
//	result, err := cssstrings.Check(ctx, cssstrings.Config{
//		Paths: []string{"src/**/*.{ts,tsx}"},
//	})
//	cssstrings.WriteOutput(os.Stdout, result, cssstrings.OutputIssues, cssstrings.ReportConfig{})
//
// # esbuild
//
// Plugin returns an esbuild plugin applying Transform to every loaded JS/TS file.
//
// # CLI Tool
//
// Install the command line tool with:
//
//	go install github.com/yacobolo/cssstrings/cmd/cssstrings@latest
package cssstrings
