package cssstrings

import (
	"os"
	"path/filepath"

	"github.com/evanw/esbuild/pkg/api"

	"github.com/yacobolo/cssstrings/internal/report"
)

// PluginName is the esbuild plugin name
const PluginName = "css-strings"

// Plugin returns an esbuild plugin that minifies marked CSS templates in
// JS/TS sources as they are loaded. Files without changes are left for
// esbuild's default loader. The rewritten contents carry an inline source
// map pointing back at the original file.
func Plugin(opts Options) api.Plugin {
	return api.Plugin{
		Name: PluginName,
		Setup: func(build api.PluginBuild) {
			build.OnLoad(api.OnLoadOptions{Filter: `\.(js|jsx|ts|tsx)$`, Namespace: "file"},
				func(args api.OnLoadArgs) (api.OnLoadResult, error) {
					if !IsTargetFile(args.Path) {
						return api.OnLoadResult{}, nil
					}

					content, err := os.ReadFile(args.Path)
					if err != nil {
						return api.OnLoadResult{}, err
					}
					code := string(content)

					res, err := Transform(code, args.Path, opts)
					if err != nil {
						off := report.ByteOffset(code, errorOffset(err)-1)
						issue := report.NewIssue(args.Path, code, off, report.SeverityError, err.Error())
						return api.OnLoadResult{
							Errors:     []api.Message{toMessage(issue)},
							PluginName: PluginName,
						}, nil
					}
					if res == nil {
						return api.OnLoadResult{}, nil
					}

					warnings := make([]api.Message, len(res.Warnings))
					for i, w := range res.Warnings {
						warnings[i] = toMessage(w)
					}

					if !res.Changed() {
						return api.OnLoadResult{Warnings: warnings, PluginName: PluginName}, nil
					}

					contents := res.Code + "\n//# sourceMappingURL=" + res.Map.DataURL() + "\n"
					return api.OnLoadResult{
						Contents:   &contents,
						ResolveDir: filepath.Dir(args.Path),
						Loader:     loaderFor(args.Path),
						Warnings:   warnings,
						PluginName: PluginName,
					}, nil
				})
		},
	}
}

// loaderFor picks the esbuild loader matching the file extension
func loaderFor(path string) api.Loader {
	switch filepath.Ext(path) {
	case ".ts":
		return api.LoaderTS
	case ".tsx":
		return api.LoaderTSX
	case ".jsx":
		return api.LoaderJSX
	default:
		return api.LoaderJS
	}
}

// toMessage converts an issue to an esbuild message. esbuild columns are 0-based.
func toMessage(issue Issue) api.Message {
	lineText := ""
	if len(issue.SourceLines) > 0 {
		lineText = issue.SourceLines[0]
	}
	return api.Message{
		Text: issue.Text,
		Location: &api.Location{
			File:     issue.Pos.Filename,
			Line:     issue.Pos.Line,
			Column:   issue.Pos.Column - 1,
			LineText: lineText,
		},
	}
}
