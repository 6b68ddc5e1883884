package cssstrings

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yacobolo/cssstrings/internal/report"
)

// project writes a small source tree and returns its root and glob pattern
func project(t *testing.T) (string, string) {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{
		"src/button.ts":  "export const button = /* css */ `\n  .btn { color: blue; }\n`;\n",
		"src/plain.ts":   "export const plain = `.x { color: blue; }`;\n",
		"src/done.js":    "export const done = /* css */ `.d{color:red}`;\n",
		"src/card.tsx":   "export const card = /* css */ `.card { margin: 0px; }`;\nexport const bad = \"/* css */ `\";\n",
		"src/styles.css": ".a { color: blue; }\n",
	}
	for rel, content := range files {
		path := filepath.Join(dir, rel)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	return dir, filepath.ToSlash(dir) + "/src/**/*"
}

func TestCheck(t *testing.T) {
	dir, pattern := project(t)

	result, err := Check(context.Background(), Config{Paths: []string{pattern}})
	require.NoError(t, err)

	assert.Equal(t, 4, result.FilesScanned)
	require.Len(t, result.Files, 2)
	assert.Equal(t, filepath.Join(dir, "src", "button.ts"), result.Files[0].Path)
	assert.Equal(t, filepath.Join(dir, "src", "card.tsx"), result.Files[1].Path)
	assert.False(t, result.Files[0].Written)
	assert.Positive(t, result.BytesSaved())

	// Two minifiable templates and one unresolved marker
	assert.Equal(t, 0, result.ErrorCount)
	assert.Equal(t, 3, result.WarningCount)
	require.Len(t, result.Issues, 3)
	assert.Equal(t, filepath.Join(dir, "src", "button.ts"), result.Issues[0].Pos.Filename)
	assert.Contains(t, result.Issues[0].Text, "can be minified")
	assert.Equal(t, 2, result.Issues[2].Pos.Line)

	// Nothing written
	data, err := os.ReadFile(filepath.Join(dir, "src", "button.ts"))
	require.NoError(t, err)
	assert.Contains(t, string(data), ".btn { color: blue; }")
}

func TestMinifyWrite(t *testing.T) {
	dir, pattern := project(t)

	result, err := Minify(context.Background(), Config{Paths: []string{pattern}, Write: true, Concurrency: 2})
	require.NoError(t, err)
	require.Len(t, result.Files, 2)
	assert.True(t, result.Files[0].Written)
	assert.Equal(t, 1, result.WarningCount)

	data, err := os.ReadFile(filepath.Join(dir, "src", "button.ts"))
	require.NoError(t, err)
	assert.Equal(t, "export const button = /* css */ `.btn{color:#00f}`;\n", string(data))

	data, err = os.ReadFile(filepath.Join(dir, "src", "plain.ts"))
	require.NoError(t, err)
	assert.Equal(t, "export const plain = `.x { color: blue; }`;\n", string(data))

	// A second run finds nothing left to do
	again, err := Check(context.Background(), Config{Paths: []string{pattern}})
	require.NoError(t, err)
	assert.Empty(t, again.Files)
}

func TestMinifyDryRun(t *testing.T) {
	dir, pattern := project(t)

	result, err := Minify(context.Background(), Config{Paths: []string{pattern}})
	require.NoError(t, err)
	require.Len(t, result.Files, 2)
	assert.False(t, result.Files[0].Written)

	data, err := os.ReadFile(filepath.Join(dir, "src", "card.tsx"))
	require.NoError(t, err)
	assert.Contains(t, string(data), ".card { margin: 0px; }")
}

func TestMinifyErrorBecomesIssue(t *testing.T) {
	_, pattern := project(t)

	opts := Options{Minify: MinifyOptions{Engine: "nope"}}
	result, err := Check(context.Background(), Config{Paths: []string{pattern}, Options: opts})
	require.NoError(t, err)

	// button.ts, card.tsx and done.js each fail on their first template
	assert.Equal(t, 3, result.ErrorCount)
	for _, issue := range result.Issues {
		if issue.Severity == report.SeverityError {
			assert.Contains(t, issue.Text, "unknown minify engine")
			assert.Positive(t, issue.Pos.Offset)
		}
	}
}

func TestRunCancelled(t *testing.T) {
	_, pattern := project(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Check(ctx, Config{Paths: []string{pattern}})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestWriteOutputFormats(t *testing.T) {
	t.Setenv("FORCE_COLOR", "")
	t.Setenv("GITHUB_ACTIONS", "")
	_, pattern := project(t)
	result, err := Check(context.Background(), Config{Paths: []string{pattern}})
	require.NoError(t, err)

	t.Run("issues", func(t *testing.T) {
		var buf bytes.Buffer
		WriteOutput(&buf, result, OutputIssues, ReportConfig{PrintLinterName: true})
		assert.Contains(t, buf.String(), "button.ts:1:33: css template can be minified")
		assert.Contains(t, buf.String(), "(cssstrings)")
		assert.Contains(t, buf.String(), "3 issues in 4 files")
	})

	t.Run("summary", func(t *testing.T) {
		var buf bytes.Buffer
		WriteOutput(&buf, result, OutputSummary, ReportConfig{})
		assert.Contains(t, buf.String(), "1 template")
		assert.Contains(t, buf.String(), "would change")
		assert.Contains(t, buf.String(), "2 of 4 files changed")
	})

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		WriteOutput(&buf, result, OutputJSON, ReportConfig{})

		var out JSONOutput
		require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
		assert.Equal(t, "1.0", out.Version)
		assert.Equal(t, 3, out.Summary.Warnings)
		assert.Equal(t, 2, out.Summary.FilesChanged)
		assert.Len(t, out.Issues, 3)
		assert.Equal(t, "cssstrings", out.Issues[0].Linter)
		assert.Equal(t, result.BytesSaved(), out.Summary.BytesSaved)
	})
}

func TestDetermineOutputFormat(t *testing.T) {
	assert.Equal(t, OutputJSON, DetermineOutputFormat("json"))
	assert.Equal(t, OutputFull, DetermineOutputFormat("full"))
	assert.Equal(t, OutputSummary, DetermineOutputFormat("summary"))
	assert.Equal(t, OutputIssues, DetermineOutputFormat(""))
	assert.Equal(t, OutputIssues, DetermineOutputFormat("markdown"))
}
