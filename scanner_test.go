package cssstrings

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShouldSkipFile(t *testing.T) {
	tests := []struct {
		name string
		path string
		want bool
	}{
		{name: "typescript", path: "/src/app.ts", want: false},
		{name: "tsx", path: "/src/app.tsx", want: false},
		{name: "javascript", path: "/src/app.js", want: false},
		{name: "jsx", path: "/src/app.jsx", want: false},
		{name: "css file", path: "/src/app.css", want: true},
		{name: "vendored", path: "/app/node_modules/lib/index.js", want: true},
		{name: "minified bundle", path: "/dist/app.min.js", want: true},
		{name: "type declarations", path: "/types/app.d.ts", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, shouldSkipFile(tt.path))
		})
	}
}

func TestDiscoverFiles(t *testing.T) {
	dir := t.TempDir()
	write := func(rel string) {
		path := filepath.Join(dir, rel)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte("export {}\n"), 0o644))
	}
	write("src/b.ts")
	write("src/a.tsx")
	write("src/nested/c.js")
	write("src/style.css")
	write("src/node_modules/dep/index.js")
	write("src/types.d.ts")

	pattern := filepath.ToSlash(filepath.Join(dir, "src")) + "/**/*"
	files, stats, err := DiscoverFiles([]string{pattern, pattern})
	require.NoError(t, err)

	assert.Equal(t, []string{
		filepath.Join(dir, "src", "a.tsx"),
		filepath.Join(dir, "src", "b.ts"),
		filepath.Join(dir, "src", "nested", "c.js"),
	}, files)
	assert.Equal(t, 6, stats.FilesDiscovered)
	assert.Equal(t, 3, stats.FilesScanned)
	assert.Equal(t, 3, stats.FilesSkipped)
}
