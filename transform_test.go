package cssstrings

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yacobolo/cssstrings/internal/minify"
	"github.com/yacobolo/cssstrings/internal/placeholder"
	"github.com/yacobolo/cssstrings/internal/report"
	"github.com/yacobolo/cssstrings/internal/template"
)

// wrap places css in a marked template assigned to a constant
func wrap(css string) string {
	return "const styles = /* css */ `" + css + "`;\n"
}

// templateCases run against the default engine, which must produce want exactly
var templateCases = []struct {
	name   string
	css    string
	want   string
	nested bool // needs nesting lowering
}{
	{name: "declaration value", css: ".a { color: ${color}; }", want: ".a{color:${color}}"},
	{name: "class selector", css: ".${cls} { color: red; }", want: ".${cls}{color:red}"},
	{name: "id selector", css: "#${id} { color: red; }", want: "#${id}{color:red}"},
	{name: "whole selector", css: "${selector} { color: red; }", want: "${selector}{color:red}"},
	{name: "custom property name", css: ":root { --${name}: 1px; }", want: ":root{--${name}:1px}"},
	{name: "rule list chunk", css: "a{color:red} ${chunk} b{color:blue}", want: "a{color:red}${chunk}b{color:#00f}"},
	{name: "nesting", css: "body {\n  .some { color: red; }\n}", want: "body .some{color:red}", nested: true},
	{name: "backtick in string", css: ".a { content: \"\\`\"; }", want: ".a{content:\"\\`\"}"},
	{name: "declarations only", css: "background-color: ${c}; top: ${t}px;", want: "background-color:${c};top:${t}px"},
	{name: "expression source kept", css: ".a { width: ${ size * 2 }px; }", want: ".a{width:${size * 2}px}"},
}

func TestTransformTemplates(t *testing.T) {
	for _, tt := range templateCases {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Transform(wrap(tt.css), "src/styles.ts", Options{})
			require.NoError(t, err)
			require.True(t, res.Changed())
			assert.Equal(t, wrap(tt.want), res.Code)
			assert.Empty(t, res.Warnings)
		})
	}
}

var interpolation = regexp.MustCompile(`\$\{\s*(.*?)\s*\}`)

// interpolations lists the trimmed expression sources in code, in order
func interpolations(code string) []string {
	var out []string
	for _, m := range interpolation.FindAllStringSubmatch(code, -1) {
		out = append(out, m[1])
	}
	return out
}

func TestTransformTemplatesAllEngines(t *testing.T) {
	for _, engine := range minify.EngineNames() {
		for _, tt := range templateCases {
			t.Run(engine+"/"+tt.name, func(t *testing.T) {
				code := wrap(tt.css)
				res, err := Transform(code, "src/styles.ts", Options{Minify: MinifyOptions{Engine: engine}})

				if tt.nested && engine != minify.EngineESBuild {
					require.Error(t, err)
					assert.ErrorIs(t, err, ErrNestingUnsupported)
					return
				}
				require.NoError(t, err)

				out := code
				if res != nil {
					out = res.Code
				}
				if engine == minify.EngineESBuild {
					assert.Equal(t, wrap(tt.want), out)
				}
				assert.Equal(t, interpolations(code), interpolations(out))
				assert.NotContains(t, out, placeholder.DefaultPrefix)
			})
		}
	}
}

func TestTransformRuleInterpolationInsideBlock(t *testing.T) {
	tests := []string{
		".a { ${mixin} color: red; }",
		".a { color: red; ${mixin} }",
	}

	for _, css := range tests {
		t.Run(css, func(t *testing.T) {
			_, err := Transform(wrap(css), "a.ts", Options{})
			require.Error(t, err)

			var moved *RulePositionError
			require.ErrorAs(t, err, &moved)
			assert.Equal(t, 0, moved.Index)

			var tmplErr *TemplateError
			require.ErrorAs(t, err, &tmplErr)
			assert.Equal(t, "a.ts", tmplErr.Filename)
			assert.Equal(t, strings.IndexByte(wrap(css), '`')+1, tmplErr.Offset)
		})
	}
}

func TestTransformFunctionArguments(t *testing.T) {
	res, err := Transform(wrap(".a { color: rgb(${r}, ${g}, ${b}); }"), "a.js", Options{})
	require.NoError(t, err)
	require.True(t, res.Changed())

	body := res.Changes[0].After
	assert.True(t, strings.HasPrefix(body, ".a{color:rgb("), body)
	assert.Equal(t, 3, strings.Count(body, "${"))
	assert.Less(t, strings.Index(body, "${r}"), strings.Index(body, "${g}"))
	assert.Less(t, strings.Index(body, "${g}"), strings.Index(body, "${b}"))
	assert.NotContains(t, body, "__CSS_STR_EXPR_")
}

func TestTransformMultipleTemplates(t *testing.T) {
	code := "const a = /* css */ `.a { color: red; }`;\n" +
		"const b = `.b { color: red; }`;\n" +
		"const c = /*css*/ `\n  .c {\n    margin: 0px;\n  }\n`;\n"
	want := "const a = /* css */ `.a{color:red}`;\n" +
		"const b = `.b { color: red; }`;\n" +
		"const c = /*css*/ `.c{margin:0}`;\n"

	res, err := Transform(code, "src/a.ts", Options{})
	require.NoError(t, err)
	assert.Equal(t, want, res.Code)
	require.Len(t, res.Changes, 2)
	assert.Equal(t, ".a { color: red; }", res.Changes[0].Before)
	assert.Equal(t, ".c{margin:0}", res.Changes[1].After)
	assert.Less(t, res.Changes[0].End, res.Changes[1].Start)

	require.NotNil(t, res.Map)
	assert.Equal(t, 3, res.Map.Version)
	assert.Equal(t, []string{"src/a.ts"}, res.Map.Sources)
	assert.Equal(t, []string{code}, res.Map.SourcesContent)
	assert.NotEmpty(t, res.Map.Mappings)
}

func TestTransformDialects(t *testing.T) {
	tests := []struct {
		id   string
		code string
		want string
	}{
		{
			id:   "a.ts",
			code: "const s: string = /* css */ `.a { color: red; }`;\n",
			want: "const s: string = /* css */ `.a{color:red}`;\n",
		},
		{
			id:   "a.tsx",
			code: "const el = <div class={/* css */ `.a { color: red; }`} />;\n",
			want: "const el = <div class={/* css */ `.a{color:red}`} />;\n",
		},
		{
			id:   "a.jsx",
			code: "const el = <div>{/* css */ `.a { color: red; }`}</div>;\n",
			want: "const el = <div>{/* css */ `.a{color:red}`}</div>;\n",
		},
		{
			id:   "a.js?v=123",
			code: "export default /* css */ `.a { color: red; }`;\n",
			want: "export default /* css */ `.a{color:red}`;\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			res, err := Transform(tt.code, tt.id, Options{})
			require.NoError(t, err)
			require.NotNil(t, res)
			assert.Equal(t, tt.want, res.Code)
		})
	}
}

func TestTransformNoChange(t *testing.T) {
	tests := []struct {
		name string
		code string
		id   string
	}{
		{name: "no marker", code: "const s = `.a { color: red; }`;", id: "a.ts"},
		{name: "non-target extension", code: wrap(".a { color: red; }"), id: "a.css"},
		{name: "extension case", code: wrap(".a { color: red; }"), id: "a.TS"},
		{name: "query hides extension", code: wrap(".a { color: red; }"), id: "a.vue?lang.ts"},
		{name: "vendored", code: wrap(".a { color: red; }"), id: "/app/node_modules/lib/a.js"},
		{name: "already minified", code: wrap(".a{color:red}"), id: "a.ts"},
		{name: "marker before non-template", code: "const s = /* css */ '.a { color: red; }';", id: "a.ts"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Transform(tt.code, tt.id, Options{})
			require.NoError(t, err)
			assert.Nil(t, res)
		})
	}
}

func TestTransformUnresolvedMarker(t *testing.T) {
	code := "const s = \"/* css */ `\";\nconst t = /* css */ `.a { color: red; }`;\n"

	res, err := Transform(code, "a.js", Options{})
	require.NoError(t, err)
	require.NotNil(t, res)

	require.Len(t, res.Warnings, 1)
	w := res.Warnings[0]
	assert.Equal(t, report.SeverityWarning, w.Severity)
	assert.Equal(t, "a.js", w.Pos.Filename)
	assert.Equal(t, strings.IndexByte(code, '`')+1, w.Pos.Offset)
	assert.Equal(t, 1, w.Pos.Line)

	assert.True(t, res.Changed())
	assert.Contains(t, res.Code, "`.a{color:red}`")
}

func TestTransformUnresolvedOnly(t *testing.T) {
	code := "const s = \"/* css */ `\";\n"

	res, err := Transform(code, "a.js", Options{})
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.False(t, res.Changed())
	assert.Equal(t, code, res.Code)
	assert.Nil(t, res.Map)
	assert.Len(t, res.Warnings, 1)
}

func TestTransformReservedPrefix(t *testing.T) {
	code := wrap(".__CSS_STR_EXPR_0__ { color: red; }")

	res, err := Transform(code, "a.ts", Options{})
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.False(t, res.Changed())
	require.Len(t, res.Warnings, 1)
	assert.Contains(t, res.Warnings[0].Text, "reserved prefix")
}

func TestTransformReservedPrefixAnyCase(t *testing.T) {
	res, err := Transform(wrap("__css_str_expr_0__ { color: red; }"), "a.ts", Options{})
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.False(t, res.Changed())
	require.Len(t, res.Warnings, 1)
	assert.Contains(t, res.Warnings[0].Text, "reserved prefix")
}

func TestTransformOffsetsCountCharacters(t *testing.T) {
	prefix := "const label = \"日本 😀\";\n"

	t.Run("warning", func(t *testing.T) {
		code := prefix + "const s = \"/* css */ `\";\n"
		res, err := Transform(code, "a.ts", Options{})
		require.NoError(t, err)
		require.Len(t, res.Warnings, 1)

		// 日本 is 6 bytes but 2 units; 😀 is 4 bytes but 2 units
		want := strings.IndexByte(code, '`') - 6 + 1
		assert.Equal(t, want, res.Warnings[0].Pos.Offset)
		assert.Contains(t, res.Warnings[0].Text, fmt.Sprintf("offset %d", want))
		assert.Equal(t, 2, res.Warnings[0].Pos.Line)
	})

	t.Run("error", func(t *testing.T) {
		code := prefix + wrap(".a { color: red; }")
		_, err := Transform(code, "a.ts", Options{Minify: MinifyOptions{Engine: "nope"}})

		var minifyErr *MinifyError
		require.ErrorAs(t, err, &minifyErr)
		assert.Equal(t, strings.IndexByte(code, '`')-6+1, minifyErr.Offset)
	})
}

func TestTransformMinifyError(t *testing.T) {
	code := "\n" + wrap(".a { color: red; }")

	_, err := Transform(code, "src/a.ts?x", Options{Minify: MinifyOptions{Engine: "nope"}})
	require.Error(t, err)

	var minifyErr *MinifyError
	require.ErrorAs(t, err, &minifyErr)
	assert.Equal(t, "src/a.ts", minifyErr.Filename)
	assert.Equal(t, strings.IndexByte(code, '`')+1, minifyErr.Offset)
	assert.Contains(t, err.Error(), "src/a.ts at offset")
	assert.Equal(t, minifyErr.Offset, errorOffset(err))
}

type failingIndexer struct{}

func (failingIndexer) Index(string, template.Language) (template.Index, error) {
	return nil, errors.New("boom")
}

type fixedIndexer struct{ idx template.Index }

func (f fixedIndexer) Index(string, template.Language) (template.Index, error) {
	return f.idx, nil
}

func TestTransformIndexerError(t *testing.T) {
	_, err := Transform(wrap(".a{}"), "a.ts", Options{indexer: failingIndexer{}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing a.ts")
}

func TestTransformInjectedIndexer(t *testing.T) {
	code := wrap(".a { color: ${c}; }")
	start := strings.IndexByte(code, '`')
	end := strings.LastIndexByte(code, '`')

	idx := template.Index{
		start: {
			StartBacktick: start,
			EndBacktick:   end,
			Segments: []template.Segment{
				template.Text(".a { color: "),
				template.Expr("c"),
				template.Text("; }"),
			},
		},
	}

	res, err := Transform(code, "a.ts", Options{indexer: fixedIndexer{idx: idx}})
	require.NoError(t, err)
	assert.Equal(t, wrap(".a{color:${c}}"), res.Code)
}

func TestIsTargetFile(t *testing.T) {
	tests := []struct {
		id   string
		want bool
	}{
		{"a.ts", true},
		{"a.tsx", true},
		{"a.js", true},
		{"a.jsx", true},
		{"/src/a.ts?import", true},
		{"a.mjs", false},
		{"a.css", false},
		{"a.Ts", false},
		{"/x/node_modules/y/a.ts", false},
		{"a.css?x.ts", false},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			assert.Equal(t, tt.want, IsTargetFile(tt.id))
		})
	}
}

func TestLanguageOf(t *testing.T) {
	assert.Equal(t, template.LanguageTS, LanguageOf("a.ts"))
	assert.Equal(t, template.LanguageTSX, LanguageOf("a.tsx?raw"))
	assert.Equal(t, template.LanguageJS, LanguageOf("a.js"))
	assert.Equal(t, template.LanguageJSX, LanguageOf("a.jsx"))
	assert.Equal(t, template.LanguageUnknown, LanguageOf("a.vue"))
}
