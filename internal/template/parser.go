// Package template indexes the template literals of a JS/TS/JSX/TSX source
// file by the offset of their opening backtick.
package template

import (
	"fmt"
	"sync"

	sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_javascript "github.com/tree-sitter/tree-sitter-javascript/bindings/go"
	tree_sitter_typescript "github.com/tree-sitter/tree-sitter-typescript/bindings/go"

	"github.com/yacobolo/cssstrings/internal/log"
)

// Indexer produces the template index for one source file
type Indexer interface {
	Index(source string, lang Language) (Index, error)
}

var (
	jsLang  = sitter.NewLanguage(tree_sitter_javascript.Language())
	tsLang  = sitter.NewLanguage(tree_sitter_typescript.LanguageTypescript())
	tsxLang = sitter.NewLanguage(tree_sitter_typescript.LanguageTSX())
)

// grammar returns the tree-sitter language for a dialect.
// The JavaScript grammar covers JSX.
func grammar(lang Language) *sitter.Language {
	switch lang {
	case LanguageTS:
		return tsLang
	case LanguageTSX:
		return tsxLang
	default:
		return jsLang
	}
}

func newPool(lang *sitter.Language) *sync.Pool {
	return &sync.Pool{
		New: func() any {
			parser := sitter.NewParser()
			if err := parser.SetLanguage(lang); err != nil {
				panic(fmt.Sprintf("failed to set tree-sitter language: %v", err))
			}
			return parser
		},
	}
}

// parserPools holds reusable parsers per grammar
var parserPools = map[*sitter.Language]*sync.Pool{
	jsLang:  newPool(jsLang),
	tsLang:  newPool(tsLang),
	tsxLang: newPool(tsxLang),
}

// TreeSitter is the Indexer backed by tree-sitter grammars
type TreeSitter struct{}

// NewTreeSitter returns the default Indexer
func NewTreeSitter() *TreeSitter {
	return &TreeSitter{}
}

// Index parses source and records every well-formed template literal.
// Templates inside regions tree-sitter could not parse are left out so the
// caller can report them.
func (TreeSitter) Index(source string, lang Language) (Index, error) {
	pool := parserPools[grammar(lang)]
	parser := pool.Get().(*sitter.Parser)
	parser.Reset()
	defer pool.Put(parser)

	src := []byte(source)
	tree := parser.Parse(src, nil)
	if tree == nil {
		return nil, fmt.Errorf("tree-sitter returned no tree for %s source", lang)
	}
	defer tree.Close()

	idx := make(Index)
	collect(tree.RootNode(), source, idx)
	return idx, nil
}

func collect(node *sitter.Node, source string, idx Index) {
	if node == nil {
		return
	}

	if node.Kind() == "template_string" {
		if tmpl, ok := segment(node, source); ok {
			record(idx, source, tmpl)
		}
	}

	for i := uint(0); i < node.ChildCount(); i++ {
		collect(node.Child(i), source, idx)
	}
}

// record stores tmpl unless its offsets drifted off the backticks
func record(idx Index, source string, tmpl Template) {
	start, end := tmpl.StartBacktick, tmpl.EndBacktick
	if start < 0 || end >= len(source) || end <= start {
		return
	}
	if source[start] != '`' || source[end] != '`' {
		log.Debug("discarding template at %d: offsets do not land on backticks", start)
		return
	}
	idx[start] = tmpl
}

// segment splits a template_string node into cooked text and expression source
func segment(node *sitter.Node, source string) (Template, bool) {
	if node.HasError() {
		return Template{}, false
	}

	start := int(node.StartByte())
	end := int(node.EndByte()) - 1
	tmpl := Template{StartBacktick: start, EndBacktick: end}

	textStart := start + 1
	for i := uint(0); i < node.NamedChildCount(); i++ {
		child := node.NamedChild(i)
		if child == nil || child.Kind() != "template_substitution" {
			continue
		}

		expr, ok := expressionSource(child, source)
		if !ok {
			return Template{}, false
		}

		tmpl.Segments = append(tmpl.Segments,
			Text(Cook(source[textStart:child.StartByte()])),
			Expr(expr),
		)
		textStart = int(child.EndByte())
	}

	if textStart > end {
		return Template{}, false
	}
	tmpl.Segments = append(tmpl.Segments, Text(Cook(source[textStart:end])))

	return tmpl, true
}

// expressionSource returns the source text of the expression inside ${...},
// without surrounding whitespace or comments
func expressionSource(sub *sitter.Node, source string) (string, bool) {
	var first, last *sitter.Node
	for i := uint(0); i < sub.NamedChildCount(); i++ {
		child := sub.NamedChild(i)
		if child == nil || child.Kind() == "comment" {
			continue
		}
		if first == nil {
			first = child
		}
		last = child
	}

	if first == nil {
		return "", false
	}
	return source[first.StartByte():last.EndByte()], true
}
