// Package parser turns TypeScript and JavaScript source into declaration,
// import and re-export summaries using tree-sitter.
package parser

import (
	"fmt"

	tree_sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_javascript "github.com/tree-sitter/tree-sitter-javascript/bindings/go"
	tree_sitter_typescript "github.com/tree-sitter/tree-sitter-typescript/bindings/go"

	"moddoc/internal/graph"
)

var (
	langTypeScript = tree_sitter.NewLanguage(tree_sitter_typescript.LanguageTypescript())
	langTSX        = tree_sitter.NewLanguage(tree_sitter_typescript.LanguageTSX())
	langJavaScript = tree_sitter.NewLanguage(tree_sitter_javascript.Language())
)

func languageFor(media graph.MediaType) *tree_sitter.Language {
	switch media {
	case graph.MediaTSX:
		return langTSX
	case graph.MediaJavaScript, graph.MediaJSX:
		return langJavaScript
	default:
		return langTypeScript
	}
}

// Parser parses module source. It is stateless and safe for concurrent use;
// each parse creates its own tree-sitter parser.
type Parser struct{}

// New creates a Parser.
func New() *Parser {
	return &Parser{}
}

// ParseModule parses one module's source into its declaration surface.
// JSON modules have no declarations and parse to an empty module.
func (p *Parser) ParseModule(spec graph.Specifier, media graph.MediaType, source []byte) (*Module, error) {
	if media == graph.MediaJSON {
		return &Module{}, nil
	}

	tsParser := tree_sitter.NewParser()
	defer tsParser.Close()
	if err := tsParser.SetLanguage(languageFor(media)); err != nil {
		return nil, fmt.Errorf("failed to set language for %s: %w", media, err)
	}

	tree := tsParser.Parse(source, nil)
	if tree == nil {
		return nil, fmt.Errorf("failed to parse %s", spec)
	}
	defer tree.Close()

	ex := &extractor{source: source}
	mod := ex.module(tree.RootNode())
	return mod, nil
}

// ExtractDependencies lists the static imports, dynamic imports and
// re-export sources of a module. It satisfies graph.DependencyExtractor.
func (p *Parser) ExtractDependencies(spec graph.Specifier, media graph.MediaType, source []byte) ([]graph.RawDependency, error) {
	mod, err := p.ParseModule(spec, media, source)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool)
	var deps []graph.RawDependency
	add := func(raw string, dynamic bool) {
		if raw == "" || seen[raw] {
			return
		}
		seen[raw] = true
		deps = append(deps, graph.RawDependency{Specifier: raw, IsDynamic: dynamic})
	}
	for _, imp := range mod.Imports {
		add(imp.Src, imp.IsDynamic)
	}
	for _, re := range mod.Reexports {
		add(re.Src, false)
	}
	return deps, nil
}
