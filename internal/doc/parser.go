package doc

import (
	"moddoc/internal/graph"
	"moddoc/internal/parser"
)

// Parser extracts documentation nodes from modules in a built graph.
type Parser struct {
	graph   *graph.ModuleGraph
	source  *parser.Parser
	private bool
}

// NewParser creates a doc parser over a built module graph. When private is
// set, non-exported declarations are documented too.
func NewParser(g *graph.ModuleGraph, source *parser.Parser, private bool) *Parser {
	return &Parser{graph: g, source: source, private: private}
}

// ParseSource documents a single module directly from the given source,
// without consulting the graph. This is the path for the built-in root,
// whose declaration-only content is supplied out-of-band.
func (p *Parser) ParseSource(spec graph.Specifier, media graph.MediaType, source []byte) ([]Node, error) {
	mod, err := p.source.ParseModule(spec, media, source)
	if err != nil {
		return nil, &GenerationError{Specifier: spec, Cause: err}
	}
	return p.nodesFromModule(spec, mod, media.IsDeclaration()), nil
}

// ParseWithReexports documents the module at root, chasing `export * from`
// and `export {name} from` chains so that every symbol is attributed to its
// true declaring module while surfacing where the re-export occurs. Chains
// through cycles are cut; repeat visits reuse the first result.
func (p *Parser) ParseWithReexports(root graph.Specifier) ([]Node, error) {
	w := &walker{parser: p, root: root.String(), memo: make(map[string]*walkEntry)}
	return w.parseModule(root)
}

type walkEntry struct {
	nodes []Node
	done  bool
}

type walker struct {
	parser *Parser
	root   string
	memo   map[string]*walkEntry
}

func (w *walker) parseModule(spec graph.Specifier) ([]Node, error) {
	key := spec.String()
	if st, ok := w.memo[key]; ok {
		if !st.done {
			// re-export cycle; the in-progress module contributes nothing
			return nil, nil
		}
		return st.nodes, nil
	}
	w.memo[key] = &walkEntry{}

	p := w.parser
	rec, err := p.graph.Get(spec)
	if err != nil {
		return nil, &GenerationError{Specifier: spec, Cause: err}
	}
	mod, err := p.source.ParseModule(rec.Specifier, rec.Media, rec.Source)
	if err != nil {
		return nil, &GenerationError{Specifier: spec, Cause: err}
	}

	nodes := p.nodesFromModule(spec, mod, rec.Media.IsDeclaration())
	for _, re := range mod.Reexports {
		target, err := rec.Resolved(re.Src)
		if err != nil {
			return nil, &GenerationError{Specifier: spec, Cause: err}
		}
		inner, err := w.parseModule(target)
		if err != nil {
			return nil, err
		}
		switch {
		case re.Wildcard:
			// The root's wildcard re-export is the documented entry surface,
			// so the target's Import nodes stay in the sequence. Deeper
			// chains contribute declarations only.
			keepImports := key == w.root
			for _, n := range inner {
				if n.Kind != KindImport || keepImports {
					nodes = append(nodes, n)
				}
			}
		case re.Namespace != "":
			nodes = append(nodes, Node{
				Name:      re.Namespace,
				Kind:      KindNamespace,
				Location:  Location{Specifier: spec, Line: re.Line, Col: re.Col},
				Signature: "namespace " + re.Namespace,
				Children:  WithoutImports(inner),
			})
		default:
			for _, name := range re.Names {
				for _, n := range inner {
					if n.Kind == KindImport || n.Name != name.Source {
						continue
					}
					renamed := n
					renamed.Name = name.Exported
					nodes = append(nodes, renamed)
				}
			}
		}
	}

	w.memo[key] = &walkEntry{nodes: nodes, done: true}
	return nodes, nil
}

// nodesFromModule maps a parsed module surface to doc nodes: declarations
// subject to the export/private rule, then static imports as Import-kind
// nodes representing the dependency edges themselves. Declaration-only
// modules document every top-level declaration (declareAll).
func (p *Parser) nodesFromModule(spec graph.Specifier, mod *parser.Module, declareAll bool) []Node {
	var nodes []Node
	for _, d := range mod.Decls {
		if !d.Exported && !p.private && !declareAll {
			continue
		}
		nodes = append(nodes, p.fromDecl(spec, d))
	}
	for _, imp := range mod.Imports {
		if imp.IsDynamic {
			continue
		}
		for _, name := range imp.Names {
			nodes = append(nodes, Node{
				Name:      name.Local,
				Kind:      KindImport,
				Location:  Location{Specifier: spec, Line: imp.Line, Col: imp.Col},
				ImportDef: &ImportDef{Src: imp.Src, Imported: name.Imported},
			})
		}
	}
	return nodes
}

func (p *Parser) fromDecl(spec graph.Specifier, d parser.Decl) Node {
	n := Node{
		Name:      d.Name,
		Kind:      Kind(d.Kind),
		Location:  Location{Specifier: spec, Line: d.Line, Col: d.Col},
		JSDoc:     d.Doc,
		Signature: d.Signature,
	}
	for _, m := range d.Members {
		// namespace members follow the module-level visibility rule;
		// class, interface and enum members are always part of their
		// container's surface
		if d.Kind == parser.KindNamespace && !m.Exported && !p.private {
			continue
		}
		n.Children = append(n.Children, p.fromDecl(spec, m))
	}
	return n
}
