// Package doc builds documentation trees from a resolved module graph.
package doc

import (
	"moddoc/internal/graph"
	"moddoc/internal/parser"
)

// Kind classifies a documented symbol.
type Kind string

const (
	KindFunction  Kind = "function"
	KindVariable  Kind = "variable"
	KindClass     Kind = "class"
	KindInterface Kind = "interface"
	KindEnum      Kind = "enum"
	KindTypeAlias Kind = "typeAlias"
	KindNamespace Kind = "namespace"
	KindImport    Kind = "import"
)

// Location is where a symbol is declared: specifier plus 1-based line and
// 0-based column.
type Location struct {
	Specifier graph.Specifier `json:"specifier"`
	Line      int             `json:"line"`
	Col       int             `json:"col"`
}

// ImportDef describes the dependency edge an Import-kind node represents.
type ImportDef struct {
	Src      string `json:"src"`
	Imported string `json:"imported,omitempty"`
}

// Node is one documented symbol. Children are owned by their parent and are
// populated for container kinds (namespace, class, interface, enum).
type Node struct {
	Name      string        `json:"name"`
	Kind      Kind          `json:"kind"`
	Location  Location      `json:"location"`
	JSDoc     *parser.JSDoc `json:"jsDoc,omitempty"`
	Signature string        `json:"signature,omitempty"`
	Children  []Node        `json:"children,omitempty"`
	ImportDef *ImportDef    `json:"importDef,omitempty"`
}

// WithoutImports returns the nodes with Import-kind entries dropped; they
// carry no value for a human reader.
func WithoutImports(nodes []Node) []Node {
	out := make([]Node, 0, len(nodes))
	for _, n := range nodes {
		if n.Kind != KindImport {
			out = append(out, n)
		}
	}
	return out
}
