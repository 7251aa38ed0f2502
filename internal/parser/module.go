package parser

// DeclKind identifies the shape of a top-level or member declaration.
type DeclKind string

const (
	KindFunction  DeclKind = "function"
	KindVariable  DeclKind = "variable"
	KindClass     DeclKind = "class"
	KindInterface DeclKind = "interface"
	KindEnum      DeclKind = "enum"
	KindTypeAlias DeclKind = "typeAlias"
	KindNamespace DeclKind = "namespace"
)

// Decl is one declaration extracted from source, with its members for
// container kinds. Line is 1-based, Col is 0-based.
type Decl struct {
	Name      string
	Kind      DeclKind
	Exported  bool
	Default   bool
	Line, Col int
	Doc       *JSDoc
	Signature string
	Members   []Decl
}

// ImportedName is one binding created by an import statement. Imported is
// "default" for default imports and "*" for namespace imports.
type ImportedName struct {
	Local    string
	Imported string
}

// Import is one static or dynamic import discovered in a module.
type Import struct {
	Src       string
	IsDynamic bool
	Names     []ImportedName
	Line, Col int
}

// ReexportName maps an exported name to the name it has in the source
// module, for `export {a as b} from "x"` clauses.
type ReexportName struct {
	Exported string
	Source   string
}

// Reexport is one `export ... from "x"` edge. Wildcard covers
// `export * from`; Namespace is set for `export * as ns from`.
type Reexport struct {
	Src       string
	Wildcard  bool
	Namespace string
	Names     []ReexportName
	Line, Col int
}

// Module is the parsed surface of one module: its declarations in source
// order, its imports, and its re-export edges.
type Module struct {
	Decls     []Decl
	Imports   []Import
	Reexports []Reexport
}
