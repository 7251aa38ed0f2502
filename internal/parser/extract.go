package parser

import (
	"strings"

	tree_sitter "github.com/tree-sitter/go-tree-sitter"
)

// extractor walks one parsed tree and accumulates the module surface.
type extractor struct {
	source []byte
	mod    Module
}

func (ex *extractor) module(root *tree_sitter.Node) *Module {
	ex.mod.Decls = ex.statements(root)
	ex.collectDynamicImports(root)
	return &ex.mod
}

// statements extracts the declarations of a statement container (the program
// or a namespace body). Doc comments attach to the declaration that directly
// follows them; `export {a, b}` clauses retroactively mark local
// declarations exported.
func (ex *extractor) statements(parent *tree_sitter.Node) []Decl {
	var decls []Decl
	exported := make(map[string]bool)
	var lastComment *tree_sitter.Node

	for i := uint(0); i < parent.NamedChildCount(); i++ {
		n := parent.NamedChild(i)
		switch n.Kind() {
		case "comment":
			if strings.HasPrefix(ex.text(n), "/**") {
				lastComment = n
			} else {
				lastComment = nil
			}
			continue
		case "import_statement":
			ex.importStatement(n)
		case "export_statement":
			ex.exportStatement(n, lastComment, &decls, exported)
		default:
			if ds := ex.declaration(n, false); len(ds) > 0 {
				ds[0].Doc = ex.docFor(lastComment, n)
				decls = append(decls, ds...)
			}
		}
		lastComment = nil
	}

	for i := range decls {
		if exported[decls[i].Name] {
			decls[i].Exported = true
		}
	}
	return decls
}

func (ex *extractor) importStatement(n *tree_sitter.Node) {
	src := ex.sourceSpecifier(n)
	if src == "" {
		return
	}
	imp := Import{
		Src:  src,
		Line: int(n.StartPosition().Row) + 1,
		Col:  int(n.StartPosition().Column),
	}
	if clause := namedChildOfKind(n, "import_clause"); clause != nil {
		for i := uint(0); i < clause.NamedChildCount(); i++ {
			c := clause.NamedChild(i)
			switch c.Kind() {
			case "identifier":
				imp.Names = append(imp.Names, ImportedName{Local: ex.text(c), Imported: "default"})
			case "namespace_import":
				if id := c.NamedChild(0); id != nil {
					imp.Names = append(imp.Names, ImportedName{Local: ex.text(id), Imported: "*"})
				}
			case "named_imports":
				for j := uint(0); j < c.NamedChildCount(); j++ {
					spec := c.NamedChild(j)
					if spec.Kind() != "import_specifier" {
						continue
					}
					name := ex.fieldText(spec, "name")
					local := ex.fieldText(spec, "alias")
					if local == "" {
						local = name
					}
					imp.Names = append(imp.Names, ImportedName{Local: local, Imported: name})
				}
			}
		}
	}
	ex.mod.Imports = append(ex.mod.Imports, imp)
}

func (ex *extractor) exportStatement(n *tree_sitter.Node, comment *tree_sitter.Node, out *[]Decl, exported map[string]bool) {
	if src := ex.sourceSpecifier(n); src != "" {
		re := Reexport{
			Src:  src,
			Line: int(n.StartPosition().Row) + 1,
			Col:  int(n.StartPosition().Column),
		}
		switch {
		case namedChildOfKind(n, "export_clause") != nil:
			clause := namedChildOfKind(n, "export_clause")
			for i := uint(0); i < clause.NamedChildCount(); i++ {
				spec := clause.NamedChild(i)
				if spec.Kind() != "export_specifier" {
					continue
				}
				name := ex.fieldText(spec, "name")
				alias := ex.fieldText(spec, "alias")
				if alias == "" {
					alias = name
				}
				re.Names = append(re.Names, ReexportName{Exported: alias, Source: name})
			}
		case namedChildOfKind(n, "namespace_export") != nil:
			ns := namedChildOfKind(n, "namespace_export")
			if id := ns.NamedChild(0); id != nil {
				re.Namespace = ex.text(id)
			}
		default:
			re.Wildcard = true
		}
		ex.mod.Reexports = append(ex.mod.Reexports, re)
		return
	}

	if clause := namedChildOfKind(n, "export_clause"); clause != nil {
		// export {a, b as c} of local declarations
		for i := uint(0); i < clause.NamedChildCount(); i++ {
			spec := clause.NamedChild(i)
			if spec.Kind() == "export_specifier" {
				exported[ex.fieldText(spec, "name")] = true
			}
		}
		return
	}

	isDefault := false
	for i := uint(0); i < n.ChildCount(); i++ {
		if c := n.Child(i); !c.IsNamed() && ex.text(c) == "default" {
			isDefault = true
			break
		}
	}

	decl := n.ChildByFieldName("declaration")
	if decl == nil {
		decl = n.ChildByFieldName("value")
	}
	if decl == nil {
		return
	}
	ds := ex.declaration(decl, true)
	if len(ds) == 0 {
		return
	}
	ds[0].Doc = ex.docFor(comment, n)
	if isDefault {
		for i := range ds {
			ds[i].Default = true
			if ds[i].Name == "" {
				ds[i].Name = "default"
			}
		}
	}
	*out = append(*out, ds...)
}

// declaration parses one declaration node. It returns a slice because
// variable statements declare several bindings and ambient blocks unwrap.
func (ex *extractor) declaration(n *tree_sitter.Node, exp bool) []Decl {
	switch n.Kind() {
	case "ambient_declaration":
		var out []Decl
		for i := uint(0); i < n.NamedChildCount(); i++ {
			out = append(out, ex.declaration(n.NamedChild(i), exp)...)
		}
		return out

	case "function_declaration", "generator_function_declaration", "function_signature", "function_expression":
		return []Decl{ex.functionDecl(n, exp, "function ")}

	case "class_declaration", "abstract_class_declaration", "class":
		return []Decl{ex.classDecl(n, exp)}

	case "interface_declaration":
		return []Decl{ex.interfaceDecl(n, exp)}

	case "enum_declaration":
		return []Decl{ex.enumDecl(n, exp)}

	case "type_alias_declaration":
		d := ex.newDecl(n, KindTypeAlias, exp)
		d.Signature = "type " + d.Name + " = " + ex.fieldText(n, "value")
		return []Decl{d}

	case "lexical_declaration", "variable_declaration":
		keyword := "var"
		if c := n.Child(0); c != nil && !c.IsNamed() {
			keyword = ex.text(c)
		}
		var out []Decl
		for i := uint(0); i < n.NamedChildCount(); i++ {
			dtor := n.NamedChild(i)
			if dtor.Kind() != "variable_declarator" {
				continue
			}
			name := dtor.ChildByFieldName("name")
			if name == nil || name.Kind() != "identifier" {
				continue
			}
			d := Decl{
				Name:     ex.text(name),
				Kind:     KindVariable,
				Exported: exp,
				Line:     int(dtor.StartPosition().Row) + 1,
				Col:      int(dtor.StartPosition().Column),
			}
			d.Signature = keyword + " " + d.Name + ex.fieldText(dtor, "type")
			out = append(out, d)
		}
		return out

	case "internal_module", "module":
		d := ex.newDecl(n, KindNamespace, exp)
		d.Signature = "namespace " + d.Name
		if body := n.ChildByFieldName("body"); body != nil {
			d.Members = ex.statements(body)
		}
		return []Decl{d}
	}
	return nil
}

// newDecl builds a Decl skeleton from a node with a name field.
func (ex *extractor) newDecl(n *tree_sitter.Node, kind DeclKind, exp bool) Decl {
	return Decl{
		Name:     ex.fieldText(n, "name"),
		Kind:     kind,
		Exported: exp,
		Line:     int(n.StartPosition().Row) + 1,
		Col:      int(n.StartPosition().Column),
	}
}

func (ex *extractor) functionDecl(n *tree_sitter.Node, exp bool, prefix string) Decl {
	d := ex.newDecl(n, KindFunction, exp)
	d.Signature = prefix + d.Name + ex.fieldText(n, "type_parameters") + ex.fieldText(n, "parameters") + ex.fieldText(n, "return_type")
	return d
}

func (ex *extractor) classDecl(n *tree_sitter.Node, exp bool) Decl {
	d := ex.newDecl(n, KindClass, exp)
	d.Signature = "class " + d.Name
	if heritage := namedChildOfKind(n, "class_heritage"); heritage != nil {
		d.Signature += " " + ex.text(heritage)
	}
	if body := n.ChildByFieldName("body"); body != nil {
		d.Members = ex.classMembers(body)
	}
	return d
}

func (ex *extractor) classMembers(body *tree_sitter.Node) []Decl {
	var members []Decl
	var lastComment *tree_sitter.Node
	for i := uint(0); i < body.NamedChildCount(); i++ {
		m := body.NamedChild(i)
		switch m.Kind() {
		case "comment":
			if strings.HasPrefix(ex.text(m), "/**") {
				lastComment = m
			} else {
				lastComment = nil
			}
			continue
		case "method_definition", "method_signature", "abstract_method_signature":
			d := Decl{
				Name: ex.fieldText(m, "name"),
				Kind: KindFunction,
				Line: int(m.StartPosition().Row) + 1,
				Col:  int(m.StartPosition().Column),
				Doc:  ex.docFor(lastComment, m),
			}
			d.Signature = d.Name + ex.fieldText(m, "type_parameters") + ex.fieldText(m, "parameters") + ex.fieldText(m, "return_type")
			members = append(members, d)
		case "public_field_definition", "property_signature":
			d := Decl{
				Name: ex.fieldText(m, "name"),
				Kind: KindVariable,
				Line: int(m.StartPosition().Row) + 1,
				Col:  int(m.StartPosition().Column),
				Doc:  ex.docFor(lastComment, m),
			}
			d.Signature = d.Name + ex.fieldText(m, "type")
			members = append(members, d)
		}
		lastComment = nil
	}
	return members
}

func (ex *extractor) interfaceDecl(n *tree_sitter.Node, exp bool) Decl {
	d := ex.newDecl(n, KindInterface, exp)
	d.Signature = "interface " + d.Name
	body := n.ChildByFieldName("body")
	if body == nil {
		return d
	}
	var lastComment *tree_sitter.Node
	for i := uint(0); i < body.NamedChildCount(); i++ {
		m := body.NamedChild(i)
		switch m.Kind() {
		case "comment":
			if strings.HasPrefix(ex.text(m), "/**") {
				lastComment = m
			} else {
				lastComment = nil
			}
			continue
		case "property_signature":
			member := Decl{
				Name: ex.fieldText(m, "name"),
				Kind: KindVariable,
				Line: int(m.StartPosition().Row) + 1,
				Col:  int(m.StartPosition().Column),
				Doc:  ex.docFor(lastComment, m),
			}
			member.Signature = member.Name + ex.fieldText(m, "type")
			d.Members = append(d.Members, member)
		case "method_signature", "call_signature", "construct_signature":
			member := Decl{
				Name: ex.fieldText(m, "name"),
				Kind: KindFunction,
				Line: int(m.StartPosition().Row) + 1,
				Col:  int(m.StartPosition().Column),
				Doc:  ex.docFor(lastComment, m),
			}
			member.Signature = member.Name + ex.fieldText(m, "type_parameters") + ex.fieldText(m, "parameters") + ex.fieldText(m, "return_type")
			d.Members = append(d.Members, member)
		}
		lastComment = nil
	}
	return d
}

func (ex *extractor) enumDecl(n *tree_sitter.Node, exp bool) Decl {
	d := ex.newDecl(n, KindEnum, exp)
	d.Signature = "enum " + d.Name
	body := n.ChildByFieldName("body")
	if body == nil {
		return d
	}
	for i := uint(0); i < body.NamedChildCount(); i++ {
		m := body.NamedChild(i)
		var name string
		switch m.Kind() {
		case "enum_assignment":
			name = ex.fieldText(m, "name")
		case "property_identifier", "string":
			name = ex.stringContent(m)
		default:
			continue
		}
		d.Members = append(d.Members, Decl{
			Name:      name,
			Kind:      KindVariable,
			Line:      int(m.StartPosition().Row) + 1,
			Col:       int(m.StartPosition().Column),
			Signature: name,
		})
	}
	return d
}

// collectDynamicImports finds import() call expressions anywhere in the tree.
func (ex *extractor) collectDynamicImports(n *tree_sitter.Node) {
	if n.Kind() == "call_expression" {
		fn := n.ChildByFieldName("function")
		args := n.ChildByFieldName("arguments")
		if fn != nil && fn.Kind() == "import" && args != nil {
			if arg := namedChildOfKind(args, "string"); arg != nil {
				ex.mod.Imports = append(ex.mod.Imports, Import{
					Src:       ex.stringContent(arg),
					IsDynamic: true,
					Line:      int(n.StartPosition().Row) + 1,
					Col:       int(n.StartPosition().Column),
				})
			}
		}
	}
	for i := uint(0); i < n.NamedChildCount(); i++ {
		ex.collectDynamicImports(n.NamedChild(i))
	}
}

// docFor attaches a doc comment when it sits directly above the declaration.
func (ex *extractor) docFor(comment *tree_sitter.Node, decl *tree_sitter.Node) *JSDoc {
	if comment == nil || decl == nil {
		return nil
	}
	if int(decl.StartPosition().Row)-int(comment.EndPosition().Row) > 1 {
		return nil
	}
	return ParseJSDoc(ex.text(comment))
}

func (ex *extractor) text(n *tree_sitter.Node) string {
	return n.Utf8Text(ex.source)
}

func (ex *extractor) fieldText(n *tree_sitter.Node, field string) string {
	c := n.ChildByFieldName(field)
	if c == nil {
		return ""
	}
	return ex.text(c)
}

// sourceSpecifier returns the unquoted `from "..."` source of an import or
// export statement, or "".
func (ex *extractor) sourceSpecifier(n *tree_sitter.Node) string {
	src := n.ChildByFieldName("source")
	if src == nil {
		return ""
	}
	return ex.stringContent(src)
}

// stringContent returns the text of a string literal without quotes, or the
// node text for non-string nodes.
func (ex *extractor) stringContent(n *tree_sitter.Node) string {
	if n.Kind() == "string" {
		if frag := namedChildOfKind(n, "string_fragment"); frag != nil {
			return ex.text(frag)
		}
		text := ex.text(n)
		if len(text) >= 2 {
			return text[1 : len(text)-1]
		}
		return text
	}
	return ex.text(n)
}

func namedChildOfKind(n *tree_sitter.Node, kind string) *tree_sitter.Node {
	for i := uint(0); i < n.NamedChildCount(); i++ {
		if c := n.NamedChild(i); c.Kind() == kind {
			return c
		}
	}
	return nil
}
