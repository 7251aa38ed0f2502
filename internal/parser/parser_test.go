package parser

import (
	"strings"
	"testing"

	"moddoc/internal/graph"
)

func parseTS(t *testing.T, source string) *Module {
	t.Helper()
	spec, err := graph.ParseSpecifier("file:///test.ts")
	if err != nil {
		t.Fatalf("Failed to parse specifier: %v", err)
	}
	mod, err := New().ParseModule(spec, graph.MediaTypeScript, []byte(source))
	if err != nil {
		t.Fatalf("Failed to parse module: %v", err)
	}
	return mod
}

func findDecl(t *testing.T, decls []Decl, name string) Decl {
	t.Helper()
	for _, d := range decls {
		if d.Name == name {
			return d
		}
	}
	t.Fatalf("Declaration %q not found in %d decls", name, len(decls))
	return Decl{}
}

func TestParseFunctionWithDoc(t *testing.T) {
	mod := parseTS(t, `/**
 * Greets a person by name.
 *
 * @param name the name to greet
 * @returns the greeting line
 */
export function greet(name: string): string {
  return "Hello, " + name;
}
`)

	if len(mod.Decls) != 1 {
		t.Fatalf("Expected 1 declaration, got %d", len(mod.Decls))
	}
	d := mod.Decls[0]
	if d.Name != "greet" || d.Kind != KindFunction {
		t.Errorf("Got %s %q, want function greet", d.Kind, d.Name)
	}
	if !d.Exported {
		t.Error("Expected greet to be exported")
	}
	if d.Line != 7 {
		t.Errorf("Expected declaration on line 7, got %d", d.Line)
	}
	if d.Signature != "function greet(name: string): string" {
		t.Errorf("Unexpected signature %q", d.Signature)
	}
	if d.Doc == nil {
		t.Fatal("Expected a doc comment")
	}
	if d.Doc.Doc != "Greets a person by name." {
		t.Errorf("Unexpected doc summary %q", d.Doc.Doc)
	}
	if len(d.Doc.Tags) != 2 {
		t.Fatalf("Expected 2 tags, got %d", len(d.Doc.Tags))
	}
	if d.Doc.Tags[0].Kind != "param" || d.Doc.Tags[0].Name != "name" {
		t.Errorf("Unexpected first tag %+v", d.Doc.Tags[0])
	}
}

func TestParseTopLevelShapes(t *testing.T) {
	mod := parseTS(t, `
export class Point {
  x: number;
  y: number;
  /** Euclidean distance from origin. */
  distance(): number { return 0; }
}

export interface Shape {
  area(): number;
  name: string;
}

export enum Color {
  Red,
  Green = 2,
}

export type Pair = [number, number];

export const MAX = 100;

export namespace geometry {
  export function area(s: Shape): number { return s.area(); }
  function helper(): void {}
}

function hidden(): void {}
`)

	point := findDecl(t, mod.Decls, "Point")
	if point.Kind != KindClass || !point.Exported {
		t.Errorf("Point: got %s exported=%v", point.Kind, point.Exported)
	}
	if len(point.Members) != 3 {
		t.Fatalf("Point: expected 3 members, got %d", len(point.Members))
	}
	dist := findDecl(t, point.Members, "distance")
	if dist.Kind != KindFunction {
		t.Errorf("distance: got kind %s", dist.Kind)
	}
	if dist.Doc == nil || dist.Doc.Doc != "Euclidean distance from origin." {
		t.Errorf("distance: doc not attached: %+v", dist.Doc)
	}

	shape := findDecl(t, mod.Decls, "Shape")
	if shape.Kind != KindInterface || len(shape.Members) != 2 {
		t.Errorf("Shape: got %s with %d members", shape.Kind, len(shape.Members))
	}

	color := findDecl(t, mod.Decls, "Color")
	if color.Kind != KindEnum || len(color.Members) != 2 {
		t.Fatalf("Color: got %s with %d members", color.Kind, len(color.Members))
	}
	if color.Members[1].Name != "Green" {
		t.Errorf("Color: second member is %q, want Green", color.Members[1].Name)
	}

	pair := findDecl(t, mod.Decls, "Pair")
	if pair.Kind != KindTypeAlias {
		t.Errorf("Pair: got kind %s", pair.Kind)
	}
	if pair.Signature != "type Pair = [number, number]" {
		t.Errorf("Pair: unexpected signature %q", pair.Signature)
	}

	max := findDecl(t, mod.Decls, "MAX")
	if max.Kind != KindVariable || !strings.HasPrefix(max.Signature, "const ") {
		t.Errorf("MAX: got %s signature %q", max.Kind, max.Signature)
	}

	geo := findDecl(t, mod.Decls, "geometry")
	if geo.Kind != KindNamespace {
		t.Errorf("geometry: got kind %s", geo.Kind)
	}
	area := findDecl(t, geo.Members, "area")
	if !area.Exported {
		t.Error("geometry.area should be exported")
	}
	helper := findDecl(t, geo.Members, "helper")
	if helper.Exported {
		t.Error("geometry.helper should not be exported")
	}

	hidden := findDecl(t, mod.Decls, "hidden")
	if hidden.Exported {
		t.Error("hidden should not be exported")
	}
}

func TestParseLocalExportClause(t *testing.T) {
	mod := parseTS(t, `
function a(): void {}
function b(): void {}
export { a };
`)
	if !findDecl(t, mod.Decls, "a").Exported {
		t.Error("a should be exported via the clause")
	}
	if findDecl(t, mod.Decls, "b").Exported {
		t.Error("b should not be exported")
	}
}

func TestParseDefaultExport(t *testing.T) {
	mod := parseTS(t, `export default function run(): void {}`)
	if len(mod.Decls) != 1 {
		t.Fatalf("Expected 1 declaration, got %d", len(mod.Decls))
	}
	d := mod.Decls[0]
	if !d.Default || !d.Exported {
		t.Errorf("Expected exported default, got default=%v exported=%v", d.Default, d.Exported)
	}
	if d.Name != "run" {
		t.Errorf("Got name %q, want run", d.Name)
	}
}

func TestParseImports(t *testing.T) {
	mod := parseTS(t, `
import def from "./a.ts";
import * as ns from "./b.ts";
import { x, y as z } from "./c.ts";

const lazy = await import("./d.ts");
`)

	statics := 0
	for _, imp := range mod.Imports {
		if !imp.IsDynamic {
			statics++
		}
	}
	if statics != 3 {
		t.Fatalf("Expected 3 static imports, got %d", statics)
	}

	byName := func(local string) ImportedName {
		for _, imp := range mod.Imports {
			for _, n := range imp.Names {
				if n.Local == local {
					return n
				}
			}
		}
		t.Fatalf("Import binding %q not found", local)
		return ImportedName{}
	}
	if got := byName("def"); got.Imported != "default" {
		t.Errorf("def: imported = %q, want default", got.Imported)
	}
	if got := byName("ns"); got.Imported != "*" {
		t.Errorf("ns: imported = %q, want *", got.Imported)
	}
	if got := byName("z"); got.Imported != "y" {
		t.Errorf("z: imported = %q, want y", got.Imported)
	}

	var dynamic *Import
	for i := range mod.Imports {
		if mod.Imports[i].IsDynamic {
			dynamic = &mod.Imports[i]
		}
	}
	if dynamic == nil {
		t.Fatal("Expected a dynamic import")
	}
	if dynamic.Src != "./d.ts" {
		t.Errorf("Dynamic import src = %q, want ./d.ts", dynamic.Src)
	}
}

func TestParseReexports(t *testing.T) {
	mod := parseTS(t, `
export * from "./a.ts";
export * as util from "./b.ts";
export { one, two as three } from "./c.ts";
`)

	if len(mod.Reexports) != 3 {
		t.Fatalf("Expected 3 re-exports, got %d", len(mod.Reexports))
	}

	if !mod.Reexports[0].Wildcard || mod.Reexports[0].Src != "./a.ts" {
		t.Errorf("First re-export: %+v", mod.Reexports[0])
	}
	if mod.Reexports[1].Namespace != "util" {
		t.Errorf("Second re-export namespace = %q, want util", mod.Reexports[1].Namespace)
	}
	names := mod.Reexports[2].Names
	if len(names) != 2 {
		t.Fatalf("Third re-export: expected 2 names, got %d", len(names))
	}
	if names[0].Exported != "one" || names[0].Source != "one" {
		t.Errorf("Unexpected first name %+v", names[0])
	}
	if names[1].Exported != "three" || names[1].Source != "two" {
		t.Errorf("Unexpected second name %+v", names[1])
	}
}

func TestParseJavaScript(t *testing.T) {
	spec, _ := graph.ParseSpecifier("file:///test.js")
	mod, err := New().ParseModule(spec, graph.MediaJavaScript, []byte(`
/** Adds two numbers. */
export function add(a, b) { return a + b; }
`))
	if err != nil {
		t.Fatalf("Failed to parse JavaScript: %v", err)
	}
	d := findDecl(t, mod.Decls, "add")
	if !d.Exported || d.Doc == nil {
		t.Errorf("add: exported=%v doc=%v", d.Exported, d.Doc)
	}
}

func TestParseJSONModule(t *testing.T) {
	spec, _ := graph.ParseSpecifier("file:///data.json")
	mod, err := New().ParseModule(spec, graph.MediaJSON, []byte(`{"a": 1}`))
	if err != nil {
		t.Fatalf("Failed to parse JSON module: %v", err)
	}
	if len(mod.Decls) != 0 || len(mod.Imports) != 0 {
		t.Errorf("JSON module should be empty, got %d decls %d imports", len(mod.Decls), len(mod.Imports))
	}
}

func TestExtractDependencies(t *testing.T) {
	spec, _ := graph.ParseSpecifier("file:///test.ts")
	deps, err := New().ExtractDependencies(spec, graph.MediaTypeScript, []byte(`
import "./a.ts";
import { x } from "./a.ts";
export * from "./b.ts";
const d = await import("./c.ts");
`))
	if err != nil {
		t.Fatalf("Failed to extract dependencies: %v", err)
	}

	if len(deps) != 3 {
		t.Fatalf("Expected 3 deduped dependencies, got %d: %+v", len(deps), deps)
	}
	want := map[string]bool{"./a.ts": false, "./b.ts": false, "./c.ts": true}
	for _, dep := range deps {
		dynamic, ok := want[dep.Specifier]
		if !ok {
			t.Errorf("Unexpected dependency %q", dep.Specifier)
			continue
		}
		if dep.IsDynamic != dynamic {
			t.Errorf("%q: IsDynamic = %v, want %v", dep.Specifier, dep.IsDynamic, dynamic)
		}
	}
}

func TestDocCommentAdjacency(t *testing.T) {
	mod := parseTS(t, `/** Orphaned. */

// gap above means no attachment

export function loner(): void {}
`)
	d := findDecl(t, mod.Decls, "loner")
	if d.Doc != nil {
		t.Errorf("Doc comment separated by other lines should not attach, got %+v", d.Doc)
	}
}
