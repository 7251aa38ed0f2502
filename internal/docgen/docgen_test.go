package docgen

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"moddoc/internal/doc"
)

func writeFixture(t *testing.T, dir, name, source string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(source), 0644); err != nil {
		t.Fatalf("Failed to write fixture %s: %v", name, err)
	}
	return path
}

func TestGenerateLocalModule(t *testing.T) {
	t.Setenv("MODDOC_CACHE_DIR", t.TempDir())
	dir := t.TempDir()

	writeFixture(t, dir, "util.ts", `/** Trims whitespace. */
export function trim(s: string): string {
  return s.trim();
}
`)
	entry := writeFixture(t, dir, "mod.ts", `export * from "./util.ts";

/** The version string. */
export const version = "1.0.0";
`)

	nodes, err := Generate(context.Background(), Options{Entry: entry})
	if err != nil {
		t.Fatalf("Failed to generate docs: %v", err)
	}
	nodes = doc.WithoutImports(nodes)

	byName := make(map[string]doc.Node, len(nodes))
	for _, n := range nodes {
		byName[n.Name] = n
	}

	version, ok := byName["version"]
	if !ok {
		t.Fatalf("version not documented; got %d nodes", len(nodes))
	}
	if filepath.Base(version.Location.Specifier.Path()) != "mod.ts" {
		t.Errorf("version attributed to %s, want mod.ts", version.Location.Specifier)
	}

	trim, ok := byName["trim"]
	if !ok {
		t.Fatal("trim not documented through the wildcard re-export")
	}
	if filepath.Base(trim.Location.Specifier.Path()) != "util.ts" {
		t.Errorf("trim attributed to %s, want util.ts", trim.Location.Specifier)
	}
	if trim.JSDoc == nil || trim.JSDoc.Doc != "Trims whitespace." {
		t.Errorf("trim doc not carried: %+v", trim.JSDoc)
	}
}

func TestGenerateRetainsImportNodes(t *testing.T) {
	t.Setenv("MODDOC_CACHE_DIR", t.TempDir())
	dir := t.TempDir()

	writeFixture(t, dir, "b.ts", `export function helper(): void {}`)
	entry := writeFixture(t, dir, "mod.ts", `import { helper } from "./b.ts";
export function run(): void { helper(); }
`)

	nodes, err := Generate(context.Background(), Options{Entry: entry})
	if err != nil {
		t.Fatalf("Failed to generate docs: %v", err)
	}

	var imports []doc.Node
	for _, n := range nodes {
		if n.Kind == doc.KindImport {
			imports = append(imports, n)
		}
	}
	if len(imports) != 1 {
		t.Fatalf("Expected 1 import node in the full sequence, got %d of %d nodes", len(imports), len(nodes))
	}
	imp := imports[0]
	if imp.Name != "helper" || imp.ImportDef == nil || imp.ImportDef.Src != "./b.ts" {
		t.Errorf("Unexpected import node %+v", imp)
	}

	if got := doc.WithoutImports(nodes); len(got) != 1 || got[0].Name != "run" {
		t.Errorf("Text-mode pruning should leave only run, got %+v", got)
	}
}

func TestGenerateBuiltin(t *testing.T) {
	nodes, err := Generate(context.Background(), Options{})
	if err != nil {
		t.Fatalf("Failed to generate builtin docs: %v", err)
	}
	if len(nodes) == 0 {
		t.Fatal("Expected builtin declarations")
	}

	found := false
	for _, n := range nodes {
		if n.Name == "fetch" {
			found = true
		}
	}
	if !found {
		t.Error("Expected fetch among the builtin declarations")
	}
}

func TestGenerateMissingEntry(t *testing.T) {
	t.Setenv("MODDOC_CACHE_DIR", t.TempDir())
	entry := filepath.Join(t.TempDir(), "absent.ts")

	_, err := Generate(context.Background(), Options{Entry: entry})
	if err == nil {
		t.Fatal("Expected an error for a missing entry")
	}
	var genErr *doc.GenerationError
	if !errors.As(err, &genErr) {
		t.Errorf("Expected GenerationError, got %v", err)
	}
}

func TestGenerateWithImportMap(t *testing.T) {
	t.Setenv("MODDOC_CACHE_DIR", t.TempDir())
	dir := t.TempDir()

	writeFixture(t, dir, "real.ts", `export const mapped = true;`)
	entry := writeFixture(t, dir, "mod.ts", `export * from "alias";`)
	mapPath := writeFixture(t, dir, "import_map.json", `{
  "imports": { "alias": "./real.ts" }
}`)

	nodes, err := Generate(context.Background(), Options{Entry: entry, ImportMap: mapPath})
	if err != nil {
		t.Fatalf("Failed to generate with import map: %v", err)
	}
	nodes = doc.WithoutImports(nodes)

	found := false
	for _, n := range nodes {
		if n.Name == "mapped" {
			found = true
		}
	}
	if !found {
		t.Errorf("Expected mapped symbol through the import map, got %+v", nodes)
	}
}
