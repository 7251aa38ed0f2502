package doc

import (
	"encoding/json"
	"testing"
)

func TestNodeJSONRoundTrip(t *testing.T) {
	nodes := docNodes(t, "file:///mod.ts", map[string]string{
		"file:///mod.ts": `import { dep } from "./dep.ts";

/** Greets a person. */
export function greet(name: string): string { return dep(name); }

export namespace colors {
  export const red = "#f00";
}
`,
		"file:///dep.ts": `export function dep(s: string): string { return s; }`,
	}, false)

	data, err := json.Marshal(nodes)
	if err != nil {
		t.Fatalf("Failed to marshal nodes: %v", err)
	}

	var decoded []Node
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Failed to unmarshal nodes: %v", err)
	}

	var compare func(t *testing.T, got, want []Node)
	compare = func(t *testing.T, got, want []Node) {
		if len(got) != len(want) {
			t.Fatalf("Got %d nodes, want %d", len(got), len(want))
		}
		for i := range got {
			if got[i].Name != want[i].Name || got[i].Kind != want[i].Kind {
				t.Errorf("Node %d: got %s %q, want %s %q", i, got[i].Kind, got[i].Name, want[i].Kind, want[i].Name)
			}
			compare(t, got[i].Children, want[i].Children)
		}
	}
	compare(t, decoded, nodes)

	var hasImport bool
	for _, n := range decoded {
		if n.Kind == KindImport {
			hasImport = true
		}
	}
	if !hasImport {
		t.Error("JSON output should retain Import-kind nodes")
	}
}

func TestFilterNamedReexport(t *testing.T) {
	nodes := docNodes(t, "file:///mod.ts", map[string]string{
		"file:///mod.ts": `export { util } from "./lib.ts";`,
		"file:///lib.ts": `export function util(): void {}`,
	}, false)

	matches := FindNodesByName(WithoutImports(nodes), "util")
	if len(matches) != 1 {
		t.Fatalf("Expected exactly one match, got %d", len(matches))
	}
	if matches[0].Location.Specifier.String() != "file:///lib.ts" {
		t.Errorf("util attributed to %s, want file:///lib.ts", matches[0].Location.Specifier)
	}
}
