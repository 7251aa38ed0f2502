// Package importmap implements the declarative specifier override table
// consulted before standard import resolution. The map is read-only data
// loaded once per documentation run.
package importmap

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"moddoc/internal/graph"
)

// ImportMap maps exact specifier strings, or prefixes ending in "/", to
// substitute targets.
type ImportMap struct {
	imports map[string]string
	// keys with a trailing slash, longest first, for prefix matching
	prefixes []string
}

// Load reads and parses an import map file.
func Load(path string) (*ImportMap, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read import map: %w", err)
	}
	return Parse(data)
}

// Parse parses import map JSON.
func Parse(data []byte) (*ImportMap, error) {
	var raw struct {
		Imports map[string]string `json:"imports"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse import map: %w", err)
	}
	m := &ImportMap{imports: raw.Imports}
	for k := range raw.Imports {
		if strings.HasSuffix(k, "/") {
			m.prefixes = append(m.prefixes, k)
		}
	}
	sort.Slice(m.prefixes, func(i, j int) bool {
		return len(m.prefixes[i]) > len(m.prefixes[j])
	})
	return m, nil
}

// Lookup returns the substituted specifier string for raw, or ok=false when
// the map has no entry. A matching entry with an unusable target is an
// explicit mapping failure and is returned as an error.
func (m *ImportMap) Lookup(raw string) (string, bool, error) {
	if m == nil || len(m.imports) == 0 {
		return "", false, nil
	}
	if target, ok := m.imports[raw]; ok {
		if target == "" {
			return "", true, fmt.Errorf("import map entry for %q is blocked", raw)
		}
		return target, true, nil
	}
	for _, prefix := range m.prefixes {
		if strings.HasPrefix(raw, prefix) {
			target := m.imports[prefix]
			if target == "" {
				return "", true, fmt.Errorf("import map entry for %q is blocked", prefix)
			}
			if !strings.HasSuffix(target, "/") {
				return "", true, fmt.Errorf("import map prefix target for %q must end in a slash", prefix)
			}
			return target + raw[len(prefix):], true, nil
		}
	}
	return "", false, nil
}

// Resolver consults the import map first and falls back to standard
// resolution. It satisfies graph.Resolver.
type Resolver struct {
	Map *ImportMap
}

func (r Resolver) Resolve(raw string, referrer graph.Specifier) (graph.Specifier, error) {
	target, ok, err := r.Map.Lookup(raw)
	if err != nil {
		// Explicit in-map failure propagates; it is not a fallthrough.
		return graph.Specifier{}, &graph.ResolutionError{Raw: raw, Referrer: referrer, Err: err}
	}
	if ok {
		spec, err := graph.ResolveImport(target, referrer)
		if err != nil {
			return graph.Specifier{}, &graph.ResolutionError{Raw: raw, Referrer: referrer, Err: fmt.Errorf("bad import map target %q: %w", target, err)}
		}
		return spec, nil
	}
	return graph.DefaultResolver{}.Resolve(raw, referrer)
}
