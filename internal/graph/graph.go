package graph

import (
	"fmt"
	"sort"
)

// Dependency is one discovered import edge. Either Specifier or Err is set:
// a resolved edge points at a graph key, a failed one carries the recorded
// resolution error.
type Dependency struct {
	Raw       string
	IsDynamic bool
	Specifier Specifier
	Err       error
}

// ModuleRecord is one resolved node in the module graph. Source is immutable
// once loaded.
type ModuleRecord struct {
	Specifier Specifier
	Media     MediaType
	Source    []byte
	Deps      []Dependency
}

// Resolved returns the target specifier recorded for a raw import string, or
// an error if the edge failed to resolve or was never discovered.
func (r *ModuleRecord) Resolved(raw string) (Specifier, error) {
	for _, d := range r.Deps {
		if d.Raw == raw {
			if d.Err != nil {
				return Specifier{}, d.Err
			}
			return d.Specifier, nil
		}
	}
	return Specifier{}, fmt.Errorf("no dependency %q in %s", raw, r.Specifier)
}

// ModuleGraph owns the mapping from canonical specifier to module record or
// recorded error. Edges are stored as specifier values looked up by key, so
// cycles are harmless.
type ModuleGraph struct {
	Root    Specifier
	modules map[string]*ModuleRecord
	errs    map[string]error
}

// NewModuleGraph creates an empty graph rooted at root.
func NewModuleGraph(root Specifier) *ModuleGraph {
	return &ModuleGraph{
		Root:    root,
		modules: make(map[string]*ModuleRecord),
		errs:    make(map[string]error),
	}
}

func (g *ModuleGraph) insert(rec *ModuleRecord) {
	key := rec.Specifier.String()
	if _, ok := g.modules[key]; ok {
		return
	}
	delete(g.errs, key)
	g.modules[key] = rec
}

func (g *ModuleGraph) setError(spec Specifier, err error) {
	key := spec.String()
	if _, ok := g.modules[key]; ok {
		return
	}
	g.errs[key] = err
}

// Get returns the record for a specifier. A recorded load or resolution
// error surfaces here, which is the moment deferred graph errors become
// fatal to callers that actually need the broken branch.
func (g *ModuleGraph) Get(spec Specifier) (*ModuleRecord, error) {
	key := spec.String()
	if rec, ok := g.modules[key]; ok {
		return rec, nil
	}
	if err, ok := g.errs[key]; ok {
		return nil, err
	}
	return nil, &LoadError{Specifier: spec, NotFound: true}
}

// Has reports whether the specifier has any entry, resolved or errored.
func (g *ModuleGraph) Has(spec Specifier) bool {
	key := spec.String()
	if _, ok := g.modules[key]; ok {
		return true
	}
	_, ok := g.errs[key]
	return ok
}

// Len returns the total number of entries, including error entries.
func (g *ModuleGraph) Len() int {
	return len(g.modules) + len(g.errs)
}

// Specifiers returns all entry keys in sorted order.
func (g *ModuleGraph) Specifiers() []string {
	keys := make([]string, 0, g.Len())
	for k := range g.modules {
		keys = append(keys, k)
	}
	for k := range g.errs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
