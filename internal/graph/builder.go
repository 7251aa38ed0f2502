package graph

import (
	"context"
	"sync"
)

// RawDependency is one import specifier string discovered in a module's
// source, before resolution.
type RawDependency struct {
	Specifier string
	IsDynamic bool
}

// DependencyExtractor is the declared-parser collaborator used during graph
// building. It lists the static imports, dynamic imports and re-export
// sources of a module without doing any resolution.
type DependencyExtractor interface {
	ExtractDependencies(spec Specifier, media MediaType, source []byte) ([]RawDependency, error)
}

// Build assembles the complete module graph reachable from root. Loads for
// each discovery frontier run concurrently; only this goroutine mutates the
// graph, so final contents are independent of load completion order. Failed
// loads and resolutions are recorded as error entries instead of aborting,
// which keeps the rest of a large graph inspectable.
func Build(ctx context.Context, root Specifier, loader Loader, resolver Resolver, extractor DependencyExtractor) *ModuleGraph {
	if resolver == nil {
		resolver = DefaultResolver{}
	}
	g := NewModuleGraph(root)
	seen := map[string]bool{root.String(): true}
	frontier := []Specifier{root}

	for len(frontier) > 0 {
		type loaded struct {
			spec Specifier
			resp *LoadResponse
			err  error
		}
		results := make(chan loaded, len(frontier))
		var wg sync.WaitGroup
		for _, spec := range frontier {
			wg.Add(1)
			go func(spec Specifier) {
				defer wg.Done()
				resp, err := loader.Load(ctx, spec)
				results <- loaded{spec: spec, resp: resp, err: err}
			}(spec)
		}
		wg.Wait()
		close(results)
		frontier = frontier[:0]

		for res := range results {
			if res.err != nil {
				g.setError(res.spec, &LoadError{Specifier: res.spec, Err: res.err})
				continue
			}
			if res.resp == nil {
				g.setError(res.spec, &LoadError{Specifier: res.spec, NotFound: true})
				continue
			}
			rec := &ModuleRecord{
				Specifier: res.spec,
				Media:     MediaTypeFrom(res.spec, res.resp.Headers),
				Source:    res.resp.Content,
			}
			raws, err := extractor.ExtractDependencies(rec.Specifier, rec.Media, rec.Source)
			if err != nil {
				g.setError(res.spec, &LoadError{Specifier: res.spec, Err: err})
				continue
			}
			for _, raw := range raws {
				dep := Dependency{Raw: raw.Specifier, IsDynamic: raw.IsDynamic}
				target, err := resolver.Resolve(raw.Specifier, rec.Specifier)
				if err != nil {
					dep.Err = err
				} else {
					dep.Specifier = target
					if key := target.String(); !seen[key] {
						seen[key] = true
						frontier = append(frontier, target)
					}
				}
				rec.Deps = append(rec.Deps, dep)
			}
			g.insert(rec)
		}
	}
	return g
}
