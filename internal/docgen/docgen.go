// Package docgen wires the documentation pipeline: root resolution, graph
// building and doc extraction. Both the CLI and the MCP server drive it.
package docgen

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"

	"moddoc/internal/doc"
	"moddoc/internal/fetch"
	"moddoc/internal/graph"
	"moddoc/internal/importmap"
	"moddoc/internal/parser"
)

// Options selects what to document and how.
type Options struct {
	// Entry is a local path, a URL, or empty/the builtin sentinel for the
	// built-in declarations.
	Entry string
	// Private includes non-exported declarations.
	Private bool
	// ImportMap is an optional path to an import map file.
	ImportMap string
	// Reload bypasses the remote module cache.
	Reload bool
	// Logger receives pipeline diagnostics. Defaults to log.Default().
	Logger *log.Logger
}

// Generate runs the full pipeline and returns the doc node sequence in
// declaration order.
func Generate(ctx context.Context, opts Options) ([]doc.Node, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	sourceParser := parser.New()

	if opts.Entry == "" || opts.Entry == doc.BuiltinSentinel {
		spec := doc.BuiltinSpecifier()
		g := graph.Build(ctx, spec, graph.StubLoader{}, nil, sourceParser)
		docParser := doc.NewParser(g, sourceParser, opts.Private)
		return docParser.ParseSource(spec, graph.MediaDts, doc.BuiltinSource())
	}

	target, err := graph.ResolveRootSpecifier(opts.Entry)
	if err != nil {
		return nil, err
	}

	// The entry is documented through a synthetic root that wildcard
	// re-exports it, so symbols stay attributed to their declaring module.
	root, err := graph.ResolveRootSpecifier("./$moddoc$doc.ts")
	if err != nil {
		return nil, err
	}

	cache, err := fetch.OpenDefaultCache()
	if err != nil {
		logger.Warn("remote module cache unavailable", "err", err)
		cache = nil
	} else {
		defer cache.Close()
	}

	fetcher := fetch.New(fetch.Options{Cache: cache, Reload: opts.Reload, Logger: logger})
	fetcher.InsertCached(&fetch.File{
		Specifier: root,
		Source:    []byte(fmt.Sprintf("export * from %q;", target)),
	})

	var resolver graph.Resolver = graph.DefaultResolver{}
	if opts.ImportMap != "" {
		m, err := importmap.Load(opts.ImportMap)
		if err != nil {
			return nil, err
		}
		resolver = importmap.Resolver{Map: m}
	}

	loader := fetch.Loader{Fetcher: fetcher, Permissions: fetch.AllowAll()}
	g := graph.Build(ctx, root, loader, resolver, sourceParser)
	logger.Debug("module graph built", "modules", g.Len())

	docParser := doc.NewParser(g, sourceParser, opts.Private)
	return docParser.ParseWithReexports(root)
}
