package main

import (
	"bytes"
	"context"

	"github.com/charmbracelet/log"

	"moddoc/internal/doc"
	"moddoc/internal/docgen"
)

// runDoc drives the pipeline and renders its output. Errors returned here
// become the process's non-zero exit.
func runDoc(ctx context.Context, opts docOptions, logger *log.Logger) error {
	nodes, err := docgen.Generate(ctx, docgen.Options{
		Entry:     opts.Entry,
		Private:   opts.Private,
		ImportMap: opts.ImportMap,
		Reload:    opts.Reload,
		Logger:    logger,
	})
	if err != nil {
		return err
	}

	if opts.JSON {
		return writeJSONToStdout(nodes)
	}

	nodes = doc.WithoutImports(nodes)
	if opts.Filter != "" {
		nodes = doc.FindNodesByName(nodes, opts.Filter)
		if len(nodes) == 0 {
			return &doc.NotFoundError{Filter: opts.Filter}
		}
	}

	printer := doc.Printer{Styled: useColor(opts.NoColor)}
	var buf bytes.Buffer
	if err := printer.Print(&buf, nodes); err != nil {
		return err
	}
	return writeToStdoutIgnoreSigpipe(buf.Bytes())
}
