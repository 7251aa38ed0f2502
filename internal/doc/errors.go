package doc

import (
	"fmt"

	"moddoc/internal/graph"
)

// GenerationError means doc extraction reached a module whose graph entry is
// a recorded load or resolution error. It is fatal to the whole run.
type GenerationError struct {
	Specifier graph.Specifier
	Cause     error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("failed to generate documentation for %s: %v", e.Specifier, e.Cause)
}

func (e *GenerationError) Unwrap() error { return e.Cause }

// NotFoundError means a name filter matched zero nodes.
type NotFoundError struct {
	Filter string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("node %s was not found", e.Filter)
}
