package graph

import "fmt"

// InvalidRootError means the root entry could not be parsed into a canonical
// specifier. It fails the run before any I/O.
type InvalidRootError struct {
	Entry string
	Err   error
}

func (e *InvalidRootError) Error() string {
	return fmt.Sprintf("invalid root specifier %q: %v", e.Entry, e.Err)
}

func (e *InvalidRootError) Unwrap() error { return e.Err }

// ResolutionError means a dependency specifier could not be resolved, either
// because it is malformed or because an import-map entry maps it badly. It is
// recorded per module and never aborts graph building.
type ResolutionError struct {
	Raw      string
	Referrer Specifier
	Err      error
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("failed to resolve %q from %s: %v", e.Raw, e.Referrer, e.Err)
}

func (e *ResolutionError) Unwrap() error { return e.Err }

// LoadError means fetching a module's source failed or the module was not
// found. Recorded per module, not fatal to graph building.
type LoadError struct {
	Specifier Specifier
	NotFound  bool
	Err       error
}

func (e *LoadError) Error() string {
	if e.NotFound {
		return fmt.Sprintf("module not found: %s", e.Specifier)
	}
	return fmt.Sprintf("failed to load %s: %v", e.Specifier, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }
