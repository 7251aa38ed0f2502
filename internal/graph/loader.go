package graph

import "context"

// LoadResponse is the outcome of a successful load: raw source plus optional
// transport metadata such as content-type headers.
type LoadResponse struct {
	Content []byte
	Headers map[string]string
}

// Loader fetches module source by specifier. A nil response with a nil error
// means "not found". Implementations must be safe to invoke concurrently for
// distinct specifiers; the graph builder guarantees at most one call per
// specifier per build.
type Loader interface {
	Load(ctx context.Context, spec Specifier) (*LoadResponse, error)
}

// StubLoader reports every specifier as not found. It backs the built-in
// documentation root, whose content is seeded out-of-band and which has no
// external dependencies to traverse.
type StubLoader struct{}

func (StubLoader) Load(context.Context, Specifier) (*LoadResponse, error) {
	return nil, nil
}
