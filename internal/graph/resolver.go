package graph

import (
	"fmt"
	"strings"
)

// Resolver maps a raw import specifier plus its referrer to a canonical
// specifier. Resolution is pure: no I/O, deterministic for identical inputs.
type Resolver interface {
	Resolve(raw string, referrer Specifier) (Specifier, error)
}

// DefaultResolver applies standard specifier resolution: absolute URLs pass
// through, ./ ../ and / references resolve against the referrer, and bare
// specifiers fail (they are only meaningful through an import map).
type DefaultResolver struct{}

func (DefaultResolver) Resolve(raw string, referrer Specifier) (Specifier, error) {
	spec, err := ResolveImport(raw, referrer)
	if err != nil {
		return Specifier{}, &ResolutionError{Raw: raw, Referrer: referrer, Err: err}
	}
	return spec, nil
}

// ResolveImport implements the ecosystem's standard import resolution rules.
func ResolveImport(raw string, referrer Specifier) (Specifier, error) {
	if raw == "" {
		return Specifier{}, fmt.Errorf("empty specifier")
	}
	if hasURLScheme(raw) {
		return ParseSpecifier(raw)
	}
	if !strings.HasPrefix(raw, "./") && !strings.HasPrefix(raw, "../") && !strings.HasPrefix(raw, "/") {
		return Specifier{}, fmt.Errorf("relative import path %q not prefixed with / or ./ or ../", raw)
	}
	return referrer.resolveReference(raw)
}
