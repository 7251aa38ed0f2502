package graph

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"moddoc/util"
)

// SchemeBuiltin is the private scheme used for the synthetic built-in
// declarations module.
const SchemeBuiltin = "builtin"

// Specifier is the canonical absolute identifier of a module. Two specifiers
// are equal iff their string forms are equal; the string form is the sole
// identity key used by the graph and the doc tree.
type Specifier struct {
	u *url.URL
}

// ParseSpecifier parses an absolute URL into a Specifier.
func ParseSpecifier(raw string) (Specifier, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return Specifier{}, fmt.Errorf("invalid specifier %q: %w", raw, err)
	}
	if u.Scheme == "" {
		return Specifier{}, fmt.Errorf("invalid specifier %q: missing scheme", raw)
	}
	return Specifier{u: u}, nil
}

// ResolveRootSpecifier turns a CLI entry string into a canonical specifier.
// URLs pass through; anything else is treated as a local path. A malformed
// entry fails with InvalidRootError before any I/O happens.
func ResolveRootSpecifier(entry string) (Specifier, error) {
	if hasURLScheme(entry) {
		spec, err := ParseSpecifier(entry)
		if err != nil {
			return Specifier{}, &InvalidRootError{Entry: entry, Err: err}
		}
		return spec, nil
	}
	u, err := util.PathToFileURL(entry)
	if err != nil {
		return Specifier{}, &InvalidRootError{Entry: entry, Err: err}
	}
	return Specifier{u: u}, nil
}

// hasURLScheme reports whether s starts with a scheme like "https:".
// Single-letter prefixes are excluded so Windows drive paths stay paths.
func hasURLScheme(s string) bool {
	i := strings.Index(s, ":")
	if i < 2 {
		return false
	}
	for _, r := range s[:i] {
		if !(r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' || r == '+' || r == '-' || r == '.') {
			return false
		}
	}
	return true
}

func (s Specifier) String() string {
	if s.u == nil {
		return ""
	}
	return s.u.String()
}

func (s Specifier) Scheme() string {
	if s.u == nil {
		return ""
	}
	return s.u.Scheme
}

// Path returns the path component of the specifier.
func (s Specifier) Path() string {
	if s.u == nil {
		return ""
	}
	return s.u.Path
}

// IsZero reports whether the specifier is the zero value.
func (s Specifier) IsZero() bool {
	return s.u == nil
}

// FilePath converts a file:// specifier to a local filesystem path.
func (s Specifier) FilePath() (string, error) {
	if s.Scheme() != "file" {
		return "", fmt.Errorf("specifier %s is not a file URL", s)
	}
	return util.FileURLToPath(s.u), nil
}

// resolveReference resolves a relative or absolute reference against this
// specifier, mirroring URL resolution semantics.
func (s Specifier) resolveReference(raw string) (Specifier, error) {
	ref, err := url.Parse(raw)
	if err != nil {
		return Specifier{}, err
	}
	if s.u == nil {
		return Specifier{}, fmt.Errorf("cannot resolve against zero specifier")
	}
	return Specifier{u: s.u.ResolveReference(ref)}, nil
}

func (s Specifier) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *Specifier) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	spec, err := ParseSpecifier(raw)
	if err != nil {
		return err
	}
	*s = spec
	return nil
}
