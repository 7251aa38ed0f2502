package util

import (
	"fmt"
	"net/url"
	"path/filepath"
	"strings"
)

// PathToFileURL converts a local path to an absolute file:// URL.
func PathToFileURL(path string) (*url.URL, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to absolutize %q: %w", path, err)
	}
	p := filepath.ToSlash(abs)
	if !strings.HasPrefix(p, "/") {
		// Windows drive paths
		p = "/" + p
	}
	return &url.URL{Scheme: "file", Path: p}, nil
}

// FileURLToPath converts a file:// URL back to a local path.
func FileURLToPath(u *url.URL) string {
	p := u.Path
	if len(p) >= 3 && p[0] == '/' && p[2] == ':' {
		// /C:/... forms produced on Windows
		p = p[1:]
	}
	return filepath.FromSlash(p)
}
