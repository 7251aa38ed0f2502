package util

import (
	"strings"
	"testing"
)

func TestPathToFileURL(t *testing.T) {
	u, err := PathToFileURL("/src/app/mod.ts")
	if err != nil {
		t.Fatalf("Failed to convert path: %v", err)
	}
	if u.Scheme != "file" {
		t.Errorf("Expected file scheme, got %q", u.Scheme)
	}
	if u.Path != "/src/app/mod.ts" {
		t.Errorf("Unexpected path %q", u.Path)
	}
}

func TestPathToFileURLRelative(t *testing.T) {
	u, err := PathToFileURL("some/mod.ts")
	if err != nil {
		t.Fatalf("Failed to convert relative path: %v", err)
	}
	if !strings.HasPrefix(u.Path, "/") {
		t.Errorf("Expected absolute path, got %q", u.Path)
	}
	if !strings.HasSuffix(u.Path, "/some/mod.ts") {
		t.Errorf("Expected path ending in input, got %q", u.Path)
	}
}

func TestRoundTrip(t *testing.T) {
	u, err := PathToFileURL("/src/app/mod.ts")
	if err != nil {
		t.Fatalf("Failed to convert path: %v", err)
	}
	if got := FileURLToPath(u); got != "/src/app/mod.ts" {
		t.Errorf("Round trip gave %q", got)
	}
}
