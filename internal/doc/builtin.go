package doc

import (
	_ "embed"

	"moddoc/internal/graph"
)

// BuiltinSentinel is the reserved entry string that explicitly requests
// documentation of the built-in declarations.
const BuiltinSentinel = "--builtin"

//go:embed lib.d.ts
var builtinSource []byte

// BuiltinSpecifier returns the virtual specifier of the built-in
// declarations module.
func BuiltinSpecifier() graph.Specifier {
	spec, err := graph.ParseSpecifier("builtin:///lib.d.ts")
	if err != nil {
		panic(err)
	}
	return spec
}

// BuiltinSource returns the embedded built-in declaration source.
func BuiltinSource() []byte {
	return builtinSource
}
