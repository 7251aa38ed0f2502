package graph

import (
	"mime"
	"strings"
)

// MediaType classifies a module's content and determines how its source text
// is parsed. A declaration-only module (Dts) yields type signatures with no
// executable bodies.
type MediaType int

const (
	MediaUnknown MediaType = iota
	MediaTypeScript
	MediaTSX
	MediaJavaScript
	MediaJSX
	MediaDts
	MediaJSON
)

var mediaNames = map[MediaType]string{
	MediaUnknown:    "Unknown",
	MediaTypeScript: "TypeScript",
	MediaTSX:        "TSX",
	MediaJavaScript: "JavaScript",
	MediaJSX:        "JSX",
	MediaDts:        "Dts",
	MediaJSON:       "JSON",
}

func (m MediaType) String() string {
	if s, ok := mediaNames[m]; ok {
		return s
	}
	return "Unknown"
}

// IsDeclaration reports whether the media type carries only declarations.
func (m MediaType) IsDeclaration() bool {
	return m == MediaDts
}

// MediaTypeFromSpecifier classifies a module by its path extension.
func MediaTypeFromSpecifier(spec Specifier) MediaType {
	p := strings.ToLower(spec.Path())
	switch {
	case strings.HasSuffix(p, ".d.ts"), strings.HasSuffix(p, ".d.mts"), strings.HasSuffix(p, ".d.cts"):
		return MediaDts
	case strings.HasSuffix(p, ".ts"), strings.HasSuffix(p, ".mts"), strings.HasSuffix(p, ".cts"):
		return MediaTypeScript
	case strings.HasSuffix(p, ".tsx"):
		return MediaTSX
	case strings.HasSuffix(p, ".js"), strings.HasSuffix(p, ".mjs"), strings.HasSuffix(p, ".cjs"):
		return MediaJavaScript
	case strings.HasSuffix(p, ".jsx"):
		return MediaJSX
	case strings.HasSuffix(p, ".json"):
		return MediaJSON
	default:
		return MediaUnknown
	}
}

// MediaTypeFrom determines the media type from transport headers, falling
// back to the specifier's extension. Content-Type wins for remote modules
// because registries commonly serve extensionless URLs.
func MediaTypeFrom(spec Specifier, headers map[string]string) MediaType {
	if ct, ok := headers["content-type"]; ok {
		if mt, _, err := mime.ParseMediaType(ct); err == nil {
			switch mt {
			case "application/typescript", "text/typescript", "video/vnd.dlna.mpeg-tts":
				return MediaTypeScript
			case "application/javascript", "text/javascript", "application/ecmascript", "text/ecmascript":
				return MediaJavaScript
			case "application/json", "text/json":
				return MediaJSON
			case "text/tsx":
				return MediaTSX
			case "text/jsx":
				return MediaJSX
			}
		}
	}
	if mt := MediaTypeFromSpecifier(spec); mt != MediaUnknown {
		return mt
	}
	// Bare remote paths with no useful header default to TypeScript,
	// matching how registries in this ecosystem serve modules.
	return MediaTypeScript
}
