package parser

import "strings"

// JSDocTag is one @-annotation inside a doc comment. Name is set for tags
// that take one (param, typeparam, property); Doc is the free text after it.
type JSDocTag struct {
	Kind string `json:"kind"`
	Name string `json:"name,omitempty"`
	Doc  string `json:"doc,omitempty"`
}

// JSDoc is a parsed documentation comment: summary text plus tags.
type JSDoc struct {
	Doc  string     `json:"doc,omitempty"`
	Tags []JSDocTag `json:"tags,omitempty"`
}

var namedTags = map[string]bool{
	"param":     true,
	"property":  true,
	"prop":      true,
	"typeparam": true,
	"template":  true,
}

// ParseJSDoc parses the text of a /** ... */ comment into summary and tags.
// Returns nil for comments that are not doc comments.
func ParseJSDoc(comment string) *JSDoc {
	if !strings.HasPrefix(comment, "/**") || !strings.HasSuffix(comment, "*/") {
		return nil
	}
	body := strings.TrimSuffix(strings.TrimPrefix(comment, "/**"), "*/")

	var lines []string
	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimSpace(line)
		line = strings.TrimPrefix(line, "*")
		if strings.HasPrefix(line, " ") {
			line = line[1:]
		}
		lines = append(lines, line)
	}

	jsdoc := &JSDoc{}
	var doc []string
	var tag *JSDocTag
	flush := func() {
		if tag != nil {
			tag.Doc = strings.TrimSpace(tag.Doc)
			jsdoc.Tags = append(jsdoc.Tags, *tag)
			tag = nil
		}
	}
	for _, line := range lines {
		if strings.HasPrefix(line, "@") {
			flush()
			kind, rest, _ := strings.Cut(line[1:], " ")
			tag = &JSDocTag{Kind: kind}
			rest = strings.TrimSpace(rest)
			if namedTags[kind] && rest != "" {
				name, doc, _ := strings.Cut(rest, " ")
				tag.Name = name
				tag.Doc = strings.TrimSpace(doc)
			} else {
				tag.Doc = rest
			}
			continue
		}
		if tag != nil {
			if tag.Doc != "" {
				tag.Doc += "\n"
			}
			tag.Doc += line
			continue
		}
		doc = append(doc, line)
	}
	flush()

	jsdoc.Doc = strings.TrimSpace(strings.Join(doc, "\n"))
	if jsdoc.Doc == "" && len(jsdoc.Tags) == 0 {
		return nil
	}
	return jsdoc
}
