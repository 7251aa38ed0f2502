package doc

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	locationStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Italic(true)
	signatureStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
	docStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	tagStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
)

// Printer renders doc nodes as an indented text tree. Styled controls ANSI
// styling; callers decide based on the output terminal.
type Printer struct {
	Styled bool
}

// Print writes the text rendering of nodes to w.
func (p Printer) Print(w io.Writer, nodes []Node) error {
	var b strings.Builder
	for _, n := range nodes {
		p.writeNode(&b, n, 0)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func (p Printer) writeNode(b *strings.Builder, n Node, depth int) {
	indent := strings.Repeat("  ", depth)

	if depth == 0 {
		loc := fmt.Sprintf("Defined in %s:%d:%d", n.Location.Specifier, n.Location.Line, n.Location.Col)
		b.WriteString(indent + p.style(locationStyle, loc) + "\n")
	}

	sig := n.Signature
	if sig == "" {
		sig = fmt.Sprintf("%s %s", n.Kind, n.Name)
	}
	b.WriteString(indent + p.style(signatureStyle, sig) + "\n")

	if n.JSDoc != nil {
		for _, line := range strings.Split(n.JSDoc.Doc, "\n") {
			if line == "" {
				continue
			}
			b.WriteString(indent + "  " + p.style(docStyle, line) + "\n")
		}
		for _, tag := range n.JSDoc.Tags {
			label := "@" + tag.Kind
			if tag.Name != "" {
				label += " " + tag.Name
			}
			line := label
			if tag.Doc != "" {
				line += " " + strings.ReplaceAll(tag.Doc, "\n", " ")
			}
			b.WriteString(indent + "  " + p.style(tagStyle, line) + "\n")
		}
	}

	for _, child := range n.Children {
		p.writeNode(b, child, depth+1)
	}

	if depth == 0 {
		b.WriteString("\n")
	}
}

func (p Printer) style(s lipgloss.Style, text string) string {
	if !p.Styled {
		return text
	}
	return s.Render(text)
}
