package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/specialistvlad/floorplan/internal/node"
)

// DOT writes g as a Graphviz digraph. Nodes are labelled with their
// qualified name and kind; edges with the link capability.
func DOT(w io.Writer, g *node.Graph) error {
	var b strings.Builder
	fmt.Fprintf(&b, "digraph %s {\n", dotQuote(g.Root().Name()))
	b.WriteString("  rankdir=LR;\n")
	b.WriteString("  node [shape=box];\n")
	for _, n := range g.All() {
		if n == g.Root() {
			continue
		}
		fmt.Fprintf(&b, "  n%d [label=%s];\n", n.ID(), dotQuote(n.QualifiedName()+`\n`+n.Kind().String()))
	}
	for _, e := range Edges(g) {
		fmt.Fprintf(&b, "  n%d -> n%d [label=%s];\n", e.From.ID(), e.To.ID(), dotQuote(e.Capability.String()))
	}
	b.WriteString("}\n")

	_, err := io.WriteString(w, b.String())
	return err
}

// Mermaid writes g as a left-to-right Mermaid flowchart.
func Mermaid(w io.Writer, g *node.Graph) error {
	var b strings.Builder
	b.WriteString("flowchart LR\n")
	for _, n := range g.All() {
		if n == g.Root() {
			continue
		}
		fmt.Fprintf(&b, "  n%d[\"%s (%s)\"]\n", n.ID(), mermaidEscape(n.QualifiedName()), n.Kind())
	}
	for _, e := range Edges(g) {
		fmt.Fprintf(&b, "  n%d -->|%s| n%d\n", e.From.ID(), e.Capability, e.To.ID())
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// dotQuote quotes s as a DOT string. A `\n` already in s is kept as the
// DOT line break escape.
func dotQuote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `\"`) + `"`
}

func mermaidEscape(s string) string {
	return strings.ReplaceAll(s, `"`, "#quot;")
}
