// Package export renders a compiled office floor graph for people: as an
// indented tree of the containment hierarchy, or as Graphviz DOT and
// Mermaid diagrams of the links between nodes.
package export

import (
	"fmt"
	"io"

	"github.com/ddddddO/gtree"

	"github.com/specialistvlad/floorplan/internal/node"
)

// Edge is one direct link between two nodes.
type Edge struct {
	From       *node.Node
	To         *node.Node
	Capability node.Capability
}

// Edges lists every established link in node and capability order.
func Edges(g *node.Graph) []Edge {
	var out []Edge
	for _, n := range g.All() {
		for _, c := range node.Capabilities {
			if node.RoleOf(n.Kind(), c) != node.RoleForward {
				continue
			}
			if target := n.Linked(c); target != nil {
				out = append(out, Edge{From: n, To: target, Capability: c})
			}
		}
	}
	return out
}

// Tree writes the containment hierarchy of g below its root. Each line
// shows the node's name and kind, followed by its direct link targets.
func Tree(w io.Writer, g *node.Graph) error {
	root := gtree.NewRoot(g.Root().Name())
	addChildren(root, g.Root())
	if err := gtree.OutputFromRoot(w, root); err != nil {
		return fmt.Errorf("failed to render tree: %w", err)
	}
	return nil
}

func addChildren(parent *gtree.Node, n *node.Node) {
	// gtree merges siblings with equal text, so duplicates get their ID.
	used := make(map[string]bool)
	for _, child := range n.Children() {
		text := label(child)
		if used[text] {
			text = fmt.Sprintf("%s #%d", text, child.ID())
		}
		used[text] = true
		addChildren(parent.Add(text), child)
	}
}

func label(n *node.Node) string {
	text := fmt.Sprintf("%s (%s)", n.Name(), n.Kind())
	if n.Name() == "" {
		text = fmt.Sprintf("<blank> (%s)", n.Kind())
	}
	for _, c := range node.Capabilities {
		if node.RoleOf(n.Kind(), c) != node.RoleForward {
			continue
		}
		if target := n.Linked(c); target != nil {
			text += fmt.Sprintf(" -%s-> %s", c, target.QualifiedName())
		}
	}
	return text
}
