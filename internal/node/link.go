package node

import (
	"strings"

	"github.com/specialistvlad/floorplan/internal/issues"
)

// LinkTo links n to target for capability c and reports whether a new link
// was established. A nil or incompatible target is reported to sink and
// leaves the node unchanged. Relinking to the target already held is a
// silent no-op; relinking elsewhere replaces the link and is reported.
//
// It panics with an UnsupportedError when n's kind does not carry c.
func (n *Node) LinkTo(sink *issues.Sink, c Capability, target *Node) bool {
	if RoleOf(n.kind, c) != RoleForward {
		panic(&UnsupportedError{Op: c.String() + " link", Kind: n.kind})
	}
	if target == nil {
		sink.Add(n, issues.CodeUnknownTarget, "no %s target to link to", c)
		return false
	}
	if !Compatible(target.kind, c) {
		sink.Add(n, issues.CodeIncompatibleTarget, "cannot link %s to %s: %s does not take %s links", c, target.qualified, target.kind, c)
		return false
	}

	prev, linked := n.links[c]
	if linked && prev == target.id {
		return false
	}
	if linked {
		sink.Add(n, issues.CodeRelinked, "%s link changed from %s to %s", c, n.graph.nodes[prev].qualified, target.qualified)
	}
	if n.links == nil {
		n.links = make(map[Capability]ID)
	}
	n.links[c] = target.id
	return true
}

// Linked returns the direct target of the c link, without traversal.
func (n *Node) Linked(c Capability) *Node {
	return n.graph.Node(n.links[c])
}

// FindTarget follows c links from n to the furthest terminal implementer of
// c. A revisited node reports one cyclic-link issue and a non-terminal node
// without a link reports one unresolved-link issue; both are attributed to n
// and yield nil.
func (n *Node) FindTarget(sink *issues.Sink, c Capability) *Node {
	visited := make(map[ID]struct{})
	var path []string

	cur := n
	for {
		if _, seen := visited[cur.id]; seen {
			path = append(path, cur.qualified)
			sink.Add(n, issues.CodeCyclicLink, "%s link is cyclic: %s", c, strings.Join(path, " -> "))
			return nil
		}
		visited[cur.id] = struct{}{}
		path = append(path, cur.qualified)

		if RoleOf(cur.kind, c) == RoleTerminal {
			return cur
		}

		next := n.graph.Node(cur.links[c])
		if next == nil {
			if cur == n {
				sink.Add(n, issues.CodeUnresolvedLink, "%s is not linked", c)
			} else {
				sink.Add(n, issues.CodeUnresolvedLink, "%s link ends at %s, which is not linked", c, cur.qualified)
			}
			return nil
		}
		cur = next
	}
}
