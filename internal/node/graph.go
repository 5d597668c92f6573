package node

import (
	"github.com/specialistvlad/floorplan/internal/nodeid"
)

// Graph is the arena owning every node of one compilation pass. It is not
// safe for concurrent use.
type Graph struct {
	nodes []*Node
}

// NewGraph creates a graph holding only the floor root.
func NewGraph(name string) *Graph {
	g := &Graph{nodes: []*Node{nil}}
	g.nodes = append(g.nodes, &Node{
		graph:     g,
		id:        1,
		name:      name,
		kind:      KindOfficeFloor,
		qualified: name,
	})
	return g
}

// Root returns the floor node.
func (g *Graph) Root() *Node {
	return g.nodes[1]
}

// Add constructs a node under parent. Construction never reports issues; it
// panics only on a programming error (unknown parent, a second root).
func (g *Graph) Add(parent ID, kind Kind, name, location string) *Node {
	p := g.Node(parent)
	if p == nil {
		panic(&ContractError{Node: name, Kind: kind, Reason: "constructed under an unknown parent"})
	}
	if kind == KindOfficeFloor || kind == KindUnknown {
		panic(&ContractError{Node: name, Kind: kind, Reason: "cannot be constructed as a child"})
	}

	qualified := name
	if blank(name) {
		qualified = "<unnamed " + kind.String() + ">"
	}
	if p.kind != KindOfficeFloor {
		qualified = p.qualified + "." + qualified
	}

	n := &Node{
		graph:     g,
		id:        ID(len(g.nodes)),
		name:      name,
		kind:      kind,
		location:  location,
		parent:    parent,
		qualified: qualified,
	}
	g.nodes = append(g.nodes, n)
	p.children = append(p.children, n.id)
	return n
}

// Node returns the node with id, or nil.
func (g *Graph) Node(id ID) *Node {
	if id <= NoID || int(id) >= len(g.nodes) {
		return nil
	}
	return g.nodes[id]
}

// Len returns the number of nodes including the root.
func (g *Graph) Len() int {
	return len(g.nodes) - 1
}

// All returns every node in construction order. Parents always precede
// their children.
func (g *Graph) All() []*Node {
	return append([]*Node(nil), g.nodes[1:]...)
}

// OfKind returns every node of kind in construction order.
func (g *Graph) OfKind(kind Kind) []*Node {
	var out []*Node
	for _, n := range g.nodes[1:] {
		if n.kind == kind {
			out = append(out, n)
		}
	}
	return out
}

// containerKinds are the kinds an intermediate reference segment may name.
var containerKinds = []Kind{KindOffice, KindFunction, KindManagedObjectSource, KindManagedObject, KindSupplier}

// Lookup resolves addr relative to scope by walking children by name. The
// final segment must name a node of one of kinds; intermediate segments name
// containers such as offices and functions.
func (g *Graph) Lookup(scope *Node, addr *nodeid.Address, kinds ...Kind) *Node {
	if scope == nil || addr.Len() == 0 {
		return nil
	}
	cur := scope
	for i, segment := range addr.Path {
		if i == len(addr.Path)-1 {
			return cur.Child(segment, kinds...)
		}
		cur = cur.Child(segment, containerKinds...)
		if cur == nil {
			return nil
		}
	}
	return nil
}

func blank(s string) bool {
	for _, r := range s {
		if r != ' ' && r != '\t' && r != '\n' && r != '\r' {
			return false
		}
	}
	return true
}
