package node

import (
	"context"
	"strings"

	"github.com/specialistvlad/floorplan/internal/ctxlog"
	"github.com/specialistvlad/floorplan/internal/issues"
)

// ID addresses a node inside its Graph. The zero ID is never assigned.
type ID int

// NoID is the absent node reference.
const NoID ID = 0

// Node is a single vertex of the office floor graph.
type Node struct {
	graph     *Graph
	id        ID
	name      string
	kind      Kind
	location  string
	parent    ID
	qualified string
	children  []ID
	state     State
	links     map[Capability]ID
}

func (n *Node) ID() ID           { return n.id }
func (n *Node) Name() string     { return n.name }
func (n *Node) Kind() Kind       { return n.kind }
func (n *Node) Location() string { return n.location }

// Parent returns the parent node, or nil for the floor root.
func (n *Node) Parent() *Node {
	return n.graph.Node(n.parent)
}

// Children returns a fresh slice of the node's children in construction order.
func (n *Node) Children() []*Node {
	out := make([]*Node, len(n.children))
	for i, id := range n.children {
		out[i] = n.graph.nodes[id]
	}
	return out
}

// Child returns the first child named name whose kind is one of kinds. With
// no kinds every child is considered.
func (n *Node) Child(name string, kinds ...Kind) *Node {
	for _, id := range n.children {
		c := n.graph.nodes[id]
		if c.name == name && kindIn(c.kind, kinds) {
			return c
		}
	}
	return nil
}

// ChildrenOf returns the children of the given kind in construction order.
func (n *Node) ChildrenOf(kind Kind) []*Node {
	var out []*Node
	for _, id := range n.children {
		if c := n.graph.nodes[id]; c.kind == kind {
			out = append(out, c)
		}
	}
	return out
}

// IsInitialised reports whether Initialise has stored a state.
func (n *Node) IsInitialised() bool {
	return n.state != nil
}

// State returns the initialised state or nil.
func (n *Node) State() State {
	return n.state
}

// Initialise stores state if the node has none yet and returns the state the
// node ends up with. A second call keeps the first state and logs a warning.
// A blank name is reported to sink; the node stays in the graph.
func (n *Node) Initialise(ctx context.Context, sink *issues.Sink, state State) State {
	logger := ctxlog.FromContext(ctx)
	if n.state != nil {
		logger.Warn("Node already initialised, ignoring new state.", "node", n.qualified, "kind", n.kind.String())
		return n.state
	}
	if state == nil {
		panic(&ContractError{Node: n.qualified, Kind: n.kind, Reason: "initialised with nil state"})
	}
	if strings.TrimSpace(n.name) == "" {
		sink.Add(n, issues.CodeBlankName, "%s must have a name", n.kind)
	}
	n.state = state
	logger.Debug("Node initialised.", "node", n.qualified, "kind", n.kind.String())
	return state
}

// OverrideQualifier is an unsupported extension point.
func (n *Node) OverrideQualifier(string) {
	panic(&UnsupportedError{Op: "override qualifier", Kind: n.kind})
}

// SpecificType is an unsupported extension point.
func (n *Node) SpecificType(string) {
	panic(&UnsupportedError{Op: "specific type", Kind: n.kind})
}

// IssueID implements issues.Subject.
func (n *Node) IssueID() int { return int(n.id) }

// QualifiedName implements issues.Subject; it is the dotted path from the
// floor, e.g. `web.handle.next`.
func (n *Node) QualifiedName() string { return n.qualified }

// KindName implements issues.Subject.
func (n *Node) KindName() string { return n.kind.String() }

func (n *Node) String() string {
	return n.qualified + " (" + n.kind.String() + ")"
}

func kindIn(k Kind, kinds []Kind) bool {
	if len(kinds) == 0 {
		return true
	}
	for _, want := range kinds {
		if k == want {
			return true
		}
	}
	return false
}
