package compiler

import (
	"context"
	"strings"

	"github.com/specialistvlad/floorplan/internal/issues"
	"github.com/specialistvlad/floorplan/internal/node"
	"github.com/specialistvlad/floorplan/internal/nodeid"
)

// derivedNames are kinds whose names are generated rather than configured.
var derivedNames = map[node.Kind]bool{
	node.KindOfficeFloor:                 true,
	node.KindSuppliedManagedObjectSource: true,
	node.KindResponsibleTeam:             true,
	node.KindManagingOffice:              true,
}

func (r *Result) initialise(ctx context.Context) {
	for _, p := range r.inits {
		p.node.Initialise(ctx, r.sink, p.state)
	}
	r.inits = nil

	for _, n := range r.graph.All() {
		if !derivedNames[n.Kind()] && !blankName(n) && !nodeid.ValidName(n.Name()) {
			r.sink.Add(n, issues.CodeInvalidConfig, "name %q may only contain letters, digits, '-' and '_'", n.Name())
		}
		r.checkDuplicateChildren(n)
	}
}

// checkDuplicateChildren reports every child that reuses the name of an
// earlier sibling in the same namespace. Kinds are separate namespaces, so an
// office input and a function may share a name, except for kinds one
// reference may resolve to (see namespace).
func (r *Result) checkDuplicateChildren(parent *node.Node) {
	type key struct {
		kind node.Kind
		name string
	}
	seen := make(map[key]*node.Node)
	for _, c := range parent.Children() {
		if blankName(c) {
			continue
		}
		k := key{namespace(c.Kind()), c.Name()}
		if first, dup := seen[k]; dup {
			r.sink.Add(c, issues.CodeDuplicateName, "%s name %q is already used at %s", c.Kind(), c.Name(), locationOrName(first))
			continue
		}
		seen[k] = c
	}
}

// namespace groups kinds that share one name space. Object references
// accept managed and input managed objects, and flows accept functions and
// office outputs, so a name shared within a group would be ambiguous.
func namespace(k node.Kind) node.Kind {
	switch k {
	case node.KindInputManagedObject:
		return node.KindManagedObject
	case node.KindOfficeOutput:
		return node.KindFunction
	default:
		return k
	}
}

func blankName(n *node.Node) bool {
	return strings.TrimSpace(n.Name()) == ""
}

func locationOrName(n *node.Node) string {
	if n.Location() != "" {
		return n.Location()
	}
	return n.QualifiedName()
}
