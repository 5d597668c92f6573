package compiler

import (
	"github.com/zclconf/go-cty/cty"

	"github.com/specialistvlad/floorplan/internal/compilectx"
	"github.com/specialistvlad/floorplan/internal/issues"
	"github.com/specialistvlad/floorplan/internal/node"
	"github.com/specialistvlad/floorplan/internal/typeload"
)

const (
	categoryManagedObjectType compilectx.Category = "managed object type"
	categoryFunctionType      compilectx.Category = "function type"
	categorySupplierType      compilectx.Category = "supplier type"
	categoryObjectType        compilectx.Category = "object type"
	categorySourceCheck       compilectx.Category = "source"
	categoryBackingSource     compilectx.Category = "backing source"
)

func targetCategory(c node.Capability) compilectx.Category {
	return compilectx.Category(c.String() + " target")
}

// target resolves the furthest target of n's c link once per pass, so a
// broken chain is reported once however often it is consulted. A chain
// through a reference that already failed to look up yields no target
// silently.
func (r *Result) target(n *node.Node, c node.Capability) (*node.Node, bool) {
	return compilectx.GetOrLoad(r.cc, n, targetCategory(c), func() (*node.Node, bool) {
		if r.reachesFailed(n, c) {
			return nil, false
		}
		t := n.FindTarget(r.sink, c)
		return t, t != nil
	})
}

// reachesFailed reports whether following c links from n runs into a
// reference that failed to look up.
func (r *Result) reachesFailed(n *node.Node, c node.Capability) bool {
	visited := make(map[node.ID]bool)
	for cur := n; cur != nil && !visited[cur.ID()]; cur = cur.Linked(c) {
		if r.failed[linkKey{cur.ID(), c}] {
			return true
		}
		visited[cur.ID()] = true
	}
	return false
}

// managedObjectType loads the type of a managed object source or of a
// supplier entry. A supplied source takes the type of its entry.
func (r *Result) managedObjectType(n *node.Node) (*typeload.ManagedObjectType, bool) {
	return compilectx.GetOrLoad(r.cc, n, categoryManagedObjectType, func() (*typeload.ManagedObjectType, bool) {
		if blankName(n) {
			return nil, false
		}
		if n.Kind() == node.KindSuppliedManagedObjectSource {
			return r.suppliedType(n)
		}

		st := node.StateOf[*node.ManagedObjectSourceState](n)
		if st.Supplier != "" {
			entry := r.graph.Node(r.supplied[n.ID()])
			if entry == nil {
				r.sink.Add(n, issues.CodeUnknownTarget, "unknown supplier %q", st.Supplier)
				return nil, false
			}
			return r.managedObjectType(entry)
		}

		t, err := r.loader.LoadManagedObjectType(st.Source, st.Properties)
		if err != nil {
			r.sink.AddCause(n, issues.CodeTypeLoad, err, "cannot load managed object source %q", st.Source)
			return nil, false
		}
		return t, true
	})
}

func (r *Result) suppliedType(n *node.Node) (*typeload.ManagedObjectType, bool) {
	st := node.StateOf[*node.SuppliedManagedObjectSourceState](n)
	supplier := n.Parent()
	supplierType, ok := r.supplierType(supplier)
	if !ok {
		return nil, false
	}
	entry, ok := supplierType.Find(st.Qualifier, st.Type)
	if !ok {
		r.sink.Add(n, issues.CodeInvalidConfig, "supplier %s does not supply qualifier %q of type %q", supplier.QualifiedName(), st.Qualifier, st.Type)
		return nil, false
	}
	t, err := r.loader.LoadManagedObjectType(entry.Source, entry.Properties)
	if err != nil {
		r.sink.AddCause(n, issues.CodeTypeLoad, err, "cannot load supplied managed object source %q", entry.Source)
		return nil, false
	}
	return t, true
}

// suppliedEntry returns the supplier entry behind a supplied source.
func (r *Result) suppliedEntry(mos *node.Node) (typeload.Supplied, bool) {
	entry := r.graph.Node(r.supplied[mos.ID()])
	if entry == nil {
		return typeload.Supplied{}, false
	}
	supplierType, ok := r.supplierType(entry.Parent())
	if !ok {
		return typeload.Supplied{}, false
	}
	st := node.StateOf[*node.SuppliedManagedObjectSourceState](entry)
	return supplierType.Find(st.Qualifier, st.Type)
}

func (r *Result) supplierType(n *node.Node) (*typeload.SupplierType, bool) {
	return compilectx.GetOrLoad(r.cc, n, categorySupplierType, func() (*typeload.SupplierType, bool) {
		if blankName(n) {
			return nil, false
		}
		st := node.StateOf[*node.SupplierState](n)
		t, err := r.loader.LoadSupplierType(st.Source, st.Properties)
		if err != nil {
			r.sink.AddCause(n, issues.CodeTypeLoad, err, "cannot load supplier %q", st.Source)
			return nil, false
		}
		return t, true
	})
}

func (r *Result) functionType(n *node.Node) (*typeload.FunctionType, bool) {
	return compilectx.GetOrLoad(r.cc, n, categoryFunctionType, func() (*typeload.FunctionType, bool) {
		if blankName(n) {
			return nil, false
		}
		st := node.StateOf[*node.FunctionState](n)
		t, err := r.loader.LoadFunctionType(st.Source, st.Properties)
		if err != nil {
			r.sink.AddCause(n, issues.CodeTypeLoad, err, "cannot load function %q", st.Source)
			return nil, false
		}
		return t, true
	})
}

// checkSource verifies a team, execution strategy or team oversight source
// once per node.
func (r *Result) checkSource(n *node.Node, kind typeload.Kind, source string) bool {
	ok, _ := compilectx.GetOrLoad(r.cc, n, categorySourceCheck, func() (bool, bool) {
		if blankName(n) {
			return false, false
		}
		if err := r.loader.CheckSource(kind, source); err != nil {
			r.sink.AddCause(n, issues.CodeTypeLoad, err, "cannot load %s source %q", kind, source)
			return false, false
		}
		return true, true
	})
	return ok
}

// objectType is the type of object a managed object or input managed object
// provides, taken from its source.
func (r *Result) objectType(n *node.Node) (cty.Type, bool) {
	return compilectx.GetOrLoad(r.cc, n, categoryObjectType, func() (cty.Type, bool) {
		mos, ok := r.sourceOf(n)
		if !ok {
			return cty.NilType, false
		}
		t, ok := r.managedObjectType(mos)
		if !ok {
			return cty.NilType, false
		}
		return t.ObjectType, true
	})
}

// sourceOf returns the managed object source backing a managed object, or
// the bound source of an input managed object.
func (r *Result) sourceOf(n *node.Node) (*node.Node, bool) {
	return compilectx.GetOrLoad(r.cc, n, categoryBackingSource, func() (*node.Node, bool) {
		if blankName(n) {
			return nil, false
		}
		root := r.graph.Root()
		switch n.Kind() {
		case node.KindManagedObject:
			st := node.StateOf[*node.ManagedObjectState](n)
			mos := root.Child(st.Source, node.KindManagedObjectSource)
			if mos == nil {
				r.sink.Add(n, issues.CodeUnknownTarget, "unknown managed object source %q", st.Source)
				return nil, false
			}
			return mos, true

		case node.KindInputManagedObject:
			return r.boundSource(n)
		}
		return nil, false
	})
}

// feeders returns the managed object sources that input n, in construction
// order.
func (r *Result) feeders(n *node.Node) []*node.Node {
	var out []*node.Node
	for _, mos := range r.graph.OfKind(node.KindManagedObjectSource) {
		st := node.StateOf[*node.ManagedObjectSourceState](mos)
		if st.InputManagedObject == n.Name() {
			out = append(out, mos)
		}
	}
	return out
}

// boundSource picks the source that provides an input managed object's
// type. A single feeding source is bound implicitly.
func (r *Result) boundSource(n *node.Node) (*node.Node, bool) {
	st := node.StateOf[*node.InputManagedObjectState](n)
	feeders := r.feeders(n)

	if st.BoundSource == "" {
		switch len(feeders) {
		case 0:
			r.sink.Add(n, issues.CodeMissingLink, "no managed object source inputs %s", n.QualifiedName())
			return nil, false
		case 1:
			return feeders[0], true
		default:
			r.sink.Add(n, issues.CodeMissingLink, "%d managed object sources input %s and none is bound", len(feeders), n.QualifiedName())
			return nil, false
		}
	}

	for _, mos := range feeders {
		if mos.Name() == st.BoundSource {
			return mos, true
		}
	}
	r.sink.Add(n, issues.CodeInvalidConfig, "bound source %q does not input %s", st.BoundSource, n.QualifiedName())
	return nil, false
}
