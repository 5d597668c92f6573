// Package compilectx memoizes per-node type loading for one compilation pass.
//
// Every (node, category) pair is computed at most once. The result, including
// an explicit "no type" outcome, is cached. While a loader runs its key is
// marked as loading; a loader that ends up asking for its own key again is
// reported as a type cycle and receives "no type" instead of recursing.
package compilectx

import (
	"github.com/specialistvlad/floorplan/internal/issues"
	"github.com/specialistvlad/floorplan/internal/node"
)

// Category names one kind of derived information about a node, e.g. its
// managed object type or the resolved target of one of its links.
type Category string

type key struct {
	id       node.ID
	category Category
}

type entry struct {
	loading bool
	value   any
	ok      bool
}

// Context is the explicit compile context passed to every phase of a pass.
type Context struct {
	Graph  *node.Graph
	Sink   *issues.Sink
	PassID string

	entries map[key]*entry
	loads   int
}

// New creates an empty context for one pass over graph.
func New(graph *node.Graph, sink *issues.Sink, passID string) *Context {
	return &Context{
		Graph:   graph,
		Sink:    sink,
		PassID:  passID,
		entries: make(map[key]*entry),
	}
}

// Loads returns how many loaders have been invoked so far.
func (c *Context) Loads() int {
	return c.loads
}

// Cached reports whether a result for (n, category) is already known.
func (c *Context) Cached(n *node.Node, category Category) bool {
	e, ok := c.entries[key{n.ID(), category}]
	return ok && !e.loading
}

// GetOrLoad returns the cached result for (n, category) or invokes load once
// and caches what it returns. A re-entrant request for a key that is still
// loading reports one TY-005 issue on n and yields the zero value and false.
func GetOrLoad[T any](c *Context, n *node.Node, category Category, load func() (T, bool)) (T, bool) {
	var zero T
	k := key{n.ID(), category}

	if e, ok := c.entries[k]; ok {
		if e.loading {
			c.Sink.Add(n, issues.CodeTypeCycle, "%s of %s depends on itself", category, n.QualifiedName())
			return zero, false
		}
		if !e.ok {
			return zero, false
		}
		return e.value.(T), true
	}

	e := &entry{loading: true}
	c.entries[k] = e
	c.loads++

	value, ok := load()

	e.loading = false
	e.ok = ok
	if ok {
		e.value = value
	}
	return value, ok
}
