package dag

import (
	"fmt"
	"slices"
)

// New creates and returns an initialized, empty Graph.
func New() *Graph {
	return &Graph{
		nodes: make(map[string]*node),
	}
}

// AddNode adds a new node with the given ID to the graph. If a node with
// the same ID already exists, the function does nothing.
func (g *Graph) AddNode(id string) {
	g.mutex.Lock()
	defer g.mutex.Unlock()

	if _, ok := g.nodes[id]; ok {
		return
	}

	g.nodes[id] = &node{
		id:         id,
		deps:       make(map[string]*node),
		dependents: make(map[string]*node),
	}
	g.order = append(g.order, id)
}

// AddEdge creates a directed edge from the `fromID` node to the `toID` node.
// This signifies that `toID` has a dependency on `fromID`. An error is returned
// if either node does not exist. A self-referential edge is accepted and
// surfaces as a cycle.
func (g *Graph) AddEdge(fromID, toID string) error {
	g.mutex.Lock()
	defer g.mutex.Unlock()

	fromNode, ok := g.nodes[fromID]
	if !ok {
		return fmt.Errorf("source node not found: %s", fromID)
	}

	toNode, ok := g.nodes[toID]
	if !ok {
		return fmt.Errorf("destination node not found: %s", toID)
	}

	toNode.deps[fromID] = fromNode
	fromNode.dependents[toID] = toNode

	return nil
}

// Dependencies returns the sorted IDs of the nodes the given node depends on.
func (g *Graph) Dependencies(id string) ([]string, error) {
	g.mutex.RLock()
	defer g.mutex.RUnlock()

	n, ok := g.nodes[id]
	if !ok {
		return nil, fmt.Errorf("node not found: %s", id)
	}
	return sortedKeys(n.deps), nil
}

// DetectCycles checks the graph for any cycles. It returns a *CycleError
// describing the first cycle found, visiting nodes in insertion order.
func (g *Graph) DetectCycles() error {
	if cycles := g.DetectAllCycles(); len(cycles) > 0 {
		return cycles[0]
	}
	return nil
}

// DetectAllCycles returns one *CycleError per back edge met by a depth-first
// search in insertion order, so disjoint cycles are all reported. Nodes are
// expanded once; a cycle reachable from an already finished node is not
// reported again.
func (g *Graph) DetectAllCycles() []*CycleError {
	g.mutex.RLock()
	defer g.mutex.RUnlock()

	// Classic depth-first search with three sets of nodes:
	// permanent: nodes that have been fully visited.
	// temporary: nodes currently in the recursion stack for the current traversal.
	// unvisited: all other nodes.
	permanent := make(map[string]bool)
	temporary := make(map[string]bool)
	var stack []string
	var cycles []*CycleError

	var visit func(n *node)
	visit = func(n *node) {
		if permanent[n.id] {
			return
		}
		if temporary[n.id] {
			start := slices.Index(stack, n.id)
			path := append(slices.Clone(stack[start:]), n.id)
			cycles = append(cycles, &CycleError{Path: path})
			return
		}

		temporary[n.id] = true
		stack = append(stack, n.id)

		for _, id := range sortedKeys(n.dependents) {
			visit(n.dependents[id])
		}

		stack = stack[:len(stack)-1]
		delete(temporary, n.id)
		permanent[n.id] = true
	}

	for _, id := range g.order {
		visit(g.nodes[id])
	}

	return cycles
}

// TopologicalOrder returns every node with dependencies before dependents,
// breaking ties by insertion order. It fails with a *CycleError when the
// graph is not acyclic.
func (g *Graph) TopologicalOrder() ([]string, error) {
	if err := g.DetectCycles(); err != nil {
		return nil, err
	}

	g.mutex.RLock()
	defer g.mutex.RUnlock()

	done := make(map[string]bool, len(g.nodes))
	out := make([]string, 0, len(g.nodes))

	var visit func(n *node)
	visit = func(n *node) {
		if done[n.id] {
			return
		}
		done[n.id] = true
		for _, id := range sortedKeys(n.deps) {
			visit(n.deps[id])
		}
		out = append(out, n.id)
	}
	for _, id := range g.order {
		visit(g.nodes[id])
	}
	return out, nil
}

func sortedKeys(m map[string]*node) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
