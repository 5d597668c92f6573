// Package node is the structural core of the office floor compiler.
//
// A Graph is an arena of Nodes addressed by integer IDs. Every node has a
// name, a closed Kind tag, an optional source location, exactly one parent
// (the floor root has none) and an order-stable list of children. A node is
// constructed first and initialised later: Initialise stores a per-kind,
// immutable State exactly once.
//
// Nodes are connected through link capabilities (flow, team, object,
// execution strategy, office, team oversight). For each capability a kind
// either does not take part, forwards to another node, or is a terminal
// implementer; the role table in capability.go is the single source of
// truth for this. FindTarget follows forwarding links to the furthest
// terminal node and reports cycles and dead ends to an issues.Sink.
package node
