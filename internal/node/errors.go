package node

import "fmt"

// ContractError is raised (as a panic) when the graph is used in a way that
// can only be a programming mistake, such as reading the state of a node
// that was never initialised.
type ContractError struct {
	Node   string
	Kind   Kind
	Reason string
}

func (e *ContractError) Error() string {
	return fmt.Sprintf("node %q (%s): %s", e.Node, e.Kind, e.Reason)
}

// UnsupportedError is raised (as a panic) by extension points this compiler
// does not implement, and when a node is asked to carry a capability its
// kind does not support.
type UnsupportedError struct {
	Op   string
	Kind Kind
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("%s is not supported for %s nodes", e.Op, e.Kind)
}
