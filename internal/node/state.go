package node

import "time"

// State is the immutable snapshot stored by Initialise.
type State interface {
	initialisedState()
}

// Scope is the lifetime of a managed object.
type Scope string

const (
	ScopeProcess  Scope = "process"
	ScopeThread   Scope = "thread"
	ScopeFunction Scope = "function"
)

// Valid reports whether s is a known scope.
func (s Scope) Valid() bool {
	switch s {
	case ScopeProcess, ScopeThread, ScopeFunction:
		return true
	}
	return false
}

type FloorState struct{}

type OfficeState struct{}

type TeamState struct {
	Source     string
	Properties map[string]string
}

type TeamOversightState struct {
	Source string
}

type ExecutionStrategyState struct {
	Source     string
	Properties map[string]string
}

// ManagedObjectSourceState is shared by configured and supplied sources. A
// supplied source has Supplier, Qualifier and Type set instead of Source.
type ManagedObjectSourceState struct {
	Source             string
	Properties         map[string]string
	Timeout            time.Duration
	Supplier           string
	Qualifier          string
	Type               string
	InputManagedObject string
}

type ManagedObjectState struct {
	Source string
	Scope  Scope
}

type InputManagedObjectState struct {
	BoundSource string
}

type SupplierState struct {
	Source     string
	Properties map[string]string
}

// SuppliedManagedObjectSourceState identifies one entry of its parent
// supplier's type.
type SuppliedManagedObjectSourceState struct {
	Qualifier string
	Type      string
}

type FunctionState struct {
	Source             string
	Properties         map[string]string
	PreAdministration  []string
	PostAdministration []string
}

// PortState initialises the link-carrying child nodes (flows, objects,
// teams, inputs, outputs and the like), which hold nothing but their link.
type PortState struct{}

func (*FloorState) initialisedState()                       {}
func (*OfficeState) initialisedState()                      {}
func (*TeamState) initialisedState()                        {}
func (*TeamOversightState) initialisedState()               {}
func (*ExecutionStrategyState) initialisedState()           {}
func (*ManagedObjectSourceState) initialisedState()         {}
func (*ManagedObjectState) initialisedState()               {}
func (*InputManagedObjectState) initialisedState()          {}
func (*SupplierState) initialisedState()                    {}
func (*FunctionState) initialisedState()                    {}
func (*SuppliedManagedObjectSourceState) initialisedState() {}
func (*PortState) initialisedState()                        {}

// StateOf returns the initialised state of n as T. It panics with a
// ContractError when n is not initialised or holds a different state type.
func StateOf[T State](n *Node) T {
	if n.state == nil {
		panic(&ContractError{Node: n.qualified, Kind: n.kind, Reason: "accessed before initialisation"})
	}
	s, ok := n.state.(T)
	if !ok {
		panic(&ContractError{Node: n.qualified, Kind: n.kind, Reason: "initialised with a different state type"})
	}
	return s
}
