// internal/nodeid/types.go
package nodeid

// Address is a parsed qualified name: the ordered segment names from the
// scope it is resolved against down to the named node.
type Address struct {
	Path []string
}

// New builds an address from already validated segments.
func New(segments ...string) *Address {
	return &Address{Path: append([]string(nil), segments...)}
}

// Len returns the number of segments.
func (a *Address) Len() int {
	if a == nil {
		return 0
	}
	return len(a.Path)
}

// Last returns the final segment, or "" for an empty address.
func (a *Address) Last() string {
	if a.Len() == 0 {
		return ""
	}
	return a.Path[len(a.Path)-1]
}

// Child returns a new address with name appended.
func (a *Address) Child(name string) *Address {
	if a == nil {
		return New(name)
	}
	return New(append(append([]string(nil), a.Path...), name)...)
}

// Parent returns the address without its final segment. The parent of a
// single-segment address is nil.
func (a *Address) Parent() *Address {
	if a.Len() <= 1 {
		return nil
	}
	return New(a.Path[:len(a.Path)-1]...)
}
