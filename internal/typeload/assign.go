package typeload

import (
	"fmt"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
)

// Assignable reports whether a value of type from can satisfy a slot of
// type to. A slot typed `any` accepts everything; an untyped (nil) value
// satisfies nothing but `any` and nil slots.
func Assignable(from, to cty.Type) bool {
	if to == cty.NilType || to.Equals(cty.DynamicPseudoType) {
		return true
	}
	if from == cty.NilType {
		return false
	}
	if from.Equals(to) {
		return true
	}
	return convert.GetConversion(from, to) != nil
}

// FriendlyName renders t for messages, including the nil type.
func FriendlyName(t cty.Type) string {
	if t == cty.NilType {
		return "none"
	}
	return t.FriendlyName()
}

// ImpliedType derives a cty type from a Go value, honouring `cty` struct
// tags. Go modules use it to declare object types from their Go structs.
func ImpliedType(v any) (cty.Type, error) {
	t, err := gocty.ImpliedType(v)
	if err != nil {
		return cty.NilType, fmt.Errorf("cannot imply type from %T: %w", v, err)
	}
	return t, nil
}

// MustImpliedType is ImpliedType for package-level declarations.
func MustImpliedType(v any) cty.Type {
	t, err := ImpliedType(v)
	if err != nil {
		panic(err)
	}
	return t
}
