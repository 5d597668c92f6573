// Package print provides a function that writes its parameter to the log.
package print

import (
	"fmt"

	"github.com/zclconf/go-cty/cty"

	"github.com/specialistvlad/floorplan/internal/registry"
	"github.com/specialistvlad/floorplan/internal/typeload"
)

// SourceName is the function source registered by this module.
const SourceName = "print"

// Module implements the registry.Module interface for this package.
type Module struct{}

// Describe declares a function taking a map of strings. The optional
// `format` property selects "text" (the default) or "json".
func Describe(properties map[string]string) (*typeload.FunctionType, error) {
	switch format := properties["format"]; format {
	case "", "text", "json":
	default:
		return nil, fmt.Errorf("unsupported format %q", format)
	}
	return &typeload.FunctionType{Parameter: cty.Map(cty.String)}, nil
}

// Register registers the function with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterFunction(SourceName, typeload.FunctionSourceFunc(Describe))
}
