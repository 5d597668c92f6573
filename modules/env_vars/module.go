// Package env_vars provides a managed object source exposing the process
// environment as a single object.
package env_vars

import (
	"fmt"
	"strings"

	"github.com/specialistvlad/floorplan/internal/registry"
	"github.com/specialistvlad/floorplan/internal/typeload"
)

// SourceName is the managed object source registered by this module.
const SourceName = "env_vars"

// Module implements the registry.Module interface for this package.
type Module struct{}

// Object defines the data structure the source provides.
type Object struct {
	All map[string]string `cty:"all"`
}

// ObjectType is the cty type of Object.
var ObjectType = typeload.MustImpliedType(Object{})

// Describe validates the source's properties. The only property, `prefix`,
// must be an upper case environment variable prefix when set.
func Describe(properties map[string]string) (*typeload.ManagedObjectType, error) {
	if prefix, ok := properties["prefix"]; ok && prefix != strings.ToUpper(prefix) {
		return nil, fmt.Errorf("prefix %q must be upper case", prefix)
	}
	return &typeload.ManagedObjectType{ObjectType: ObjectType}, nil
}

// Register registers the source with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterManagedObjectSource(SourceName, typeload.ManagedObjectSourceFunc(Describe))
}
