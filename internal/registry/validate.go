package registry

import (
	"context"
	"fmt"
	"strings"

	"github.com/specialistvlad/floorplan/internal/ctxlog"
	"github.com/specialistvlad/floorplan/internal/typeload"
)

// ValidateRegistry checks that every supplier supplies registered managed
// object sources and that no property-independent type declares the same
// member twice. Sources whose type depends on properties are described with
// the properties the supplier passes, or with none.
func (r *Registry) ValidateRegistry(ctx context.Context) error {
	var errs []string
	logger := ctxlog.FromContext(ctx)

	for _, name := range r.Names(typeload.KindSupplier) {
		st, err := r.suppliers[name].Describe(nil)
		if err != nil {
			logger.Warn("Supplier cannot be described without properties, skipping validation.", "supplier", name, "error", err)
			continue
		}
		seen := make(map[string]struct{})
		for _, s := range st.Supplied {
			key := s.Qualifier + "/" + s.Type
			if _, dup := seen[key]; dup {
				errs = append(errs, fmt.Sprintf("supplier '%s': supplies '%s' more than once", name, key))
			}
			seen[key] = struct{}{}
			if _, ok := r.managedObjectSources[s.Source]; !ok {
				errs = append(errs, fmt.Sprintf("supplier '%s': supplies '%s' from unknown managed object source '%s'", name, key, s.Source))
			}
		}
	}

	for _, name := range r.Names(typeload.KindManagedObjectSource) {
		mt, err := r.managedObjectSources[name].Describe(nil)
		if err != nil {
			continue
		}
		errs = append(errs, duplicates("managed object source", name, "dependency", dependencyNames(mt.Dependencies))...)
		errs = append(errs, duplicates("managed object source", name, "flow", flowNames(mt.Flows))...)
		errs = append(errs, duplicates("managed object source", name, "team", mt.Teams)...)
		errs = append(errs, duplicates("managed object source", name, "function dependency", dependencyNames(mt.FunctionDependencies))...)
	}

	for _, name := range r.Names(typeload.KindFunction) {
		ft, err := r.functions[name].Describe(nil)
		if err != nil {
			continue
		}
		errs = append(errs, duplicates("function", name, "object", dependencyNames(ft.Objects))...)
		errs = append(errs, duplicates("function", name, "flow", flowNames(ft.Flows))...)
		errs = append(errs, duplicates("function", name, "escalation", ft.Escalations)...)
	}

	if len(errs) > 0 {
		return fmt.Errorf("registry validation failed:\n- %s", strings.Join(errs, "\n- "))
	}

	return nil
}

func duplicates(ownerKind, owner, member string, names []string) []string {
	var errs []string
	seen := make(map[string]struct{}, len(names))
	for _, n := range names {
		if _, dup := seen[n]; dup {
			errs = append(errs, fmt.Sprintf("%s '%s': declares %s '%s' more than once", ownerKind, owner, member, n))
		}
		seen[n] = struct{}{}
	}
	return errs
}

func dependencyNames(deps []typeload.Dependency) []string {
	out := make([]string, len(deps))
	for i, d := range deps {
		out[i] = d.Name
	}
	return out
}

func flowNames(flows []typeload.Flow) []string {
	out := make([]string, len(flows))
	for i, f := range flows {
		out[i] = f.Name
	}
	return out
}
