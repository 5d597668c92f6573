package config

// Merge appends every element of the given models, in order, into a new
// model. Duplicate names are kept; the compiler reports them.
func Merge(models ...*Model) *Model {
	out := &Model{}
	for _, m := range models {
		if m == nil {
			continue
		}
		out.Teams = append(out.Teams, m.Teams...)
		out.TeamOversights = append(out.TeamOversights, m.TeamOversights...)
		out.ExecutionStrategies = append(out.ExecutionStrategies, m.ExecutionStrategies...)
		out.ManagedObjectSources = append(out.ManagedObjectSources, m.ManagedObjectSources...)
		out.ManagedObjects = append(out.ManagedObjects, m.ManagedObjects...)
		out.InputManagedObjects = append(out.InputManagedObjects, m.InputManagedObjects...)
		out.Suppliers = append(out.Suppliers, m.Suppliers...)
		out.Offices = append(out.Offices, m.Offices...)
		out.Definitions.ManagedObjectSources = append(out.Definitions.ManagedObjectSources, m.Definitions.ManagedObjectSources...)
		out.Definitions.Functions = append(out.Definitions.Functions, m.Definitions.Functions...)
		out.Definitions.Suppliers = append(out.Definitions.Suppliers, m.Definitions.Suppliers...)
		out.Definitions.Sources = append(out.Definitions.Sources, m.Definitions.Sources...)
	}
	return out
}
