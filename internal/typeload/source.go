package typeload

// ManagedObjectSource is implemented by Go code providing managed objects.
type ManagedObjectSource interface {
	Describe(properties map[string]string) (*ManagedObjectType, error)
}

// FunctionSource is implemented by Go code providing functions.
type FunctionSource interface {
	Describe(properties map[string]string) (*FunctionType, error)
}

// SupplierSource is implemented by Go code supplying managed object sources.
type SupplierSource interface {
	Describe(properties map[string]string) (*SupplierType, error)
}

// ManagedObjectSourceFunc adapts a function to ManagedObjectSource.
type ManagedObjectSourceFunc func(properties map[string]string) (*ManagedObjectType, error)

func (f ManagedObjectSourceFunc) Describe(p map[string]string) (*ManagedObjectType, error) {
	return f(p)
}

// FunctionSourceFunc adapts a function to FunctionSource.
type FunctionSourceFunc func(properties map[string]string) (*FunctionType, error)

func (f FunctionSourceFunc) Describe(p map[string]string) (*FunctionType, error) {
	return f(p)
}

// SupplierSourceFunc adapts a function to SupplierSource.
type SupplierSourceFunc func(properties map[string]string) (*SupplierType, error)

func (f SupplierSourceFunc) Describe(p map[string]string) (*SupplierType, error) {
	return f(p)
}
