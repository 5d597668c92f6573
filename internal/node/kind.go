package node

// Kind is the closed set of node variants.
type Kind int

const (
	KindUnknown Kind = iota
	KindOfficeFloor
	KindOffice
	KindOfficeTeam
	KindOfficeObject
	KindOfficeInput
	KindOfficeOutput
	KindOfficeStart
	KindFunction
	KindFunctionFlow
	KindEscalation
	KindFunctionObject
	KindResponsibleTeam
	KindTeam
	KindTeamOversight
	KindExecutionStrategy
	KindManagedObjectSource
	KindManagingOffice
	KindManagedObjectFlow
	KindManagedObjectTeam
	KindManagedObjectExecutionStrategy
	KindManagedObjectFunctionDependency
	KindManagedObject
	KindManagedObjectDependency
	KindInputManagedObject
	KindSupplier
	KindSuppliedManagedObjectSource
)

func (k Kind) String() string {
	switch k {
	case KindOfficeFloor:
		return "OfficeFloor"
	case KindOffice:
		return "Office"
	case KindOfficeTeam:
		return "OfficeTeam"
	case KindOfficeObject:
		return "OfficeObject"
	case KindOfficeInput:
		return "OfficeInput"
	case KindOfficeOutput:
		return "OfficeOutput"
	case KindOfficeStart:
		return "OfficeStart"
	case KindFunction:
		return "Function"
	case KindFunctionFlow:
		return "FunctionFlow"
	case KindEscalation:
		return "Escalation"
	case KindFunctionObject:
		return "FunctionObject"
	case KindResponsibleTeam:
		return "ResponsibleTeam"
	case KindTeam:
		return "Team"
	case KindTeamOversight:
		return "TeamOversight"
	case KindExecutionStrategy:
		return "ExecutionStrategy"
	case KindManagedObjectSource:
		return "ManagedObjectSource"
	case KindManagingOffice:
		return "ManagingOffice"
	case KindManagedObjectFlow:
		return "ManagedObjectFlow"
	case KindManagedObjectTeam:
		return "ManagedObjectTeam"
	case KindManagedObjectExecutionStrategy:
		return "ManagedObjectExecutionStrategy"
	case KindManagedObjectFunctionDependency:
		return "ManagedObjectFunctionDependency"
	case KindManagedObject:
		return "ManagedObject"
	case KindManagedObjectDependency:
		return "ManagedObjectDependency"
	case KindInputManagedObject:
		return "InputManagedObject"
	case KindSupplier:
		return "Supplier"
	case KindSuppliedManagedObjectSource:
		return "SuppliedManagedObjectSource"
	default:
		return "Unknown"
	}
}
