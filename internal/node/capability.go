package node

// Capability identifies one kind of link a node may carry.
type Capability int

const (
	CapFlow Capability = iota + 1
	CapTeam
	CapObject
	CapExecutionStrategy
	CapOffice
	CapTeamOversight
)

// Capabilities lists every capability in a stable order.
var Capabilities = []Capability{CapFlow, CapTeam, CapObject, CapExecutionStrategy, CapOffice, CapTeamOversight}

func (c Capability) String() string {
	switch c {
	case CapFlow:
		return "flow"
	case CapTeam:
		return "team"
	case CapObject:
		return "object"
	case CapExecutionStrategy:
		return "execution-strategy"
	case CapOffice:
		return "office"
	case CapTeamOversight:
		return "team-oversight"
	default:
		return "unknown"
	}
}

// Role is how a kind takes part in a capability.
type Role int

const (
	// RoleNone means the kind neither carries nor terminates the capability.
	RoleNone Role = iota
	// RoleForward means the kind carries a link to another node.
	RoleForward
	// RoleTerminal means the kind is the final implementer of the capability.
	RoleTerminal
)

var roles = map[Kind]map[Capability]Role{
	KindOffice:                          {CapTeam: RoleForward, CapOffice: RoleTerminal},
	KindOfficeTeam:                      {CapTeam: RoleForward},
	KindOfficeObject:                    {CapObject: RoleForward},
	KindOfficeInput:                     {CapFlow: RoleForward},
	KindOfficeOutput:                    {CapFlow: RoleForward},
	KindOfficeStart:                     {CapFlow: RoleForward},
	KindFunction:                        {CapFlow: RoleTerminal},
	KindFunctionFlow:                    {CapFlow: RoleForward},
	KindEscalation:                      {CapFlow: RoleForward},
	KindFunctionObject:                  {CapObject: RoleForward},
	KindResponsibleTeam:                 {CapTeam: RoleForward},
	KindTeam:                            {CapTeam: RoleTerminal, CapTeamOversight: RoleForward},
	KindTeamOversight:                   {CapTeamOversight: RoleTerminal},
	KindExecutionStrategy:               {CapExecutionStrategy: RoleTerminal},
	KindManagingOffice:                  {CapOffice: RoleForward},
	KindManagedObjectFlow:               {CapFlow: RoleForward},
	KindManagedObjectTeam:               {CapTeam: RoleForward},
	KindManagedObjectExecutionStrategy:  {CapExecutionStrategy: RoleForward},
	KindManagedObjectFunctionDependency: {CapObject: RoleForward},
	KindManagedObject:                   {CapObject: RoleTerminal},
	KindManagedObjectDependency:         {CapObject: RoleForward},
	KindInputManagedObject:              {CapObject: RoleTerminal},
}

// RoleOf returns how kind k takes part in capability c.
func RoleOf(k Kind, c Capability) Role {
	return roles[k][c]
}

// Compatible reports whether a node of kind k may be the target of a c link.
func Compatible(k Kind, c Capability) bool {
	return RoleOf(k, c) != RoleNone
}
