package typeload

import "fmt"

// Kind is the category of source a type is loaded for.
type Kind int

const (
	KindManagedObjectSource Kind = iota + 1
	KindFunction
	KindSupplier
	KindTeam
	KindExecutionStrategy
	KindTeamOversight
)

func (k Kind) String() string {
	switch k {
	case KindManagedObjectSource:
		return "managed_object_source"
	case KindFunction:
		return "function"
	case KindSupplier:
		return "supplier"
	case KindTeam:
		return "team"
	case KindExecutionStrategy:
		return "execution_strategy"
	case KindTeamOversight:
		return "team_oversight"
	default:
		return "unknown"
	}
}

// ParseKind is the inverse of Kind.String.
func ParseKind(s string) (Kind, error) {
	for k := KindManagedObjectSource; k <= KindTeamOversight; k++ {
		if k.String() == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown source kind %q", s)
}
