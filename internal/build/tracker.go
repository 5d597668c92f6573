package build

import "github.com/specialistvlad/floorplan/internal/node"

// Category groups the entities the tracker deduplicates.
type Category int

const (
	CategoryManagedObjectSource Category = iota + 1
	CategoryManagedObject
	CategoryInputManagedObject
	CategoryManagedFunction
)

func (c Category) String() string {
	switch c {
	case CategoryManagedObjectSource:
		return "managed_object_source"
	case CategoryManagedObject:
		return "managed_object"
	case CategoryInputManagedObject:
		return "input_managed_object"
	case CategoryManagedFunction:
		return "managed_function"
	default:
		return "unknown"
	}
}

// Tracker records which nodes have been handed to the builder in one pass.
// A node is marked before its upstream dependencies are built, so recursive
// requests for it return immediately instead of emitting it twice.
type Tracker struct {
	built map[Category]map[node.ID]struct{}
}

// NewTracker creates an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{built: make(map[Category]map[node.ID]struct{})}
}

// Mark records id under category and reports whether it was not marked yet.
func (t *Tracker) Mark(category Category, id node.ID) bool {
	set, ok := t.built[category]
	if !ok {
		set = make(map[node.ID]struct{})
		t.built[category] = set
	}
	if _, done := set[id]; done {
		return false
	}
	set[id] = struct{}{}
	return true
}

// Built reports whether id is marked under category.
func (t *Tracker) Built(category Category, id node.ID) bool {
	_, ok := t.built[category][id]
	return ok
}

// Len returns how many nodes are marked under category.
func (t *Tracker) Len(category Category) int {
	return len(t.built[category])
}
