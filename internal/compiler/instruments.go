package compiler

import (
	"github.com/specialistvlad/floorplan/internal/instrument"
	"github.com/specialistvlad/floorplan/internal/node"
)

// PossibleInstruments lists the entities that may be offered for management:
// every team and every managed object source whose type is instrumentable.
// Each object reports structural gauges.
func (r *Result) PossibleInstruments() []instrument.Possible {
	var out []instrument.Possible

	responsible := make(map[node.ID]int64)
	for _, fn := range r.graph.OfKind(node.KindFunction) {
		for _, port := range append(fn.ChildrenOf(node.KindResponsibleTeam), fn.Parent()) {
			if port.Linked(node.CapTeam) == nil {
				continue
			}
			if team, ok := r.target(port, node.CapTeam); ok {
				responsible[team.ID()]++
				break
			}
		}
	}
	for _, team := range r.graph.OfKind(node.KindTeam) {
		out = append(out, instrument.Possible{
			Type:   instrument.TypeTeam,
			Name:   team.QualifiedName(),
			Object: instrument.Gauges{"functions": responsible[team.ID()]},
		})
	}

	users := make(map[node.ID]int64)
	for _, mo := range r.graph.OfKind(node.KindManagedObject) {
		if mos, ok := r.sourceOf(mo); ok {
			users[mos.ID()]++
		}
	}
	for _, mos := range r.graph.OfKind(node.KindManagedObjectSource) {
		mt, ok := r.managedObjectType(mos)
		if !ok || !mt.Instrumentable {
			continue
		}
		out = append(out, instrument.Possible{
			Type: instrument.TypeManagedObjectSource,
			Name: mos.QualifiedName(),
			Object: instrument.Gauges{
				"flows":           int64(len(mos.ChildrenOf(node.KindManagedObjectFlow))),
				"managed_objects": users[mos.ID()],
			},
		})
	}
	return out
}
