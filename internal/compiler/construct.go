package compiler

import (
	"context"
	"strings"

	"github.com/specialistvlad/floorplan/internal/config"
	"github.com/specialistvlad/floorplan/internal/ctxlog"
	"github.com/specialistvlad/floorplan/internal/node"
)

const (
	// responsibleTeamName names the child carrying a function's team link.
	responsibleTeamName = "team"
	// managingOfficeName names the child carrying a source's office link.
	managingOfficeName = "managing-office"
)

type linkKey struct {
	id         node.ID
	capability node.Capability
}

type pendingInit struct {
	node  *node.Node
	state node.State
}

// pendingLink is a configured reference waiting for the link phase.
type pendingLink struct {
	from       *node.Node
	capability node.Capability
	scope      *node.Node
	target     string
	kinds      []node.Kind
	failed     bool
}

func (r *Result) construct(ctx context.Context, m *config.Model) {
	root := r.graph.Root()
	r.inits = append(r.inits, pendingInit{root, &node.FloorState{}})

	for _, t := range m.Teams {
		n := r.add(root, node.KindTeam, t.Name, t.Location, &node.TeamState{Source: t.Source, Properties: t.Properties})
		r.expect(n, node.CapTeamOversight, root, t.Oversight, node.KindTeamOversight)
	}
	for _, o := range m.TeamOversights {
		r.add(root, node.KindTeamOversight, o.Name, o.Location, &node.TeamOversightState{Source: o.Source})
	}
	for _, s := range m.ExecutionStrategies {
		r.add(root, node.KindExecutionStrategy, s.Name, s.Location, &node.ExecutionStrategyState{Source: s.Source, Properties: s.Properties})
	}
	for _, s := range m.Suppliers {
		r.add(root, node.KindSupplier, s.Name, s.Location, &node.SupplierState{Source: s.Source, Properties: s.Properties})
	}
	for _, o := range m.Offices {
		r.constructOffice(root, o)
	}
	for _, s := range m.ManagedObjectSources {
		r.constructManagedObjectSource(root, s)
	}
	for _, mo := range m.ManagedObjects {
		scope := node.Scope(mo.Scope)
		if scope == "" {
			scope = node.ScopeProcess
		}
		n := r.add(root, node.KindManagedObject, mo.Name, mo.Location, &node.ManagedObjectState{Source: mo.Source, Scope: scope})
		for _, l := range mo.Dependencies {
			r.port(n, node.KindManagedObjectDependency, l, node.CapObject, root, node.KindManagedObject, node.KindInputManagedObject)
		}
	}
	for _, in := range m.InputManagedObjects {
		r.add(root, node.KindInputManagedObject, in.Name, in.Location, &node.InputManagedObjectState{BoundSource: in.BoundSource})
	}

	ctxlog.FromContext(ctx).Debug("Graph constructed.", "nodes", r.graph.Len(), "links", len(r.links))
}

func (r *Result) constructOffice(root *node.Node, o *config.Office) {
	office := r.add(root, node.KindOffice, o.Name, o.Location, &node.OfficeState{})
	r.expect(office, node.CapTeam, office, o.DefaultTeam, node.KindOfficeTeam)

	for _, l := range o.Teams {
		r.port(office, node.KindOfficeTeam, l, node.CapTeam, root, node.KindTeam)
	}
	for _, l := range o.Objects {
		r.port(office, node.KindOfficeObject, l, node.CapObject, root, node.KindManagedObject, node.KindInputManagedObject)
	}
	for _, l := range o.Inputs {
		r.port(office, node.KindOfficeInput, l, node.CapFlow, office, node.KindFunction)
	}
	for _, l := range o.Outputs {
		r.port(office, node.KindOfficeOutput, l, node.CapFlow, root, node.KindOfficeInput)
	}
	for _, f := range o.Functions {
		r.constructFunction(office, f)
	}
	for _, l := range o.Starts {
		r.port(office, node.KindOfficeStart, l, node.CapFlow, office, node.KindFunction)
	}
}

func (r *Result) constructFunction(office *node.Node, f *config.Function) {
	fn := r.add(office, node.KindFunction, f.Name, f.Location, &node.FunctionState{
		Source:             f.Source,
		Properties:         f.Properties,
		PreAdministration:  f.PreAdministration,
		PostAdministration: f.PostAdministration,
	})

	if f.Team != "" {
		team := r.add(fn, node.KindResponsibleTeam, responsibleTeamName, f.Location, &node.PortState{})
		r.expect(team, node.CapTeam, office, f.Team, node.KindOfficeTeam)
	}
	for _, l := range f.Objects {
		r.port(fn, node.KindFunctionObject, l, node.CapObject, office, node.KindOfficeObject)
	}
	for _, l := range f.Flows {
		r.port(fn, node.KindFunctionFlow, l, node.CapFlow, office, node.KindFunction, node.KindOfficeOutput)
	}
	for _, l := range f.Escalations {
		r.port(fn, node.KindEscalation, l, node.CapFlow, office, node.KindFunction, node.KindOfficeOutput)
	}
}

func (r *Result) constructManagedObjectSource(root *node.Node, s *config.ManagedObjectSource) {
	mos := r.add(root, node.KindManagedObjectSource, s.Name, s.Location, &node.ManagedObjectSourceState{
		Source:             s.Source,
		Properties:         s.Properties,
		Timeout:            s.Timeout,
		Supplier:           s.Supplier,
		Qualifier:          s.Qualifier,
		Type:               s.Type,
		InputManagedObject: s.InputManagedObject,
	})

	if s.Supplier != "" {
		if supplier := root.Child(s.Supplier, node.KindSupplier); supplier != nil {
			r.supplied[mos.ID()] = r.suppliedSource(supplier, s.Qualifier, s.Type, s.Location).ID()
		}
	}
	if s.ManagingOffice != "" {
		office := r.add(mos, node.KindManagingOffice, managingOfficeName, s.Location, &node.PortState{})
		r.expect(office, node.CapOffice, root, s.ManagingOffice, node.KindOffice)
	}
	for _, l := range s.Flows {
		r.port(mos, node.KindManagedObjectFlow, l, node.CapFlow, root, node.KindOfficeInput)
	}
	for _, l := range s.Teams {
		r.port(mos, node.KindManagedObjectTeam, l, node.CapTeam, root, node.KindTeam)
	}
	for _, l := range s.ExecutionStrategies {
		r.port(mos, node.KindManagedObjectExecutionStrategy, l, node.CapExecutionStrategy, root, node.KindExecutionStrategy)
	}
	for _, l := range s.FunctionDependencies {
		r.port(mos, node.KindManagedObjectFunctionDependency, l, node.CapObject, root, node.KindManagedObject, node.KindInputManagedObject)
	}
}

// suppliedSource returns the supplier child for (qualifier, type), creating
// it on first use so that every source drawing on the same entry shares it.
func (r *Result) suppliedSource(supplier *node.Node, qualifier, typ, location string) *node.Node {
	name := suppliedName(qualifier, typ)
	if n := supplier.Child(name, node.KindSuppliedManagedObjectSource); n != nil {
		return n
	}
	return r.add(supplier, node.KindSuppliedManagedObjectSource, name, location, &node.SuppliedManagedObjectSourceState{
		Qualifier: qualifier,
		Type:      typ,
	})
}

func suppliedName(qualifier, typ string) string {
	if qualifier == "" {
		return typ
	}
	return qualifier + "-" + typ
}

func (r *Result) add(parent *node.Node, kind node.Kind, name, location string, state node.State) *node.Node {
	n := r.graph.Add(parent.ID(), kind, name, location)
	r.inits = append(r.inits, pendingInit{n, state})
	return n
}

// port adds a link-carrying child for l and queues its reference.
func (r *Result) port(parent *node.Node, kind node.Kind, l *config.Link, c node.Capability, scope *node.Node, kinds ...node.Kind) *node.Node {
	n := r.add(parent, kind, l.Name, l.Location, &node.PortState{})
	r.expect(n, c, scope, l.Target, kinds...)
	return n
}

// expect queues a reference from `from` to target. An empty target leaves the
// node unlinked, which validation reports if the link is required.
func (r *Result) expect(from *node.Node, c node.Capability, scope *node.Node, target string, kinds ...node.Kind) {
	if strings.TrimSpace(target) == "" {
		return
	}
	r.links = append(r.links, &pendingLink{
		from:       from,
		capability: c,
		scope:      scope,
		target:     target,
		kinds:      kinds,
	})
}
