package compiler

import (
	"context"
	"strings"

	"github.com/zclconf/go-cty/cty"

	"github.com/specialistvlad/floorplan/internal/ctxlog"
	"github.com/specialistvlad/floorplan/internal/dag"
	"github.com/specialistvlad/floorplan/internal/issues"
	"github.com/specialistvlad/floorplan/internal/node"
	"github.com/specialistvlad/floorplan/internal/typeload"
)

// validate loads the type of every element and checks the configuration
// against it. Types are loaded on demand and cached for the build phase.
func (r *Result) validate(ctx context.Context) {
	for _, n := range r.graph.All() {
		switch n.Kind() {
		case node.KindTeam:
			r.validateTeam(n)
		case node.KindTeamOversight:
			r.checkSource(n, typeload.KindTeamOversight, node.StateOf[*node.TeamOversightState](n).Source)
		case node.KindExecutionStrategy:
			r.checkSource(n, typeload.KindExecutionStrategy, node.StateOf[*node.ExecutionStrategyState](n).Source)
		case node.KindSupplier:
			r.supplierType(n)
		case node.KindSuppliedManagedObjectSource:
			r.managedObjectType(n)
		case node.KindOffice:
			r.validateOffice(n)
		case node.KindFunction:
			r.validateFunction(n)
		case node.KindManagedObjectSource:
			r.validateManagedObjectSource(n)
		case node.KindManagedObject:
			r.validateManagedObject(n)
		case node.KindInputManagedObject:
			r.validateInputManagedObject(n)
		}
	}
	r.checkDependencyCycles()

	ctxlog.FromContext(ctx).Debug("Types loaded.", "loads", r.cc.Loads())
}

func (r *Result) validateTeam(team *node.Node) {
	st := node.StateOf[*node.TeamState](team)
	r.checkSource(team, typeload.KindTeam, st.Source)
	if team.Linked(node.CapTeamOversight) != nil {
		r.target(team, node.CapTeamOversight)
	}
}

func (r *Result) validateOffice(office *node.Node) {
	if office.Linked(node.CapTeam) != nil {
		r.target(office, node.CapTeam)
	}
	for _, c := range office.Children() {
		switch c.Kind() {
		case node.KindOfficeTeam:
			r.target(c, node.CapTeam)
		case node.KindOfficeObject:
			if target, ok := r.target(c, node.CapObject); ok {
				r.objectType(target)
			}
		case node.KindOfficeInput, node.KindOfficeOutput, node.KindOfficeStart:
			r.target(c, node.CapFlow)
		}
	}
}

func (r *Result) validateFunction(fn *node.Node) {
	st := node.StateOf[*node.FunctionState](fn)
	ft, typed := r.functionType(fn)

	for _, team := range fn.ChildrenOf(node.KindResponsibleTeam) {
		r.target(team, node.CapTeam)
	}

	for _, obj := range fn.ChildrenOf(node.KindFunctionObject) {
		target, linked := r.target(obj, node.CapObject)
		if !typed {
			continue
		}
		dep, declared := ft.Object(obj.Name())
		if !declared {
			r.sink.Add(obj, issues.CodeUnknownMember, "object %q is not declared by function source %q", obj.Name(), st.Source)
			continue
		}
		if linked {
			r.checkObject(obj, target, dep.Type)
		}
	}

	for _, flow := range fn.ChildrenOf(node.KindFunctionFlow) {
		target, linked := r.target(flow, node.CapFlow)
		if !typed {
			continue
		}
		f, declared := ft.Flow(flow.Name())
		if !declared {
			r.sink.Add(flow, issues.CodeUnknownMember, "flow %q is not declared by function source %q", flow.Name(), st.Source)
			continue
		}
		if linked {
			r.checkArgument(flow, f.ArgumentType, target)
		}
	}

	for _, esc := range fn.ChildrenOf(node.KindEscalation) {
		target, linked := r.target(esc, node.CapFlow)
		if !typed {
			continue
		}
		if !ft.HasEscalation(esc.Name()) {
			r.sink.Add(esc, issues.CodeUnknownMember, "escalation %q is not declared by function source %q", esc.Name(), st.Source)
			continue
		}
		if linked {
			r.checkArgument(esc, cty.DynamicPseudoType, target)
		}
	}

	if typed {
		for _, dep := range ft.Objects {
			if fn.Child(dep.Name, node.KindFunctionObject) == nil {
				r.sink.Add(fn, issues.CodeMissingLink, "object %q is not configured", dep.Name)
			}
		}
		for _, f := range ft.Flows {
			if fn.Child(f.Name, node.KindFunctionFlow) == nil {
				r.sink.Add(fn, issues.CodeMissingLink, "flow %q is not configured", f.Name)
			}
		}
	}

	for _, duty := range append(append([]string(nil), st.PreAdministration...), st.PostAdministration...) {
		if strings.TrimSpace(duty) == "" {
			r.sink.Add(fn, issues.CodeInvalidConfig, "administration duty must have a name")
		}
	}
}

func (r *Result) validateManagedObjectSource(mos *node.Node) {
	st := node.StateOf[*node.ManagedObjectSourceState](mos)
	if st.Timeout < 0 {
		r.sink.Add(mos, issues.CodeInvalidConfig, "timeout must not be negative, got %s", st.Timeout)
	}
	if st.Source != "" && st.Supplier != "" {
		r.sink.Add(mos, issues.CodeInvalidConfig, "source %q and supplier %q are mutually exclusive", st.Source, st.Supplier)
	}
	if st.InputManagedObject != "" && r.graph.Root().Child(st.InputManagedObject, node.KindInputManagedObject) == nil {
		r.sink.Add(mos, issues.CodeUnknownTarget, "unknown input managed object %q", st.InputManagedObject)
	}

	mt, typed := r.managedObjectType(mos)

	for _, office := range mos.ChildrenOf(node.KindManagingOffice) {
		r.target(office, node.CapOffice)
	}

	for _, flow := range mos.ChildrenOf(node.KindManagedObjectFlow) {
		target, linked := r.target(flow, node.CapFlow)
		if !typed {
			continue
		}
		f, declared := mt.Flow(flow.Name())
		if !declared {
			r.sink.Add(flow, issues.CodeUnknownMember, "flow %q is not declared by %s", flow.Name(), mos.QualifiedName())
			continue
		}
		if linked {
			r.checkArgument(flow, f.ArgumentType, target)
		}
	}

	for _, team := range mos.ChildrenOf(node.KindManagedObjectTeam) {
		r.target(team, node.CapTeam)
		if typed && !mt.HasTeam(team.Name()) {
			r.sink.Add(team, issues.CodeUnknownMember, "team %q is not declared by %s", team.Name(), mos.QualifiedName())
		}
	}

	for _, strategy := range mos.ChildrenOf(node.KindManagedObjectExecutionStrategy) {
		r.target(strategy, node.CapExecutionStrategy)
		if typed && !mt.HasExecutionStrategy(strategy.Name()) {
			r.sink.Add(strategy, issues.CodeUnknownMember, "execution strategy %q is not declared by %s", strategy.Name(), mos.QualifiedName())
		}
	}

	for _, dep := range mos.ChildrenOf(node.KindManagedObjectFunctionDependency) {
		target, linked := r.target(dep, node.CapObject)
		if !typed {
			continue
		}
		d, declared := mt.FunctionDependency(dep.Name())
		if !declared {
			r.sink.Add(dep, issues.CodeUnknownMember, "function dependency %q is not declared by %s", dep.Name(), mos.QualifiedName())
			continue
		}
		if linked {
			r.checkObject(dep, target, d.Type)
		}
	}

	if !typed {
		return
	}
	for _, f := range mt.Flows {
		if mos.Child(f.Name, node.KindManagedObjectFlow) == nil {
			r.sink.Add(mos, issues.CodeMissingLink, "flow %q is not configured", f.Name)
		}
	}
	if len(mt.Flows) > 0 && len(mos.ChildrenOf(node.KindManagingOffice)) == 0 {
		r.sink.Add(mos, issues.CodeMissingLink, "a managing office is required to handle its flows")
	}
	for _, name := range mt.Teams {
		if mos.Child(name, node.KindManagedObjectTeam) == nil {
			r.sink.Add(mos, issues.CodeMissingLink, "team %q is not configured", name)
		}
	}
	for _, name := range mt.ExecutionStrategies {
		if mos.Child(name, node.KindManagedObjectExecutionStrategy) == nil {
			r.sink.Add(mos, issues.CodeMissingLink, "execution strategy %q is not configured", name)
		}
	}
	for _, d := range mt.FunctionDependencies {
		if mos.Child(d.Name, node.KindManagedObjectFunctionDependency) == nil {
			r.sink.Add(mos, issues.CodeMissingLink, "function dependency %q is not configured", d.Name)
		}
	}
}

func (r *Result) validateManagedObject(mo *node.Node) {
	st := node.StateOf[*node.ManagedObjectState](mo)
	if !st.Scope.Valid() {
		r.sink.Add(mo, issues.CodeInvalidConfig, "unknown scope %q, expected process, thread or function", st.Scope)
	}

	var mt *typeload.ManagedObjectType
	typed := false
	if mos, ok := r.sourceOf(mo); ok {
		mt, typed = r.managedObjectType(mos)
	}

	for _, dep := range mo.ChildrenOf(node.KindManagedObjectDependency) {
		target, linked := r.target(dep, node.CapObject)
		if !typed {
			continue
		}
		d, declared := mt.Dependency(dep.Name())
		if !declared {
			r.sink.Add(dep, issues.CodeUnknownMember, "dependency %q is not declared by the source of %s", dep.Name(), mo.QualifiedName())
			continue
		}
		if linked {
			r.checkObject(dep, target, d.Type)
		}
	}

	if !typed {
		return
	}
	for _, d := range mt.Dependencies {
		if mo.Child(d.Name, node.KindManagedObjectDependency) == nil {
			r.sink.Add(mo, issues.CodeMissingLink, "dependency %q is not configured", d.Name)
		}
	}
}

// validateInputManagedObject resolves the bound source and checks that every
// other feeding source provides a compatible object.
func (r *Result) validateInputManagedObject(in *node.Node) {
	bound, ok := r.sourceOf(in)
	if !ok {
		return
	}
	want, ok := r.objectType(in)
	if !ok {
		return
	}
	for _, mos := range r.feeders(in) {
		if mos == bound {
			continue
		}
		mt, typed := r.managedObjectType(mos)
		if typed && !typeload.Assignable(mt.ObjectType, want) {
			r.sink.Add(mos, issues.CodeTypeMismatch, "inputs %s as %s but its bound source provides %s",
				in.QualifiedName(), typeload.FriendlyName(mt.ObjectType), typeload.FriendlyName(want))
		}
	}
}

// checkObject verifies that target provides an object assignable to want.
func (r *Result) checkObject(port, target *node.Node, want cty.Type) {
	got, ok := r.objectType(target)
	if !ok {
		return
	}
	if !typeload.Assignable(got, want) {
		r.sink.Add(port, issues.CodeTypeMismatch, "%s provides %s but %s is required",
			target.QualifiedName(), typeload.FriendlyName(got), typeload.FriendlyName(want))
	}
}

// checkArgument verifies that fn accepts what a flow passes.
func (r *Result) checkArgument(port *node.Node, argument cty.Type, fn *node.Node) {
	ft, ok := r.functionType(fn)
	if !ok {
		return
	}
	if !typeload.Assignable(argument, ft.Parameter) {
		r.sink.Add(port, issues.CodeTypeMismatch, "%s takes %s but the flow passes %s",
			fn.QualifiedName(), typeload.FriendlyName(ft.Parameter), typeload.FriendlyName(argument))
	}
}

// objectGraph is the dependency graph of managed and input managed objects,
// keyed by qualified name. An edge runs from a dependency to its dependent.
func (r *Result) objectGraph() (*dag.Graph, map[string]*node.Node) {
	g := dag.New()
	byName := make(map[string]*node.Node)
	objects := append(r.graph.OfKind(node.KindManagedObject), r.graph.OfKind(node.KindInputManagedObject)...)
	for _, n := range objects {
		if _, ok := byName[n.QualifiedName()]; !ok {
			byName[n.QualifiedName()] = n
			g.AddNode(n.QualifiedName())
		}
	}
	for _, mo := range r.graph.OfKind(node.KindManagedObject) {
		for _, dep := range mo.ChildrenOf(node.KindManagedObjectDependency) {
			target, ok := r.target(dep, node.CapObject)
			if !ok {
				continue
			}
			// Both ends are registered above.
			_ = g.AddEdge(target.QualifiedName(), mo.QualifiedName())
		}
	}
	return g, byName
}

// checkDependencyCycles reports one issue per dependency cycle found among
// managed objects.
func (r *Result) checkDependencyCycles() {
	g, byName := r.objectGraph()
	for _, cycle := range g.DetectAllCycles() {
		r.sink.Add(byName[cycle.Path[0]], issues.CodeDependencyCycle,
			"managed object dependencies are cyclic: %s", strings.Join(cycle.Path, " -> "))
	}
}
