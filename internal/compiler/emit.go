package compiler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"maps"

	"github.com/specialistvlad/floorplan/internal/build"
	"github.com/specialistvlad/floorplan/internal/ctxlog"
	"github.com/specialistvlad/floorplan/internal/issues"
	"github.com/specialistvlad/floorplan/internal/node"
	"github.com/specialistvlad/floorplan/internal/typeload"
)

// ErrAlreadyBuilt is returned when a pass is built a second time.
var ErrAlreadyBuilt = errors.New("compilation pass already built")

// emitter hands one pass to a builder.
type emitter struct {
	r       *Result
	b       build.Builder
	tracker *build.Tracker
	logger  *slog.Logger
}

// Build emits the graph into b. It refuses to run when the pass reported
// issues, returning the *issues.Error. Builder failures are reported as
// issues on the failing node and returned the same way once every entity has
// been offered.
func (r *Result) Build(ctx context.Context, b build.Builder) error {
	if !r.sink.Empty() {
		return fmt.Errorf("refusing to build: %w", r.sink.Err())
	}
	if r.built {
		return ErrAlreadyBuilt
	}
	r.built = true

	var err error
	r.phase(ctx, "build", func(ctx context.Context) {
		e := &emitter{
			r:       r,
			b:       r.tel.Builder(ctx, b),
			tracker: build.NewTracker(),
			logger:  ctxlog.FromContext(ctx),
		}
		e.emit()
		err = r.sink.Err()
	})
	return err
}

func (e *emitter) emit() {
	g := e.r.graph
	for _, n := range g.OfKind(node.KindTeam) {
		e.team(n)
	}
	for _, n := range g.OfKind(node.KindExecutionStrategy) {
		st := node.StateOf[*node.ExecutionStrategyState](n)
		e.call(n, build.OpAddExecutionStrategy, e.b.AddExecutionStrategy(build.ExecutionStrategySpec{
			Name:       n.QualifiedName(),
			Source:     st.Source,
			Properties: st.Properties,
		}))
	}
	for _, n := range g.OfKind(node.KindOffice) {
		e.call(n, build.OpAddOffice, e.b.AddOffice(build.OfficeSpec{
			Name: n.QualifiedName(),
			Team: e.targetName(n, node.CapTeam),
		}))
	}
	for _, n := range g.OfKind(node.KindManagedObjectSource) {
		e.managedObjectSource(n)
	}
	objects, byName := e.r.objectGraph()
	order, err := objects.TopologicalOrder()
	if err != nil {
		// Validation reports cycles and Build refuses passes with issues.
		panic(err)
	}
	for _, name := range order {
		e.object(byName[name])
	}
	for _, n := range g.OfKind(node.KindFunction) {
		e.managedFunction(n)
	}
	for _, n := range g.OfKind(node.KindOfficeStart) {
		fn, ok := e.r.target(n, node.CapFlow)
		if !ok {
			continue
		}
		e.call(n, build.OpAddStartupFunction, e.b.AddStartupFunction(build.StartupSpec{
			Office:   n.Parent().QualifiedName(),
			Function: fn.Name(),
		}))
	}
}

func (e *emitter) team(n *node.Node) {
	st := node.StateOf[*node.TeamState](n)
	e.call(n, build.OpAddTeam, e.b.AddTeam(build.TeamSpec{
		Name:       n.QualifiedName(),
		Source:     st.Source,
		Properties: st.Properties,
		Oversight:  e.targetName(n, node.CapTeamOversight),
	}))
}

func (e *emitter) managedObjectSource(n *node.Node) {
	if !e.tracker.Mark(build.CategoryManagedObjectSource, n.ID()) {
		return
	}
	st := node.StateOf[*node.ManagedObjectSourceState](n)
	spec := build.ManagedObjectSourceSpec{
		Name:                 n.QualifiedName(),
		Source:               st.Source,
		Properties:           st.Properties,
		Timeout:              st.Timeout,
		Flows:                e.bindings(n, node.KindManagedObjectFlow, node.CapFlow),
		Teams:                e.bindings(n, node.KindManagedObjectTeam, node.CapTeam),
		ExecutionStrategies:  e.bindings(n, node.KindManagedObjectExecutionStrategy, node.CapExecutionStrategy),
		FunctionDependencies: e.bindings(n, node.KindManagedObjectFunctionDependency, node.CapObject),
	}
	if st.Supplier != "" {
		if entry, ok := e.r.suppliedEntry(n); ok {
			spec.Source = entry.Source
			spec.Properties = mergeProperties(entry.Properties, st.Properties)
		}
	}
	for _, office := range n.ChildrenOf(node.KindManagingOffice) {
		spec.ManagingOffice = e.targetName(office, node.CapOffice)
	}
	e.call(n, build.OpBindManagedObjectSource, e.b.BindManagedObjectSource(spec))
}

// managedObject emits the source and every dependency of n before n.
func (e *emitter) managedObject(n *node.Node) {
	if !e.tracker.Mark(build.CategoryManagedObject, n.ID()) {
		return
	}
	mos, _ := e.r.sourceOf(n)
	e.managedObjectSource(mos)

	for _, dep := range n.ChildrenOf(node.KindManagedObjectDependency) {
		if target, ok := e.r.target(dep, node.CapObject); ok {
			e.object(target)
		}
	}

	st := node.StateOf[*node.ManagedObjectState](n)
	e.call(n, build.OpBindManagedObject, e.b.BindManagedObject(build.ManagedObjectSpec{
		Name:         n.QualifiedName(),
		Source:       mos.QualifiedName(),
		Scope:        string(st.Scope),
		Dependencies: e.bindings(n, node.KindManagedObjectDependency, node.CapObject),
	}))
}

// inputManagedObject emits every feeding source before n.
func (e *emitter) inputManagedObject(n *node.Node) {
	if !e.tracker.Mark(build.CategoryInputManagedObject, n.ID()) {
		return
	}
	var sources []string
	for _, mos := range e.r.feeders(n) {
		e.managedObjectSource(mos)
		sources = append(sources, mos.QualifiedName())
	}
	bound, _ := e.r.sourceOf(n)
	e.call(n, build.OpBindInputManagedObject, e.b.BindInputManagedObject(build.InputManagedObjectSpec{
		Name:        n.QualifiedName(),
		BoundSource: bound.QualifiedName(),
		Sources:     sources,
	}))
}

func (e *emitter) object(n *node.Node) {
	switch n.Kind() {
	case node.KindManagedObject:
		e.managedObject(n)
	case node.KindInputManagedObject:
		e.inputManagedObject(n)
	}
}

// managedFunction emits the objects n uses before n, then its
// administration duties.
func (e *emitter) managedFunction(n *node.Node) {
	if !e.tracker.Mark(build.CategoryManagedFunction, n.ID()) {
		return
	}
	for _, obj := range n.ChildrenOf(node.KindFunctionObject) {
		if target, ok := e.r.target(obj, node.CapObject); ok {
			e.object(target)
		}
	}

	st := node.StateOf[*node.FunctionState](n)
	ft, _ := e.r.functionType(n)
	office := n.Parent()

	team := ""
	for _, t := range n.ChildrenOf(node.KindResponsibleTeam) {
		team = e.targetName(t, node.CapTeam)
	}
	if team == "" {
		team = e.targetName(office, node.CapTeam)
	}

	spec := build.ManagedFunctionSpec{
		Office:      office.QualifiedName(),
		Name:        n.Name(),
		Source:      st.Source,
		Team:        team,
		Parameter:   parameterName(ft),
		Objects:     e.bindings(n, node.KindFunctionObject, node.CapObject),
		Flows:       e.bindings(n, node.KindFunctionFlow, node.CapFlow),
		Escalations: e.bindings(n, node.KindEscalation, node.CapFlow),
	}
	if !e.call(n, build.OpBindManagedFunction, e.b.BindManagedFunction(spec)) {
		return
	}

	for _, duty := range st.PreAdministration {
		e.call(n, build.OpLinkPreAdministration, e.b.LinkPreAdministration(build.AdministrationSpec{
			Function: n.QualifiedName(),
			Duty:     duty,
		}))
	}
	for _, duty := range st.PostAdministration {
		e.call(n, build.OpLinkPostAdministration, e.b.LinkPostAdministration(build.AdministrationSpec{
			Function: n.QualifiedName(),
			Duty:     duty,
		}))
	}
}

// call reports a builder failure on n and returns whether the call succeeded.
func (e *emitter) call(n *node.Node, op build.Op, err error) bool {
	if err != nil {
		e.r.sink.AddCause(n, issues.CodeBuild, err, "builder rejected %s", op)
		return false
	}
	e.logger.Debug("Entity built.", "node", n.QualifiedName(), "operation", string(op))
	return true
}

// bindings lists the children of n of kind with the qualified names of
// their resolved targets.
func (e *emitter) bindings(n *node.Node, kind node.Kind, c node.Capability) []build.Binding {
	var out []build.Binding
	for _, child := range n.ChildrenOf(kind) {
		out = append(out, build.Binding{Name: child.Name(), Target: e.targetName(child, c)})
	}
	return out
}

// targetName is the qualified name of n's resolved c target, or empty when
// n is not linked for c.
func (e *emitter) targetName(n *node.Node, c node.Capability) string {
	if n.Linked(c) == nil {
		return ""
	}
	if target, ok := e.r.target(n, c); ok {
		return target.QualifiedName()
	}
	return ""
}

func parameterName(ft *typeload.FunctionType) string {
	if ft == nil {
		return ""
	}
	if p := typeload.FriendlyName(ft.Parameter); p != "none" {
		return p
	}
	return ""
}

// mergeProperties overlays configured properties on the supplier's.
func mergeProperties(base, overlay map[string]string) map[string]string {
	if len(base) == 0 && len(overlay) == 0 {
		return nil
	}
	out := make(map[string]string, len(base)+len(overlay))
	maps.Copy(out, base)
	maps.Copy(out, overlay)
	return out
}
