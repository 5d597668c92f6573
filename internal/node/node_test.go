package node

import (
	"testing"

	"github.com/specialistvlad/floorplan/internal/issues"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNode_InitialiseIsIdempotent(t *testing.T) {
	// --- Arrange ---
	ctx, logs := newTestContext(t)
	sink := issues.NewSink()
	g := NewGraph("floor")
	team := g.Add(g.Root().ID(), KindTeam, "workers", "")
	first := &TeamState{Source: "team.pool"}
	second := &TeamState{Source: "team.passive"}

	// --- Act ---
	got1 := team.Initialise(ctx, sink, first)
	got2 := team.Initialise(ctx, sink, second)

	// --- Assert ---
	assert.Same(t, first, got1)
	assert.Same(t, first, got2, "second initialise must return the pre-existing state")
	assert.Same(t, first, StateOf[*TeamState](team))
	assert.True(t, team.IsInitialised())
	assert.True(t, sink.Empty())
	assert.Contains(t, logs.String(), "Node already initialised")
}

func TestNode_InitialiseBlankName(t *testing.T) {
	ctx, _ := newTestContext(t)
	sink := issues.NewSink()
	g := NewGraph("floor")
	n := g.Add(g.Root().ID(), KindManagedObject, "", "main.hcl:9")

	n.Initialise(ctx, sink, &ManagedObjectState{Scope: ScopeProcess})

	require.Equal(t, 1, sink.Len())
	issue := sink.Issues()[0]
	assert.Equal(t, issues.CodeBlankName, issue.Code)
	assert.Equal(t, int(n.ID()), issue.NodeID)
	assert.Equal(t, "main.hcl:9", issue.Location)
	assert.True(t, n.IsInitialised(), "a blank node stays walkable")
}

func TestStateOf_ContractViolations(t *testing.T) {
	ctx, _ := newTestContext(t)
	g := NewGraph("floor")
	team := g.Add(g.Root().ID(), KindTeam, "workers", "")

	t.Run("uninitialised", func(t *testing.T) {
		defer func() {
			r := recover()
			require.NotNil(t, r)
			err, ok := r.(*ContractError)
			require.True(t, ok)
			assert.Contains(t, err.Error(), "accessed before initialisation")
		}()
		StateOf[*TeamState](team)
	})

	t.Run("wrong state type", func(t *testing.T) {
		team.Initialise(ctx, issues.NewSink(), &TeamState{})
		assert.Panics(t, func() { StateOf[*OfficeState](team) })
	})

	t.Run("nil state", func(t *testing.T) {
		other := g.Add(g.Root().ID(), KindTeam, "other", "")
		assert.Panics(t, func() { other.Initialise(ctx, issues.NewSink(), nil) })
	})
}

func TestNode_UnsupportedExtensionPoints(t *testing.T) {
	g := NewGraph("floor")
	obj := g.Add(g.Root().ID(), KindManagedObject, "db", "")

	assert.PanicsWithError(t, "override qualifier is not supported for ManagedObject nodes", func() {
		obj.OverrideQualifier("primary")
	})
	assert.PanicsWithError(t, "specific type is not supported for ManagedObject nodes", func() {
		obj.SpecificType("sql.DB")
	})
}

func TestScope_Valid(t *testing.T) {
	assert.True(t, ScopeThread.Valid())
	assert.False(t, Scope("request").Valid())
}
