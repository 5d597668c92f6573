package typeload

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
)

func TestAssignable(t *testing.T) {
	conn := cty.Object(map[string]cty.Type{"url": cty.String})

	testCases := []struct {
		name string
		from cty.Type
		to   cty.Type
		want bool
	}{
		{name: "same primitive", from: cty.String, to: cty.String, want: true},
		{name: "any accepts everything", from: conn, to: cty.DynamicPseudoType, want: true},
		{name: "untyped slot accepts everything", from: cty.Bool, to: cty.NilType, want: true},
		{name: "no type satisfies nothing typed", from: cty.NilType, to: cty.String, want: false},
		{name: "number converts to string", from: cty.Number, to: cty.String, want: true},
		{name: "object to string fails", from: conn, to: cty.String, want: false},
		{name: "same object", from: conn, to: cty.Object(map[string]cty.Type{"url": cty.String}), want: true},
		{name: "object missing attribute", from: cty.EmptyObject, to: conn, want: false},
		{name: "list of numbers to list of strings", from: cty.List(cty.Number), to: cty.List(cty.String), want: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Assignable(tc.from, tc.to))
		})
	}
}

func TestImpliedType(t *testing.T) {
	type env struct {
		All map[string]string `cty:"all"`
	}

	got, err := ImpliedType(env{})
	require.NoError(t, err)
	assert.True(t, cty.Object(map[string]cty.Type{"all": cty.Map(cty.String)}).Equals(got))

	_, err = ImpliedType(make(chan int))
	assert.Error(t, err)
	assert.Panics(t, func() { MustImpliedType(func() {}) })
}

func TestFriendlyName(t *testing.T) {
	assert.Equal(t, "none", FriendlyName(cty.NilType))
	assert.Equal(t, "string", FriendlyName(cty.String))
}

func TestTypes_Lookups(t *testing.T) {
	mot := &ManagedObjectType{
		Dependencies:         []Dependency{{Name: "cache", Type: cty.String}},
		FunctionDependencies: []Dependency{{Name: "fd", Type: cty.DynamicPseudoType}},
		Flows:                []Flow{{Name: "tick", ArgumentType: cty.Number}},
		Teams:                []string{"worker"},
		ExecutionStrategies:  []string{"exec"},
	}
	_, ok := mot.Dependency("cache")
	assert.True(t, ok)
	_, ok = mot.Dependency("nope")
	assert.False(t, ok)
	_, ok = mot.FunctionDependency("fd")
	assert.True(t, ok)
	_, ok = mot.Flow("tick")
	assert.True(t, ok)
	assert.True(t, mot.HasTeam("worker"))
	assert.True(t, mot.HasExecutionStrategy("exec"))

	ft := &FunctionType{Objects: []Dependency{{Name: "db"}}, Flows: []Flow{{Name: "next"}}, Escalations: []string{"timeout"}}
	_, ok = ft.Object("db")
	assert.True(t, ok)
	_, ok = ft.Flow("next")
	assert.True(t, ok)
	assert.True(t, ft.HasEscalation("timeout"))

	st := &SupplierType{Supplied: []Supplied{{Qualifier: "primary", Type: "db", Source: "jdbc"}}}
	s, ok := st.Find("primary", "db")
	assert.True(t, ok)
	assert.Equal(t, "jdbc", s.Source)
	_, ok = st.Find("secondary", "db")
	assert.False(t, ok)
}

func TestParseKind(t *testing.T) {
	for k := KindManagedObjectSource; k <= KindTeamOversight; k++ {
		got, err := ParseKind(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}
	_, err := ParseKind("office")
	assert.Error(t, err)
}
