package node

import (
	"testing"

	"github.com/specialistvlad/floorplan/internal/nodeid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGraph(t *testing.T) {
	g := NewGraph("floor")

	root := g.Root()
	require.NotNil(t, root)
	assert.Equal(t, KindOfficeFloor, root.Kind())
	assert.Equal(t, "floor", root.QualifiedName())
	assert.Nil(t, root.Parent())
	assert.Equal(t, 1, g.Len())
	assert.Nil(t, g.Node(NoID))
	assert.Nil(t, g.Node(99))
}

func TestGraph_Add(t *testing.T) {
	g := NewGraph("floor")
	office := g.Add(g.Root().ID(), KindOffice, "web", "main.hcl:1")
	fn := g.Add(office.ID(), KindFunction, "handle", "main.hcl:4")
	flow := g.Add(fn.ID(), KindFunctionFlow, "next", "")

	assert.Equal(t, "web", office.QualifiedName())
	assert.Equal(t, "web.handle", fn.QualifiedName())
	assert.Equal(t, "web.handle.next", flow.QualifiedName())
	assert.Equal(t, "main.hcl:4", fn.Location())
	assert.Same(t, office, fn.Parent())
	assert.Equal(t, 4, g.Len())
	assert.Equal(t, []*Node{g.Root(), office, fn, flow}, g.All())
	assert.Equal(t, []*Node{fn}, g.OfKind(KindFunction))

	t.Run("blank names get a placeholder qualified name", func(t *testing.T) {
		n := g.Add(office.ID(), KindOfficeTeam, "  ", "")
		assert.Equal(t, "web.<unnamed OfficeTeam>", n.QualifiedName())
	})

	t.Run("contract violations panic", func(t *testing.T) {
		assert.Panics(t, func() { g.Add(42, KindTeam, "x", "") })
		assert.Panics(t, func() { g.Add(g.Root().ID(), KindOfficeFloor, "x", "") })
	})
}

func TestNode_ChildrenIsFreshAndOrdered(t *testing.T) {
	g := NewGraph("floor")
	office := g.Add(g.Root().ID(), KindOffice, "web", "")
	a := g.Add(office.ID(), KindOfficeTeam, "a", "")
	b := g.Add(office.ID(), KindOfficeObject, "b", "")
	c := g.Add(office.ID(), KindOfficeTeam, "c", "")

	first := office.Children()
	require.Equal(t, []*Node{a, b, c}, first)

	first[0] = nil
	assert.Equal(t, []*Node{a, b, c}, office.Children(), "mutating the returned slice must not affect the node")
	assert.Equal(t, []*Node{a, c}, office.ChildrenOf(KindOfficeTeam))
	assert.Same(t, b, office.Child("b"))
	assert.Nil(t, office.Child("b", KindOfficeTeam))
}

func TestGraph_Lookup(t *testing.T) {
	g := NewGraph("floor")
	root := g.Root()
	office := g.Add(root.ID(), KindOffice, "web", "")
	input := g.Add(office.ID(), KindOfficeInput, "in", "")
	team := g.Add(root.ID(), KindTeam, "workers", "")

	testCases := []struct {
		name  string
		scope *Node
		ref   string
		kinds []Kind
		want  *Node
	}{
		{name: "top level", scope: root, ref: "workers", kinds: []Kind{KindTeam}, want: team},
		{name: "nested", scope: root, ref: "web.in", kinds: []Kind{KindOfficeInput}, want: input},
		{name: "relative to office", scope: office, ref: "in", want: input},
		{name: "wrong kind", scope: root, ref: "workers", kinds: []Kind{KindOffice}},
		{name: "missing intermediate", scope: root, ref: "api.in"},
		{name: "missing leaf", scope: root, ref: "web.out"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			addr, err := nodeid.Parse(tc.ref)
			require.NoError(t, err)
			assert.Same(t, tc.want, g.Lookup(tc.scope, addr, tc.kinds...))
		})
	}

	assert.Nil(t, g.Lookup(nil, nodeid.New("web")))
	assert.Nil(t, g.Lookup(root, nil))
}
