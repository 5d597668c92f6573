// internal/nodeid/address_test.go
package nodeid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddress_String(t *testing.T) {
	testCases := []struct {
		name        string
		addr        *Address
		expectedStr string
	}{
		{name: "single segment", addr: New("workers"), expectedStr: "workers"},
		{name: "office function", addr: New("web", "handle"), expectedStr: "web.handle"},
		{name: "nil address", addr: nil, expectedStr: ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expectedStr, tc.addr.String())
		})
	}
}

func TestAddress_RoundTrip(t *testing.T) {
	for _, id := range []string{"a.b.c", "web.handle.next", "primary-db"} {
		t.Run(id, func(t *testing.T) {
			addr, err := Parse(id)
			require.NoError(t, err)
			assert.Equal(t, id, addr.String())

			again, err := Parse(addr.String())
			require.NoError(t, err)
			assert.True(t, addr.Equal(again))
		})
	}
}

func TestAddress_Equal(t *testing.T) {
	a1, _ := Parse("web.handle")
	a2, _ := Parse("web.handle")
	a3, _ := Parse("web.other")

	assert.True(t, a1.Equal(a2))
	assert.False(t, a1.Equal(a3))
	assert.False(t, a1.Equal(nil))
	assert.False(t, (*Address)(nil).Equal(a1))
	assert.True(t, (*Address)(nil).Equal(nil))
}

func TestAddress_Navigation(t *testing.T) {
	addr := New("web", "handle")

	assert.Equal(t, "handle", addr.Last())
	assert.Equal(t, "web", addr.Parent().String())
	assert.Nil(t, addr.Parent().Parent())
	assert.Equal(t, "web.handle.next", addr.Child("next").String())
	assert.Equal(t, "web.handle", addr.String(), "Child must not mutate the receiver")
	assert.Equal(t, "x", (*Address)(nil).Child("x").String())
	assert.Equal(t, "", (*Address)(nil).Last())
}
