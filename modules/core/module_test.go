package core

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/specialistvlad/floorplan/internal/ctxlog"
	"github.com/specialistvlad/floorplan/internal/registry"
	"github.com/specialistvlad/floorplan/internal/typeload"
)

func TestModule_Register(t *testing.T) {
	r := registry.New(ctxlog.Discard(context.Background()))
	(&Module{}).Register(r)

	assert.Equal(t, []string{TeamPassive, TeamPool}, r.Names(typeload.KindTeam))
	require.NoError(t, r.CheckSource(typeload.KindExecutionStrategy, StrategyThreads))
	require.NoError(t, r.CheckSource(typeload.KindTeamOversight, OversightNone))

	st, err := r.LoadSupplierType(SupplierStatic, nil)
	require.NoError(t, err)
	assert.Empty(t, st.Supplied)
}

func TestDescribeStatic(t *testing.T) {
	testCases := []struct {
		name       string
		properties map[string]string
		want       []typeload.Supplied
		expectErr  string
	}{
		{
			name:       "qualified and unqualified entries in key order",
			properties: map[string]string{"primary/sql": "sql", "cache": "memory"},
			want: []typeload.Supplied{
				{Type: "cache", Source: "memory"},
				{Qualifier: "primary", Type: "sql", Source: "sql"},
			},
		},
		{name: "missing type", properties: map[string]string{"primary/": "sql"}, expectErr: `"primary/" has no type`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := DescribeStatic(tc.properties)
			if tc.expectErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.expectErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got.Supplied)
		})
	}
}
