package env_vars

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"

	"github.com/specialistvlad/floorplan/internal/ctxlog"
	"github.com/specialistvlad/floorplan/internal/registry"
)

func TestDescribe(t *testing.T) {
	r := registry.New(ctxlog.Discard(context.Background()))
	(&Module{}).Register(r)

	mt, err := r.LoadManagedObjectType(SourceName, map[string]string{"prefix": "APP_"})
	require.NoError(t, err)
	assert.True(t, mt.ObjectType.Equals(cty.Object(map[string]cty.Type{"all": cty.Map(cty.String)})))

	_, err = r.LoadManagedObjectType(SourceName, map[string]string{"prefix": "app_"})
	assert.ErrorContains(t, err, `prefix "app_" must be upper case`)
}
