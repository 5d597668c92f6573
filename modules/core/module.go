// Package core registers the sources every office floor needs: teams,
// execution strategies, team oversights and a static supplier.
package core

import (
	"fmt"
	"sort"
	"strings"

	"github.com/specialistvlad/floorplan/internal/registry"
	"github.com/specialistvlad/floorplan/internal/typeload"
)

// Source names registered by this module.
const (
	TeamPassive     = "team.passive"
	TeamPool        = "team.pool"
	StrategyThreads = "strategy.threads"
	OversightNone   = "oversight.none"
	SupplierStatic  = "supplier.static"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register registers the module's sources with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterSource(typeload.KindTeam, TeamPassive, "runs functions on the invoking goroutine")
	r.RegisterSource(typeload.KindTeam, TeamPool, "runs functions on a fixed pool of workers")
	r.RegisterSource(typeload.KindExecutionStrategy, StrategyThreads, "starts a goroutine per execution")
	r.RegisterSource(typeload.KindTeamOversight, OversightNone, "does not oversee its team")
	r.RegisterSupplier(SupplierStatic, typeload.SupplierSourceFunc(DescribeStatic))
}

// DescribeStatic turns the supplier's properties into supplied entries.
// Each key is `qualifier/type` (or just `type`) and each value names the
// managed object source supplied under it.
func DescribeStatic(properties map[string]string) (*typeload.SupplierType, error) {
	keys := make([]string, 0, len(properties))
	for k := range properties {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	t := &typeload.SupplierType{}
	for _, key := range keys {
		qualifier, typ, found := strings.Cut(key, "/")
		if !found {
			qualifier, typ = "", key
		}
		if typ == "" {
			return nil, fmt.Errorf("supplied entry %q has no type", key)
		}
		t.Supplied = append(t.Supplied, typeload.Supplied{
			Qualifier: qualifier,
			Type:      typ,
			Source:    properties[key],
		})
	}
	return t, nil
}
