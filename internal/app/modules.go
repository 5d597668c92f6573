package app

import (
	"github.com/specialistvlad/floorplan/internal/registry"
	"github.com/specialistvlad/floorplan/modules/core"
	"github.com/specialistvlad/floorplan/modules/env_vars"
	"github.com/specialistvlad/floorplan/modules/http_client"
	"github.com/specialistvlad/floorplan/modules/print"
)

// coreModules is the definitive list of all modules that are compiled into
// the floorplan binary.
var coreModules = []registry.Module{
	&core.Module{},
	&env_vars.Module{},
	&print.Module{},
	&http_client.Module{},
}
