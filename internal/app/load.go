package app

import (
	"context"
	"fmt"

	"github.com/specialistvlad/floorplan/internal/config"
	"github.com/specialistvlad/floorplan/internal/ctxlog"
	"github.com/specialistvlad/floorplan/internal/fsutil"
	"github.com/specialistvlad/floorplan/internal/hclconfig"
	"github.com/specialistvlad/floorplan/internal/yamlconfig"
)

// formats pairs each configuration loader with the extensions it reads.
var formats = []struct {
	loader     config.Loader
	extensions []string
}{
	{hclconfig.NewLoader(), []string{hclconfig.Extension}},
	{yamlconfig.NewLoader(), yamlconfig.Extensions},
}

// Load reads every supported configuration file under paths into one model.
// It returns config.ErrNoSources when no file of any format was found.
func Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)

	var models []*config.Model
	total := 0
	for _, f := range formats {
		files, err := fsutil.Collect(paths, f.extensions...)
		if err != nil {
			return nil, err
		}
		if len(files) == 0 {
			continue
		}
		total += len(files)
		m, err := f.loader.Load(ctx, files...)
		if err != nil {
			return nil, err
		}
		models = append(models, m)
	}

	if total == 0 {
		return nil, fmt.Errorf("%w in %v", config.ErrNoSources, paths)
	}
	logger.Debug("Configuration loaded and translated into unified model.", "files", total)
	return config.Merge(models...), nil
}
