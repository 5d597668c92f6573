package hclconfig

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/specialistvlad/floorplan/internal/config"
	"github.com/specialistvlad/floorplan/internal/ctxlog"
	"github.com/specialistvlad/floorplan/internal/fsutil"
)

// Extension is the file extension the loader picks up.
const Extension = ".hcl"

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL configuration loader.
func NewLoader() *Loader {
	return &Loader{}
}

var _ config.Loader = (*Loader)(nil)

// Load parses every .hcl file under paths and translates all blocks into a
// single model. Blocks from different files are appended in file order.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	files, err := fsutil.Collect(paths, Extension)
	if err != nil {
		return nil, err
	}
	logger.Debug("Discovered HCL files.", "count", len(files))

	parser := hclparse.NewParser()
	model := &config.Model{}

	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}

		var root fileRoot
		diags = gohcl.DecodeBody(hclFile.Body, nil, &root)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode HCL file %s: %w", file, diags)
		}

		if err := l.translateFile(ctx, &root, model); err != nil {
			return nil, fmt.Errorf("in HCL file %s: %w", file, err)
		}
	}

	logger.Debug("HCL loading complete.",
		"files", len(files),
		"offices", len(model.Offices),
		"managed_object_sources", len(model.ManagedObjectSources),
		"managed_objects", len(model.ManagedObjects),
		"teams", len(model.Teams),
	)
	return model, nil
}

func (l *Loader) translateFile(ctx context.Context, root *fileRoot, model *config.Model) error {
	for _, b := range root.Teams {
		team, err := l.translateTeam(b)
		if err != nil {
			return err
		}
		model.Teams = append(model.Teams, team)
	}
	for _, b := range root.TeamOversights {
		if err := checkRemain(b.Remain, fmt.Sprintf("team_oversight '%s'", b.Name)); err != nil {
			return err
		}
		model.TeamOversights = append(model.TeamOversights, &config.TeamOversight{
			Name:     b.Name,
			Source:   b.Source,
			Location: location(b.Remain),
		})
	}
	for _, b := range root.ExecutionStrategies {
		if err := checkRemain(b.Remain, fmt.Sprintf("execution_strategy '%s'", b.Name)); err != nil {
			return err
		}
		model.ExecutionStrategies = append(model.ExecutionStrategies, &config.ExecutionStrategy{
			Name:       b.Name,
			Source:     b.Source,
			Properties: b.Properties,
			Location:   location(b.Remain),
		})
	}
	for _, b := range root.Suppliers {
		if err := checkRemain(b.Remain, fmt.Sprintf("supplier '%s'", b.Name)); err != nil {
			return err
		}
		model.Suppliers = append(model.Suppliers, &config.Supplier{
			Name:       b.Name,
			Source:     b.Source,
			Properties: b.Properties,
			Location:   location(b.Remain),
		})
	}
	for _, b := range root.ManagedObjectSources {
		mos, err := l.translateManagedObjectSource(ctx, b)
		if err != nil {
			return err
		}
		model.ManagedObjectSources = append(model.ManagedObjectSources, mos)
	}
	for _, b := range root.ManagedObjects {
		mo, err := l.translateManagedObject(b)
		if err != nil {
			return err
		}
		model.ManagedObjects = append(model.ManagedObjects, mo)
	}
	for _, b := range root.InputManagedObjects {
		if err := checkRemain(b.Remain, fmt.Sprintf("input_managed_object '%s'", b.Name)); err != nil {
			return err
		}
		model.InputManagedObjects = append(model.InputManagedObjects, &config.InputManagedObject{
			Name:        b.Name,
			BoundSource: b.BoundSource,
			Location:    location(b.Remain),
		})
	}
	for _, b := range root.Offices {
		office, err := l.translateOffice(ctx, b)
		if err != nil {
			return err
		}
		model.Offices = append(model.Offices, office)
	}

	defs := &model.Definitions
	for _, b := range root.ManagedObjectSourceTypes {
		d, err := l.translateManagedObjectSourceType(ctx, b)
		if err != nil {
			return err
		}
		defs.ManagedObjectSources = append(defs.ManagedObjectSources, d)
	}
	for _, b := range root.FunctionTypes {
		d, err := l.translateFunctionType(ctx, b)
		if err != nil {
			return err
		}
		defs.Functions = append(defs.Functions, d)
	}
	for _, b := range root.SupplierTypes {
		defs.Suppliers = append(defs.Suppliers, l.translateSupplierType(b))
	}
	for _, b := range root.SourceTypes {
		defs.Sources = append(defs.Sources, &config.SourceDefinition{
			Kind:        b.Kind,
			Name:        b.Name,
			Description: b.Description,
		})
	}
	return nil
}
