package yamlconfig

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/zclconf/go-cty/cty"
	"gopkg.in/yaml.v3"

	"github.com/specialistvlad/floorplan/internal/config"
	"github.com/specialistvlad/floorplan/internal/ctxlog"
	"github.com/specialistvlad/floorplan/internal/fsutil"
	"github.com/specialistvlad/floorplan/internal/typeload"
)

// Extensions are the file extensions the loader picks up.
var Extensions = []string{".yaml", ".yml"}

// Loader is the YAML-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new YAML configuration loader.
func NewLoader() *Loader {
	return &Loader{}
}

var _ config.Loader = (*Loader)(nil)

// Load decodes every YAML file under paths into a single model.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("YAML loader started.", "path_count", len(paths))

	files, err := fsutil.Collect(paths, Extensions...)
	if err != nil {
		return nil, err
	}
	logger.Debug("Discovered YAML files.", "count", len(files))

	model := &config.Model{}
	for _, file := range files {
		if err := l.loadFile(ctx, file, model); err != nil {
			return nil, err
		}
	}

	logger.Debug("YAML loading complete.",
		"files", len(files),
		"offices", len(model.Offices),
		"managed_object_sources", len(model.ManagedObjectSources),
		"managed_objects", len(model.ManagedObjects),
		"teams", len(model.Teams),
	)
	return model, nil
}

func (l *Loader) loadFile(ctx context.Context, file string, model *config.Model) error {
	f, err := os.Open(file)
	if err != nil {
		return fmt.Errorf("failed to open YAML file %s: %w", file, err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	for {
		var doc document
		err := dec.Decode(&doc)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to decode YAML file %s: %w", file, err)
		}
		t := translator{ctx: ctx, file: file}
		if err := t.document(&doc, model); err != nil {
			return fmt.Errorf("in YAML file %s: %w", file, err)
		}
	}
}

// translator converts decoded entries of one file into the config model.
type translator struct {
	ctx  context.Context
	file string
}

func (t translator) location(line int) string {
	return fmt.Sprintf("%s:%d", t.file, line)
}

func (t translator) links(es entries) []*config.Link {
	if len(es) == 0 {
		return nil
	}
	out := make([]*config.Link, 0, len(es))
	for _, e := range es {
		out = append(out, &config.Link{Name: e.Name, Target: e.Value, Location: t.location(e.Line)})
	}
	return out
}

// typed parses the type of every entry. Entries without a type get empty.
func (t translator) typed(es entries, empty cty.Type, owner string) ([]*config.TypedName, error) {
	var out []*config.TypedName
	for _, e := range es {
		typ := empty
		if e.Value != "" {
			parsed, err := typeload.ParseTypeExpr(t.ctx, e.Value)
			if err != nil {
				return nil, fmt.Errorf("line %d: in %s, '%s': %w", e.Line, owner, e.Name, err)
			}
			typ = parsed
		}
		out = append(out, &config.TypedName{Name: e.Name, Type: typ})
	}
	return out, nil
}

func (t translator) document(doc *document, model *config.Model) error {
	for _, e := range doc.Teams {
		v := e.Value
		model.Teams = append(model.Teams, &config.Team{
			Name:       v.Name,
			Source:     v.Source,
			Properties: v.Properties,
			Oversight:  v.Oversight,
			Location:   t.location(e.Line),
		})
	}
	for _, e := range doc.TeamOversights {
		model.TeamOversights = append(model.TeamOversights, &config.TeamOversight{
			Name:     e.Value.Name,
			Source:   e.Value.Source,
			Location: t.location(e.Line),
		})
	}
	for _, e := range doc.ExecutionStrategies {
		model.ExecutionStrategies = append(model.ExecutionStrategies, &config.ExecutionStrategy{
			Name:       e.Value.Name,
			Source:     e.Value.Source,
			Properties: e.Value.Properties,
			Location:   t.location(e.Line),
		})
	}
	for _, e := range doc.Suppliers {
		model.Suppliers = append(model.Suppliers, &config.Supplier{
			Name:       e.Value.Name,
			Source:     e.Value.Source,
			Properties: e.Value.Properties,
			Location:   t.location(e.Line),
		})
	}
	for _, e := range doc.ManagedObjectSources {
		mos, err := t.managedObjectSource(e)
		if err != nil {
			return err
		}
		model.ManagedObjectSources = append(model.ManagedObjectSources, mos)
	}
	for _, e := range doc.ManagedObjects {
		v := e.Value
		model.ManagedObjects = append(model.ManagedObjects, &config.ManagedObject{
			Name:         v.Name,
			Source:       v.Source,
			Scope:        v.Scope,
			Dependencies: t.links(v.Dependencies),
			Location:     t.location(e.Line),
		})
	}
	for _, e := range doc.InputManagedObjects {
		model.InputManagedObjects = append(model.InputManagedObjects, &config.InputManagedObject{
			Name:        e.Value.Name,
			BoundSource: e.Value.BoundSource,
			Location:    t.location(e.Line),
		})
	}
	for _, e := range doc.Offices {
		model.Offices = append(model.Offices, t.office(e))
	}
	return t.definitions(&doc.Definitions, &model.Definitions)
}

func (t translator) managedObjectSource(e located[managedObjectSourceEntry]) (*config.ManagedObjectSource, error) {
	v := e.Value
	var timeout time.Duration
	if v.Timeout != "" {
		d, err := time.ParseDuration(v.Timeout)
		if err != nil {
			return nil, fmt.Errorf("line %d: in managed object source '%s': invalid timeout: %w", e.Line, v.Name, err)
		}
		timeout = d
	}
	return &config.ManagedObjectSource{
		Name:                 v.Name,
		Source:               v.Source,
		Supplier:             v.Supplier,
		Qualifier:            v.Qualifier,
		Type:                 v.Type,
		Properties:           v.Properties,
		Timeout:              timeout,
		ManagingOffice:       v.ManagingOffice,
		InputManagedObject:   v.InputManagedObject,
		Flows:                t.links(v.Flows),
		Teams:                t.links(v.Teams),
		ExecutionStrategies:  t.links(v.ExecutionStrategies),
		FunctionDependencies: t.links(v.FunctionDependencies),
		Location:             t.location(e.Line),
	}, nil
}

func (t translator) office(e located[officeEntry]) *config.Office {
	v := e.Value
	o := &config.Office{
		Name:        v.Name,
		DefaultTeam: v.DefaultTeam,
		Teams:       t.links(v.Teams),
		Objects:     t.links(v.Objects),
		Inputs:      t.links(v.Inputs),
		Outputs:     t.links(v.Outputs),
		Starts:      t.links(v.Starts),
		Location:    t.location(e.Line),
	}
	for _, fe := range v.Functions {
		f := fe.Value
		o.Functions = append(o.Functions, &config.Function{
			Name:               f.Name,
			Source:             f.Source,
			Properties:         f.Properties,
			Team:               f.Team,
			Objects:            t.links(f.Objects),
			Flows:              t.links(f.Flows),
			Escalations:        t.links(f.Escalations),
			PreAdministration:  f.PreAdministration,
			PostAdministration: f.PostAdministration,
			Location:           t.location(fe.Line),
		})
	}
	return o
}

// definitions translates type manifests. A dependency or object without a
// type accepts anything; a flow without an argument type passes nothing.
func (t translator) definitions(in *definitions, out *config.Definitions) error {
	for _, e := range in.ManagedObjectSources {
		v := e.Value
		owner := fmt.Sprintf("managed object source type '%s'", v.Name)
		objectType, err := typeload.ParseTypeExpr(t.ctx, v.ObjectType)
		if err != nil {
			return fmt.Errorf("line %d: in %s: %w", e.Line, owner, err)
		}
		d := &config.ManagedObjectSourceDefinition{
			Name:                v.Name,
			Description:         v.Description,
			ObjectType:          objectType,
			Teams:               v.Teams,
			ExecutionStrategies: v.ExecutionStrategies,
			Instrumentable:      v.Instrumentable,
		}
		if d.Dependencies, err = t.typed(v.Dependencies, cty.DynamicPseudoType, owner); err != nil {
			return err
		}
		if d.Flows, err = t.typed(v.Flows, cty.NilType, owner); err != nil {
			return err
		}
		if d.FunctionDependencies, err = t.typed(v.FunctionDependencies, cty.DynamicPseudoType, owner); err != nil {
			return err
		}
		out.ManagedObjectSources = append(out.ManagedObjectSources, d)
	}

	for _, e := range in.Functions {
		v := e.Value
		owner := fmt.Sprintf("function type '%s'", v.Name)
		parameter, err := typeload.ParseTypeExpr(t.ctx, v.Parameter)
		if err != nil {
			return fmt.Errorf("line %d: in %s: %w", e.Line, owner, err)
		}
		d := &config.FunctionDefinition{
			Name:        v.Name,
			Description: v.Description,
			Parameter:   parameter,
			Escalations: v.Escalations,
		}
		if d.Objects, err = t.typed(v.Objects, cty.DynamicPseudoType, owner); err != nil {
			return err
		}
		if d.Flows, err = t.typed(v.Flows, cty.NilType, owner); err != nil {
			return err
		}
		out.Functions = append(out.Functions, d)
	}

	for _, e := range in.Suppliers {
		d := &config.SupplierDefinition{Name: e.Value.Name, Description: e.Value.Description}
		for _, s := range e.Value.Supplies {
			d.Supplies = append(d.Supplies, &config.SuppliedDefinition{
				Qualifier:  s.Value.Qualifier,
				Type:       s.Value.Type,
				Source:     s.Value.Source,
				Properties: s.Value.Properties,
			})
		}
		out.Suppliers = append(out.Suppliers, d)
	}

	for _, e := range in.Sources {
		out.Sources = append(out.Sources, &config.SourceDefinition{
			Kind:        e.Value.Kind,
			Name:        e.Value.Name,
			Description: e.Value.Description,
		})
	}
	return nil
}
