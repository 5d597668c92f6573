package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"go.opentelemetry.io/otel"

	"github.com/specialistvlad/floorplan/internal/build"
	"github.com/specialistvlad/floorplan/internal/compiler"
	"github.com/specialistvlad/floorplan/internal/config"
	"github.com/specialistvlad/floorplan/internal/ctxlog"
	"github.com/specialistvlad/floorplan/internal/instrument"
	"github.com/specialistvlad/floorplan/internal/registry"
	"github.com/specialistvlad/floorplan/internal/telemetry"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	ctx      context.Context
	logger   *slog.Logger
	config   *Config
	registry *registry.Registry
	model    *config.Model
	tel      *telemetry.Telemetry
	shutdown func(context.Context) error
}

// NewApp is the constructor for the main application. It loads the
// configuration under cfg.Paths and registers modules (the built-in ones
// when none are given) together with the type manifests the configuration
// declares. Log output goes to logW.
//
// Modules that register an inconsistent set of sources are a programming
// error and panic. Declared type manifests that clash with registered names
// or leave the registry inconsistent are returned as an error wrapping
// registry.ErrInvalidDefinition.
func NewApp(logW io.Writer, cfg *Config, modules ...registry.Module) (*App, error) {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	a := &App{ctx: ctx, logger: logger, config: cfg, tel: telemetry.Noop()}

	if cfg.OTLPEndpoint != "" {
		shutdown, err := telemetry.SetupTracing(ctx, cfg.OTLPEndpoint)
		if err != nil {
			return nil, err
		}
		a.shutdown = shutdown
		a.tel = telemetry.Global()
	}

	model, err := Load(ctx, cfg.Paths...)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	a.model = model

	reg := registry.New(ctx)
	if len(modules) == 0 {
		modules = coreModules
	}
	for _, mod := range modules {
		mod.Register(reg)
	}
	logger.Debug("All Go modules registered.", "count", len(modules))

	if err := reg.ValidateRegistry(ctx); err != nil {
		panic(err)
	}

	if err := reg.PopulateDefinitionsFromModel(ctx, model.Definitions); err != nil {
		return nil, err
	}
	if err := reg.ValidateRegistry(ctx); err != nil {
		return nil, fmt.Errorf("%w: %w", registry.ErrInvalidDefinition, err)
	}
	logger.Debug("Registry validation passed.")
	a.registry = reg

	return a, nil
}

// Context returns the application's base context carrying its logger.
func (a *App) Context() context.Context {
	return a.ctx
}

// Registry returns the application's registry. This is primarily for testing.
func (a *App) Registry() *registry.Registry {
	return a.registry
}

// Compile runs one compilation pass over the loaded configuration.
func (a *App) Compile(ctx context.Context) *compiler.Result {
	opts := []compiler.Option{compiler.WithTelemetry(a.tel)}
	if a.config.FloorName != "" {
		opts = append(opts, compiler.WithFloorName(a.config.FloorName))
	}
	return compiler.New(a.registry, opts...).Compile(ctx, a.model)
}

// Plan is the ordered list of builder calls a compiled floor produces,
// along with the instruments it offers for management.
type Plan struct {
	PassID      string       `json:"pass_id" yaml:"pass_id"`
	Calls       []build.Call `json:"calls" yaml:"calls"`
	Instruments []string     `json:"instruments,omitempty" yaml:"instruments,omitempty"`
}

// Plan compiles and builds the floor into a recorder. When compilation or
// building reports issues the result is returned with the error so callers
// can print them.
func (a *App) Plan(ctx context.Context) (*Plan, *compiler.Result, error) {
	result := a.Compile(ctx)
	if !result.OK() {
		return nil, result, result.Err()
	}

	rec := build.NewRecorder()
	if err := result.Build(ctx, rec); err != nil {
		return nil, result, err
	}

	plan := &Plan{PassID: result.PassID, Calls: rec.Calls}

	registrator, err := instrument.NewMeterRegistrator(otel.GetMeterProvider())
	if err != nil {
		return nil, result, fmt.Errorf("failed to create instrument registrator: %w", err)
	}
	lc := instrument.NewLifecycle(registrator, result.PossibleInstruments())
	lc.Opened(ctx)
	defer lc.Closed(ctx)
	for _, p := range lc.Registered() {
		plan.Instruments = append(plan.Instruments, p.Key())
	}

	a.logger.Info("Office floor planned.", "calls", len(plan.Calls), "instruments", len(plan.Instruments))
	return plan, result, nil
}

// Close flushes telemetry.
func (a *App) Close(ctx context.Context) error {
	if a.shutdown == nil {
		return nil
	}
	return a.shutdown(ctx)
}
