package compiler

import (
	"context"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/specialistvlad/floorplan/internal/compilectx"
	"github.com/specialistvlad/floorplan/internal/config"
	"github.com/specialistvlad/floorplan/internal/ctxlog"
	"github.com/specialistvlad/floorplan/internal/issues"
	"github.com/specialistvlad/floorplan/internal/node"
	"github.com/specialistvlad/floorplan/internal/telemetry"
	"github.com/specialistvlad/floorplan/internal/typeload"
)

// DefaultFloorName names the root node when no other name is configured.
const DefaultFloorName = "floor"

// Compiler compiles configuration models against one type loader.
type Compiler struct {
	loader    typeload.Loader
	floorName string
	tel       *telemetry.Telemetry
}

// Option configures a Compiler.
type Option func(*Compiler)

// WithFloorName sets the name of the graph root.
func WithFloorName(name string) Option {
	return func(c *Compiler) { c.floorName = name }
}

// WithTelemetry records passes with t instead of discarding them.
func WithTelemetry(t *telemetry.Telemetry) Option {
	return func(c *Compiler) { c.tel = t }
}

// New creates a Compiler resolving source names through loader.
func New(loader typeload.Loader, opts ...Option) *Compiler {
	c := &Compiler{
		loader:    loader,
		floorName: DefaultFloorName,
		tel:       telemetry.Noop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Compile runs the construct, initialise, link and validate phases over
// model. The returned Result is always usable; check Result.OK before
// building.
func (c *Compiler) Compile(ctx context.Context, model *config.Model) *Result {
	passID := uuid.NewString()
	ctx, logger := ctxlog.With(ctx, "pass_id", passID)
	ctx, span := c.tel.Start(ctx, "floorplan.compile", attribute.String("floorplan.pass_id", passID))

	graph := node.NewGraph(c.floorName)
	sink := issues.NewSink(c.tel.IssueObserver(ctx))
	r := &Result{
		PassID:   passID,
		loader:   c.loader,
		tel:      c.tel,
		graph:    graph,
		sink:     sink,
		cc:       compilectx.New(graph, sink, passID),
		supplied: make(map[node.ID]node.ID),
		failed:   make(map[linkKey]bool),
	}

	r.phase(ctx, "construct", func(ctx context.Context) { r.construct(ctx, model) })
	r.phase(ctx, "initialise", r.initialise)
	r.phase(ctx, "link", r.wire)
	r.phase(ctx, "validate", r.validate)

	span.SetAttributes(attribute.Int("floorplan.nodes", graph.Len()))
	c.tel.RecordGraph(ctx, graph.Len())
	telemetry.Finish(span, sink.Len())

	logger.Info("Compilation finished.", "nodes", graph.Len(), "issues", sink.Len())
	return r
}

// Result is one compilation pass. It exclusively owns its graph, issue sink
// and compile context and is not safe for concurrent use.
type Result struct {
	PassID string

	loader typeload.Loader
	tel    *telemetry.Telemetry
	graph  *node.Graph
	sink   *issues.Sink
	cc     *compilectx.Context

	inits []pendingInit
	links []*pendingLink
	// supplied maps a supplied managed object source to the supplier entry
	// it draws its type from.
	supplied map[node.ID]node.ID
	failed   map[linkKey]bool
	built    bool
}

// Graph returns the compiled graph. It is inspectable even when issues were
// reported.
func (r *Result) Graph() *node.Graph { return r.graph }

// Issues returns every issue reported so far, in order.
func (r *Result) Issues() []issues.Issue { return r.sink.Issues() }

// Sink exposes the pass's issue sink.
func (r *Result) Sink() *issues.Sink { return r.sink }

// OK reports whether the pass has no issues and may be built.
func (r *Result) OK() bool { return r.sink.Empty() }

// Err returns an *issues.Error when the pass reported issues.
func (r *Result) Err() error { return r.sink.Err() }

// Relink re-runs the link phase. Links already established are kept and
// references that already failed are not reported again.
func (r *Result) Relink(ctx context.Context) {
	r.phase(ctx, "link", r.wire)
}

func (r *Result) phase(ctx context.Context, name string, fn func(context.Context)) {
	ctx, logger := ctxlog.With(ctx, "phase", name)
	ctx, span := r.tel.Start(ctx, "floorplan."+name)

	before := r.sink.Len()
	fn(ctx)
	reported := r.sink.Len() - before

	telemetry.Finish(span, reported)
	logger.Debug("Phase finished.", "issues", reported)
}
