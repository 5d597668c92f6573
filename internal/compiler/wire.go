package compiler

import (
	"context"

	"github.com/specialistvlad/floorplan/internal/ctxlog"
	"github.com/specialistvlad/floorplan/internal/issues"
	"github.com/specialistvlad/floorplan/internal/nodeid"
)

// wire establishes every queued reference. References that cannot be looked
// up are reported once and skipped on later runs.
func (r *Result) wire(ctx context.Context) {
	logger := ctxlog.FromContext(ctx)
	linked := 0

	for _, l := range r.links {
		if l.failed {
			continue
		}
		addr, err := nodeid.Parse(l.target)
		if err != nil {
			r.fail(l)
			r.sink.AddCause(l.from, issues.CodeUnknownTarget, err, "invalid %s reference %q", l.capability, l.target)
			continue
		}
		target := r.graph.Lookup(l.scope, addr, l.kinds...)
		if target == nil {
			r.fail(l)
			r.sink.Add(l.from, issues.CodeUnknownTarget, "unknown %s target %q", l.capability, l.target)
			continue
		}
		if l.from.LinkTo(r.sink, l.capability, target) {
			linked++
			logger.Debug("Node linked.",
				"node", l.from.QualifiedName(),
				"capability", l.capability.String(),
				"target", target.QualifiedName(),
			)
		}
	}

	logger.Debug("Links established.", "new", linked, "configured", len(r.links))
}

// fail marks l as unresolvable. Resolving l.from afterwards yields no target
// without a second report.
func (r *Result) fail(l *pendingLink) {
	l.failed = true
	r.failed[linkKey{l.from.ID(), l.capability}] = true
}
