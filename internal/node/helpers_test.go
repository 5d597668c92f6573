package node

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/specialistvlad/floorplan/internal/ctxlog"
	"github.com/specialistvlad/floorplan/internal/issues"
)

// newTestContext returns a context whose logger writes into the returned buffer.
func newTestContext(t *testing.T) (context.Context, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return ctxlog.WithLogger(context.Background(), logger), &buf
}

// port adds an initialised link-carrying node.
func port(ctx context.Context, g *Graph, sink *issues.Sink, parent *Node, kind Kind, name string) *Node {
	n := g.Add(parent.ID(), kind, name, "")
	n.Initialise(ctx, sink, &PortState{})
	return n
}
