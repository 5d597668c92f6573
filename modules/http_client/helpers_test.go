package http_client

import (
	"context"

	"github.com/specialistvlad/floorplan/internal/ctxlog"
)

func ctxDiscard() context.Context {
	return ctxlog.Discard(context.Background())
}
