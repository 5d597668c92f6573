// Package ctxlog provides a context key for safely passing a slog.Logger
// instance through context.Context.
package ctxlog

import (
	"context"
	"log/slog"
)

// key is an unexported type to prevent collisions with context keys from other packages.
type key struct{}

// loggerKey is the key for the slog.Logger in a context.Context.
var loggerKey = key{}

// WithLogger returns a new context with the provided logger embedded.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// FromContext extracts the slog.Logger from a context. A context without a
// logger is a wiring defect and panics.
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok {
		return logger
	}
	panic("ctxlog: logger missing from context")
}

// With derives a logger carrying the given attributes and returns both the
// new context and the derived logger.
func With(ctx context.Context, args ...any) (context.Context, *slog.Logger) {
	logger := FromContext(ctx).With(args...)
	return WithLogger(ctx, logger), logger
}

// Discard returns a context whose logger drops every record. It is meant for
// tests and callers that do not care about diagnostics.
func Discard(ctx context.Context) context.Context {
	return WithLogger(ctx, slog.New(slog.DiscardHandler))
}
