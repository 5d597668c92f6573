package config

import (
	"context"
	"errors"
)

// ErrNoSources is returned when none of the given paths held configuration.
var ErrNoSources = errors.New("no configuration files found")

// Loader is the interface for a format-specific configuration loader.
type Loader interface {
	// Load reads configuration from the given paths and translates it into
	// the format-agnostic model.
	Load(ctx context.Context, paths ...string) (*Model, error)
}
