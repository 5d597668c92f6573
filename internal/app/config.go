package app

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	// Paths are configuration files or directories holding them.
	Paths        []string `validate:"required,min=1,dive,required"`
	FloorName    string   `validate:"omitempty,max=128"`
	LogFormat    string   `validate:"oneof=text json"`
	LogLevel     string   `validate:"oneof=debug info warn error"`
	OTLPEndpoint string   `validate:"omitempty,hostname_port"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// NewConfig validates cfg and returns a copy of it.
func NewConfig(cfg Config) (*Config, error) {
	if err := validate.Struct(cfg); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			var fields []string
			for _, fe := range fieldErrs {
				fields = append(fields, fe.Field()+" ("+fe.Tag()+")")
			}
			return nil, fmt.Errorf("invalid configuration: validation failed on %s", strings.Join(fields, ", "))
		}
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}
