package app

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig(t *testing.T) {
	valid := Config{Paths: []string{"floor"}, LogFormat: "text", LogLevel: "info"}

	testCases := []struct {
		name      string
		mutate    func(c *Config)
		expectErr string
	}{
		{name: "valid", mutate: func(*Config) {}},
		{name: "valid with endpoint", mutate: func(c *Config) { c.OTLPEndpoint = "localhost:4318" }},
		{name: "no paths", mutate: func(c *Config) { c.Paths = nil }, expectErr: "Paths (required)"},
		{name: "blank path", mutate: func(c *Config) { c.Paths = []string{""} }, expectErr: "Paths[0] (required)"},
		{name: "log format", mutate: func(c *Config) { c.LogFormat = "xml" }, expectErr: "LogFormat (oneof)"},
		{name: "log level", mutate: func(c *Config) { c.LogLevel = "trace" }, expectErr: "LogLevel (oneof)"},
		{name: "endpoint", mutate: func(c *Config) { c.OTLPEndpoint = "http://collector" }, expectErr: "OTLPEndpoint (hostname_port)"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := valid
			cfg.Paths = append([]string(nil), valid.Paths...)
			tc.mutate(&cfg)

			got, err := NewConfig(cfg)

			if tc.expectErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.expectErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, cfg, *got)
		})
	}
}

func TestNewLogger(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := newLogger("warn", "json", buf)

	logger.Info("hidden")
	logger.Warn("shown", "key", "value")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"msg":"shown"`)
	assert.Contains(t, buf.String(), `"key":"value"`)
}
