package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "", cfg.TemplateFile)
	assert.Equal(t, "", cfg.DataFile)
	assert.Equal(t, "auto", cfg.DataFormat)
	assert.Equal(t, "", cfg.OutputFile)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("TEMPLATE_FILE", "page.hbs")
	t.Setenv("DATA_FILE", "data.yaml")
	t.Setenv("DATA_FORMAT", "yaml")
	t.Setenv("OUTPUT_FILE", "out.html")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "page.hbs", cfg.TemplateFile)
	assert.Equal(t, "data.yaml", cfg.DataFile)
	assert.Equal(t, "yaml", cfg.DataFormat)
	assert.Equal(t, "out.html", cfg.OutputFile)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid defaults", func(c *Config) {}, ""},
		{"bad data format", func(c *Config) { c.DataFormat = "toml" }, "DATA_FORMAT"},
		{"bad log level", func(c *Config) { c.LogLevel = "trace" }, "LOG_LEVEL"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{DataFormat: "auto", LogLevel: "info"}
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestLoadRejectsInvalidEnv(t *testing.T) {
	t.Setenv("DATA_FORMAT", "xml")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid config")
}

func TestString(t *testing.T) {
	cfg := &Config{TemplateFile: "t.hbs", DataFormat: "json", LogLevel: "info"}
	s := cfg.String()
	assert.Contains(t, s, "TemplateFile=t.hbs")
	assert.Contains(t, s, "DataFormat=json")
}
