package config

import (
	"fmt"

	"github.com/caarlos0/env/v10"
)

// Config holds all configuration for the render CLI
type Config struct {
	// Template configuration
	TemplateFile string `env:"TEMPLATE_FILE" envDefault:""`

	// Data configuration
	DataFile   string `env:"DATA_FILE" envDefault:""`
	DataFormat string `env:"DATA_FORMAT" envDefault:"auto"`

	// Output configuration
	OutputFile string `env:"OUTPUT_FILE" envDefault:""`

	// Logging configuration
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if !isValidDataFormat(c.DataFormat) {
		return fmt.Errorf("DATA_FORMAT must be one of: auto, json, yaml")
	}

	if !isValidLogLevel(c.LogLevel) {
		return fmt.Errorf("LOG_LEVEL must be one of: debug, info, warn, error")
	}

	return nil
}

// isValidDataFormat checks if the data format is valid
func isValidDataFormat(format string) bool {
	validFormats := map[string]bool{
		"auto": true,
		"json": true,
		"yaml": true,
	}
	return validFormats[format]
}

// isValidLogLevel checks if the log level is valid
func isValidLogLevel(level string) bool {
	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	return validLevels[level]
}

// String returns a string representation of the config
func (c *Config) String() string {
	return fmt.Sprintf(
		"Config{TemplateFile=%s, DataFile=%s, DataFormat=%s, OutputFile=%s, LogLevel=%s}",
		c.TemplateFile,
		c.DataFile,
		c.DataFormat,
		c.OutputFile,
		c.LogLevel,
	)
}
