package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/aescanero/hbswitch"
	"github.com/aescanero/hbswitch/internal/config"

	"github.com/ohler55/ojg/oj"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

var (
	// Version is set at build time
	Version = "dev"
	// BuildTime is set at build time
	BuildTime = "unknown"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Flags override the environment
	flag.StringVar(&cfg.TemplateFile, "template", cfg.TemplateFile, "template file (default: stdin)")
	flag.StringVar(&cfg.DataFile, "data", cfg.DataFile, "data file (JSON or YAML)")
	flag.StringVar(&cfg.DataFormat, "format", cfg.DataFormat, "data format: auto, json or yaml")
	flag.StringVar(&cfg.OutputFile, "output", cfg.OutputFile, "output file (default: stdout)")
	flag.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: debug, info, warn or error")
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid flags: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logger, err := initLogger(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	logger.Debug("starting renderer",
		zap.String("version", Version),
		zap.String("build_time", BuildTime),
		zap.String("config", cfg.String()),
	)

	source, err := readTemplate(cfg.TemplateFile)
	if err != nil {
		logger.Fatal("failed to read template", zap.Error(err))
	}

	data, err := readData(cfg.DataFile, cfg.DataFormat)
	if err != nil {
		logger.Fatal("failed to read data", zap.Error(err))
	}

	engine := hbswitch.NewEngine(hbswitch.WithLogger(logger))

	result, err := engine.Render(source, data)
	if err != nil {
		logger.Fatal("failed to render template", zap.Error(err))
	}

	if err := writeOutput(cfg.OutputFile, result); err != nil {
		logger.Fatal("failed to write output", zap.Error(err))
	}
}

// readTemplate reads the template source from a file, or from stdin when no
// file is given.
func readTemplate(path string) (string, error) {
	if path == "" {
		source, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(source), nil
	}

	source, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return string(source), nil
}

// readData loads and parses the data file. A missing data file renders the
// template against an empty context.
func readData(path, format string) (interface{}, error) {
	if path == "" {
		return nil, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	if format == "auto" {
		format = detectFormat(path)
	}

	switch format {
	case "yaml":
		var data interface{}
		if err := yaml.Unmarshal(raw, &data); err != nil {
			return nil, fmt.Errorf("failed to parse %s as yaml: %w", path, err)
		}
		return data, nil
	default:
		data, err := oj.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s as json: %w", path, err)
		}
		return data, nil
	}
}

// detectFormat picks the data format from the file extension, defaulting to
// json.
func detectFormat(path string) string {
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		return "yaml"
	}
	return "json"
}

func writeOutput(path, result string) error {
	if path == "" {
		if _, err := os.Stdout.WriteString(result); err != nil {
			return fmt.Errorf("failed to write stdout: %w", err)
		}
		return nil
	}

	if err := os.WriteFile(path, []byte(result), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// initLogger initializes the logger
func initLogger(level string) (*zap.Logger, error) {
	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		zapLevel = zapcore.InfoLevel
	}

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(zapLevel),
		Development:      false,
		Encoding:         "json",
		EncoderConfig:    zap.NewProductionEncoderConfig(),
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
	}

	return config.Build()
}
