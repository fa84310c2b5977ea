package app

import (
	"errors"
	"fmt"

	"github.com/samber/lo"
)

// LogFormats lists the accepted values of Config.LogFormat.
var LogFormats = []string{"console", "json", "logfmt"}

// LogLevels lists the accepted values of Config.LogLevel.
var LogLevels = []string{"debug", "info", "warn", "error"}

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	SpecPath string // chart file or directory of chart files
	OutPath  string // empty or "-" writes to the app's output writer

	// DataName is the dataset facet domains read from. Empty means the
	// chart's own data table.
	DataName string
	Pretty   bool

	LogFormat string
	LogLevel  string
}

// NewConfig validates cfg and fills in defaults.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.SpecPath == "" {
		return nil, errors.New("SpecPath is a required configuration field and cannot be empty")
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = "console"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if !lo.Contains(LogFormats, cfg.LogFormat) {
		return nil, fmt.Errorf("invalid log format %q: must be one of %v", cfg.LogFormat, LogFormats)
	}
	if !lo.Contains(LogLevels, cfg.LogLevel) {
		return nil, fmt.Errorf("invalid log level %q: must be one of %v", cfg.LogLevel, LogLevels)
	}
	return &cfg, nil
}
