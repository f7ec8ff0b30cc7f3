// ============================================================================
// molecule - Chemical Formula Atom Counter
// ============================================================================
//
// Package:     logging
// Description: Factory functions for creating foundation loggers from the
//              application configuration
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package logging

import (
	"io"
	"os"
	"strings"

	mdwlog "github.com/msto63/molecule/foundation/core/log"
	"github.com/msto63/molecule/pkg/core/config"
)

// LoggerConfig holds configuration for creating loggers
type LoggerConfig struct {
	// Logger name shown in every entry
	Name string

	// Log level (trace, debug, info, warn, error, fatal)
	Level string

	// Output format: "json", "text" or "console" (default: json)
	Format string

	// Output writer (default: stderr)
	Output io.Writer

	// Additional outputs besides Output
	AdditionalOutputs []io.Writer

	// EnableCaller records file and line of the log call
	EnableCaller bool
}

// DefaultLoggerConfig returns a default configuration
func DefaultLoggerConfig(name string) LoggerConfig {
	return LoggerConfig{
		Name:   name,
		Level:  "info",
		Format: "json",
	}
}

// NewLogger creates a new foundation logger. Unknown levels fall back to
// info and unknown formats to JSON.
func NewLogger(cfg LoggerConfig) *mdwlog.Logger {
	level, err := mdwlog.ParseLevel(cfg.Level)
	if err != nil {
		level = mdwlog.LevelInfo
	}

	format, err := mdwlog.ParseFormat(cfg.Format)
	if err != nil {
		format = mdwlog.FormatJSON
	}

	var output io.Writer = os.Stderr
	if cfg.Output != nil {
		output = cfg.Output
	}
	if len(cfg.AdditionalOutputs) > 0 {
		writers := append([]io.Writer{output}, cfg.AdditionalOutputs...)
		output = io.MultiWriter(writers...)
	}

	return mdwlog.NewWithConfig(mdwlog.Config{
		Level:        level,
		Format:       format,
		Output:       output,
		Name:         cfg.Name,
		EnableCaller: cfg.EnableCaller,
	})
}

// FromConfig creates a logger from the [general] section of cfg. A
// non-empty levelOverride wins over the configured level.
func FromConfig(name string, cfg *config.Config, output io.Writer, levelOverride string) *mdwlog.Logger {
	lc := DefaultLoggerConfig(name)
	lc.Output = output
	if cfg != nil {
		lc.Level = cfg.General.LogLevel
		lc.Format = cfg.General.LogFormat
	}
	if strings.TrimSpace(levelOverride) != "" {
		lc.Level = levelOverride
	}
	lc.EnableCaller = lc.Level == "trace"
	return NewLogger(lc)
}
