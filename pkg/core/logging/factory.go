// ============================================================================
// textkit - UTF-8 text buffers and views
// ============================================================================
//
// Package:     logging
// Description: Factory functions that build foundation loggers from the
//              textkit configuration and stamp them with a run ID
// Author:      Mike Stoffels
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package logging

import (
	"io"
	"os"

	"github.com/google/uuid"

	tklog "github.com/msto63/textkit/foundation/core/log"
	"github.com/msto63/textkit/pkg/core/config"
)

// LoggerConfig holds configuration for creating loggers
type LoggerConfig struct {
	// Component name written as the logger name
	Name string

	// Log level (trace, debug, info, warn, error, fatal)
	Level string

	// Output format (json, text, console, logfmt)
	Format string

	// Output destination, stderr when nil
	Output io.Writer

	// Additional outputs written alongside Output
	AdditionalOutputs []io.Writer

	// Correlation ID stamped on every entry; a new run ID when empty
	CorrelationID string
}

// DefaultLoggerConfig returns the configuration used when no config file
// is present
func DefaultLoggerConfig(name string) LoggerConfig {
	return LoggerConfig{
		Name:   name,
		Level:  tklog.DefaultLevel().String(),
		Format: tklog.FormatText.String(),
	}
}

// FromConfig derives a LoggerConfig from the [log] section
func FromConfig(name string, cfg *config.Config) LoggerConfig {
	lc := DefaultLoggerConfig(name)
	if cfg != nil {
		lc.Level = cfg.Log.Level
		lc.Format = cfg.Log.Format
	}
	return lc
}

// NewLogger creates a foundation logger. Unknown level or format strings
// fall back to the defaults rather than failing.
func NewLogger(cfg LoggerConfig) *tklog.Logger {
	level, err := tklog.ParseLevel(cfg.Level)
	if err != nil {
		level = tklog.DefaultLevel()
	}
	format, err := tklog.ParseFormat(cfg.Format)
	if err != nil {
		format = tklog.FormatText
	}

	var output io.Writer = os.Stderr
	if cfg.Output != nil {
		output = cfg.Output
	}
	if len(cfg.AdditionalOutputs) > 0 {
		output = io.MultiWriter(append([]io.Writer{output}, cfg.AdditionalOutputs...)...)
	}

	id := cfg.CorrelationID
	if id == "" {
		id = NewRunID()
	}

	return tklog.NewWithConfig(tklog.Config{
		Level:  level,
		Format: format,
		Output: output,
		Name:   cfg.Name,
	}).WithCorrelationID(id)
}

// NewRunID returns a random identifier for one CLI invocation
func NewRunID() string {
	return uuid.NewString()
}
