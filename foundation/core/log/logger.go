// File: logger.go
// Title: Core Logger Implementation
// Description: Implements the structured Logger used by textkit. Loggers are
//              immutable once configured: every With* call returns a copy,
//              so a logger can be handed to commands without locking.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-10-17
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging
// - 2025-10-17 v0.2.0: Copy-on-write configuration, async worker removed,
//                      LogError keyed on foundation error severity

package log

import (
	"io"
	"maps"
	"os"
	"sync"
	"sync/atomic"

	tkerror "github.com/msto63/textkit/foundation/core/error"
)

// Logger writes structured entries through a Formatter
type Logger struct {
	level         Level
	formatter     Formatter
	output        io.Writer
	name          string
	correlationID string
	fields        Fields

	// guards writes to output so entries from concurrent goroutines do not
	// interleave; shared between a logger and the copies derived from it
	writeMu *sync.Mutex
}

// Config describes a logger
type Config struct {
	Level  Level
	Format Format
	Output io.Writer
	Name   string
}

// New creates a logger writing text at DefaultLevel to stderr
func New() *Logger {
	return NewWithConfig(Config{Level: DefaultLevel(), Format: FormatText})
}

// NewWithConfig creates a logger from config. A nil Output means stderr.
func NewWithConfig(config Config) *Logger {
	output := config.Output
	if output == nil {
		output = os.Stderr
	}
	return &Logger{
		level:     config.Level,
		formatter: GetFormatter(config.Format),
		output:    output,
		name:      config.Name,
		fields:    make(Fields),
		writeMu:   &sync.Mutex{},
	}
}

func (l *Logger) clone() *Logger {
	c := *l
	c.fields = maps.Clone(l.fields)
	return &c
}

// WithLevel returns a copy with a different minimum level
func (l *Logger) WithLevel(level Level) *Logger {
	c := l.clone()
	c.level = level
	return c
}

// WithFormat returns a copy using the formatter for format
func (l *Logger) WithFormat(format Format) *Logger {
	c := l.clone()
	c.formatter = GetFormatter(format)
	return c
}

// WithFormatter returns a copy using a custom formatter
func (l *Logger) WithFormatter(f Formatter) *Logger {
	c := l.clone()
	c.formatter = f
	return c
}

// WithOutput returns a copy writing to w
func (l *Logger) WithOutput(w io.Writer) *Logger {
	c := l.clone()
	c.output = w
	c.writeMu = &sync.Mutex{}
	return c
}

// WithName returns a copy tagged with a component name
func (l *Logger) WithName(name string) *Logger {
	c := l.clone()
	c.name = name
	return c
}

// WithField returns a copy that adds key=value to every entry
func (l *Logger) WithField(key string, value interface{}) *Logger {
	c := l.clone()
	c.fields[key] = value
	return c
}

// WithFields returns a copy that adds fields to every entry
func (l *Logger) WithFields(fields Fields) *Logger {
	c := l.clone()
	maps.Copy(c.fields, fields)
	return c
}

// WithCorrelationID returns a copy that stamps every entry with id
func (l *Logger) WithCorrelationID(id string) *Logger {
	c := l.clone()
	c.correlationID = id
	return c
}

// Level returns the minimum level
func (l *Logger) Level() Level {
	return l.level
}

// Name returns the component name
func (l *Logger) Name() string {
	return l.name
}

// CorrelationID returns the correlation ID stamped on entries
func (l *Logger) CorrelationID() string {
	return l.correlationID
}

// IsLevelEnabled reports whether entries at level would be written
func (l *Logger) IsLevelEnabled(level Level) bool {
	return level.Enabled(l.level)
}

// Trace logs at trace level
func (l *Logger) Trace(message string, fields ...Fields) {
	l.log(LevelTrace, message, nil, fields)
}

// Debug logs at debug level
func (l *Logger) Debug(message string, fields ...Fields) {
	l.log(LevelDebug, message, nil, fields)
}

// Info logs at info level
func (l *Logger) Info(message string, fields ...Fields) {
	l.log(LevelInfo, message, nil, fields)
}

// Warn logs at warn level
func (l *Logger) Warn(message string, fields ...Fields) {
	l.log(LevelWarn, message, nil, fields)
}

// Error logs at error level
func (l *Logger) Error(message string, fields ...Fields) {
	l.log(LevelError, message, nil, fields)
}

// Fatal logs at fatal level and exits with status 1
func (l *Logger) Fatal(message string, fields ...Fields) {
	l.log(LevelFatal, message, nil, fields)
	os.Exit(1)
}

// ErrorWithErr logs message at error level with err attached
func (l *Logger) ErrorWithErr(message string, err error, fields ...Fields) {
	l.log(LevelError, message, err, fields)
}

// WarnWithErr logs message at warn level with err attached
func (l *Logger) WarnWithErr(message string, err error, fields ...Fields) {
	l.log(LevelWarn, message, err, fields)
}

// LogError logs err at a level derived from its severity. Foundation errors
// contribute their code, operation and details as fields:
//
//	low -> info, medium -> warn, high and critical -> error
//
// Any other error is logged at error level.
func (l *Logger) LogError(err error) {
	if err == nil {
		return
	}

	tkErr, ok := tkerror.As(err)
	if !ok {
		l.log(LevelError, err.Error(), err, nil)
		return
	}

	fields := Fields{
		"error_code":     tkErr.Code().String(),
		"error_severity": tkErr.Severity().String(),
	}
	if op := tkErr.Operation(); op != "" {
		fields["error_operation"] = op
	}
	for k, v := range tkErr.Details() {
		fields["error_"+k] = v
	}

	l.log(errorLevel(err), tkErr.Message(), err, []Fields{fields})
}

// errorLevel maps the severity of a foundation error to a log level; any
// other error maps to error level
func errorLevel(err error) Level {
	tkErr, ok := tkerror.As(err)
	if !ok {
		return LevelError
	}
	switch tkErr.Severity() {
	case tkerror.SeverityLow:
		return LevelInfo
	case tkerror.SeverityMedium:
		return LevelWarn
	default:
		return LevelError
	}
}

// StartTimer starts a timer that logs through l when stopped
func (l *Logger) StartTimer(operation string) *Timer {
	return NewTimer(l, operation)
}

func (l *Logger) log(level Level, message string, err error, fields []Fields) {
	if !level.Enabled(l.level) {
		return
	}

	entry := NewEntry(level, message)
	entry.Logger = l.name
	entry.CorrelationID = l.correlationID
	entry.Error = err
	maps.Copy(entry.Fields, l.fields)
	for _, f := range fields {
		maps.Copy(entry.Fields, f)
	}

	l.write(entry)
}

func (l *Logger) write(entry *Entry) {
	formatted, err := l.formatter.Format(entry)
	if err != nil {
		return
	}
	l.writeMu.Lock()
	defer l.writeMu.Unlock()
	_, _ = l.output.Write(formatted)
}

var defaultLogger atomic.Pointer[Logger]

func init() {
	defaultLogger.Store(New())
}

// GetDefault returns the process-wide logger
func GetDefault() *Logger {
	return defaultLogger.Load()
}

// SetDefault replaces the process-wide logger
func SetDefault(logger *Logger) {
	defaultLogger.Store(logger)
}

// Debug logs through the default logger
func Debug(message string, fields ...Fields) {
	GetDefault().Debug(message, fields...)
}

// Info logs through the default logger
func Info(message string, fields ...Fields) {
	GetDefault().Info(message, fields...)
}

// Warn logs through the default logger
func Warn(message string, fields ...Fields) {
	GetDefault().Warn(message, fields...)
}

// Error logs through the default logger
func Error(message string, fields ...Fields) {
	GetDefault().Error(message, fields...)
}
