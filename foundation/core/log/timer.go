// File: timer.go
// Title: Operation Timer
// Description: Measures how long a text operation took and logs the result
//              through the owning Logger.
// Author: msto63
// Version: v0.2.1
// Created: 2025-01-24
// Modified: 2025-10-17
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with performance timing
// - 2025-10-17 v0.2.0: Trimmed to Stop/StopWithError, entry carries the duration
// - 2025-10-17 v0.2.1: StopWithError level follows the error severity

package log

import (
	"maps"
	"time"
)

// Timer measures a single operation. It is not safe for concurrent use.
type Timer struct {
	logger    *Logger
	operation string
	start     time.Time
	level     Level
	fields    Fields
	stopped   bool
}

// NewTimer starts a timer for operation
func NewTimer(logger *Logger, operation string) *Timer {
	return &Timer{
		logger:    logger,
		operation: operation,
		start:     time.Now(),
		level:     LevelDebug,
		fields:    make(Fields),
	}
}

// WithLevel sets the level of the completion entry
func (t *Timer) WithLevel(level Level) *Timer {
	t.level = level
	return t
}

// WithField adds a field to the completion entry
func (t *Timer) WithField(key string, value interface{}) *Timer {
	t.fields[key] = value
	return t
}

// Elapsed returns the time since the timer started
func (t *Timer) Elapsed() time.Duration {
	return time.Since(t.start)
}

// IsRunning reports whether Stop or StopWithError has not been called yet
func (t *Timer) IsRunning() bool {
	return !t.stopped
}

// Stop logs "<operation> completed" with the elapsed time and returns it.
// Only the first call logs; later calls return 0.
func (t *Timer) Stop() time.Duration {
	return t.finish(t.level, " completed", nil)
}

// StopWithError logs "<operation> failed" with err attached, at the level
// LogError would use for err
func (t *Timer) StopWithError(err error) time.Duration {
	return t.finish(errorLevel(err), " failed", err)
}

func (t *Timer) finish(level Level, suffix string, err error) time.Duration {
	if t.stopped {
		return 0
	}
	t.stopped = true
	elapsed := t.Elapsed()

	if t.logger == nil || !level.Enabled(t.logger.level) {
		return elapsed
	}

	entry := NewEntry(level, t.operation+suffix)
	entry.Logger = t.logger.name
	entry.CorrelationID = t.logger.correlationID
	maps.Copy(entry.Fields, t.logger.fields)
	maps.Copy(entry.Fields, t.fields)
	entry.Fields["operation"] = t.operation
	entry.Fields["success"] = err == nil
	entry.WithError(err).WithDuration(elapsed)

	t.logger.write(entry)
	return elapsed
}
