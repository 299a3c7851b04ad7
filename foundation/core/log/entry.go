// File: entry.go
// Title: Log Entry Structure
// Description: Defines the log entry passed from a Logger to its Formatter
//              and the Fields helpers used to attach structured context.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-10-17
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with comprehensive log entry structure
// - 2025-10-17 v0.2.0: Request/user context replaced by run correlation ID, sorted keys

package log

import (
	"maps"
	"slices"
	"time"
)

// Entry is a single log record
type Entry struct {
	Timestamp     time.Time
	Level         Level
	Message       string
	Logger        string
	CorrelationID string
	Fields        Fields
	Error         error
	Duration      time.Duration
}

// Fields holds structured key/value context for an entry
type Fields map[string]interface{}

// Field creates a single field
func Field(key string, value interface{}) Fields {
	return Fields{key: value}
}

// Err creates an "error" field
func Err(err error) Fields {
	return Fields{"error": err}
}

// Int creates an integer field
func Int(key string, value int) Fields {
	return Fields{key: value}
}

// String creates a string field
func String(key, value string) Fields {
	return Fields{key: value}
}

// Bool creates a boolean field
func Bool(key string, value bool) Fields {
	return Fields{key: value}
}

// Merge returns a new Fields holding f overlaid with other
func (f Fields) Merge(other Fields) Fields {
	result := make(Fields, len(f)+len(other))
	maps.Copy(result, f)
	maps.Copy(result, other)
	return result
}

// Clone returns a shallow copy, or nil for nil Fields
func (f Fields) Clone() Fields {
	if f == nil {
		return nil
	}
	return maps.Clone(f)
}

// Keys returns the field names in sorted order so formatted output is
// stable from one run to the next.
func (f Fields) Keys() []string {
	return slices.Sorted(maps.Keys(f))
}

// NewEntry creates an entry stamped with the current time
func NewEntry(level Level, message string) *Entry {
	return &Entry{
		Timestamp: time.Now(),
		Level:     level,
		Message:   message,
		Fields:    make(Fields),
	}
}

// WithFields adds fields to the entry
func (e *Entry) WithFields(fields Fields) *Entry {
	if e.Fields == nil {
		e.Fields = make(Fields, len(fields))
	}
	maps.Copy(e.Fields, fields)
	return e
}

// WithError attaches an error to the entry
func (e *Entry) WithError(err error) *Entry {
	e.Error = err
	return e
}

// WithDuration attaches a measured duration to the entry
func (e *Entry) WithDuration(d time.Duration) *Entry {
	e.Duration = d
	return e
}
