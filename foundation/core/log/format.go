// File: format.go
// Title: Log Format Definitions
// Description: JSON, text, console and logfmt formatters for log entries.
//              Field keys are written in sorted order.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-10-17
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with multiple output formats
// - 2025-10-17 v0.2.0: Stable key order, foundation error details in JSON output

package log

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	tkerror "github.com/msto63/textkit/foundation/core/error"
	tkerrors "github.com/msto63/textkit/foundation/core/errors"
)

// Format selects an output format
type Format int

const (
	// FormatJSON writes one JSON object per line
	FormatJSON Format = iota
	// FormatText writes human readable lines
	FormatText
	// FormatConsole writes colored text lines for terminals
	FormatConsole
	// FormatLogfmt writes key=value pairs
	FormatLogfmt
)

// String returns the format name
func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatText:
		return "text"
	case FormatConsole:
		return "console"
	case FormatLogfmt:
		return "logfmt"
	default:
		return "unknown"
	}
}

// ParseFormat parses a format name, case-insensitively
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON, nil
	case "text":
		return FormatText, nil
	case "console":
		return FormatConsole, nil
	case "logfmt":
		return FormatLogfmt, nil
	default:
		return FormatText, tkerrors.InvalidInput(tkerrors.ModuleLog, "parse_format", s, "json|text|console|logfmt")
	}
}

// Formatter renders an entry to bytes, including the trailing newline
type Formatter interface {
	Format(entry *Entry) ([]byte, error)
}

// JSONFormatter formats entries as JSON
type JSONFormatter struct {
	TimestampFormat string
}

// NewJSONFormatter creates a JSON formatter with RFC 3339 timestamps
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{TimestampFormat: time.RFC3339}
}

// Format implements Formatter
func (f *JSONFormatter) Format(entry *Entry) ([]byte, error) {
	data := make(map[string]interface{}, len(entry.Fields)+8)
	for k, v := range entry.Fields {
		if err, ok := v.(error); ok {
			v = err.Error()
		}
		data[k] = v
	}

	data["timestamp"] = entry.Timestamp.Format(f.TimestampFormat)
	data["level"] = entry.Level.String()
	data["message"] = entry.Message
	if entry.Logger != "" {
		data["logger"] = entry.Logger
	}
	if entry.CorrelationID != "" {
		data["correlation_id"] = entry.CorrelationID
	}
	if entry.Error != nil {
		data["error"] = entry.Error.Error()
		if tkErr, ok := tkerror.As(entry.Error); ok {
			data["error_details"] = tkErr
		}
	}
	if entry.Duration > 0 {
		data["duration_ms"] = durationMillis(entry.Duration)
	}

	// encoding/json sorts map keys
	out, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	return append(out, '\n'), nil
}

// TextFormatter formats entries as "15:04:05 [INF] {name} message [k=v]"
type TextFormatter struct {
	TimestampFormat  string
	DisableTimestamp bool
}

// NewTextFormatter creates a text formatter with a time-of-day timestamp
func NewTextFormatter() *TextFormatter {
	return &TextFormatter{TimestampFormat: "15:04:05"}
}

// Format implements Formatter
func (f *TextFormatter) Format(entry *Entry) ([]byte, error) {
	var b bytes.Buffer

	if !f.DisableTimestamp {
		b.WriteString(entry.Timestamp.Format(f.TimestampFormat))
		b.WriteByte(' ')
	}
	fmt.Fprintf(&b, "[%s]", entry.Level.ShortString())
	if entry.Logger != "" {
		fmt.Fprintf(&b, " {%s}", entry.Logger)
	}
	b.WriteByte(' ')
	b.WriteString(entry.Message)

	if len(entry.Fields) > 0 {
		b.WriteString(" [")
		for i, k := range entry.Fields.Keys() {
			if i > 0 {
				b.WriteByte(' ')
			}
			fmt.Fprintf(&b, "%s=%v", k, entry.Fields[k])
		}
		b.WriteByte(']')
	}
	if entry.Error != nil {
		fmt.Fprintf(&b, " error=%q", entry.Error.Error())
	}
	if entry.Duration > 0 {
		fmt.Fprintf(&b, " duration=%s", entry.Duration)
	}

	b.WriteByte('\n')
	return b.Bytes(), nil
}

// ConsoleFormatter is a TextFormatter that colors each line by level
type ConsoleFormatter struct {
	*TextFormatter
	DisableColors bool
}

// NewConsoleFormatter creates a colored console formatter
func NewConsoleFormatter() *ConsoleFormatter {
	return &ConsoleFormatter{TextFormatter: NewTextFormatter()}
}

// Format implements Formatter
func (f *ConsoleFormatter) Format(entry *Entry) ([]byte, error) {
	line, err := f.TextFormatter.Format(entry)
	if err != nil || f.DisableColors {
		return line, err
	}
	colored := make([]byte, 0, len(line)+12)
	colored = append(colored, entry.Level.Color()...)
	colored = append(colored, bytes.TrimSuffix(line, []byte("\n"))...)
	colored = append(colored, colorReset...)
	return append(colored, '\n'), nil
}

// LogfmtFormatter formats entries as logfmt key=value pairs
type LogfmtFormatter struct {
	TimestampFormat string
}

// NewLogfmtFormatter creates a logfmt formatter with RFC 3339 timestamps
func NewLogfmtFormatter() *LogfmtFormatter {
	return &LogfmtFormatter{TimestampFormat: time.RFC3339}
}

// Format implements Formatter
func (f *LogfmtFormatter) Format(entry *Entry) ([]byte, error) {
	var b bytes.Buffer

	fmt.Fprintf(&b, "timestamp=%s level=%s message=%q",
		entry.Timestamp.Format(f.TimestampFormat), entry.Level, entry.Message)
	if entry.Logger != "" {
		fmt.Fprintf(&b, " logger=%s", entry.Logger)
	}
	if entry.CorrelationID != "" {
		fmt.Fprintf(&b, " correlation_id=%s", entry.CorrelationID)
	}
	for _, k := range entry.Fields.Keys() {
		fmt.Fprintf(&b, " %s=%s", k, logfmtValue(entry.Fields[k]))
	}
	if entry.Error != nil {
		fmt.Fprintf(&b, " error=%q", entry.Error.Error())
	}
	if entry.Duration > 0 {
		fmt.Fprintf(&b, " duration_ms=%.3f", durationMillis(entry.Duration))
	}

	b.WriteByte('\n')
	return b.Bytes(), nil
}

func logfmtValue(v interface{}) string {
	switch val := v.(type) {
	case string:
		return strconv.Quote(val)
	case error:
		return strconv.Quote(val.Error())
	case fmt.Stringer:
		return strconv.Quote(val.String())
	default:
		return fmt.Sprint(val)
	}
}

func durationMillis(d time.Duration) float64 {
	return float64(d.Nanoseconds()) / 1e6
}

// GetFormatter returns the formatter for a format, JSON for unknown values
func GetFormatter(format Format) Formatter {
	switch format {
	case FormatText:
		return NewTextFormatter()
	case FormatConsole:
		return NewConsoleFormatter()
	case FormatLogfmt:
		return NewLogfmtFormatter()
	default:
		return NewJSONFormatter()
	}
}
