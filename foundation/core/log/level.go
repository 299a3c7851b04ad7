// File: level.go
// Title: Log Level Definitions
// Description: Defines the log levels used to filter textkit diagnostics
//              and the parsing used by the --log-level flag and the [log]
//              config section.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-10-17
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with standard log levels
// - 2025-10-17 v0.2.0: Audit level removed, parse failures use foundation errors

package log

import (
	"strings"

	tkerrors "github.com/msto63/textkit/foundation/core/errors"
)

// Level represents the importance level of a log message
type Level int

const (
	// LevelTrace logs every text operation the CLI performs
	LevelTrace Level = iota
	// LevelDebug logs configuration and command resolution
	LevelDebug
	// LevelInfo logs command completion
	LevelInfo
	// LevelWarn logs recoverable problems such as a rejected input
	LevelWarn
	// LevelError logs failed commands
	LevelError
	// LevelFatal logs a failure that terminates the process
	LevelFatal
)

var levelNames = [...]string{"trace", "debug", "info", "warn", "error", "fatal"}
var levelShort = [...]string{"TRC", "DBG", "INF", "WRN", "ERR", "FTL"}

// String returns the lower-case name of the level
func (l Level) String() string {
	if l < LevelTrace || l > LevelFatal {
		return "unknown"
	}
	return levelNames[l]
}

// ShortString returns the three letter tag used by the text formatter
func (l Level) ShortString() string {
	if l < LevelTrace || l > LevelFatal {
		return "???"
	}
	return levelShort[l]
}

// Color returns the ANSI color sequence used by the console formatter
func (l Level) Color() string {
	switch l {
	case LevelTrace:
		return "\033[37m"
	case LevelDebug:
		return "\033[36m"
	case LevelInfo:
		return "\033[32m"
	case LevelWarn:
		return "\033[33m"
	case LevelError:
		return "\033[31m"
	case LevelFatal:
		return "\033[35m"
	default:
		return colorReset
	}
}

const colorReset = "\033[0m"

// Enabled reports whether a message at level l passes the minimum level
func (l Level) Enabled(min Level) bool {
	return l >= min
}

// ParseLevel parses a level name or its short tag, case-insensitively
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace", "trc":
		return LevelTrace, nil
	case "debug", "dbg":
		return LevelDebug, nil
	case "info", "inf":
		return LevelInfo, nil
	case "warn", "wrn", "warning":
		return LevelWarn, nil
	case "error", "err":
		return LevelError, nil
	case "fatal", "ftl":
		return LevelFatal, nil
	default:
		return LevelInfo, tkerrors.InvalidInput(tkerrors.ModuleLog, "parse_level", s, strings.Join(levelNames[:], "|"))
	}
}

// AllLevels returns every level from most to least verbose
func AllLevels() []Level {
	return []Level{LevelTrace, LevelDebug, LevelInfo, LevelWarn, LevelError, LevelFatal}
}

// DefaultLevel is the level used when nothing is configured. The CLI keeps
// stdout for command results, so only problems are logged by default.
func DefaultLevel() Level {
	return LevelWarn
}
