// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels for errors so callers and the logger
//              can prioritize them.
// Author: msto63
// Version: v0.1.1
// Created: 2025-01-24
// Modified: 2025-10-17
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with severity levels
// - 2025-10-17 v0.1.1: Severity mapping for encoding codes

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates a caller input problem, e.g. invalid UTF-8
	// or a slice offset inside a character
	SeverityLow Severity = iota

	// SeverityMedium indicates an error that affects functionality but has workarounds
	SeverityMedium

	// SeverityHigh indicates a serious error such as unreadable configuration
	SeverityHigh

	// SeverityCritical indicates an internal invariant violation
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// Level returns the numeric level of the severity (0-3)
func (s Severity) Level() int {
	return int(s)
}

// ShouldAlert returns true if this severity level should trigger alerts
func (s Severity) ShouldAlert() bool {
	return s >= SeverityHigh
}

// GetSeverityFromCode determines appropriate severity level based on error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeInternal:
		return SeverityCritical

	case CodeConfigError, CodeEnvironmentError:
		return SeverityHigh

	case CodeInvalidInput, CodeNotFound, CodeValidationFailed, CodeRequiredField,
		CodeInvalidFormat, CodeValueOutOfRange, CodeInvalidEncoding, CodeInvalidBoundary,
		CodeInvalidConfig, CodeMissingConfig:
		return SeverityLow

	default:
		return SeverityMedium
	}
}
