// File: utils.go
// Title: Shared Error Handling Utilities
// Description: Provides the fluent ErrorBuilder and the standard error
//              constructors used by textkit modules, so every failure carries
//              a module, an operation, a code and structured details.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-10-17
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation of shared error utilities
// - 2025-07-26 v0.1.1: Enhanced OutOfRange function with "validation failed:" prefix
// - 2025-10-17 v0.2.0: textx and config convenience constructors, module codes folded in

package errors

import (
	"fmt"
	"strings"

	tkerror "github.com/msto63/textkit/foundation/core/error"
)

// Module identifiers for error categorization
const (
	ModuleTextx  = "textx"
	ModuleLog    = "log"
	ModuleConfig = "config"
	ModuleCLI    = "cli"
)

// ErrorBuilder provides a fluent interface for building standardized errors
type ErrorBuilder struct {
	module    string
	operation string
	message   string
	cause     error
	details   map[string]interface{}
	severity  tkerror.Severity
	code      tkerror.Code
}

// NewErrorBuilder creates a new error builder for the specified module
func NewErrorBuilder(module string) *ErrorBuilder {
	return &ErrorBuilder{
		module:   module,
		details:  make(map[string]interface{}),
		severity: tkerror.SeverityMedium,
	}
}

// Operation sets the operation name for the error
func (eb *ErrorBuilder) Operation(operation string) *ErrorBuilder {
	eb.operation = operation
	return eb
}

// Message sets the error message
func (eb *ErrorBuilder) Message(message string) *ErrorBuilder {
	eb.message = message
	return eb
}

// Messagef sets the error message with formatting
func (eb *ErrorBuilder) Messagef(format string, args ...interface{}) *ErrorBuilder {
	eb.message = fmt.Sprintf(format, args...)
	return eb
}

// Cause sets the underlying cause of the error
func (eb *ErrorBuilder) Cause(cause error) *ErrorBuilder {
	eb.cause = cause
	return eb
}

// Detail adds a detail key-value pair to the error
func (eb *ErrorBuilder) Detail(key string, value interface{}) *ErrorBuilder {
	eb.details[key] = value
	return eb
}

// Severity sets the error severity
func (eb *ErrorBuilder) Severity(severity tkerror.Severity) *ErrorBuilder {
	eb.severity = severity
	return eb
}

// Code sets the error code
func (eb *ErrorBuilder) Code(code tkerror.Code) *ErrorBuilder {
	eb.code = code
	return eb
}

// Build creates the final error
func (eb *ErrorBuilder) Build() *tkerror.Error {
	if eb.code == "" {
		eb.code = moduleErrorCode(eb.module)
	}

	if eb.message == "" {
		if eb.operation != "" {
			eb.message = fmt.Sprintf("%s.%s failed", eb.module, eb.operation)
		} else {
			eb.message = fmt.Sprintf("%s operation failed", eb.module)
		}
	}

	eb.details["module"] = eb.module
	if eb.operation != "" {
		eb.details["operation"] = eb.operation
	}

	var err *tkerror.Error
	if eb.cause != nil {
		err = tkerror.Wrap(eb.cause, eb.message)
	} else {
		err = tkerror.New(eb.message)
	}

	return err.
		WithCode(eb.code).
		WithOperation(eb.operation).
		WithContext(eb.module).
		WithDetails(eb.details).
		WithSeverity(eb.severity)
}

func moduleErrorCode(module string) tkerror.Code {
	if module == "" {
		return tkerror.CodeUnknown
	}
	return tkerror.Code(strings.ToUpper(module) + "_OPERATION_FAILED")
}

// =============================================================================
// STANDARD ERROR CREATION FUNCTIONS
// =============================================================================

// InvalidInput creates a standardized invalid input error
func InvalidInput(module, operation string, input interface{}, expected string) *tkerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("invalid input for %s.%s", module, operation).
		Code(tkerror.CodeInvalidInput).
		Detail("input", input).
		Detail("expected", expected).
		Severity(tkerror.SeverityLow).
		Build()
}

// OperationFailed creates a standardized operation failure error
func OperationFailed(module, operation string, cause error) *tkerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("%s.%s operation failed", module, operation).
		Cause(cause).
		Severity(tkerror.SeverityHigh).
		Build()
}

// ValidationFailed creates a standardized validation error
func ValidationFailed(module, field string, value interface{}, reason string) *tkerror.Error {
	return NewErrorBuilder(module).
		Operation("validate_"+field).
		Messagef("%s.validate_%s: validation failed for field %s: %s", module, field, field, reason).
		Code(tkerror.CodeValidationFailed).
		Detail("field", field).
		Detail("value", value).
		Detail("reason", reason).
		Severity(tkerror.SeverityLow).
		Build()
}

// OutOfRange creates a standardized out of range error
func OutOfRange(module, operation string, value, min, max interface{}) *tkerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("validation failed: value out of range in %s.%s", module, operation).
		Code(tkerror.CodeValueOutOfRange).
		Detail("value", value).
		Detail("min", min).
		Detail("max", max).
		Severity(tkerror.SeverityLow).
		Build()
}

// ExtractDetails extracts all details from a textkit error
func ExtractDetails(err error) map[string]interface{} {
	if tkErr, ok := tkerror.As(err); ok {
		return tkErr.Details()
	}
	return nil
}

// ExtractModule extracts the module name from an error
func ExtractModule(err error) string {
	if module, ok := ExtractDetails(err)["module"].(string); ok {
		return module
	}
	return ""
}

// ExtractOperation extracts the operation name from an error
func ExtractOperation(err error) string {
	if operation, ok := ExtractDetails(err)["operation"].(string); ok {
		return operation
	}
	return ""
}

// IsModuleOperation checks if error is from specific module and operation
func IsModuleOperation(err error, module, operation string) bool {
	return ExtractModule(err) == module && ExtractOperation(err) == operation
}

// =============================================================================
// MODULE-SPECIFIC CONVENIENCE FUNCTIONS
// =============================================================================

// TextxInvalidEncoding reports input bytes that are not valid UTF-8.
// offset is the byte offset of the first invalid sequence.
func TextxInvalidEncoding(operation string, offset, length int) *tkerror.Error {
	return NewErrorBuilder(ModuleTextx).
		Operation(operation).
		Messagef("invalid UTF-8 at byte offset %d", offset).
		Code(tkerror.CodeInvalidEncoding).
		Detail("offset", offset).
		Detail("length", length).
		Severity(tkerror.SeverityLow).
		Build()
}

// TextxInvalidBoundary reports a byte offset that splits a multi-byte
// character or lies outside the text.
func TextxInvalidBoundary(operation string, offset, length int) *tkerror.Error {
	reason := "not on a character boundary"
	if offset < 0 || offset > length {
		reason = "out of range"
	}
	return NewErrorBuilder(ModuleTextx).
		Operation(operation).
		Messagef("byte offset %d is %s (length %d)", offset, reason, length).
		Code(tkerror.CodeInvalidBoundary).
		Detail("offset", offset).
		Detail("length", length).
		Detail("reason", reason).
		Severity(tkerror.SeverityLow).
		Build()
}

// TextxInvalidRune reports a rune that is not a Unicode scalar value
func TextxInvalidRune(operation string, r rune) *tkerror.Error {
	return NewErrorBuilder(ModuleTextx).
		Operation(operation).
		Messagef("rune %U is not a Unicode scalar value", r).
		Code(tkerror.CodeInvalidEncoding).
		Detail("rune", int64(r)).
		Severity(tkerror.SeverityLow).
		Build()
}

// TextxInvalidRange reports a slice range whose start lies after its end
func TextxInvalidRange(operation string, start, end, length int) *tkerror.Error {
	return NewErrorBuilder(ModuleTextx).
		Operation(operation).
		Messagef("byte range [%d:%d] is inverted (length %d)", start, end, length).
		Code(tkerror.CodeInvalidBoundary).
		Detail("start", start).
		Detail("end", end).
		Detail("length", length).
		Detail("reason", "inverted range").
		Severity(tkerror.SeverityLow).
		Build()
}

// ConfigNotFound reports a missing configuration file
func ConfigNotFound(path string) *tkerror.Error {
	return NewErrorBuilder(ModuleConfig).
		Operation("load").
		Messagef("config file not found: %s", path).
		Code(tkerror.CodeNotFound).
		Detail("path", path).
		Build()
}

// ConfigParseError reports a configuration file that could not be decoded
func ConfigParseError(path, format string, cause error) *tkerror.Error {
	return NewErrorBuilder(ModuleConfig).
		Operation("load").
		Messagef("failed to parse %s config", format).
		Cause(cause).
		Code(tkerror.CodeConfigError).
		Detail("path", path).
		Detail("format", format).
		Severity(tkerror.SeverityHigh).
		Build()
}

// ConfigInvalid reports a configuration value that failed validation
func ConfigInvalid(key string, value interface{}, expected string) *tkerror.Error {
	return NewErrorBuilder(ModuleConfig).
		Operation("validate").
		Messagef("invalid config value for %s: %v (expected %s)", key, value, expected).
		Code(tkerror.CodeInvalidConfig).
		Detail("key", key).
		Detail("value", value).
		Detail("expected", expected).
		Severity(tkerror.SeverityLow).
		Build()
}
