// Package errors provides the standard error constructors for textkit modules.
//
// Package: errors
// Title: Standard Error Handling API for textkit
// Description: Common error patterns built on the core error package. Every
//              error produced here records the module and operation it came
//              from, a code, a severity and structured details.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-10-17
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation for cross-module error standardization
// - 2025-10-17 v0.2.0: textx encoding/boundary and config constructors
//
// # Error Creation
//
//   - NewErrorBuilder: fluent construction with module/operation context
//   - InvalidInput, ValidationFailed, OutOfRange, OperationFailed
//   - TextxInvalidEncoding, TextxInvalidBoundary, TextxInvalidRange
//   - ConfigNotFound, ConfigParseError, ConfigInvalid
//
// # Error Analysis
//
//	if errors.IsModuleOperation(err, errors.ModuleTextx, "slice") {
//		offset := errors.ExtractDetails(err)["offset"]
//		...
//	}
package errors
