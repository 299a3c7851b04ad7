// Package error provides structured error handling for textkit.
//
// Package: error
// Title: textkit Error Handling Framework
// Description: Structured errors with codes, severities, details and stack
//              traces. The text packages report their two failure kinds
//              (invalid encoding, invalid boundary) through this type.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-10-17
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors and codes
// - 2025-10-17 v0.2.0: Encoding codes, chain-aware HasCode
//
// Usage:
//
//	import tkerror "github.com/msto63/textkit/foundation/core/error"
//
//	err := tkerror.New("byte offset splits a character").
//		WithCode(tkerror.CodeInvalidBoundary).
//		WithDetail("offset", 1)
//
//	if tkerror.HasCode(err, tkerror.CodeInvalidBoundary) {
//		// ask the caller for a corrected offset
//	}
package error
