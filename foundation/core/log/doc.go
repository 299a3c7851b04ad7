// Package log provides structured logging for textkit.
//
// Package: log
// Title: textkit Structured Logging
// Description: Levels, structured fields, four output formats and an
//              operation timer, integrated with the foundation error type
//              so failures are logged with their code and details.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-10-17
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging and error integration
// - 2025-10-17 v0.2.0: Adapted for textkit
//
// Usage:
//
//	import tklog "github.com/msto63/textkit/foundation/core/log"
//
//	logger := tklog.New().
//		WithLevel(tklog.LevelDebug).
//		WithFormat(tklog.FormatLogfmt).
//		WithName("cli")
//
//	logger.Debug("slice requested", tklog.Fields{"start": 1, "end": 7})
//	logger.LogError(err)
//
//	timer := logger.StartTimer("join")
//	// ... join
//	timer.Stop()
package log
