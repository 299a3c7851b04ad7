// File: doc.go
// Title: Package Documentation for textx
// Description: Package textx provides owned UTF-8 text buffers and
//              zero-copy, boundary-checked views over them.
// Author: msto63
// Version: v0.1.0
// Created: 2025-10-17
// Modified: 2025-10-17
//
// Change History:
// - 2025-10-17 v0.1.0: Initial implementation, replaces stringx

// Package textx provides UTF-8 text storage with an explicit split between
// owned and borrowed text.
//
// # Types
//
//   - Buffer: owned, growable, always valid UTF-8. Mutated in place by
//     Append, AppendString, PushRune, Appendf, Pop, Truncate and Clear.
//   - View: immutable, non-owning reference to UTF-8 bytes held by a
//     Buffer or by static data (string literals). Slicing and trimming a
//     View never copies.
//   - Text: the interface both satisfy, so operations accept either.
//
// # Lengths
//
// Len is measured in bytes. CharCount decodes and counts Unicode scalar
// values. GraphemeCount counts user-perceived characters.
//
//	v := textx.MustLiteral("ಠ_ಠ")
//	v.Len()       // 7
//	v.CharCount() // 3
//
// # Errors
//
// Two failure kinds exist, both *error.Error values from
// foundation/core/error:
//
//   - INVALID_ENCODING: input bytes are not valid UTF-8 (FromLiteral,
//     FromString, FromBytes, AppendString, Write, Appendf, PushRune)
//   - INVALID_BOUNDARY: a byte offset splits a character or lies outside
//     the text (Slice, Truncate)
//
// Use IsInvalidEncoding and IsInvalidBoundary to classify them. Both are
// contract violations by the caller; retrying with the same input fails
// the same way.
//
// # Equality
//
// Equal and Compare work on bytes. They are not normalization-aware: the
// precomposed "é" (U+00E9) and "e" followed by U+0301 compare unequal.
// EqualNormalized and Normalize are available when that is wanted.
//
// # Ownership
//
// A Buffer has a single owner and no internal locking. Views are
// immutable and safe to share. The bytes a View references are never
// rewritten by later buffer mutations, so a View stays correct for its
// whole lifetime.
package textx
