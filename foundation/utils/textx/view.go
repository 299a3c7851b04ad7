// File: view.go
// Title: Borrowed UTF-8 Text Views
// Description: Implements View, an immutable non-owning reference to a run
//              of valid UTF-8 held by a Buffer or by static program data,
//              together with the Text interface shared by View and Buffer.
// Author: msto63
// Version: v0.1.0
// Created: 2025-10-17
// Modified: 2025-10-17
//
// Change History:
// - 2025-10-17 v0.1.0: Initial implementation

package textx

import (
	"iter"
	"unicode/utf8"

	tkerrors "github.com/msto63/textkit/foundation/core/errors"
)

// Text is implemented by View and *Buffer. Operations that accept either
// an owned buffer or a borrowed view take a Text.
type Text interface {
	View() View
}

// View is a read-only reference to valid UTF-8 bytes owned by someone
// else. The zero View is the empty text. Views are small values and are
// meant to be passed by value.
type View struct {
	s string
}

// FromLiteral returns a view over s without copying it.
// It fails with an INVALID_ENCODING error if s is not valid UTF-8.
func FromLiteral(s string) (View, error) {
	if off := invalidOffset(s); off >= 0 {
		return View{}, tkerrors.TextxInvalidEncoding("from_literal", off, len(s))
	}
	return View{s: s}, nil
}

// MustLiteral is like FromLiteral but panics on invalid UTF-8.
// Intended for compile-time constants.
func MustLiteral(s string) View {
	v, err := FromLiteral(s)
	if err != nil {
		panic(err)
	}
	return v
}

// MustLiterals converts several constants at once
func MustLiterals(ss ...string) []View {
	views := make([]View, len(ss))
	for i, s := range ss {
		views[i] = MustLiteral(s)
	}
	return views
}

// View returns v itself so a View satisfies Text.
func (v View) View() View {
	return v
}

// Len returns the length in bytes, not characters.
func (v View) Len() int {
	return len(v.s)
}

// IsEmpty reports whether the view holds no bytes
func (v View) IsEmpty() bool {
	return len(v.s) == 0
}

// CharCount returns the number of Unicode scalar values. It decodes the
// whole view and is O(n) in the byte length.
func (v View) CharCount() int {
	return utf8.RuneCountInString(v.s)
}

// String returns the text as a Go string without copying.
func (v View) String() string {
	return v.s
}

// Bytes returns a copy of the underlying bytes.
func (v View) Bytes() []byte {
	return []byte(v.s)
}

// ToOwned copies the view into a new, independently mutable Buffer.
func (v View) ToOwned() *Buffer {
	return ToOwned(v)
}

// IsCharBoundary reports whether byte offset i falls between characters.
// 0 and Len() are boundaries; offsets outside the view are not.
func (v View) IsCharBoundary(i int) bool {
	if i == 0 || i == len(v.s) {
		return true
	}
	if i < 0 || i > len(v.s) {
		return false
	}
	return utf8.RuneStart(v.s[i])
}

// Slice returns the sub-view [start, end) without copying.
// Both ends must be character boundaries within the view, otherwise an
// INVALID_BOUNDARY error is returned.
func (v View) Slice(start, end int) (View, error) {
	if err := v.checkRange("slice", start, end); err != nil {
		return View{}, err
	}
	return View{s: v.s[start:end]}, nil
}

// SliceFrom returns the sub-view starting at byte offset start
func (v View) SliceFrom(start int) (View, error) {
	return v.Slice(start, len(v.s))
}

// SliceTo returns the sub-view ending at byte offset end
func (v View) SliceTo(end int) (View, error) {
	return v.Slice(0, end)
}

func (v View) checkRange(operation string, start, end int) error {
	n := len(v.s)
	if !v.IsCharBoundary(start) {
		return tkerrors.TextxInvalidBoundary(operation, start, n)
	}
	if !v.IsCharBoundary(end) {
		return tkerrors.TextxInvalidBoundary(operation, end, n)
	}
	if start > end {
		return tkerrors.TextxInvalidRange(operation, start, end, n)
	}
	return nil
}

// Chars iterates over the scalar values of the view together with the
// byte offset at which each one starts.
func (v View) Chars() iter.Seq2[int, rune] {
	return func(yield func(int, rune) bool) {
		for i, r := range v.s {
			if !yield(i, r) {
				return
			}
		}
	}
}

// Equal reports whether v and other hold identical bytes
func (v View) Equal(other Text) bool {
	return Equal(v, other)
}

// Compare orders v and other bytewise
func (v View) Compare(other Text) int {
	return Compare(v, other)
}

// invalidOffset returns the byte offset of the first invalid UTF-8
// sequence in s, or -1 when s is valid.
func invalidOffset(s string) int {
	if utf8.ValidString(s) {
		return -1
	}
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			return i
		}
		i += size
	}
	return -1
}
