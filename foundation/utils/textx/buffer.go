// File: buffer.go
// Title: Owned Growable UTF-8 Buffer
// Description: Implements Buffer, an exclusively owned, growable byte
//              sequence that always holds valid UTF-8. Views over a Buffer
//              are zero-copy; the storage discipline below keeps the bytes
//              they reference from ever changing.
// Author: msto63
// Version: v0.1.0
// Created: 2025-10-17
// Modified: 2025-10-17
//
// Change History:
// - 2025-10-17 v0.1.0: Initial implementation

package textx

import (
	"fmt"
	"slices"
	"unicode/utf8"
	"unsafe"

	tkerrors "github.com/msto63/textkit/foundation/core/errors"
)

// Buffer is an owned, growable UTF-8 text buffer. The zero value is an
// empty buffer ready to use. A Buffer must not be copied after first use;
// use Clone to hand out an independent copy.
//
// Storage rules:
//   - bytes in [0, Len()) are never rewritten while the array is in use
//   - every shrinking operation clips capacity to the new length, so the
//     next growth moves to a fresh array
//
// A View taken from a Buffer therefore keeps observing exactly the bytes it
// was created over, whatever the buffer does afterwards.
type Buffer struct {
	addr *Buffer
	buf  []byte
}

// New returns an empty buffer
func New() *Buffer {
	return &Buffer{}
}

// WithCapacity returns an empty buffer able to hold n bytes without growing
func WithCapacity(n int) *Buffer {
	return &Buffer{buf: make([]byte, 0, n)}
}

// FromString copies s into a new buffer. It fails with an
// INVALID_ENCODING error if s is not valid UTF-8.
func FromString(s string) (*Buffer, error) {
	if off := invalidOffset(s); off >= 0 {
		return nil, tkerrors.TextxInvalidEncoding("from_string", off, len(s))
	}
	return &Buffer{buf: []byte(s)}, nil
}

// FromBytes copies p into a new buffer. It fails with an
// INVALID_ENCODING error if p is not valid UTF-8.
func FromBytes(p []byte) (*Buffer, error) {
	if !utf8.Valid(p) {
		return nil, tkerrors.TextxInvalidEncoding("from_bytes", invalidOffset(string(p)), len(p))
	}
	return &Buffer{buf: slices.Clone(p)}, nil
}

// ToOwned copies the text referenced by t into a new buffer. The result
// is independent of t and outlives it.
func ToOwned(t Text) *Buffer {
	s := t.View().s
	b := WithCapacity(len(s))
	b.buf = append(b.buf, s...)
	return b
}

// Format builds a buffer from a format string, like fmt.Sprintf
func Format(format string, args ...interface{}) (*Buffer, error) {
	b := New()
	if err := b.Appendf(format, args...); err != nil {
		return nil, err
	}
	return b, nil
}

func (b *Buffer) copyCheck() {
	if b.addr == nil {
		b.addr = b
	} else if b.addr != b {
		panic("textx: illegal use of non-zero Buffer copied by value")
	}
}

// View returns a zero-copy view of the whole buffer.
func (b *Buffer) View() View {
	if len(b.buf) == 0 {
		return View{}
	}
	return View{s: unsafe.String(unsafe.SliceData(b.buf), len(b.buf))}
}

// String returns the buffer contents without copying.
func (b *Buffer) String() string {
	return b.View().s
}

// Bytes returns a copy of the buffer contents.
func (b *Buffer) Bytes() []byte {
	return slices.Clone(b.buf)
}

// Len returns the length in bytes
func (b *Buffer) Len() int {
	return len(b.buf)
}

// Cap returns the number of bytes the buffer can hold without growing
func (b *Buffer) Cap() int {
	return cap(b.buf)
}

// IsEmpty reports whether the buffer holds no bytes
func (b *Buffer) IsEmpty() bool {
	return len(b.buf) == 0
}

// CharCount returns the number of Unicode scalar values
func (b *Buffer) CharCount() int {
	return utf8.RuneCount(b.buf)
}

// Slice returns a zero-copy view of bytes [start, end)
func (b *Buffer) Slice(start, end int) (View, error) {
	return b.View().Slice(start, end)
}

// Equal reports whether the buffer holds the same bytes as t
func (b *Buffer) Equal(t Text) bool {
	return Equal(b, t)
}

// Clone returns an independent copy of the buffer
func (b *Buffer) Clone() *Buffer {
	return ToOwned(b)
}

// Reserve ensures room for at least n more bytes without reallocation.
// Growth is geometric, so repeated appends are amortized O(1).
// Reserve panics if n is negative.
func (b *Buffer) Reserve(n int) {
	b.copyCheck()
	b.buf = slices.Grow(b.buf, n)
}

// Append copies t to the end of the buffer. It cannot fail: the bytes of
// a Text are valid UTF-8 by construction.
func (b *Buffer) Append(t Text) {
	b.copyCheck()
	b.buf = append(b.buf, t.View().s...)
}

// AppendString validates s and appends it. On invalid UTF-8 the buffer is
// left unchanged and an INVALID_ENCODING error is returned.
func (b *Buffer) AppendString(s string) error {
	if off := invalidOffset(s); off >= 0 {
		return tkerrors.TextxInvalidEncoding("append_string", off, len(s))
	}
	b.copyCheck()
	b.buf = append(b.buf, s...)
	return nil
}

// Write implements io.Writer. Input that is not valid UTF-8 on its own is
// rejected as a whole; nothing is written in that case.
func (b *Buffer) Write(p []byte) (int, error) {
	if !utf8.Valid(p) {
		return 0, tkerrors.TextxInvalidEncoding("write", invalidOffset(string(p)), len(p))
	}
	b.copyCheck()
	b.buf = append(b.buf, p...)
	return len(p), nil
}

// WriteString implements io.StringWriter
func (b *Buffer) WriteString(s string) (int, error) {
	if err := b.AppendString(s); err != nil {
		return 0, err
	}
	return len(s), nil
}

// PushRune appends the UTF-8 encoding of r. Surrogate halves and values
// above utf8.MaxRune are rejected with INVALID_ENCODING.
func (b *Buffer) PushRune(r rune) error {
	if !utf8.ValidRune(r) {
		return tkerrors.TextxInvalidRune("push_rune", r)
	}
	b.copyCheck()
	b.buf = utf8.AppendRune(b.buf, r)
	return nil
}

// Appendf appends formatted output, like fmt.Appendf. If the result is not
// valid UTF-8 (a %s argument carrying raw bytes, for example) the append
// is rolled back and an INVALID_ENCODING error is returned.
func (b *Buffer) Appendf(format string, args ...interface{}) error {
	b.copyCheck()
	old := len(b.buf)
	b.buf = fmt.Appendf(b.buf, format, args...)
	if added := b.buf[old:]; !utf8.Valid(added) {
		off := old + invalidOffset(string(added))
		b.buf = b.buf[:old]
		return tkerrors.TextxInvalidEncoding("appendf", off, old+len(added))
	}
	return nil
}

// Pop removes and returns the last character. It reports false when the
// buffer is empty.
func (b *Buffer) Pop() (rune, bool) {
	if len(b.buf) == 0 {
		return 0, false
	}
	b.copyCheck()
	r, size := utf8.DecodeLastRune(b.buf)
	n := len(b.buf) - size
	b.buf = b.buf[:n:n]
	return r, true
}

// Truncate shortens the buffer to n bytes. n must be a character
// boundary not greater than Len(), otherwise INVALID_BOUNDARY is returned.
func (b *Buffer) Truncate(n int) error {
	if !b.View().IsCharBoundary(n) {
		return tkerrors.TextxInvalidBoundary("truncate", n, len(b.buf))
	}
	b.copyCheck()
	b.buf = b.buf[:n:n]
	return nil
}

// Clear empties the buffer. Views taken earlier keep their bytes.
func (b *Buffer) Clear() {
	b.copyCheck()
	b.buf = nil
}
