// File: ops.go
// Title: Text Operations
// Description: Concatenation, joining, replacement, comparison, trimming,
//              searching and lazy splitting over Text values. Matching is
//              plain byte-pattern matching; nothing here is
//              normalization-aware (see unicode.go for the opt-in helpers).
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
	"strings"
	"unicode"

	tkerror "github.com/msto63/textkit/foundation/core/error"
)

// Slice returns the zero-copy view [start, end) of a buffer or view.
func Slice(t Text, start, end int) (View, error) {
	return t.View().Slice(start, end)
}

// Concat copies texts in order into a single buffer sized to the sum of
// their lengths. No separator is inserted.
func Concat[T Text](texts []T) *Buffer {
	total := 0
	for _, t := range texts {
		total += t.View().Len()
	}

	b := WithCapacity(total)
	for _, t := range texts {
		b.buf = append(b.buf, t.View().s...)
	}
	return b
}

// Join is like Concat but inserts sep between successive elements.
// Zero elements yield an empty buffer; one element yields a plain copy.
func Join[T Text](texts []T, sep Text) *Buffer {
	if len(texts) == 0 {
		return New()
	}

	s := sep.View().s
	total := len(s) * (len(texts) - 1)
	for _, t := range texts {
		total += t.View().Len()
	}

	b := WithCapacity(total)
	for i, t := range texts {
		if i > 0 {
			b.buf = append(b.buf, s...)
		}
		b.buf = append(b.buf, t.View().s...)
	}
	return b
}

// Replace returns a new buffer with every non-overlapping occurrence of
// needle in haystack replaced by replacement. An empty needle matches at
// every character boundary.
func Replace(haystack, needle, replacement Text) *Buffer {
	h, n, r := haystack.View().s, needle.View().s, replacement.View().s

	if n == "" {
		return &Buffer{buf: []byte(strings.ReplaceAll(h, n, r))}
	}

	count := strings.Count(h, n)
	b := WithCapacity(len(h) + count*(len(r)-len(n)))
	for i := 0; i < count; i++ {
		j := strings.Index(h, n)
		b.buf = append(b.buf, h[:j]...)
		b.buf = append(b.buf, r...)
		h = h[j+len(n):]
	}
	b.buf = append(b.buf, h...)
	return b
}

// Equal reports whether a and b hold identical bytes. Two different
// encodings of text a reader would consider the same (precomposed vs.
// decomposed accents, say) are not equal.
func Equal(a, b Text) bool {
	return a.View().s == b.View().s
}

// Compare orders a and b lexicographically by bytes and returns -1, 0 or +1
func Compare(a, b Text) int {
	return strings.Compare(a.View().s, b.View().s)
}

// Contains reports whether needle occurs in v
func (v View) Contains(needle Text) bool {
	return strings.Contains(v.s, needle.View().s)
}

// StartsWith reports whether v begins with prefix
func (v View) StartsWith(prefix Text) bool {
	return strings.HasPrefix(v.s, prefix.View().s)
}

// EndsWith reports whether v ends with suffix
func (v View) EndsWith(suffix Text) bool {
	return strings.HasSuffix(v.s, suffix.View().s)
}

// Index returns the byte offset of the first occurrence of needle, or -1.
// A returned offset is always a character boundary.
func (v View) Index(needle Text) int {
	return strings.Index(v.s, needle.View().s)
}

// Count returns the number of non-overlapping occurrences of needle
func (v View) Count(needle Text) int {
	return strings.Count(v.s, needle.View().s)
}

// Replace is the method form of Replace
func (v View) Replace(needle, replacement Text) *Buffer {
	return Replace(v, needle, replacement)
}

// Trim returns v without leading and trailing Unicode white space.
func (v View) Trim() View {
	return v.TrimFunc(unicode.IsSpace)
}

// TrimASCII returns v without leading and trailing ASCII white space
// (space, \t, \n, \v, \f, \r).
func (v View) TrimASCII() View {
	return v.TrimFunc(isASCIISpace)
}

// TrimStart removes leading Unicode white space
func (v View) TrimStart() View {
	return View{s: strings.TrimLeftFunc(v.s, unicode.IsSpace)}
}

// TrimEnd removes trailing Unicode white space
func (v View) TrimEnd() View {
	return View{s: strings.TrimRightFunc(v.s, unicode.IsSpace)}
}

// TrimFunc removes leading and trailing characters matching pred.
// The result shares storage with v.
func (v View) TrimFunc(pred func(rune) bool) View {
	return View{s: strings.TrimFunc(v.s, pred)}
}

// TrimPrefix returns v without prefix, or v unchanged when it does not
// start with it.
func (v View) TrimPrefix(prefix Text) View {
	return View{s: strings.TrimPrefix(v.s, prefix.View().s)}
}

// TrimSuffix returns v without suffix, or v unchanged when it does not
// end with it.
func (v View) TrimSuffix(suffix Text) View {
	return View{s: strings.TrimSuffix(v.s, suffix.View().s)}
}

func isASCIISpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// SplitOn returns a lazy sequence of the views between occurrences of sep.
// Adjacent separators produce empty views, text without sep produces
// the text itself, and an empty sep splits after each character.
// The sequence is finite and can be ranged over any number of times.
func (v View) SplitOn(sep Text) iter.Seq[View] {
	s, p := v.s, sep.View().s
	return func(yield func(View) bool) {
		for part := range strings.SplitSeq(s, p) {
			if !yield(View{s: part}) {
				return
			}
		}
	}
}

// Lines returns a lazy sequence of the lines of v without their
// terminating "\n" or "\r\n".
func (v View) Lines() iter.Seq[View] {
	s := v.s
	return func(yield func(View) bool) {
		for line := range strings.Lines(s) {
			if l, ok := strings.CutSuffix(line, "\n"); ok {
				line = strings.TrimSuffix(l, "\r")
			}
			if !yield(View{s: line}) {
				return
			}
		}
	}
}

// Collect drains a sequence of views into a slice
func Collect(seq iter.Seq[View]) []View {
	var views []View
	for v := range seq {
		views = append(views, v)
	}
	return views
}

// IsInvalidEncoding reports whether err, or an error it wraps, is an
// INVALID_ENCODING failure.
func IsInvalidEncoding(err error) bool {
	return tkerror.HasCode(err, tkerror.CodeInvalidEncoding)
}

// IsInvalidBoundary reports whether err, or an error it wraps, is an
// INVALID_BOUNDARY failure.
func IsInvalidBoundary(err error) bool {
	return tkerror.HasCode(err, tkerror.CodeInvalidBoundary)
}
