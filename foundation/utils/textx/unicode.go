// File: unicode.go
// Title: Normalization and Grapheme Helpers
// Description: Opt-in Unicode helpers layered over the byte-exact core:
//              normalization forms (golang.org/x/text/unicode/norm) and
//              grapheme cluster / display width measures (rivo/uniseg).
// Author: msto63
// Version: v0.1.0
// Created: 2025-10-17
// Modified: 2025-10-17
//
// Change History:
// - 2025-10-17 v0.1.0: Initial implementation

package textx

import (
	"strings"

	"github.com/rivo/uniseg"
	"golang.org/x/text/unicode/norm"

	tkerrors "github.com/msto63/textkit/foundation/core/errors"
)

// NormForm selects a Unicode normalization form
type NormForm int

const (
	// NFC is canonical composition
	NFC NormForm = iota
	// NFD is canonical decomposition
	NFD
	// NFKC is compatibility composition
	NFKC
	// NFKD is compatibility decomposition
	NFKD
)

// String returns the conventional name of the form
func (f NormForm) String() string {
	switch f {
	case NFC:
		return "NFC"
	case NFD:
		return "NFD"
	case NFKC:
		return "NFKC"
	case NFKD:
		return "NFKD"
	default:
		return "unknown"
	}
}

func (f NormForm) form() norm.Form {
	switch f {
	case NFD:
		return norm.NFD
	case NFKC:
		return norm.NFKC
	case NFKD:
		return norm.NFKD
	default:
		return norm.NFC
	}
}

// ParseNormForm parses "NFC", "NFD", "NFKC" or "NFKD", case-insensitively
func ParseNormForm(s string) (NormForm, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "NFC":
		return NFC, nil
	case "NFD":
		return NFD, nil
	case "NFKC":
		return NFKC, nil
	case "NFKD":
		return NFKD, nil
	default:
		return NFC, tkerrors.InvalidInput(tkerrors.ModuleTextx, "parse_norm_form", s, "NFC|NFD|NFKC|NFKD")
	}
}

// Normalize returns a new buffer holding t in the given normalization form.
func Normalize(t Text, f NormForm) *Buffer {
	s := t.View().s
	return &Buffer{buf: f.form().AppendString(make([]byte, 0, len(s)), s)}
}

// IsNormalized reports whether t is already in the given form
func IsNormalized(t Text, f NormForm) bool {
	return f.form().IsNormalString(t.View().s)
}

// EqualNormalized reports whether a and b are equal after both are
// brought into the given form. Equal remains the byte-exact comparison.
func EqualNormalized(a, b Text, f NormForm) bool {
	form := f.form()
	return form.String(a.View().s) == form.String(b.View().s)
}

// GraphemeCount returns the number of user-perceived characters
// (extended grapheme clusters). It is never larger than CharCount.
func (v View) GraphemeCount() int {
	return uniseg.GraphemeClusterCount(v.s)
}

// DisplayWidth returns the number of monospace terminal cells the text
// occupies.
func (v View) DisplayWidth() int {
	return uniseg.StringWidth(v.s)
}
