// File: unicode_test.go
// Title: Unit Tests for Normalization and Grapheme Helpers
// Description: Tests for normalization forms, normalization-aware equality,
//              grapheme cluster counting and display width.
// Author: msto63
// Version: v0.1.0
// Created: 2025-10-17
// Modified: 2025-10-17
//
// Change History:
// - 2025-10-17 v0.1.0: Initial test implementation

package textx

import (
	"testing"

	tkerror "github.com/msto63/textkit/foundation/core/error"
)

const (
	precomposed = "\u00e9"
	decomposed  = "e\u0301"
)

func TestParseNormForm(t *testing.T) {
	tests := []struct {
		input   string
		want    NormForm
		wantErr bool
	}{
		{"NFC", NFC, false},
		{"nfd", NFD, false},
		{" NFKC ", NFKC, false},
		{"NfKd", NFKD, false},
		{"", NFC, true},
		{"NFX", NFC, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseNormForm(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseNormForm(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if tt.wantErr {
				if !tkerror.HasCode(err, tkerror.CodeInvalidInput) {
					t.Errorf("ParseNormForm(%q) code = %v", tt.input, tkerror.GetCode(err))
				}
				return
			}
			if got != tt.want {
				t.Errorf("ParseNormForm(%q) = %v, want %v", tt.input, got, tt.want)
			}
			if got.String() != tt.want.String() {
				t.Errorf("String() = %q", got.String())
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		form  NormForm
		want  string
	}{
		{"compose", decomposed, NFC, precomposed},
		{"decompose", precomposed, NFD, decomposed},
		{"already composed", precomposed, NFC, precomposed},
		{"ascii unchanged", "noodles", NFD, "noodles"},
		{"compatibility ligature", "\ufb01", NFKC, "fi"},
		{"canonical keeps ligature", "\ufb01", NFC, "\ufb01"},
		{"compatibility decomposition", "\u2460", NFKD, "1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := MustLiteral(tt.input)
			got := Normalize(src, tt.form)
			if got.String() != tt.want {
				t.Errorf("Normalize(%q, %v) = %q, want %q", tt.input, tt.form, got, tt.want)
			}
			if !IsNormalized(got, tt.form) {
				t.Errorf("Normalize(%q, %v) result is not normalized", tt.input, tt.form)
			}
			if src.String() != tt.input {
				t.Error("Normalize must not modify its input")
			}
		})
	}
}

func TestEqualNormalized(t *testing.T) {
	a := MustLiteral(precomposed)
	b := MustLiteral(decomposed)

	if Equal(a, b) {
		t.Fatal("byte equality must distinguish the two encodings")
	}
	for _, f := range []NormForm{NFC, NFD, NFKC, NFKD} {
		if !EqualNormalized(a, b, f) {
			t.Errorf("EqualNormalized(%v) = false", f)
		}
	}
	if EqualNormalized(a, MustLiteral("e"), NFC) {
		t.Error("EqualNormalized should not strip accents")
	}
}

func TestGraphemeCount(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantChars int
		wantGraph int
	}{
		{"ascii", "noodles", 7, 7},
		{"kannada", "ಠ_ಠ", 3, 3},
		{"combining accent", decomposed, 2, 1},
		{"zwj family", "\U0001F468\u200d\U0001F469\u200d\U0001F467", 5, 1},
		{"flag", "\U0001F1E9\U0001F1EA", 2, 1},
		{"crlf", "\r\n", 2, 1},
		{"empty", "", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := MustLiteral(tt.input)
			if got := v.CharCount(); got != tt.wantChars {
				t.Errorf("CharCount() = %d, want %d", got, tt.wantChars)
			}
			if got := v.GraphemeCount(); got != tt.wantGraph {
				t.Errorf("GraphemeCount() = %d, want %d", got, tt.wantGraph)
			}
			if v.GraphemeCount() > v.CharCount() {
				t.Error("GraphemeCount() exceeds CharCount()")
			}
		})
	}
}

func TestDisplayWidth(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"", 0},
		{"abc", 3},
		{"日本", 4},
		{decomposed, 1},
	}

	for _, tt := range tests {
		if got := MustLiteral(tt.input).DisplayWidth(); got != tt.want {
			t.Errorf("DisplayWidth(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}
