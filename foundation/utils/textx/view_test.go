// File: view_test.go
// Title: Unit Tests for Text Views
// Description: Tests for literal validation, byte vs. character lengths,
//              boundary-checked slicing and character iteration.
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

	tkerrors "github.com/msto63/textkit/foundation/core/errors"
)

func TestFromLiteral(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantErr    bool
		wantOffset int
	}{
		{"empty", "", false, 0},
		{"ascii", "noodles", false, 0},
		{"kannada", "ಠ_ಠ", false, 0},
		{"escapes", "\"Ouch!\" said the well.\n", false, 0},
		{"replacement char is valid", "\uFFFD", false, 0},
		{"lone continuation byte", "ok\x80", true, 2},
		{"invalid lead byte", "ok\xffno", true, 2},
		{"truncated sequence", "ಠ\xe0\xb2", true, 3},
		{"surrogate encoding", "\xed\xa0\x80", true, 0},
		{"overlong encoding", "\xc0\xaf", true, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := FromLiteral(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("FromLiteral(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if tt.wantErr {
				if !IsInvalidEncoding(err) {
					t.Errorf("FromLiteral(%q) error = %v, want INVALID_ENCODING", tt.input, err)
				}
				if got := tkerrors.ExtractDetails(err)["offset"]; got != tt.wantOffset {
					t.Errorf("offset detail = %v, want %d", got, tt.wantOffset)
				}
				if IsInvalidBoundary(err) {
					t.Error("encoding errors must not be classified as boundary errors")
				}
				return
			}
			if v.String() != tt.input {
				t.Errorf("FromLiteral(%q).String() = %q", tt.input, v.String())
			}
		})
	}
}

func TestMustLiteralPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustLiteral should panic on invalid UTF-8")
		}
	}()
	MustLiteral("\xff")
}

func TestLengths(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantLen   int
		wantChars int
	}{
		{"empty", "", 0, 0},
		{"ascii", "noodles", 7, 7},
		{"kannada", "ಠ_ಠ", 7, 3},
		{"degree sign", "24°05′23″N", 15, 10},
		{"emoji", "🦀", 4, 1},
		{"combining", "e\u0301", 3, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := MustLiteral(tt.input)
			if v.Len() != tt.wantLen {
				t.Errorf("Len() = %d, want %d", v.Len(), tt.wantLen)
			}
			if v.CharCount() != tt.wantChars {
				t.Errorf("CharCount() = %d, want %d", v.CharCount(), tt.wantChars)
			}
			if v.CharCount() > v.Len() {
				t.Errorf("CharCount() %d exceeds Len() %d", v.CharCount(), v.Len())
			}
			if v.IsEmpty() != (tt.wantLen == 0) {
				t.Errorf("IsEmpty() = %v", v.IsEmpty())
			}
		})
	}
}

func TestASCIILengthEqualsCharCount(t *testing.T) {
	for _, s := range []string{"", "a", "hello, world", "C:\\Program Files\\Gorillas", "GET"} {
		v := MustLiteral(s)
		if v.Len() != v.CharCount() {
			t.Errorf("%q: Len() = %d, CharCount() = %d", s, v.Len(), v.CharCount())
		}
	}
}

func TestIsCharBoundary(t *testing.T) {
	v := MustLiteral("ಠ_ಠ")
	want := map[int]bool{
		-1: false, 0: true, 1: false, 2: false, 3: true,
		4: true, 5: false, 6: false, 7: true, 8: false,
	}
	for i, w := range want {
		if got := v.IsCharBoundary(i); got != w {
			t.Errorf("IsCharBoundary(%d) = %v, want %v", i, got, w)
		}
	}
}

func TestViewSlice(t *testing.T) {
	v := MustLiteral("ಠ_ಠ")

	tests := []struct {
		name    string
		start   int
		end     int
		want    string
		wantErr bool
	}{
		{"whole", 0, 7, "ಠ_ಠ", false},
		{"first char", 0, 3, "ಠ", false},
		{"underscore", 3, 4, "_", false},
		{"empty at boundary", 4, 4, "", false},
		{"start inside first char", 1, 7, "", true},
		{"end inside last char", 0, 5, "", true},
		{"end past length", 0, 8, "", true},
		{"negative start", -1, 3, "", true},
		{"inverted", 4, 3, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := v.Slice(tt.start, tt.end)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Slice(%d, %d) error = %v, wantErr %v", tt.start, tt.end, err, tt.wantErr)
			}
			if tt.wantErr {
				if !IsInvalidBoundary(err) {
					t.Errorf("Slice(%d, %d) error = %v, want INVALID_BOUNDARY", tt.start, tt.end, err)
				}
				return
			}
			if got.String() != tt.want {
				t.Errorf("Slice(%d, %d) = %q, want %q", tt.start, tt.end, got, tt.want)
			}
		})
	}
}

func TestSliceFromAndTo(t *testing.T) {
	v := MustLiteral("noodles")

	oodles, err := v.SliceFrom(1)
	if err != nil || oodles.String() != "oodles" {
		t.Errorf("SliceFrom(1) = %q, %v", oodles, err)
	}

	noodle, err := v.SliceTo(6)
	if err != nil || noodle.String() != "noodle" {
		t.Errorf("SliceTo(6) = %q, %v", noodle, err)
	}

	if _, err := MustLiteral("ಠ").SliceFrom(2); !IsInvalidBoundary(err) {
		t.Errorf("SliceFrom(2) error = %v, want INVALID_BOUNDARY", err)
	}
}

func TestSliceErrorDetails(t *testing.T) {
	_, err := Slice(MustLiteral("ಠ_ಠ"), 1, 7)

	details := tkerrors.ExtractDetails(err)
	if details["offset"] != 1 {
		t.Errorf("offset = %v, want 1", details["offset"])
	}
	if details["length"] != 7 {
		t.Errorf("length = %v, want 7", details["length"])
	}
	if !tkerrors.IsModuleOperation(err, tkerrors.ModuleTextx, "slice") {
		t.Errorf("error should come from textx.slice, got %v", details)
	}
}

func TestChars(t *testing.T) {
	v := MustLiteral("ಠ_ಠ")

	var offsets []int
	var runes []rune
	for i, r := range v.Chars() {
		offsets = append(offsets, i)
		runes = append(runes, r)
	}

	wantOffsets := []int{0, 3, 4}
	wantRunes := []rune{'ಠ', '_', 'ಠ'}
	if len(offsets) != len(wantOffsets) {
		t.Fatalf("Chars() yielded %d items, want %d", len(offsets), len(wantOffsets))
	}
	for i := range wantOffsets {
		if offsets[i] != wantOffsets[i] || runes[i] != wantRunes[i] {
			t.Errorf("item %d = (%d, %q), want (%d, %q)", i, offsets[i], runes[i], wantOffsets[i], wantRunes[i])
		}
	}

	count := 0
	for range v.Chars() {
		count++
		break
	}
	if count != 1 {
		t.Errorf("Chars() should stop after break, got %d", count)
	}
}

func TestViewBytesIsCopy(t *testing.T) {
	v := MustLiteral("GET")
	p := v.Bytes()
	if string(p) != "GET" {
		t.Fatalf("Bytes() = %q", p)
	}
	p[0] = 'S'
	if v.String() != "GET" {
		t.Error("mutating Bytes() result must not affect the view")
	}
}

func TestZeroView(t *testing.T) {
	var v View
	if v.Len() != 0 || v.CharCount() != 0 || !v.IsEmpty() {
		t.Error("zero View should be empty")
	}
	if !v.Equal(MustLiteral("")) {
		t.Error("zero View should equal the empty literal")
	}
}
