// File: example_test.go
// Title: Examples for textx
// Description: Runnable examples showing owned buffers, borrowed views,
//              byte vs. character lengths and the common text operations.
// Author: msto63
// Version: v0.1.0
// Created: 2025-10-17
// Modified: 2025-10-17
//
// Change History:
// - 2025-10-17 v0.1.0: Initial examples

package textx_test

import (
	"fmt"

	"github.com/msto63/textkit/foundation/utils/textx"
)

func ExampleMustLiteral() {
	v := textx.MustLiteral("ಠ_ಠ")
	fmt.Println(v.Len(), v.CharCount())
	// Output: 7 3
}

func ExampleFromLiteral() {
	_, err := textx.FromLiteral("caf\xe9")
	fmt.Println(textx.IsInvalidEncoding(err))
	// Output: true
}

func ExampleView_Slice() {
	noodles := textx.MustLiteral("noodles")
	oodles, _ := noodles.Slice(1, noodles.Len())
	fmt.Println(oodles)

	_, err := textx.MustLiteral("ಠ_ಠ").Slice(1, 7)
	fmt.Println(textx.IsInvalidBoundary(err))
	// Output:
	// oodles
	// true
}

func ExampleBuffer_Appendf() {
	b := textx.New()
	_ = b.Appendf("%d°%02d′%02d″N", 24, 5, 23)
	fmt.Println(b)
	// Output: 24°05′23″N
}

func ExampleBuffer_Truncate() {
	b, _ := textx.FromString("noodles")
	view := b.View()
	_ = b.Truncate(4)
	_ = b.AppendString("le")
	fmt.Println(view, b)
	// Output: noodles noodle
}

func ExampleConcat() {
	fmt.Println(textx.Concat(textx.MustLiterals("veni", "vidi", "vici")))
	// Output: venividivici
}

func ExampleJoin() {
	parts := textx.MustLiterals("veni", "vidi", "vici")
	fmt.Println(textx.Join(parts, textx.MustLiteral(", ")))
	// Output: veni, vidi, vici
}

func ExampleReplace() {
	face := textx.MustLiteral("ಠ_ಠ")
	fmt.Println(textx.Replace(face, textx.MustLiteral("ಠ"), textx.MustLiteral("■")))
	// Output: ■_■
}

func ExampleView_Trim() {
	fmt.Printf("%q\n", textx.MustLiteral(" clean\n").Trim())
	// Output: "clean"
}

func ExampleView_SplitOn() {
	for part := range textx.MustLiteral("veni, vidi, vici").SplitOn(textx.MustLiteral(", ")) {
		fmt.Println(part)
	}
	// Output:
	// veni
	// vidi
	// vici
}

func ExampleEqualNormalized() {
	a := textx.MustLiteral("\u00e9")
	b := textx.MustLiteral("e\u0301")
	fmt.Println(textx.Equal(a, b), textx.EqualNormalized(a, b, textx.NFC))
	// Output: false true
}
