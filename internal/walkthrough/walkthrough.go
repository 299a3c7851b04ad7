// Package walkthrough replays the string-literal tour as a list of sections.
// Every assertion of the tour is recomputed through textx, so a failing
// check means the library disagrees with the documented behaviour.
package walkthrough

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/msto63/textkit/foundation/utils/textx"
)

// Check is one recomputed assertion
type Check struct {
	Expr string `json:"expr" yaml:"expr"`
	Got  string `json:"got" yaml:"got"`
	Want string `json:"want" yaml:"want"`
	OK   bool   `json:"ok" yaml:"ok"`
}

// Section groups the checks of one topic
type Section struct {
	Title  string   `json:"title" yaml:"title"`
	Notes  []string `json:"notes,omitempty" yaml:"notes,omitempty"`
	Checks []Check  `json:"checks" yaml:"checks"`
}

// Passed reports whether every check of the section holds
func (s Section) Passed() bool {
	for _, c := range s.Checks {
		if !c.OK {
			return false
		}
	}
	return true
}

// Failures counts the failing checks across sections
func Failures(sections []Section) int {
	n := 0
	for _, s := range sections {
		for _, c := range s.Checks {
			if !c.OK {
				n++
			}
		}
	}
	return n
}

func equal(expr string, got, want interface{}) Check {
	g, w := fmt.Sprint(got), fmt.Sprint(want)
	return Check{Expr: expr, Got: g, Want: w, OK: g == w}
}

func quoted(expr string, got, want string) Check {
	return Check{Expr: expr, Got: strconv.Quote(got), Want: strconv.Quote(want), OK: got == want}
}

// Sections builds the tour
func Sections() ([]Section, error) {
	builders := []func() (Section, error){
		literals,
		rawStrings,
		byteStrings,
		inMemory,
		creating,
		working,
	}

	sections := make([]Section, 0, len(builders))
	for _, build := range builders {
		s, err := build()
		if err != nil {
			return nil, err
		}
		sections = append(sections, s)
	}
	return sections, nil
}

func literals() (Section, error) {
	speech, err := textx.FromLiteral("\"Ouch!\" said the well.\n")
	if err != nil {
		return Section{}, err
	}

	poem := textx.MustLiteral("In the room the women come and go,\n        Singing of Mount Abora")
	lines := textx.Collect(poem.Lines())

	// Go has no line continuation inside literals; the pieces are joined
	// without the newline and indentation instead.
	april := textx.Concat(textx.MustLiterals(
		"It was a bright, cold day in April, and ",
		"there were four of us--",
		"more or less.",
	))

	return Section{
		Title: "String literals",
		Notes: []string{
			"Double quotes need a backslash escape, single quotes do not.",
			"A literal may span lines; the newline and the indentation are kept.",
		},
		Checks: []Check{
			equal(`speech.StartsWith("\"Ouch!\"")`, speech.StartsWith(textx.MustLiteral(`"Ouch!"`)), true),
			equal(`speech.EndsWith("\n")`, speech.EndsWith(textx.MustLiteral("\n")), true),
			equal("len(poem.Lines())", len(lines), 2),
			quoted("poem.Lines()[1]", lines[1].String(), "        Singing of Mount Abora"),
			equal(`april.Contains("\n")`, april.View().Contains(textx.MustLiteral("\n")), false),
			quoted("april", april.String(), "It was a bright, cold day in April, and there were four of us--more or less."),
		},
	}, nil
}

func rawStrings() (Section, error) {
	path := textx.MustLiteral(`C:\Program Files\Gorillas`)
	pattern := textx.MustLiteral(`\d+(\.\d+)*`)
	quotedRaw := textx.MustLiteral(`This raw string contains a quote mark (")`)

	return Section{
		Title: "Raw strings",
		Notes: []string{
			"Backslashes and whitespace inside a raw string are kept verbatim.",
		},
		Checks: []Check{
			equal(`path.Count("\\")`, path.Count(textx.MustLiteral(`\`)), 2),
			equal("path.Len()", path.Len(), 25),
			equal(`pattern.StartsWith("\\d")`, pattern.StartsWith(textx.MustLiteral(`\d`)), true),
			equal(`quotedRaw.Contains("\"")`, quotedRaw.Contains(textx.MustLiteral(`"`)), true),
		},
	}, nil
}

func byteStrings() (Section, error) {
	method := []byte("GET")
	view, err := textx.FromLiteral(string(method))
	if err != nil {
		return Section{}, err
	}

	// Byte strings are not text: arbitrary bytes are rejected as views.
	_, invalid := textx.FromLiteral("\xff\xfe")

	return Section{
		Title: "Byte strings",
		Notes: []string{
			"A byte string is a slice of bytes, not Unicode text.",
		},
		Checks: []Check{
			equal("method == {'G','E','T'}", bytes.Equal(method, []byte{'G', 'E', 'T'}), true),
			equal("FromLiteral(method).Len()", view.Len(), 3),
			equal(`FromLiteral("\xff\xfe") is INVALID_ENCODING`, textx.IsInvalidEncoding(invalid), true),
		},
	}, nil
}

func inMemory() (Section, error) {
	noodles := textx.WithCapacity(8)
	if err := noodles.AppendString("noodles"); err != nil {
		return Section{}, err
	}
	oodles, err := noodles.Slice(1, noodles.Len())
	if err != nil {
		return Section{}, err
	}
	poodles := textx.MustLiteral("ಠ_ಠ")
	_, boundary := poodles.Slice(1, poodles.Len())

	// Growing the owner leaves the borrowed view untouched.
	noodles.Append(textx.MustLiteral("!"))

	return Section{
		Title: "Strings in memory",
		Notes: []string{
			"A Buffer owns a growable UTF-8 byte array; a View borrows a run of it.",
			"Length is measured in bytes, not characters.",
		},
		Checks: []Check{
			equal("noodles.Cap() >= 8", noodles.Cap() >= 8, true),
			quoted("oodles", oodles.String(), "oodles"),
			quoted("noodles after append", noodles.String(), "noodles!"),
			equal(`"ಠ_ಠ".Len()`, poodles.Len(), 7),
			equal(`"ಠ_ಠ".CharCount()`, poodles.CharCount(), 3),
			equal(`"ಠ_ಠ".Slice(1, 7) is INVALID_BOUNDARY`, textx.IsInvalidBoundary(boundary), true),
		},
	}, nil
}

func creating() (Section, error) {
	errorMessage := textx.MustLiteral("too many pets").ToOwned()

	coords := textx.New()
	if err := coords.Appendf("%d°%02d′%02d″N", 24, 5, 23); err != nil {
		return Section{}, err
	}

	bits := textx.MustLiterals("veni", "vidi", "vici")

	return Section{
		Title: "Creating strings",
		Notes: []string{
			"ToOwned copies a view into a new Buffer.",
			"Appendf formats like fmt.Sprintf but into the buffer.",
			"Concat and Join build one Buffer from many texts.",
		},
		Checks: []Check{
			quoted(`"too many pets".ToOwned()`, errorMessage.String(), "too many pets"),
			quoted(`Appendf("%d°%02d′%02d″N", 24, 5, 23)`, coords.String(), "24°05′23″N"),
			quoted("Concat(bits)", textx.Concat(bits).String(), "venividivici"),
			quoted(`Join(bits, ", ")`, textx.Join(bits, textx.MustLiteral(", ")).String(), "veni, vidi, vici"),
		},
	}, nil
}

func working() (Section, error) {
	parts := textx.Collect(textx.MustLiteral("veni, vidi, vici").SplitOn(textx.MustLiteral(", ")))
	split := make([]string, len(parts))
	for i, p := range parts {
		split[i] = p.String()
	}

	precomposed := textx.MustLiteral("\u00e9")
	decomposed := textx.MustLiteral("e\u0301")

	return Section{
		Title: "Working with strings",
		Notes: []string{
			"Searching and comparison are byte-exact, not normalization-aware.",
		},
		Checks: []Check{
			quoted(`Trim(" clean\n")`, textx.MustLiteral(" clean\n").Trim().String(), "clean"),
			quoted(`Replace("ಠ_ಠ", "ಠ", "■")`, textx.MustLiteral("ಠ_ಠ").Replace(textx.MustLiteral("ಠ"), textx.MustLiteral("■")).String(), "■_■"),
			equal(`SplitOn("veni, vidi, vici", ", ")`, split, []string{"veni", "vidi", "vici"}),
			equal(`Equal("\u00e9", "e\u0301")`, textx.Equal(precomposed, decomposed), false),
			equal(`EqualNormalized("\u00e9", "e\u0301", NFC)`, textx.EqualNormalized(precomposed, decomposed, textx.NFC), true),
		},
	}, nil
}
