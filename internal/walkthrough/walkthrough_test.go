package walkthrough

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSections(t *testing.T) {
	sections, err := Sections()
	if err != nil {
		t.Fatalf("Sections() error = %v", err)
	}

	var titles []string
	for _, s := range sections {
		titles = append(titles, s.Title)
	}
	want := []string{
		"String literals",
		"Raw strings",
		"Byte strings",
		"Strings in memory",
		"Creating strings",
		"Working with strings",
	}
	if diff := cmp.Diff(want, titles); diff != "" {
		t.Errorf("titles mismatch (-want +got):\n%s", diff)
	}
}

func TestSectionsAllChecksPass(t *testing.T) {
	sections, err := Sections()
	if err != nil {
		t.Fatal(err)
	}

	for _, s := range sections {
		t.Run(s.Title, func(t *testing.T) {
			if len(s.Checks) == 0 {
				t.Fatal("section has no checks")
			}
			for _, c := range s.Checks {
				if !c.OK {
					t.Errorf("%s = %s, want %s", c.Expr, c.Got, c.Want)
				}
			}
			if !s.Passed() {
				t.Error("Passed() = false")
			}
		})
	}

	if n := Failures(sections); n != 0 {
		t.Errorf("Failures() = %d, want 0", n)
	}
}

func TestFailures(t *testing.T) {
	sections := []Section{
		{Title: "a", Checks: []Check{equal("1", 1, 1), equal("2", 2, 3)}},
		{Title: "b", Checks: []Check{quoted("s", "x", "y")}},
	}

	if sections[0].Passed() {
		t.Error("section a should fail")
	}
	if got := Failures(sections); got != 2 {
		t.Errorf("Failures() = %d, want 2", got)
	}
}

func TestQuotedCheck(t *testing.T) {
	c := quoted("trim", "clean", "clean")
	if !c.OK || c.Got != `"clean"` {
		t.Errorf("quoted() = %+v", c)
	}

	c = quoted("newline", "a\n", "a")
	if c.OK || c.Got != `"a\n"` {
		t.Errorf("quoted() = %+v", c)
	}
}
