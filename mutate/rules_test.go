package mutate_test

import (
	"testing"

	"github.com/wordforge/wordforge/mutate"
	"github.com/wordforge/wordforge/seeds"
)

// smallTables narrows separators and suffixes so rule behavior is easy to
// assert in isolation.
func smallTables() mutate.Tables {
	t := mutate.DefaultTables()
	t.Separators = []string{""}
	t.Suffixes = []string{"!"}

	return t
}

// TestCaseRule_Tiers verifies toggled case is Comprehensive-only.
func TestCaseRule_Tiers(t *testing.T) {
	set, _ := seeds.Extract(seeds.Facts{Extra: []string{"pass"}})

	balanced := texts(collect(t, set, mutate.Balanced, mutate.WithTables(smallTables())))
	comprehensive := texts(collect(t, set, mutate.Comprehensive, mutate.WithTables(smallTables())))

	if !has(comprehensive, "PASS") || !has(balanced, "PASS") {
		t.Error("uppercase variant expected at every tier")
	}
	// "Pass" is the capitalized variant; toggled case of "Pass" is "pASS".
	set2, _ := seeds.Extract(seeds.Facts{Extra: []string{"Pass"}})
	comp2 := texts(collect(t, set2, mutate.Comprehensive, mutate.WithTables(smallTables())))
	bal2 := texts(collect(t, set2, mutate.Balanced, mutate.WithTables(smallTables())))
	if !has(comp2, "pASS") {
		t.Error("toggled case missing at comprehensive")
	}
	if has(bal2, "pASS") {
		t.Error("toggled case must not appear below comprehensive")
	}
}

// TestLeetRule_Tiers verifies full substitution everywhere and
// single-position variants only at Comprehensive.
func TestLeetRule_Tiers(t *testing.T) {
	set, _ := seeds.Extract(seeds.Facts{Extra: []string{"pass"}})

	balanced := texts(collect(t, set, mutate.Balanced, mutate.WithTables(smallTables())))
	comprehensive := texts(collect(t, set, mutate.Comprehensive, mutate.WithTables(smallTables())))

	if !has(balanced, "p455") {
		t.Error("full leet substitution missing at balanced")
	}
	for _, partial := range []string{"p4ss", "p@ss", "pa5s", "pa$s"} {
		if !has(comprehensive, partial) {
			t.Errorf("partial leet variant %q missing at comprehensive", partial)
		}
		if has(balanced, partial) {
			t.Errorf("partial leet variant %q must not appear below comprehensive", partial)
		}
	}
}

// TestYearAffix_PrependAndSeparators verifies prepends are
// Comprehensive-only and Fast uses only the empty separator.
func TestYearAffix_PrependAndSeparators(t *testing.T) {
	set, _ := seeds.Extract(seeds.Facts{Pet: "Bruno", Date: "2001-06-15"})

	fast := texts(collect(t, set, mutate.Fast))
	balanced := texts(collect(t, set, mutate.Balanced))
	comprehensive := texts(collect(t, set, mutate.Comprehensive))

	if !has(fast, "Bruno2001") {
		t.Error("Fast must append date-derived years with the empty separator")
	}
	if has(fast, "Bruno_2001") {
		t.Error("Fast must not use non-empty separators")
	}
	if !has(balanced, "Bruno_2001") {
		t.Error("Balanced must use the full separator set")
	}
	// 2026 is a window year, not a seed token, so "2026Bruno" can only come
	// from the prepend branch (never from a pairwise join).
	if has(balanced, "2026Bruno") {
		t.Error("prepended years must not appear below comprehensive")
	}
	if !has(comprehensive, "2026Bruno") {
		t.Error("prepended years missing at comprehensive")
	}
}

// TestYearAffix_SkipsNumericBases verifies numbers are not stacked onto
// numeric tokens.
func TestYearAffix_SkipsNumericBases(t *testing.T) {
	set, _ := seeds.Extract(seeds.Facts{Date: "2001-06-15"})
	for _, c := range collect(t, set, mutate.Balanced) {
		if c.Kind == mutate.KindYearAffix && hasDigitPrefixBase(c) {
			t.Errorf("year affix applied to numeric base: %q from %v", c.Text, c.From)
		}
	}
}

func hasDigitPrefixBase(c mutate.Candidate) bool {
	if len(c.From) != 1 {
		return false
	}
	for _, r := range c.From[0] {
		if r >= '0' && r <= '9' {
			return true
		}
	}

	return false
}

// TestPairYear_Comprehensive verifies year infixes on pairwise joins.
func TestPairYear_Comprehensive(t *testing.T) {
	set, _ := seeds.Extract(seeds.Facts{Name: "Lekhana", Pet: "Bruno", Date: "2001-06-15"})
	comprehensive := texts(collect(t, set, mutate.Comprehensive))

	if !has(comprehensive, "Lekhana_2001_Bruno") {
		t.Error("year infix on pairwise join missing at comprehensive")
	}
	if !has(comprehensive, "Lekhana_Bruno_2001") {
		t.Error("year suffix on pairwise join missing at comprehensive")
	}
}

func has(list []string, want string) bool {
	for _, s := range list {
		if s == want {
			return true
		}
	}

	return false
}
