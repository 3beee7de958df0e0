package mutate

import (
	"strings"
	"unicode"
)

// emitFunc hands one produced string (plus optional explicit source tokens)
// back to the engine. It returns false when generation must stop — the cap
// was reached or the consumer stopped pulling.
type emitFunc func(text string, from ...string) bool

// Rule is one member of the mutation catalogue: a named, pure, order-stable
// transformation. The engine's traversal never special-cases a rule; adding
// one means appending a catalogue entry.
type Rule struct {
	// Name identifies the rule in candidate provenance.
	Name string

	// Kind tags the rule's outputs.
	Kind RuleKind

	// Tier is the minimum profile that activates the rule.
	Tier Profile

	// Depth is the mutation depth at which the rule fires.
	Depth int

	// Sources masks the candidate kinds the rule consumes as bases.
	Sources RuleKind

	expand func(g *generator, base Candidate, emit emitFunc) bool
}

// catalogue returns the fixed rule catalogue in declaration order. Rule
// order is part of the determinism contract: identical inputs always yield
// identical candidate sequences. Lower-tier rules are declared first so a
// narrower profile's output stream is a near-prefix of a wider one's.
func catalogue() []Rule {
	return []Rule{
		{Name: "case-variants", Kind: KindCase, Tier: Fast, Depth: 1, Sources: KindSeed, expand: expandCase},
		{Name: "leetspeak", Kind: KindLeet, Tier: Fast, Depth: 1, Sources: KindSeed | KindCase, expand: expandLeet},
		{Name: "year-affix", Kind: KindYearAffix, Tier: Fast, Depth: 1, Sources: KindSeed | KindCase | KindLeet, expand: expandYearAffix},
		{Name: "common-suffix", Kind: KindSuffix, Tier: Balanced, Depth: 2, Sources: KindSeed | KindCase | KindLeet, expand: expandSuffix},
		{Name: "pair-join", Kind: KindPairJoin, Tier: Balanced, Depth: 2, Sources: KindSeed, expand: expandPairJoin},
		{Name: "pair-year", Kind: KindPairAffix, Tier: Comprehensive, Depth: 3, Sources: KindPairJoin, expand: expandPairYear},
	}
}

// activeRules filters the catalogue down to the rules p activates,
// preserving declaration order.
func activeRules(p Profile) []Rule {
	all := catalogue()
	out := make([]Rule, 0, len(all))
	for _, r := range all {
		if r.Tier <= p {
			out = append(out, r)
		}
	}

	return out
}

// expandCase emits case variants: lowercase, Capitalized, UPPERCASE, and
// (Comprehensive only) tOGGLED case. Variants equal to the base are skipped —
// the base itself is already in the candidate stream.
func expandCase(g *generator, base Candidate, emit emitFunc) bool {
	if !hasLetter(base.Text) {
		return true
	}
	lower := strings.ToLower(base.Text)
	variants := []string{lower, g.titler.String(lower), strings.ToUpper(base.Text)}
	if g.profile >= Comprehensive {
		variants = append(variants, toggleCase(base.Text))
	}
	for _, v := range variants {
		if v == base.Text {
			continue
		}
		if !emit(v) {
			return false
		}
	}

	return true
}

// expandLeet emits the fully-substituted leet form of the base and, at
// Comprehensive, every single-position variant for every substitute.
func expandLeet(g *generator, base Candidate, emit emitFunc) bool {
	runes := []rune(base.Text)
	full := make([]rune, len(runes))
	var positions []int
	for i, r := range runes {
		if subs := g.leetSubs(r); len(subs) > 0 {
			full[i] = subs[0]
			positions = append(positions, i)
		} else {
			full[i] = r
		}
	}
	if len(positions) == 0 {
		return true
	}
	if s := string(full); s != base.Text {
		if !emit(s) {
			return false
		}
	}
	if g.profile < Comprehensive {
		return true
	}
	// Partial variants: one substituted position at a time.
	for _, pos := range positions {
		for _, sub := range g.leetSubs(runes[pos]) {
			v := make([]rune, len(runes))
			copy(v, runes)
			v[pos] = sub
			s := string(v)
			if s == base.Text || s == string(full) {
				continue
			}
			if !emit(s) {
				return false
			}
		}
	}

	return true
}

// expandYearAffix appends (and, at Comprehensive, prepends) each numeric
// affix to the base with each active separator. Bases already containing a
// digit are skipped to avoid stacking numbers on numbers.
func expandYearAffix(g *generator, base Candidate, emit emitFunc) bool {
	if hasDigit(base.Text) {
		return true
	}
	for _, sep := range g.seps {
		for _, affix := range g.affixes {
			if !emit(base.Text + sep + affix) {
				return false
			}
			if g.profile >= Comprehensive {
				if !emit(affix + sep + base.Text) {
					return false
				}
			}
		}
	}

	return true
}

// expandSuffix appends each common password suffix to the base.
func expandSuffix(g *generator, base Candidate, emit emitFunc) bool {
	for _, s := range g.opts.Tables.Suffixes {
		if !emit(base.Text + s) {
			return false
		}
	}

	return true
}

// expandPairJoin joins the base seed token with every other seed token (both
// orders arise as the engine walks every base) using each active separator.
func expandPairJoin(g *generator, base Candidate, emit emitFunc) bool {
	for _, partner := range g.seeds {
		if partner.Text == base.Text {
			continue
		}
		for _, sep := range g.seps {
			if !emit(base.Text+sep+partner.Text, base.Text, partner.Text) {
				return false
			}
		}
	}

	return true
}

// expandPairYear takes a pairwise join a<sep>b and emits a<sep>y<sep>b and
// a<sep>b<sep>y for each numeric affix y, reusing the join's own separator.
func expandPairYear(g *generator, base Candidate, emit emitFunc) bool {
	if len(base.From) != 2 {
		return true
	}
	a, b := base.From[0], base.From[1]
	sep := base.Text[len(a) : len(base.Text)-len(b)]
	for _, y := range g.affixes {
		if !emit(a+sep+y+sep+b, a, b) {
			return false
		}
		if !emit(base.Text+sep+y, a, b) {
			return false
		}
	}

	return true
}

// toggleCase swaps the case of every letter in s.
func toggleCase(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case unicode.IsLower(r):
			return unicode.ToUpper(r)
		case unicode.IsUpper(r):
			return unicode.ToLower(r)
		default:
			return r
		}
	}, s)
}

func hasLetter(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}

	return false
}

func hasDigit(s string) bool {
	for _, r := range s {
		if unicode.IsDigit(r) {
			return true
		}
	}

	return false
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}

	return true
}
