// Package mutate drives rule application over seed tokens, producing a lazy,
// deterministic, capped candidate sequence.
package mutate

import (
	"fmt"
	"iter"
	"strconv"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/wordforge/wordforge/seeds"
)

// Generate returns a lazy, finite, restartable candidate sequence for the
// given seed tokens under the given profile.
//
// The traversal is breadth-first over mutation depths: seed tokens are
// depth-0 candidates; at each depth up to the profile's maximum, every
// active rule is applied to every matching candidate produced so far.
// Tokens, rules, separators and affixes are walked in fixed declared order,
// so the output sequence is byte-identical across runs for identical input.
//
// Generation stops early once the candidate cap is reached or the consumer
// stops pulling; neither is an error. An empty seed set yields an empty
// sequence, also not an error. The sequence may be ranged over any number of
// times; each pass restarts generation from scratch.
//
// Returns ErrInvalidProfile for a profile outside the declared enum and
// ErrOptionViolation for invalid options — both before any work is done.
func Generate(set seeds.TokenSet, profile Profile, opts ...Option) (iter.Seq[Candidate], error) {
	if !profile.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidProfile, int(profile))
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	spec := profileTable[profile]
	limit := spec.maxCandidates
	if o.MaxCandidates > 0 {
		limit = o.MaxCandidates
	}
	rules := activeRules(profile)

	return func(yield func(Candidate) bool) {
		g := newGenerator(set, profile, spec, o, rules, limit)
		g.run(yield)
	}, nil
}

// generator holds the mutable state of one generation pass.
type generator struct {
	seeds   seeds.TokenSet
	profile Profile
	spec    profileSpec
	opts    GenOptions
	rules   []Rule

	seps    []string // active separators (Fast: empty separator only)
	affixes []string // numeric date tokens + common-year window, fixed order
	titler  cases.Caser

	pool    []Candidate // every candidate produced so far, in emission order
	emitted int
	limit   int
}

func newGenerator(set seeds.TokenSet, p Profile, spec profileSpec, o GenOptions, rules []Rule, limit int) *generator {
	seps := o.Tables.Separators
	if p == Fast {
		seps = seps[:1]
	}

	return &generator{
		seeds:   set,
		profile: p,
		spec:    spec,
		opts:    o,
		rules:   rules,
		seps:    seps,
		affixes: buildAffixes(set, o.Tables, spec.yearsBack),
		titler:  cases.Title(language.Und),
		pool:    make([]Candidate, 0, limit),
		limit:   limit,
	}
}

// run walks depth 0 (the seed tokens) and then each mutation depth in turn,
// applying every active rule of that depth to every matching candidate in
// the pool. The pool grows while a depth is processed, so same-depth rules
// compose in declaration order (leetspeak sees case variants, year affixes
// see both).
func (g *generator) run(yield func(Candidate) bool) {
	for _, t := range g.seeds {
		if !g.emit(Candidate{Text: t.Text, Rule: "seed", Kind: KindSeed}, yield) {
			return
		}
	}
	for d := 1; d <= g.spec.maxDepth; d++ {
		for _, r := range g.rules {
			if r.Depth != d {
				continue
			}
			for i := 0; i < len(g.pool); i++ {
				base := g.pool[i]
				if base.Kind&r.Sources == 0 {
					continue
				}
				emit := func(text string, from ...string) bool {
					if len(from) == 0 {
						from = []string{base.Text}
					}
					return g.emit(Candidate{Text: text, Rule: r.Name, Kind: r.Kind, From: from, Depth: d}, yield)
				}
				if !r.expand(g, base, emit) {
					return
				}
			}
		}
	}
}

// emit records c in the pool (so deeper rules can mutate it), yields it to
// the consumer when it passes the length window, and enforces the cap.
// Returns false when generation must stop.
func (g *generator) emit(c Candidate, yield func(Candidate) bool) bool {
	g.pool = append(g.pool, c)
	if !g.withinLength(c.Text) {
		return true
	}
	if !yield(c) {
		return false
	}
	g.emitted++

	return g.emitted < g.limit
}

func (g *generator) withinLength(s string) bool {
	n := len([]rune(s))
	if g.opts.MinLen > 0 && n < g.opts.MinLen {
		return false
	}
	if g.opts.MaxLen > 0 && n > g.opts.MaxLen {
		return false
	}

	return true
}

// leetSubs returns the substitutes for r (case-insensitive), or nil.
func (g *generator) leetSubs(r rune) []rune {
	for _, p := range g.opts.Tables.Leet {
		if p.From == r || p.From == r+'a'-'A' {
			return p.Subs
		}
	}

	return nil
}

// buildAffixes assembles the numeric affix list: digit-only seed tokens
// first (date-derived forms, in seed order), then the common-year window,
// newest first, each year followed by its two-digit form. Newest-first
// ordering makes a narrower profile's affix list a strict prefix of a wider
// one's, which preserves profile monotonicity under the candidate cap.
func buildAffixes(set seeds.TokenSet, t Tables, yearsBack int) []string {
	var out []string
	seen := make(map[string]struct{})
	add := func(s string) {
		if _, dup := seen[s]; dup {
			return
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}

	for _, tok := range set {
		if isDigits(tok.Text) {
			add(tok.Text)
		}
	}
	for y := t.ReferenceYear; y > t.ReferenceYear-yearsBack; y-- {
		ys := strconv.Itoa(y)
		add(ys)
		if len(ys) == 4 {
			add(ys[2:])
		}
	}

	return out
}
