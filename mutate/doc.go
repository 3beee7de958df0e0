// Package mutate turns a set of seed tokens into a bounded, deterministic
// stream of password candidates by composing a fixed catalogue of mutation
// rules under a generative profile.
//
// What
//
//   - A fixed rule catalogue, each rule a pure, order-stable transformation
//     tagged with a RuleKind:
//   - case variants (lower / Capitalized / UPPER, tOGGLED at Comprehensive)
//   - leetspeak substitution (a→4/@, e→3, i→1/!, o→0, s→5/$; full
//     substitution everywhere, single-position variants at Comprehensive)
//   - year/number affixes (date-derived numeric tokens plus a fixed
//     common-year window, with separators "", "_", "-", ".")
//   - common password suffixes (Balanced and above)
//   - pairwise joins of distinct seed tokens, both orders (Balanced and
//     above), with year infixes at Comprehensive
//   - A profile controller mapping Fast / Balanced / Comprehensive to the
//     active rule subset, a maximum mutation depth (1 / 2 / 3) and a hard
//     candidate cap (200 / 2 000 / 20 000).
//   - A breadth-first engine producing candidates as a lazy iter.Seq:
//     seed tokens are depth 0; at each further depth every active rule is
//     applied to every matching candidate produced so far.
//
// Determinism
//
//	Seed tokens, rules, separators and affixes are walked in fixed declared
//	order, so two Generate calls with identical input produce byte-identical
//	candidate sequences. Rules never re-emit their own input (the base is
//	already in the stream) and never mutate it.
//
// Monotonicity
//
//	Fast's rule set is a subset of Balanced's, Balanced's of Comprehensive's,
//	and depth, cap, separator list and year window only grow — so for a fixed
//	seed set, candidates(Fast) ⊆ candidates(Balanced) ⊆
//	candidates(Comprehensive) as sets.
//
// Resource bounds
//
//	The candidate cap is enforced during generation, not after: the engine
//	stops as soon as the cap is reached or the consumer stops ranging, so a
//	caller that needs only the first K candidates never pays for the full
//	combinatorial space.
//
// Usage
//
//	set, _ := seeds.Extract(seeds.Facts{Name: "Lekhana", Pet: "Bruno"})
//	seq, err := mutate.Generate(set, mutate.Balanced)
//	if err != nil {
//	    // ErrInvalidProfile or ErrOptionViolation
//	}
//	for c := range seq {
//	    fmt.Println(c.Text, c.Rule, c.Depth)
//	}
//
// Options
//
//   - WithMaxCandidates(n) — override the profile cap.
//   - WithLengthRange(min, max) — emit only candidates within the rune-length
//     window (filtered candidates still feed deeper mutation).
//   - WithTables(t) — replace the constant tables (leet map, separators,
//     suffixes, reference year) for deterministic test overrides.
//
// Errors
//
//   - ErrInvalidProfile — profile value outside the declared enum.
//   - ErrOptionViolation — invalid Option (non-positive cap, negative length
//     bound, malformed tables).
//   - An empty seed set and a reached cap are normal termination conditions,
//     not errors.
package mutate
