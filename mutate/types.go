// Package mutate defines profiles, rule tags, candidate provenance and
// tunable options for the mutation engine.
package mutate

import (
	"errors"
	"fmt"
)

// Sentinel errors for candidate generation.
var (
	// ErrInvalidProfile is returned when a Profile value is outside the
	// declared enum. It is rejected before any generation starts.
	ErrInvalidProfile = errors.New("mutate: invalid profile")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("mutate: invalid option supplied")
)

// Profile selects generative power. The three tiers form a total order of
// increasing breadth: every candidate produced by Fast is also produced by
// Balanced, and every Balanced candidate by Comprehensive (rule sets are
// strictly nested and depth/cap only grow — monotone by construction).
type Profile int

const (
	// Fast favors speed: depth 1, at most 200 candidates.
	Fast Profile = iota

	// Balanced is the default: depth 2, at most 2 000 candidates.
	Balanced

	// Comprehensive trades time for coverage: depth 3, at most 20 000
	// candidates.
	Comprehensive
)

// Valid reports whether p is one of the declared profiles.
func (p Profile) Valid() bool { return p >= Fast && p <= Comprehensive }

// String returns the lowercase profile name.
func (p Profile) String() string {
	switch p {
	case Fast:
		return "fast"
	case Balanced:
		return "balanced"
	case Comprehensive:
		return "comprehensive"
	default:
		return fmt.Sprintf("profile(%d)", int(p))
	}
}

// MaxDepth returns the profile's maximum mutation depth.
func (p Profile) MaxDepth() int { return profileTable[p].maxDepth }

// MaxCandidates returns the profile's hard cap on produced candidates.
func (p Profile) MaxCandidates() int { return profileTable[p].maxCandidates }

// ParseProfile maps a profile name to its Profile value.
// Unknown names yield ErrInvalidProfile.
func ParseProfile(s string) (Profile, error) {
	switch s {
	case "fast":
		return Fast, nil
	case "balanced":
		return Balanced, nil
	case "comprehensive":
		return Comprehensive, nil
	default:
		return 0, fmt.Errorf("%w: %q (want fast, balanced or comprehensive)", ErrInvalidProfile, s)
	}
}

// profileSpec fixes a profile's generative limits.
// yearsBack windows are nested (5 ⊂ 10 ⊂ 30) and years are enumerated
// newest-first, so a smaller window is always a prefix of a larger one.
type profileSpec struct {
	maxDepth      int
	maxCandidates int
	yearsBack     int
}

var profileTable = map[Profile]profileSpec{
	Fast:          {maxDepth: 1, maxCandidates: 200, yearsBack: 5},
	Balanced:      {maxDepth: 2, maxCandidates: 2000, yearsBack: 10},
	Comprehensive: {maxDepth: 3, maxCandidates: 20000, yearsBack: 30},
}

// RuleKind tags each mutation rule. Kinds are bits so a rule can declare the
// set of candidate kinds it consumes as a mask.
type RuleKind uint8

const (
	// KindSeed marks depth-0 candidates: the seed tokens themselves.
	KindSeed RuleKind = 1 << iota

	// KindCase marks case-variant candidates (lower, Capitalized, UPPER,
	// tOGGLED).
	KindCase

	// KindLeet marks leetspeak-substituted candidates.
	KindLeet

	// KindYearAffix marks candidates with a year or numeric date token
	// appended or prepended.
	KindYearAffix

	// KindSuffix marks candidates with a common password suffix appended.
	KindSuffix

	// KindPairJoin marks two seed tokens joined with a separator.
	KindPairJoin

	// KindPairAffix marks pairwise joins with a year infixed or appended.
	KindPairAffix
)

// String returns the rule-kind name.
func (k RuleKind) String() string {
	switch k {
	case KindSeed:
		return "seed"
	case KindCase:
		return "case-variants"
	case KindLeet:
		return "leetspeak"
	case KindYearAffix:
		return "year-affix"
	case KindSuffix:
		return "common-suffix"
	case KindPairJoin:
		return "pair-join"
	case KindPairAffix:
		return "pair-year"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Candidate is one generated string plus its provenance. Provenance is
// informational only — dedup downstream is on Text alone.
type Candidate struct {
	// Text is the candidate password string.
	Text string

	// Rule names the rule that produced this candidate ("seed" at depth 0).
	Rule string

	// Kind is the producing rule's tag.
	Kind RuleKind

	// From holds the source token text(s) this candidate was derived from.
	From []string

	// Depth is the mutation depth at which the candidate was produced
	// (0 for seed tokens).
	Depth int
}

// LeetPair maps one letter to its substitutes; Subs[0] is the primary form
// used for full substitution.
type LeetPair struct {
	From rune
	Subs []rune
}

// Tables holds the immutable constant tables the rules draw from. Inject a
// custom Tables (WithTables) to override them deterministically in tests.
type Tables struct {
	// Leet is the ordered leetspeak substitution table.
	Leet []LeetPair

	// Separators joins affixes and token pairs. The first entry must be the
	// empty separator; Fast uses only that entry.
	Separators []string

	// Suffixes are common password suffixes, appended at Balanced and above.
	Suffixes []string

	// ReferenceYear anchors the common-year window. It is a fixed constant,
	// not the wall clock, so generation is reproducible.
	ReferenceYear int
}

// DefaultTables returns the documented constant tables:
//
//	leet:       a→4/@  e→3  i→1/!  o→0  s→5/$
//	separators: "", "_", "-", "."
//	suffixes:   "!", "1", "123", "@", "#", "007"
//	reference:  2026
func DefaultTables() Tables {
	return Tables{
		Leet: []LeetPair{
			{From: 'a', Subs: []rune{'4', '@'}},
			{From: 'e', Subs: []rune{'3'}},
			{From: 'i', Subs: []rune{'1', '!'}},
			{From: 'o', Subs: []rune{'0'}},
			{From: 's', Subs: []rune{'5', '$'}},
		},
		Separators:    []string{"", "_", "-", "."},
		Suffixes:      []string{"!", "1", "123", "@", "#", "007"},
		ReferenceYear: 2026,
	}
}

// Option configures generation via functional arguments. An invalid Option
// is recorded internally and surfaced as ErrOptionViolation when Generate is
// invoked.
type Option func(*GenOptions)

// GenOptions holds the tunable parameters of one Generate call.
type GenOptions struct {
	// MaxCandidates overrides the profile cap when > 0.
	MaxCandidates int

	// MinLen and MaxLen bound emitted candidate length (runes); 0 disables
	// the respective bound. Filtered candidates still feed deeper mutation.
	MinLen int
	MaxLen int

	// Tables are the constant tables the rules draw from.
	Tables Tables

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns GenOptions with the documented defaults: profile
// cap, unbounded length, DefaultTables.
func DefaultOptions() GenOptions {
	return GenOptions{Tables: DefaultTables()}
}

// WithMaxCandidates overrides the profile's candidate cap.
// n must be positive.
func WithMaxCandidates(n int) Option {
	return func(o *GenOptions) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: MaxCandidates must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxCandidates = n
	}
}

// WithLengthRange bounds emitted candidate length in runes.
// Zero disables a bound; a negative bound or min > max is a violation.
func WithLengthRange(minLen, maxLen int) Option {
	return func(o *GenOptions) {
		switch {
		case minLen < 0 || maxLen < 0:
			o.err = fmt.Errorf("%w: length bounds cannot be negative (%d..%d)", ErrOptionViolation, minLen, maxLen)
		case maxLen > 0 && minLen > maxLen:
			o.err = fmt.Errorf("%w: MinLen %d exceeds MaxLen %d", ErrOptionViolation, minLen, maxLen)
		default:
			o.MinLen, o.MaxLen = minLen, maxLen
		}
	}
}

// WithTables replaces the constant tables (for deterministic test overrides).
// The separator list must be non-empty and start with the empty separator.
func WithTables(t Tables) Option {
	return func(o *GenOptions) {
		switch {
		case len(t.Separators) == 0 || t.Separators[0] != "":
			o.err = fmt.Errorf("%w: Separators must start with the empty separator", ErrOptionViolation)
		case t.ReferenceYear <= 0:
			o.err = fmt.Errorf("%w: ReferenceYear must be positive (%d)", ErrOptionViolation, t.ReferenceYear)
		default:
			o.Tables = t
		}
	}
}
