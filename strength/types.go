// Package strength defines the report type, thresholds and options for
// password scoring.
package strength

import (
	"github.com/wordforge/wordforge/cracktime"
	"github.com/wordforge/wordforge/seeds"
)

// Character-class pool sizes. The symbol count is a conservative ASCII
// estimate.
const (
	poolLower  = 26
	poolUpper  = 26
	poolDigit  = 10
	poolSymbol = 33
)

// Penalty sizes in bits.
const (
	// seedPenaltyBits is charged when the password matches a seed token or
	// one of its common variants.
	seedPenaltyBits = 20

	// commonPenaltyBits is charged when the password appears in the embedded
	// common-password list.
	commonPenaltyBits = 20

	// runPenaltyBits is charged per run of >= 3 identical or sequential
	// characters.
	runPenaltyBits = 8

	// minRunLen is the shortest character run that draws a penalty.
	minRunLen = 3

	// shortLength is the length below which the too-short feedback fires.
	shortLength = 8

	// maxStripLen bounds how many trailing digits/symbols the near-match
	// check may strip before comparing against seed tokens.
	maxStripLen = 4
)

// Thresholds maps entropy bits to the 0–4 band: bits < Weak scores 0,
// < Fair scores 1, < Good scores 2, < Strong scores 3, else 4.
type Thresholds struct {
	Weak   float64
	Fair   float64
	Good   float64
	Strong float64
}

// DefaultThresholds returns the documented band boundaries (28/36/60/128).
func DefaultThresholds() Thresholds {
	return Thresholds{Weak: 28, Fair: 36, Good: 60, Strong: 128}
}

// Feedback messages, in check order.
const (
	FeedbackCommonPassword = "password appears in common password lists"
	FeedbackSeedMatch      = "password is derived from a supplied personal fact"
	FeedbackTooShort       = "password is shorter than 8 characters"
	FeedbackSingleClass    = "password uses only one character class"
	FeedbackCharacterRun   = "password contains repeated or sequential character runs"
)

// Report is the outcome of scoring one password. It is created fresh per
// call and immutable once returned.
type Report struct {
	// Password is the scored string, echoed for rendering.
	Password string

	// EntropyBits is the penalized entropy estimate, never negative.
	EntropyBits float64

	// Score is the 0–4 strength band.
	Score int

	// CrackTimes holds one estimate per attacker tier, in tier order.
	CrackTimes []cracktime.Estimate

	// Feedback names each detected weakness; empty means none detected.
	Feedback []string
}

// Option configures scoring via functional arguments.
type Option func(*scoreOptions)

type scoreOptions struct {
	seeds      seeds.TokenSet
	thresholds Thresholds
	leet       map[rune]rune
	tiers      []cracktime.Tier
}

func defaultScoreOptions() scoreOptions {
	return scoreOptions{
		thresholds: DefaultThresholds(),
		leet:       defaultLeetFold(),
		tiers:      cracktime.DefaultTiers(),
	}
}

// WithSeedTokens makes scoring seed-aware: passwords matching a seed token
// (or a common variant of one) are penalized and called out in feedback.
func WithSeedTokens(set seeds.TokenSet) Option {
	return func(o *scoreOptions) { o.seeds = set }
}

// WithThresholds overrides the band boundaries (for deterministic test
// overrides).
func WithThresholds(t Thresholds) Option {
	return func(o *scoreOptions) { o.thresholds = t }
}

// WithLeetFold overrides the leet-normalization table used for seed
// matching. Keys are substitute characters, values their letter forms.
func WithLeetFold(table map[rune]rune) Option {
	return func(o *scoreOptions) {
		if table != nil {
			o.leet = table
		}
	}
}

// WithTiers overrides the attacker tiers used for crack-time estimates.
func WithTiers(tiers []cracktime.Tier) Option {
	return func(o *scoreOptions) {
		if len(tiers) > 0 {
			o.tiers = tiers
		}
	}
}

// defaultLeetFold reverses the generator's substitution map: each substitute
// folds back to its primary letter (1 folds to i, matching the forward map's
// primary use of 1 for i).
func defaultLeetFold() map[rune]rune {
	return map[rune]rune{
		'4': 'a', '@': 'a',
		'3': 'e',
		'1': 'i', '!': 'i',
		'0': 'o',
		'5': 's', '$': 's',
	}
}
