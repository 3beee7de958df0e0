package cracktime

import (
	"errors"
	"fmt"
	"math"
)

// ErrNegativeEntropy is returned for negative entropy input; it signals a
// caller bug (entropy is defined as non-negative).
var ErrNegativeEntropy = errors.New("cracktime: entropy bits cannot be negative")

// Tier is one attacker capability assumption.
type Tier struct {
	// Name identifies the tier in reports.
	Name string

	// GuessesPerSecond is the assumed sustained guessing rate.
	GuessesPerSecond float64
}

// DefaultTiers returns the documented attacker tiers in fixed report order.
func DefaultTiers() []Tier {
	return []Tier{
		{Name: "online, throttled", GuessesPerSecond: 100.0 / 3600.0},
		{Name: "online, unthrottled", GuessesPerSecond: 10},
		{Name: "offline, slow hash", GuessesPerSecond: 1e4},
		{Name: "offline, fast hash", GuessesPerSecond: 1e10},
	}
}

// Time-unit sizes in seconds. A year is the Julian 365.25 days.
const (
	secondsPerMinute = 60
	secondsPerHour   = 60 * secondsPerMinute
	secondsPerDay    = 24 * secondsPerHour
	secondsPerYear   = 365.25 * secondsPerDay

	// UncrackableAfterSeconds is the saturation threshold: durations above
	// one hundred years are reported as the "centuries" sentinel.
	UncrackableAfterSeconds = 100 * secondsPerYear
)

// Uncrackable is the display sentinel for saturated durations.
const Uncrackable = "centuries"

// Estimate is one tier's crack-time estimate.
type Estimate struct {
	// Tier names the attacker tier the estimate assumes.
	Tier string

	// Seconds is the raw estimated duration (may be +Inf when the guess
	// space overflows float64 range).
	Seconds float64

	// Display is the human-scale rendering of Seconds.
	Display string

	// Uncrackable is set when Seconds exceeds the saturation threshold.
	Uncrackable bool
}

// EstimateAll computes one Estimate per tier, in tier order.
// Returns ErrNegativeEntropy for negative bits.
func EstimateAll(entropyBits float64, tiers []Tier) ([]Estimate, error) {
	if entropyBits < 0 {
		return nil, fmt.Errorf("%w: %v", ErrNegativeEntropy, entropyBits)
	}
	guesses := math.Exp2(entropyBits)
	out := make([]Estimate, 0, len(tiers))
	for _, tier := range tiers {
		secs := guesses / tier.GuessesPerSecond
		out = append(out, Estimate{
			Tier:        tier.Name,
			Seconds:     secs,
			Display:     FormatDuration(secs),
			Uncrackable: secs > UncrackableAfterSeconds,
		})
	}

	return out, nil
}

// EstimateDefault computes estimates against the default attacker tiers.
func EstimateDefault(entropyBits float64) ([]Estimate, error) {
	return EstimateAll(entropyBits, DefaultTiers())
}

// FormatDuration renders a duration in the coarsest human unit that keeps
// the value above one, saturating at the Uncrackable sentinel.
func FormatDuration(seconds float64) string {
	switch {
	case seconds < 1:
		return "less than a second"
	case seconds < secondsPerMinute:
		return fmt.Sprintf("%.0f seconds", seconds)
	case seconds < secondsPerHour:
		return fmt.Sprintf("%.0f minutes", seconds/secondsPerMinute)
	case seconds < secondsPerDay:
		return fmt.Sprintf("%.0f hours", seconds/secondsPerHour)
	case seconds < secondsPerYear:
		return fmt.Sprintf("%.0f days", seconds/secondsPerDay)
	case seconds <= UncrackableAfterSeconds:
		return fmt.Sprintf("%.0f years", seconds/secondsPerYear)
	default:
		return Uncrackable
	}
}
