// Package cracktime converts an entropy estimate (in bits) into estimated
// time-to-crack durations under a fixed set of attacker tiers.
//
// What
//
//   - EstimateAll / EstimateDefault map entropy bits to one duration per
//     attacker tier:
//     duration = 2^bits / guesses-per-second. The guess space is treated as
//     an upper bound; no average-case halving is applied.
//   - Durations above the saturation threshold (one hundred years) are
//     reported as the "centuries" sentinel with Uncrackable set, instead of
//     overflowing into meaningless numbers.
//   - FormatDuration renders a duration in human-scale units, seconds
//     through centuries.
//
// Attacker tiers (documented constants, in fixed report order):
//
//	online, throttled    100 guesses/hour
//	online, unthrottled  10 guesses/second
//	offline, slow hash   1e4 guesses/second
//	offline, fast hash   1e10 guesses/second
//
// Errors
//
//   - ErrNegativeEntropy — negative bits. Entropy is floored at zero by the
//     scorer, so this indicates a caller bug, not a runtime condition.
package cracktime
