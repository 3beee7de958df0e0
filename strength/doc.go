// Package strength estimates how guessable a password is: an entropy
// estimate in bits, a 0–4 strength band, per-attacker-tier crack times and
// actionable feedback.
//
// What
//
//   - Score computes a character-class entropy estimate:
//     bits = length × log2(alphabet pool), where the pool sums the sizes of
//     the character classes present (lowercase 26, uppercase 26, digits 10,
//     symbols 33).
//   - Penalties then lower the estimate (floored at zero):
//   - 20 bits when the password matches a seed token — exactly, by fold
//     (case/accent-insensitive), as a leetspeak variant, or with up to
//     four trailing digits/symbols stripped;
//   - 20 bits when the password appears in the embedded common-password
//     list (case-insensitive);
//   - 8 bits per run of three or more identical or sequential characters
//     ("aaa", "abc", "321").
//   - The final bits map to a 0–4 score through fixed, documented
//     thresholds: <28 → 0, <36 → 1, <60 → 2, <128 → 3, else 4.
//   - Feedback strings name each detected weakness, in a fixed check order;
//     an empty feedback list signals no detected weakness.
//
// The estimate is a rough upper bound on attacker work, not a replacement
// for a full pattern-matching estimator; it is deliberately pessimistic
// about dictionary and personal-fact reuse and says nothing about breach
// exposure (no network lookups are ever made).
//
// Determinism
//
//	Same password and seed tokens always yield the same Report. The report
//	is a fresh value per call; the scorer holds no state across calls.
//
// Usage
//
//	set, _ := seeds.Extract(seeds.Facts{Pet: "Bruno"})
//	rep := strength.Score("Brun02001", strength.WithSeedTokens(set))
//	fmt.Println(rep.Score, rep.EntropyBits, rep.Feedback)
package strength
