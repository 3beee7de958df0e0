// Package wordlist turns a raw candidate sequence into an export-ready
// wordlist: order-preserving deduplication under a count cap, and plain-text
// export in a cracking-tool-friendly format.
//
// What
//
//   - Dedup / DedupStrings — remove repeats from a lazy sequence while
//     preserving first-seen order. Equality is exact, case-sensitive string
//     equality. The cap is enforced by early termination: once reached, the
//     upstream sequence is no longer pulled, so a lazy producer stops doing
//     work.
//   - Collect — drain a string sequence into a slice.
//   - Write — stream a sequence to an io.Writer, one candidate per line,
//     newline-terminated. The caller owns the sink; this package never opens
//     files.
//
// Determinism
//
//	Dedup is a pure function of its input order: running it twice on its own
//	output changes nothing (idempotence), and identical inputs always yield
//	identical outputs.
package wordlist
