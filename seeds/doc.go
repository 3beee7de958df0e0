// Package seeds normalizes raw personal facts (name, pet, important date,
// extra keywords) into a canonical, ordered set of seed tokens — the raw
// material for targeted wordlist generation.
//
// What
//
//   - Extract turns a Facts value into a TokenSet:
//   - Name and Pet are split on whitespace and the separators "_", "-", ".";
//     every non-empty part becomes its own token, case preserved.
//   - A well-formed Date (YYYY-MM-DD) yields the raw field plus five derived
//     tokens: YYYY, YY, MMDD, DDMM and YYYYMMDD.
//   - Each Extra entry may itself be a comma-delimited list; every non-empty
//     entry becomes a token.
//   - Every token is tagged with its origin kind (KindName, KindPet,
//     KindDate, KindExtra) and carries a fold form (Unicode-normalized,
//     accent-stripped, lowercased) used for seed-aware password scoring.
//
// Determinism
//
//	Tokens appear in a fixed order — name parts, pet parts, raw date, derived
//	date tokens, extras — and duplicates (by exact text) are dropped on first
//	sight, so Extract is fully reproducible for identical input.
//
// Errors
//
//   - ErrInvalidInput — a malformed field, wrapped with the field name.
//     Extraction is per-field and recoverable: a malformed date still returns
//     the tokens of every other field alongside the error, and the caller
//     decides whether to continue.
//   - An input with no usable fields is not an error; it yields an empty
//     TokenSet.
//
// Usage
//
//	set, err := seeds.Extract(seeds.Facts{
//	    Name: "Lekhana",
//	    Pet:  "Bruno",
//	    Date: "2001-06-15",
//	})
//	if err != nil {
//	    // inspect with errors.Is(err, seeds.ErrInvalidInput); set still
//	    // holds the tokens of the well-formed fields
//	}
package seeds
