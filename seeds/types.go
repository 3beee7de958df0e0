// Package seeds defines the token types and error values for fact extraction.
package seeds

import "errors"

// ErrInvalidInput is returned when a fact field is malformed (e.g. a date not
// in YYYY-MM-DD form). The wrapped message names the offending field.
// Extraction of the remaining fields still proceeds.
var ErrInvalidInput = errors.New("seeds: invalid input")

// Kind tags a token with the fact field it originated from.
type Kind uint8

const (
	// KindName marks tokens derived from the Name field.
	KindName Kind = iota

	// KindPet marks tokens derived from the Pet field.
	KindPet

	// KindDate marks the raw date field and its derived numeric forms.
	KindDate

	// KindExtra marks tokens supplied as extra keywords.
	KindExtra
)

// String returns the lowercase field name for k.
func (k Kind) String() string {
	switch k {
	case KindName:
		return "name"
	case KindPet:
		return "pet"
	case KindDate:
		return "date"
	case KindExtra:
		return "extra"
	default:
		return "unknown"
	}
}

// Facts carries the caller-supplied raw facts. Empty fields are simply
// skipped; they are not errors.
type Facts struct {
	// Name is a person's name; it may contain several words.
	Name string

	// Pet is a pet's name; it may contain several words.
	Pet string

	// Date is an important date in YYYY-MM-DD form.
	Date string

	// Extra holds additional keywords; each entry may itself be a
	// comma-delimited list.
	Extra []string
}

// Token is one normalized seed fact.
//
// Text preserves the original casing (case variation is a mutation concern,
// not an extraction concern). Fold is the comparison form: NFD-normalized,
// combining marks stripped, lowercased.
type Token struct {
	Text string
	Fold string
	Kind Kind
}

// TokenSet is an ordered, duplicate-free collection of tokens. The zero
// value is an empty set. TokenSets are created once per extraction and are
// read-only afterward.
type TokenSet []Token

// Texts returns the token texts in set order.
func (s TokenSet) Texts() []string {
	out := make([]string, len(s))
	for i, t := range s {
		out[i] = t.Text
	}

	return out
}

// Empty reports whether the set holds no tokens.
func (s TokenSet) Empty() bool { return len(s) == 0 }
