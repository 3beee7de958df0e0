package seeds

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// dateLayout is the only accepted date format.
const dateLayout = "2006-01-02"

// Extract normalizes f into an ordered TokenSet.
//
// Field order is fixed: name parts, pet parts, raw date, derived date tokens,
// extras. Duplicate texts are dropped on first sight. A malformed date yields
// ErrInvalidInput (wrapped with the field name) but does not abort extraction
// of the other fields; the partial TokenSet is returned alongside the error.
// An input with no usable fields returns an empty set and a nil error.
func Extract(f Facts) (TokenSet, error) {
	var (
		set  TokenSet
		seen = make(map[string]struct{})
	)
	add := func(text string, kind Kind) {
		text = strings.TrimSpace(text)
		if text == "" {
			return
		}
		if _, dup := seen[text]; dup {
			return
		}
		seen[text] = struct{}{}
		set = append(set, Token{Text: text, Fold: Fold(text), Kind: kind})
	}

	for _, part := range splitFact(f.Name) {
		add(part, KindName)
	}
	for _, part := range splitFact(f.Pet) {
		add(part, KindPet)
	}

	var err error
	if date := strings.TrimSpace(f.Date); date != "" {
		t, perr := time.Parse(dateLayout, date)
		if perr != nil {
			err = fmt.Errorf("%w: field %q: want YYYY-MM-DD, got %q", ErrInvalidInput, "date", date)
		} else {
			add(date, KindDate)
			// Derived numeric forms, in fixed order.
			add(t.Format("2006"), KindDate)   // YYYY
			add(t.Format("06"), KindDate)     // YY
			add(t.Format("0102"), KindDate)   // MMDD
			add(t.Format("0201"), KindDate)   // DDMM
			add(t.Format("20060102"), KindDate)
		}
	}

	for _, entry := range f.Extra {
		for _, part := range strings.Split(entry, ",") {
			add(part, KindExtra)
		}
	}

	return set, err
}

// splitFact splits a free-form fact on whitespace and the separators
// "_", "-", ".", dropping empty parts.
func splitFact(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) || r == '_' || r == '-' || r == '.'
	})
}

// foldChain strips combining marks after NFD decomposition, then recomposes.
var foldChain = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Fold returns the comparison form of s: Unicode-normalized, accent marks
// removed, lowercased. Used by seed-aware password scoring.
func Fold(s string) string {
	out, _, err := transform.String(foldChain, s)
	if err != nil {
		// Malformed UTF-8 cannot be folded; fall back to plain lowercasing.
		out = s
	}

	return strings.ToLower(out)
}
