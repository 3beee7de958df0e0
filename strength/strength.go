package strength

import (
	"math"
	"strings"
	"unicode"

	"github.com/wordforge/wordforge/cracktime"
	"github.com/wordforge/wordforge/seeds"
)

// Score estimates the strength of password and returns a fresh Report.
// It never fails: every string, including the empty one, scores in 0–4.
// Supply WithSeedTokens to penalize passwords derived from personal facts.
func Score(password string, opts ...Option) Report {
	o := defaultScoreOptions()
	for _, opt := range opts {
		opt(&o)
	}

	runes := []rune(password)
	bits := rawEntropy(runes)

	common := isCommonPassword(password)
	seedHit := matchesSeed(password, &o)
	runs := countRuns(runes)

	if common {
		bits -= commonPenaltyBits
	}
	if seedHit {
		bits -= seedPenaltyBits
	}
	bits -= float64(runs) * runPenaltyBits
	if bits < 0 {
		bits = 0
	}

	var feedback []string
	if common {
		feedback = append(feedback, FeedbackCommonPassword)
	}
	if seedHit {
		feedback = append(feedback, FeedbackSeedMatch)
	}
	if len(runes) < shortLength {
		feedback = append(feedback, FeedbackTooShort)
	}
	if len(runes) > 0 && classCount(runes) == 1 {
		feedback = append(feedback, FeedbackSingleClass)
	}
	if runs > 0 {
		feedback = append(feedback, FeedbackCharacterRun)
	}

	times, err := cracktime.EstimateAll(bits, o.tiers)
	if err != nil {
		// bits is floored at zero above; negative entropy here is a bug.
		panic(err)
	}

	return Report{
		Password:    password,
		EntropyBits: bits,
		Score:       band(bits, o.thresholds),
		CrackTimes:  times,
		Feedback:    feedback,
	}
}

// rawEntropy is the pre-penalty estimate: length times log2 of the combined
// pool of the character classes present.
func rawEntropy(runes []rune) float64 {
	if len(runes) == 0 {
		return 0
	}

	return float64(len(runes)) * math.Log2(float64(poolSize(runes)))
}

func poolSize(runes []rune) int {
	var lower, upper, digit, symbol bool
	for _, r := range runes {
		switch {
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		default:
			symbol = true
		}
	}
	pool := 0
	if lower {
		pool += poolLower
	}
	if upper {
		pool += poolUpper
	}
	if digit {
		pool += poolDigit
	}
	if symbol {
		pool += poolSymbol
	}
	if pool == 0 {
		pool = 1
	}

	return pool
}

func classCount(runes []rune) int {
	var lower, upper, digit, symbol bool
	for _, r := range runes {
		switch {
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		default:
			symbol = true
		}
	}
	n := 0
	for _, present := range []bool{lower, upper, digit, symbol} {
		if present {
			n++
		}
	}

	return n
}

// band maps penalized bits to the 0–4 score.
func band(bits float64, t Thresholds) int {
	switch {
	case bits < t.Weak:
		return 0
	case bits < t.Fair:
		return 1
	case bits < t.Good:
		return 2
	case bits < t.Strong:
		return 3
	default:
		return 4
	}
}

// matchesSeed reports whether the password is a seed token or a common
// variant of one: fold-equal (case/accent-insensitive), leet-folded equal,
// or either of those after stripping up to maxStripLen trailing
// digits/symbols.
func matchesSeed(password string, o *scoreOptions) bool {
	if password == "" || o.seeds.Empty() {
		return false
	}
	forms := []string{
		seeds.Fold(password),
		seeds.Fold(leetFold(password, o.leet)),
	}
	if stripped, ok := stripTrailing(password); ok {
		forms = append(forms,
			seeds.Fold(stripped),
			seeds.Fold(leetFold(stripped, o.leet)),
		)
	}
	for _, tok := range o.seeds {
		for _, form := range forms {
			if form == tok.Fold {
				return true
			}
		}
	}

	return false
}

// leetFold maps substitute characters back to their letter forms.
func leetFold(s string, table map[rune]rune) string {
	return strings.Map(func(r rune) rune {
		if letter, ok := table[r]; ok {
			return letter
		}
		return r
	}, s)
}

// stripTrailing removes trailing non-letters (1..maxStripLen of them) and
// reports whether anything usable remains.
func stripTrailing(s string) (string, bool) {
	runes := []rune(s)
	end := len(runes)
	for end > 0 && !unicode.IsLetter(runes[end-1]) {
		end--
	}
	n := len(runes) - end
	if n == 0 || n > maxStripLen || end == 0 {
		return "", false
	}

	return string(runes[:end]), true
}

// countRuns counts maximal runs of >= minRunLen identical or sequential
// (ascending or descending by one) characters.
func countRuns(runes []rune) int {
	var count int
	for i := 0; i < len(runes)-1; {
		j := i + 1
		switch runes[j] {
		case runes[i]:
			for j < len(runes) && runes[j] == runes[i] {
				j++
			}
		case runes[i] + 1:
			for j < len(runes) && runes[j] == runes[j-1]+1 {
				j++
			}
		case runes[i] - 1:
			for j < len(runes) && runes[j] == runes[j-1]-1 {
				j++
			}
		default:
			i++
			continue
		}
		if j-i >= minRunLen {
			count++
			i = j
		} else {
			i = j - 1
		}
	}

	return count
}
