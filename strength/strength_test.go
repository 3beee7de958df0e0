package strength_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/wordforge/wordforge/seeds"
	"github.com/wordforge/wordforge/strength"
)

// ScorerSuite exercises the entropy scorer and its penalty policy.
type ScorerSuite struct {
	suite.Suite
}

func (s *ScorerSuite) seedSet() seeds.TokenSet {
	set, err := seeds.Extract(seeds.Facts{
		Name: "Lekhana",
		Pet:  "Bruno",
		Date: "2001-06-15",
	})
	s.Require().NoError(err)

	return set
}

// TestScoreBounds verifies the 0–4 band for a spread of inputs, including
// the empty password.
func (s *ScorerSuite) TestScoreBounds() {
	inputs := []string{
		"",
		"a",
		"password",
		"Winter2025!",
		"correct horse battery staple",
		"aA1!aA1!aA1!aA1!aA1!aA1!",
		"日本語パスワード",
	}
	for _, pw := range inputs {
		rep := strength.Score(pw)
		s.GreaterOrEqual(rep.Score, 0, "password %q", pw)
		s.LessOrEqual(rep.Score, 4, "password %q", pw)
		s.GreaterOrEqual(rep.EntropyBits, 0.0, "password %q", pw)
	}
}

// TestEmptyPassword verifies the degenerate case: zero bits, score 0.
func (s *ScorerSuite) TestEmptyPassword() {
	rep := strength.Score("")
	s.Equal(0, rep.Score)
	s.Zero(rep.EntropyBits)
	s.Contains(rep.Feedback, strength.FeedbackTooShort)
}

// TestWinterScenario checks the reference password: four character classes,
// length 11, no seeds supplied — score >= 3 and no seed-match feedback.
func (s *ScorerSuite) TestWinterScenario() {
	rep := strength.Score("Winter2025!")
	s.GreaterOrEqual(rep.Score, 3)
	s.NotContains(rep.Feedback, strength.FeedbackSeedMatch)
	// 11 characters over a 26+26+10+33 pool, no repetition penalty.
	s.InDelta(11*math.Log2(95), rep.EntropyBits, 0.01)
	s.Empty(rep.Feedback)
}

// TestSeedPenalty verifies scoring a literal seed token lands strictly
// below a random string of equal length with mixed character classes.
func (s *ScorerSuite) TestSeedPenalty() {
	seeded := strength.Score("Bruno", strength.WithSeedTokens(s.seedSet()))
	random := strength.Score("kQ3!x")

	s.Less(seeded.EntropyBits, random.EntropyBits)
	s.Less(seeded.Score, random.Score)
	s.Contains(seeded.Feedback, strength.FeedbackSeedMatch)
}

// TestSeedVariants verifies fold, leet and trailing-affix variants of a
// seed token all draw the penalty.
func (s *ScorerSuite) TestSeedVariants() {
	for _, pw := range []string{"bruno", "BRUNO", "Brun0", "bruno2001", "lekhana!"} {
		rep := strength.Score(pw, strength.WithSeedTokens(s.seedSet()))
		s.Contains(rep.Feedback, strength.FeedbackSeedMatch, "password %q", pw)
	}
	// Unrelated passwords must not be flagged.
	rep := strength.Score("Winter2025!", strength.WithSeedTokens(s.seedSet()))
	s.NotContains(rep.Feedback, strength.FeedbackSeedMatch)
}

// TestCommonPassword verifies the embedded-list penalty and feedback.
func (s *ScorerSuite) TestCommonPassword() {
	rep := strength.Score("password123")
	s.Contains(rep.Feedback, strength.FeedbackCommonPassword)
	s.LessOrEqual(rep.Score, 1)

	upper := strength.Score("PASSWORD123")
	s.Contains(upper.Feedback, strength.FeedbackCommonPassword, "lookup must be case-insensitive")
}

// TestRunPenalty verifies repeated and sequential runs are each charged.
func (s *ScorerSuite) TestRunPenalty() {
	flat := strength.Score("qazwsxed")
	runs := strength.Score("aaabcdef")

	s.Contains(runs.Feedback, strength.FeedbackCharacterRun)
	s.NotContains(flat.Feedback, strength.FeedbackCharacterRun)
	s.Less(runs.EntropyBits, flat.EntropyBits)
}

// TestSingleClassFeedback verifies the single-character-class warning.
func (s *ScorerSuite) TestSingleClassFeedback() {
	rep := strength.Score("qazwsxed")
	s.Contains(rep.Feedback, strength.FeedbackSingleClass)

	mixed := strength.Score("qazWsxed")
	s.NotContains(mixed.Feedback, strength.FeedbackSingleClass)
}

// TestCrackTimes verifies every report carries all four tiers in order.
func (s *ScorerSuite) TestCrackTimes() {
	rep := strength.Score("Winter2025!")
	s.Require().Len(rep.CrackTimes, 4)
	s.Equal("online, throttled", rep.CrackTimes[0].Tier)
	s.Equal("offline, fast hash", rep.CrackTimes[3].Tier)
	// A slower attacker never cracks faster.
	for i := 1; i < len(rep.CrackTimes); i++ {
		s.GreaterOrEqual(rep.CrackTimes[i-1].Seconds, rep.CrackTimes[i].Seconds)
	}
}

// TestDeterminism verifies identical input yields identical reports.
func (s *ScorerSuite) TestDeterminism() {
	set := s.seedSet()
	first := strength.Score("Brun02001", strength.WithSeedTokens(set))
	second := strength.Score("Brun02001", strength.WithSeedTokens(set))
	s.Equal(first, second)
}

func TestScorerSuite(t *testing.T) {
	suite.Run(t, new(ScorerSuite))
}

// TestScore_ThresholdBands verifies the documented band boundaries with an
// injected threshold table.
func TestScore_ThresholdBands(t *testing.T) {
	tiny := strength.Thresholds{Weak: 1, Fair: 2, Good: 3, Strong: 4}
	rep := strength.Score("Winter2025!", strength.WithThresholds(tiny))
	require.Equal(t, 4, rep.Score)

	huge := strength.Thresholds{Weak: 1000, Fair: 2000, Good: 3000, Strong: 4000}
	rep = strength.Score("Winter2025!", strength.WithThresholds(huge))
	require.Equal(t, 0, rep.Score)
}

// TestScore_DefaultBands pins the default 28/36/60/128 boundaries.
func TestScore_DefaultBands(t *testing.T) {
	// 8 lowercase characters, no runs: 8*log2(26) ~ 37.6 bits, band 2.
	rep := strength.Score("qazwsxed")
	require.InDelta(t, 8*math.Log2(26), rep.EntropyBits, 0.01)
	require.Equal(t, 2, rep.Score)

	// Four ascending characters: run penalty drops 18.8 bits to 10.8, band 0.
	require.Equal(t, 0, strength.Score("abcd").Score)

	// Four classes over 11 characters: ~72.2 bits, band 3.
	require.Equal(t, 3, strength.Score("Winter2025!").Score)
}
