package feedback_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quintle/quintle/feedback"
	"github.com/quintle/quintle/word"
)

// mustScore is a test helper for known-good inputs.
func mustScore(t *testing.T, guess, answer word.Word) feedback.Pattern {
	t.Helper()
	p, err := feedback.Score(guess, answer)
	require.NoError(t, err)

	return p
}

// TestScore_Basic covers the canonical scoring scenarios.
func TestScore_Basic(t *testing.T) {
	cases := []struct {
		name          string
		guess, answer word.Word
		want          string
	}{
		{"exact match is all hits", "crane", "crane", "GGGGG"},
		{"one wrong letter", "crane", "crone", "GGXGG"},
		{"mixed hits and presents", "crane", "trace", "AGGXG"},
		{"no overlap at all", "pudgy", "crane", "XXXXX"},
		{"full anagram", "alert", "later", "AAAAA"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, mustScore(t, tc.guess, tc.answer).String())
		})
	}
}

// TestScore_DuplicateLetters pins down the two-pass duplicate accounting:
// a repeated guess letter earns at most as many Hit/Present marks as the
// answer holds copies of it.
func TestScore_DuplicateLetters(t *testing.T) {
	cases := []struct {
		name          string
		guess, answer word.Word
		want          string
	}{
		// Guess holds three e's but the answer only two; one Hit plus one
		// Present exhausts the budget, the surplus e must miss.
		{"triple guess letter, double in answer", "emcee", "begem", "AAXGX"},
		// Doubled guess letter, one copy hits, the surplus must miss.
		{"hit consumes the only copy", "llama", "gloat", "XGAXX"},
		{"hit claims its copy before presents", "melee", "eagle", "XAAXG"},
		{"double guess letter, absent answer letter", "abbey", "crane", "AXXAX"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, mustScore(t, tc.guess, tc.answer).String())
		})
	}
}

// TestScore_MarkBudgetProperty verifies, across word pairs, that each letter
// receives exactly min(count in guess, count in answer) Hit+Present marks.
func TestScore_MarkBudgetProperty(t *testing.T) {
	words := []word.Word{"crane", "crone", "trace", "emcee", "melee", "abbey", "llama", "pudgy"}
	for _, g := range words {
		for _, a := range words {
			p := mustScore(t, g, a)

			var marks word.Counts
			for i, c := range p {
				if c != feedback.Miss {
					marks = marks.Add(g[i])
				}
			}
			gc, ac := g.Counts(), a.Counts()
			for c := byte('a'); c <= 'z'; c++ {
				want := gc.Get(c)
				if ac.Get(c) < want {
					want = ac.Get(c)
				}
				assert.Equal(t, want, marks.Get(c),
					"letter %q marks for guess %q answer %q", string(c), g, a)
			}
		}
	}
}

// TestScore_SelfIsAllHit checks score(a, a) is all-Hit for every word.
func TestScore_SelfIsAllHit(t *testing.T) {
	for _, w := range []word.Word{"crane", "emcee", "llama"} {
		p := mustScore(t, w, w)
		assert.True(t, p.AllHit(), "%q against itself", w)
	}
}

// TestScore_LengthMismatch rejects unequal lengths without partial output.
func TestScore_LengthMismatch(t *testing.T) {
	_, err := feedback.Score("crane", "cranes")
	assert.ErrorIs(t, err, feedback.ErrLengthMismatch)
}

// TestParsePattern round-trips symbols and rejects malformed input.
func TestParsePattern(t *testing.T) {
	p, err := feedback.ParsePattern("xgxag", 5)
	require.NoError(t, err)
	assert.Equal(t, "XGXAG", p.String(), "parsing is case-insensitive, rendering is upper")

	_, err = feedback.ParsePattern("XGXA", 5)
	assert.ErrorIs(t, err, feedback.ErrLengthMismatch)

	_, err = feedback.ParsePattern("XGXAZ", 5)
	assert.ErrorIs(t, err, feedback.ErrBadSymbol)
}

// TestPattern_Code checks the base-3 packing: leftmost cell most significant,
// Miss=0 Present=1 Hit=2.
func TestPattern_Code(t *testing.T) {
	allMiss, err := feedback.ParsePattern("XXXXX", 5)
	require.NoError(t, err)
	assert.Equal(t, 0, allMiss.Code())

	allHit, err := feedback.ParsePattern("GGGGG", 5)
	require.NoError(t, err)
	assert.Equal(t, 242, allHit.Code(), "3^5-1")

	p, err := feedback.ParsePattern("GXXXX", 5)
	require.NoError(t, err)
	assert.Equal(t, 162, p.Code(), "2*3^4")
}

// TestAllPatterns enumerates 3^L patterns in ascending code order.
func TestAllPatterns(t *testing.T) {
	all := feedback.AllPatterns(3)
	require.Len(t, all, 27)
	for code, p := range all {
		assert.Equal(t, code, p.Code())
	}
	assert.Equal(t, "XXX", all[0].String())
	assert.Equal(t, "GGG", all[26].String())
}
