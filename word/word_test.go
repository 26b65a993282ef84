package word_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quintle/quintle/word"
)

// TestNew_Canonicalizes verifies that words are lowercased on entry and
// validated for length and alphabet.
func TestNew_Canonicalizes(t *testing.T) {
	w, err := word.New(5, "CrAnE")
	require.NoError(t, err)
	assert.Equal(t, word.Word("crane"), w)

	_, err = word.New(5, "cranes")
	assert.ErrorIs(t, err, word.ErrBadLength, "six letters must be rejected for length 5")

	_, err = word.New(5, "cra-e")
	assert.ErrorIs(t, err, word.ErrBadLetter, "non a-z rune must be rejected")
}

// TestNewList_DeduplicatesPreservingOrder checks that duplicates collapse to
// their first occurrence and insertion order survives.
func TestNewList_DeduplicatesPreservingOrder(t *testing.T) {
	list, err := word.NewList(5, []string{"CRANE", "crone", "CRANE", "trace"})
	require.NoError(t, err)

	assert.Equal(t, 3, list.Len())
	assert.Equal(t, word.Word("crane"), list.At(0))
	assert.Equal(t, word.Word("crone"), list.At(1))
	assert.Equal(t, word.Word("trace"), list.At(2))
	assert.Equal(t, 1, list.Ordinal("crone"))
	assert.Equal(t, -1, list.Ordinal("slate"))
	assert.True(t, list.Contains("trace"))
}

// TestNewList_Empty ensures a list with no valid words is rejected.
func TestNewList_Empty(t *testing.T) {
	_, err := word.NewList(5, nil)
	assert.ErrorIs(t, err, word.ErrEmptyList)
}

// TestLetterSet_Algebra exercises the bitmask set operations.
func TestLetterSet_Algebra(t *testing.T) {
	ace := word.MustLetterSet("ace")
	abc := word.MustLetterSet("cba") // order and case are irrelevant

	assert.Equal(t, "abc", abc.String(), "letters render alphabetically")
	assert.Equal(t, 3, ace.Len())
	assert.True(t, ace.Has('c'))
	assert.False(t, ace.Has('b'))
	assert.Equal(t, word.MustLetterSet("ac"), ace.Intersect(abc))
	assert.Equal(t, word.MustLetterSet("abce"), ace.Union(abc))
	assert.Equal(t, word.MustLetterSet("e"), ace.Without(abc))
	assert.True(t, word.MustLetterSet("abcde").Contains(ace))
	assert.False(t, ace.Contains(abc))
	assert.True(t, ace.Disjoint(word.MustLetterSet("xyz")))

	_, err := word.ParseLetterSet("a1c")
	assert.ErrorIs(t, err, word.ErrBadLetter)
}

// TestCounts_DuplicateLetters verifies the multiset view of a word with
// repeated letters.
func TestCounts_DuplicateLetters(t *testing.T) {
	m := word.Word("emcee").Counts()
	assert.Equal(t, 3, m.Get('e'))
	assert.Equal(t, 1, m.Get('m'))
	assert.Equal(t, 1, m.Get('c'))
	assert.Equal(t, 0, m.Get('z'))
	assert.Equal(t, 5, m.Total())
	assert.Equal(t, word.MustLetterSet("cem"), m.Letters())

	var need word.Counts
	need = need.Set('e', 2)
	assert.True(t, m.Covers(need), "three e's cover a floor of two")
	need = need.Set('e', 4)
	assert.False(t, m.Covers(need))
}

// TestUniqueLetters aggregates distinct letters across words.
func TestUniqueLetters(t *testing.T) {
	got := word.UniqueLetters([]word.Word{"crane", "crone"})
	assert.Equal(t, word.MustLetterSet("acenor"), got)
}

// TestRankByCoverage prefers words covering more of the target letters,
// with stable order on ties.
func TestRankByCoverage(t *testing.T) {
	words := []word.Word{"crane", "bloke", "cameo"}
	ranked := word.RankByCoverage(words, word.MustLetterSet("aeo"))

	require.Len(t, ranked, 3)
	assert.Equal(t, word.Word("cameo"), ranked[0].Word, "cameo covers a, e and o")
	assert.Equal(t, 3, ranked[0].Score)
	assert.Equal(t, word.Word("crane"), ranked[1].Word, "crane ties bloke on 2 but came first")
	assert.Equal(t, word.Word("bloke"), ranked[2].Word)
}

// TestTally counts words containing each target letter and reports shares.
func TestTally(t *testing.T) {
	words := []word.Word{"crane", "crone", "trace"}
	tallies := word.Tally(words, word.MustLetterSet("aoz"))

	require.Len(t, tallies, 3)
	assert.Equal(t, byte('a'), tallies[0].Letter)
	assert.Equal(t, 2, tallies[0].Count)
	assert.InDelta(t, 2.0/3.0, tallies[0].Share, 1e-12)
	assert.Equal(t, byte('o'), tallies[1].Letter)
	assert.Equal(t, 1, tallies[1].Count)
	assert.Equal(t, byte('z'), tallies[2].Letter)
	assert.Equal(t, 0, tallies[2].Count)
}

// TestFilterByCount applies each comparator against letter occurrence counts.
func TestFilterByCount(t *testing.T) {
	words := []word.Word{"emcee", "crane", "melee"}

	got, err := word.FilterByCount(words, 'e', word.Less, 2)
	require.NoError(t, err)
	assert.Equal(t, []word.Word{"crane"}, got)

	got, err = word.FilterByCount(words, 'e', word.Equal, 3)
	require.NoError(t, err)
	assert.Equal(t, []word.Word{"emcee", "melee"}, got)

	got, err = word.FilterByCount(words, 'e', word.GreaterOrEqual, 1)
	require.NoError(t, err)
	assert.Len(t, got, 3)

	_, err = word.FilterByCount(words, 'e', word.Comparator(99), 1)
	assert.ErrorIs(t, err, word.ErrBadComparator)
}
