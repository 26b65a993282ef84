package constraint_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quintle/quintle/constraint"
	"github.com/quintle/quintle/feedback"
	"github.com/quintle/quintle/word"
)

// apply is a test helper folding one guess/pattern pair into a Set.
func apply(t *testing.T, s constraint.Set, guess word.Word, pattern string) constraint.Set {
	t.Helper()
	p, err := feedback.ParsePattern(pattern, len(guess))
	require.NoError(t, err)
	out, err := s.Apply(guess, p)
	require.NoError(t, err)

	return out
}

// TestNewSet_Empty checks the reset state carries no knowledge.
func TestNewSet_Empty(t *testing.T) {
	s := constraint.NewSet(5)
	assert.True(t, s.Empty())
	assert.Equal(t, "-----", s.KnownString())
	assert.Equal(t, word.LetterSet(0), s.Absent())
	assert.Equal(t, word.Counts{}, s.Present())
}

// TestApply_Hits forces known letters and excludes nothing for them.
func TestApply_Hits(t *testing.T) {
	s := apply(t, constraint.NewSet(5), "crane", "GGXGG")

	assert.Equal(t, "cr-ne", s.KnownString())
	c, ok := s.Known(0)
	assert.True(t, ok)
	assert.Equal(t, byte('c'), c)
	_, ok = s.Known(2)
	assert.False(t, ok)

	// The miss becomes both a positional exclusion and an absent letter.
	assert.True(t, s.ExcludedAt(2).Has('a'))
	assert.True(t, s.Absent().Has('a'))
}

// TestApply_Presents raises the unlocated floor and excludes the marked slots.
func TestApply_Presents(t *testing.T) {
	s := apply(t, constraint.NewSet(5), "alert", "AAXXX")

	assert.Equal(t, "-----", s.KnownString())
	assert.Equal(t, 1, s.Present().Get('a'))
	assert.Equal(t, 1, s.Present().Get('l'))
	assert.True(t, s.ExcludedAt(0).Has('a'))
	assert.True(t, s.ExcludedAt(1).Has('l'))
	assert.False(t, s.Absent().Has('a'))
	assert.True(t, s.Absent().Has('e'))
	assert.True(t, s.Absent().Has('r'))
	assert.True(t, s.Absent().Has('t'))
}

// TestApply_DoubledLetterNotAbsent gates Miss→Absent on the per-guess
// confirmed tally: a letter marked both Present and Miss in one guess is in
// the answer, just not twice.
func TestApply_DoubledLetterNotAbsent(t *testing.T) {
	s := apply(t, constraint.NewSet(5), "abbey", "XAXXX")

	assert.True(t, s.Absent().Has('a'))
	assert.False(t, s.Absent().Has('b'), "Present at one slot outweighs Miss at another")
	assert.Equal(t, 1, s.Present().Get('b'))
	assert.True(t, s.ExcludedAt(1).Has('b'))
	assert.True(t, s.ExcludedAt(2).Has('b'))
}

// TestApply_DoublePresentRaisesFloor counts per-guess Present marks: two
// amber e's prove the answer holds at least two e's.
func TestApply_DoublePresentRaisesFloor(t *testing.T) {
	s := apply(t, constraint.NewSet(5), "melee", "XAXAX")

	assert.Equal(t, 2, s.Present().Get('e'))
	assert.Equal(t, word.Counts{}.Set('e', 2), s.RequiredCounts())
}

// TestApply_HitGraduatesPresent consumes one unlocated credit when a letter
// already on the Present floor gets located by a later guess.
func TestApply_HitGraduatesPresent(t *testing.T) {
	s := apply(t, constraint.NewSet(5), "alert", "AXXXX") // one unlocated a
	require.Equal(t, 1, s.Present().Get('a'))

	s = apply(t, s, "crane", "XXGXX") // the a is located at position 2
	assert.Equal(t, 0, s.Present().Get('a'), "locating the a consumes its credit")
	assert.Equal(t, "--a--", s.KnownString())
	// RequiredCounts still demands one a, now via the known slot.
	assert.Equal(t, word.Counts{}.Set('a', 1), s.RequiredCounts())
}

// TestApply_Idempotent re-applies the same guess and expects no change.
func TestApply_Idempotent(t *testing.T) {
	once := apply(t, constraint.NewSet(5), "trace", "AGGXG")
	twice := apply(t, once, "trace", "AGGXG")

	assert.True(t, once.Equal(twice))
}

// TestApply_LaterHitOverridesEarlierMiss strips a letter from Absent once a
// subsequent guess proves it is in the answer.
func TestApply_LaterHitOverridesEarlierMiss(t *testing.T) {
	s := apply(t, constraint.NewSet(5), "pudgy", "XXXXX")
	require.True(t, s.Absent().Has('p'))

	s = apply(t, s, "paint", "GXXXX")
	assert.False(t, s.Absent().Has('p'))
	assert.Equal(t, "p----", s.KnownString())
}

// TestApply_DoesNotMutateReceiver confirms value semantics: the original Set
// survives unchanged after Apply.
func TestApply_DoesNotMutateReceiver(t *testing.T) {
	base := apply(t, constraint.NewSet(5), "crane", "GGXGG")
	snapshot := base.Clone()

	_ = apply(t, base, "crone", "GGGGG")
	assert.True(t, base.Equal(snapshot))
}

// TestApply_Validation rejects bad input with no partial update.
func TestApply_Validation(t *testing.T) {
	s := constraint.NewSet(5)
	p, err := feedback.ParsePattern("GGXGG", 5)
	require.NoError(t, err)

	_, err = s.Apply("cranes", p)
	assert.ErrorIs(t, err, constraint.ErrLengthMismatch)

	_, err = s.Apply("cran3", p)
	assert.ErrorIs(t, err, constraint.ErrBadWord)
}

// TestFromFeedback equals applying one guess to the empty state.
func TestFromFeedback(t *testing.T) {
	p, err := feedback.ParsePattern("AGGXG", 5)
	require.NoError(t, err)

	direct, err := constraint.FromFeedback("crane", p)
	require.NoError(t, err)
	assert.True(t, direct.Equal(apply(t, constraint.NewSet(5), "crane", "AGGXG")))
}

// TestPositionKey checks the ordinal exclusion labels.
func TestPositionKey(t *testing.T) {
	assert.Equal(t, "1st char", constraint.PositionKey(0))
	assert.Equal(t, "2nd char", constraint.PositionKey(1))
	assert.Equal(t, "3rd char", constraint.PositionKey(2))
	assert.Equal(t, "4th char", constraint.PositionKey(3))
	assert.Equal(t, "5th char", constraint.PositionKey(4))
}

// TestDocument_RoundTrip serializes a populated Set and parses it back.
func TestDocument_RoundTrip(t *testing.T) {
	s := apply(t, constraint.NewSet(5), "crane", "GGXGG")
	s = apply(t, s, "melee", "XAXAX")

	d := s.Document()
	assert.Equal(t, "cr-ne", d.KnownLetters)
	assert.Equal(t, "ee", d.UnlocatedLetters, "the floor of two e's renders doubled")
	assert.Equal(t, "alm", d.LettersNotInWord)

	back, err := constraint.ParseDocument(d, 5)
	require.NoError(t, err)
	assert.True(t, s.Equal(back))
}

// TestDefaultDocument matches the reset-state layout.
func TestDefaultDocument(t *testing.T) {
	d := constraint.DefaultDocument(5)
	assert.Equal(t, "-----", d.KnownLetters)
	assert.Empty(t, d.UnlocatedLetters)
	assert.Empty(t, d.LettersNotInWord)
	require.Len(t, d.Exclusions, 5)
	assert.Equal(t, "", d.Exclusions["3rd char"])
}

// TestParseDocument_Forgiving lowercases input and treats non-letters in the
// known string as placeholders.
func TestParseDocument_Forgiving(t *testing.T) {
	d := constraint.DefaultDocument(5)
	d.KnownLetters = "CR_NE"
	d.UnlocatedLetters = "A"
	d.LettersNotInWord = "tsi"

	s, err := constraint.ParseDocument(d, 5)
	require.NoError(t, err)
	assert.Equal(t, "cr-ne", s.KnownString())
	assert.Equal(t, 1, s.Present().Get('a'))
	assert.True(t, s.Absent().Has('t'))
}

// TestParseDocument_EnforcesDisjointness strips absent letters that the same
// document also claims as known or unlocated.
func TestParseDocument_EnforcesDisjointness(t *testing.T) {
	d := constraint.DefaultDocument(5)
	d.KnownLetters = "c----"
	d.LettersNotInWord = "cx"

	s, err := constraint.ParseDocument(d, 5)
	require.NoError(t, err)
	assert.False(t, s.Absent().Has('c'))
	assert.True(t, s.Absent().Has('x'))
}

// TestParseDocument_Rejects covers the malformed-document paths.
func TestParseDocument_Rejects(t *testing.T) {
	short := constraint.DefaultDocument(5)
	short.KnownLetters = "----"
	_, err := constraint.ParseDocument(short, 5)
	assert.ErrorIs(t, err, constraint.ErrBadDocument)

	bad := constraint.DefaultDocument(5)
	bad.UnlocatedLetters = "a!"
	_, err = constraint.ParseDocument(bad, 5)
	assert.ErrorIs(t, err, constraint.ErrBadDocument)

	badExcl := constraint.DefaultDocument(5)
	badExcl.Exclusions["1st char"] = "4"
	_, err = constraint.ParseDocument(badExcl, 5)
	assert.ErrorIs(t, err, constraint.ErrBadDocument)
}
