package candidate

import (
	"github.com/quintle/quintle/constraint"
	"github.com/quintle/quintle/word"
)

// Filter returns the indexed words still consistent with cs, in index order.
//
// Stages, ordered to shrink the working set as early as possible:
//  1. Known positions — intersect positions[i][letter] for every fixed
//     letter (typically the most selective constraint).
//  2. Required letters — intersect letters[c] for every letter the answer
//     must contain; floors ≥2 get a per-survivor exact-count recheck, since
//     the letter index only proves "contains at least one".
//  3. Positional exclusions — subtract positions[i][c] for every excluded
//     (position, letter).
//  4. Absent letters — subtract letters[c] for every globally absent letter.
//
// An empty result is a valid terminal outcome, not an error: it means the
// constraints are contradictory (or the list was empty to begin with — see
// Contradictory). Returns ErrLengthMismatch when cs targets another length.
//
// Complexity: O(C·W/64) machine words for C applied constraints plus the
// stage-2 recheck.
func (idx *Index) Filter(cs constraint.Set) ([]word.Word, error) {
	v, err := idx.filterVec(cs)
	if err != nil {
		return nil, err
	}
	out := make([]word.Word, 0, v.count())
	v.forEach(func(i int) { out = append(out, idx.words[i]) })

	return out, nil
}

// Count is Filter without materializing the surviving words.
func (idx *Index) Count(cs constraint.Set) (int, error) {
	v, err := idx.filterVec(cs)
	if err != nil {
		return 0, err
	}

	return v.count(), nil
}

// Contradictory reports whether cs eliminates every word of a non-empty
// index — the "constraints are exhausted" terminal state, as opposed to an
// empty result caused by an empty word set.
func (idx *Index) Contradictory(cs constraint.Set) (bool, error) {
	if idx.Len() == 0 {
		return false, nil
	}
	n, err := idx.Count(cs)
	if err != nil {
		return false, err
	}

	return n == 0, nil
}

func (idx *Index) filterVec(cs constraint.Set) (*bitvec, error) {
	if cs.Length() != idx.length {
		return nil, ErrLengthMismatch
	}

	v := newBitvec(len(idx.words))
	v.fill()

	// Stage 1: fixed positions.
	for i := 0; i < idx.length; i++ {
		if c, ok := cs.Known(i); ok {
			v.and(idx.positions[i][c-'a'])
		}
	}

	// Stage 2: required letters, with an exact-count pass for floors ≥2.
	need := cs.RequiredCounts()
	recheck := false
	for _, c := range need.Letters().Letters() {
		v.and(idx.letters[c-'a'])
		if need.Get(c) >= 2 {
			recheck = true
		}
	}
	if recheck {
		v.forEach(func(i int) {
			if !idx.counts[i].Covers(need) {
				v.clear(i)
			}
		})
	}

	// Stage 3: positional exclusions.
	for i := 0; i < idx.length; i++ {
		for _, c := range cs.ExcludedAt(i).Letters() {
			v.andNot(idx.positions[i][c-'a'])
		}
	}

	// Stage 4: globally absent letters.
	for _, c := range cs.Absent().Letters() {
		v.andNot(idx.letters[c-'a'])
	}

	return v, nil
}

// Unresolved returns the letters occurring in words whose fate is still open:
// everything seen across the words minus letters already proven in the answer
// (Known ∪ Present) and letters proven absent. These are the natural seed
// alphabet for combo search.
func Unresolved(words []word.Word, cs constraint.Set) word.LetterSet {
	settled := cs.KnownSet().Union(cs.Present().Letters()).Union(cs.Absent())

	return word.UniqueLetters(words).Without(settled)
}
