// Package constraint defines the knowledge-state Set and sentinel errors for
// the constraint subpackage of github.com/quintle/quintle.
package constraint

import (
	"errors"

	"github.com/quintle/quintle/word"
)

// Placeholder marks an unknown position in the serialized known-letters string.
const Placeholder = '-'

// Sentinel errors for constraint operations.
var (
	// ErrLengthMismatch indicates a guess or pattern whose length differs from the set's.
	ErrLengthMismatch = errors.New("constraint: guess and pattern must match the set's word length")
	// ErrBadWord indicates a guess containing a letter outside a–z.
	ErrBadWord = errors.New("constraint: guess must be a canonical lowercase word")
	// ErrBadDocument indicates a serialized document that cannot be decoded into a Set.
	ErrBadDocument = errors.New("constraint: malformed constraint document")
)

// Set is the accumulated knowledge state for one fixed word length.
// The zero Set is unusable; construct with NewSet. Sets behave as values:
// Apply returns an updated deep copy and never mutates its receiver's state,
// so historical Sets stay valid for replay and undo.
type Set struct {
	length   int
	known    []byte // forced letter per position; 0 = unknown
	present  word.Counts
	excluded []word.LetterSet // per-position excluded letters
	absent   word.LetterSet
}

// NewSet returns the empty knowledge state for the given word length: no
// known letters, no present letters, no exclusions, no absent letters.
func NewSet(length int) Set {
	return Set{
		length:   length,
		known:    make([]byte, length),
		excluded: make([]word.LetterSet, length),
	}
}

// Clone returns a deep copy sharing no storage with s.
func (s Set) Clone() Set {
	out := s
	out.known = append([]byte(nil), s.known...)
	out.excluded = append([]word.LetterSet(nil), s.excluded...)

	return out
}

// Length returns the word length the set constrains.
func (s Set) Length() int { return s.length }

// Known returns the letter forced at position pos and whether one is known.
func (s Set) Known(pos int) (byte, bool) {
	c := s.known[pos]

	return c, c != 0
}

// KnownString renders known letters as a fixed-length string with '-'
// placeholders, e.g. "cr-ne".
func (s Set) KnownString() string {
	out := make([]byte, s.length)
	for i, c := range s.known {
		if c == 0 {
			out[i] = Placeholder
		} else {
			out[i] = c
		}
	}

	return string(out)
}

// KnownSet returns the set of letters forced at some position.
func (s Set) KnownSet() word.LetterSet {
	var ls word.LetterSet
	for _, c := range s.known {
		if c != 0 {
			ls = ls.Add(c)
		}
	}

	return ls
}

// Present returns the running minimum occurrence counts for letters proven
// in the answer but not (yet) located.
func (s Set) Present() word.Counts { return s.present }

// ExcludedAt returns the letters proven absent from position pos.
func (s Set) ExcludedAt(pos int) word.LetterSet { return s.excluded[pos] }

// Absent returns the letters proven entirely absent from the answer.
func (s Set) Absent() word.LetterSet { return s.absent }

// RequiredCounts returns the per-letter minimum occurrence counts a candidate
// must satisfy: located (Known) occurrences plus the unlocated Present floor.
func (s Set) RequiredCounts() word.Counts {
	need := s.present
	for _, c := range s.known {
		if c != 0 {
			need = need.Add(c)
		}
	}

	return need
}

// Empty reports whether the set carries no knowledge (the reset state).
func (s Set) Empty() bool {
	if s.absent != 0 || s.present != (word.Counts{}) {
		return false
	}
	for i := 0; i < s.length; i++ {
		if s.known[i] != 0 || s.excluded[i] != 0 {
			return false
		}
	}

	return true
}

// Equal reports whether s and t encode the same knowledge.
func (s Set) Equal(t Set) bool {
	if s.length != t.length || s.absent != t.absent || s.present != t.present {
		return false
	}
	for i := 0; i < s.length; i++ {
		if s.known[i] != t.known[i] || s.excluded[i] != t.excluded[i] {
			return false
		}
	}

	return true
}
