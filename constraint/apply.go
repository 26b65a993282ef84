package constraint

import (
	"github.com/quintle/quintle/feedback"
	"github.com/quintle/quintle/word"
)

// Apply folds one scored guess into the knowledge state and returns the
// updated Set. The receiver is left untouched; on any validation error the
// returned Set is the zero value and no partial update occurs.
//
// Per position i:
//   - Hit: force known[i] = guess[i]. If that letter had an unlocated
//     Present credit and the position is newly learned, one credit is
//     consumed — the located occurrence is the one we already knew about.
//   - Present: exclude guess[i] at position i; afterwards the letter's
//     Present floor is raised to the number of Present marks it received in
//     this guess (never beyond — re-applying a guess must not inflate it).
//   - Miss: exclude guess[i] at position i; the letter joins Absent only
//     when no other slot of this same guess marked it Hit or Present.
//
// Finally any letter now in Known ∪ Present is stripped from Absent. Under
// correct per-guess accounting this is a no-op, but a later guess's
// Hit/Present must always win over an earlier Miss interpretation.
//
// Apply is idempotent: Apply(Apply(s,g,p),g,p) == Apply(s,g,p).
//
// Complexity: O(L) time.
func (s Set) Apply(guess word.Word, p feedback.Pattern) (Set, error) {
	if len(guess) != s.length || len(p) != s.length {
		return Set{}, ErrLengthMismatch
	}
	for i := 0; i < len(guess); i++ {
		if guess[i] < 'a' || guess[i] > 'z' {
			return Set{}, ErrBadWord
		}
	}

	out := s.Clone()

	// Per-guess tallies: confirmed marks (Hit+Present) gate Absent, Present
	// marks alone set the unlocated floor.
	var confirmed, presentMarks word.Counts
	for i, c := range p {
		if c == feedback.Hit || c == feedback.Present {
			confirmed = confirmed.Add(guess[i])
		}
		if c == feedback.Present {
			presentMarks = presentMarks.Add(guess[i])
		}
	}

	// Hits first: graduation from Present to Known consumes one credit.
	for i, c := range p {
		if c != feedback.Hit {
			continue
		}
		g := guess[i]
		if out.known[i] != g {
			if n := out.present.Get(g); n > 0 {
				out.present = out.present.Set(g, n-1)
			}
			out.known[i] = g
		}
	}

	// Presents and Misses.
	for i, c := range p {
		g := guess[i]
		switch c {
		case feedback.Present:
			out.excluded[i] = out.excluded[i].Add(g)
		case feedback.Miss:
			out.excluded[i] = out.excluded[i].Add(g)
			if confirmed.Get(g) == 0 {
				out.absent = out.absent.Add(g)
			}
		}
	}

	// Raise Present floors to this guess's observed unlocated counts.
	for _, g := range presentMarks.Letters().Letters() {
		if n := presentMarks.Get(g); n > out.present.Get(g) {
			out.present = out.present.Set(g, n)
		}
	}

	// Invariant: Absent is disjoint from Known ∪ Present; Absent yields.
	out.absent = out.absent.Without(out.KnownSet().Union(out.present.Letters()))

	return out, nil
}

// FromFeedback builds a fresh Set holding exactly the knowledge of one
// (guess, pattern) pair — the empty state with that single guess applied.
func FromFeedback(guess word.Word, p feedback.Pattern) (Set, error) {
	return NewSet(len(guess)).Apply(guess, p)
}
