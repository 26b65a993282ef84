// Package combo defines result types and sentinel errors for the combo
// subpackage of github.com/quintle/quintle.
package combo

import (
	"errors"

	"github.com/quintle/quintle/word"
)

// MaxComboSize caps the subset size k. Search work is exponential in k, so
// unreasonable sizes are rejected up front rather than attempted.
const MaxComboSize = 5

// Sentinel errors for combo operations.
var (
	// ErrComboSize indicates k outside 1..min(|S|, MaxComboSize).
	ErrComboSize = errors.New("combo: subset size must be in 1..min(alphabet size, MaxComboSize)")
	// ErrNoCandidates indicates a search over an empty candidate set.
	ErrNoCandidates = errors.New("combo: candidate set must be non-empty")
	// ErrNoViableCombo indicates no size-k subset occurs fully in any candidate.
	ErrNoViableCombo = errors.New("combo: no viable letter subset of the requested size")
)

// Assignment is one in/out labelling of a combo's letters: Require letters
// must all occur in a matching candidate, Forbid letters must not. Require
// and Forbid partition the combo's letters.
type Assignment struct {
	Require word.LetterSet
	Forbid  word.LetterSet
	Count   int // candidates whose letter set satisfies the assignment
}

// Result is one evaluated combo: its letters, every in/out assignment with
// its bucket count, and the worst (largest non-empty) bucket.
type Result struct {
	Letters     word.LetterSet
	Assignments []Assignment
	WorstCase   int
}
