// Package solver defines the Session and sentinel errors for the solver
// subpackage of github.com/quintle/quintle.
package solver

import (
	"errors"

	"github.com/quintle/quintle/candidate"
	"github.com/quintle/quintle/constraint"
	"github.com/quintle/quintle/feedback"
	"github.com/quintle/quintle/word"
)

// Sentinel errors for solver operations.
var (
	// ErrNoHistory indicates an Undo with no moves to remove.
	ErrNoHistory = errors.New("solver: no moves to undo")
	// ErrLengthMismatch indicates a restored constraint state for another word length.
	ErrLengthMismatch = errors.New("solver: constraint length does not match the word list")
)

// Move is one applied (guess, pattern) pair.
type Move struct {
	Guess   word.Word
	Pattern feedback.Pattern
}

// Session accumulates constraints over a fixed word list, one scored guess
// at a time. The full-list index is built once; constraint states are values
// so every past state remains reachable through the history.
type Session struct {
	list    *word.List
	index   *candidate.Index
	set     constraint.Set
	history []Move
}

// NewSession starts an empty session over list.
func NewSession(list *word.List) *Session {
	return &Session{
		list:  list,
		index: candidate.NewListIndex(list),
		set:   constraint.NewSet(list.Length()),
	}
}

// Apply parses and folds one guess with its observed pattern into the
// session, e.g. Apply("crane", "GGXGG"). On any validation error the
// session is left exactly as it was — no partial update.
func (s *Session) Apply(guess, pattern string) error {
	w, err := word.New(s.list.Length(), guess)
	if err != nil {
		return err
	}
	p, err := feedback.ParsePattern(pattern, s.list.Length())
	if err != nil {
		return err
	}

	return s.ApplyScored(w, p)
}

// ApplyScored is Apply for already-parsed values.
func (s *Session) ApplyScored(guess word.Word, p feedback.Pattern) error {
	next, err := s.set.Apply(guess, p)
	if err != nil {
		return err
	}
	s.set = next
	s.history = append(s.history, Move{Guess: guess, Pattern: p})

	return nil
}

// Undo removes the most recent move and rebuilds the constraint state by
// replaying the remaining history. Returns ErrNoHistory when empty.
func (s *Session) Undo() error {
	if len(s.history) == 0 {
		return ErrNoHistory
	}
	s.history = s.history[:len(s.history)-1]
	s.set = constraint.NewSet(s.list.Length())
	for _, m := range s.history {
		// Replaying previously accepted moves cannot fail.
		s.set, _ = s.set.Apply(m.Guess, m.Pattern)
	}

	return nil
}

// Reset clears all constraints and history, keeping the word list and index.
func (s *Session) Reset() {
	s.set = constraint.NewSet(s.list.Length())
	s.history = nil
}

// Restore replaces the constraint state with one loaded from elsewhere
// (e.g. a parsed document). The history is cleared — moves behind a
// restored state are unknown, so Undo is unavailable until new moves land.
func (s *Session) Restore(cs constraint.Set) error {
	if cs.Length() != s.list.Length() {
		return ErrLengthMismatch
	}
	s.set = cs.Clone()
	s.history = nil

	return nil
}

// Constraints returns a copy of the current knowledge state.
func (s *Session) Constraints() constraint.Set { return s.set.Clone() }

// History returns the applied moves in order (copied).
func (s *Session) History() []Move {
	return append([]Move(nil), s.history...)
}

// List returns the session's word list.
func (s *Session) List() *word.List { return s.list }

// Candidates returns the words still consistent with every applied move,
// in word-list order.
func (s *Session) Candidates() []word.Word {
	// The session's set always matches the list length, so filtering cannot fail.
	out, _ := s.index.Filter(s.set)

	return out
}

// Contradictory reports whether the constraints have eliminated every word
// of a non-empty list — distinct from an empty list, which never
// contradicts anything.
func (s *Session) Contradictory() bool {
	ok, _ := s.index.Contradictory(s.set)

	return ok
}
