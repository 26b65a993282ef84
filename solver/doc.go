// Package solver ties the core together into a replayable game session:
// one word list, an accumulated constraint state, and the guess history
// that produced it.
//
// 🚀 What is solver?
//
//	The stateful-looking veneer over stateless parts:
//	  • Apply a "WORD PATTERN" pair → constraints advance, history grows
//	  • Candidates() → the words still consistent with everything seen
//	  • Undo/Reset → replay the history minus a move, or start over
//
// Because constraint.Set is a value and Apply is pure, the session never
// needs hidden state: the history is the single source of truth and any
// past state can be reconstructed by folding Apply over a prefix.
//
// ⚙️ Usage:
//
//	s := solver.NewSession(list)
//	if err := s.Apply("crane", "GGXGG"); err != nil { ... }
//	left := s.Candidates()
//	if s.Contradictory() { ... } // constraints eliminated everything
//
// Sessions are not safe for concurrent mutation; share the underlying
// candidate.Index instead when evaluating in parallel.
package solver
