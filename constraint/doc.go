// Package constraint accumulates everything a sequence of scored guesses
// proves about the hidden answer, as an explicit value type with a pure
// Apply transition.
//
// 🚀 What is constraint?
//
//	The solver's knowledge state, split into four orthogonal facts:
//	  • Known — the letter forced at an exact position (from a Hit)
//	  • Present — letters proven in the answer at least N times, position
//	    unknown (from Present marks; N is a running lower bound)
//	  • Excluded — letters proven absent from one specific position
//	    (from Present or Miss at that position)
//	  • Absent — letters proven entirely absent from the answer
//
// ✨ Key features:
//   - Duplicate-letter correct: a guess holding a letter twice can mark one
//     occurrence Hit and the other Miss without poisoning Absent
//   - Idempotent: re-applying the same (guess, pattern) changes nothing
//   - Invariant-enforcing: Absent and Known∪Present stay disjoint; conflicts
//     are resolved by stripping Absent, never Known/Present
//   - Replayable: Sets are values — store the guess history and fold Apply
//     over it to reconstruct (or rewind) any state
//
// ⚙️ Usage:
//
//	cs := constraint.NewSet(5)
//	pat, _ := feedback.ParsePattern("GGXGG", 5)
//	cs, err := cs.Apply("crane", pat)
//
// The JSON Document form mirrors the surrounding tooling's on-disk layout:
// known letters as a "-----" placeholder string, present/absent letters as
// plain strings, and per-position exclusions keyed "1st char" … "5th char".
//
// Complexity: Apply is O(L) per guess; Sets occupy O(L) memory.
package constraint
