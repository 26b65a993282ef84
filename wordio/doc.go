// Package wordio is the persistence edge of quintle: word lists, constraint
// documents and precomputed outcome files on disk. The core packages stay
// pure; everything that touches a file lives here.
//
// 🚀 What is wordio?
//
//	Three file families used by the surrounding tooling:
//	  • Word lists — CSV (one word per row, optional WORD header) or a JSON
//	    string array, loaded into an immutable word.List
//	  • Constraint documents — the solver state as JSON (known letters,
//	    unlocated letters, absent letters, per-position exclusions)
//	  • Outcome files — every feedback pattern for an opening guess mapped
//	    to its criteria and surviving candidates, plus checkpointed
//	    expected-value analyses over those outcomes
//
// ✨ Key features:
//   - Outcome precomputation prunes impossible patterns (zero survivors)
//   - Analyses resume from an existing output file and checkpoint after
//     every pattern, so long batches survive interruption
//   - Patterns are processed smallest-candidate-set first, making progress
//     cheap early and the quadratic tail predictable via
//     evaluate.EstimateRuntime
//
// ⚙️ Usage:
//
//	list, err := wordio.LoadWordList("word_list.csv", 5)
//	outcomes, err := wordio.BuildOutcomes("aider", list)
//	err = wordio.SaveOutcomes("aider_outcomes.json", outcomes)
package wordio
