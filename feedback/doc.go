// Package feedback computes and represents the per-position outcome pattern
// of a guess scored against a hidden answer.
//
// 🚀 What is feedback?
//
//	The game's oracle, reimplemented as a pure function:
//	  • Hit (G) — right letter, right position (green)
//	  • Present (A) — right letter, wrong position (amber)
//	  • Miss (X) — letter not usable at that position (gray)
//
// ✨ Key features:
//   - Two-pass scoring that is exact for duplicated letters: a guess with
//     two of a letter against an answer holding one yields exactly one
//     Hit/Present and one Miss, never two Presents
//   - Compact base-3 pattern codes for map keys and dense tables
//   - Full 3^L pattern enumeration for outcome precomputation
//   - ANSI-colored terminal rendering of a scored guess
//
// ⚙️ Usage:
//
//	pat, err := feedback.Score("crane", "crone")
//	fmt.Println(pat)   // GGXGG
//	pat.Code()         // base-3 integer, Miss=0 Present=1 Hit=2
//
// Complexity: Score is O(L) time with a single 26-entry count table;
// AllPatterns is O(L·3^L).
package feedback
