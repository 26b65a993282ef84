// Package word provides the core vocabulary primitives shared by every
// quintle subpackage: the canonical Word, the immutable ordered List, the
// 26-bit LetterSet mask and the per-letter Counts multiset.
//
// 🚀 What is word?
//
//	The foundation layer every solver component builds on:
//	  • Word — a fixed-length, lowercase sequence of letters a–z
//	  • List — an ordered, de-duplicated, read-only word collection
//	  • LetterSet — a branch-free bitmask over the 26-letter alphabet
//	  • Counts — a per-letter occurrence multiset for duplicate handling
//
// ✨ Key features:
//   - Canonicalization on entry: words are lowercased and validated once,
//     then treated as immutable everywhere else
//   - Insertion order preserved for stable display; duplicates dropped
//   - Subset / disjoint / union tests on LetterSet compile to single
//     bitwise instructions
//   - Letter-coverage ranking and per-letter tallies for probe selection
//
// ⚙️ Usage:
//
//	list, err := word.NewList(5, []string{"CRANE", "CRONE", "TRACE"})
//	if err != nil { ... }
//	ls := list.At(0).Letters()       // LetterSet of "crane"
//	ls.Contains(word.MustLetterSet("ace"))
//
// Complexity: all LetterSet operations are O(1); List construction is
// O(W·L) for W words of length L.
//
// See example_test.go for runnable examples.
package word
