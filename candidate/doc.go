// Package candidate filters a word list down to the words still consistent
// with an accumulated constraint.Set, using precomputed bitvector indexes.
//
// 🚀 What is candidate?
//
//	The set-algebra heart of the solver:
//	  • Index — per-letter and per-(position, letter) word-membership
//	    bitvectors over a word list, rebuilt wholesale when the list changes
//	  • Filter — intersects and subtracts those bitvectors to apply a
//	    constraint.Set in a fixed, selectivity-ordered sequence
//
// ✨ Key features:
//   - Word-per-bit storage with popcount counting: one 64-word machine word
//     covers 64 candidates, so intersections are effectively branch-free
//   - Filter order chosen to shrink the working set early: known positions
//     first, then required letters, then positional and global exclusions
//   - Duplicate-aware: letters required at least twice get a secondary
//     exact-count check against each survivor's own letter multiset
//   - Empty results are a valid, reportable outcome — Contradictory
//     distinguishes "constraints exhausted" from "list was empty"
//
// ⚙️ Usage:
//
//	idx := candidate.NewIndex(list.Length(), list.Words())
//	left, err := idx.Filter(cs)   // ordered surviving words
//	n, err := idx.Count(cs)       // just the count, no materialization
//
// Complexity: index build is O(L·W); one Filter is O(C·W/64) bitvector words
// for C applied constraints, plus O(S·L) for the duplicate recheck over S
// survivors.
//
// The index is immutable once built and safe to share across concurrent
// evaluations.
package candidate
