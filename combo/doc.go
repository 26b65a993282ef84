// Package combo searches for the letter subset that splits the candidate
// set most evenly — a maximally discriminating probe that need not be a
// dictionary word.
//
// 🚀 What is combo?
//
//	A generalized minimax move over letter membership:
//	 1. Enumerate all C(|S|, k) size-k subsets of an input alphabet S
//	    (typically the letters whose fate is still unresolved).
//	 2. Keep only viable subsets — those fully contained in at least one
//	    candidate's letters; a combo appearing nowhere is wasted signal.
//	 3. For each subset, walk all 2^k in/out assignments ("this letter is in
//	    the answer / it is not") and count the candidates whose letter set
//	    satisfies the assignment.
//	 4. A subset's worst case is its largest assignment bucket; the
//	    recommendation is the subset with the smallest worst case.
//
// ✨ Key features:
//   - Bitmask throughout: combos, assignments and candidate letter sets are
//     26-bit masks, so subset and disjoint tests are branch-free
//   - Membership-only: counts go against a precomputed letter-set multiset,
//     never the position index — position is irrelevant to a probe
//   - Deterministic: subsets enumerate lexicographically over the alphabet,
//     ties break to the first subset encountered
//   - Bounded: work is exponential in k, not |S|, and k is validated
//     against MaxComboSize before any enumeration starts
//
// ⚙️ Usage:
//
//	letters := candidate.Unresolved(candidates, cs)
//	best, err := combo.Search(candidates, letters, 3)
//	fmt.Println(best.Letters, best.WorstCase)
//
// Complexity: O(C(|S|,k) · 2^k · D) where D is the number of distinct
// candidate letter sets.
package combo
