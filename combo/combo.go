package combo

import "github.com/quintle/quintle/word"

// letterSetTally is a candidate letter-set multiset entry: several words can
// share one distinct-letter mask, so counting goes per mask, not per word.
type letterSetTally struct {
	mask  word.LetterSet
	count int
}

// tallyLetterSets collapses candidates into distinct letter-set counts,
// preserving first-seen order for determinism.
func tallyLetterSets(candidates []word.Word) []letterSetTally {
	order := make([]letterSetTally, 0, len(candidates))
	at := make(map[word.LetterSet]int, len(candidates))
	for _, c := range candidates {
		m := c.Letters()
		if i, ok := at[m]; ok {
			order[i].count++
			continue
		}
		at[m] = len(order)
		order = append(order, letterSetTally{mask: m, count: 1})
	}

	return order
}

// Enumerate evaluates every viable size-k subset of alphabet against the
// candidates: all C(|S|, k) subsets in lexicographic order over the
// alphabet's letters, minus those contained in no candidate's letter set.
// Each surviving subset gets all 2^k in/out assignments counted and its
// worst-case (largest) bucket recorded.
//
// Returns ErrNoCandidates for an empty candidate set, ErrComboSize for k
// outside 1..min(|S|, MaxComboSize), and ErrNoViableCombo when the viability
// filter discards every subset.
//
// Complexity: O(C(|S|,k)·2^k·D) for D distinct candidate letter sets.
func Enumerate(candidates []word.Word, alphabet word.LetterSet, k int) ([]Result, error) {
	if len(candidates) == 0 {
		return nil, ErrNoCandidates
	}
	if k <= 0 || k > MaxComboSize || k > alphabet.Len() {
		return nil, ErrComboSize
	}

	letters := alphabet.Letters()
	tallies := tallyLetterSets(candidates)

	var results []Result
	forEachCombination(len(letters), k, func(pick []int) {
		var mask word.LetterSet
		for _, i := range pick {
			mask = mask.Add(letters[i])
		}
		if !viable(mask, tallies) {
			return
		}

		res := Result{
			Letters:     mask,
			Assignments: make([]Assignment, 0, 1<<k),
		}
		for bitsOn := 0; bitsOn < 1<<k; bitsOn++ {
			var require word.LetterSet
			for j := 0; j < k; j++ {
				if bitsOn&(1<<j) != 0 {
					require = require.Add(letters[pick[j]])
				}
			}
			forbid := mask.Without(require)
			n := 0
			for _, t := range tallies {
				if t.mask.Contains(require) && t.mask.Disjoint(forbid) {
					n += t.count
				}
			}
			res.Assignments = append(res.Assignments, Assignment{Require: require, Forbid: forbid, Count: n})
			if n > res.WorstCase {
				res.WorstCase = n
			}
		}
		results = append(results, res)
	})

	if len(results) == 0 {
		return nil, ErrNoViableCombo
	}

	return results, nil
}

// Search returns the viable size-k subset whose worst-case bucket is the
// smallest — the combo bounding the remaining possibilities best even under
// the least helpful outcome. Ties break to the first subset in enumeration
// order, so results are deterministic for a fixed candidate order.
//
// Viability guarantees every returned combo has a non-empty bucket: its
// all-required assignment matches at least one candidate.
func Search(candidates []word.Word, alphabet word.LetterSet, k int) (Result, error) {
	all, err := Enumerate(candidates, alphabet, k)
	if err != nil {
		return Result{}, err
	}

	best := all[0]
	for _, r := range all[1:] {
		if r.WorstCase < best.WorstCase {
			best = r
		}
	}

	return best, nil
}

// viable reports whether some candidate letter set contains every combo letter.
func viable(mask word.LetterSet, tallies []letterSetTally) bool {
	for _, t := range tallies {
		if t.mask.Contains(mask) {
			return true
		}
	}

	return false
}

// forEachCombination visits every k-subset of {0..n-1} in lexicographic
// order, passing the picked indices (reused between calls — copy to keep).
func forEachCombination(n, k int, visit func(pick []int)) {
	pick := make([]int, k)
	for i := range pick {
		pick[i] = i
	}
	for {
		visit(pick)
		// Advance to the next combination.
		i := k - 1
		for i >= 0 && pick[i] == n-k+i {
			i--
		}
		if i < 0 {
			return
		}
		pick[i]++
		for j := i + 1; j < k; j++ {
			pick[j] = pick[j-1] + 1
		}
	}
}
