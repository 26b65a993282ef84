package word

import "sort"

// Scored pairs a word with its letter-coverage score.
type Scored struct {
	Word  Word
	Score int // number of distinct target letters the word contains
}

// RankByCoverage scores every word by how many distinct letters of target it
// contains and returns the words sorted by score, highest first. Ties keep
// input order, so the ranking is deterministic for a fixed word list.
//
// Complexity: O(W·L + W·log W).
func RankByCoverage(words []Word, target LetterSet) []Scored {
	out := make([]Scored, len(words))
	for i, w := range words {
		out[i] = Scored{Word: w, Score: w.Letters().Intersect(target).Len()}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })

	return out
}

// LetterTally reports, for one letter, how many words contain it and the share
// of the word set that represents.
type LetterTally struct {
	Letter byte
	Count  int
	Share  float64 // Count / len(words), in [0,1]
}

// Tally counts, for each letter in target, how many of the given words contain
// it at least once. Results are sorted by count, highest first; ties keep
// alphabetical order.
//
// Complexity: O(W + |target|·log|target|) using per-word letter sets.
func Tally(words []Word, target LetterSet) []LetterTally {
	var counts [AlphabetSize]int
	for _, w := range words {
		ls := w.Letters().Intersect(target)
		for _, c := range ls.Letters() {
			counts[c-'a']++
		}
	}
	out := make([]LetterTally, 0, target.Len())
	for _, c := range target.Letters() {
		t := LetterTally{Letter: c, Count: counts[c-'a']}
		if len(words) > 0 {
			t.Share = float64(t.Count) / float64(len(words))
		}
		out = append(out, t)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })

	return out
}

// Comparator selects the comparison applied by FilterByCount.
type Comparator int

const (
	// Less keeps words whose letter count is strictly below the threshold.
	Less Comparator = iota
	// LessOrEqual keeps words whose letter count is at most the threshold.
	LessOrEqual
	// Greater keeps words whose letter count is strictly above the threshold.
	Greater
	// GreaterOrEqual keeps words whose letter count is at least the threshold.
	GreaterOrEqual
	// Equal keeps words whose letter count equals the threshold exactly.
	Equal
	// NotEqual keeps words whose letter count differs from the threshold.
	NotEqual
)

// FilterByCount keeps the words whose occurrence count of letter c satisfies
// the comparison against threshold, e.g. (Less, 2) keeps words with fewer
// than two occurrences. Returns ErrBadComparator for an unknown Comparator.
//
// Complexity: O(W·L).
func FilterByCount(words []Word, c byte, cmp Comparator, threshold int) ([]Word, error) {
	var keep func(int) bool
	switch cmp {
	case Less:
		keep = func(n int) bool { return n < threshold }
	case LessOrEqual:
		keep = func(n int) bool { return n <= threshold }
	case Greater:
		keep = func(n int) bool { return n > threshold }
	case GreaterOrEqual:
		keep = func(n int) bool { return n >= threshold }
	case Equal:
		keep = func(n int) bool { return n == threshold }
	case NotEqual:
		keep = func(n int) bool { return n != threshold }
	default:
		return nil, ErrBadComparator
	}

	out := make([]Word, 0, len(words))
	for _, w := range words {
		if keep(w.Counts().Get(c)) {
			out = append(out, w)
		}
	}

	return out, nil
}
