// Package candidate defines the Index and sentinel errors for the candidate
// subpackage of github.com/quintle/quintle.
package candidate

import (
	"errors"

	"github.com/quintle/quintle/word"
)

// Sentinel errors for candidate operations.
var (
	// ErrLengthMismatch indicates a constraint.Set built for a different word length.
	ErrLengthMismatch = errors.New("candidate: constraint length does not match the indexed word length")
	// ErrBadWords indicates index construction over words of inconsistent length.
	ErrBadWords = errors.New("candidate: all indexed words must share the configured length")
)

// Index holds precomputed word-membership bitvectors over a word set:
// letters[c] marks every word containing letter c, positions[i][c] marks
// every word with letter c at position i. An Index is derived data — rebuild
// it when the underlying words change; it is never mutated incrementally and
// is safe to share read-only across goroutines.
type Index struct {
	length    int
	words     []word.Word
	counts    []word.Counts // per-word letter multisets, for duplicate rechecks
	letterSet []word.LetterSet
	letters   [word.AlphabetSize]*bitvec
	positions [][word.AlphabetSize]*bitvec
}

// NewIndex builds an Index over words of the given fixed length. Word order
// is preserved; Filter results come back in this order.
//
// Complexity: O(L·W) time, O(L·26·W/64) memory.
func NewIndex(length int, words []word.Word) (*Index, error) {
	idx := &Index{
		length:    length,
		words:     words,
		counts:    make([]word.Counts, len(words)),
		letterSet: make([]word.LetterSet, len(words)),
		positions: make([][word.AlphabetSize]*bitvec, length),
	}
	for c := 0; c < word.AlphabetSize; c++ {
		idx.letters[c] = newBitvec(len(words))
	}
	for i := 0; i < length; i++ {
		for c := 0; c < word.AlphabetSize; c++ {
			idx.positions[i][c] = newBitvec(len(words))
		}
	}

	for ord, w := range words {
		if len(w) != length {
			return nil, ErrBadWords
		}
		idx.counts[ord] = w.Counts()
		idx.letterSet[ord] = w.Letters()
		for i := 0; i < length; i++ {
			c := w[i] - 'a'
			idx.letters[c].set(ord)
			idx.positions[i][c].set(ord)
		}
	}

	return idx, nil
}

// NewListIndex builds an Index over a full word.List.
func NewListIndex(list *word.List) *Index {
	// A List is validated on construction, so indexing cannot fail.
	idx, _ := NewIndex(list.Length(), list.Words())

	return idx
}

// Length returns the indexed word length.
func (idx *Index) Length() int { return idx.length }

// Len returns the number of indexed words.
func (idx *Index) Len() int { return len(idx.words) }

// Words returns the indexed words in index order (shared slice, read-only).
func (idx *Index) Words() []word.Word { return idx.words }

// LetterSets returns per-word distinct-letter masks in index order
// (shared slice, read-only). Used by combo search as its counting base.
func (idx *Index) LetterSets() []word.LetterSet { return idx.letterSet }
