// Package word defines core types and sentinel errors for the word
// subpackage of github.com/quintle/quintle.
package word

import (
	"errors"
	"math/bits"
	"strings"
)

// AlphabetSize is the number of letters in the solver alphabet ('a'–'z').
const AlphabetSize = 26

// Sentinel errors for word operations.
var (
	// ErrBadLength indicates a word whose length differs from the list's fixed length.
	ErrBadLength = errors.New("word: word length does not match the configured length")
	// ErrBadLetter indicates a rune outside the a–z alphabet (after lowercasing).
	ErrBadLetter = errors.New("word: word contains a letter outside a-z")
	// ErrEmptyList indicates a list constructed from zero valid words.
	ErrEmptyList = errors.New("word: list must contain at least one word")
	// ErrBadComparator indicates an unknown Comparator value in a count filter.
	ErrBadComparator = errors.New("word: unknown comparator")
)

// LetterSet is a bitmask over the 26-letter alphabet: bit 0 = 'a', bit 25 = 'z'.
// The zero value is the empty set. All operations are O(1) and allocation-free.
type LetterSet uint32

// Add returns the set with letter c ('a'–'z') included.
func (s LetterSet) Add(c byte) LetterSet { return s | 1<<(c-'a') }

// Has reports whether letter c is in the set.
func (s LetterSet) Has(c byte) bool { return s&(1<<(c-'a')) != 0 }

// Union returns the union of s and t.
func (s LetterSet) Union(t LetterSet) LetterSet { return s | t }

// Intersect returns the intersection of s and t.
func (s LetterSet) Intersect(t LetterSet) LetterSet { return s & t }

// Without returns s with every letter of t removed.
func (s LetterSet) Without(t LetterSet) LetterSet { return s &^ t }

// Contains reports whether every letter of t is also in s (t ⊆ s).
func (s LetterSet) Contains(t LetterSet) bool { return s&t == t }

// Disjoint reports whether s and t share no letters.
func (s LetterSet) Disjoint(t LetterSet) bool { return s&t == 0 }

// Len returns the number of letters in the set (popcount).
func (s LetterSet) Len() int { return bits.OnesCount32(uint32(s)) }

// Letters returns the set's letters in alphabetical order.
func (s LetterSet) Letters() []byte {
	out := make([]byte, 0, s.Len())
	for c := byte('a'); c <= 'z'; c++ {
		if s.Has(c) {
			out = append(out, c)
		}
	}

	return out
}

// String renders the set as its letters in alphabetical order, e.g. "aer".
func (s LetterSet) String() string { return string(s.Letters()) }

// ParseLetterSet builds a LetterSet from a string of letters (any case,
// duplicates ignored). Returns ErrBadLetter on non-alphabetic runes.
func ParseLetterSet(letters string) (LetterSet, error) {
	var s LetterSet
	for _, r := range strings.ToLower(letters) {
		if r < 'a' || r > 'z' {
			return 0, ErrBadLetter
		}
		s = s.Add(byte(r))
	}

	return s, nil
}

// MustLetterSet is ParseLetterSet for compile-time-known inputs; it panics on
// invalid letters and exists for tests and examples.
func MustLetterSet(letters string) LetterSet {
	s, err := ParseLetterSet(letters)
	if err != nil {
		panic(err)
	}

	return s
}

// Counts is a per-letter occurrence multiset: Counts[c-'a'] is the number of
// times letter c occurs. The zero value is the empty multiset.
type Counts [AlphabetSize]uint8

// Get returns the count for letter c.
func (m Counts) Get(c byte) int { return int(m[c-'a']) }

// Add returns the multiset with the count for letter c incremented.
func (m Counts) Add(c byte) Counts {
	m[c-'a']++

	return m
}

// Set returns the multiset with the count for letter c set to n.
func (m Counts) Set(c byte, n int) Counts {
	m[c-'a'] = uint8(n)

	return m
}

// Total returns the sum of all letter counts.
func (m Counts) Total() int {
	t := 0
	for _, n := range m {
		t += int(n)
	}

	return t
}

// Letters returns the set of letters with a non-zero count.
func (m Counts) Letters() LetterSet {
	var s LetterSet
	for i, n := range m {
		if n > 0 {
			s = s.Add(byte('a' + i))
		}
	}

	return s
}

// Covers reports whether every letter count in need is satisfied by m
// (m[c] ≥ need[c] for all c).
func (m Counts) Covers(need Counts) bool {
	for i := range need {
		if m[i] < need[i] {
			return false
		}
	}

	return true
}
