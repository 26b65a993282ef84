package word

import "strings"

// Word is a canonical (lowercase a–z) fixed-length word. Words are created by
// New or List construction and immutable afterwards.
type Word string

// New canonicalizes raw to lowercase and validates it against the given
// length. Returns ErrBadLength or ErrBadLetter on invalid input.
func New(length int, raw string) (Word, error) {
	w := strings.ToLower(raw)
	if len(w) != length {
		return "", ErrBadLength
	}
	for i := 0; i < len(w); i++ {
		if w[i] < 'a' || w[i] > 'z' {
			return "", ErrBadLetter
		}
	}

	return Word(w), nil
}

// Letters returns the set of distinct letters in w.
func (w Word) Letters() LetterSet {
	var s LetterSet
	for i := 0; i < len(w); i++ {
		s = s.Add(w[i])
	}

	return s
}

// Counts returns the per-letter occurrence multiset of w.
func (w Word) Counts() Counts {
	var m Counts
	for i := 0; i < len(w); i++ {
		m[w[i]-'a']++
	}

	return m
}

// List is an ordered collection of unique same-length Words. It is built once
// and read-only afterwards; insertion order is preserved for stable display.
type List struct {
	length int
	words  []Word
	index  map[Word]int // word → ordinal, for O(1) membership
}

// NewList canonicalizes, validates and de-duplicates raw words into a List of
// the given fixed word length. The first occurrence of a duplicate wins.
// Returns ErrBadLength/ErrBadLetter on the first invalid word and
// ErrEmptyList when no words remain.
//
// Complexity: O(W·L) time, O(W) memory.
func NewList(length int, raw []string) (*List, error) {
	l := &List{
		length: length,
		words:  make([]Word, 0, len(raw)),
		index:  make(map[Word]int, len(raw)),
	}
	for _, r := range raw {
		w, err := New(length, r)
		if err != nil {
			return nil, err
		}
		if _, dup := l.index[w]; dup {
			continue
		}
		l.index[w] = len(l.words)
		l.words = append(l.words, w)
	}
	if len(l.words) == 0 {
		return nil, ErrEmptyList
	}

	return l, nil
}

// Length returns the fixed word length of the list.
func (l *List) Length() int { return l.length }

// Len returns the number of words in the list.
func (l *List) Len() int { return len(l.words) }

// At returns the word at ordinal i (insertion order).
func (l *List) At(i int) Word { return l.words[i] }

// Words returns the list's words in insertion order. The returned slice is
// shared; callers must not modify it.
func (l *List) Words() []Word { return l.words }

// Ordinal returns the position of w in the list, or -1 when absent.
func (l *List) Ordinal(w Word) int {
	if i, ok := l.index[w]; ok {
		return i
	}

	return -1
}

// Contains reports whether w is in the list.
func (l *List) Contains(w Word) bool { return l.Ordinal(w) >= 0 }

// UniqueLetters returns the set of all letters occurring anywhere in words.
func UniqueLetters(words []Word) LetterSet {
	var s LetterSet
	for _, w := range words {
		s = s.Union(w.Letters())
	}

	return s
}
