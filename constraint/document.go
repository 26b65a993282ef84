package constraint

import (
	"fmt"
	"strings"

	"github.com/quintle/quintle/word"
)

// Document is the serialized form of a Set used by the surrounding tooling:
// known letters as a placeholder string, present/absent letters as plain
// strings, and per-position exclusions keyed by ordinal position labels
// ("1st char", "2nd char", …). Field names match the on-disk JSON layout.
type Document struct {
	Exclusions       map[string]string `json:"exclusions"`
	KnownLetters     string            `json:"known_letters"`
	UnlocatedLetters string            `json:"unlocated_letters_in_word"`
	LettersNotInWord string            `json:"letters_not_in_word"`
}

// PositionKey returns the ordinal exclusion key for zero-based position i:
// "1st char", "2nd char", "3rd char", then "4th char" onward.
func PositionKey(i int) string {
	suffix := "th"
	switch i {
	case 0:
		suffix = "st"
	case 1:
		suffix = "nd"
	case 2:
		suffix = "rd"
	}

	return fmt.Sprintf("%d%s char", i+1, suffix)
}

// DefaultDocument returns the reset-state document for the given word length:
// all-placeholder known letters and empty letter strings.
func DefaultDocument(length int) Document {
	d := Document{
		Exclusions:   make(map[string]string, length),
		KnownLetters: strings.Repeat(string(Placeholder), length),
	}
	for i := 0; i < length; i++ {
		d.Exclusions[PositionKey(i)] = ""
	}

	return d
}

// Document serializes the Set. Present letters are repeated per their
// minimum count (a floor of two e's renders as "ee"); all letter strings are
// alphabetical for stable output.
func (s Set) Document() Document {
	d := DefaultDocument(s.length)
	d.KnownLetters = s.KnownString()
	var unlocated strings.Builder
	for _, c := range s.present.Letters().Letters() {
		unlocated.WriteString(strings.Repeat(string(c), s.present.Get(c)))
	}
	d.UnlocatedLetters = unlocated.String()
	d.LettersNotInWord = s.absent.String()
	for i := 0; i < s.length; i++ {
		d.Exclusions[PositionKey(i)] = s.excluded[i].String()
	}

	return d
}

// ParseDocument decodes a Document into a Set for the given word length.
// Input is case-insensitive; any non-letter in the known string counts as a
// placeholder (mirroring the tooling's forgiving regex). Exclusion keys not
// matching a position label are ignored. Returns ErrBadDocument when the
// known string has the wrong length or a letter string holds a non-letter.
func ParseDocument(d Document, length int) (Set, error) {
	s := NewSet(length)

	known := strings.ToLower(d.KnownLetters)
	if len(known) != length {
		return Set{}, ErrBadDocument
	}
	for i := 0; i < length; i++ {
		if known[i] >= 'a' && known[i] <= 'z' {
			s.known[i] = known[i]
		}
	}

	for _, r := range strings.ToLower(d.UnlocatedLetters) {
		if r < 'a' || r > 'z' {
			return Set{}, ErrBadDocument
		}
		s.present = s.present.Add(byte(r))
	}

	absent, err := word.ParseLetterSet(d.LettersNotInWord)
	if err != nil {
		return Set{}, ErrBadDocument
	}
	s.absent = absent

	for i := 0; i < length; i++ {
		raw, ok := d.Exclusions[PositionKey(i)]
		if !ok {
			continue
		}
		ls, lsErr := word.ParseLetterSet(raw)
		if lsErr != nil {
			return Set{}, ErrBadDocument
		}
		s.excluded[i] = ls
	}

	// The document may predate the disjointness invariant; enforce it here.
	s.absent = s.absent.Without(s.KnownSet().Union(s.present.Letters()))

	return s, nil
}
