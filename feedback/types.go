// Package feedback defines the pattern vocabulary and sentinel errors for
// the feedback subpackage of github.com/quintle/quintle.
package feedback

import (
	"errors"
	"strings"
)

// Sentinel errors for feedback operations.
var (
	// ErrLengthMismatch indicates guess and answer (or pattern) lengths differ.
	ErrLengthMismatch = errors.New("feedback: guess, answer and pattern must share one length")
	// ErrBadSymbol indicates a pattern string symbol outside {G, A, X}.
	ErrBadSymbol = errors.New("feedback: pattern symbol must be one of G, A, X")
)

// Cell is one position's outcome. The numeric values double as base-3 digits
// in Pattern.Code, ordered so that a larger digit is a stronger signal.
type Cell uint8

const (
	// Miss means the letter is not usable at this position (gray).
	Miss Cell = 0
	// Present means the letter occurs elsewhere in the answer (amber).
	Present Cell = 1
	// Hit means the letter is correct at this exact position (green).
	Hit Cell = 2
)

// Symbol returns the cell's single-letter project symbol: X, A or G.
func (c Cell) Symbol() byte {
	switch c {
	case Hit:
		return 'G'
	case Present:
		return 'A'
	default:
		return 'X'
	}
}

// Pattern is a fixed-length sequence of Cells, one per letter position.
// Patterns are produced by Score or ParsePattern and never hand-assembled.
type Pattern []Cell

// String renders the pattern in project symbols, e.g. "GGXGG".
func (p Pattern) String() string {
	var b strings.Builder
	b.Grow(len(p))
	for _, c := range p {
		b.WriteByte(c.Symbol())
	}

	return b.String()
}

// Code packs the pattern into a base-3 integer (leftmost cell is the most
// significant digit; Miss=0, Present=1, Hit=2). Codes are unique per length,
// dense in [0, 3^L), and cheap map keys.
func (p Pattern) Code() int {
	code := 0
	for _, c := range p {
		code = code*3 + int(c)
	}

	return code
}

// AllHit reports whether every position is a Hit, i.e. the guess is the answer.
func (p Pattern) AllHit() bool {
	for _, c := range p {
		if c != Hit {
			return false
		}
	}

	return true
}

// Equal reports whether p and q are the same pattern.
func (p Pattern) Equal(q Pattern) bool {
	if len(p) != len(q) {
		return false
	}
	for i := range p {
		if p[i] != q[i] {
			return false
		}
	}

	return true
}

// ParsePattern decodes a pattern string in project symbols (case-insensitive,
// e.g. "xgxax") of exactly the given length. Returns ErrLengthMismatch or
// ErrBadSymbol on invalid input.
func ParsePattern(s string, length int) (Pattern, error) {
	if len(s) != length {
		return nil, ErrLengthMismatch
	}
	p := make(Pattern, length)
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case 'G', 'g':
			p[i] = Hit
		case 'A', 'a':
			p[i] = Present
		case 'X', 'x':
			p[i] = Miss
		default:
			return nil, ErrBadSymbol
		}
	}

	return p, nil
}
