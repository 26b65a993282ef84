package feedback

import (
	"strings"

	"github.com/mitchellh/colorstring"

	"github.com/quintle/quintle/word"
)

// Score computes the outcome pattern of guess against answer.
//
// Algorithm (two passes, duplicate-letter-correct):
//  1. Mark every exact-position match as Hit and build a remaining-count
//     table from the answer's unmatched letters.
//  2. For every non-Hit position, consume one remaining count for the
//     guessed letter if available (Present), otherwise mark Miss.
//
// The result therefore carries exactly min(count in guess, count in answer)
// Hit/Present marks for each letter; surplus occurrences are Miss.
//
// Both inputs must share one length (they normally come from the same
// word.List); ErrLengthMismatch is returned otherwise. No other failure mode
// exists — scoring is a pure, total function.
//
// Complexity: O(L) time, O(1) memory (one 26-entry table).
func Score(guess, answer word.Word) (Pattern, error) {
	if len(guess) != len(answer) {
		return nil, ErrLengthMismatch
	}

	p := make(Pattern, len(guess))
	var remaining word.Counts

	// Pass 1: exact matches; everything else feeds the remaining table.
	for i := 0; i < len(guess); i++ {
		if guess[i] == answer[i] {
			p[i] = Hit
		} else {
			remaining = remaining.Add(answer[i])
		}
	}

	// Pass 2: consume remaining counts for out-of-place letters.
	for i := 0; i < len(guess); i++ {
		if p[i] == Hit {
			continue
		}
		if remaining.Get(guess[i]) > 0 {
			p[i] = Present
			remaining = remaining.Set(guess[i], remaining.Get(guess[i])-1)
		} else {
			p[i] = Miss
		}
	}

	return p, nil
}

// AllPatterns enumerates every possible pattern of the given length in
// ascending Code order (3^length patterns). The slice is freshly allocated;
// patterns share no backing storage.
//
// Complexity: O(L·3^L) time and memory — callers keep L small.
func AllPatterns(length int) []Pattern {
	total := 1
	for i := 0; i < length; i++ {
		total *= 3
	}
	out := make([]Pattern, total)
	for code := 0; code < total; code++ {
		p := make(Pattern, length)
		n := code
		for i := length - 1; i >= 0; i-- {
			p[i] = Cell(n % 3)
			n /= 3
		}
		out[code] = p
	}

	return out
}

// Colorize renders w with one colored letter per pattern cell: green for
// Hit, yellow for Present, dark gray for Miss. Output uses ANSI escapes via
// colorstring and is meant for terminal display only.
//
// Lengths of p and w must match; the word is returned uncolored otherwise.
func (p Pattern) Colorize(w word.Word) string {
	if len(p) != len(w) {
		return string(w)
	}
	var b strings.Builder
	for i, c := range p {
		var tag string
		switch c {
		case Hit:
			tag = "green"
		case Present:
			tag = "yellow"
		default:
			tag = "dark_gray"
		}
		b.WriteString(colorstring.Color("[" + tag + "]" + strings.ToUpper(string(w[i])) + "[reset]"))
	}

	return b.String()
}
