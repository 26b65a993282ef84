// Package evaluate defines result types, options, and sentinel errors for
// the evaluate subpackage of github.com/quintle/quintle.
package evaluate

import (
	"errors"
	"runtime"

	"github.com/quintle/quintle/feedback"
	"github.com/quintle/quintle/word"
)

// Sentinel errors for evaluate operations.
var (
	// ErrNoCandidates indicates evaluation against an empty candidate set.
	ErrNoCandidates = errors.New("evaluate: candidate set must be non-empty")
	// ErrLengthMismatch indicates a guess whose length differs from the candidates'.
	ErrLengthMismatch = errors.New("evaluate: guess and candidates must share one length")
	// ErrBadRank indicates an unknown RankBy value.
	ErrBadRank = errors.New("evaluate: unknown ranking criterion")
	// ErrBadWorkers indicates a non-positive worker count.
	ErrBadWorkers = errors.New("evaluate: Workers must be positive")
)

// Bucket is one realized feedback pattern and the candidates that produce it.
type Bucket struct {
	Pattern feedback.Pattern
	Size    int
}

// Outcome is one candidate's simulated result for a guess: the pattern the
// candidate would produce as the answer, and the number of candidates that
// would remain after observing that pattern (its bucket's size).
type Outcome struct {
	Answer    word.Word
	Pattern   feedback.Pattern
	Remaining int
}

// Stats summarizes the per-candidate remaining counts of one evaluation.
// All values are over one entry per candidate (bucket sizes weighted by
// their own size), matching "expected remaining candidates when the answer
// is drawn uniformly among the current candidates".
type Stats struct {
	Mean   float64 // expected remaining candidates
	Median float64
	P25    float64 // 25th percentile
	P75    float64 // 75th percentile
	Max    int     // worst case
	StdDev float64 // sample standard deviation
}

// Result is one guess evaluated against one candidate set. Buckets are
// sorted by ascending pattern code; Outcomes follow candidate order.
// Results are ephemeral — recompute after the candidate set changes.
type Result struct {
	Guess    word.Word
	Buckets  []Bucket
	Outcomes []Outcome
	Stats    Stats
}

// RankBy selects the scalar a ranking of Results is sorted on (ascending —
// fewer remaining candidates is better).
type RankBy int

const (
	// ByExpected ranks by mean remaining candidates ("best average" play).
	ByExpected RankBy = iota
	// ByWorstCase ranks by the largest bucket size (minimax play).
	ByWorstCase
)

// Options configures EvaluateAll.
//
//   - Rank    — ranking criterion for the returned order (default ByExpected).
//   - Workers — parallel evaluations in flight (default GOMAXPROCS).
//
// Correctness never depends on Workers; it only bounds throughput.
type Options struct {
	Rank    RankBy
	Workers int
}

// DefaultOptions returns Options with ByExpected ranking and one worker per
// available CPU.
func DefaultOptions() Options {
	return Options{Rank: ByExpected, Workers: runtime.GOMAXPROCS(0)}
}
