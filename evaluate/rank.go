package evaluate

import (
	"time"

	"golang.org/x/exp/constraints"
)

// minBy returns the element of s minimizing key, first-encountered on ties.
// The second return is false for an empty slice.
func minBy[T any, K constraints.Ordered](s []T, key func(T) K) (T, bool) {
	var best T
	if len(s) == 0 {
		return best, false
	}
	best = s[0]
	bestKey := key(best)
	for _, v := range s[1:] {
		if k := key(v); k < bestKey {
			best, bestKey = v, k
		}
	}

	return best, true
}

// Best returns the single best result under the given criterion without
// sorting: lowest expected value for ByExpected, smallest worst case for
// ByWorstCase. Ties go to the earliest result. The second return is false
// for an empty input.
func Best(results []Result, by RankBy) (Result, bool) {
	return minBy(results, func(r Result) float64 { return metric(r, by) })
}

// Runtime model for one full-set evaluation (every candidate evaluated as a
// guess), fitted empirically: seconds ≈ a·n² + b·n + c for n candidates.
// The quadratic term dominates because every candidate pair participates in
// one bucket-membership computation.
const (
	runtimeQuad  = 0.00454187
	runtimeLin   = -0.04628192
	runtimeConst = 0.20732144
)

// EstimateRuntime predicts how long evaluating all n candidates against each
// other will take, for batch drivers deciding which candidate sets to skip
// or checkpoint around. Small n clamp to a floor of zero.
func EstimateRuntime(n int) time.Duration {
	fn := float64(n)
	seconds := runtimeQuad*fn*fn + runtimeLin*fn + runtimeConst
	if seconds < 0 {
		seconds = 0
	}

	return time.Duration(seconds * float64(time.Second))
}
