package evaluate

import (
	"context"
	"math"
	"sort"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat"

	"github.com/quintle/quintle/feedback"
	"github.com/quintle/quintle/word"
)

// Evaluate partitions candidates by the feedback pattern each would produce
// for guess and summarizes the distribution of remaining-candidate counts.
//
// For every candidate c: pattern = Score(guess, c); c's outcome value is the
// size of the bucket that pattern lands in — equivalently, the number of
// current candidates consistent with observing that exact pattern. Bucket
// sizes over distinct patterns always sum to len(candidates).
//
// Statistics are computed over one value per candidate (not per distinct
// bucket), so a large bucket weighs in once per member. This reflects the
// expected remaining count when the true answer is uniform over candidates.
//
// Returns ErrNoCandidates for an empty set and ErrLengthMismatch when guess
// and candidates disagree on length.
//
// Complexity: O(C·L) scoring + O(C·log C) statistics.
func Evaluate(guess word.Word, candidates []word.Word) (Result, error) {
	if len(candidates) == 0 {
		return Result{}, ErrNoCandidates
	}

	res := Result{
		Guess:    guess,
		Outcomes: make([]Outcome, len(candidates)),
	}
	sizes := make(map[int]int, len(candidates))
	patterns := make(map[int]feedback.Pattern, len(candidates))
	for i, c := range candidates {
		p, err := feedback.Score(guess, c)
		if err != nil {
			return Result{}, ErrLengthMismatch
		}
		code := p.Code()
		sizes[code]++
		patterns[code] = p
		res.Outcomes[i] = Outcome{Answer: c, Pattern: p}
	}
	for i := range res.Outcomes {
		res.Outcomes[i].Remaining = sizes[res.Outcomes[i].Pattern.Code()]
	}

	codes := make([]int, 0, len(sizes))
	for code := range sizes {
		codes = append(codes, code)
	}
	sort.Ints(codes)
	res.Buckets = make([]Bucket, len(codes))
	for i, code := range codes {
		res.Buckets[i] = Bucket{Pattern: patterns[code], Size: sizes[code]}
	}

	res.Stats = summarize(res.Outcomes)

	return res, nil
}

// summarize computes the per-candidate distribution statistics. Percentiles
// interpolate linearly between order statistics at index p·(n−1), so an
// even-sized set's median is the midpoint of the two middle values; std-dev
// is the sample (n-1) standard deviation.
func summarize(outcomes []Outcome) Stats {
	values := make([]float64, len(outcomes))
	maxRemaining := 0
	for i, o := range outcomes {
		values[i] = float64(o.Remaining)
		if o.Remaining > maxRemaining {
			maxRemaining = o.Remaining
		}
	}
	sort.Float64s(values)

	return Stats{
		Mean:   stat.Mean(values, nil),
		Median: quantile(values, 0.5),
		P25:    quantile(values, 0.25),
		P75:    quantile(values, 0.75),
		Max:    maxRemaining,
		StdDev: stat.StdDev(values, nil),
	}
}

// quantile returns the order-statistic quantile of sorted non-empty values:
// the value at fractional index p·(n−1), linearly interpolated between its
// two neighbors.
func quantile(sorted []float64, p float64) float64 {
	idx := p * float64(len(sorted)-1)
	lo := int(math.Floor(idx))
	hi := int(math.Ceil(idx))
	if lo == hi {
		return sorted[lo]
	}
	frac := idx - float64(lo)

	return sorted[lo]*(1-frac) + sorted[hi]*frac
}

// metric extracts the ranking scalar for one result.
func metric(r Result, by RankBy) float64 {
	if by == ByWorstCase {
		return float64(r.Stats.Max)
	}

	return r.Stats.Mean
}

// EvaluateAll evaluates every guess against the same candidate set and
// returns the results sorted ascending by the Options.Rank criterion (ties
// keep guess order). Evaluations run independently across an errgroup of
// Options.Workers goroutines; ctx cancels a long batch between evaluations.
//
// Complexity: O(G·C·L) total work across Workers goroutines.
func EvaluateAll(ctx context.Context, guesses, candidates []word.Word, opts Options) ([]Result, error) {
	if opts.Workers <= 0 {
		return nil, ErrBadWorkers
	}
	if opts.Rank != ByExpected && opts.Rank != ByWorstCase {
		return nil, ErrBadRank
	}

	results := make([]Result, len(guesses))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Workers)
	for i, guess := range guesses {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := Evaluate(guess, candidates)
			if err != nil {
				return err
			}
			results[i] = res

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.SliceStable(results, func(i, j int) bool {
		return metric(results[i], opts.Rank) < metric(results[j], opts.Rank)
	})

	return results, nil
}
