// Package evaluate scores candidate guesses by simulating every feedback
// outcome against the current candidate set and summarizing how many
// candidates would remain.
//
// 🚀 What is evaluate?
//
//	The expected-value engine behind "what should I guess next?":
//	  • Partition the candidate set by the feedback pattern each candidate
//	    would produce for a guess
//	  • Each candidate's outcome value is the size of its own bucket — the
//	    number of candidates remaining if that exact pattern were observed
//	  • Summarize the per-candidate values: mean (expected remaining under a
//	    uniform prior), median, 25th/75th percentiles, worst case, std-dev
//
// ✨ Key features:
//   - Per-candidate weighting reproduced exactly: large buckets contribute
//     once per member, which is what "expected remaining count for a random
//     answer" means — statistics are never taken over distinct buckets
//   - Rank a whole guess pool ascending by expected value or by worst case
//   - Embarrassingly parallel across guesses: EvaluateAll fans out over an
//     errgroup bounded by Workers and honors context cancellation
//   - Per-call cost grows roughly quadratically with candidate count;
//     EstimateRuntime exposes the fitted cost model for batch planning
//
// ⚙️ Usage:
//
//	res, err := evaluate.Evaluate("crane", candidates)
//	fmt.Println(res.Stats.Mean, res.Stats.Max)
//
//	opts := evaluate.DefaultOptions()
//	opts.Rank = evaluate.ByWorstCase
//	ranked, err := evaluate.EvaluateAll(ctx, candidates, candidates, opts)
//
// Complexity: one Evaluate is O(C·L) scoring plus O(C·log C) statistics;
// EvaluateAll over G guesses is O(G·C·L) work split across Workers.
package evaluate
