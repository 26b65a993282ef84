package wordio

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/quintle/quintle/evaluate"
	"github.com/quintle/quintle/word"
)

// GuessScore is one ranked guess inside an analysis entry.
type GuessScore struct {
	Word     string  `json:"word"`
	Expected float64 `json:"expected"`
	Median   float64 `json:"median"`
	Worst    int     `json:"worst"`
}

// AnalysisEntry holds the full-candidate-set evaluation for one pattern:
// every surviving candidate scored as a follow-up guess, best expected
// value first.
type AnalysisEntry struct {
	Candidates int          `json:"candidates"`
	Ranking    []GuessScore `json:"ranking"`
}

// AnalysisSet maps a pattern string to its analysis.
type AnalysisSet map[string]AnalysisEntry

// AnalysisOptions configures RunAnalysis.
//
//   - MaxCandidates — patterns with more survivors than this are skipped;
//     per-pattern cost is roughly quadratic in the survivor count.
//   - Workers — parallel evaluations per pattern (see evaluate.Options).
//   - Progress — optional callback after each finished pattern.
type AnalysisOptions struct {
	MaxCandidates int
	Workers       int
	Progress      func(pattern string, done, total int)
}

// DefaultAnalysisOptions returns AnalysisOptions with a 200-candidate cap
// and evaluate's default worker count.
func DefaultAnalysisOptions() AnalysisOptions {
	return AnalysisOptions{
		MaxCandidates: 200,
		Workers:       evaluate.DefaultOptions().Workers,
	}
}

// LoadAnalysis reads a checkpointed analysis set from path. The checkpoint is
// advisory: a missing or malformed file yields an empty set rather than an
// error, so batch drivers can always resume.
func LoadAnalysis(path string) (AnalysisSet, error) {
	results := make(AnalysisSet)
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return results, nil
	}
	if err != nil {
		return nil, fmt.Errorf("wordio: read analysis checkpoint: %w", err)
	}
	if err := json.Unmarshal(data, &results); err != nil {
		return make(AnalysisSet), nil
	}

	return results, nil
}

// RunAnalysis evaluates, for every outcome within the candidate cap, each
// surviving candidate as a follow-up guess against its fellow survivors,
// and writes the rankings to outPath.
//
// The run is resumable and incremental: existing results at outPath are
// loaded and their patterns skipped, and the file is rewritten after every
// finished pattern, so an interrupted batch loses at most one pattern's
// work. Patterns are processed smallest candidate set first. ctx cancels
// between patterns (and between evaluations inside one, via evaluate).
//
// Complexity: ~quadratic in each pattern's candidate count; use
// evaluate.EstimateRuntime for planning.
func RunAnalysis(ctx context.Context, outcomes OutcomeSet, outPath string, opts AnalysisOptions) (AnalysisSet, error) {
	results, err := LoadAnalysis(outPath)
	if err != nil {
		return nil, err
	}

	// Eligible patterns, smallest candidate set first.
	type job struct {
		pattern string
		count   int
	}
	var jobs []job
	for pattern, o := range outcomes {
		if o.Remaining.Count == 0 || o.Remaining.Count > opts.MaxCandidates {
			continue
		}
		if _, done := results[pattern]; done {
			continue
		}
		jobs = append(jobs, job{pattern: pattern, count: o.Remaining.Count})
	}
	sort.Slice(jobs, func(i, j int) bool {
		if jobs[i].count != jobs[j].count {
			return jobs[i].count < jobs[j].count
		}

		return jobs[i].pattern < jobs[j].pattern
	})

	evalOpts := evaluate.Options{Rank: evaluate.ByExpected, Workers: opts.Workers}
	for done, j := range jobs {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		o := outcomes[j.pattern]
		candidates := make([]word.Word, 0, o.Remaining.Count)
		for _, raw := range o.Remaining.Words {
			w, err := word.New(len(j.pattern), raw)
			if err != nil {
				return results, fmt.Errorf("wordio: analysis %q: %w", j.pattern, err)
			}
			candidates = append(candidates, w)
		}

		ranked, err := evaluate.EvaluateAll(ctx, candidates, candidates, evalOpts)
		if err != nil {
			return results, fmt.Errorf("wordio: analysis %q: %w", j.pattern, err)
		}

		entry := AnalysisEntry{
			Candidates: len(candidates),
			Ranking:    make([]GuessScore, len(ranked)),
		}
		for i, r := range ranked {
			entry.Ranking[i] = GuessScore{
				Word:     string(r.Guess),
				Expected: r.Stats.Mean,
				Median:   r.Stats.Median,
				Worst:    r.Stats.Max,
			}
		}
		results[j.pattern] = entry

		if err := saveAnalysis(outPath, results); err != nil {
			return results, err
		}
		if opts.Progress != nil {
			opts.Progress(j.pattern, done+1, len(jobs))
		}
	}

	return results, nil
}

func saveAnalysis(path string, results AnalysisSet) error {
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("wordio: encode analysis: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("wordio: write analysis: %w", err)
	}

	return nil
}
