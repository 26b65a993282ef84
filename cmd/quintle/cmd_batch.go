package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/quintle/quintle/evaluate"
	"github.com/quintle/quintle/word"
	"github.com/quintle/quintle/wordio"
)

func newOutcomesCmd() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "outcomes GUESS",
		Short: "Precompute every feedback outcome for an opening guess",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			list, err := wordio.LoadWordList(flagWords, flagLength)
			if err != nil {
				return err
			}
			w, err := word.New(flagLength, args[0])
			if err != nil {
				return err
			}
			outcomes, err := wordio.BuildOutcomes(w, list)
			if err != nil {
				return err
			}
			if err := wordio.SaveOutcomes(out, outcomes); err != nil {
				return err
			}
			slog.Info("outcomes written", "guess", string(w), "patterns", len(outcomes), "path", out)

			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "outcomes.json", "output file")

	return cmd
}

func newAnalyzeCmd() *cobra.Command {
	var (
		in  string
		out string
		max int
	)
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Rank follow-up guesses for every precomputed outcome",
		Long: "analyze loads an outcomes file, evaluates each surviving candidate as a " +
			"follow-up guess within every outcome, and checkpoints the rankings to " +
			"the output file after each pattern. Re-running resumes where it left off.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			outcomes, err := wordio.LoadOutcomes(in)
			if err != nil {
				return err
			}

			// Cost preview: per-pattern evaluation grows quadratically.
			// Patterns already in the checkpoint are skipped by the run, so
			// they don't count toward the total either.
			done, err := wordio.LoadAnalysis(out)
			if err != nil {
				return err
			}
			var estimate time.Duration
			eligible := 0
			for pattern, o := range outcomes {
				if o.Remaining.Count == 0 || o.Remaining.Count > max {
					continue
				}
				if _, ok := done[pattern]; ok {
					continue
				}
				estimate += evaluate.EstimateRuntime(o.Remaining.Count)
				eligible++
			}
			slog.Info("starting analysis",
				"patterns", eligible, "cap", max, "estimated", estimate.Round(time.Second))

			bar := progressbar.Default(int64(eligible))
			opts := wordio.DefaultAnalysisOptions()
			opts.MaxCandidates = max
			opts.Progress = func(pattern string, done, total int) {
				bar.Describe(fmt.Sprintf("last: %s", pattern))
				_ = bar.Add(1)
			}

			results, err := wordio.RunAnalysis(cmd.Context(), outcomes, out, opts)
			if err != nil {
				return err
			}
			slog.Info("analysis complete", "patterns", len(results), "path", out)

			return nil
		},
	}
	cmd.Flags().StringVarP(&in, "in", "i", "outcomes.json", "outcomes file to analyze")
	cmd.Flags().StringVarP(&out, "out", "o", "analysis.json", "output (and checkpoint) file")
	cmd.Flags().IntVar(&max, "max", 200, "skip outcomes with more candidates than this")

	return cmd
}
