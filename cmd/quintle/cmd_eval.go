package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quintle/quintle/candidate"
	"github.com/quintle/quintle/evaluate"
	"github.com/quintle/quintle/word"
)

func newEvalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "eval GUESS",
		Short: "Evaluate one guess against the current candidates",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			list, cs, err := loadState()
			if err != nil {
				return err
			}
			w, err := word.New(flagLength, args[0])
			if err != nil {
				return err
			}
			idx := candidate.NewListIndex(list)
			candidates, err := idx.Filter(cs)
			if err != nil {
				return err
			}
			res, err := evaluate.Evaluate(w, candidates)
			if err != nil {
				return err
			}

			fmt.Printf("guess %s over %d candidates\n", w, len(candidates))
			fmt.Printf("expected %.2f  median %.1f  p25 %.1f  p75 %.1f  worst %d  stddev %.2f\n",
				res.Stats.Mean, res.Stats.Median, res.Stats.P25, res.Stats.P75, res.Stats.Max, res.Stats.StdDev)
			for _, b := range res.Buckets {
				fmt.Printf("%s  %d\n", b.Pattern.Colorize(w), b.Size)
			}

			return nil
		},
	}
}

func newRankCmd() *cobra.Command {
	var (
		worst bool
		top   int
	)
	cmd := &cobra.Command{
		Use:   "rank",
		Short: "Rank every current candidate as the next guess",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			list, cs, err := loadState()
			if err != nil {
				return err
			}
			idx := candidate.NewListIndex(list)
			candidates, err := idx.Filter(cs)
			if err != nil {
				return err
			}

			opts := evaluate.DefaultOptions()
			if worst {
				opts.Rank = evaluate.ByWorstCase
			}
			ranked, err := evaluate.EvaluateAll(cmd.Context(), candidates, candidates, opts)
			if err != nil {
				return err
			}
			ranked = ranked[:clampTop(len(ranked), top)]
			for i, r := range ranked {
				fmt.Printf("%2d. %s  expected %.2f  worst %d\n", i+1, r.Guess, r.Stats.Mean, r.Stats.Max)
			}

			return nil
		},
	}
	cmd.Flags().BoolVar(&worst, "worst", false, "rank by worst case (minimax) instead of expected value")
	cmd.Flags().IntVar(&top, "top", 20, "number of guesses to display")

	return cmd
}
