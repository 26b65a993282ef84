package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/quintle/quintle/candidate"
	"github.com/quintle/quintle/constraint"
	"github.com/quintle/quintle/word"
	"github.com/quintle/quintle/wordio"
)

// loadState reads the word list and the current constraint document.
func loadState() (*word.List, constraint.Set, error) {
	list, err := wordio.LoadWordList(flagWords, flagLength)
	if err != nil {
		return nil, constraint.Set{}, err
	}
	doc, err := wordio.LoadDocument(flagState)
	if err != nil {
		return nil, constraint.Set{}, err
	}
	cs, err := constraint.ParseDocument(doc, flagLength)
	if err != nil {
		return nil, constraint.Set{}, err
	}

	return list, cs, nil
}

func newResetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Reset the constraint-state document to its empty state",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			if err := wordio.ResetDocument(flagState, flagLength); err != nil {
				return err
			}
			slog.Info("state reset", "path", flagState)

			return nil
		},
	}
}

func newGuessCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "guess WORD PATTERN",
		Short: "Fold a scored guess (e.g. crane GGXGG) into the saved state",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			list, cs, err := loadState()
			if err != nil {
				return err
			}
			w, err := word.New(flagLength, args[0])
			if err != nil {
				return err
			}
			p, err := parsePatternArg(args[1])
			if err != nil {
				return err
			}
			next, err := cs.Apply(w, p)
			if err != nil {
				return err
			}
			if err := wordio.SaveDocument(flagState, next.Document()); err != nil {
				return err
			}

			idx := candidate.NewListIndex(list)
			n, err := idx.Count(next)
			if err != nil {
				return err
			}
			fmt.Println(p.Colorize(w))
			slog.Info("guess applied", "guess", string(w), "pattern", p.String(), "candidates", n)

			return nil
		},
	}
}

func newCandidatesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "candidates",
		Short: "List the words still consistent with the saved state",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			list, cs, err := loadState()
			if err != nil {
				return err
			}
			idx := candidate.NewListIndex(list)
			left, err := idx.Filter(cs)
			if err != nil {
				return err
			}
			if len(left) == 0 {
				slog.Warn("no candidates remain: constraints are contradictory or the answer was eliminated")

				return nil
			}
			for _, w := range left {
				fmt.Println(w)
			}
			fmt.Printf("%d candidates\n", len(left))

			return nil
		},
	}
}
