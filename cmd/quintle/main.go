// Command quintle is the command-line front end to the quintle solver:
// it keeps the constraint state in a JSON document between invocations and
// exposes filtering, evaluation, combo search and batch precomputation.
package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// Persistent flag values shared by all subcommands.
var (
	flagWords  string
	flagLength int
	flagState  string
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "quintle",
		Short: "Solver toolkit for five-letter word-guessing games",
		Long: "quintle narrows a candidate word list using scored guesses and " +
			"recommends the next guess (or letter probe) that minimizes the " +
			"remaining uncertainty.",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&flagWords, "words", "word_list.csv", "path to the word list (CSV, one word per row)")
	root.PersistentFlags().IntVar(&flagLength, "length", 5, "fixed word length")
	root.PersistentFlags().StringVar(&flagState, "state", "wordle.json", "path to the constraint-state document")

	root.AddCommand(
		newResetCmd(),
		newGuessCmd(),
		newCandidatesCmd(),
		newEvalCmd(),
		newRankCmd(),
		newComboCmd(),
		newOutcomesCmd(),
		newAnalyzeCmd(),
	)

	return root
}

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
