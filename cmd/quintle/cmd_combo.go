package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quintle/quintle/candidate"
	"github.com/quintle/quintle/combo"
)

func newComboCmd() *cobra.Command {
	var size int
	cmd := &cobra.Command{
		Use:   "combo",
		Short: "Find the letter subset that splits the candidates most evenly",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			list, cs, err := loadState()
			if err != nil {
				return err
			}
			idx := candidate.NewListIndex(list)
			candidates, err := idx.Filter(cs)
			if err != nil {
				return err
			}

			letters := candidate.Unresolved(candidates, cs)
			best, err := combo.Search(candidates, letters, size)
			if err != nil {
				return err
			}

			fmt.Printf("probe letters %q: worst case %d of %d candidates\n",
				best.Letters.String(), best.WorstCase, len(candidates))
			for _, a := range best.Assignments {
				if a.Count == 0 {
					continue
				}
				fmt.Printf("  in=%-5q out=%-5q → %d\n", a.Require.String(), a.Forbid.String(), a.Count)
			}

			return nil
		},
	}
	cmd.Flags().IntVarP(&size, "size", "k", 3, "probe subset size (1..5)")

	return cmd
}
