package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aiwynns/ideafactory/internal/api"
	"github.com/aiwynns/ideafactory/internal/library"
	"github.com/aiwynns/ideafactory/internal/match"
	"github.com/aiwynns/ideafactory/internal/validation"
)

var (
	duplicatesThreshold float64
	duplicatesParallel  bool
	duplicatesWorkers   int
	duplicatesTitles    bool
)

var duplicatesCmd = &cobra.Command{
	Use:   "duplicates",
	Short: "Find near-duplicate concepts across batches",
	Long: `Find near-duplicate concepts across batches.

Every concept is compared with every concept from a different batch;
pairs scoring at or above --threshold are reported, highest first.
Concepts within the same batch are never compared.

With --parallel the comparisons run on a worker pool, which is useful for
large workspaces. With --titles, exact title collisions are reported
instead of fuzzy pairs; unlike the fuzzy scan, a title repeated within
one batch counts too.

Examples:
  ideafactory duplicates
  ideafactory duplicates --threshold 0.7
  ideafactory duplicates --parallel --workers 8
  ideafactory duplicates --titles`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := validation.Threshold(duplicatesThreshold); err != nil {
			return err
		}

		lib, _, err := getLibrary()
		if err != nil {
			return err
		}
		batches, err := lib.Batches()
		if err != nil {
			return err
		}
		items := library.ConceptItems(batches)

		if duplicatesTitles {
			collisions := match.FindTitleCollisions(items)
			if api.IsStructuredOutput() {
				return api.Output(collisions)
			}
			if len(collisions) == 0 {
				fmt.Println("No title collisions found.")
				return nil
			}
			for _, c := range collisions {
				fmt.Printf("%q appears in %v\n", c.Title, c.Groups)
			}
			return nil
		}

		var pairs []match.Pair
		if duplicatesParallel {
			pairs, err = match.FindDuplicatesParallel(cmd.Context(), items, duplicatesThreshold, duplicatesWorkers)
			if err != nil {
				return err
			}
		} else {
			pairs = match.FindDuplicates(items, duplicatesThreshold)
		}

		if api.IsStructuredOutput() {
			return api.Output(pairs)
		}
		if len(pairs) == 0 {
			fmt.Println("No duplicates found.")
			return nil
		}
		for _, p := range pairs {
			fmt.Printf("%.2f %s %q <-> %s %q\n",
				p.Score, itemRef(p.A), p.A.Title, itemRef(p.B), p.B.Title)
		}
		return nil
	},
}

func init() {
	duplicatesCmd.Flags().Float64Var(&duplicatesThreshold, "threshold", match.DefaultDuplicateThreshold, "minimum duplicate score, inclusive")
	duplicatesCmd.Flags().BoolVar(&duplicatesParallel, "parallel", false, "compare pairs on a worker pool")
	duplicatesCmd.Flags().IntVar(&duplicatesWorkers, "workers", 0, "worker count for --parallel (default: CPU count)")
	duplicatesCmd.Flags().BoolVar(&duplicatesTitles, "titles", false, "report exact title collisions instead of fuzzy pairs")

	rootCmd.AddCommand(duplicatesCmd)
}
