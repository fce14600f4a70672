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
	similarText      string
	similarLimit     int
	similarThreshold float64
)

var similarCmd = &cobra.Command{
	Use:   "similar [batch-id concept-number]",
	Short: "Find concepts similar to a reference",
	Long: `Find concepts similar to a reference concept or free text.

With a batch id and concept number, the named concept is the reference
and is excluded from the results. With --text, the given text is the
reference.

Examples:
  ideafactory similar 20240115-001 3
  ideafactory similar --text "a heist aboard a generation ship"
  ideafactory similar 20240115-001 3 --threshold 0.5 --limit 5`,
	Args: cobra.RangeArgs(0, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := validation.Threshold(similarThreshold); err != nil {
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

		var reference string
		switch {
		case similarText != "":
			reference = similarText
		case len(args) == 2:
			if err := validation.BatchID(args[0]); err != nil {
				return err
			}
			b, err := lib.Batch(args[0])
			if err != nil {
				return err
			}
			rec := b.Concept(args[1])
			if rec == nil {
				return fmt.Errorf("batch %s has no concept %s", b.ID, args[1])
			}
			reference = rec.Title + " " + rec.Body

			// Drop the reference concept itself
			kept := items[:0]
			for _, it := range items {
				if it.Group == b.ID && it.Number == rec.Number {
					continue
				}
				kept = append(kept, it)
			}
			items = kept
		default:
			return fmt.Errorf("give a batch id and concept number, or --text")
		}

		hits := match.SimilarTo(items, reference, similarThreshold, similarLimit)
		if api.IsStructuredOutput() {
			return api.Output(hits)
		}
		if len(hits) == 0 {
			fmt.Println("No similar concepts found.")
			return nil
		}
		for _, h := range hits {
			fmt.Printf("%.2f %s %s\n", h.Score, itemRef(h.Item), h.Item.Title)
		}
		return nil
	},
}

func init() {
	similarCmd.Flags().StringVar(&similarText, "text", "", "free text to compare against instead of a concept")
	similarCmd.Flags().IntVar(&similarLimit, "limit", 10, "maximum number of results")
	similarCmd.Flags().Float64Var(&similarThreshold, "threshold", match.DefaultFuzzyThreshold, "minimum similarity score, inclusive")

	rootCmd.AddCommand(similarCmd)
}
