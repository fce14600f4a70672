package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aiwynns/ideafactory/internal/api"
	"github.com/aiwynns/ideafactory/internal/stats"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show workspace statistics",
	Long: `Show workspace statistics: batch and concept totals, status
breakdown, top genres and tropes, and recent batches.

Examples:
  ideafactory stats
  ideafactory stats -o json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		lib, _, err := getLibrary()
		if err != nil {
			return err
		}
		batches, err := lib.Batches()
		if err != nil {
			return err
		}
		stories, err := lib.Stories()
		if err != nil {
			return err
		}

		summary := stats.Generate(batches, stories)
		if api.IsStructuredOutput() {
			return api.Output(summary)
		}

		fmt.Printf("Batches:  %d (%d concepts)\n", summary.TotalBatches, summary.TotalConcepts)
		fmt.Printf("Stories:  %d (%d developing)\n", summary.TotalStories, summary.StoriesInDev)

		if len(summary.BatchesByStatus) > 0 {
			fmt.Println("\nBatches by status:")
			for _, c := range summary.BatchesByStatus {
				fmt.Printf("  %-12s %d\n", c.Name, c.Count)
			}
		}
		if len(summary.TopGenres) > 0 {
			fmt.Println("\nTop genres:")
			for _, c := range summary.TopGenres {
				fmt.Printf("  %-12s %d\n", c.Name, c.Count)
			}
		}
		if len(summary.TopTropes) > 0 {
			fmt.Println("\nTop tropes:")
			for _, c := range summary.TopTropes {
				fmt.Printf("  %-12s %d\n", c.Name, c.Count)
			}
		}
		if len(summary.RecentBatches) > 0 {
			fmt.Println("\nRecent batches:")
			for _, b := range summary.RecentBatches {
				fmt.Printf("  %s  %s  %s\n", b.ID, b.DateGenerated, b.Genre.String())
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
