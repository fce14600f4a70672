package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/aiwynns/ideafactory/internal/api"
	"github.com/aiwynns/ideafactory/internal/home"
	"github.com/aiwynns/ideafactory/internal/library"
)

var (
	listBatchesLocation string
	listBatchesStatus   string
	listBatchesGenre    string
	listBatchesTrope    string
	listBatchesSort     string
)

var listBatchesCmd = &cobra.Command{
	Use:   "list-batches",
	Short: "List concept batches",
	Long: `List concept batches in the workspace.

Batches can be narrowed by location, status, genre, and trope, and sorted
by date, count, or genre.

Examples:
  ideafactory list-batches
  ideafactory list-batches --location favorites
  ideafactory list-batches --genre fantasy --sort count
  ideafactory list-batches -o json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if listBatchesLocation != "" && !home.ValidLocation(listBatchesLocation) {
			return fmt.Errorf("unknown location %q (valid: %v)", listBatchesLocation, home.Locations)
		}

		lib, _, err := getLibrary()
		if err != nil {
			return err
		}
		batches, err := lib.Batches()
		if err != nil {
			return err
		}

		if listBatchesLocation != "" {
			var kept []library.Batch
			for _, b := range batches {
				if b.Location == listBatchesLocation {
					kept = append(kept, b)
				}
			}
			batches = kept
		}
		batches = library.FilterBatches(batches, listBatchesStatus, listBatchesGenre, listBatchesTrope)
		library.SortBatches(batches, listBatchesSort)

		if api.IsStructuredOutput() {
			return api.Output(batches)
		}

		if len(batches) == 0 {
			fmt.Println("No batches found.")
			return nil
		}
		rows := make([][]string, 0, len(batches))
		for _, b := range batches {
			rows = append(rows, []string{
				b.ID, b.Location, b.DateGenerated, b.Genre.String(),
				strconv.Itoa(b.Count), b.Status,
			})
		}
		return api.Table([]string{"BATCH ID", "LOCATION", "DATE", "GENRE", "COUNT", "STATUS"}, rows)
	},
}

func init() {
	listBatchesCmd.Flags().StringVar(&listBatchesLocation, "location", "", "filter by location (generated, developing, favorites)")
	listBatchesCmd.Flags().StringVar(&listBatchesStatus, "status", "", "filter by exact status")
	listBatchesCmd.Flags().StringVar(&listBatchesGenre, "genre", "", "filter by genre substring")
	listBatchesCmd.Flags().StringVar(&listBatchesTrope, "trope", "", "filter by trope substring")
	listBatchesCmd.Flags().StringVar(&listBatchesSort, "sort", "date", "sort key: date, count, or genre")

	rootCmd.AddCommand(listBatchesCmd)
}
