package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aiwynns/ideafactory/internal/indexer"
)

var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Rebuild the INDEX.md catalog",
	Long: `Rebuild INDEX.md from the current workspace contents.

Anything below the "## Manual Updates" marker in the existing index is
carried over unchanged.

Examples:
  ideafactory index`,
	RunE: func(cmd *cobra.Command, args []string) error {
		lib, h, err := getLibrary()
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

		if err := indexer.New(h).Update(batches, stories); err != nil {
			return err
		}
		fmt.Printf("Updated %s\n", h.IndexPath())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(indexCmd)
}
