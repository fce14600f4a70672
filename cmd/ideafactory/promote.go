package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aiwynns/ideafactory/internal/validation"
)

var promoteCmd = &cobra.Command{
	Use:   "promote <batch-id> <location>",
	Short: "Move a batch to another concepts location",
	Long: `Move a concept batch between the generated, developing, and favorites
locations.

Examples:
  ideafactory promote 20240115-001 developing
  ideafactory promote 20240115-001 favorites`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := validation.BatchID(args[0]); err != nil {
			return err
		}

		lib, _, err := getLibrary()
		if err != nil {
			return err
		}
		dest, err := lib.PromoteBatch(args[0], args[1])
		if err != nil {
			return err
		}
		fmt.Printf("Moved %s to %s\n", args[0], dest)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(promoteCmd)
}
