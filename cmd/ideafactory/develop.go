package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aiwynns/ideafactory/internal/creator"
	"github.com/aiwynns/ideafactory/internal/validation"
)

var developForce bool

var developCmd = &cobra.Command{
	Use:   "develop-concept <batch-id> <concept-number>",
	Short: "Promote a concept into a story development file",
	Long: `Promote a numbered concept from a batch into a story development file.

The concept's title becomes the story title and its fields (high concept,
synopsis, key elements, initial thoughts) are carried into the story's
development notes. An existing story file with the same name is not
overwritten unless --force is given.

Examples:
  ideafactory develop-concept 20240115-001 3
  ideafactory develop-concept 20240115-001 3 --force`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := validation.BatchID(args[0]); err != nil {
			return err
		}

		lib, h, err := getLibrary()
		if err != nil {
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

		path, err := creator.New(h).DevelopConcept(b.ID, b.Genre.String(), *rec, developForce)
		if err != nil {
			return err
		}
		fmt.Printf("Created %s\n", path)
		return nil
	},
}

func init() {
	developCmd.Flags().BoolVar(&developForce, "force", false, "overwrite an existing story file")

	rootCmd.AddCommand(developCmd)
}
