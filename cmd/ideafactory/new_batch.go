package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aiwynns/ideafactory/internal/creator"
	"github.com/aiwynns/ideafactory/internal/validation"
)

var (
	newBatchGenre  string
	newBatchTropes string
	newBatchModel  string
	newBatchCount  int
)

var newBatchCmd = &cobra.Command{
	Use:   "new-batch",
	Short: "Create a concept batch file from the template",
	Long: `Create a concept batch file from the template.

The batch id is allocated as YYYYMMDD-NNN, incrementing NNN past any
batch already created today. The file lands in concepts/generated/ with
placeholder concept sections to fill in.

Examples:
  ideafactory new-batch --genre fantasy
  ideafactory new-batch --genre "science fiction" --tropes "first contact, ai" --count 15`,
	RunE: func(cmd *cobra.Command, args []string) error {
		in := validation.NewBatchInput{
			Genre:  newBatchGenre,
			Tropes: newBatchTropes,
			Model:  newBatchModel,
			Count:  newBatchCount,
		}
		if err := in.Validate(); err != nil {
			return err
		}

		h, err := getHome()
		if err != nil {
			return err
		}
		if err := h.EnsureExists(); err != nil {
			return err
		}

		path, err := creator.New(h).NewBatch(newBatchGenre, newBatchTropes, newBatchModel, newBatchCount)
		if err != nil {
			return err
		}
		fmt.Printf("Created %s\n", path)
		return nil
	},
}

func init() {
	newBatchCmd.Flags().StringVar(&newBatchGenre, "genre", "", "batch genre (required)")
	newBatchCmd.Flags().StringVar(&newBatchTropes, "tropes", "", "comma-separated tropes")
	newBatchCmd.Flags().StringVar(&newBatchModel, "model", "", "model used to generate the concepts")
	newBatchCmd.Flags().IntVar(&newBatchCount, "count", 10, "number of concept placeholders")
	_ = newBatchCmd.MarkFlagRequired("genre")

	rootCmd.AddCommand(newBatchCmd)
}
