package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aiwynns/ideafactory/internal/api"
	"github.com/aiwynns/ideafactory/internal/validation"
)

var showConcept string

var showCmd = &cobra.Command{
	Use:   "show <batch-id|story-name>",
	Short: "Show a batch or story",
	Long: `Show a concept batch or story development file.

Batch ids look like 20240115-001; anything else is treated as a story
name (the file stem under stories/). Use --concept to show a single
numbered concept from a batch.

Examples:
  ideafactory show 20240115-001
  ideafactory show 20240115-001 --concept 3
  ideafactory show dragon-heart`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		lib, _, err := getLibrary()
		if err != nil {
			return err
		}

		if validation.BatchID(args[0]) == nil {
			b, err := lib.Batch(args[0])
			if err != nil {
				return err
			}

			if showConcept != "" {
				rec := b.Concept(showConcept)
				if rec == nil {
					return fmt.Errorf("batch %s has no concept %s", b.ID, showConcept)
				}
				if api.IsStructuredOutput() {
					return api.Output(rec)
				}
				fmt.Printf("## Concept %s: %s\n%s", rec.Number, rec.Title, rec.Body)
				return nil
			}

			if api.IsStructuredOutput() {
				return api.Output(b)
			}
			fmt.Printf("Batch:    %s (%s)\n", b.ID, b.Location)
			fmt.Printf("Genre:    %s\n", b.Genre.String())
			fmt.Printf("Tropes:   %s\n", b.Tropes.String())
			fmt.Printf("Status:   %s\n", b.Status)
			fmt.Printf("Concepts: %d\n\n", len(b.Concepts))
			for _, rec := range b.Concepts {
				fmt.Printf("  %s: %s\n", rec.Number, rec.Title)
			}
			return nil
		}

		s, err := lib.Story(args[0])
		if err != nil {
			return err
		}
		if api.IsStructuredOutput() {
			return api.Output(s)
		}
		fmt.Printf("Story:  %s\n", s.Title)
		fmt.Printf("Genre:  %s\n", s.Genre.String())
		fmt.Printf("Status: %s\n", s.Status)
		if s.OriginBatch != "" {
			fmt.Printf("Origin: %s\n", s.OriginBatch)
		}
		fmt.Printf("\n%s", s.Body)
		return nil
	},
}

func init() {
	showCmd.Flags().StringVar(&showConcept, "concept", "", "show a single concept number from a batch")

	rootCmd.AddCommand(showCmd)
}
