package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aiwynns/ideafactory/internal/creator"
	"github.com/aiwynns/ideafactory/internal/validation"
)

var (
	newStoryGenre  string
	newStoryOrigin string
)

var newStoryCmd = &cobra.Command{
	Use:   "new-story <title>",
	Short: "Create a story development file from the template",
	Long: `Create a story development file from the template.

The file name is the slugged title; a date suffix is added when a story
with that name already exists. Use --origin to record the batch the idea
came from.

Examples:
  ideafactory new-story "Dragon Heart" --genre fantasy
  ideafactory new-story "The Long Fall" --genre sci-fi --origin 20240115-001`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		in := validation.NewStoryInput{
			Title: args[0],
			Genre: newStoryGenre,
		}
		if err := in.Validate(); err != nil {
			return err
		}
		if newStoryOrigin != "" {
			if err := validation.BatchID(newStoryOrigin); err != nil {
				return err
			}
		}

		h, err := getHome()
		if err != nil {
			return err
		}
		if err := h.EnsureExists(); err != nil {
			return err
		}

		path, err := creator.New(h).NewStory(args[0], newStoryGenre, newStoryOrigin)
		if err != nil {
			return err
		}
		fmt.Printf("Created %s\n", path)
		return nil
	},
}

func init() {
	newStoryCmd.Flags().StringVar(&newStoryGenre, "genre", "", "story genre (required)")
	newStoryCmd.Flags().StringVar(&newStoryOrigin, "origin", "", "batch id the story came from")
	_ = newStoryCmd.MarkFlagRequired("genre")

	rootCmd.AddCommand(newStoryCmd)
}
