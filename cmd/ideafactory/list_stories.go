package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aiwynns/ideafactory/internal/api"
	"github.com/aiwynns/ideafactory/internal/library"
)

var (
	listStoriesStatus string
	listStoriesGenre  string
	listStoriesTrope  string
	listStoriesSort   string
)

var listStoriesCmd = &cobra.Command{
	Use:   "list-stories",
	Short: "List story development files",
	Long: `List story development files in the workspace.

Examples:
  ideafactory list-stories
  ideafactory list-stories --status developing
  ideafactory list-stories --sort updated -o yaml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		lib, _, err := getLibrary()
		if err != nil {
			return err
		}
		stories, err := lib.Stories()
		if err != nil {
			return err
		}

		stories = library.FilterStories(stories, listStoriesStatus, listStoriesGenre, listStoriesTrope)
		library.SortStories(stories, listStoriesSort)

		if api.IsStructuredOutput() {
			return api.Output(stories)
		}

		if len(stories) == 0 {
			fmt.Println("No stories found.")
			return nil
		}
		rows := make([][]string, 0, len(stories))
		for _, s := range stories {
			rows = append(rows, []string{
				s.Name, s.Title, s.Genre.String(), s.Status, s.DateUpdated,
			})
		}
		return api.Table([]string{"NAME", "TITLE", "GENRE", "STATUS", "UPDATED"}, rows)
	},
}

func init() {
	listStoriesCmd.Flags().StringVar(&listStoriesStatus, "status", "", "filter by exact status")
	listStoriesCmd.Flags().StringVar(&listStoriesGenre, "genre", "", "filter by genre substring")
	listStoriesCmd.Flags().StringVar(&listStoriesTrope, "trope", "", "filter by trope substring")
	listStoriesCmd.Flags().StringVar(&listStoriesSort, "sort", "updated", "sort key: title, created, updated, or genre")

	rootCmd.AddCommand(listStoriesCmd)
}
