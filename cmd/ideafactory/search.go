package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aiwynns/ideafactory/internal/api"
	"github.com/aiwynns/ideafactory/internal/library"
	"github.com/aiwynns/ideafactory/internal/match"
	"github.com/aiwynns/ideafactory/internal/validation"
)

var (
	searchFuzzy     bool
	searchGenre     string
	searchTrope     string
	searchStatus    string
	searchLimit     int
	searchThreshold float64
	searchKind      string
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search concepts and stories",
	Long: `Search concepts and stories by text.

The default mode matches the query as a case-insensitive substring.
With --fuzzy, hits are scored by approximate similarity and ranked
best first; only scores strictly above --threshold are reported.

Examples:
  ideafactory search "dragon rider"
  ideafactory search "dragon rider" --fuzzy
  ideafactory search magic --fuzzy --threshold 0.7 --genre fantasy
  ideafactory search heist --kind stories -o json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query, err := validation.SanitizeQuery(args[0])
		if err != nil {
			return err
		}
		in := validation.SearchInput{
			Query:     query,
			Genre:     searchGenre,
			Trope:     searchTrope,
			Status:    searchStatus,
			Limit:     searchLimit,
			Threshold: searchThreshold,
		}
		if err := in.Validate(); err != nil {
			return err
		}

		items, err := searchItems(searchKind, searchStatus)
		if err != nil {
			return err
		}
		filters := itemFilters(searchGenre, searchTrope)

		if searchFuzzy {
			hits := match.FuzzySearch(items, query, searchThreshold, filters...)
			if len(hits) > searchLimit {
				hits = hits[:searchLimit]
			}
			return printScored(hits, query)
		}

		found := match.Search(items, query, filters...)
		if len(found) > searchLimit {
			found = found[:searchLimit]
		}
		if api.IsStructuredOutput() {
			return api.Output(found)
		}
		if len(found) == 0 {
			fmt.Println("No matches.")
			return nil
		}
		for _, it := range found {
			fmt.Printf("%s %s\n    %s\n", itemRef(it), it.Title, match.Preview(it.Text, query, 100))
		}
		return nil
	},
}

// searchItems loads the searchable items for a kind selector, keeping
// only sources matching status when it is non-empty.
func searchItems(kind, status string) ([]match.Item, error) {
	if kind != "concepts" && kind != "stories" && kind != "all" {
		return nil, fmt.Errorf("unknown kind %q (valid: concepts, stories, all)", kind)
	}

	lib, _, err := getLibrary()
	if err != nil {
		return nil, err
	}

	var items []match.Item
	if kind == "concepts" || kind == "all" {
		batches, err := lib.Batches()
		if err != nil {
			return nil, err
		}
		batches = library.FilterBatches(batches, status, "", "")
		items = append(items, library.ConceptItems(batches)...)
	}
	if kind == "stories" || kind == "all" {
		stories, err := lib.Stories()
		if err != nil {
			return nil, err
		}
		stories = library.FilterStories(stories, status, "", "")
		items = append(items, library.StoryItems(stories)...)
	}
	return items, nil
}

// itemFilters builds match filters from the genre and trope flags.
func itemFilters(genre, trope string) []match.Filter {
	var filters []match.Filter
	if genre != "" {
		needle := strings.ToLower(genre)
		filters = append(filters, func(it match.Item) bool {
			return strings.Contains(strings.ToLower(it.Genre), needle)
		})
	}
	if trope != "" {
		needle := strings.ToLower(trope)
		filters = append(filters, func(it match.Item) bool {
			return strings.Contains(strings.ToLower(it.Text), needle)
		})
	}
	return filters
}

// printScored renders fuzzy hits as text or structured output.
func printScored(hits []match.Scored, query string) error {
	if api.IsStructuredOutput() {
		return api.Output(hits)
	}
	if len(hits) == 0 {
		fmt.Println("No matches.")
		return nil
	}
	for _, h := range hits {
		fmt.Printf("%.2f %s %s\n    %s\n", h.Score, itemRef(h.Item), h.Item.Title, match.Preview(h.Item.Text, query, 100))
	}
	return nil
}

// itemRef renders a short source reference for a hit.
func itemRef(it match.Item) string {
	if it.Number != "" {
		return fmt.Sprintf("[%s #%s]", it.Group, it.Number)
	}
	return fmt.Sprintf("[%s]", it.Group)
}

func init() {
	searchCmd.Flags().BoolVar(&searchFuzzy, "fuzzy", false, "rank hits by approximate similarity")
	searchCmd.Flags().StringVar(&searchGenre, "genre", "", "filter by genre substring")
	searchCmd.Flags().StringVar(&searchTrope, "trope", "", "filter by trope substring")
	searchCmd.Flags().StringVar(&searchStatus, "status", "", "filter by status")
	searchCmd.Flags().IntVar(&searchLimit, "limit", 20, "maximum number of hits")
	searchCmd.Flags().Float64Var(&searchThreshold, "threshold", match.DefaultFuzzyThreshold, "minimum fuzzy score, exclusive")
	searchCmd.Flags().StringVar(&searchKind, "kind", "all", "what to search: concepts, stories, or all")

	rootCmd.AddCommand(searchCmd)
}
