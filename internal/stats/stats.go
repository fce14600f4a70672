// Package stats aggregates workspace-wide statistics.
package stats

import (
	"sort"

	"github.com/aiwynns/ideafactory/internal/library"
)

// Count is one entry of a breakdown, ordered by Count descending.
type Count struct {
	Name  string `json:"name" yaml:"name"`
	Count int    `json:"count" yaml:"count"`
}

// Summary is the full statistics report.
type Summary struct {
	TotalBatches        int             `json:"total_batches" yaml:"total_batches"`
	TotalConcepts       int             `json:"total_concepts" yaml:"total_concepts"`
	TotalStories        int             `json:"total_stories" yaml:"total_stories"`
	StoriesInDev        int             `json:"stories_in_development" yaml:"stories_in_development"`
	BatchesByStatus     []Count         `json:"batches_by_status" yaml:"batches_by_status"`
	TopGenres           []Count         `json:"top_genres" yaml:"top_genres"`
	TopTropes           []Count         `json:"top_tropes" yaml:"top_tropes"`
	RecentBatches       []library.Batch `json:"recent_batches" yaml:"recent_batches"`
	GenreBreakdownFull  []Count         `json:"-" yaml:"-"`
	TropeBreakdownFull  []Count         `json:"-" yaml:"-"`
}

const topN = 10

// Generate computes a Summary over the given batches and stories.
func Generate(batches []library.Batch, stories []library.Story) Summary {
	s := Summary{
		TotalBatches: len(batches),
		TotalStories: len(stories),
	}

	statuses := map[string]int{}
	genres := map[string]int{}
	tropes := map[string]int{}

	for _, b := range batches {
		s.TotalConcepts += b.Count
		status := b.Status
		if status == "" {
			status = "unknown"
		}
		statuses[status]++
		countAll(genres, b.Genre)
		countAll(tropes, b.Tropes)
	}

	for _, st := range stories {
		if st.Status == "developing" {
			s.StoriesInDev++
		}
		countAll(genres, st.Genre)
		countAll(tropes, st.Tropes)
	}

	s.BatchesByStatus = ranked(statuses, 0)
	s.GenreBreakdownFull = ranked(genres, 0)
	s.TropeBreakdownFull = ranked(tropes, 0)
	s.TopGenres = ranked(genres, topN)
	s.TopTropes = ranked(tropes, topN)

	recent := append([]library.Batch(nil), batches...)
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].DateGenerated > recent[j].DateGenerated
	})
	if len(recent) > topN {
		recent = recent[:topN]
	}
	s.RecentBatches = recent

	return s
}

func countAll(counter map[string]int, values library.StringList) {
	for _, v := range values {
		if v != "" {
			counter[v]++
		}
	}
}

// ranked turns a counter map into a Count slice, count descending then
// name ascending so equal counts come out in a deterministic order. A
// limit of 0 means unlimited.
func ranked(counter map[string]int, limit int) []Count {
	out := make([]Count, 0, len(counter))
	for name, n := range counter {
		out = append(out, Count{Name: name, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Name < out[j].Name
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
