package library

import "sort"

// FilterBatches narrows batches by status (exact), genre and trope
// (case-folded substring). Empty arguments match everything.
func FilterBatches(batches []Batch, status, genre, trope string) []Batch {
	var out []Batch
	for _, b := range batches {
		if status != "" && b.Status != status {
			continue
		}
		if genre != "" && !b.Genre.Contains(genre) {
			continue
		}
		if trope != "" && !b.Tropes.Contains(trope) {
			continue
		}
		out = append(out, b)
	}
	return out
}

// FilterStories narrows stories the same way FilterBatches narrows batches.
func FilterStories(stories []Story, status, genre, trope string) []Story {
	var out []Story
	for _, s := range stories {
		if status != "" && s.Status != status {
			continue
		}
		if genre != "" && !s.Genre.Contains(genre) {
			continue
		}
		if trope != "" && !s.Tropes.Contains(trope) {
			continue
		}
		out = append(out, s)
	}
	return out
}

// SortBatches orders batches by the named key: date (descending), count
// (descending), or genre (ascending). Unknown keys leave order unchanged.
func SortBatches(batches []Batch, key string) {
	switch key {
	case "date":
		stableSort(batches, func(a, b Batch) bool { return a.DateGenerated > b.DateGenerated })
	case "count":
		stableSort(batches, func(a, b Batch) bool { return a.Count > b.Count })
	case "genre":
		stableSort(batches, func(a, b Batch) bool { return a.Genre.String() < b.Genre.String() })
	}
}

// SortStories orders stories by the named key: title, created (desc),
// updated (desc), or genre.
func SortStories(stories []Story, key string) {
	switch key {
	case "title":
		stableSort(stories, func(a, b Story) bool { return a.Title < b.Title })
	case "created":
		stableSort(stories, func(a, b Story) bool { return a.DateCreated > b.DateCreated })
	case "updated":
		stableSort(stories, func(a, b Story) bool { return a.DateUpdated > b.DateUpdated })
	case "genre":
		stableSort(stories, func(a, b Story) bool { return a.Genre.String() < b.Genre.String() })
	}
}

func stableSort[T any](items []T, less func(a, b T) bool) {
	sort.SliceStable(items, func(i, j int) bool { return less(items[i], items[j]) })
}

// Statuses returns the distinct status values present, for CLI help.
func Statuses(batches []Batch) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, b := range batches {
		if b.Status == "" {
			continue
		}
		if _, ok := seen[b.Status]; ok {
			continue
		}
		seen[b.Status] = struct{}{}
		out = append(out, b.Status)
	}
	return out
}
