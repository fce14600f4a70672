package match

import (
	"context"
	"runtime"
	"sort"
	"strings"
	"sync"

	"github.com/aiwynns/ideafactory/internal/similarity"
)

// Pair is a near-duplicate candidate: two items from different groups and
// their similarity score.
type Pair struct {
	A     Item    `json:"a" yaml:"a"`
	B     Item    `json:"b" yaml:"b"`
	Score float64 `json:"score" yaml:"score"`
}

// FindDuplicates compares every unordered cross-group pair of items and
// returns pairs scoring >= threshold, highest first. Items in the same
// group are never paired: the point is catching the same idea showing up
// in separately generated batches, not echoes within one batch. Ties keep
// pair-enumeration order (i ascending, then j > i ascending).
func FindDuplicates(items []Item, threshold float64) []Pair {
	var out []Pair
	for i := 0; i < len(items); i++ {
		for j := i + 1; j < len(items); j++ {
			if items[i].Group == items[j].Group {
				continue
			}
			score := similarity.Score(items[i].Text, items[j].Text)
			if score >= threshold {
				out = append(out, Pair{A: items[i], B: items[j], Score: score})
			}
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})
	return out
}

// pairIndex identifies one cross-group comparison.
type pairIndex struct {
	i, j int
}

// FindDuplicatesParallel is FindDuplicates fanned out over a bounded worker
// pool. Output is identical to the serial version: scores land in a slice
// parallel to the pair enumeration, so ordering survives the join. The scan
// stops early when ctx is cancelled and returns ctx's error.
func FindDuplicatesParallel(ctx context.Context, items []Item, threshold float64, workers int) ([]Pair, error) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	var pairs []pairIndex
	for i := 0; i < len(items); i++ {
		for j := i + 1; j < len(items); j++ {
			if items[i].Group != items[j].Group {
				pairs = append(pairs, pairIndex{i, j})
			}
		}
	}

	scores := make([]float64, len(pairs))
	queue := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for k := range queue {
				p := pairs[k]
				scores[k] = similarity.Score(items[p.i].Text, items[p.j].Text)
			}
		}()
	}

	var cancelled error
feed:
	for k := range pairs {
		if err := ctx.Err(); err != nil {
			cancelled = err
			break feed
		}
		select {
		case queue <- k:
		case <-ctx.Done():
			cancelled = ctx.Err()
			break feed
		}
	}
	close(queue)
	wg.Wait()

	if cancelled != nil {
		return nil, cancelled
	}

	var out []Pair
	for k, p := range pairs {
		if scores[k] >= threshold {
			out = append(out, Pair{A: items[p.i], B: items[p.j], Score: scores[k]})
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})
	return out, nil
}

// TitleCollision reports a case-folded title used by more than one
// concept. Groups lists the source group of every occurrence, so a title
// repeated within one batch appears with that batch id listed twice.
type TitleCollision struct {
	Title  string   `json:"title" yaml:"title"`
	Groups []string `json:"groups" yaml:"groups"`
}

// FindTitleCollisions reports exact (case-folded) titles with more than
// one occurrence, most frequent first. Unlike the fuzzy duplicate scan,
// repeats inside a single group count too.
func FindTitleCollisions(items []Item) []TitleCollision {
	groupsByTitle := make(map[string][]string)
	var order []string

	for _, it := range items {
		title := normalizeTitle(it.Title)
		if title == "" {
			continue
		}
		if _, seen := groupsByTitle[title]; !seen {
			order = append(order, title)
		}
		groupsByTitle[title] = append(groupsByTitle[title], it.Group)
	}

	var out []TitleCollision
	for _, title := range order {
		groups := groupsByTitle[title]
		if len(groups) > 1 {
			out = append(out, TitleCollision{Title: title, Groups: groups})
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return len(out[i].Groups) > len(out[j].Groups)
	})
	return out
}

func normalizeTitle(title string) string {
	return strings.ToLower(strings.TrimSpace(title))
}
