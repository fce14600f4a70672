// Package match runs substring search, fuzzy search, and near-duplicate
// detection over collections of searchable items.
//
// All operations are pure functions of their inputs: the package holds no
// state, so concurrent callers are safe as long as each call gets its own
// item slice.
package match

import (
	"sort"
	"strings"

	"github.com/aiwynns/ideafactory/internal/similarity"
)

// Default thresholds. Both are empirical values carried over from long use,
// not derived constants; the CLI exposes them as flags.
const (
	// DefaultFuzzyThreshold is the minimum score a fuzzy search hit must
	// exceed to be reported.
	DefaultFuzzyThreshold = 0.6
	// DefaultDuplicateThreshold is the minimum score for a cross-group
	// pair to be reported as a near duplicate.
	DefaultDuplicateThreshold = 0.8
)

// Item is one searchable record: a concept or story plus enough metadata
// to present a hit. Group identifies the source document (batch id or
// story file); duplicate detection never pairs items from the same group.
type Item struct {
	Group  string `json:"group" yaml:"group"`
	Kind   string `json:"kind" yaml:"kind"`
	Number string `json:"number,omitempty" yaml:"number,omitempty"`
	Title  string `json:"title" yaml:"title"`
	// Text is the searchable text (title plus body, assembled by the
	// loader). Treated as opaque; never re-parsed here.
	Text  string `json:"-" yaml:"-"`
	File  string `json:"file,omitempty" yaml:"file,omitempty"`
	Genre string `json:"genre,omitempty" yaml:"genre,omitempty"`
}

// Filter is an opaque predicate applied to items before matching.
type Filter func(Item) bool

// Scored is a fuzzy search hit.
type Scored struct {
	Item  Item    `json:"item" yaml:"item"`
	Score float64 `json:"score" yaml:"score"`
}

// Search returns items whose text contains query, case-folded, preserving
// input order. No scoring.
func Search(items []Item, query string, filters ...Filter) []Item {
	query = strings.ToLower(query)

	var out []Item
	for _, it := range items {
		if !keep(it, filters) {
			continue
		}
		if strings.Contains(strings.ToLower(it.Text), query) {
			out = append(out, it)
		}
	}
	return out
}

// FuzzySearch scores every item's text against query and returns hits
// strictly above threshold, highest score first. Equal scores keep their
// input order (stable sort) so output is deterministic.
func FuzzySearch(items []Item, query string, threshold float64, filters ...Filter) []Scored {
	var out []Scored
	for _, it := range items {
		if !keep(it, filters) {
			continue
		}
		score := similarity.Score(query, it.Text)
		if score > threshold {
			out = append(out, Scored{Item: it, Score: score})
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})
	return out
}

// SimilarTo ranks all items against a reference text: hits with score >=
// threshold, best first, at most limit results (limit <= 0 means no cap).
func SimilarTo(items []Item, text string, threshold float64, limit int) []Scored {
	var out []Scored
	for _, it := range items {
		score := similarity.Score(text, it.Text)
		if score >= threshold {
			out = append(out, Scored{Item: it, Score: score})
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// Preview returns a window of text around the first case-folded occurrence
// of query, with ellipses marking truncation. Without a hit it returns the
// head of the text.
func Preview(text, query string, contextChars int) string {
	idx := strings.Index(strings.ToLower(text), strings.ToLower(query))
	if idx < 0 {
		return head(text, 200)
	}

	start := idx - contextChars
	if start < 0 {
		start = 0
	}
	end := idx + len(query) + contextChars
	if end > len(text) {
		end = len(text)
	}

	preview := text[start:end]
	if start > 0 {
		preview = "..." + preview
	}
	if end < len(text) {
		preview = preview + "..."
	}
	return preview
}

// head returns at most n bytes of text, cut at a rune boundary.
func head(text string, n int) string {
	if len(text) <= n {
		return text
	}
	for n > 0 && text[n]&0xC0 == 0x80 {
		n--
	}
	return text[:n]
}

func keep(it Item, filters []Filter) bool {
	for _, f := range filters {
		if !f(it) {
			return false
		}
	}
	return true
}
