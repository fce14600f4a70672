// Package indexer rebuilds the workspace INDEX.md catalog.
package indexer

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/aiwynns/ideafactory/internal/home"
	"github.com/aiwynns/ideafactory/internal/library"
)

// manualMarker separates generated catalog content from hand-written notes.
// Everything below the marker survives a rebuild.
const manualMarker = "## Manual Updates"

// manualHint is the boilerplate line written right under the marker. It is
// stripped when notes are carried over so rebuilds don't stack copies.
const manualHint = "You can manually add notes and cross-references below this line."

// Indexer writes the INDEX.md catalog.
type Indexer struct {
	home *home.Dir
	// now is swappable for tests.
	now func() time.Time
}

// New creates an Indexer over the given workspace.
func New(dir *home.Dir) *Indexer {
	return &Indexer{home: dir, now: time.Now}
}

// Update rebuilds INDEX.md from the given batches and stories, keeping any
// manual notes found below the marker in the existing file.
func (ix *Indexer) Update(batches []library.Batch, stories []library.Story) error {
	manual := ix.existingManualNotes()

	content := ix.render(batches, stories, manual)
	if err := os.WriteFile(ix.home.IndexPath(), []byte(content), 0o644); err != nil {
		return fmt.Errorf("write index: %w", err)
	}
	return nil
}

// existingManualNotes returns the text below the manual marker in the
// current INDEX.md, or empty when there is none.
func (ix *Indexer) existingManualNotes() string {
	data, err := os.ReadFile(ix.home.IndexPath())
	if err != nil {
		return ""
	}
	_, after, found := strings.Cut(string(data), manualMarker)
	if !found {
		return ""
	}
	if _, rest, hinted := strings.Cut(after, manualHint); hinted {
		after = rest
	}
	return strings.TrimLeft(after, "\n")
}

func (ix *Indexer) render(batches []library.Batch, stories []library.Story, manual string) string {
	var b strings.Builder

	totalConcepts := 0
	for _, batch := range batches {
		totalConcepts += batch.Count
	}
	developing := 0
	for _, s := range stories {
		if s.Status == "developing" {
			developing++
		}
	}

	fmt.Fprintf(&b, "# Story Concepts Index\n\n")
	fmt.Fprintf(&b, "This file tracks all story concepts in the workspace. Last updated: %s\n\n",
		ix.now().Format("2006-01-02 15:04"))
	fmt.Fprintf(&b, "## Statistics\n")
	fmt.Fprintf(&b, "- Total Batches: %d\n", len(batches))
	fmt.Fprintf(&b, "- Total Concepts: %d\n", totalConcepts)
	fmt.Fprintf(&b, "- Stories in Development: %d\n", developing)
	fmt.Fprintf(&b, "- Total Stories: %d\n\n", len(stories))
	b.WriteString("---\n\n## Concept Batches\n\n")

	byLocation := map[string][]library.Batch{}
	for _, batch := range batches {
		byLocation[batch.Location] = append(byLocation[batch.Location], batch)
	}

	for _, location := range home.Locations {
		group := byLocation[location]
		if len(group) == 0 {
			continue
		}
		fmt.Fprintf(&b, "### %s\n\n", strings.ToUpper(location))

		sort.SliceStable(group, func(i, j int) bool {
			return group[i].DateGenerated > group[j].DateGenerated
		})
		for _, batch := range group {
			fmt.Fprintf(&b, "- **[%s]** %s (%d concepts) - %s - `%s`\n",
				orNA(batch.ID), orNA(batch.Genre.String()), batch.Count,
				orNA(batch.DateGenerated), ix.relPath(batch.FilePath))
		}
		b.WriteString("\n")
	}

	b.WriteString("---\n\n## Stories in Development\n\n")

	sorted := append([]library.Story(nil), stories...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].DateCreated > sorted[j].DateCreated
	})
	for _, s := range sorted {
		fmt.Fprintf(&b, "- **%s** [%s]\n", orNA(s.Title), orNA(s.Status))
		fmt.Fprintf(&b, "  - Genre: %s\n", orNA(s.Genre.String()))
		fmt.Fprintf(&b, "  - Tropes: %s\n", s.Tropes.String())
		fmt.Fprintf(&b, "  - File: `%s`\n\n", ix.relPath(s.FilePath))
	}

	b.WriteString("---\n\n")
	b.WriteString(manualMarker)
	b.WriteString("\n" + manualHint + "\n\n")
	if manual != "" {
		b.WriteString(manual)
	}

	return b.String()
}

// relPath renders a path relative to the workspace root when possible.
func (ix *Indexer) relPath(path string) string {
	rel, err := filepath.Rel(ix.home.Path(), path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return path
	}
	return rel
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
