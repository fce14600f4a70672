// Package library loads concept batches and stories from the workspace.
//
// Files are markdown with YAML front-matter. Loading is best-effort: a file
// that fails to parse is logged and skipped, never fatal, so one corrupt
// file cannot hide the rest of the workspace.
package library

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/adrg/frontmatter"

	"github.com/aiwynns/ideafactory/internal/concept"
	"github.com/aiwynns/ideafactory/internal/home"
	"github.com/aiwynns/ideafactory/internal/match"
)

// Library reads batches and stories from a workspace directory.
type Library struct {
	home   *home.Dir
	logger *slog.Logger
}

// New creates a Library over the given workspace.
func New(dir *home.Dir, logger *slog.Logger) *Library {
	if logger == nil {
		logger = slog.Default()
	}
	return &Library{home: dir, logger: logger}
}

// Batches returns all concept batches across every location, in location
// order then file-name order.
func (l *Library) Batches() ([]Batch, error) {
	var batches []Batch

	for _, location := range home.Locations {
		dir := l.home.LocationPath(location)
		files, err := markdownFiles(dir)
		if err != nil {
			return nil, err
		}
		for _, path := range files {
			batch, err := l.loadBatch(path)
			if err != nil {
				l.logger.Warn("skipping unreadable batch file", "path", path, "error", err)
				continue
			}
			batch.Location = location
			batches = append(batches, *batch)
		}
	}
	return batches, nil
}

// Batch returns the batch with the given id, or an error naming it.
func (l *Library) Batch(batchID string) (*Batch, error) {
	batches, err := l.Batches()
	if err != nil {
		return nil, err
	}
	for i := range batches {
		if batches[i].ID == batchID {
			return &batches[i], nil
		}
	}
	return nil, fmt.Errorf("batch %q not found", batchID)
}

// Stories returns all story development files, in file-name order.
func (l *Library) Stories() ([]Story, error) {
	files, err := markdownFiles(l.home.StoriesPath())
	if err != nil {
		return nil, err
	}

	var stories []Story
	for _, path := range files {
		story, err := l.loadStory(path)
		if err != nil {
			l.logger.Warn("skipping unreadable story file", "path", path, "error", err)
			continue
		}
		stories = append(stories, *story)
	}
	return stories, nil
}

// Story returns the story with the given file stem, or an error naming it.
func (l *Library) Story(name string) (*Story, error) {
	stories, err := l.Stories()
	if err != nil {
		return nil, err
	}
	for i := range stories {
		if stories[i].Name == name {
			return &stories[i], nil
		}
	}
	return nil, fmt.Errorf("story %q not found", name)
}

// loadBatch parses one batch file: front-matter into metadata, body into
// concept records.
func (l *Library) loadBatch(path string) (*Batch, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var batch Batch
	body, err := frontmatter.Parse(f, &batch)
	if err != nil {
		return nil, fmt.Errorf("parse front-matter: %w", err)
	}

	batch.FilePath = path
	batch.Body = string(body)
	batch.Concepts = concept.Extract(batch.Body)
	if batch.ID == "" {
		// Hand-created files sometimes omit batch_id; the file name is
		// the id by convention.
		batch.ID = fileStem(path)
	}
	return &batch, nil
}

// loadStory parses one story file.
func (l *Library) loadStory(path string) (*Story, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var story Story
	body, err := frontmatter.Parse(f, &story)
	if err != nil {
		return nil, fmt.Errorf("parse front-matter: %w", err)
	}

	story.FilePath = path
	story.Body = string(body)
	story.Name = fileStem(path)
	return &story, nil
}

// ConceptItems flattens batches into match items, one per concept. The
// batch id is the group key, so duplicate detection compares concepts
// across batches but never within one.
func ConceptItems(batches []Batch) []match.Item {
	var items []match.Item
	for i := range batches {
		b := &batches[i]
		for _, c := range b.Concepts {
			items = append(items, match.Item{
				Group:  b.ID,
				Kind:   "concept",
				Number: c.Number,
				Title:  c.Title,
				Text:   c.Title + " " + c.Body,
				File:   b.FilePath,
				Genre:  b.Genre.String(),
			})
		}
	}
	return items
}

// StoryItems maps stories into match items. Each story is its own group.
func StoryItems(stories []Story) []match.Item {
	var items []match.Item
	for i := range stories {
		s := &stories[i]
		items = append(items, match.Item{
			Group: s.Name,
			Kind:  "story",
			Title: s.Title,
			Text:  s.Title + " " + s.Body,
			File:  s.FilePath,
			Genre: s.Genre.String(),
		})
	}
	return items
}

// markdownFiles lists *.md files in dir, sorted by name. A missing
// directory is an empty workspace, not an error.
func markdownFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read directory %s: %w", dir, err)
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".md") {
			continue
		}
		files = append(files, filepath.Join(dir, e.Name()))
	}
	sort.Strings(files)
	return files, nil
}

func fileStem(path string) string {
	return strings.TrimSuffix(filepath.Base(path), ".md")
}
