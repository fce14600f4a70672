// Package creator generates new batch and story files from templates.
//
// Templates live in the workspace templates/ directory; when one is
// missing, the embedded default is used, so a bare workspace still works.
// Generation is plain placeholder substitution, nothing more.
package creator

import (
	"embed"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/goliatone/go-slug"
	"github.com/google/uuid"

	"github.com/aiwynns/ideafactory/internal/home"
)

//go:embed templates/*.md
var defaultTemplates embed.FS

const (
	// BatchTemplateName is the concept batch template file name.
	BatchTemplateName = "concept-batch.md"
	// StoryTemplateName is the story development template file name.
	StoryTemplateName = "story-development.md"

	// maxBatchesPerDay bounds the NNN suffix scan.
	maxBatchesPerDay = 999
)

// Creator writes new workspace files from templates.
type Creator struct {
	home *home.Dir
	// now is swappable for tests.
	now func() time.Time
}

// New creates a Creator over the given workspace.
func New(dir *home.Dir) *Creator {
	return &Creator{home: dir, now: time.Now}
}

// NewBatch creates a concept batch file under concepts/generated with a
// fresh YYYYMMDD-NNN id and returns its path.
func (c *Creator) NewBatch(genre, tropes, model string, count int) (string, error) {
	batchID, err := c.allocateBatchID()
	if err != nil {
		return "", err
	}

	content, err := c.template(BatchTemplateName)
	if err != nil {
		return "", err
	}

	now := c.now()
	content = strings.NewReplacer(
		"YYYYMMDD-001", batchID,
		"YYYY-MM-DD", now.Format("2006-01-02"),
		"[genre]", genre,
		"[trope1, trope2, trope3]", tropes,
		"count: 10", fmt.Sprintf("count: %d", count),
		`"model used"`, fmt.Sprintf("%q", model),
	).Replace(content)

	path := c.home.BatchPath("generated", batchID)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("write batch file: %w", err)
	}
	return path, nil
}

// NewStory creates a story development file and returns its path. The file
// name is the slugged title; a name collision gets a date suffix instead
// of clobbering the existing story.
func (c *Creator) NewStory(title, genre, origin string) (string, error) {
	name, err := slug.Normalize(title)
	if err != nil {
		return "", fmt.Errorf("slug title: %w", err)
	}

	now := c.now()
	path := c.home.StoryPath(name)
	if _, err := os.Stat(path); err == nil {
		path = c.home.StoryPath(name + "-" + now.Format("20060102"))
	}

	content, err := c.storyContent(title, genre, origin, now)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("write story file: %w", err)
	}
	return path, nil
}

// storyContent fills the story template.
func (c *Creator) storyContent(title, genre, origin string, now time.Time) (string, error) {
	content, err := c.template(StoryTemplateName)
	if err != nil {
		return "", err
	}

	name, err := slug.Normalize(title)
	if err != nil {
		return "", fmt.Errorf("slug title: %w", err)
	}
	storyID := name + "-" + uuid.NewString()[:8]

	if origin == "" {
		origin = "none"
	}

	return strings.NewReplacer(
		"[unique-id]", storyID,
		"[Working Title]", title,
		"[Story Title]", title,
		"[genre]", genre,
		"[batch_id if from generated concepts]", origin,
		"YYYY-MM-DD", now.Format("2006-01-02"),
	).Replace(content), nil
}

// allocateBatchID finds the first unused YYYYMMDD-NNN id for today.
func (c *Creator) allocateBatchID() (string, error) {
	today := c.now().Format("20060102")
	for n := 1; n <= maxBatchesPerDay; n++ {
		batchID := fmt.Sprintf("%s-%03d", today, n)
		if _, err := os.Stat(c.home.BatchPath("generated", batchID)); os.IsNotExist(err) {
			return batchID, nil
		}
	}
	return "", fmt.Errorf("no free batch id left for %s", today)
}

// template returns the named template: workspace copy if present,
// embedded default otherwise.
func (c *Creator) template(name string) (string, error) {
	if data, err := os.ReadFile(c.home.TemplatePath(name)); err == nil {
		return string(data), nil
	}
	data, err := defaultTemplates.ReadFile("templates/" + name)
	if err != nil {
		return "", fmt.Errorf("load template %s: %w", name, err)
	}
	return string(data), nil
}

// WriteDefaultTemplates copies the embedded templates into the workspace
// templates/ directory, skipping files that already exist.
func (c *Creator) WriteDefaultTemplates() error {
	for _, name := range []string{BatchTemplateName, StoryTemplateName} {
		path := c.home.TemplatePath(name)
		if _, err := os.Stat(path); err == nil {
			continue
		}
		data, err := defaultTemplates.ReadFile("templates/" + name)
		if err != nil {
			return fmt.Errorf("load template %s: %w", name, err)
		}
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return fmt.Errorf("write template %s: %w", name, err)
		}
	}
	return nil
}
