package creator

import (
	"fmt"
	"os"
	"strings"

	"github.com/goliatone/go-slug"

	"github.com/aiwynns/ideafactory/internal/concept"
)

// conceptFields are the structured parts of a concept body, when present.
// Bodies follow a loose convention of bolded labels; anything that doesn't
// match is simply left out.
type conceptFields struct {
	highConcept     string
	synopsis        string
	keyElements     []string
	initialThoughts string
}

// DevelopConcept promotes a single concept into a story development file
// and returns its path. The concept's high concept and synopsis replace the
// template's pitch placeholders, and its key elements land under
// Development Notes. An existing story file is only replaced with overwrite.
func (c *Creator) DevelopConcept(batchID, genre string, rec concept.Record, overwrite bool) (string, error) {
	title := rec.Title
	if title == "" {
		title = "Concept " + rec.Number
	}

	name, err := slug.Normalize(title)
	if err != nil {
		return "", fmt.Errorf("slug title: %w", err)
	}
	path := c.home.StoryPath(name)
	if _, err := os.Stat(path); err == nil && !overwrite {
		return "", fmt.Errorf("story file %s already exists (use --force to overwrite)", name+".md")
	}

	now := c.now()
	content, err := c.storyContent(title, genre, batchID, now)
	if err != nil {
		return "", err
	}

	fields := parseConceptFields(rec.Body)
	if fields.highConcept != "" {
		content = strings.Replace(content,
			"[One-line pitch that captures the essence]", fields.highConcept, 1)
	}
	if fields.synopsis != "" {
		content = strings.Replace(content,
			"[2-3 sentence compelling description]", fields.synopsis, 1)
	}

	if notes := developmentNotes(batchID, rec, fields, now.Format("2006-01-02")); notes != "" {
		content = strings.Replace(content, "## Development Notes",
			"## Development Notes\n"+notes, 1)
	}

	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("write story file: %w", err)
	}
	return path, nil
}

// parseConceptFields scans a concept body for its labeled parts. Synopsis
// and initial-thoughts continuation lines are folded into one paragraph.
func parseConceptFields(body string) conceptFields {
	var fields conceptFields
	section := ""

	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(line, "**High Concept**:"):
			section = "high"
			fields.highConcept = strings.TrimSpace(strings.TrimPrefix(line, "**High Concept**:"))
		case strings.HasPrefix(line, "**Synopsis**:"):
			section = "synopsis"
			fields.synopsis = strings.TrimSpace(strings.TrimPrefix(line, "**Synopsis**:"))
		case strings.HasPrefix(line, "**Key Elements**:"):
			section = "elements"
		case strings.HasPrefix(line, "**Initial Thoughts**:"):
			section = "thoughts"
			fields.initialThoughts = strings.TrimSpace(strings.TrimPrefix(line, "**Initial Thoughts**:"))
		case strings.HasPrefix(line, "-") && section == "elements":
			fields.keyElements = append(fields.keyElements, strings.TrimSpace(line[1:]))
		case line != "" && section == "synopsis" && !strings.HasPrefix(line, "**"):
			fields.synopsis += " " + line
		case line != "" && section == "thoughts" && !strings.HasPrefix(line, "**"):
			fields.initialThoughts += " " + line
		}
	}
	return fields
}

// developmentNotes renders the provenance block appended under the
// Development Notes heading.
func developmentNotes(batchID string, rec concept.Record, fields conceptFields, date string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "\n### [%s] From Batch %s, Concept #%s\n\n", date, batchID, rec.Number)

	if len(fields.keyElements) > 0 {
		b.WriteString("**Key Elements from Concept:**\n")
		for _, el := range fields.keyElements {
			fmt.Fprintf(&b, "- %s\n", el)
		}
		b.WriteString("\n")
	}
	if fields.initialThoughts != "" {
		fmt.Fprintf(&b, "**Initial Thoughts:**\n%s\n", fields.initialThoughts)
	}
	return b.String()
}
