// Package concept extracts numbered concept sections from batch file bodies.
package concept

import "strings"

// HeadingPrefix marks the start of a concept section inside a batch body.
const HeadingPrefix = "## Concept "

// Record is one extracted concept section. Records are immutable once
// extracted and hold no reference back to the source document.
type Record struct {
	// Number is the identifier from the heading line ("1", "2", ...).
	// Uniqueness is not enforced here; duplicates are kept in order.
	Number string `json:"number" yaml:"number"`
	// Title is the text after the first colon on the heading line.
	// Empty when the heading carries no colon.
	Title string `json:"title" yaml:"title"`
	// Body is the raw text between this heading and the next one
	// (or end of input), with original line breaks preserved.
	Body string `json:"body" yaml:"body"`
}

// scanState tracks where the extractor is relative to concept headings.
type scanState int

const (
	// stateOutside: before the first heading. Lines are discarded.
	stateOutside scanState = iota
	// stateInSection: accumulating body lines for the current record.
	stateInSection
)

// Extract splits text into concept records in source order.
//
// A line starting with HeadingPrefix opens a new section; its remainder is
// split on the first colon into number and title. Everything up to the next
// heading (or end of input) is that section's body. Text with no headings
// yields an empty slice. Extract never fails: malformed input degrades to
// empty records, not errors.
func Extract(text string) []Record {
	var (
		records []Record
		current Record
		body    strings.Builder
		state   = stateOutside
	)

	lines := strings.Split(text, "\n")
	// A trailing newline produces one empty trailing element; dropping it
	// keeps the last body from growing a phantom blank line.
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}

	for _, line := range lines {
		if strings.HasPrefix(line, HeadingPrefix) {
			if state == stateInSection {
				current.Body = body.String()
				records = append(records, current)
				body.Reset()
			}
			current = parseHeading(line)
			state = stateInSection
			continue
		}
		if state == stateInSection {
			body.WriteString(line)
			body.WriteString("\n")
		}
	}

	if state == stateInSection {
		current.Body = body.String()
		records = append(records, current)
	}

	return records
}

// parseHeading splits a heading line into number and title. A heading with
// no colon has the whole remainder as its number and an empty title.
func parseHeading(line string) Record {
	rest := strings.TrimPrefix(line, HeadingPrefix)
	number, title, found := strings.Cut(rest, ":")
	if !found {
		return Record{Number: strings.TrimSpace(rest)}
	}
	return Record{
		Number: strings.TrimSpace(number),
		Title:  strings.TrimSpace(title),
	}
}
