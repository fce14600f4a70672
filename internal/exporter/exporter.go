// Package exporter serializes workspace metadata to interchange formats.
//
// Exports carry front-matter metadata only, never full markdown bodies, so
// the output stays small enough to diff and feed into spreadsheets.
package exporter

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v2"

	"github.com/aiwynns/ideafactory/internal/library"
)

// Format selects the export encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatCSV  Format = "csv"
	FormatHTML Format = "html"
)

// Kind selects which records to export.
type Kind string

const (
	KindBatches Kind = "batches"
	KindStories Kind = "stories"
	KindAll     Kind = "all"
)

// batchRow is the exported shape of a batch: metadata without body text.
type batchRow struct {
	BatchID       string `json:"batch_id" yaml:"batch_id"`
	DateGenerated string `json:"date_generated" yaml:"date_generated"`
	Genre         string `json:"genre" yaml:"genre"`
	Tropes        string `json:"tropes" yaml:"tropes"`
	Count         int    `json:"count" yaml:"count"`
	Status        string `json:"status" yaml:"status"`
	Location      string `json:"location" yaml:"location"`
	LLMModel      string `json:"llm_model" yaml:"llm_model"`
	FilePath      string `json:"file_path" yaml:"file_path"`
}

// storyRow is the exported shape of a story.
type storyRow struct {
	StoryID      string `json:"story_id" yaml:"story_id"`
	Title        string `json:"title" yaml:"title"`
	Genre        string `json:"genre" yaml:"genre"`
	Subgenre     string `json:"subgenre" yaml:"subgenre"`
	Tropes       string `json:"tropes" yaml:"tropes"`
	Status       string `json:"status" yaml:"status"`
	DateCreated  string `json:"date_created" yaml:"date_created"`
	TargetLength string `json:"target_length" yaml:"target_length"`
	FilePath     string `json:"file_path" yaml:"file_path"`
}

// document is the top-level export payload.
type document struct {
	Batches []batchRow `json:"batches,omitempty" yaml:"batches,omitempty"`
	Stories []storyRow `json:"stories,omitempty" yaml:"stories,omitempty"`
}

// Export writes the selected records to w in the given format.
func Export(w io.Writer, format Format, kind Kind, batches []library.Batch, stories []library.Story) error {
	doc := gather(kind, batches, stories)

	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	case FormatYAML:
		return yaml.NewEncoder(w).Encode(doc)
	case FormatCSV:
		return exportCSV(w, kind, doc)
	case FormatHTML:
		return exportHTML(w, doc)
	default:
		return fmt.Errorf("unknown export format: %s", format)
	}
}

func gather(kind Kind, batches []library.Batch, stories []library.Story) document {
	var doc document
	if kind == KindBatches || kind == KindAll {
		for _, b := range batches {
			doc.Batches = append(doc.Batches, batchRow{
				BatchID:       b.ID,
				DateGenerated: b.DateGenerated,
				Genre:         b.Genre.String(),
				Tropes:        b.Tropes.String(),
				Count:         b.Count,
				Status:        b.Status,
				Location:      b.Location,
				LLMModel:      b.LLMModel,
				FilePath:      b.FilePath,
			})
		}
	}
	if kind == KindStories || kind == KindAll {
		for _, s := range stories {
			doc.Stories = append(doc.Stories, storyRow{
				StoryID:      s.ID,
				Title:        s.Title,
				Genre:        s.Genre.String(),
				Subgenre:     s.Subgenre,
				Tropes:       s.Tropes.String(),
				Status:       s.Status,
				DateCreated:  s.DateCreated,
				TargetLength: s.TargetLength,
				FilePath:     s.FilePath,
			})
		}
	}
	return doc
}

// exportCSV writes one CSV table. A kind of "all" flattens both record
// types into a shared column set with a leading type column.
func exportCSV(w io.Writer, kind Kind, doc document) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	switch kind {
	case KindBatches:
		if err := cw.Write([]string{"batch_id", "date_generated", "genre", "tropes", "count", "status", "location", "llm_model"}); err != nil {
			return err
		}
		for _, b := range doc.Batches {
			if err := cw.Write([]string{b.BatchID, b.DateGenerated, b.Genre, b.Tropes, fmt.Sprint(b.Count), b.Status, b.Location, b.LLMModel}); err != nil {
				return err
			}
		}
	case KindStories:
		if err := cw.Write([]string{"story_id", "title", "genre", "subgenre", "tropes", "status", "date_created", "target_length"}); err != nil {
			return err
		}
		for _, s := range doc.Stories {
			if err := cw.Write([]string{s.StoryID, s.Title, s.Genre, s.Subgenre, s.Tropes, s.Status, s.DateCreated, s.TargetLength}); err != nil {
				return err
			}
		}
	default:
		if err := cw.Write([]string{"type", "id", "title", "genre", "date", "status", "count_or_length"}); err != nil {
			return err
		}
		for _, b := range doc.Batches {
			if err := cw.Write([]string{"batch", b.BatchID, "Batch " + b.BatchID, b.Genre, b.DateGenerated, b.Status, fmt.Sprint(b.Count)}); err != nil {
				return err
			}
		}
		for _, s := range doc.Stories {
			if err := cw.Write([]string{"story", s.StoryID, s.Title, s.Genre, s.DateCreated, s.Status, s.TargetLength}); err != nil {
				return err
			}
		}
	}

	cw.Flush()
	return cw.Error()
}

// ParseFormat converts a CLI flag value into a Format.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatJSON, FormatYAML, FormatCSV, FormatHTML:
		return Format(s), nil
	default:
		return "", fmt.Errorf("unknown export format %q (want json, yaml, csv, or html)", s)
	}
}

// ParseKind converts a CLI flag value into a Kind.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindBatches, KindStories, KindAll:
		return Kind(s), nil
	default:
		return "", fmt.Errorf("unknown export type %q (want batches, stories, or all)", s)
	}
}
