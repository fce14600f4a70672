package exporter

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"gopkg.in/yaml.v2"

	"github.com/aiwynns/ideafactory/internal/library"
)

func testData() ([]library.Batch, []library.Story) {
	batches := []library.Batch{
		{
			ID:            "20240101-001",
			DateGenerated: "2024-01-01",
			Genre:         library.StringList{"fantasy"},
			Tropes:        library.StringList{"dragons", "swords"},
			Count:         10,
			Status:        "new",
			Location:      "generated",
			LLMModel:      "some-model",
			FilePath:      "/ws/concepts/generated/20240101-001.md",
			Body:          "body text should not be exported",
		},
	}
	stories := []library.Story{
		{
			ID:          "keep-of-ash-1a2b3c4d",
			Title:       "Keep of Ash",
			Genre:       library.StringList{"fantasy"},
			Tropes:      library.StringList{"siege"},
			Status:      "developing",
			DateCreated: "2024-01-02",
			FilePath:    "/ws/stories/keep-of-ash.md",
			Body:        "story body should not be exported",
		},
	}
	return batches, stories
}

func TestExportJSON(t *testing.T) {
	batches, stories := testData()
	var buf bytes.Buffer

	if err := Export(&buf, FormatJSON, KindAll, batches, stories); err != nil {
		t.Fatalf("Export(json) error = %v", err)
	}

	var doc struct {
		Batches []map[string]any `json:"batches"`
		Stories []map[string]any `json:"stories"`
	}
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(doc.Batches) != 1 || len(doc.Stories) != 1 {
		t.Fatalf("exported %d batches, %d stories; want 1 each", len(doc.Batches), len(doc.Stories))
	}
	if doc.Batches[0]["batch_id"] != "20240101-001" {
		t.Errorf("batch_id = %v", doc.Batches[0]["batch_id"])
	}
	if strings.Contains(buf.String(), "should not be exported") {
		t.Error("export leaked markdown body text")
	}
}

func TestExportYAML(t *testing.T) {
	batches, stories := testData()
	var buf bytes.Buffer

	if err := Export(&buf, FormatYAML, KindBatches, batches, stories); err != nil {
		t.Fatalf("Export(yaml) error = %v", err)
	}

	var doc struct {
		Batches []map[string]any `yaml:"batches"`
		Stories []map[string]any `yaml:"stories"`
	}
	if err := yaml.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("output is not valid YAML: %v", err)
	}
	if len(doc.Batches) != 1 {
		t.Errorf("exported %d batches, want 1", len(doc.Batches))
	}
	if len(doc.Stories) != 0 {
		t.Errorf("kind=batches exported %d stories, want 0", len(doc.Stories))
	}
}

func TestExportCSV(t *testing.T) {
	batches, stories := testData()

	t.Run("batches", func(t *testing.T) {
		var buf bytes.Buffer
		if err := Export(&buf, FormatCSV, KindBatches, batches, stories); err != nil {
			t.Fatalf("Export(csv) error = %v", err)
		}

		rows, err := csv.NewReader(&buf).ReadAll()
		if err != nil {
			t.Fatalf("output is not valid CSV: %v", err)
		}
		if len(rows) != 2 {
			t.Fatalf("CSV has %d rows, want header + 1", len(rows))
		}
		if rows[0][0] != "batch_id" {
			t.Errorf("header = %v", rows[0])
		}
		if rows[1][0] != "20240101-001" || rows[1][3] != "dragons, swords" {
			t.Errorf("row = %v", rows[1])
		}
	})

	t.Run("all_combined", func(t *testing.T) {
		var buf bytes.Buffer
		if err := Export(&buf, FormatCSV, KindAll, batches, stories); err != nil {
			t.Fatalf("Export(csv all) error = %v", err)
		}

		rows, err := csv.NewReader(&buf).ReadAll()
		if err != nil {
			t.Fatalf("output is not valid CSV: %v", err)
		}
		if len(rows) != 3 {
			t.Fatalf("CSV has %d rows, want header + 2", len(rows))
		}
		if rows[1][0] != "batch" || rows[2][0] != "story" {
			t.Errorf("type column = %q, %q", rows[1][0], rows[2][0])
		}
	})
}

func TestExportHTML(t *testing.T) {
	batches, stories := testData()
	var buf bytes.Buffer

	if err := Export(&buf, FormatHTML, KindAll, batches, stories); err != nil {
		t.Fatalf("Export(html) error = %v", err)
	}

	out := buf.String()
	for _, want := range []string{"<!DOCTYPE html>", "<table>", "20240101-001", "Keep of Ash", "</html>"} {
		if !strings.Contains(out, want) {
			t.Errorf("HTML output missing %q", want)
		}
	}
}

func TestExportUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	if err := Export(&buf, Format("xml"), KindAll, nil, nil); err == nil {
		t.Error("Export(xml) error = nil, want error")
	}
}

func TestParseFlags(t *testing.T) {
	if _, err := ParseFormat("json"); err != nil {
		t.Errorf("ParseFormat(json) error = %v", err)
	}
	if _, err := ParseFormat("xml"); err == nil {
		t.Error("ParseFormat(xml) error = nil")
	}
	if _, err := ParseKind("all"); err != nil {
		t.Errorf("ParseKind(all) error = %v", err)
	}
	if _, err := ParseKind("everything"); err == nil {
		t.Error("ParseKind(everything) error = nil")
	}
}
