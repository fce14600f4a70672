package library

import (
	"fmt"
	"strings"

	"github.com/aiwynns/ideafactory/internal/concept"
)

// StringList tolerates front-matter fields written either as a scalar
// ("fantasy") or a sequence ([fantasy, heist]). Hand-edited files mix both.
type StringList []string

// UnmarshalYAML accepts a scalar or a sequence of scalars.
func (s *StringList) UnmarshalYAML(unmarshal func(any) error) error {
	var single string
	if err := unmarshal(&single); err == nil {
		*s = splitCommaList(single)
		return nil
	}

	var many []string
	if err := unmarshal(&many); err != nil {
		return fmt.Errorf("expected string or string list: %w", err)
	}
	*s = many
	return nil
}

// String joins the list for display and CSV cells.
func (s StringList) String() string {
	return strings.Join(s, ", ")
}

// Contains reports a case-folded substring match against any element.
func (s StringList) Contains(needle string) bool {
	needle = strings.ToLower(needle)
	for _, v := range s {
		if strings.Contains(strings.ToLower(v), needle) {
			return true
		}
	}
	return false
}

func splitCommaList(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Batch is one concept batch file: front-matter metadata plus the extracted
// concept records.
type Batch struct {
	ID            string     `yaml:"batch_id" json:"batch_id"`
	DateGenerated string     `yaml:"date_generated" json:"date_generated"`
	Genre         StringList `yaml:"genre" json:"genre"`
	Tropes        StringList `yaml:"tropes" json:"tropes"`
	Count         int        `yaml:"count" json:"count"`
	Status        string     `yaml:"status" json:"status"`
	LLMModel      string     `yaml:"llm_model" json:"llm_model"`
	Notes         string     `yaml:"notes" json:"notes,omitempty"`

	// Location is the concepts subdirectory the file was found in.
	Location string `yaml:"-" json:"location"`
	// FilePath is the absolute path of the source file.
	FilePath string `yaml:"-" json:"file_path"`
	// Body is the markdown body below the front-matter.
	Body string `yaml:"-" json:"-"`
	// Concepts are the extracted numbered sections of Body.
	Concepts []concept.Record `yaml:"-" json:"-"`
}

// Concept returns the first record with the given number, or nil.
func (b *Batch) Concept(number string) *concept.Record {
	for i := range b.Concepts {
		if b.Concepts[i].Number == number {
			return &b.Concepts[i]
		}
	}
	return nil
}

// Story is one story development file.
type Story struct {
	ID           string     `yaml:"story_id" json:"story_id"`
	Title        string     `yaml:"title" json:"title"`
	Genre        StringList `yaml:"genre" json:"genre"`
	Subgenre     string     `yaml:"subgenre" json:"subgenre,omitempty"`
	Tropes       StringList `yaml:"tropes" json:"tropes"`
	Status       string     `yaml:"status" json:"status"`
	OriginBatch  string     `yaml:"origin_batch" json:"origin_batch,omitempty"`
	DateCreated  string     `yaml:"date_created" json:"date_created"`
	DateUpdated  string     `yaml:"date_updated" json:"date_updated"`
	TargetLength string     `yaml:"target_length" json:"target_length,omitempty"`

	// Name is the file stem, used as the story's lookup key.
	Name string `yaml:"-" json:"name"`
	// FilePath is the absolute path of the source file.
	FilePath string `yaml:"-" json:"file_path"`
	// Body is the markdown body below the front-matter.
	Body string `yaml:"-" json:"-"`
}
