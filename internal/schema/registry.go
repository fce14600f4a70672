// Package schema validates markdown front matter against embedded JSON
// schemas.
package schema

import (
	"bytes"
	"embed"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed schemas/*.schema.json
var schemaFS embed.FS

// Kind identifies which document schema applies.
type Kind string

const (
	KindBatch Kind = "batch"
	KindStory Kind = "story"
)

// Validator holds compiled schemas for every document kind.
type Validator struct {
	schemas map[Kind]*jsonschema.Schema
}

// NewValidator compiles the embedded schemas. Compilation failure means a
// broken embedded file and is a programming error, but it is surfaced as
// an error so callers can report it cleanly.
func NewValidator() (*Validator, error) {
	compiler := jsonschema.NewCompiler()

	kinds := []Kind{KindBatch, KindStory}
	compiled := make(map[Kind]*jsonschema.Schema, len(kinds))
	for _, kind := range kinds {
		name := fmt.Sprintf("schemas/%s.schema.json", kind)
		data, err := schemaFS.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("failed to read schema %s: %w", kind, err)
		}
		if err := compiler.AddResource(name, bytes.NewReader(data)); err != nil {
			return nil, fmt.Errorf("failed to add schema %s: %w", kind, err)
		}
		sch, err := compiler.Compile(name)
		if err != nil {
			return nil, fmt.Errorf("failed to compile schema %s: %w", kind, err)
		}
		compiled[kind] = sch
	}

	return &Validator{schemas: compiled}, nil
}

// Validate checks front matter against the schema for kind. The input is
// the decoded YAML mapping from a document's front matter.
func (v *Validator) Validate(kind Kind, frontMatter map[string]any) error {
	sch, ok := v.schemas[kind]
	if !ok {
		return fmt.Errorf("unknown document kind %q", kind)
	}
	if err := sch.Validate(normalize(frontMatter)); err != nil {
		return fmt.Errorf("%s front matter invalid: %w", kind, err)
	}
	return nil
}

// normalize converts YAML-decoded values into the shapes the JSON schema
// validator expects. yaml.v2 produces map[interface{}]interface{} for
// nested mappings and int for numbers, neither of which the validator
// accepts directly.
func normalize(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = normalize(item)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[fmt.Sprintf("%v", k)] = normalize(item)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = normalize(item)
		}
		return out
	case int:
		return float64(val)
	case int64:
		return float64(val)
	default:
		return val
	}
}
