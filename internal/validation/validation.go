// Package validation checks user-supplied inputs at the CLI boundary.
//
// The match and similarity packages are total over their input domain and
// never validate; anything worth rejecting is rejected here, loudly,
// before it reaches them.
package validation

import (
	"fmt"
	"regexp"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const (
	// MaxQueryLength caps search query size.
	MaxQueryLength = 1000
	// MaxFilterLength caps genre/trope/status filter values.
	MaxFilterLength = 100
	// MaxLimit caps result-set limits.
	MaxLimit = 1000
)

var (
	batchIDPattern = regexp.MustCompile(`^\d{8}-\d{3}$`)
	slugPattern    = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)
	// queryStrip removes characters that are neither word characters,
	// whitespace, nor basic punctuation.
	queryStrip = regexp.MustCompile(`[^\w\s\-.,!?'"]+`)
)

// SearchInput is a validated search request.
type SearchInput struct {
	Query     string
	Genre     string
	Trope     string
	Status    string
	Limit     int
	Threshold float64
}

// Validate implements the ozzo validation contract for SearchInput.
func (in SearchInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.Query, validation.Required.Error("search query cannot be empty"), validation.Length(1, MaxQueryLength)),
		validation.Field(&in.Genre, validation.Length(0, MaxFilterLength)),
		validation.Field(&in.Trope, validation.Length(0, MaxFilterLength)),
		validation.Field(&in.Status, validation.Length(0, MaxFilterLength)),
		validation.Field(&in.Limit, validation.Required.Error("limit must be at least 1"), validation.Min(1), validation.Max(MaxLimit)),
		validation.Field(&in.Threshold, validation.Min(0.0), validation.Max(1.0)),
	)
}

// SanitizeQuery trims a query and strips characters that interfere with
// matching. Returns an error when nothing usable remains.
func SanitizeQuery(query string) (string, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return "", fmt.Errorf("search query cannot be empty")
	}
	if len(query) > MaxQueryLength {
		return "", fmt.Errorf("search query must be at most %d characters, got %d", MaxQueryLength, len(query))
	}
	query = queryStrip.ReplaceAllString(query, "")
	if strings.TrimSpace(query) == "" {
		return "", fmt.Errorf("search query contains no searchable characters")
	}
	return query, nil
}

// Limit validates a result-set limit.
func Limit(limit int) error {
	return validation.Validate(limit,
		validation.Required.Error("limit is required"),
		validation.Min(1),
		validation.Max(MaxLimit),
	)
}

// Threshold validates a similarity threshold.
func Threshold(t float64) error {
	return validation.Validate(t,
		validation.Min(0.0),
		validation.Max(1.0),
	)
}

// BatchID validates the YYYYMMDD-NNN batch id format.
func BatchID(id string) error {
	return validation.Validate(id,
		validation.Required.Error("batch id is required"),
		validation.Match(batchIDPattern).Error("batch id must match YYYYMMDD-NNN"),
	)
}

// Slug validates a story file slug: lowercase letters, digits, and single
// hyphens, no leading or trailing hyphen.
func Slug(slug string) error {
	return validation.Validate(slug,
		validation.Required.Error("slug is required"),
		validation.Length(1, 200),
		validation.Match(slugPattern).Error("slug must contain only lowercase letters, numbers, and hyphens"),
	)
}

// NewBatchInput is a validated new-batch request.
type NewBatchInput struct {
	Genre  string
	Tropes string
	Model  string
	Count  int
}

// Validate implements the ozzo validation contract for NewBatchInput.
func (in NewBatchInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.Genre, validation.Required, validation.Length(1, MaxFilterLength)),
		validation.Field(&in.Tropes, validation.Length(0, 500)),
		validation.Field(&in.Model, validation.Length(0, MaxFilterLength)),
		validation.Field(&in.Count, validation.Required.Error("count must be at least 1"), validation.Min(1), validation.Max(100)),
	)
}

// NewStoryInput is a validated new-story request.
type NewStoryInput struct {
	Title string
	Genre string
}

// Validate implements the ozzo validation contract for NewStoryInput.
func (in NewStoryInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.Title, validation.Required.Error("story title is required"), validation.Length(1, 200)),
		validation.Field(&in.Genre, validation.Required, validation.Length(1, MaxFilterLength)),
	)
}
