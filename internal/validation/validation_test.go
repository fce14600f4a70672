package validation

import (
	"strings"
	"testing"
)

func TestSanitizeQuery(t *testing.T) {
	t.Run("passthrough", func(t *testing.T) {
		got, err := SanitizeQuery("dragons and swords")
		if err != nil {
			t.Fatalf("SanitizeQuery() error = %v", err)
		}
		if got != "dragons and swords" {
			t.Errorf("SanitizeQuery() = %q", got)
		}
	})

	t.Run("strips_special_characters", func(t *testing.T) {
		got, err := SanitizeQuery("drag*ns [and] $words")
		if err != nil {
			t.Fatalf("SanitizeQuery() error = %v", err)
		}
		if strings.ContainsAny(got, "*[]$") {
			t.Errorf("SanitizeQuery() = %q, special chars survived", got)
		}
	})

	t.Run("keeps_basic_punctuation", func(t *testing.T) {
		got, err := SanitizeQuery(`what if... "it moved"?`)
		if err != nil {
			t.Fatalf("SanitizeQuery() error = %v", err)
		}
		if got != `what if... "it moved"?` {
			t.Errorf("SanitizeQuery() = %q, punctuation mangled", got)
		}
	})

	t.Run("empty_rejected", func(t *testing.T) {
		if _, err := SanitizeQuery("   "); err == nil {
			t.Error("SanitizeQuery(blank) error = nil")
		}
	})

	t.Run("too_long_rejected", func(t *testing.T) {
		if _, err := SanitizeQuery(strings.Repeat("a", MaxQueryLength+1)); err == nil {
			t.Error("SanitizeQuery(overlong) error = nil")
		}
	})

	t.Run("only_stripped_chars_rejected", func(t *testing.T) {
		if _, err := SanitizeQuery("***"); err == nil {
			t.Error("SanitizeQuery(only specials) error = nil")
		}
	})
}

func TestLimit(t *testing.T) {
	for _, ok := range []int{1, 20, MaxLimit} {
		if err := Limit(ok); err != nil {
			t.Errorf("Limit(%d) error = %v, want nil", ok, err)
		}
	}
	for _, bad := range []int{0, -1, MaxLimit + 1} {
		if err := Limit(bad); err == nil {
			t.Errorf("Limit(%d) error = nil, want error", bad)
		}
	}
}

func TestThreshold(t *testing.T) {
	for _, ok := range []float64{0.0, 0.6, 1.0} {
		if err := Threshold(ok); err != nil {
			t.Errorf("Threshold(%v) error = %v, want nil", ok, err)
		}
	}
	for _, bad := range []float64{-0.1, 1.1} {
		if err := Threshold(bad); err == nil {
			t.Errorf("Threshold(%v) error = nil, want error", bad)
		}
	}
}

func TestBatchID(t *testing.T) {
	if err := BatchID("20240101-001"); err != nil {
		t.Errorf("BatchID(valid) error = %v", err)
	}
	for _, bad := range []string{"", "2024-01-01", "20240101-1", "20240101001", "abc"} {
		if err := BatchID(bad); err == nil {
			t.Errorf("BatchID(%q) error = nil, want error", bad)
		}
	}
}

func TestSlug(t *testing.T) {
	for _, ok := range []string{"keep-of-ash", "a", "story-2"} {
		if err := Slug(ok); err != nil {
			t.Errorf("Slug(%q) error = %v, want nil", ok, err)
		}
	}
	for _, bad := range []string{"", "-leading", "trailing-", "Upper", "no spaces", "double--hyphen"} {
		if err := Slug(bad); err == nil {
			t.Errorf("Slug(%q) error = nil, want error", bad)
		}
	}
}

func TestSearchInput(t *testing.T) {
	valid := SearchInput{Query: "dragons", Limit: 20, Threshold: 0.6}
	if err := valid.Validate(); err != nil {
		t.Errorf("valid input error = %v", err)
	}

	cases := []struct {
		name string
		in   SearchInput
	}{
		{"empty_query", SearchInput{Limit: 20}},
		{"zero_limit", SearchInput{Query: "q"}},
		{"negative_limit", SearchInput{Query: "q", Limit: -5}},
		{"threshold_above_one", SearchInput{Query: "q", Limit: 20, Threshold: 1.5}},
		{"overlong_genre", SearchInput{Query: "q", Limit: 20, Genre: strings.Repeat("g", MaxFilterLength+1)}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.in.Validate(); err == nil {
				t.Error("Validate() = nil, want error")
			}
		})
	}
}

func TestNewBatchInput(t *testing.T) {
	valid := NewBatchInput{Genre: "fantasy", Tropes: "dragons, swords", Model: "some-model", Count: 10}
	if err := valid.Validate(); err != nil {
		t.Errorf("valid input error = %v", err)
	}

	if err := (NewBatchInput{Tropes: "x", Count: 10}).Validate(); err == nil {
		t.Error("missing genre accepted")
	}
	if err := (NewBatchInput{Genre: "fantasy", Count: 0}).Validate(); err == nil {
		t.Error("zero count accepted")
	}
	if err := (NewBatchInput{Genre: "fantasy", Count: 500}).Validate(); err == nil {
		t.Error("oversized count accepted")
	}
}

func TestNewStoryInput(t *testing.T) {
	if err := (NewStoryInput{Title: "Keep of Ash", Genre: "fantasy"}).Validate(); err != nil {
		t.Errorf("valid input error = %v", err)
	}
	if err := (NewStoryInput{Genre: "fantasy"}).Validate(); err == nil {
		t.Error("missing title accepted")
	}
	if err := (NewStoryInput{Title: "t"}).Validate(); err == nil {
		t.Error("missing genre accepted")
	}
}
