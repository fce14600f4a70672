package concept

import (
	"reflect"
	"testing"
)

func TestExtract(t *testing.T) {
	t.Run("two_sections", func(t *testing.T) {
		got := Extract("## Concept 1: A\nline1\n## Concept 2: B\nline2\n")
		want := []Record{
			{Number: "1", Title: "A", Body: "line1\n"},
			{Number: "2", Title: "B", Body: "line2\n"},
		}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("Extract() = %#v, want %#v", got, want)
		}
	})

	t.Run("no_headings", func(t *testing.T) {
		got := Extract("just text, no headings")
		if len(got) != 0 {
			t.Errorf("Extract() = %#v, want empty", got)
		}
	})

	t.Run("empty_input", func(t *testing.T) {
		if got := Extract(""); len(got) != 0 {
			t.Errorf("Extract(\"\") = %#v, want empty", got)
		}
	})

	t.Run("preamble_discarded", func(t *testing.T) {
		got := Extract("intro line\nmore intro\n## Concept 1: Start\nbody\n")
		if len(got) != 1 {
			t.Fatalf("Extract() returned %d records, want 1", len(got))
		}
		if got[0].Body != "body\n" {
			t.Errorf("Body = %q, want %q", got[0].Body, "body\n")
		}
	})

	t.Run("heading_without_colon", func(t *testing.T) {
		got := Extract("## Concept 7\nbody\n")
		if len(got) != 1 {
			t.Fatalf("Extract() returned %d records, want 1", len(got))
		}
		if got[0].Number != "7" || got[0].Title != "" {
			t.Errorf("got number=%q title=%q, want number=%q empty title", got[0].Number, got[0].Title, "7")
		}
	})

	t.Run("consecutive_headings", func(t *testing.T) {
		got := Extract("## Concept 1: A\n## Concept 2: B\nbody\n")
		if len(got) != 2 {
			t.Fatalf("Extract() returned %d records, want 2", len(got))
		}
		if got[0].Body != "" {
			t.Errorf("first Body = %q, want empty", got[0].Body)
		}
		if got[1].Body != "body\n" {
			t.Errorf("second Body = %q, want %q", got[1].Body, "body\n")
		}
	})

	t.Run("duplicate_numbers_kept_in_order", func(t *testing.T) {
		got := Extract("## Concept 3: first\na\n## Concept 3: second\nb\n")
		if len(got) != 2 {
			t.Fatalf("Extract() returned %d records, want 2", len(got))
		}
		if got[0].Title != "first" || got[1].Title != "second" {
			t.Errorf("titles = %q, %q; want encounter order preserved", got[0].Title, got[1].Title)
		}
	})

	t.Run("title_with_extra_colons", func(t *testing.T) {
		got := Extract("## Concept 2: Title: with colon\n")
		if len(got) != 1 {
			t.Fatalf("Extract() returned %d records, want 1", len(got))
		}
		if got[0].Title != "Title: with colon" {
			t.Errorf("Title = %q, want split on first colon only", got[0].Title)
		}
	})

	t.Run("order_follows_source", func(t *testing.T) {
		got := Extract("## Concept 9: z\n\n## Concept 1: a\n\n## Concept 5: m\n")
		numbers := []string{got[0].Number, got[1].Number, got[2].Number}
		want := []string{"9", "1", "5"}
		if !reflect.DeepEqual(numbers, want) {
			t.Errorf("numbers = %v, want source order %v", numbers, want)
		}
	})

	t.Run("no_trailing_newline", func(t *testing.T) {
		got := Extract("## Concept 1: A\nline1")
		if len(got) != 1 {
			t.Fatalf("Extract() returned %d records, want 1", len(got))
		}
		if got[0].Body != "line1\n" {
			t.Errorf("Body = %q, want %q", got[0].Body, "line1\n")
		}
	})
}
