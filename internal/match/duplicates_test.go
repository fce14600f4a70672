package match

import (
	"context"
	"reflect"
	"testing"
)

func TestFindDuplicates(t *testing.T) {
	t.Run("cross_group_identical_reported", func(t *testing.T) {
		items := []Item{
			{Group: "g1", Number: "1", Text: "Dragons and magic swords"},
			{Group: "g2", Number: "5", Text: "Magic swords and dragons"},
		}
		got := FindDuplicates(items, 0.8)
		if len(got) != 1 {
			t.Fatalf("FindDuplicates() returned %d pairs, want 1", len(got))
		}
		if got[0].Score < 0.8 {
			t.Errorf("pair score = %v, want >= 0.8", got[0].Score)
		}
		if got[0].A.Group != "g1" || got[0].B.Group != "g2" {
			t.Errorf("pair = (%s, %s), want enumeration order (g1, g2)", got[0].A.Group, got[0].B.Group)
		}
	})

	t.Run("same_group_never_paired", func(t *testing.T) {
		items := []Item{
			{Group: "g1", Number: "1", Text: "identical concept text"},
			{Group: "g1", Number: "2", Text: "identical concept text"},
		}
		if got := FindDuplicates(items, 0.0); len(got) != 0 {
			t.Errorf("same-group pair reported: %#v", got)
		}
	})

	t.Run("identical_cross_group_scores_one", func(t *testing.T) {
		items := []Item{
			{Group: "g1", Text: "identical concept text"},
			{Group: "g2", Text: "identical concept text"},
		}
		got := FindDuplicates(items, 0.8)
		if len(got) != 1 || got[0].Score != 1.0 {
			t.Fatalf("FindDuplicates() = %#v, want one pair with score 1.0", got)
		}
	})

	t.Run("threshold_filters", func(t *testing.T) {
		items := []Item{
			{Group: "g1", Text: "completely unrelated alpha"},
			{Group: "g2", Text: "different words entirely zzz"},
		}
		if got := FindDuplicates(items, 0.8); len(got) != 0 {
			t.Errorf("unrelated texts reported as duplicates: %#v", got)
		}
	})

	t.Run("ties_keep_pair_order", func(t *testing.T) {
		items := []Item{
			{Group: "g1", Number: "1", Text: "same text"},
			{Group: "g2", Number: "1", Text: "same text"},
			{Group: "g3", Number: "1", Text: "same text"},
		}
		got := FindDuplicates(items, 0.5)
		// Pairs enumerate as (0,1), (0,2), (1,2); all score 1.0.
		wantOrder := [][2]string{{"g1", "g2"}, {"g1", "g3"}, {"g2", "g3"}}
		if len(got) != 3 {
			t.Fatalf("FindDuplicates() returned %d pairs, want 3", len(got))
		}
		for i, p := range got {
			if p.A.Group != wantOrder[i][0] || p.B.Group != wantOrder[i][1] {
				t.Errorf("pair %d = (%s, %s), want (%s, %s)", i, p.A.Group, p.B.Group, wantOrder[i][0], wantOrder[i][1])
			}
		}
	})

	t.Run("empty_collection", func(t *testing.T) {
		if got := FindDuplicates(nil, 0.8); len(got) != 0 {
			t.Errorf("FindDuplicates(nil) = %#v, want empty", got)
		}
	})
}

func TestFindDuplicatesParallel(t *testing.T) {
	items := []Item{
		{Group: "g1", Number: "1", Text: "Dragons and magic swords in an old keep"},
		{Group: "g1", Number: "2", Text: "A heist aboard a moving train"},
		{Group: "g2", Number: "1", Text: "Magic swords and dragons in an old keep"},
		{Group: "g2", Number: "2", Text: "Deep sea mining colony goes dark"},
		{Group: "g3", Number: "1", Text: "The keep of the old dragons with magic swords"},
	}

	t.Run("matches_serial_output", func(t *testing.T) {
		want := FindDuplicates(items, 0.5)
		for _, workers := range []int{1, 2, 8} {
			got, err := FindDuplicatesParallel(context.Background(), items, 0.5, workers)
			if err != nil {
				t.Fatalf("FindDuplicatesParallel(workers=%d) error = %v", workers, err)
			}
			if !reflect.DeepEqual(got, want) {
				t.Errorf("workers=%d: parallel output differs from serial\n got: %#v\nwant: %#v", workers, got, want)
			}
		}
	})

	t.Run("cancelled_context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		if _, err := FindDuplicatesParallel(ctx, items, 0.5, 2); err == nil {
			t.Error("FindDuplicatesParallel() with cancelled context returned nil error")
		}
	})

	t.Run("default_worker_count", func(t *testing.T) {
		got, err := FindDuplicatesParallel(context.Background(), items, 0.5, 0)
		if err != nil {
			t.Fatalf("FindDuplicatesParallel() error = %v", err)
		}
		if want := FindDuplicates(items, 0.5); !reflect.DeepEqual(got, want) {
			t.Errorf("default workers output differs from serial")
		}
	})
}

func TestFindTitleCollisions(t *testing.T) {
	t.Run("cross_group_collision", func(t *testing.T) {
		items := []Item{
			{Group: "g1", Title: "The Last Map"},
			{Group: "g2", Title: "the last map"},
			{Group: "g3", Title: "Unique Title"},
		}
		got := FindTitleCollisions(items)
		if len(got) != 1 {
			t.Fatalf("FindTitleCollisions() = %#v, want one collision", got)
		}
		if got[0].Title != "the last map" || len(got[0].Groups) != 2 {
			t.Errorf("collision = %+v, want folded title across 2 groups", got[0])
		}
	})

	t.Run("same_group_repeat_reported", func(t *testing.T) {
		items := []Item{
			{Group: "g1", Title: "Echo"},
			{Group: "g1", Title: "Echo"},
		}
		got := FindTitleCollisions(items)
		if len(got) != 1 {
			t.Fatalf("FindTitleCollisions() = %#v, want one collision", got)
		}
		if got[0].Title != "echo" || len(got[0].Groups) != 2 {
			t.Errorf("collision = %+v, want echo with both occurrences", got[0])
		}
		if got[0].Groups[0] != "g1" || got[0].Groups[1] != "g1" {
			t.Errorf("Groups = %v, want g1 listed twice", got[0].Groups)
		}
	})

	t.Run("single_occurrence_not_reported", func(t *testing.T) {
		items := []Item{
			{Group: "g1", Title: "Echo"},
			{Group: "g2", Title: "Delta"},
		}
		if got := FindTitleCollisions(items); len(got) != 0 {
			t.Errorf("unique titles reported: %#v", got)
		}
	})

	t.Run("empty_titles_skipped", func(t *testing.T) {
		items := []Item{
			{Group: "g1", Title: ""},
			{Group: "g2", Title: "  "},
		}
		if got := FindTitleCollisions(items); len(got) != 0 {
			t.Errorf("empty titles reported: %#v", got)
		}
	})

	t.Run("sorted_by_occurrences", func(t *testing.T) {
		items := []Item{
			{Group: "g1", Title: "A"},
			{Group: "g2", Title: "A"},
			{Group: "g1", Title: "B"},
			{Group: "g2", Title: "B"},
			{Group: "g3", Title: "B"},
		}
		got := FindTitleCollisions(items)
		if len(got) != 2 || got[0].Title != "b" {
			t.Errorf("collisions = %#v, want most occurrences first", got)
		}
	})
}
