package similarity

import "testing"

func TestScoreIdentity(t *testing.T) {
	for _, text := range []string{
		"x",
		"Dragons and magic swords",
		"a longer body of text\nwith line breaks and  spacing",
	} {
		if got := Score(text, text); got != 1.0 {
			t.Errorf("Score(%q, same) = %v, want 1.0", text, got)
		}
	}
}

func TestScoreDegenerate(t *testing.T) {
	if got := Score("", ""); got != 1.0 {
		t.Errorf("Score(empty, empty) = %v, want 1.0", got)
	}
	if got := Score("", "nonempty"); got != 0.0 {
		t.Errorf("Score(empty, nonempty) = %v, want 0.0", got)
	}
	if got := Score("nonempty", ""); got != 0.0 {
		t.Errorf("Score(nonempty, empty) = %v, want 0.0", got)
	}
}

func TestScoreSymmetry(t *testing.T) {
	pairs := [][2]string{
		{"dragons and magic swords", "magic swords and dragons"},
		{"a knight's tale", "the tale of a knight errant"},
		{"short", "a much longer and quite different text entirely"},
		{"", "something"},
		{"punctuation, splits. tokens!", "punctuation splits tokens"},
	}
	for _, p := range pairs {
		ab := Score(p[0], p[1])
		ba := Score(p[1], p[0])
		if ab != ba {
			t.Errorf("Score(%q, %q) = %v but reversed = %v", p[0], p[1], ab, ba)
		}
	}
}

func TestScoreCaseInsensitive(t *testing.T) {
	if got := Score("Dragons And Magic", "dragons and magic"); got != 1.0 {
		t.Errorf("case-folded identical texts scored %v, want 1.0", got)
	}
}

func TestScoreReorderedTokens(t *testing.T) {
	got := Score("Dragons and magic swords", "Magic swords and dragons")
	if got < 0.8 {
		t.Errorf("reordered identical token sets scored %v, want >= 0.8", got)
	}
}

func TestScoreRange(t *testing.T) {
	pairs := [][2]string{
		{"alpha beta gamma", "delta epsilon"},
		{"the quick brown fox", "the quick brown fox jumps over the lazy dog"},
		{"abc", "xyz"},
	}
	for _, p := range pairs {
		got := Score(p[0], p[1])
		if got < 0.0 || got > 1.0 {
			t.Errorf("Score(%q, %q) = %v, out of [0,1]", p[0], p[1], got)
		}
	}
}

func TestTokenSetRatio(t *testing.T) {
	t.Run("subset_scores_full", func(t *testing.T) {
		got := TokenSetRatio("magic swords", "a story about magic swords and a dragon")
		if got != 1.0 {
			t.Errorf("TokenSetRatio(subset, superset) = %v, want 1.0", got)
		}
	})

	t.Run("order_irrelevant", func(t *testing.T) {
		if got := TokenSetRatio("b a c", "c b a"); got != 1.0 {
			t.Errorf("TokenSetRatio reordered = %v, want 1.0", got)
		}
	})

	t.Run("duplicates_collapsed", func(t *testing.T) {
		if got := TokenSetRatio("go go go", "go"); got != 1.0 {
			t.Errorf("TokenSetRatio duplicate tokens = %v, want 1.0", got)
		}
	})

	t.Run("disjoint_tokens_low", func(t *testing.T) {
		got := TokenSetRatio("aaa bbb", "xyz qrs")
		if got > 0.5 {
			t.Errorf("TokenSetRatio disjoint = %v, want low", got)
		}
	})

	t.Run("empty", func(t *testing.T) {
		if got := TokenSetRatio("", ""); got != 1.0 {
			t.Errorf("TokenSetRatio empty/empty = %v, want 1.0", got)
		}
		if got := TokenSetRatio("", "words"); got != 0.0 {
			t.Errorf("TokenSetRatio empty/nonempty = %v, want 0.0", got)
		}
	})
}

func TestPartialRatio(t *testing.T) {
	t.Run("contained_substring", func(t *testing.T) {
		got := PartialRatio("magic swords", "the old magic swords of the keep")
		if got != 1.0 {
			t.Errorf("PartialRatio(substring, container) = %v, want 1.0", got)
		}
	})

	t.Run("near_substring", func(t *testing.T) {
		got := PartialRatio("magic sword", "the magic swords of the keep")
		if got < 0.9 {
			t.Errorf("PartialRatio near-substring = %v, want >= 0.9", got)
		}
	})

	t.Run("symmetric", func(t *testing.T) {
		a, b := "short one", "a considerably longer other text"
		if PartialRatio(a, b) != PartialRatio(b, a) {
			t.Errorf("PartialRatio not symmetric for (%q, %q)", a, b)
		}
	})

	t.Run("empty", func(t *testing.T) {
		if got := PartialRatio("", ""); got != 1.0 {
			t.Errorf("PartialRatio empty/empty = %v, want 1.0", got)
		}
		if got := PartialRatio("x", ""); got != 0.0 {
			t.Errorf("PartialRatio nonempty/empty = %v, want 0.0", got)
		}
	})
}

func TestRatio(t *testing.T) {
	cases := []struct {
		a, b string
		want float64
	}{
		{"abcd", "abcd", 1.0},
		{"abcd", "", 0.0},
		{"", "", 1.0},
		{"abcd", "abed", 0.75}, // lcs "abd" -> 2*3/8
	}
	for _, tc := range cases {
		if got := ratio([]rune(tc.a), []rune(tc.b)); got != tc.want {
			t.Errorf("ratio(%q, %q) = %v, want %v", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestLCSLength(t *testing.T) {
	cases := []struct {
		a, b string
		want int
	}{
		{"abcde", "ace", 3},
		{"abc", "def", 0},
		{"", "abc", 0},
		{"same", "same", 4},
	}
	for _, tc := range cases {
		if got := lcsLength([]rune(tc.a), []rune(tc.b)); got != tc.want {
			t.Errorf("lcsLength(%q, %q) = %d, want %d", tc.a, tc.b, got, tc.want)
		}
	}
}
