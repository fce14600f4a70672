// Package similarity scores approximate text similarity for fuzzy search
// and near-duplicate detection.
//
// The blended metric combines an order-insensitive token-set ratio with a
// best-window partial ratio. Both sub-metrics are symmetric in their
// arguments and normalized to [0,1], so the blend is too.
package similarity

import (
	"sort"
	"strings"
)

// Blend weights. Token overlap dominates so that shared vocabulary counts
// more than an incidental contiguous substring. Tuned empirically; exposed
// only for documentation, not configuration.
const (
	tokenSetWeight = 0.7
	partialWeight  = 0.3
)

// Score returns the blended similarity of a and b in [0,1]. Comparison is
// case-insensitive. Score(x, x) == 1 for any x, Score("", "") == 1, and a
// single empty input scores 0. Score(a, b) == Score(b, a) exactly.
func Score(a, b string) float64 {
	a = strings.ToLower(a)
	b = strings.ToLower(b)

	if a == "" && b == "" {
		return 1.0
	}
	if a == "" || b == "" {
		return 0.0
	}

	return tokenSetWeight*tokenSetRatio(a, b) + partialWeight*partialRatio(a, b)
}

// TokenSetRatio returns the order-insensitive token overlap of a and b in
// [0,1], case-folded. A text whose tokens are a subset of the other's
// scores 1.0 regardless of length difference.
func TokenSetRatio(a, b string) float64 {
	a = strings.ToLower(a)
	b = strings.ToLower(b)
	if a == "" && b == "" {
		return 1.0
	}
	if a == "" || b == "" {
		return 0.0
	}
	return tokenSetRatio(a, b)
}

// PartialRatio returns the best contiguous-alignment ratio of a and b in
// [0,1], case-folded: the shorter string is compared against every
// equal-length window of the longer and the best window wins.
func PartialRatio(a, b string) float64 {
	a = strings.ToLower(a)
	b = strings.ToLower(b)
	if a == "" && b == "" {
		return 1.0
	}
	if a == "" || b == "" {
		return 0.0
	}
	return partialRatio(a, b)
}

// tokenSetRatio compares the sorted unique token sets of both inputs. With
// t0 the joined intersection and t1/t2 the intersection plus each side's
// leftover tokens, the result is the best indel ratio among the three
// pairings. Construction is symmetric: swapping the arguments swaps t1 and
// t2, and the max over pairings is unchanged.
func tokenSetRatio(a, b string) float64 {
	setA := tokenSet(a)
	setB := tokenSet(b)

	var common, onlyA, onlyB []string
	for _, tok := range setA {
		if contains(setB, tok) {
			common = append(common, tok)
		} else {
			onlyA = append(onlyA, tok)
		}
	}
	for _, tok := range setB {
		if !contains(setA, tok) {
			onlyB = append(onlyB, tok)
		}
	}

	t0 := strings.Join(common, " ")
	t1 := joinNonEmpty(t0, strings.Join(onlyA, " "))
	t2 := joinNonEmpty(t0, strings.Join(onlyB, " "))

	best := ratio([]rune(t1), []rune(t2))
	if len(common) > 0 {
		// Comparing the intersection against each full side rewards
		// containment: a subset text scores 1.0 against its superset.
		if r := ratio([]rune(t0), []rune(t1)); r > best {
			best = r
		}
		if r := ratio([]rune(t0), []rune(t2)); r > best {
			best = r
		}
	}
	return best
}

// partialRatio slides the shorter input across the longer one and returns
// the best window ratio. The shorter/longer split depends only on rune
// length, never argument order, so the result is symmetric.
func partialRatio(a, b string) float64 {
	shorter := []rune(a)
	longer := []rune(b)
	if len(shorter) > len(longer) {
		shorter, longer = longer, shorter
	}
	if len(shorter) == 0 {
		if len(longer) == 0 {
			return 1.0
		}
		return 0.0
	}

	best := 0.0
	for start := 0; start+len(shorter) <= len(longer); start++ {
		window := longer[start : start+len(shorter)]
		if r := ratio(shorter, window); r > best {
			best = r
			if best == 1.0 {
				break
			}
		}
	}
	return best
}

// ratio is the normalized indel similarity of two rune slices:
// 2*LCS / (len(a)+len(b)). Two empty inputs are identical by definition.
func ratio(a, b []rune) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 1.0
	}
	if len(a) == 0 || len(b) == 0 {
		return 0.0
	}
	lcs := lcsLength(a, b)
	return 2.0 * float64(lcs) / float64(len(a)+len(b))
}

// lcsLength computes longest-common-subsequence length with a rolling
// single-row table.
func lcsLength(a, b []rune) int {
	if len(b) < len(a) {
		a, b = b, a
	}
	prev := make([]int, len(a)+1)
	curr := make([]int, len(a)+1)

	for i := 1; i <= len(b); i++ {
		for j := 1; j <= len(a); j++ {
			if b[i-1] == a[j-1] {
				curr[j] = prev[j-1] + 1
			} else if prev[j] >= curr[j-1] {
				curr[j] = prev[j]
			} else {
				curr[j] = curr[j-1]
			}
		}
		prev, curr = curr, prev
	}
	return prev[len(a)]
}

// tokenSet returns the sorted unique whitespace-delimited tokens of s.
func tokenSet(s string) []string {
	fields := strings.Fields(s)
	seen := make(map[string]struct{}, len(fields))
	out := fields[:0]
	for _, f := range fields {
		if _, ok := seen[f]; ok {
			continue
		}
		seen[f] = struct{}{}
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

func contains(sorted []string, tok string) bool {
	i := sort.SearchStrings(sorted, tok)
	return i < len(sorted) && sorted[i] == tok
}

func joinNonEmpty(a, b string) string {
	switch {
	case a == "":
		return b
	case b == "":
		return a
	default:
		return a + " " + b
	}
}
