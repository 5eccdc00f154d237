// Package suggest ranks candidate names by similarity to a mistyped input,
// used to offer "did you mean" hints for unknown commands.
package suggest

import (
	"cmp"
	"slices"
	"strings"
)

// threshold is the minimum similarity score a candidate needs to be offered
// as a hint. Candidates at or below it are considered unrelated.
const threshold = 0.5

type scored struct {
	name  string
	score float64
}

// Similar returns up to limit candidates similar to target, best match
// first. Ties are broken alphabetically so hint output is stable.
func Similar(target string, candidates []string, limit int) []string {
	if target == "" || limit <= 0 {
		return nil
	}
	matches := make([]scored, 0, len(candidates))
	for _, name := range candidates {
		if score := similarity(target, name); score > threshold {
			matches = append(matches, scored{name: name, score: score})
		}
	}
	if len(matches) == 0 {
		return nil
	}
	slices.SortFunc(matches, func(a, b scored) int {
		if a.score != b.score {
			return cmp.Compare(b.score, a.score)
		}
		return cmp.Compare(a.name, b.name)
	})
	if len(matches) > limit {
		matches = matches[:limit]
	}
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, m.name)
	}
	return out
}

// similarity scores how close a is to b on a 0 to 1 scale. Exact matches
// score 1, prefix matches 0.9, and everything else decays with edit
// distance relative to the longer string.
func similarity(a, b string) float64 {
	a, b = strings.ToLower(a), strings.ToLower(b)
	if a == b {
		return 1.0
	}
	if strings.HasPrefix(b, a) {
		return 0.9
	}
	longest := float64(max(len(a), len(b)))
	return 1.0 - float64(editDistance(a, b))/longest
}

// editDistance computes the Levenshtein distance between a and b using two
// rolling rows instead of the full matrix.
func editDistance(a, b string) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}
