// Package suggest provides fuzzy "did you mean" matching using Levenshtein
// distance.
package suggest

import (
	"sort"
)

// levenshtein calculates the edit distance between two strings
func levenshtein(a, b string) int {
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
			curr[j] = min(
				prev[j]+1,      // deletion
				curr[j-1]+1,    // insertion
				prev[j-1]+cost, // substitution
			)
		}
		prev, curr = curr, prev
	}

	return prev[len(b)]
}

// maxDistance is the largest edit distance still worth suggesting for a
// word of length n.
func maxDistance(n int) int {
	return max(1, min(3, n/3))
}

// Closest returns up to limit candidates within edit distance of unknown,
// best first. Ties keep candidate order. An exact match returns nothing.
func Closest(unknown string, candidates []string, limit int) []string {
	type scored struct {
		word  string
		score int
	}
	var matches []scored

	maxDist := maxDistance(len(unknown))
	for _, c := range candidates {
		dist := levenshtein(unknown, c)
		if dist == 0 {
			return nil
		}
		if dist <= maxDist {
			matches = append(matches, scored{c, dist})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].score < matches[j].score
	})

	var result []string
	for i := 0; i < len(matches) && i < limit; i++ {
		result = append(result, matches[i].word)
	}
	return result
}
