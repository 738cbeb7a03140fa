package domain

import (
	"strings"

	"github.com/fatih/camelcase"
)

// SuggestField returns the declared field an unknown one most likely
// meant, or "" when nothing is close enough. Manifest fields are
// camelCase, so candidates are compared both as whole names and as
// word sequences ("behaviour hints" vs "behavior hints").
func SuggestField(unknown string, declared []string) string {
	best := ""
	bestDist := maxSuggestDistance + 1

	for _, cand := range declared {
		if strings.EqualFold(unknown, cand) {
			return cand
		}
		d := editDistance(normalizeField(unknown), normalizeField(cand))
		if d < bestDist {
			best, bestDist = cand, d
		}
	}

	if bestDist > maxSuggestDistance {
		return ""
	}
	return best
}

// maxSuggestDistance bounds how different a field may be and still get a
// did-you-mean. Two edits covers the common typo classes without
// suggesting unrelated fields.
const maxSuggestDistance = 2

func normalizeField(name string) string {
	words := camelcase.Split(name)
	for i, w := range words {
		words[i] = strings.ToLower(w)
	}
	return strings.Join(words, " ")
}

func editDistance(a, b string) int {
	if a == b {
		return 0
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
