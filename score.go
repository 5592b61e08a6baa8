package factive

import (
	"regexp"
	"sort"
	"strings"
)

var tokenRe = regexp.MustCompile(`[a-z0-9]+`)

// tokenSet reduces s to the set of its lower-cased alphanumeric tokens.
// Everything that is not a letter or digit separates tokens.
func tokenSet(s string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, tok := range tokenRe.FindAllString(strings.ToLower(s), -1) {
		set[tok] = struct{}{}
	}
	return set
}

func overlap(a, b map[string]struct{}) int {
	if len(b) < len(a) {
		a, b = b, a
	}
	n := 0
	for tok := range a {
		if _, ok := b[tok]; ok {
			n++
		}
	}
	return n
}

// Score measures how well a search result matches the question:
// twice the question/title token overlap plus the question/snippet
// overlap. Title matches are the stronger relevance signal.
func Score(question, title, snippet string) int {
	q := tokenSet(question)
	return 2*overlap(q, tokenSet(title)) + overlap(q, tokenSet(snippet))
}

// Rank orders results by Score, descending, without mutating the input.
// The sort is stable: ties keep the arrival order of the backend, which
// is itself relevance-ordered.
func Rank(question string, results []SearchResult) []ScoredResult {
	q := tokenSet(question)
	ranked := make([]ScoredResult, len(results))
	for i, r := range results {
		ranked[i] = ScoredResult{
			SearchResult: r,
			Score:        2*overlap(q, tokenSet(r.Title)) + overlap(q, tokenSet(r.Snippet)),
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Score > ranked[j].Score })
	return ranked
}
