package factive

import (
	"regexp"
	"strings"
)

const (
	maxCandidates    = 3
	maxEntityPhrases = 3
	fallbackWordCap  = 12
)

var (
	quotedRe = regexp.MustCompile(`"([^"]+)"`)
	// A capitalized word, optionally chained with further capitalized
	// words by single spaces ("World War", "New York City").
	entityRe = regexp.MustCompile(`[A-Z][a-z]+(?: [A-Z][a-z]+)*`)
	// Four-digit years between 1600 and 2099.
	yearRe = regexp.MustCompile(`\b(?:1[6-9][0-9]{2}|20[0-9]{2})\b`)
)

// Plan derives up to three candidate search queries from a question,
// most specific first: an exact quoted phrase, then capitalized entities
// plus a year, then the leading words of the question as a broad
// fallback. Candidates are trimmed, deduplicated in first-seen order,
// and never empty. An empty question plans nothing.
func Plan(question string) []string {
	question = strings.TrimSpace(question)
	if question == "" {
		return nil
	}

	var candidates []string
	if c := quotedCandidate(question); c != "" {
		candidates = append(candidates, c)
	}
	if c := entityCandidate(question); c != "" {
		candidates = append(candidates, c)
	}
	if c := fallbackCandidate(question); c != "" {
		candidates = append(candidates, c)
	}
	return dedupe(candidates, maxCandidates)
}

// quotedCandidate joins the first two double-quoted phrases.
func quotedCandidate(question string) string {
	matches := quotedRe.FindAllStringSubmatch(question, -1)
	phrases := make([]string, 0, 2)
	for _, m := range matches {
		if p := strings.TrimSpace(m[1]); p != "" {
			phrases = append(phrases, p)
		}
		if len(phrases) == 2 {
			break
		}
	}
	return strings.Join(phrases, " ")
}

// entityCandidate joins up to three capitalized phrases and at most one
// in-range year.
func entityCandidate(question string) string {
	parts := entityRe.FindAllString(question, -1)
	if len(parts) > maxEntityPhrases {
		parts = parts[:maxEntityPhrases]
	}
	if year := yearRe.FindString(question); year != "" {
		parts = append(parts, year)
	}
	return strings.Join(parts, " ")
}

// fallbackCandidate keeps the first words of the question verbatim.
func fallbackCandidate(question string) string {
	words := strings.Fields(question)
	if len(words) > fallbackWordCap {
		words = words[:fallbackWordCap]
	}
	return strings.Join(words, " ")
}

func dedupe(candidates []string, limit int) []string {
	seen := make(map[string]struct{}, len(candidates))
	out := make([]string, 0, limit)
	for _, c := range candidates {
		c = strings.TrimSpace(c)
		if c == "" {
			continue
		}
		if _, dup := seen[c]; dup {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
		if len(out) == limit {
			break
		}
	}
	return out
}
