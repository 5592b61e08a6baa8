package factive

import "strings"

// Extract reduces article content to at most maxSentences sentences and
// guarantees a single trailing period. Empty or period-only content
// yields the AnswerNotAvailable sentinel.
//
// Sentence boundaries are literal "." characters. Abbreviations, decimal
// numbers, and quoted periods are knowingly mishandled; the exact split
// is part of the contract and must not be "fixed".
func Extract(content string, maxSentences int) string {
	if content == "" {
		return AnswerNotAvailable
	}

	var sentences []string
	for _, part := range strings.Split(content, ".") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			sentences = append(sentences, trimmed)
		}
	}
	if len(sentences) == 0 {
		return AnswerNotAvailable
	}
	if maxSentences > 0 && len(sentences) > maxSentences {
		sentences = sentences[:maxSentences]
	}

	answer := strings.Join(sentences, ". ")
	if !strings.HasSuffix(answer, ".") {
		answer += "."
	}
	return answer
}
