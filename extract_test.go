package factive

import "testing"

func TestExtract(t *testing.T) {
	tests := []struct {
		name         string
		content      string
		maxSentences int
		want         string
	}{
		{"empty content", "", 2, AnswerNotAvailable},
		{"only periods", "...", 2, AnswerNotAvailable},
		{"only whitespace segments", " . \t . ", 2, AnswerNotAvailable},
		{"truncates to max", "A. B. C. D.", 2, "A. B."},
		{"fewer than max", "One sentence only", 2, "One sentence only."},
		{"keeps trailing period", "First. Second.", 2, "First. Second."},
		{
			"two sentence excerpt",
			"William Shakespeare wrote Hamlet. It was written around 1600. It is long.",
			2,
			"William Shakespeare wrote Hamlet. It was written around 1600.",
		},
		// The naive split is part of the contract: decimals break apart.
		{"decimal mishandled", "Pi is 3.14 roughly", 2, "Pi is 3. 14 roughly."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Extract(tt.content, tt.maxSentences); got != tt.want {
				t.Fatalf("Extract(%q, %d) = %q, want %q", tt.content, tt.maxSentences, got, tt.want)
			}
		})
	}
}

func TestExtractIdempotent(t *testing.T) {
	content := "A. B. C. D."
	first := Extract(content, 2)
	second := Extract(content, 2)
	if first != second {
		t.Fatalf("extract is not pure: %q vs %q", first, second)
	}
}
