package factive

import "context"

// SearchResult is a single item returned by a SearchProvider. Only the
// title is guaranteed; PageID is zero and Snippet empty when the backend
// did not report them.
type SearchResult struct {
	Title   string
	PageID  int64
	Snippet string
}

// ScoredResult pairs a SearchResult with its relevance score.
type ScoredResult struct {
	SearchResult
	Score int
}

// SearchProvider executes a query and returns raw results in the
// backend's own order. Implementations should fail soft: transport,
// HTTP, and decoding problems surface as an empty slice plus a log
// line. The agent treats a returned error the same as an empty slice.
type SearchProvider interface {
	Search(ctx context.Context, query string, limit int) ([]SearchResult, error)
}

// SummaryProvider retrieves the plain-text introduction of an article by
// page id, resolving redirects. A failed or missing fetch is reported as
// an empty string.
type SummaryProvider interface {
	Summary(ctx context.Context, pageID int64) (string, error)
}

// Result is returned by Agent.Answer.
type Result struct {
	Answer   string
	Query    string // candidate that produced the answer, empty for sentinels
	Title    string // article the answer was extracted from, if any
	Attempts int    // search attempts made
}
