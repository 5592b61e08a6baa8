package factive

import (
	"time"

	"go.uber.org/zap"
)

const (
	defaultMaxQueries   = 3
	defaultSearchLimit  = 6
	defaultMaxSentences = 2
	defaultStepDelay    = 500 * time.Millisecond
)

// Option configures an Agent.
type Option func(*Agent)

// WithSearchProvider sets the search implementation.
func WithSearchProvider(searcher SearchProvider) Option {
	return func(a *Agent) { a.searcher = searcher }
}

// WithSummaryProvider sets the article summary implementation.
func WithSummaryProvider(summarizer SummaryProvider) Option {
	return func(a *Agent) { a.summarizer = summarizer }
}

// WithLogger sets the structured logger. The default discards everything.
func WithLogger(log *zap.Logger) Option {
	return func(a *Agent) {
		if log != nil {
			a.log = log
		}
	}
}

// WithMaxQueries caps the number of candidate queries tried per question.
func WithMaxQueries(n int) Option {
	return func(a *Agent) {
		if n > 0 {
			a.maxQueries = n
		}
	}
}

// WithSearchLimit sets how many results each search requests.
func WithSearchLimit(n int) Option {
	return func(a *Agent) {
		if n > 0 {
			a.searchLimit = n
		}
	}
}

// WithMaxSentences sets how many sentences an answer keeps.
func WithMaxSentences(n int) Option {
	return func(a *Agent) {
		if n > 0 {
			a.maxSentences = n
		}
	}
}

// WithStepDelay sets the pause between successive search attempts.
// Zero disables the pause; useful in tests.
func WithStepDelay(d time.Duration) Option {
	return func(a *Agent) {
		if d >= 0 {
			a.stepDelay = d
		}
	}
}
