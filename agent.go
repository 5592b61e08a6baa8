package factive

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
)

// Sentinel answers. These are the only two non-excerpt values Answer
// produces.
const (
	// AnswerNotAvailable is returned when no candidate query yielded
	// usable content.
	AnswerNotAvailable = "Information not available"
	// AnswerError is returned when an unrecoverable fault occurred while
	// processing a single question.
	AnswerError = "Error processing question"
)

// Agent coordinates the planner, searcher, scorer, and extractor.
type Agent struct {
	searcher     SearchProvider
	summarizer   SummaryProvider
	log          *zap.Logger
	maxQueries   int
	searchLimit  int
	maxSentences int
	stepDelay    time.Duration
}

// New constructs an Agent with optional configuration.
func New(opts ...Option) *Agent {
	a := &Agent{
		log:          zap.NewNop(),
		maxQueries:   defaultMaxQueries,
		searchLimit:  defaultSearchLimit,
		maxSentences: defaultMaxSentences,
		stepDelay:    defaultStepDelay,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Answer runs the candidate loop for one question: plan all queries up
// front, then for each candidate search, rank, fetch the top article's
// introduction, and extract a short answer. The first candidate that
// yields any content wins; later, broader candidates never override it.
//
// The returned error is reserved for misconfiguration. Per-question
// faults, including panics out of a provider, are recovered here and
// reported as the AnswerError sentinel so a batch caller can always
// continue with the next question.
func (a *Agent) Answer(ctx context.Context, question string) (res Result, err error) {
	if a.searcher == nil {
		return Result{}, errors.New("no search provider configured")
	}
	if a.summarizer == nil {
		return Result{}, errors.New("no summary provider configured")
	}

	defer func() {
		if r := recover(); r != nil {
			a.log.Error("question processing fault", zap.Any("panic", r))
			res = Result{Answer: AnswerError, Attempts: res.Attempts}
			err = nil
		}
	}()

	candidates := Plan(question)
	if len(candidates) > a.maxQueries {
		candidates = candidates[:a.maxQueries]
	}
	if len(candidates) == 0 {
		return Result{Answer: AnswerNotAvailable}, nil
	}

	for i, query := range candidates {
		if i > 0 {
			a.pause(ctx)
		}
		res.Attempts = i + 1

		outcome, ok := a.tryCandidate(ctx, question, query)
		if ok {
			res.Answer = outcome.answer
			res.Query = query
			res.Title = outcome.title
			return res, nil
		}
	}

	res.Answer = AnswerNotAvailable
	return res, nil
}

// stepOutcome is the tagged result of one candidate attempt. The loop
// inspects the ok flag, never the sentinel strings.
type stepOutcome struct {
	answer string
	title  string
}

func (a *Agent) tryCandidate(ctx context.Context, question, query string) (stepOutcome, bool) {
	results, err := a.searcher.Search(ctx, query, a.searchLimit)
	if err != nil {
		// Fail-soft backends return an empty slice instead; treat a
		// misbehaving one the same way and move on.
		a.log.Warn("search failed", zap.String("query", query), zap.Error(err))
		return stepOutcome{}, false
	}
	if len(results) == 0 {
		a.log.Debug("no search results", zap.String("query", query))
		return stepOutcome{}, false
	}

	ranked := Rank(question, results)
	top := ranked[0]
	if top.PageID == 0 {
		a.log.Debug("top result has no page id", zap.String("title", top.Title))
		return stepOutcome{}, false
	}

	content, err := a.summarizer.Summary(ctx, top.PageID)
	if err != nil {
		a.log.Warn("summary fetch failed", zap.Int64("pageid", top.PageID), zap.Error(err))
		return stepOutcome{}, false
	}

	answer := Extract(content, a.maxSentences)
	if answer == AnswerNotAvailable {
		return stepOutcome{}, false
	}

	a.log.Debug("answer accepted",
		zap.String("query", query),
		zap.String("title", top.Title),
		zap.Int("score", top.Score),
	)
	return stepOutcome{answer: answer, title: top.Title}, true
}

// pause waits the politeness delay between successive search attempts.
func (a *Agent) pause(ctx context.Context) {
	if a.stepDelay <= 0 {
		return
	}
	t := time.NewTimer(a.stepDelay)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}
