package factive

import (
	"context"
	"errors"
	"testing"
)

type fakeSearch struct {
	results map[string][]SearchResult
	err     error
	calls   []string
}

func (f *fakeSearch) Search(_ context.Context, query string, _ int) ([]SearchResult, error) {
	f.calls = append(f.calls, query)
	if f.err != nil {
		return nil, f.err
	}
	return f.results[query], nil
}

type fakeSummary struct {
	extracts map[int64]string
	err      error
}

func (f *fakeSummary) Summary(_ context.Context, pageID int64) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.extracts[pageID], nil
}

type panicSearch struct{}

func (panicSearch) Search(_ context.Context, _ string, _ int) ([]SearchResult, error) {
	panic("search backend exploded")
}

func newTestAgent(searcher SearchProvider, summarizer SummaryProvider) *Agent {
	return New(
		WithSearchProvider(searcher),
		WithSummaryProvider(summarizer),
		WithStepDelay(0),
	)
}

func TestAgentQuotedPhraseWins(t *testing.T) {
	searcher := &fakeSearch{results: map[string][]SearchResult{
		"Hamlet": {{Title: "Hamlet", PageID: 1}},
	}}
	summarizer := &fakeSummary{extracts: map[int64]string{
		1: "William Shakespeare wrote Hamlet. It was written around 1600.",
	}}

	agent := newTestAgent(searcher, summarizer)
	res, err := agent.Answer(context.Background(), `Who wrote "Hamlet"?`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "William Shakespeare wrote Hamlet. It was written around 1600."
	if res.Answer != want {
		t.Fatalf("answer = %q, want %q", res.Answer, want)
	}
	if res.Query != "Hamlet" {
		t.Fatalf("query = %q, want the quoted-phrase candidate", res.Query)
	}
	if res.Attempts != 1 {
		t.Fatalf("attempts = %d, want 1", res.Attempts)
	}
}

func TestAgentStopsAtFirstAnswer(t *testing.T) {
	// Every candidate would succeed; only the first may be tried.
	results := make(map[string][]SearchResult)
	for _, q := range []string{"Hamlet", "Who Hamlet", `Who wrote "Hamlet"?`} {
		results[q] = []SearchResult{{Title: "Hamlet", PageID: 1}}
	}
	searcher := &fakeSearch{results: results}
	summarizer := &fakeSummary{extracts: map[int64]string{1: "A tragedy by Shakespeare."}}

	agent := newTestAgent(searcher, summarizer)
	if _, err := agent.Answer(context.Background(), `Who wrote "Hamlet"?`); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(searcher.calls) != 1 {
		t.Fatalf("search calls = %v, want exactly one", searcher.calls)
	}
}

func TestAgentEmptyQuestion(t *testing.T) {
	searcher := &fakeSearch{}
	agent := newTestAgent(searcher, &fakeSummary{})

	res, err := agent.Answer(context.Background(), "   ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Answer != AnswerNotAvailable {
		t.Fatalf("answer = %q, want %q", res.Answer, AnswerNotAvailable)
	}
	if len(searcher.calls) != 0 {
		t.Fatalf("expected no search calls for an empty question, got %v", searcher.calls)
	}
}

func TestAgentNoResultsAnywhere(t *testing.T) {
	searcher := &fakeSearch{}
	agent := newTestAgent(searcher, &fakeSummary{})

	res, err := agent.Answer(context.Background(), `Who wrote "Hamlet"?`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Answer != AnswerNotAvailable {
		t.Fatalf("answer = %q, want %q", res.Answer, AnswerNotAvailable)
	}
	// All three planned candidates should have been attempted.
	if res.Attempts != 3 {
		t.Fatalf("attempts = %d, want 3", res.Attempts)
	}
}

func TestAgentSearchErrorRecoveredAsEmpty(t *testing.T) {
	// A transport failure surfaces as the not-available sentinel, not
	// the error sentinel: the failure is recovered to an empty result.
	searcher := &fakeSearch{err: errors.New("connection refused")}
	agent := newTestAgent(searcher, &fakeSummary{})

	res, err := agent.Answer(context.Background(), "Why is the sky blue?")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Answer != AnswerNotAvailable {
		t.Fatalf("answer = %q, want %q", res.Answer, AnswerNotAvailable)
	}
}

func TestAgentSkipsResultWithoutPageID(t *testing.T) {
	searcher := &fakeSearch{results: map[string][]SearchResult{
		"Hamlet":     {{Title: "Hamlet"}}, // no page id: skip candidate
		"Who Hamlet": {{Title: "Hamlet", PageID: 2}},
	}}
	summarizer := &fakeSummary{extracts: map[int64]string{2: "A tragedy by Shakespeare."}}

	agent := newTestAgent(searcher, summarizer)
	res, err := agent.Answer(context.Background(), `Who wrote "Hamlet"?`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Answer != "A tragedy by Shakespeare." {
		t.Fatalf("answer = %q", res.Answer)
	}
	if res.Attempts != 2 {
		t.Fatalf("attempts = %d, want 2", res.Attempts)
	}
}

func TestAgentEmptyExtractFallsThrough(t *testing.T) {
	searcher := &fakeSearch{results: map[string][]SearchResult{
		"Hamlet": {{Title: "Hamlet", PageID: 1}},
	}}
	// Summary succeeds but the page has no extract.
	agent := newTestAgent(searcher, &fakeSummary{})

	res, err := agent.Answer(context.Background(), `Who wrote "Hamlet"?`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Answer != AnswerNotAvailable {
		t.Fatalf("answer = %q, want %q", res.Answer, AnswerNotAvailable)
	}
}

func TestAgentPanicBecomesErrorSentinel(t *testing.T) {
	agent := newTestAgent(panicSearch{}, &fakeSummary{})

	res, err := agent.Answer(context.Background(), "Why is the sky blue?")
	if err != nil {
		t.Fatalf("expected fault to be recovered, got error: %v", err)
	}
	if res.Answer != AnswerError {
		t.Fatalf("answer = %q, want %q", res.Answer, AnswerError)
	}
}

func TestAgentRanksBeforeChoosing(t *testing.T) {
	// The backend returns a weaker match first; the scorer must promote
	// the title that overlaps the question.
	searcher := &fakeSearch{results: map[string][]SearchResult{
		"Paris France": {
			{Title: "Unrelated", PageID: 10, Snippet: "nothing"},
			{Title: "Paris", PageID: 11, Snippet: "capital of France"},
		},
	}}
	summarizer := &fakeSummary{extracts: map[int64]string{
		10: "Wrong article.",
		11: "Paris is the capital of France.",
	}}

	agent := newTestAgent(searcher, summarizer)
	res, err := agent.Answer(context.Background(), "Paris France")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Title != "Paris" {
		t.Fatalf("title = %q, want the higher-scoring article", res.Title)
	}
	if res.Answer != "Paris is the capital of France." {
		t.Fatalf("answer = %q", res.Answer)
	}
}

func TestAgentMisconfigured(t *testing.T) {
	if _, err := New().Answer(context.Background(), "q"); err == nil {
		t.Fatal("expected error when no providers are configured")
	}
	if _, err := New(WithSearchProvider(&fakeSearch{})).Answer(context.Background(), "q"); err == nil {
		t.Fatal("expected error when no summary provider is configured")
	}
}
