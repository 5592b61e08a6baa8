// Package factive answers free-text trivia questions by searching a
// MediaWiki encyclopedia and extracting a short answer from the best
// matching article's introduction.
//
// # Architecture
//
// The agent runs a bounded plan/act/observe/reflect loop:
//
//  1. Plan derives up to three candidate search queries from the
//     question, most specific first: an exact quoted phrase, then
//     capitalized entities plus a year, then the leading words of the
//     question as a broad fallback.
//  2. For each candidate the SearchProvider is queried and the results
//     are re-ranked by token overlap with the original question.
//  3. The top-ranked article's plain-text introduction is fetched via
//     the SummaryProvider and truncated to a couple of sentences.
//  4. The first candidate that yields any content wins and the loop
//     stops; later, broader candidates never override an earlier answer.
//
// A question that exhausts all candidates yields the fixed sentinel
// "Information not available". A fault escaping any step is recovered at
// the loop boundary and yields "Error processing question"; Answer never
// panics and a batch caller can always continue.
//
// # Basic Usage
//
//	client := wiki.New("", logger)
//	agent := factive.New(
//	    factive.WithSearchProvider(client),
//	    factive.WithSummaryProvider(client),
//	)
//
//	res, err := agent.Answer(ctx, `Who wrote "Hamlet"?`)
//	fmt.Println(res.Answer)
//
// # Interfaces
//
// Implement SearchProvider to use any search backend:
//
//	type SearchProvider interface {
//	    Search(ctx context.Context, query string, limit int) ([]SearchResult, error)
//	}
//
// Implement SummaryProvider to fetch article introductions:
//
//	type SummaryProvider interface {
//	    Summary(ctx context.Context, pageID int64) (string, error)
//	}
//
// Both should fail soft: an empty result, not an error, is the expected
// way to report "nothing useful here". The wiki subpackage provides both
// against the MediaWiki action API; the batch subpackage processes
// question files sequentially into answer files.
//
// See the examples/basic directory for a complete example.
package factive
