// Package wiki provides the MediaWiki action API backend for the
// factive agent. Its Client implements both provider interfaces:
// full-text search via list=search and introduction fetching via
// prop=extracts.
//
//	client := wiki.New("", logger)
//	results, _ := client.Search(ctx, "Hamlet", 6)
//	intro, _ := client.Summary(ctx, results[0].PageID)
//
// All calls fail soft. Network errors, non-2xx statuses, and malformed
// JSON produce empty results and a warn log instead of an error, so the
// agent's retry chain can simply move on to its next candidate query.
package wiki
