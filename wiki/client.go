package wiki

import (
	"context"
	"encoding/json"
	"html"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/davrell/factive"
)

// DefaultBaseURL is the English Wikipedia action API endpoint.
const DefaultBaseURL = "https://en.wikipedia.org/w/api.php"

const (
	userAgent      = "factive/1.0 (https://github.com/davrell/factive)"
	defaultTimeout = 10 * time.Second
)

// Client talks to the MediaWiki action API. It implements both
// factive.SearchProvider and factive.SummaryProvider and fails soft:
// transport, HTTP, and decoding problems surface as empty results plus a
// warn log, never as an error the agent loop has to handle.
type Client struct {
	baseURL string
	client  *http.Client
	log     *zap.Logger
}

// New constructs a Client for the given API base URL. An empty baseURL
// selects English Wikipedia; a nil logger discards logs.
func New(baseURL string, log *zap.Logger) *Client {
	return NewWithClient(baseURL, &http.Client{Timeout: defaultTimeout}, log)
}

// NewWithClient constructs a Client using the supplied HTTP client.
// This is useful for overriding the default timeout.
func NewWithClient(baseURL string, client *http.Client, log *zap.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{baseURL: baseURL, client: client, log: log}
}

// Search runs a full-text search and returns the results in the API's
// relevance order. Snippets arrive with searchmatch markup; it is
// stripped here so downstream scoring sees plain text.
func (c *Client) Search(ctx context.Context, query string, limit int) ([]factive.SearchResult, error) {
	params := url.Values{
		"action":   {"query"},
		"list":     {"search"},
		"srsearch": {query},
		"srlimit":  {strconv.Itoa(limit)},
		"format":   {"json"},
		"utf8":     {"1"},
	}

	var payload struct {
		Query struct {
			Search []struct {
				Title   string `json:"title"`
				PageID  int64  `json:"pageid"`
				Snippet string `json:"snippet"`
			} `json:"search"`
		} `json:"query"`
	}
	if !c.get(ctx, params, &payload) {
		return nil, nil
	}

	results := make([]factive.SearchResult, 0, len(payload.Query.Search))
	for _, r := range payload.Query.Search {
		results = append(results, factive.SearchResult{
			Title:   r.Title,
			PageID:  r.PageID,
			Snippet: cleanSnippet(r.Snippet),
		})
	}
	return results, nil
}

// Summary fetches the plain-text introduction of the page, following
// redirects. A missing page or extract yields an empty string.
func (c *Client) Summary(ctx context.Context, pageID int64) (string, error) {
	params := url.Values{
		"action":      {"query"},
		"pageids":     {strconv.FormatInt(pageID, 10)},
		"prop":        {"extracts"},
		"exintro":     {"true"},
		"explaintext": {"true"},
		"redirects":   {"1"},
		"format":      {"json"},
		"utf8":        {"1"},
	}

	var payload struct {
		Query struct {
			Pages map[string]struct {
				Extract string `json:"extract"`
			} `json:"pages"`
		} `json:"query"`
	}
	if !c.get(ctx, params, &payload) {
		return "", nil
	}

	for _, page := range payload.Query.Pages {
		if page.Extract != "" {
			return page.Extract, nil
		}
	}
	return "", nil
}

// get issues one API request and decodes the JSON body into out. It
// reports false when anything went wrong; the failure has already been
// logged.
func (c *Client) get(ctx context.Context, params url.Values, out any) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		c.log.Warn("build request", zap.Error(err))
		return false
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		c.log.Warn("wiki request failed", zap.Error(err))
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.log.Warn("wiki http status", zap.Int("status", resp.StatusCode))
		return false
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		c.log.Warn("decode wiki response", zap.Error(err))
		return false
	}
	return true
}

var tagRe = regexp.MustCompile(`<[^>]+>`)

// cleanSnippet strips the markup MediaWiki embeds in search snippets.
func cleanSnippet(s string) string {
	s = tagRe.ReplaceAllString(s, "")
	s = html.UnescapeString(s)
	return strings.TrimSpace(s)
}
