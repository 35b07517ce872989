// Package fetch retrieves web pages and extracts their readable text.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	readability "github.com/go-shiori/go-readability"
)

// FetchError reports a failed page retrieval. Status is zero when the
// transport itself failed before a response arrived.
type FetchError struct {
	URL    string
	Status int
	Err    error
}

func (e *FetchError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("fetch %s: unexpected status %d", e.URL, e.Status)
	}
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// Client issues bounded GETs and runs readability extraction on the result.
// Construct once and share; it holds no per-request state.
type Client struct {
	http      *http.Client
	userAgent string
	maxBytes  int64
}

// NewClient builds a fetcher with a hard request timeout and a response body
// size cap. Zero values fall back to 15s / 2 MiB.
func NewClient(timeout time.Duration, maxBytes int64, userAgent string) *Client {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	if maxBytes <= 0 {
		maxBytes = 2 << 20
	}
	return &Client{
		http:      &http.Client{Timeout: timeout},
		userAgent: userAgent,
		maxBytes:  maxBytes,
	}
}

// Text GETs link and returns the page's visible article text, stripped of
// markup, scripts and navigation. Transport failures and non-2xx statuses
// yield a *FetchError; a reachable page with no extractable content yields ""
// without error.
func (c *Client) Text(ctx context.Context, link string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, link, nil)
	if err != nil {
		return "", &FetchError{URL: link, Err: err}
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return "", &FetchError{URL: link, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &FetchError{URL: link, Status: resp.StatusCode}
	}

	body := io.LimitReader(resp.Body, c.maxBytes)
	article, err := readability.FromReader(body, resp.Request.URL)
	if err != nil {
		// reachable page, nothing readable on it
		return "", nil
	}
	return strings.TrimSpace(article.TextContent), nil
}
