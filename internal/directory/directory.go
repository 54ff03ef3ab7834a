// Package directory searches the hook manager's online hooks directory.
package directory

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

// Error variables for directory errors
var (
	// ErrFetchFailed is returned when the directory page cannot be retrieved
	ErrFetchFailed = errors.New("failed to fetch hooks directory")
	// ErrNoEntries is returned when no hook entries could be extracted from the page
	ErrNoEntries = errors.New("no hook entries found in directory page")
)

// maxResponseSize caps how much of the directory page is read.
const maxResponseSize = 4 << 20 // 4 MiB

// Entry is one hook listed in the directory.
type Entry struct {
	// Repo is the repository the hook ships in
	Repo string
	// Hook is the hook identifier
	Hook string
	// Description is the hook's one-line description, if the page carries one
	Description string
}

// Client fetches and searches the hooks directory page.
// Requests are rate limited so repeated searches stay polite to the host.
type Client struct {
	url        string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithLimiter sets a custom rate limiter.
func WithLimiter(l *rate.Limiter) Option {
	return func(c *Client) {
		c.limiter = l
	}
}

// NewClient creates a Client for the directory page at url.
// The default limiter allows one request every 6 seconds with a burst of 1.
func NewClient(url string, opts ...Option) *Client {
	c := &Client{
		url:        url,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		limiter:    rate.NewLimiter(rate.Every(6*time.Second), 1),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Search fetches the directory page and returns the entries whose repository,
// hook id, or description contains term (case-insensitive). An empty term
// returns every entry.
func (c *Client) Search(ctx context.Context, term string) ([]Entry, error) {
	content, err := c.fetch(ctx)
	if err != nil {
		return nil, err
	}

	entries, err := ParseEntries(content)
	if err != nil {
		return nil, err
	}

	return Filter(entries, term), nil
}

// fetch retrieves the directory page, honoring the rate limit.
func (c *Client) fetch(ctx context.Context) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %s returned status %d", ErrFetchFailed, c.url, resp.StatusCode)
	}

	content, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}

	return content, nil
}

// Filter returns the entries matching term (case-insensitive substring match
// on repository, hook id, and description). Order is preserved.
func Filter(entries []Entry, term string) []Entry {
	if term == "" {
		return entries
	}

	needle := strings.ToLower(term)
	var matched []Entry
	for _, e := range entries {
		haystack := strings.ToLower(e.Repo + " " + e.Hook + " " + e.Description)
		if strings.Contains(haystack, needle) {
			matched = append(matched, e)
		}
	}
	return matched
}
