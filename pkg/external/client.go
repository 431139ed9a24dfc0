// Package external fetches suggestions from an upstream OpenSearch-style
// suggestions provider, in front of a TTL/FIFO cache.
package external

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/charmbracelet/log"
)

const (
	// Deadline is the hard timeout applied to every upstream fetch.
	Deadline = 3 * time.Second

	defaultCacheTTL        = 60 * time.Second
	defaultCacheMaxEntries = 500
	maxResults             = 10

	userAgent = "Mozilla/5.0 (compatible; bangserve/1.0; +suggestions-client)"
)

// Client fetches suggestions from an upstream provider with a hard
// deadline and graceful degradation: any network error, non-2xx response,
// malformed body, or exceeded deadline yields an empty slice, never an
// error the caller must branch on.
type Client struct {
	baseURL    string
	timeout    time.Duration
	httpClient *http.Client
	cache      *ttlCache
	log        *log.Logger
}

// Config configures a Client. Zero values fall back to the spec defaults.
type Config struct {
	BaseURL      string
	Timeout      time.Duration
	CacheTTL     time.Duration
	CacheMaxSize int
	Logger       *log.Logger
}

// New constructs a Client. baseURL must be the upstream suggestions
// endpoint, e.g. "https://suggestqueries.google.com/complete/search".
func New(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = Deadline
	}
	ttl := cfg.CacheTTL
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	maxSize := cfg.CacheMaxSize
	if maxSize <= 0 {
		maxSize = defaultCacheMaxEntries
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}

	return &Client{
		baseURL:    cfg.BaseURL,
		timeout:    timeout,
		httpClient: &http.Client{Timeout: timeout},
		cache:      newTTLCache(ttl, maxSize),
		log:        logger,
	}
}

// Fetch returns up to 10 suggestion strings for query in the given
// language. Cache hits bypass the network entirely. Any failure mode
// (timeout, connectivity error, non-2xx, malformed body) degrades to an
// empty slice rather than propagating an error.
func (c *Client) Fetch(ctx context.Context, query, lang string) []string {
	if query == "" {
		return nil
	}
	if lang == "" {
		lang = "en"
	}

	key := query + ":" + lang
	if cached, ok := c.cache.get(key); ok {
		return cached
	}

	results := c.fetchUpstream(ctx, query, lang)
	c.cache.set(key, results)
	return results
}

func (c *Client) fetchUpstream(ctx context.Context, query, lang string) []string {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	reqURL := fmt.Sprintf("%s?client=firefox&hl=%s&q=%s",
		c.baseURL, url.QueryEscape(lang), url.QueryEscape(query))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		c.log.Errorf("external: building request: %v", err)
		return nil
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Warnf("external: fetch for %q failed: %v", query, err)
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.log.Warnf("external: upstream returned status %d for %q", resp.StatusCode, query)
		return nil
	}

	var body [2]json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		c.log.Warnf("external: malformed response body for %q: %v", query, err)
		return nil
	}

	var suggestions []string
	if err := json.Unmarshal(body[1], &suggestions); err != nil {
		c.log.Warnf("external: malformed suggestions array for %q: %v", query, err)
		return nil
	}

	if len(suggestions) > maxResults {
		suggestions = suggestions[:maxResults]
	}
	return suggestions
}

// CacheSize reports the current number of entries held by the cache;
// exposed for tests and diagnostics only.
func (c *Client) CacheSize() int {
	return c.cache.size()
}
