// Package lexicon looks words up in a dictionary web service and reduces
// the service's loosely shaped response to a model.WordInfo.
package lexicon

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ppiankov/textlens/internal/cache"
	"github.com/ppiankov/textlens/internal/model"
	"github.com/ppiankov/textlens/internal/util"
	"github.com/ppiankov/textlens/internal/worker"
)

// lookupSleepFunc waits between retries (injectable for tests)
var lookupSleepFunc = func(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

var errDisallowedByRobots = errors.New("disallowed by robots.txt")

// Client queries a dictionary service such as api.dictionaryapi.dev.
// A Client is safe for concurrent use.
type Client struct {
	baseURL     string
	httpClient  *http.Client
	userAgent   string
	maxBytes    int64
	maxAttempts int
	backoff     time.Duration
	limiter     *worker.Limiter
	cache       cache.Cache // nil when caching is disabled
	cacheTTL    time.Duration
	robots      *util.RobotsChecker // nil unless robots.txt is honoured
}

// NewClient creates a client from the HTTP, dictionary, cache and rate
// limiting sections of cfg
func NewClient(cfg *model.Config) *Client {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.Proxy = util.NewProxyFunc(cfg.HTTP.HTTPProxy, cfg.HTTP.HTTPSProxy, cfg.HTTP.NoProxy)
	if cfg.HTTP.InsecureTLS {
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true} //nolint:gosec // opt-in via --insecure
	}

	baseURL := cfg.Dictionary.BaseURL
	if baseURL == "" {
		baseURL = model.DefaultDictionaryURL
	}

	maxBytes := cfg.HTTP.MaxBodyBytes
	if maxBytes <= 0 {
		maxBytes = 1 << 20
	}

	attempts := cfg.Dictionary.MaxAttempts
	if attempts <= 0 {
		attempts = 1
	}

	c := &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{
			Timeout:   cfg.HTTP.Timeout,
			Transport: transport,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 3 {
					return fmt.Errorf("stopped after 3 redirects")
				}
				return nil
			},
		},
		userAgent:   cfg.HTTP.UserAgent,
		maxBytes:    maxBytes,
		maxAttempts: attempts,
		backoff:     cfg.Dictionary.RetryBackoff,
		limiter:     worker.NewLimiter(cfg.RateLimiting.RequestsPerSecond, cfg.RateLimiting.BurstSize),
		cache:       cache.New(cfg.Cache),
		cacheTTL:    cfg.Cache.TTL,
	}

	if cfg.Dictionary.RespectRobots {
		c.robots = util.NewRobotsChecker(cfg.HTTP.UserAgent, c.httpClient)
	}

	return c
}

// NormalizeWord trims input and checks that it is exactly one word.
// Multi-word input is rejected rather than forwarded to the service.
func NormalizeWord(input string) (string, error) {
	fields := strings.Fields(input)
	switch len(fields) {
	case 0:
		return "", ErrEmptyWord
	case 1:
		return fields[0], nil
	default:
		return "", fmt.Errorf("%w: %q", ErrMultipleWords, strings.TrimSpace(input))
	}
}

// Endpoint returns the lookup URL for word
func (c *Client) Endpoint(word string) string {
	return c.baseURL + "/" + url.PathEscape(word)
}

// Lookup fetches dictionary data for a single word.
// A word the service does not know yields the all-sentinel WordInfo and a
// nil error. Failures are returned as *LookupError together with the
// all-sentinel WordInfo.
func (c *Client) Lookup(ctx context.Context, input string) (model.WordInfo, error) {
	word, err := NormalizeWord(input)
	if err != nil {
		return model.EmptyWordInfo(), err
	}

	endpoint := c.Endpoint(word)
	key := cache.CacheKey(endpoint)

	if c.cache != nil {
		if body, found := c.cache.Get(key); found {
			if entries, err := decodeEntries(body); err == nil {
				return normalize(entries), nil
			}
			_ = c.cache.Delete(key)
		}
	}

	var crawlDelay time.Duration
	if c.robots != nil {
		allowed, delay, err := c.robots.CanFetch(ctx, endpoint)
		if err == nil && !allowed {
			return model.EmptyWordInfo(), &LookupError{Kind: NetworkError, Word: word, Err: errDisallowedByRobots}
		}
		crawlDelay = delay
	}

	body, err := c.fetchWithRetry(ctx, endpoint, crawlDelay)
	if err != nil {
		lookupErr := &LookupError{Kind: NetworkError, Word: word, Err: err}
		var se *statusError
		if errors.As(err, &se) {
			lookupErr.StatusCode = se.code
		}
		return model.EmptyWordInfo(), lookupErr
	}

	entries, err := decodeEntries(body)
	if err != nil {
		return model.EmptyWordInfo(), &LookupError{Kind: ParseError, Word: word, Err: err}
	}

	if c.cache != nil {
		_ = c.cache.Set(key, body, c.cacheTTL)
	}

	return normalize(entries), nil
}

// fetchWithRetry retries transport failures, 429 and 5xx with exponential
// backoff, up to maxAttempts requests in total
func (c *Client) fetchWithRetry(ctx context.Context, endpoint string, crawlDelay time.Duration) ([]byte, error) {
	var lastErr error

	for attempt := 0; attempt < c.maxAttempts; attempt++ {
		if attempt > 0 {
			if err := lookupSleepFunc(ctx, c.backoff<<(attempt-1)); err != nil {
				return nil, fmt.Errorf("retry wait: %w", err)
			}
		}

		if err := c.limiter.WaitWithDelay(ctx, endpoint, crawlDelay); err != nil {
			return nil, fmt.Errorf("rate limit: %w", err)
		}

		body, err := c.fetch(ctx, endpoint)
		if err == nil {
			return body, nil
		}
		lastErr = err

		if ctx.Err() != nil || !isRetryable(err) {
			return nil, err
		}
	}

	return nil, lastErr
}

// fetch performs one request. 404 is the service's "no definitions found"
// answer and is reported as an empty entry list.
func (c *Client) fetch(ctx context.Context, endpoint string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusNotFound {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, c.maxBytes))
		return []byte("[]"), nil
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &statusError{code: resp.StatusCode, status: resp.Status}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBytes))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	return body, nil
}

func isRetryable(err error) bool {
	if err == nil {
		return false
	}

	var se *statusError
	if errors.As(err, &se) {
		return se.code == http.StatusTooManyRequests || se.code >= 500
	}

	// Transport failures from http.Client.Do carry the method as Op;
	// malformed URLs ("parse") never succeed on retry
	var urlErr *url.Error
	return errors.As(err, &urlErr) && urlErr.Op != "parse"
}
