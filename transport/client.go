// Package transport provides the rate-limited HTTPS client used to reach
// the Academic Knowledge API. It implements the narrow send contract the
// rest of the library depends on: post a form-encoded body to a URL and
// return the status code and body text.
package transport

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	// DefaultTimeout is the default HTTP request timeout.
	DefaultTimeout = 30 * time.Second

	// DefaultRateLimit is the default sustained request rate per second.
	DefaultRateLimit = 5.0

	// DefaultBurstSize is the default burst size for rate limiting.
	DefaultBurstSize = 5

	// DefaultUserAgent matches the agent string the upstream library sent.
	DefaultUserAgent = "Mozilla/5.0 (X11; Linux x86_64; rv:27.0) Gecko/20100101 Firefox/27.0"

	// subscriptionKeyHeader carries the API subscription key.
	subscriptionKeyHeader = "Ocp-Apim-Subscription-Key"

	// maxBodyBytes caps how much of a response body is read.
	maxBodyBytes = 10 << 20
)

// Config contains configuration options for the transport client.
type Config struct {
	// SubscriptionKey is the Academic Knowledge API subscription key,
	// sent in the Ocp-Apim-Subscription-Key header on every request.
	SubscriptionKey string

	// Timeout is the HTTP request timeout. Defaults to DefaultTimeout.
	Timeout time.Duration

	// RateLimit is the maximum requests per second.
	// Defaults to DefaultRateLimit.
	RateLimit float64

	// BurstSize is the maximum burst of requests allowed.
	// Defaults to DefaultBurstSize.
	BurstSize int

	// UserAgent is the User-Agent header sent with requests.
	// Defaults to DefaultUserAgent.
	UserAgent string
}

// Response is the outcome of one transport round trip.
type Response struct {
	// StatusCode is the HTTP status code of the response.
	StatusCode int

	// Body is the response body text.
	Body string
}

// Sender posts a form-encoded body to a URL and returns the response.
// Implemented by *Client; callers should depend on this interface so tests
// can substitute a fake.
type Sender interface {
	Send(ctx context.Context, rawURL string, body url.Values, headers map[string]string) (*Response, error)
}

// Client is a rate-limited HTTP client for the Academic Knowledge API.
// It is safe for concurrent use.
type Client struct {
	client  *http.Client
	limiter *RateLimiter
	config  Config
}

// Compile-time check that Client implements Sender.
var _ Sender = (*Client)(nil)

// NewClient creates a transport client with the given configuration,
// applying defaults for any zero field.
func NewClient(cfg Config) *Client {
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.RateLimit == 0 {
		cfg.RateLimit = DefaultRateLimit
	}
	if cfg.BurstSize == 0 {
		cfg.BurstSize = DefaultBurstSize
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = DefaultUserAgent
	}

	return &Client{
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
		limiter: NewRateLimiter(cfg.RateLimit, cfg.BurstSize),
		config:  cfg,
	}
}

// Send posts the form-encoded body to rawURL after waiting for the rate
// limiter. The User-Agent and subscription key headers are set from the
// client configuration; entries in headers override them. The response body
// is returned verbatim regardless of status code; interpreting non-2xx
// statuses is the caller's responsibility.
func (c *Client) Send(ctx context.Context, rawURL string, body url.Values, headers map[string]string) (*Response, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter wait: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, rawURL, strings.NewReader(body.Encode()))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("User-Agent", c.config.UserAgent)
	if c.config.SubscriptionKey != "" {
		req.Header.Set(subscriptionKeyHeader, c.config.SubscriptionKey)
	}
	for name, value := range headers {
		req.Header.Set(name, value)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	text, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Body:       string(text),
	}, nil
}

// StatusError reports a response with a non-2xx status code.
type StatusError struct {
	StatusCode int
	Body       string
}

// Error implements the error interface.
func (e *StatusError) Error() string {
	return fmt.Sprintf("academic API returned status %d: %s", e.StatusCode, e.Body)
}
