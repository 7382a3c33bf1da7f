// Package api fetches JSON documents from the ProfitPlug backend.
package api

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/rshade/profitplug/internal/logging"
	"github.com/rshade/profitplug/internal/payload"
)

// Client issues GET requests against a fixed base address.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     zerolog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithTimeout bounds each request. Zero keeps the transport default (none).
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			hc := *c.httpClient
			hc.Timeout = d
			c.httpClient = &hc
		}
	}
}

// WithLogger sets the logger used when the request context carries none.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) {
		c.logger = logging.ComponentLogger(logger, "api")
	}
}

// NewClient returns a Client rooted at baseURL. Paths passed to FetchJSON are
// appended to baseURL verbatim.
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{},
		logger:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the address paths are appended to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// URL returns the full address for path.
func (c *Client) URL(path string) string {
	return c.baseURL + path
}

// FetchJSON GETs path and returns the parsed body.
//
// It fails with *NetworkError when no response arrives, *HTTPStatusError for a
// non-2xx status and *DecodeError when a 2xx body is not JSON. It never retries.
func (c *Client) FetchJSON(ctx context.Context, path string) (payload.Payload, error) {
	url := c.URL(path)
	log := c.loggerFor(ctx)
	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return payload.Payload{}, &NetworkError{URL: url, Err: err}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Debug().Ctx(ctx).Err(err).Str("url", url).Dur("duration", time.Since(start)).Msg("request failed")
		return payload.Payload{}, &NetworkError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	log.Debug().
		Ctx(ctx).
		Str("method", http.MethodGet).
		Str("url", url).
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(start)).
		Msg("request completed")

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		_, _ = io.Copy(io.Discard, resp.Body)
		return payload.Payload{}, &HTTPStatusError{URL: url, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return payload.Payload{}, &NetworkError{URL: url, Err: fmt.Errorf("reading response body: %w", err)}
	}

	p, err := payload.New(body)
	if err != nil {
		return payload.Payload{}, &DecodeError{URL: url, Err: err}
	}
	return p, nil
}

func (c *Client) loggerFor(ctx context.Context) *zerolog.Logger {
	if l := logging.FromContext(ctx); l.GetLevel() != zerolog.Disabled {
		sub := logging.ComponentLogger(*l, "api")
		return &sub
	}
	return &c.logger
}
