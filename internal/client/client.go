// Package client fetches the menu list from the restaurant API.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/AntoineGS/tidymenu/internal/menu"
)

const (
	// DefaultBaseURL is the public restaurant API.
	DefaultBaseURL = "https://complete-foodi-client-server-l9jv.onrender.com"
	// DefaultEndpoint is the path of the menu list.
	DefaultEndpoint = "/menu"
	// DefaultTimeout bounds a single fetch.
	DefaultTimeout = 15 * time.Second

	// maxBodyBytes caps the response body; a menu is a few hundred items.
	maxBodyBytes = 8 << 20
)

// Client performs the single menu fetch.
type Client struct {
	httpClient *http.Client
	logger     *slog.Logger
	baseURL    string
	endpoint   string
	timeout    time.Duration
}

// Option configures a Client.
type Option func(*Client)

// WithEndpoint overrides the menu path.
func WithEndpoint(endpoint string) Option {
	return func(c *Client) {
		if endpoint != "" {
			c.endpoint = endpoint
		}
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithTimeout sets the per-fetch timeout. Non-positive values are ignored.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// New creates a client for the API at baseURL. An empty baseURL selects
// DefaultBaseURL.
func New(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	c := &Client{
		httpClient: &http.Client{},
		logger:     slog.Default(),
		baseURL:    strings.TrimRight(baseURL, "/"),
		endpoint:   DefaultEndpoint,
		timeout:    DefaultTimeout,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// URL returns the full menu URL.
func (c *Client) URL() string {
	endpoint := c.endpoint
	if !strings.HasPrefix(endpoint, "/") {
		endpoint = "/" + endpoint
	}

	return c.baseURL + endpoint
}

// FetchMenu issues one GET to the menu endpoint and decodes the JSON array
// body. Any failure is returned as a *FetchError.
func (c *Client) FetchMenu(ctx context.Context) ([]menu.Item, error) {
	url := c.URL()

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &FetchError{URL: url, Err: fmt.Errorf("building request: %w", err)}
	}

	start := time.Now()
	c.logger.Debug("fetching menu", slog.String("url", url))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &FetchError{URL: url, Err: err}
	}
	defer func() { _ = resp.Body.Close() }() //nolint:errcheck,gosec // defer close is best-effort

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes)) //nolint:errcheck // best-effort drain

		return nil, &FetchError{URL: url, Status: resp.StatusCode, Err: ErrUnexpectedStatus}
	}

	var items []menu.Item
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(&items); err != nil {
		return nil, &FetchError{
			URL:    url,
			Status: resp.StatusCode,
			Err:    fmt.Errorf("%w: %w", ErrMalformedBody, err),
		}
	}

	if items == nil {
		items = []menu.Item{}
	}

	c.logger.Debug("menu fetched",
		slog.String("url", url),
		slog.Int("items", len(items)),
		slog.Duration("elapsed", time.Since(start)))

	return items, nil
}
