package mealdb

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/five82/platter/internal/catalog"
)

// Client talks to a MealDB-style JSON endpoint.
type Client struct {
	endpoint  *url.URL
	http      *http.Client
	userAgent string
	schema    Schema
	maxBody   int64
}

const (
	DefaultEndpoint  = "https://www.themealdb.com/api/json/v1/1/filter.php?c=Seafood"
	DefaultUserAgent = "platter/0.1"
	requestIDHeader  = "X-Request-ID"

	// maxBodyBytes bounds the response size; larger bodies are rejected.
	maxBodyBytes = 8 << 20
)

// Options configure a Client. Zero values select defaults.
type Options struct {
	Endpoint  string
	UserAgent string
	// Timeout of zero leaves the transport default (no client-side limit).
	Timeout time.Duration
	Schema  Schema
	// HTTPClient overrides the underlying client; Timeout is ignored when set.
	HTTPClient *http.Client
}

// NewClient builds a Client for opts.Endpoint.
func NewClient(opts Options) (*Client, error) {
	endpoint, err := parseEndpoint(opts.Endpoint)
	if err != nil {
		return nil, err
	}
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: opts.Timeout}
	}
	userAgent := strings.TrimSpace(opts.UserAgent)
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}
	return &Client{
		endpoint:  endpoint,
		http:      httpClient,
		userAgent: userAgent,
		schema:    opts.Schema.withDefaults(),
		maxBody:   maxBodyBytes,
	}, nil
}

// Endpoint returns the resolved endpoint URL.
func (c *Client) Endpoint() string {
	if c == nil || c.endpoint == nil {
		return ""
	}
	return c.endpoint.String()
}

// FetchCatalog performs one GET against the endpoint and decodes the items.
// Failures are one of *catalog.HTTPStatusError, *catalog.TransportError or
// *catalog.MalformedResponseError.
func (c *Client) FetchCatalog(ctx context.Context) ([]catalog.Item, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	body, err := c.get(ctx)
	if err != nil {
		return nil, err
	}
	return c.schema.Decode(body)
}

func (c *Client) get(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if id := catalog.AttemptID(ctx); id != "" {
		req.Header.Set(requestIDHeader, id)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &catalog.TransportError{Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain a little so the connection can be reused.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4<<10))
		return nil, &catalog.HTTPStatusError{StatusCode: resp.StatusCode, URL: c.endpoint.Path}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBody+1))
	if err != nil {
		return nil, &catalog.TransportError{Err: fmt.Errorf("read body: %w", err)}
	}
	if int64(len(body)) > c.maxBody {
		return nil, &catalog.MalformedResponseError{Reason: fmt.Sprintf("response exceeds %d MiB", c.maxBody>>20)}
	}
	return body, nil
}

func parseEndpoint(raw string) (*url.URL, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		trimmed = DefaultEndpoint
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "https://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse endpoint %q: %w", raw, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("parse endpoint %q: unsupported scheme %q", raw, u.Scheme)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("parse endpoint %q: missing host", raw)
	}
	u.Fragment = ""
	return u, nil
}
