// Package api is the HTTP transport to the remote commerce API.
//
// The ingestion core only depends on the GetJSON shape of this client;
// the health probe additionally uses Probe to inspect raw status codes.
// Timeouts live here, not in the core: a slow backend surfaces as a
// fetch error that the loader downgrades to an empty collection.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// ErrNotConfigured reports that no base URL was configured. Callers are
// expected to treat this the same as any other fetch failure.
var ErrNotConfigured = errors.New("api: base URL not configured")

// StatusError reports a non-2xx response from the API.
type StatusError struct {
	Path   string
	Status int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("api: GET %s: unexpected status %d", e.Path, e.Status)
}

// Client is a read-only JSON client for the commerce API.
type Client struct {
	baseURL string
	apiKey  string
	httpc   *http.Client
}

// NewClient builds a client for the given base URL. An empty base URL is
// allowed; every request then fails with ErrNotConfigured so the caller
// can degrade gracefully. The apiKey is optional.
func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		httpc:   &http.Client{Timeout: timeout},
	}
}

// Configured reports whether a base URL is set.
func (c *Client) Configured() bool {
	return c.baseURL != ""
}

// GetJSON performs a GET against path and decodes the JSON body into out.
func (c *Client) GetJSON(ctx context.Context, path string, out any) error {
	res, err := c.get(ctx, path)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		return &StatusError{Path: path, Status: res.StatusCode}
	}

	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("api: decode %s: %w", path, err)
	}
	return nil
}

// Probe performs a GET against path and returns only the status code,
// discarding the body. Used by the startup health checks.
func (c *Client) Probe(ctx context.Context, path string) (int, error) {
	res, err := c.get(ctx, path)
	if err != nil {
		return 0, err
	}
	defer res.Body.Close()
	_, _ = io.Copy(io.Discard, res.Body)
	return res.StatusCode, nil
}

func (c *Client) get(ctx context.Context, path string) (*http.Response, error) {
	if c.baseURL == "" {
		return nil, ErrNotConfigured
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("api: build request for %s: %w", path, err)
	}
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("X-API-Key", c.apiKey)
	}

	res, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("api: GET %s: %w", path, err)
	}
	return res, nil
}
