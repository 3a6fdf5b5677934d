// Package api provides the authenticated HTTP client for the Brale API.
package api

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/brale-xyz/brale-cli/internal/auth"
)

// ErrNotAuthenticated indicates no valid token could be obtained. The
// user must run `brale auth login`.
var ErrNotAuthenticated = errors.New("not authenticated: run 'brale auth login' first")

// Response is a fully read API response. Callers inspect the status code.
type Response struct {
	StatusCode int
	Status     string
	Header     http.Header
	Body       []byte
}

// OK reports whether the status code is in the 2xx range.
func (r *Response) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// Client wraps http.Client with bearer authentication and a single
// refresh-and-retry cycle on 401.
type Client struct {
	baseURL    string
	httpClient *http.Client
	auth       *auth.Manager
	limiter    *rate.Limiter
}

// Option configures the Client.
type Option func(*Client)

// WithTimeout sets the request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) { c.httpClient.Timeout = timeout }
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithRateLimit caps outbound requests per second.
func WithRateLimit(rps float64, burst int) Option {
	return func(c *Client) { c.limiter = rate.NewLimiter(rate.Limit(rps), burst) }
}

// New creates a Client for baseURL, authenticating through mgr.
func New(baseURL string, mgr *auth.Manager, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		auth: mgr,
		// Generous default: interactive commands never block on this.
		limiter: rate.NewLimiter(rate.Limit(10), 20),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Do issues an authenticated request against baseURL+path. A 401 response
// triggers exactly one forced re-authentication and one resend of the
// identical request; if the refresh fails or the retry returns 401 again,
// that response is returned as-is. All other statuses pass through.
func (c *Client) Do(ctx context.Context, method, path string, body []byte, headers map[string]string) (*Response, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	tok, ok := c.auth.Token(ctx)
	if !ok {
		return nil, ErrNotAuthenticated
	}

	resp, err := c.send(ctx, method, path, body, headers, tok.AccessToken)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusUnauthorized {
		return resp, nil
	}

	// Token rejected server-side: refresh once and resend the same
	// request. A failing refresh returns the original 401.
	fresh, err := c.auth.ForceRefresh(ctx)
	if err != nil {
		return resp, nil
	}
	return c.send(ctx, method, path, body, headers, fresh.AccessToken)
}

func (c *Client) send(ctx context.Context, method, path string, body []byte, headers map[string]string, token string) (*Response, error) {
	var bodyReader io.Reader
	if body != nil {
		bodyReader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Status:     resp.Status,
		Header:     resp.Header,
		Body:       data,
	}, nil
}
