// Package api implements the driven.API port over the remote clip
// service's JSON HTTP interface.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/clipworks/clipctl/internal/core/domain"
	"github.com/clipworks/clipctl/internal/core/ports/driven"
	"github.com/clipworks/clipctl/internal/logger"
)

// Ensure Client implements the port.
var _ driven.API = (*Client)(nil)

const (
	// DefaultBaseURL is the clip service address used when none is
	// configured.
	DefaultBaseURL = "http://127.0.0.1:8000"

	// DefaultTimeout is the default HTTP request timeout. Sitemap
	// clips crawl many pages server-side, so this is generous.
	DefaultTimeout = 5 * time.Minute

	// requestsPerSecond is the sustained client-side request rate.
	requestsPerSecond = 10.0

	// burstSize is the maximum request burst.
	burstSize = 5
)

// Client is the typed wrapper over the remote clip API. It normalises
// failures to the domain error taxonomy and performs no retries: clip
// submission is not idempotent, so delivery is at most once per call.
// The client holds no cached state.
type Client struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewClient creates a client for the clip service at baseURL.
// A zero timeout selects DefaultTimeout.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		limiter:    rate.NewLimiter(rate.Limit(requestsPerSecond), burstSize),
	}
}

// BaseURL returns the configured service address.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// do issues one request. The body, when non-nil, is marshalled as
// JSON. Transport failures come back as *domain.NetworkError; the
// response is returned as-is for the caller to decode.
func (c *Client) do(ctx context.Context, method, path string, body any) (*http.Response, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, &domain.NetworkError{Err: err}
	}

	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshalling request: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	c.setCommonHeaders(req)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	logger.Debug("%s %s", method, path)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &domain.NetworkError{Err: err}
	}
	return resp, nil
}

// setCommonHeaders attaches the headers every request carries,
// including the X-Request-ID that makes calls traceable server-side.
func (c *Client) setCommonHeaders(req *http.Request) {
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
}

// decodeJSON consumes the response body into v, normalising failures.
// Error responses prefer the FastAPI-style {"detail": ...} field.
func decodeJSON(resp *http.Response, v any) error {
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return apiError(resp)
	}
	if v == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return &domain.DecodeError{Err: err}
	}
	return nil
}

// apiError builds a *domain.APIError from an error response.
// The caller owns closing the body.
func apiError(resp *http.Response) error {
	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err != nil {
		return &domain.APIError{Status: resp.StatusCode}
	}

	var structured struct {
		Detail string `json:"detail"`
	}
	if json.Unmarshal(body, &structured) == nil && structured.Detail != "" {
		return &domain.APIError{Status: resp.StatusCode, Detail: structured.Detail}
	}
	return &domain.APIError{Status: resp.StatusCode, Detail: string(bytes.TrimSpace(body))}
}

// parseTimestamp accepts both RFC 3339 and the zone-less ISO form the
// service's datetime serialisation produces.
func parseTimestamp(s string) time.Time {
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02T15:04:05.999999", "2006-01-02T15:04:05"} {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts
		}
	}
	return time.Time{}
}
