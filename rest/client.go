// Package rest implements echoquill.StoryGenerator over the generation service's JSON HTTP API.
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/fwojciec/echoquill"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ echoquill.StoryGenerator = (*Client)(nil)

// DefaultEndpoint is the address of a locally running generation service.
const DefaultEndpoint = "http://127.0.0.1:8000/generate"

// DefaultTimeout bounds a single generation call. Long stories take a while.
const DefaultTimeout = 2 * time.Minute

// RequestIDHeader carries the correlation ID of a call.
const RequestIDHeader = "X-Request-ID"

// maxBodySize caps how much of a response body is read.
const maxBodySize = 4 << 20

// Client calls the generation service.
type Client struct {
	endpoint   string
	httpClient *http.Client
	timeout    time.Duration
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithTimeout sets the timeout for a generation call.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		c.timeout = d
	}
}

// WithHTTPClient sets the underlying HTTP client. The client is copied and its
// timeout replaced by the Client's, so hc itself is never modified.
// A nil client is ignored.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// NewClient creates a Client that posts requests to endpoint.
func NewClient(endpoint string, opts ...ClientOption) *Client {
	c := &Client{
		endpoint:   endpoint,
		httpClient: &http.Client{},
		timeout:    DefaultTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}
	hc := *c.httpClient
	hc.Timeout = c.timeout
	c.httpClient = &hc
	return c
}

type generateResponse struct {
	Story *string `json:"story"`
}

type errorResponse struct {
	Detail json.RawMessage `json:"detail"`
}

// Generate posts req to the service and returns the story it produced.
func (c *Client) Generate(ctx context.Context, req echoquill.GenerationRequest) (string, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("rest: encode request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", &echoquill.TransportError{Op: "send", Err: err}
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set(RequestIDHeader, uuid.NewString())

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", &echoquill.TransportError{Op: "send", Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return "", &echoquill.TransportError{Op: "read", Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &echoquill.ServiceError{
			StatusCode: resp.StatusCode,
			Detail:     parseDetail(data),
		}
	}

	var out generateResponse
	if err := json.Unmarshal(data, &out); err != nil {
		return "", &echoquill.TransportError{Op: "decode", Err: err}
	}
	if out.Story == nil {
		return "", &echoquill.TransportError{Op: "decode", Err: fmt.Errorf("response has no story field")}
	}
	return *out.Story, nil
}

// parseDetail extracts the detail message from an error body.
// Non-JSON bodies and non-string details (such as validation error lists) yield "".
func parseDetail(data []byte) string {
	var out errorResponse
	if err := json.Unmarshal(data, &out); err != nil || len(out.Detail) == 0 {
		return ""
	}
	var detail string
	if err := json.Unmarshal(out.Detail, &detail); err != nil {
		return ""
	}
	return detail
}
