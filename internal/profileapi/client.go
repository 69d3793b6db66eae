// Package profileapi fetches profile records from the backend profile endpoint.
package profileapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/nfrund/profileview/internal/domain"
	"github.com/nfrund/profileview/internal/profile"
)

// maxErrorBody bounds how much of a failed response is read for its message.
const maxErrorBody = 64 << 10

// Client performs the single profile read per view activation. It never
// retries.
type Client struct {
	endpoint string
	http     *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// New creates a Client for the profile endpoint. timeout bounds each fetch.
func New(endpoint string, timeout time.Duration, opts ...Option) *Client {
	c := &Client{
		endpoint: endpoint,
		http:     &http.Client{Timeout: timeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FetchProfile reads the profile record authorized by credential.
//
// A 401 response yields domain.ErrUnauthorized. Any other non-2xx response,
// or no response at all, yields a *domain.BackendError. Cancellation of ctx
// is returned unwrapped so callers can tell a torn-down view from a failure.
// A successful response whose body is null returns a nil Record.
func (c *Client) FetchProfile(ctx context.Context, credential string) (profile.Record, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build profile request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+credential)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, &domain.BackendError{Err: err}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return nil, domain.ErrUnauthorized
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return nil, &domain.BackendError{
			Status:  resp.StatusCode,
			Message: errorMessage(resp.Body),
		}
	}

	rec, err := profile.DecodeRecord(resp.Body)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, &domain.BackendError{Status: resp.StatusCode, Err: err}
	}
	return rec, nil
}

// errorMessage extracts the conventional "message" field of a JSON error body.
func errorMessage(body io.Reader) string {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(io.LimitReader(body, maxErrorBody)).Decode(&payload); err != nil {
		return ""
	}
	return payload.Message
}
