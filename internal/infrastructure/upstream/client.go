// Package upstream is the HTTP client for the backend hotel service. The
// backend owns all business logic; this client only attaches credentials,
// forwards JSON and normalizes transport failures.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/hotelaria/hotel-gateway/internal/core/domain"
	"github.com/hotelaria/hotel-gateway/internal/core/ports"
)

const defaultTimeout = 15 * time.Second

// Client implements ports.Upstream against a base URL.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient builds a Client. A default timeout is applied when none is
// provided.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// Forward issues method+path?query with the given bearer token, relaying
// whatever status the backend answers. Only a failed network call is an
// error; it wraps domain.ErrUpstreamUnreachable.
func (c *Client) Forward(ctx context.Context, method, path, rawQuery, bearer string, body []byte) (*ports.RelayedResponse, error) {
	url := c.baseURL + path
	if rawQuery != "" {
		url += "?" + rawQuery
	}

	var rd io.Reader
	if len(body) > 0 {
		rd = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, rd)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUpstreamUnreachable, err)
	}
	req.Header.Set("Content-Type", "application/json")
	// An absent token is forwarded as an empty bearer: rejecting it is the
	// backend's call, not the proxy's.
	req.Header.Set("Authorization", "Bearer "+bearer)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUpstreamUnreachable, err)
	}
	defer resp.Body.Close()

	return relay(resp)
}

// Authenticate posts credentials to one of the backend auth endpoints.
func (c *Client) Authenticate(ctx context.Context, endpoint string, payload any) (*ports.RelayedResponse, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return c.Forward(ctx, http.MethodPost, endpoint, "", "", body)
}

// relay reads the backend response into a RelayedResponse. A body that is
// not valid JSON is replaced with an empty object so the relay itself
// never fails.
func relay(resp *http.Response) (*ports.RelayedResponse, error) {
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %v", domain.ErrUpstreamUnreachable, err)
	}
	if !json.Valid(raw) || len(bytes.TrimSpace(raw)) == 0 {
		raw = []byte("{}")
	}
	return &ports.RelayedResponse{Status: resp.StatusCode, Body: raw}, nil
}
