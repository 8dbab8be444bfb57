// Package api is the typed client for the remote Hawkar data API.  All
// durable state (accounts, stalls, dishes, reviews, verification flags)
// lives behind that API; this service only reads and forwards it.  The
// package plays the role a SQL repository layer would play in a service that
// owned its database.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// StatusError is returned when the remote API answers with a non-2xx status.
// Callers that care (the login handler, the profile refresher) can pick the
// status out; everyone else treats it as an opaque failure.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("remote api: unexpected status %d", e.Code)
}

// Client holds the base URL and HTTP client shared by the per-area API
// structs.  No request timeout is set beyond the transport defaults: a slow
// profile fetch degrades one request's latency, and callers that can fall
// back (the refresher) do so on error, not on a deadline of our choosing.
type Client struct {
	base string
	http *http.Client
}

// New returns a client rooted at baseURL, e.g. "http://localhost:8000".
func New(baseURL string) *Client {
	return &Client{base: baseURL, http: &http.Client{}}
}

// getJSON issues a GET and decodes a 2xx JSON body into out.
func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+path, nil)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

// sendJSON issues a request with a JSON body and decodes a 2xx JSON response
// into out.  Pass nil for either side to skip it.
func (c *Client) sendJSON(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.base+path, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, resp.Body)
		return &StatusError{Code: resp.StatusCode}
	}
	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
