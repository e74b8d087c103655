// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package api is the HTTP client for the listing platform's REST backend.
// All dashboard data lives behind that backend; this package only moves it
// over the wire and classifies failures. Every authenticated call reads
// the bearer token through a TokenSource so the session stays the single
// owner of the credential.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// DefaultTimeout bounds every backend call, uploads included.
const DefaultTimeout = 30 * time.Second

// maxErrorBody caps how much of an error response is read for its message.
const maxErrorBody = 64 << 10

// TokenSource returns the bearer token for the current request, or the
// empty string when the session holds none.
type TokenSource func(ctx context.Context) string

// Error is a non-2xx response from the backend. Message carries the
// server-supplied "message" field when the body had one.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("backend returned %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("backend returned %d", e.StatusCode)
}

// IsStatus reports whether err is a backend Error with the given status.
func IsStatus(err error, status int) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.StatusCode == status
}

// IsUnauthorized reports whether err is a 401 from the backend.
func IsUnauthorized(err error) bool { return IsStatus(err, http.StatusUnauthorized) }

// IsForbidden reports whether err is a 403 from the backend.
func IsForbidden(err error) bool { return IsStatus(err, http.StatusForbidden) }

// Message extracts the server-supplied message from err, or "" when err
// is not a backend Error or carried no message.
func Message(err error) string {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return ""
}

// Config holds client configuration.
type Config struct {
	// BaseURL is the backend origin, e.g. "https://localhost:7086".
	BaseURL string
	// Token supplies the bearer token per request. Required for all
	// calls except Login.
	Token TokenSource
	// Timeout overrides DefaultTimeout when positive.
	Timeout time.Duration
}

// Client talks to the listing backend.
type Client struct {
	baseURL    string
	token      TokenSource
	httpClient *http.Client
}

// New creates a backend client.
func New(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	token := cfg.Token
	if token == nil {
		token = func(context.Context) string { return "" }
	}
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		token:      token,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// BaseURL returns the backend origin the client was configured with.
func (c *Client) BaseURL() string { return c.baseURL }

// ImageURL resolves a relative image path from a backend payload against
// the backend origin. Absolute URLs pass through unchanged.
func (c *Client) ImageURL(path string) string {
	if path == "" {
		return ""
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return c.baseURL + path
}

// FetchImage downloads the stored image behind a relative path. Used on
// edit when the user keeps the existing image: the backend requires the
// image field on every update, so the current bytes are re-sent.
func (c *Client) FetchImage(ctx context.Context, path string) ([]byte, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.ImageURL(path), nil)
	if err != nil {
		return nil, "", fmt.Errorf("creating image request: %w", err)
	}
	c.authorize(ctx, req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("fetching image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, "", &Error{StatusCode: resp.StatusCode}
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", fmt.Errorf("reading image body: %w", err)
	}
	return data, resp.Header.Get("Content-Type"), nil
}

// get issues an authenticated GET and decodes the JSON response into out.
func (c *Client) get(ctx context.Context, endpoint string, out any) error {
	return c.do(ctx, http.MethodGet, endpoint, nil, "", out)
}

// sendJSON issues an authenticated request with a JSON body.
func (c *Client) sendJSON(ctx context.Context, method, endpoint string, body, out any) error {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return fmt.Errorf("encoding request body: %w", err)
		}
	}
	return c.do(ctx, method, endpoint, &buf, "application/json", out)
}

// sendForm issues an authenticated request with a multipart body.
func (c *Client) sendForm(ctx context.Context, method, endpoint string, form *Form, out any) error {
	body, contentType, err := form.encode()
	if err != nil {
		return fmt.Errorf("encoding multipart body: %w", err)
	}
	return c.do(ctx, method, endpoint, body, contentType, out)
}

// delete issues an authenticated DELETE.
func (c *Client) delete(ctx context.Context, endpoint string) error {
	return c.do(ctx, http.MethodDelete, endpoint, nil, "", nil)
}

func (c *Client) do(ctx context.Context, method, endpoint string, body io.Reader, contentType string, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, body)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")
	c.authorize(ctx, req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return decodeError(resp)
	}
	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding %s response: %w", endpoint, err)
	}
	return nil
}

func (c *Client) authorize(ctx context.Context, req *http.Request) {
	if token := c.token(ctx); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
}

// decodeError builds an *Error from a non-2xx response, pulling the
// server's "message" field out of the body when present.
func decodeError(resp *http.Response) error {
	apiErr := &Error{StatusCode: resp.StatusCode}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err != nil {
		return apiErr
	}
	var envelope struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil {
		apiErr.Message = envelope.Message
	}
	return apiErr
}
