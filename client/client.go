// Package client is a typed Go SDK for the shiftflow HTTP API. It speaks
// the service's browser contract: a cookie session, CSRF double-submit on
// every POST, form-encoded request bodies, JSON responses, and page-state
// documents whose islands bootstrap the in-memory AppState.
//
// Calls are synchronous and take a context; there is no retry, request
// de-duplication, or cancellation beyond the caller's context. A Client
// and the state types it feeds are not safe for concurrent use.
package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"
)

// CSRFCookieName is the cookie the service issues the CSRF token under.
const CSRFCookieName = "csrftoken"

const defaultTimeout = 30 * time.Second

// Client talks to one shiftflow deployment. The cookie jar carries the
// session and CSRF cookies across calls, exactly like a browser tab.
type Client struct {
	base *url.URL
	http *http.Client

	// csrfFallback mirrors the hidden csrfmiddlewaretoken form field: it
	// is used when no csrftoken cookie has been issued yet.
	csrfFallback string
}

// New creates a Client for the service at baseURL.
func New(baseURL string) (*Client, error) {
	u, err := url.Parse(strings.TrimSpace(baseURL))
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("client: invalid base URL %q", baseURL)
	}
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("client: failed to create cookie jar: %w", err)
	}
	return &Client{
		base: u,
		http: &http.Client{Jar: jar, Timeout: defaultTimeout},
	}, nil
}

// SetCSRFFallback holds a token to send when the csrftoken cookie is
// absent, mirroring the hidden-field fallback of the form contract.
func (c *Client) SetCSRFFallback(token string) { c.csrfFallback = token }

// resolve joins a path-and-query reference onto the base URL.
func (c *Client) resolve(ref string) (string, error) {
	u, err := url.Parse(ref)
	if err != nil {
		return "", fmt.Errorf("client: invalid request path %q", ref)
	}
	return c.base.ResolveReference(u).String(), nil
}

// csrfToken reads the current token from the cookie jar, falling back to
// the held form-field value.
func (c *Client) csrfToken() string {
	for _, cookie := range c.http.Jar.Cookies(c.base) {
		if cookie.Name == CSRFCookieName {
			return cookie.Value
		}
	}
	return c.csrfFallback
}

// getJSON issues a GET and decodes the JSON response into out. Non-2xx
// responses are returned as *APIError.
func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	target, err := c.resolve(path)
	if err != nil {
		return err
	}
	if len(query) > 0 {
		if strings.Contains(target, "?") {
			target += "&" + query.Encode()
		} else {
			target += "?" + query.Encode()
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return fmt.Errorf("client: failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	return c.do(req, out)
}

// postForm issues a form-encoded POST with the CSRF header and decodes
// the JSON response into out. Non-2xx responses are returned as
// *APIError.
func (c *Client) postForm(ctx context.Context, path string, form url.Values, out any) error {
	target, err := c.resolve(path)
	if err != nil {
		return err
	}
	if form == nil {
		form = url.Values{}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, target, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("client: failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")
	if token := c.csrfToken(); token != "" {
		req.Header.Set("X-CSRFToken", token)
	}
	return c.do(req, out)
}

// postFile issues a multipart POST carrying one file field plus the CSRF
// header.
func (c *Client) postFile(ctx context.Context, path, field, filename string, file io.Reader, out any) error {
	target, err := c.resolve(path)
	if err != nil {
		return err
	}

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile(field, filename)
	if err != nil {
		return fmt.Errorf("client: failed to build upload: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return fmt.Errorf("client: failed to read upload: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("client: failed to build upload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, target, &body)
	if err != nil {
		return fmt.Errorf("client: failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Accept", "application/json")
	if token := c.csrfToken(); token != "" {
		req.Header.Set("X-CSRFToken", token)
	}
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("client: request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("client: failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return parseAPIError(resp.StatusCode, respBody)
	}
	if out == nil {
		return nil
	}
	return decodeJSON(respBody, out)
}
