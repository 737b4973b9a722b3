// Package supabase is the hosted persistence backend: CRUD over
// PostgREST and session management over GoTrue. The collaborator is
// opaque; row-level isolation of reads is its guarantee, not checked
// here.
package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"

	"serviceos/internal/domain/principal"
	"serviceos/internal/infrastructure/config"
)

const (
	restPrefix = "/rest/v1"
	authPrefix = "/auth/v1"
)

// Client carries the project endpoint and publishable key shared by the
// order store and the auth client. No timeout is imposed here; the
// transport's defaults apply.
type Client struct {
	baseURL string
	anonKey string
	http    *http.Client
}

func NewClient(baseURL, anonKey string) *Client {
	return &Client{
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		anonKey: strings.TrimSpace(anonKey),
		http:    &http.Client{},
	}
}

// IsConfigured reports whether the client points at a real project.
func (c *Client) IsConfigured() bool {
	return config.IsRemoteConfigured(c.baseURL, c.anonKey)
}

// do performs one collaborator round trip. bearer overrides the token
// taken from the request context; the publishable key is the last
// resort. A nil out skips decoding. Collaborator errors are logged and
// returned as-is to the caller, never retried.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any, out any, extraHeaders map[string]string, bearer string) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return err
	}

	if bearer == "" {
		bearer = principal.AccessTokenFrom(ctx)
	}
	if bearer == "" {
		bearer = c.anonKey
	}
	req.Header.Set("apikey", c.anonKey)
	req.Header.Set("Authorization", "Bearer "+bearer)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range extraHeaders {
		req.Header.Set(k, v)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		log.Printf("[supabase] %s %s failed err=%v", method, path, err)
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Printf("[supabase] %s %s status=%d body=%s", method, path, resp.StatusCode, truncate(raw, 512))
		return &APIError{Method: method, Path: path, Status: resp.StatusCode, Body: string(raw)}
	}

	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		log.Printf("[supabase] %s %s decode failed err=%v", method, path, err)
		return err
	}
	return nil
}

// APIError is a non-2xx collaborator response.
type APIError struct {
	Method string
	Path   string
	Status int
	Body   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("supabase: %s %s: status %d", e.Method, e.Path, e.Status)
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
