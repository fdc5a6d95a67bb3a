// Package client provides a Go client for the anchorkit HTTP API.
//
// The client mirrors the server routes one method per operation and
// retries transient failures (network errors, 5xx responses) with
// exponential backoff. API errors carry the machine-readable code from
// the server's error envelope as an [*APIError].
//
//	c := client.New("http://localhost:8474")
//	res, err := c.Resolve(ctx, doc, pipeline.Options{Formats: []string{"svg"}})
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/anchorkit/anchorkit/pkg/document"
	"github.com/anchorkit/anchorkit/pkg/httputil"
	"github.com/anchorkit/anchorkit/pkg/pipeline"
)

const httpTimeout = 10 * time.Second

var (
	// ErrNotFound is returned when a document doesn't exist on the server.
	ErrNotFound = errors.New("document not found")

	// ErrNetwork is returned for HTTP failures (timeouts, connection
	// errors, 5xx responses) that survive retrying.
	ErrNetwork = errors.New("network error")
)

// APIError is a structured error returned by the server.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Resolution is the server's response to resolve calls.
type Resolution struct {
	DocHash   string              `json:"doc_hash,omitempty"`
	Viewport  document.Viewport   `json:"viewport"`
	Elements  []document.Resolved `json:"elements"`
	Artifacts map[string][]byte   `json:"artifacts,omitempty"`
	CacheInfo pipeline.CacheInfo  `json:"cache_info"`
}

// Client talks to an anchorkit server.
type Client struct {
	baseURL string
	http    *http.Client
}

// New creates a client for the server at baseURL, e.g.
// "http://localhost:8474".
func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		http:    &http.Client{Timeout: httpTimeout},
	}
}

// Health checks server liveness and returns the server version.
func (c *Client) Health(ctx context.Context) (string, error) {
	var resp map[string]string
	if err := c.do(ctx, http.MethodGet, "/healthz", nil, &resp); err != nil {
		return "", err
	}
	return resp["version"], nil
}

// Resolve resolves an inline document without storing it.
func (c *Client) Resolve(ctx context.Context, doc *document.Document, opts pipeline.Options) (*Resolution, error) {
	body := map[string]any{"document": doc, "options": opts}
	var res Resolution
	if err := c.do(ctx, http.MethodPost, "/v1/resolve", body, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// ResolveStored resolves a document already stored on the server.
func (c *Client) ResolveStored(ctx context.Context, id string, opts pipeline.Options) (*Resolution, error) {
	var res Resolution
	if err := c.do(ctx, http.MethodPost, "/v1/documents/"+id+"/resolve", opts, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// Create stores a new document.
func (c *Client) Create(ctx context.Context, doc *document.Document) error {
	return c.do(ctx, http.MethodPost, "/v1/documents", doc, nil)
}

// Get fetches a stored document by id.
func (c *Client) Get(ctx context.Context, id string) (*document.Document, error) {
	var doc document.Document
	if err := c.do(ctx, http.MethodGet, "/v1/documents/"+id, nil, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Put replaces the stored document with the given id.
func (c *Client) Put(ctx context.Context, id string, doc *document.Document) error {
	return c.do(ctx, http.MethodPut, "/v1/documents/"+id, doc, nil)
}

// Delete removes a stored document.
func (c *Client) Delete(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/v1/documents/"+id, nil, nil)
}

// List returns the ids of all stored documents.
func (c *Client) List(ctx context.Context) ([]string, error) {
	var resp map[string][]string
	if err := c.do(ctx, http.MethodGet, "/v1/documents", nil, &resp); err != nil {
		return nil, err
	}
	return resp["documents"], nil
}

// do performs a request with retries and decodes the JSON response
// into out (when out is non-nil).
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var payload []byte
	if body != nil {
		var err error
		if payload, err = json.Marshal(body); err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
	}
	return httputil.RetryWithBackoff(ctx, func() error {
		return c.doOnce(ctx, method, path, payload, out)
	})
}

func (c *Client) doOnce(ctx context.Context, method, path string, payload []byte, out any) error {
	var body *bytes.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	} else {
		body = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &httputil.RetryableError{Err: fmt.Errorf("%w: %v", ErrNetwork, err)}
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return err
	}
	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func checkStatus(resp *http.Response) error {
	switch {
	case resp.StatusCode < 300:
		return nil
	case resp.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case resp.StatusCode >= 500:
		return &httputil.RetryableError{Err: fmt.Errorf("%w: status %d", ErrNetwork, resp.StatusCode)}
	default:
		var envelope struct {
			Error APIError `json:"error"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&envelope); err == nil && envelope.Error.Code != "" {
			return &envelope.Error
		}
		return fmt.Errorf("%w: status %d", ErrNetwork, resp.StatusCode)
	}
}
