package gateway

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/google/uuid"

	"github.com/pravendra93/support-creator-web/internal/pkg/env"
)

// BaseURL is the upstream address for server-side calls (internal network).
func BaseURL() string {
	return env.GetEnv("INTERNAL_BACKEND_URL", "http://api:8000")
}

// PublicBaseURL is the upstream address embedded into pages for anything
// the browser must reach directly (e.g. the chatbot widget snippet).
func PublicBaseURL() string {
	return env.GetEnv("PUBLIC_BACKEND_URL", "https://api.dev.assistra.app")
}

// Client issues authenticated JSON calls against the backend service.
// Deliberately no client-side timeout: the backend owns request deadlines
// and the proxy only ever relays one call per request.
type Client struct {
	base string
	http *http.Client
}

func New(base string) *Client {
	return &Client{
		base: base,
		http: &http.Client{},
	}
}

var defaultClient *Client

// Default returns the process-wide client pointed at BaseURL.
func Default() *Client {
	if defaultClient == nil {
		defaultClient = New(BaseURL())
	}
	return defaultClient
}

// SetDefault swaps the process-wide client (tests point it at a stub).
func SetDefault(c *Client) {
	defaultClient = c
}

// Result is a completed upstream response. Body is fully read so callers
// can both inspect and relay it.
type Result struct {
	Status int
	Body   []byte
}

func (r *Result) OK() bool {
	return r.Status >= 200 && r.Status < 300
}

func (r *Result) JSON(v interface{}) error {
	if len(r.Body) == 0 {
		return nil
	}
	return json.Unmarshal(r.Body, v)
}

// Do performs one upstream call. The token, when non-empty, is attached
// as a bearer credential. rawQuery is copied verbatim onto the URL.
func (c *Client) Do(method, path, rawQuery, token string, body []byte) (*Result, error) {
	url := c.base + path
	if rawQuery != "" {
		url += "?" + rawQuery
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequest(method, url, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to build upstream request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("upstream request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read upstream response: %w", err)
	}

	return &Result{Status: resp.StatusCode, Body: data}, nil
}

// errorBody covers the error shapes the backend produces: a list of
// validation errors with per-field messages, a plain detail string, or a
// simple message envelope.
type errorBody struct {
	Detail  json.RawMessage `json:"detail"`
	Message string          `json:"message"`
}

type validationError struct {
	Msg string `json:"msg"`
}

// Message extracts a human-readable error message from an upstream error
// body, falling back to the given per-operation default.
func Message(body []byte, fallback string) string {
	var eb errorBody
	if err := json.Unmarshal(body, &eb); err != nil {
		return fallback
	}

	if len(eb.Detail) > 0 {
		var list []validationError
		if err := json.Unmarshal(eb.Detail, &list); err == nil {
			if len(list) > 0 && list[0].Msg != "" {
				return list[0].Msg
			}
		}
		var s string
		if err := json.Unmarshal(eb.Detail, &s); err == nil && s != "" {
			return s
		}
	}

	if eb.Message != "" {
		return eb.Message
	}

	return fallback
}
