// Package fixuclient is the API client the fixu apps build on: bearer
// auth on every request, category-routed diagnosis submission, and a
// typed error taxonomy instead of raw HTTP failures.
package fixuclient

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"
)

// TokenSource supplies the session token for each request. Passing it
// explicitly keeps auth out of package-level state and makes failure
// paths testable without a live session.
type TokenSource interface {
	Token() (string, error)
}

// StaticToken is a TokenSource for an already-obtained token.
type StaticToken string

func (s StaticToken) Token() (string, error) { return string(s), nil }

type Client struct {
	base   string
	http   *http.Client
	tokens TokenSource
}

type Option func(*Client)

func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

func WithTokenSource(ts TokenSource) Option {
	return func(c *Client) { c.tokens = ts }
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		base: strings.TrimSuffix(baseURL, "/"),
		http: &http.Client{Timeout: 30 * time.Second},
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// envelope is the server's standard response wrapper.
type envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// do runs one API call. authed calls fail with KindUnauthorized before
// touching the network when no usable token exists; a missing session
// must never look like an empty success.
func (c *Client) do(ctx context.Context, method, path string, body, out any, authed bool) error {
	var payload io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return &APIError{Kind: KindMalformedResponse, Message: "encode request", cause: err}
		}
		payload = bytes.NewReader(buf)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.base+path, payload)
	if err != nil {
		return &APIError{Kind: KindNetworkFailure, Message: "build request", cause: err}
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authed {
		tok, err := c.token()
		if err != nil {
			return err
		}
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	res, err := c.http.Do(req)
	if err != nil {
		return &APIError{Kind: KindNetworkFailure, Message: "request failed", cause: err}
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusUnauthorized {
		return &APIError{Kind: KindUnauthorized, Status: res.StatusCode, Message: readMessage(res.Body)}
	}
	if res.StatusCode/100 != 2 {
		return &APIError{Kind: KindServerError, Status: res.StatusCode, Message: readMessage(res.Body)}
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return &APIError{Kind: KindMalformedResponse, Status: res.StatusCode, Message: "decode response", cause: err}
	}
	return nil
}

// doEnveloped unwraps the {status, data} wrapper around list/get calls.
func (c *Client) doEnveloped(ctx context.Context, method, path string, body, out any, authed bool) error {
	var env envelope
	if err := c.do(ctx, method, path, body, &env, authed); err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	if len(env.Data) == 0 {
		return &APIError{Kind: KindMalformedResponse, Message: "response carries no data"}
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return &APIError{Kind: KindMalformedResponse, Message: "decode data", cause: err}
	}
	return nil
}

func (c *Client) token() (string, error) {
	if c.tokens == nil {
		return "", &APIError{Kind: KindUnauthorized, Message: "no session token configured"}
	}
	tok, err := c.tokens.Token()
	if err != nil {
		return "", &APIError{Kind: KindUnauthorized, Message: "token source failed", cause: err}
	}
	if tok == "" {
		return "", &APIError{Kind: KindUnauthorized, Message: "empty session token"}
	}
	return tok, nil
}

func readMessage(r io.Reader) string {
	buf, err := io.ReadAll(io.LimitReader(r, 4096))
	if err != nil {
		return ""
	}
	var env envelope
	if json.Unmarshal(buf, &env) == nil && env.Message != "" {
		return env.Message
	}
	return strings.TrimSpace(string(buf))
}
