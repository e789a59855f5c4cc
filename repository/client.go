package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Client talks to the restaurant's canonical CRUD server. The terminal keeps
// no durable state of its own; everything here is a remote read or write.
type Client struct {
	BaseURL string
	HTTP    *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		BaseURL: baseURL,
		HTTP:    &http.Client{Timeout: timeout},
	}
}

// envelope mirrors the server's response wrapper.
type envelope struct {
	OK    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Error string          `json:"error"`
}

func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return err
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.HTTP.Do(req)
	if err != nil {
		return &NetworkError{Op: method + " " + path, Err: err}
	}
	defer res.Body.Close()

	// status mapping must win even when the body is not a valid envelope
	var env envelope
	decodeErr := json.NewDecoder(res.Body).Decode(&env)

	switch {
	case res.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case res.StatusCode == http.StatusConflict:
		return fmt.Errorf("%w: %s", ErrConflict, env.Error)
	case res.StatusCode >= 400:
		return &NetworkError{Op: method + " " + path, Err: fmt.Errorf("status %d: %s", res.StatusCode, env.Error)}
	}

	if decodeErr == nil && !env.OK {
		return &NetworkError{Op: method + " " + path, Err: fmt.Errorf("server reported failure: %s", env.Error)}
	}
	if out != nil {
		if decodeErr != nil {
			return &NetworkError{Op: method + " " + path, Err: decodeErr}
		}
		if err := json.Unmarshal(env.Data, out); err != nil {
			return &NetworkError{Op: method + " " + path, Err: err}
		}
	}
	return nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

func (c *Client) patch(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPatch, path, body, out)
}
