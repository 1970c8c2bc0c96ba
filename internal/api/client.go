// Package api is the typed HTTP pipeline to the loan backend. It owns
// the base URL, JSON encoding, the bearer credential stage and the 401
// stage; everything else is surfaced to the caller as a typed error.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"strings"
	"time"
)

// Credentials is the persisted token slot the request pipeline reads
// from and, on 401, clears.
type Credentials interface {
	BearerToken() string
	Clear() error
}

type Client struct {
	base  string
	hc    *http.Client
	creds Credentials

	// onUnauthorized runs after a 401 has cleared the credentials,
	// before the error propagates. The session store hangs its
	// force-logout-and-navigate behavior here.
	onUnauthorized func()
}

func New(baseURL string, timeout time.Duration, creds Credentials) *Client {
	return &Client{
		base:  strings.TrimRight(baseURL, "/"),
		hc:    &http.Client{Timeout: timeout},
		creds: creds,
	}
}

func (c *Client) SetUnauthorizedHook(fn func()) { c.onUnauthorized = fn }

// BaseURL returns the configured backend root, no trailing slash.
func (c *Client) BaseURL() string { return c.base }

// do issues one request and decodes the response envelope. A failed
// request fails exactly once; there is no retry stage.
func (c *Client) do(ctx context.Context, method, path string, body any) (*envelope, error) {
	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, rdr)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if tok := c.creds.BearerToken(); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Err: err}
	}

	if resp.StatusCode == http.StatusUnauthorized {
		if err := c.creds.Clear(); err != nil {
			log.Printf("api: clearing credentials after 401: %v", err)
		}
		if c.onUnauthorized != nil {
			c.onUnauthorized()
		}
		return nil, ErrUnauthorized
	}

	var env envelope
	if len(raw) > 0 {
		// A non-JSON body on an error status still maps to a usable
		// Error below, so the decode failure itself is not fatal.
		_ = json.Unmarshal(raw, &env)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &Error{
			Status:        resp.StatusCode,
			Message:       env.Message,
			FieldErrors:   env.fieldErrors(),
			MissingFields: env.MissingFields,
		}
	}
	if !env.Success {
		return nil, &Error{
			Status:        resp.StatusCode,
			Message:       env.Message,
			FieldErrors:   env.fieldErrors(),
			MissingFields: env.MissingFields,
		}
	}
	return &env, nil
}
