// Copyright (c) 2026 taigamcp Contributors.
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package client

// In this file: Client construction and the request/decode pipeline.

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"taigamcp/internal/domain"
)

const defHTTPTimeout = 30 * time.Second

// Client talks to the Taiga REST API.  A single Client is safe for
// concurrent use; the limiter paces all requests together.
type Client struct {
	baseURL *url.URL
	token   domain.AuthToken
	hcl     *http.Client
	limits  Limits
	lim     *rate.Limiter
	lg      *slog.Logger
}

// Option is the signature of a Client option.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hcl *http.Client) Option {
	return func(c *Client) {
		if hcl != nil {
			c.hcl = hcl
		}
	}
}

// WithLimits overrides the default pacing limits.
func WithLimits(l Limits) Option {
	return func(c *Client) { c.limits = l }
}

// WithLogger sets the logger.
func WithLogger(lg *slog.Logger) Option {
	return func(c *Client) {
		if lg != nil {
			c.lg = lg
		}
	}
}

// New creates a Client for the API at baseURL, authenticating with token.
func New(baseURL string, token domain.AuthToken, opts ...Option) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid base URL %q: scheme and host are required", baseURL)
	}
	c := &Client{
		baseURL: u,
		token:   token,
		hcl:     &http.Client{Timeout: defHTTPTimeout},
		limits:  DefLimits,
		lg:      slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if err := c.limits.Validate(); err != nil {
		return nil, err
	}
	c.lim = c.limits.limiter()
	return c, nil
}

// Get performs a GET request and returns the decoded JSON response.
func (c *Client) Get(ctx context.Context, path string, params url.Values) (any, error) {
	return c.do(ctx, http.MethodGet, path, params, nil)
}

// Post performs a POST request with a JSON body.
func (c *Client) Post(ctx context.Context, path string, data any) (any, error) {
	return c.do(ctx, http.MethodPost, path, nil, data)
}

// Patch performs a PATCH request with a JSON body.
func (c *Client) Patch(ctx context.Context, path string, data any) (any, error) {
	return c.do(ctx, http.MethodPatch, path, nil, data)
}

// Delete performs a DELETE request.  A 2xx response with no body is the
// expected outcome.
func (c *Client) Delete(ctx context.Context, path string) error {
	_, err := c.do(ctx, http.MethodDelete, path, nil, nil)
	return err
}

func (c *Client) do(ctx context.Context, method, path string, params url.Values, data any) (any, error) {
	u := c.baseURL.JoinPath(path)
	if len(params) > 0 {
		u.RawQuery = params.Encode()
	}
	reqID := uuid.NewString()

	var body []byte
	if data != nil {
		var err error
		body, err = json.Marshal(data)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
	}

	var out any
	err := withRetry(ctx, c.lim, c.limits.Attempts, c.lg, func() error {
		var rdr io.Reader
		if body != nil {
			rdr = bytes.NewReader(body)
		}
		req, err := http.NewRequestWithContext(ctx, method, u.String(), rdr)
		if err != nil {
			return err
		}
		req.Header.Set("Authorization", c.token.BearerToken())
		req.Header.Set("Accept", "application/json")
		if body != nil {
			req.Header.Set("Content-Type", "application/json")
		}

		c.lg.DebugContext(ctx, "api request", "id", reqID, "method", method, "url", u.Redacted())

		resp, err := c.hcl.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
			se := newStatusError(resp)
			c.lg.DebugContext(ctx, "api error", "id", reqID, "code", se.Code)
			return se
		}
		out, err = decodeBody(resp.Body)
		return err
	})
	if err != nil {
		if !errors.Is(err, context.Canceled) {
			c.lg.WarnContext(ctx, "api request failed", "id", reqID, "method", method, "path", path, "error", err)
		}
		return nil, err
	}
	return out, nil
}

// decodeBody decodes a JSON response body; an empty body decodes to nil.
func decodeBody(r io.Reader) (any, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if len(bytes.TrimSpace(b)) == 0 {
		return nil, nil
	}
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return v, nil
}
