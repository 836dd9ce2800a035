// Package kalaapi is the HTTP client of the Kala Academy backend.
//
// Each method issues exactly one request: no retries and no batching. Response envelopes
// differ between endpoints and backend revisions; they are normalized here so callers only
// ever see domain types. Failures are returned as *RequestError.
package kalaapi

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/trezcool/kala/core"
)

const (
	requestIDHeader = "X-Request-ID"
	maxBodySize     = 10 << 20
)

type Client struct {
	baseURL string
	http    *http.Client
	logger  core.Logger
}

// New returns a Client for conf.API. httpClient may be nil.
func New(conf *core.Config, logger core.Logger, httpClient ...*http.Client) *Client {
	hc := &http.Client{Timeout: conf.API.Timeout}
	if len(httpClient) > 0 && httpClient[0] != nil {
		hc = httpClient[0]
	}
	return &Client{
		baseURL: strings.TrimRight(conf.API.BaseURL, "/"),
		http:    hc,
		logger:  logger,
	}
}

func (c *Client) BaseURL() string { return c.baseURL }

// do sends one request and returns the raw response body of a successful call.
// fallback is the error message used when the server gives none.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, in interface{}, fallback string) ([]byte, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return nil, errors.Wrap(err, "encoding request")
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, errors.Wrap(err, "building request")
	}
	reqID := uuid.New().String()
	req.Header.Set("Accept", "application/json")
	req.Header.Set(requestIDHeader, reqID)
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Debug("request failed", map[string]interface{}{
			"method": method, "path": path, "request_id": reqID, "error": err.Error(),
		})
		return nil, &RequestError{Message: fallback, Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, &RequestError{Status: resp.StatusCode, Message: fallback, Err: err}
	}
	c.logger.Debug("request done", map[string]interface{}{
		"method": method, "path": path, "status": resp.StatusCode,
		"request_id": reqID, "took": time.Since(start).String(),
	})

	if resp.StatusCode >= http.StatusBadRequest {
		msg := messageFrom(data)
		if msg == "" {
			msg = fallback
		}
		return nil, &RequestError{Status: resp.StatusCode, Message: msg}
	}
	return data, nil
}

// decodeFailed turns a response that could not be normalized into a RequestError.
func decodeFailed(err error, fallback string) error {
	return &RequestError{Status: http.StatusOK, Message: fallback, Err: err}
}

func idPath(format string, id core.ID) string {
	return strings.Replace(format, "{id}", id.String(), 1)
}
