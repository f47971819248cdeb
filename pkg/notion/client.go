package notion

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/athapong/notion-mcp/pkg/metrics"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"
)

const (
	DefaultBaseURL = "https://api.notion.com/v1"
	APIVersion     = "2022-06-28"

	// pageSize is the largest page the API returns or accepts in one call,
	// both for listing and for appending children.
	pageSize = 100
)

// Client talks to the Notion REST API.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *logrus.Entry
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL points the client at another API root, e.g. a test server.
func WithBaseURL(u string) Option {
	return func(c *Client) {
		if u != "" {
			c.baseURL = strings.TrimSuffix(u, "/")
		}
	}
}

// WithHTTPClient replaces the authenticated, retrying default client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		c.http = h
	}
}

// WithLogger sets the logger used for request tracing.
func WithLogger(l *logrus.Entry) Option {
	return func(c *Client) {
		c.logger = l
	}
}

// NewClient creates a client authenticated with an integration token.
func NewClient(token string, opts ...Option) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		logger:  logrus.NewEntry(logrus.StandardLogger()),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.http == nil {
		c.http = NewHTTPClient(token, c.logger)
	}
	return c
}

// do sends one API request and returns the parsed JSON body. op names the
// operation in errors, logs and metrics.
func (c *Client) do(ctx context.Context, op, method, path string, body interface{}) (gjson.Result, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return gjson.Result{}, errors.Wrapf(err, "%s: encode request", op)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return gjson.Result{}, errors.Wrapf(err, "%s: build request", op)
	}
	req.Header.Set("Notion-Version", APIVersion)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	started := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		metrics.ObserveRequest(op, "transport_error", started)
		return gjson.Result{}, errors.Wrapf(err, "%s: request failed", op)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	metrics.ObserveRequest(op, strconv.Itoa(resp.StatusCode), started)
	if err != nil {
		return gjson.Result{}, errors.Wrapf(err, "%s: read response", op)
	}

	c.logger.WithFields(logrus.Fields{
		"operation": op,
		"method":    method,
		"path":      path,
		"status":    resp.StatusCode,
		"elapsed":   time.Since(started).String(),
	}).Debug("notion request")

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return gjson.Result{}, errors.Wrap(parseAPIError(resp.StatusCode, data), op)
	}
	return gjson.ParseBytes(data), nil
}

// paginate calls fetch with successive cursors until the API reports no
// more results, collecting every item of "results".
func paginate(fetch func(cursor string) (gjson.Result, error)) ([]gjson.Result, error) {
	var (
		all    []gjson.Result
		cursor string
	)
	for {
		res, err := fetch(cursor)
		if err != nil {
			return nil, err
		}
		all = append(all, res.Get("results").Array()...)

		next := res.Get("next_cursor").String()
		if !res.Get("has_more").Bool() || next == "" {
			return all, nil
		}
		cursor = next
	}
}
