// Package http implements the JSON transport of the SDK: basic-auth
// requests against the Swydo endpoint with non-2xx answers decoded into
// *swydo.APIError values.
package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/mayple/swydo/internal/constants"
	"github.com/mayple/swydo/pkg/swydo"
)

// Client is the HTTP transport used by the operation invoker.
type Client struct {
	baseURL    string
	apiKey     string
	userAgent  string
	logger     swydo.Logger
	debug      bool
	httpClient *retryablehttp.Client
}

// Response is a decoded HTTP answer.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets a structured logger.
func WithLogger(logger swydo.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request/response logging through the logger.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.HTTPClient.Timeout = timeout
	}
}

// WithRetryConfig enables transport-level retries for connection
// failures. Throttling answers are not retried here; that policy lives in
// the call executor.
func WithRetryConfig(retryMax int, waitMin, waitMax time.Duration) Option {
	return func(c *Client) {
		c.httpClient.RetryMax = retryMax
		c.httpClient.RetryWaitMin = waitMin
		c.httpClient.RetryWaitMax = waitMax
	}
}

// NewClient creates a transport bound to baseURL, authenticating every
// request with the fixed "API" basic-auth user and apiKey as password.
func NewClient(baseURL, apiKey string, opts ...Option) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = 0
	retryClient.Logger = nil
	retryClient.HTTPClient.Timeout = constants.DefaultHTTPTimeout
	// Only connection errors are retried by the transport; status-based
	// policy belongs to the layers above.
	retryClient.CheckRetry = func(ctx context.Context, resp *http.Response, err error) (bool, error) {
		if ctx.Err() != nil {
			return false, ctx.Err()
		}

		return err != nil, nil
	}

	client := &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		apiKey:     apiKey,
		userAgent:  constants.DefaultUserAgent,
		httpClient: retryClient,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// Do issues one request and decodes the answer. body, when non-nil, is
// JSON-marshaled. Non-2xx answers are returned as *swydo.APIError with
// whatever of the error body could be parsed.
func (c *Client) Do(ctx context.Context, method, path string, query url.Values, body any) (*Response, error) {
	requestURL := c.baseURL + path
	if len(query) > 0 {
		requestURL += "?" + query.Encode()
	}

	var reader io.Reader

	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshaling request body: %w", err)
		}

		reader = bytes.NewReader(data)
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, method, requestURL, reader)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	req.SetBasicAuth(constants.BasicAuthUser, c.apiKey)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("API request", map[string]interface{}{
			"method": method,
			"path":   path,
		})
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("sending request: %w", err)
	}

	defer func() {
		_ = resp.Body.Close()
	}()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("API response", map[string]interface{}{
			"method":      method,
			"path":        path,
			"status_code": resp.StatusCode,
		})
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, c.decodeError(resp.StatusCode, data)
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Headers:    resp.Header,
		Body:       data,
	}, nil
}

// decodeError shapes a non-2xx answer into an APIError. An unparseable
// body leaves Code empty so that callers sniffing for sentinel codes fall
// through to propagation.
func (c *Client) decodeError(statusCode int, body []byte) error {
	apiErr := &swydo.APIError{StatusCode: statusCode}

	if len(body) > 0 {
		_ = json.Unmarshal(body, apiErr)
	}

	return apiErr
}
