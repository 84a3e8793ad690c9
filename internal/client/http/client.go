package http

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cyphera/cyphera-feesim/internal/logger"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// maxErrorBody caps how much of a failed response is kept in HTTPError.
const maxErrorBody = 64 << 10

// RequestOption modifies an outgoing request
type RequestOption func(*http.Request)

// ClientOption configures an HTTPClient
type ClientOption func(*HTTPClient)

// Middleware wraps the client's transport
type Middleware func(http.RoundTripper) http.RoundTripper

// HTTPError is returned for any response with a 4xx or 5xx status.
type HTTPError struct {
	StatusCode int
	Status     string
	URL        string
	Method     string
	Body       string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%s %s failed with status %d %s: %s", e.Method, e.URL, e.StatusCode, e.Status, e.Body)
}

// HTTPClient sends single-shot JSON GET requests for the price feed clients.
// Requests are never retried.
type HTTPClient struct {
	httpClient     *http.Client
	baseURL        string
	defaultHeaders map[string]string
}

// NewHTTPClient creates an HTTPClient. Each WithMiddleware wraps the transport
// built so far, so the last one added sees the request first.
func NewHTTPClient(options ...ClientOption) *HTTPClient {
	c := &HTTPClient{
		httpClient:     &http.Client{Timeout: 30 * time.Second},
		defaultHeaders: map[string]string{"Accept": "application/json"},
	}
	for _, option := range options {
		option(c)
	}
	return c
}

// WithBaseURL prefixes every request path with baseURL
func WithBaseURL(baseURL string) ClientOption {
	return func(c *HTTPClient) {
		c.baseURL = strings.TrimSuffix(baseURL, "/")
	}
}

// WithDefaultHeader sets a header on every request
func WithDefaultHeader(key, value string) ClientOption {
	return func(c *HTTPClient) {
		c.defaultHeaders[key] = value
	}
}

// WithTimeout bounds each request, including reading the body
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *HTTPClient) {
		c.httpClient.Timeout = timeout
	}
}

// WithMiddleware wraps the current transport with middleware
func WithMiddleware(middleware Middleware) ClientOption {
	return func(c *HTTPClient) {
		transport := c.httpClient.Transport
		if transport == nil {
			transport = http.DefaultTransport
		}
		c.httpClient.Transport = middleware(transport)
	}
}

// WithHeader sets a header on a single request
func WithHeader(key, value string) RequestOption {
	return func(req *http.Request) {
		req.Header.Set(key, value)
	}
}

// WithQueryParam adds a query parameter to a single request
func WithQueryParam(key, value string) RequestOption {
	return func(req *http.Request) {
		q := req.URL.Query()
		q.Add(key, value)
		req.URL.RawQuery = q.Encode()
	}
}

// GetJSON sends one GET request and decodes the JSON body into target.
// A 4xx or 5xx response is returned as *HTTPError.
func (c *HTTPClient) GetJSON(ctx context.Context, path string, target interface{}, options ...RequestOption) error {
	fullURL, err := c.resolveURL(path)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return errors.Wrap(err, "failed to create request")
	}
	for key, value := range c.defaultHeaders {
		req.Header.Set(key, value)
	}
	for _, option := range options {
		option(req)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Error("HTTP request failed",
			zap.String("url", fullURL),
			zap.Error(err),
			zap.Duration("duration", time.Since(start)))
		return errors.Wrap(err, "http request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		logger.Warn("HTTP error response",
			zap.String("url", fullURL),
			zap.Int("status", resp.StatusCode),
			zap.Duration("duration", time.Since(start)))
		return &HTTPError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			URL:        fullURL,
			Method:     req.Method,
			Body:       string(body),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		return errors.Wrap(err, "failed to decode response body")
	}
	return nil
}

func (c *HTTPClient) resolveURL(path string) (string, error) {
	if c.baseURL != "" {
		return c.baseURL + "/" + strings.TrimPrefix(path, "/"), nil
	}
	if _, err := url.ParseRequestURI(path); err != nil {
		return "", errors.Wrapf(err, "invalid path used without base URL: %s", path)
	}
	return path, nil
}

// LoggingMiddleware logs every round trip at debug level
func LoggingMiddleware() Middleware {
	return func(next http.RoundTripper) http.RoundTripper {
		return roundTripperFunc(func(req *http.Request) (*http.Response, error) {
			start := time.Now()
			resp, err := next.RoundTrip(req)
			if err != nil {
				return resp, err
			}
			logger.Debug("HTTP round trip",
				zap.String("method", req.Method),
				zap.String("url", req.URL.String()),
				zap.Int("status", resp.StatusCode),
				zap.Duration("duration", time.Since(start)))
			return resp, nil
		})
	}
}

type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}
