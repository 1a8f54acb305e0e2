// Package client provides the authenticated HTTP transport for the
// Paperless API.
//
// The client issues single requests: a non-2xx status, connection failure,
// or timeout is surfaced as a *TransportError and never retried here. Retry
// policy belongs to the caller.
package client

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Prometheus metrics for Paperless API requests.
var (
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "paperless_requests_total",
		Help: "Total Paperless API requests by endpoint and status",
	}, []string{"endpoint", "status"})

	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "paperless_request_duration_seconds",
		Help:    "Paperless API request duration in seconds by endpoint",
		Buckets: []float64{0.1, 0.5, 1, 2, 5, 10},
	}, []string{"endpoint"})

	errorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "paperless_errors_total",
		Help: "Total Paperless API errors by class",
	}, []string{"class"})
)

// ErrorClass represents a classification of transport errors.
type ErrorClass string

const (
	// ErrorClassClient represents 4xx client errors.
	ErrorClassClient ErrorClass = "client"

	// ErrorClassServer represents 5xx server errors.
	ErrorClassServer ErrorClass = "server"

	// ErrorClassNetwork represents network/timeout errors.
	ErrorClassNetwork ErrorClass = "network"
)

// Client is the authenticated HTTP transport. It is immutable after
// construction and safe for reuse by any number of paginators.
type Client struct {
	httpClient *http.Client
	config     Config
	logger     zerolog.Logger
}

// Config holds the transport configuration.
type Config struct {
	// Token is the Paperless API token, sent on every request as
	// "Authorization: Token <token>".
	Token string

	// UserAgent header sent on every request.
	UserAgent string

	// Timeout is the per-request timeout.
	Timeout time.Duration
}

// DefaultConfig returns a safe default configuration.
func DefaultConfig(token string) Config {
	return Config{
		Token:     token,
		UserAgent: "paperless-go/0.1.0",
		Timeout:   30 * time.Second,
	}
}

// New creates a new transport.
func New(cfg Config) (*Client, error) {
	if cfg.Token == "" {
		return nil, fmt.Errorf("token is required")
	}

	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}

	logger := log.With().Str("component", "paperless-client").Logger()

	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		config: cfg,
		logger: logger,
	}, nil
}

// Fetch performs an authenticated GET against rawURL and returns the
// response body. Any failure (request construction, network, non-2xx
// status, body read) is reported as a *TransportError carrying the URL and,
// when available, the HTTP status code.
func (c *Client) Fetch(ctx context.Context, rawURL string) ([]byte, error) {
	endpoint := endpointLabel(rawURL)

	startTime := time.Now()
	defer func() {
		requestDuration.WithLabelValues(endpoint).Observe(time.Since(startTime).Seconds())
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, &TransportError{URL: rawURL, Err: err}
	}
	c.authorize(req)

	c.logger.Debug().
		Str("endpoint", endpoint).
		Str("method", req.Method).
		Msg("Executing Paperless request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error().Err(err).Str("endpoint", endpoint).Msg("HTTP request failed")
		errorsTotal.WithLabelValues(string(ErrorClassNetwork)).Inc()
		requestsTotal.WithLabelValues(endpoint, "network_error").Inc()
		return nil, &TransportError{URL: rawURL, Err: err}
	}
	defer resp.Body.Close()

	requestsTotal.WithLabelValues(endpoint, fmt.Sprintf("%d", resp.StatusCode)).Inc()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		errClass := classifyStatus(resp.StatusCode)
		errorsTotal.WithLabelValues(string(errClass)).Inc()

		c.logger.Warn().
			Str("endpoint", endpoint).
			Int("status", resp.StatusCode).
			Str("error_class", string(errClass)).
			Msg("Paperless request error")

		return nil, &TransportError{
			URL:        rawURL,
			StatusCode: resp.StatusCode,
			Message:    resp.Status,
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		errorsTotal.WithLabelValues(string(ErrorClassNetwork)).Inc()
		return nil, &TransportError{URL: rawURL, Err: err}
	}

	return body, nil
}

// Head performs an authenticated HEAD against rawURL and returns the
// response headers. Used for size probes that must not download the body.
func (c *Client) Head(ctx context.Context, rawURL string) (http.Header, error) {
	endpoint := endpointLabel(rawURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, rawURL, nil)
	if err != nil {
		return nil, &TransportError{URL: rawURL, Err: err}
	}
	c.authorize(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		errorsTotal.WithLabelValues(string(ErrorClassNetwork)).Inc()
		requestsTotal.WithLabelValues(endpoint, "network_error").Inc()
		return nil, &TransportError{URL: rawURL, Err: err}
	}
	defer resp.Body.Close()

	requestsTotal.WithLabelValues(endpoint, fmt.Sprintf("%d", resp.StatusCode)).Inc()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		errorsTotal.WithLabelValues(string(classifyStatus(resp.StatusCode))).Inc()
		return nil, &TransportError{
			URL:        rawURL,
			StatusCode: resp.StatusCode,
			Message:    resp.Status,
		}
	}

	return resp.Header, nil
}

// authorize sets the headers required on every Paperless request. The Accept
// header pins API version 2 as documented by Paperless-ngx.
func (c *Client) authorize(req *http.Request) {
	req.Header.Set("Authorization", "Token "+c.config.Token)
	req.Header.Set("Accept", "application/json; version=2")
	if c.config.UserAgent != "" {
		req.Header.Set("User-Agent", c.config.UserAgent)
	}
}

// classifyStatus categorizes a non-2xx HTTP status for observability.
func classifyStatus(status int) ErrorClass {
	switch {
	case status >= 400 && status < 500:
		return ErrorClassClient
	case status >= 500:
		return ErrorClassServer
	default:
		return ErrorClassNetwork
	}
}

// endpointLabel reduces a request URL to its path for metric labels, keeping
// label cardinality independent of query strings.
func endpointLabel(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Path == "" {
		return rawURL
	}
	return u.Path
}

// SetHTTPClient sets a custom HTTP client (for testing).
func (c *Client) SetHTTPClient(client *http.Client) {
	c.httpClient = client
}
