// Package metrics provides the centralized Prometheus metrics registry for
// the Paperless client. All metrics are defined in their respective packages
// (client, pagination) to maintain modularity and avoid circular
// dependencies.
//
// This package provides documentation and reference for all available
// metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Registry is the default Prometheus registry used by the Paperless client.
// All metrics are automatically registered via promauto in their respective
// packages.
var Registry = prometheus.DefaultRegisterer

// Metrics Documentation
//
// Request Metrics (pkg/client):
//   - paperless_requests_total{endpoint, status} (Counter): Total requests by endpoint path and HTTP status
//   - paperless_request_duration_seconds{endpoint} (Histogram): Request duration by endpoint path
//   - paperless_errors_total{class} (Counter): Errors by class (client, server, network)
//
// Pagination Metrics (pkg/pagination):
//   - paperless_pages_fetched_total{resource} (Counter): Result pages fetched by resource
//   - paperless_page_fetch_errors_total{resource} (Counter): Failed page fetches by resource
//
// Example Prometheus Queries:
//
//   # Request Error Rate
//   rate(paperless_errors_total[5m])
//
//   # P95 Request Latency
//   histogram_quantile(0.95, rate(paperless_request_duration_seconds_bucket[5m]))
//
//   # Pages per Listing Walk
//   rate(paperless_pages_fetched_total[5m])
