// Package testutil provides testing utilities for the Paperless client.
package testutil

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"time"
)

// MockResponse defines the behavior for a mock Paperless endpoint response.
type MockResponse struct {
	StatusCode int
	Body       string
	Headers    map[string]string
	Delay      time.Duration
}

// MockPaperless is a configurable mock Paperless server for testing.
type MockPaperless struct {
	server   *httptest.Server
	mu       sync.RWMutex
	handlers map[string]func(w http.ResponseWriter, r *http.Request)

	// Tracking
	RequestCount      int
	RequestPaths      []string
	LastRequestHeader http.Header
}

// NewMockPaperless creates a new mock Paperless server.
func NewMockPaperless() *MockPaperless {
	mock := &MockPaperless{
		handlers: make(map[string]func(w http.ResponseWriter, r *http.Request)),
	}

	mock.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mock.mu.Lock()
		mock.RequestCount++
		mock.RequestPaths = append(mock.RequestPaths, r.URL.RequestURI())
		mock.LastRequestHeader = r.Header.Clone()
		mock.mu.Unlock()

		mock.mu.RLock()
		handler, exists := mock.handlers[r.URL.Path]
		mock.mu.RUnlock()

		if exists {
			handler(w, r)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"detail": "Not found."}`))
	}))

	return mock
}

// URL returns the mock server URL.
func (m *MockPaperless) URL() string {
	return m.server.URL
}

// APIBase returns the mock server URL with a trailing slash, suitable as a
// client base URL.
func (m *MockPaperless) APIBase() string {
	return m.server.URL + "/"
}

// Close shuts down the mock server.
func (m *MockPaperless) Close() {
	m.server.Close()
}

// Reset clears all tracking state.
func (m *MockPaperless) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.RequestCount = 0
	m.RequestPaths = nil
	m.LastRequestHeader = nil
}

// GetRequestCount returns the number of requests made to the server.
func (m *MockPaperless) GetRequestCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.RequestCount
}

// SetHandler sets a custom handler for a specific path.
func (m *MockPaperless) SetHandler(path string, handler func(w http.ResponseWriter, r *http.Request)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.handlers[path] = handler
}

// SetResponse configures a simple response for a path.
func (m *MockPaperless) SetResponse(path string, resp MockResponse) {
	m.SetHandler(path, func(w http.ResponseWriter, r *http.Request) {
		if resp.Delay > 0 {
			time.Sleep(resp.Delay)
		}

		for key, value := range resp.Headers {
			w.Header().Set(key, value)
		}
		if w.Header().Get("Content-Type") == "" {
			w.Header().Set("Content-Type", "application/json")
		}

		w.WriteHeader(resp.StatusCode)
		if resp.Body != "" {
			w.Write([]byte(resp.Body))
		}
	})
}

// SetPaginatedResource serves records under /<resource>/ sliced into pages
// of pageSize, wrapped in the count/next/previous/results envelope with
// absolute next links, the way Paperless list endpoints respond.
func (m *MockPaperless) SetPaginatedResource(resource string, records []any, pageSize int) {
	if pageSize <= 0 {
		pageSize = 25
	}
	path := "/" + resource + "/"

	m.SetHandler(path, func(w http.ResponseWriter, r *http.Request) {
		pageNum := 1
		if raw := r.URL.Query().Get("page"); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil || n < 1 {
				w.WriteHeader(http.StatusNotFound)
				w.Write([]byte(`{"detail": "Invalid page."}`))
				return
			}
			pageNum = n
		}

		start := (pageNum - 1) * pageSize
		if start > len(records) {
			start = len(records)
		}
		end := start + pageSize
		if end > len(records) {
			end = len(records)
		}

		var next *string
		if end < len(records) {
			link := fmt.Sprintf("%s%s?page=%d", m.server.URL, path, pageNum+1)
			next = &link
		}
		var previous *string
		if pageNum > 1 {
			link := fmt.Sprintf("%s%s?page=%d", m.server.URL, path, pageNum-1)
			previous = &link
		}

		results := records[start:end]
		if results == nil {
			results = []any{} // keep "results" a JSON array, never null
		}

		envelope := struct {
			Count    int     `json:"count"`
			Next     *string `json:"next"`
			Previous *string `json:"previous"`
			Results  []any   `json:"results"`
		}{
			Count:    len(records),
			Next:     next,
			Previous: previous,
			Results:  results,
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(envelope)
	})
}

// NewServerErrorResponse creates a 500 Internal Server Error response.
func NewServerErrorResponse() MockResponse {
	return MockResponse{
		StatusCode: http.StatusInternalServerError,
		Body:       `{"detail": "Internal server error"}`,
	}
}

// NewUnauthorizedResponse creates a 401 response like the one Paperless
// sends for a bad token.
func NewUnauthorizedResponse() MockResponse {
	return MockResponse{
		StatusCode: http.StatusUnauthorized,
		Body:       `{"detail": "Invalid token."}`,
	}
}
