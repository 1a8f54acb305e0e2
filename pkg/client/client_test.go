package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestNew_Validation(t *testing.T) {
	tests := []struct {
		name        string
		config      Config
		expectError bool
		errorMsg    string
	}{
		{
			name:        "valid config",
			config:      DefaultConfig("T"),
			expectError: false,
		},
		{
			name:        "missing token",
			config:      Config{UserAgent: "test/1.0"},
			expectError: true,
			errorMsg:    "token is required",
		},
		{
			name:        "zero timeout gets default",
			config:      Config{Token: "T"},
			expectError: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := New(tt.config)

			if tt.expectError {
				if err == nil {
					t.Fatal("Expected error but got nil")
				}
				if tt.errorMsg != "" && err.Error() != tt.errorMsg {
					t.Errorf("Error message = %q, want %q", err.Error(), tt.errorMsg)
				}
				return
			}

			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if client == nil {
				t.Fatal("Expected client but got nil")
			}
		})
	}
}

func TestFetch_SendsAuthHeaders(t *testing.T) {
	var gotHeader http.Header
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotHeader = r.Header.Clone()
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"count": 0, "next": null, "previous": null, "results": []}`))
	}))
	defer server.Close()

	c, err := New(DefaultConfig("T"))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	body, err := c.Fetch(context.Background(), server.URL+"/tags/")
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if len(body) == 0 {
		t.Error("Fetch() returned empty body")
	}

	if got := gotHeader.Get("Authorization"); got != "Token T" {
		t.Errorf("Authorization header = %q, want %q", got, "Token T")
	}
	if got := gotHeader.Get("Accept"); got != "application/json; version=2" {
		t.Errorf("Accept header = %q, want %q", got, "application/json; version=2")
	}
	if got := gotHeader.Get("User-Agent"); got != "paperless-go/0.1.0" {
		t.Errorf("User-Agent header = %q, want %q", got, "paperless-go/0.1.0")
	}
}

func TestFetch_Non2xxStatus(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		wantClass ErrorClass
	}{
		{"unauthorized", http.StatusUnauthorized, ErrorClassClient},
		{"not found", http.StatusNotFound, ErrorClassClient},
		{"server error", http.StatusInternalServerError, ErrorClassServer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer server.Close()

			c, _ := New(DefaultConfig("T"))

			_, err := c.Fetch(context.Background(), server.URL+"/documents/")
			if err == nil {
				t.Fatal("Fetch() expected error, got nil")
			}

			var transportErr *TransportError
			if !errors.As(err, &transportErr) {
				t.Fatalf("error type = %T, want *TransportError", err)
			}
			if transportErr.StatusCode != tt.status {
				t.Errorf("StatusCode = %d, want %d", transportErr.StatusCode, tt.status)
			}
			if transportErr.URL != server.URL+"/documents/" {
				t.Errorf("URL = %q, want %q", transportErr.URL, server.URL+"/documents/")
			}
			if got := classifyStatus(transportErr.StatusCode); got != tt.wantClass {
				t.Errorf("classifyStatus(%d) = %q, want %q", tt.status, got, tt.wantClass)
			}
		})
	}
}

func TestFetch_NetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close() // connection refused from here on

	c, _ := New(DefaultConfig("T"))

	_, err := c.Fetch(context.Background(), url+"/tags/")
	if err == nil {
		t.Fatal("Fetch() expected error, got nil")
	}

	var transportErr *TransportError
	if !errors.As(err, &transportErr) {
		t.Fatalf("error type = %T, want *TransportError", err)
	}
	if transportErr.StatusCode != 0 {
		t.Errorf("StatusCode = %d, want 0 for network error", transportErr.StatusCode)
	}
	if transportErr.Err == nil {
		t.Error("Err is nil, want wrapped network error")
	}
}

func TestFetch_ContextCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
	}))
	defer server.Close()

	c, _ := New(DefaultConfig("T"))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := c.Fetch(ctx, server.URL+"/tags/")
	if err == nil {
		t.Fatal("Fetch() expected error, got nil")
	}

	var transportErr *TransportError
	if !errors.As(err, &transportErr) {
		t.Fatalf("error type = %T, want *TransportError", err)
	}
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("error does not unwrap to context.DeadlineExceeded: %v", err)
	}
}

func TestHead_ReturnsHeaders(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodHead {
			t.Errorf("method = %q, want HEAD", r.Method)
		}
		w.Header().Set("Content-Length", "1234")
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	c, _ := New(DefaultConfig("T"))

	headers, err := c.Head(context.Background(), server.URL+"/documents/1/download/")
	if err != nil {
		t.Fatalf("Head() error = %v", err)
	}
	if got := headers.Get("Content-Length"); got != "1234" {
		t.Errorf("Content-Length = %q, want %q", got, "1234")
	}
}

func TestTransportError_Message(t *testing.T) {
	httpErr := &TransportError{URL: "https://x/api/tags/", StatusCode: 500, Message: "500 Internal Server Error"}
	if httpErr.Error() != "paperless request https://x/api/tags/ failed: 500 Internal Server Error" {
		t.Errorf("unexpected message: %q", httpErr.Error())
	}

	wrapped := errors.New("connection refused")
	netErr := &TransportError{URL: "https://x/api/tags/", Err: wrapped}
	if !errors.Is(netErr, wrapped) {
		t.Error("TransportError does not unwrap to the underlying error")
	}
}
