package paperless

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/docstack/paperless-go/internal/testutil"
	"github.com/docstack/paperless-go/pkg/client"
	"github.com/docstack/paperless-go/pkg/pagination"
)

func newTestClient(t *testing.T, mock *testutil.MockPaperless) *Client {
	t.Helper()

	c, err := New(DefaultConfig(mock.APIBase(), "T"))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return c
}

func TestNew_Validation(t *testing.T) {
	tests := []struct {
		name        string
		config      Config
		expectError bool
		errorMsg    string
	}{
		{
			name:        "valid config",
			config:      DefaultConfig("https://paperless.example.com/api/", "T"),
			expectError: false,
		},
		{
			name:        "missing base URL",
			config:      Config{Token: "T"},
			expectError: true,
			errorMsg:    "base URL is required",
		},
		{
			name:        "missing token",
			config:      Config{BaseURL: "https://paperless.example.com/api/"},
			expectError: true,
			errorMsg:    "token is required",
		},
		{
			name:        "relative base URL",
			config:      Config{BaseURL: "/api/", Token: "T"},
			expectError: true,
			errorMsg:    `base URL "/api/" must be absolute`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := New(tt.config)

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
			if c == nil {
				t.Fatal("Expected client but got nil")
			}
		})
	}
}

func TestTags_FirstRequest(t *testing.T) {
	mock := testutil.NewMockPaperless()
	defer mock.Close()
	mock.SetPaginatedResource("tags", nil, 25)

	c := newTestClient(t, mock)

	p := c.Tags(TagFilter{})
	if mock.GetRequestCount() != 0 {
		t.Fatal("listing issued a request before the first demand")
	}

	_, err := p.Next(context.Background())
	if !errors.Is(err, pagination.ErrEndOfSequence) {
		t.Fatalf("Next() on empty listing = %v, want ErrEndOfSequence", err)
	}

	if mock.RequestPaths[0] != "/tags/" {
		t.Errorf("first request URI = %q, want %q", mock.RequestPaths[0], "/tags/")
	}
	if got := mock.LastRequestHeader.Get("Authorization"); got != "Token T" {
		t.Errorf("Authorization header = %q, want %q", got, "Token T")
	}
}

func TestTags_FilterInRequestURL(t *testing.T) {
	mock := testutil.NewMockPaperless()
	defer mock.Close()
	mock.SetPaginatedResource("tags", nil, 25)

	c := newTestClient(t, mock)

	p := c.Tags(TagFilter{NameContains: "tax", NameStartsWith: "2"})
	p.Next(context.Background())

	want := "/tags/?name__istartswith=2&name__icontains=tax"
	if mock.RequestPaths[0] != want {
		t.Errorf("request URI = %q, want %q", mock.RequestPaths[0], want)
	}
}

func TestTags_WalksAcrossPages(t *testing.T) {
	mock := testutil.NewMockPaperless()
	defer mock.Close()
	mock.SetPaginatedResource("tags", []any{
		Tag{ID: 1, Name: "a"},
		Tag{ID: 2, Name: "b"},
		Tag{ID: 3, Name: "c"},
	}, 2)

	c := newTestClient(t, mock)

	tags, err := c.Tags(TagFilter{}).Collect(context.Background())
	if err != nil {
		t.Fatalf("Collect() error = %v", err)
	}

	if len(tags) != 3 {
		t.Fatalf("yielded %d tags, want 3", len(tags))
	}
	for i, want := range []int64{1, 2, 3} {
		if tags[i].ID != want {
			t.Errorf("tags[%d].ID = %d, want %d", i, tags[i].ID, want)
		}
	}
	if mock.GetRequestCount() != 2 {
		t.Errorf("request count = %d, want 2 (one per page)", mock.GetRequestCount())
	}
}

func TestDocuments_ServerErrorMidIteration(t *testing.T) {
	mock := testutil.NewMockPaperless()
	defer mock.Close()

	// Page 1 succeeds and links to page 2; page 2 blows up.
	mock.SetHandler("/documents/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("page") == "2" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"count": 3,
			"next": "` + mock.URL() + `/documents/?page=2",
			"previous": null,
			"results": [
				{"id": 1, "title": "one", "created": "2024-01-01T00:00:00Z", "modified": "2024-01-01T00:00:00Z", "added": "2024-01-01T00:00:00Z"},
				{"id": 2, "title": "two", "created": "2024-01-02T00:00:00Z", "modified": "2024-01-02T00:00:00Z", "added": "2024-01-02T00:00:00Z"}
			]
		}`))
	})

	c := newTestClient(t, mock)
	p := c.Documents(DocumentFilter{})
	ctx := context.Background()

	for _, wantID := range []int64{1, 2} {
		doc, err := p.Next(ctx)
		if err != nil {
			t.Fatalf("Next() error = %v", err)
		}
		if doc.ID != wantID {
			t.Errorf("doc.ID = %d, want %d", doc.ID, wantID)
		}
	}

	_, err := p.Next(ctx)
	var transportErr *client.TransportError
	if !errors.As(err, &transportErr) {
		t.Fatalf("Next() error = %T (%v), want *client.TransportError", err, err)
	}
	if transportErr.StatusCode != http.StatusInternalServerError {
		t.Errorf("StatusCode = %d, want 500", transportErr.StatusCode)
	}
}

func TestTag_GetByID(t *testing.T) {
	mock := testutil.NewMockPaperless()
	defer mock.Close()
	mock.SetResponse("/tags/5/", testutil.MockResponse{
		StatusCode: http.StatusOK,
		Body:       `{"id": 5, "slug": "invoices", "name": "Invoices", "color": "#a6cee3", "document_count": 12}`,
	})

	c := newTestClient(t, mock)

	tag, err := c.Tag(context.Background(), 5)
	if err != nil {
		t.Fatalf("Tag() error = %v", err)
	}
	if tag.ID != 5 || tag.Name != "Invoices" || tag.Color != "#a6cee3" {
		t.Errorf("Tag() = %+v, want id 5, name Invoices", tag)
	}
}

func TestSavedViews_Decoding(t *testing.T) {
	mock := testutil.NewMockPaperless()
	defer mock.Close()
	mock.SetResponse("/saved_views/", testutil.MockResponse{
		StatusCode: http.StatusOK,
		Body: `{
			"count": 1,
			"next": null,
			"previous": null,
			"results": [{
				"id": 7,
				"name": "Inbox invoices",
				"show_on_dashboard": true,
				"show_in_sidebar": false,
				"sort_field": "created",
				"sort_reverse": true,
				"filter_rules": [
					{"rule_type": 5, "value": "true"},
					{"rule_type": 6, "value": "3"},
					{"rule_type": 3, "value": null}
				]
			}]
		}`,
	})

	c := newTestClient(t, mock)

	views, err := c.SavedViews().Collect(context.Background())
	if err != nil {
		t.Fatalf("Collect() error = %v", err)
	}
	if len(views) != 1 {
		t.Fatalf("yielded %d views, want 1", len(views))
	}

	view := views[0]
	if view.Name != "Inbox invoices" || !view.SortReverse {
		t.Errorf("view = %+v, want name and sort_reverse decoded", view)
	}
	if len(view.FilterRules) != 3 {
		t.Fatalf("decoded %d rules, want 3", len(view.FilterRules))
	}
	if view.FilterRules[0].RuleType != RuleIsInInbox {
		t.Errorf("rule[0].RuleType = %d, want RuleIsInInbox", view.FilterRules[0].RuleType)
	}
	if view.FilterRules[2].Value != nil {
		t.Errorf("rule[2].Value = %v, want nil", view.FilterRules[2].Value)
	}
}

func TestDocumentDownload(t *testing.T) {
	mock := testutil.NewMockPaperless()
	defer mock.Close()
	mock.SetResponse("/documents/9/download/", testutil.MockResponse{
		StatusCode: http.StatusOK,
		Body:       "%PDF-1.7 fake",
		Headers:    map[string]string{"Content-Type": "application/pdf"},
	})

	c := newTestClient(t, mock)

	data, err := c.DocumentDownload(context.Background(), 9)
	if err != nil {
		t.Fatalf("DocumentDownload() error = %v", err)
	}
	if string(data) != "%PDF-1.7 fake" {
		t.Errorf("DocumentDownload() = %q, want file contents", data)
	}
}

func TestDocumentSize(t *testing.T) {
	mock := testutil.NewMockPaperless()
	defer mock.Close()
	mock.SetHandler("/documents/9/download/", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodHead {
			t.Errorf("method = %q, want HEAD", r.Method)
		}
		w.Header().Set("Content-Length", "52430")
		w.WriteHeader(http.StatusOK)
	})

	c := newTestClient(t, mock)

	size, err := c.DocumentSize(context.Background(), 9)
	if err != nil {
		t.Fatalf("DocumentSize() error = %v", err)
	}
	if size != 52430 {
		t.Errorf("DocumentSize() = %d, want 52430", size)
	}
}
