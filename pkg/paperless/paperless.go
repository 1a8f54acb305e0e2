// Package paperless provides a typed client for the Paperless-ngx REST API
// (https://docs.paperless-ngx.com/api/).
//
// Listings are lazy: Tags, Documents, Correspondents and the other listing
// methods return a pagination.Paginator that fetches one result page at a
// time as records are demanded, so iterating over arbitrarily large
// collections never loads everything at once.
package paperless

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/docstack/paperless-go/pkg/client"
	"github.com/docstack/paperless-go/pkg/page"
	"github.com/docstack/paperless-go/pkg/pagination"
	"github.com/docstack/paperless-go/pkg/query"
)

// Config holds the client configuration.
type Config struct {
	// BaseURL is the API root, for example "https://paperless.example.com/api/".
	BaseURL string

	// Token is the API token used to authenticate every request.
	Token string

	// UserAgent header sent on every request.
	UserAgent string

	// Timeout is the per-request timeout.
	Timeout time.Duration
}

// DefaultConfig returns a safe default configuration.
func DefaultConfig(baseURL, token string) Config {
	return Config{
		BaseURL:   baseURL,
		Token:     token,
		UserAgent: "paperless-go/0.1.0",
		Timeout:   30 * time.Second,
	}
}

// Client is the Paperless API client. It holds only the base URL and the
// transport and is immutable after construction: it may be shared freely by
// any number of concurrent paginators.
type Client struct {
	transport *client.Client
	baseURL   string
	logger    zerolog.Logger
}

// New creates a new Paperless client.
func New(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("base URL is required")
	}
	if cfg.Token == "" {
		return nil, fmt.Errorf("token is required")
	}

	u, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base URL: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("base URL %q must be absolute", cfg.BaseURL)
	}

	transport, err := client.New(client.Config{
		Token:     cfg.Token,
		UserAgent: cfg.UserAgent,
		Timeout:   cfg.Timeout,
	})
	if err != nil {
		return nil, err
	}

	return &Client{
		transport: transport,
		baseURL:   cfg.BaseURL,
		logger:    log.With().Str("component", "paperless").Logger(),
	}, nil
}

// list builds the initial listing URL for a resource and wraps it in a lazy
// paginator.
func list[T any](c *Client, resource string, params query.Params) *pagination.Paginator[T] {
	startURL := query.Build(c.baseURL, resource, params)

	c.logger.Debug().
		Str("resource", resource).
		Str("url", startURL).
		Msg("Starting listing")

	return pagination.New[T](c.transport, resource, startURL)
}

// getOne fetches a single record by id.
func getOne[T any](ctx context.Context, c *Client, resource string, id int64) (*T, error) {
	u := query.Build(c.baseURL, fmt.Sprintf("%s/%d", resource, id), nil)

	body, err := c.transport.Fetch(ctx, u)
	if err != nil {
		return nil, err
	}

	var record T
	if err := json.Unmarshal(body, &record); err != nil {
		return nil, &page.DecodeError{Expected: resource + " record", Err: err}
	}
	return &record, nil
}

// Tags lists all tags lazily. The zero TagFilter lists everything.
func (c *Client) Tags(filter TagFilter) *pagination.Paginator[Tag] {
	return list[Tag](c, "tags", filter.params())
}

// Tag fetches a single tag by id.
func (c *Client) Tag(ctx context.Context, id int64) (*Tag, error) {
	return getOne[Tag](ctx, c, "tags", id)
}

// Documents lists all documents lazily. The zero DocumentFilter lists
// everything.
func (c *Client) Documents(filter DocumentFilter) *pagination.Paginator[Document] {
	return list[Document](c, "documents", filter.params())
}

// Document fetches a single document by id.
func (c *Client) Document(ctx context.Context, id int64) (*Document, error) {
	return getOne[Document](ctx, c, "documents", id)
}

// Correspondents lists all correspondents lazily.
func (c *Client) Correspondents(filter CorrespondentFilter) *pagination.Paginator[Correspondent] {
	return list[Correspondent](c, "correspondents", filter.params())
}

// Correspondent fetches a single correspondent by id.
func (c *Client) Correspondent(ctx context.Context, id int64) (*Correspondent, error) {
	return getOne[Correspondent](ctx, c, "correspondents", id)
}

// DocumentTypes lists all document types lazily.
func (c *Client) DocumentTypes(filter DocumentTypeFilter) *pagination.Paginator[DocumentType] {
	return list[DocumentType](c, "document_types", filter.params())
}

// DocumentType fetches a single document type by id.
func (c *Client) DocumentType(ctx context.Context, id int64) (*DocumentType, error) {
	return getOne[DocumentType](ctx, c, "document_types", id)
}

// StoragePaths lists all storage paths lazily.
func (c *Client) StoragePaths(filter StoragePathFilter) *pagination.Paginator[StoragePath] {
	return list[StoragePath](c, "storage_paths", filter.params())
}

// StoragePath fetches a single storage path by id.
func (c *Client) StoragePath(ctx context.Context, id int64) (*StoragePath, error) {
	return getOne[StoragePath](ctx, c, "storage_paths", id)
}

// SavedViews lists all saved views lazily. Saved views have no filters.
func (c *Client) SavedViews() *pagination.Paginator[SavedView] {
	return list[SavedView](c, "saved_views", nil)
}

// SavedView fetches a single saved view by id.
func (c *Client) SavedView(ctx context.Context, id int64) (*SavedView, error) {
	return getOne[SavedView](ctx, c, "saved_views", id)
}

// DocumentDownload downloads the original file of a document.
func (c *Client) DocumentDownload(ctx context.Context, id int64) ([]byte, error) {
	u := query.Build(c.baseURL, fmt.Sprintf("documents/%d/download", id), nil)
	return c.transport.Fetch(ctx, u)
}

// DocumentSize reports the size in bytes of a document's original file
// without downloading it, using the Content-Length of a HEAD request.
func (c *Client) DocumentSize(ctx context.Context, id int64) (int64, error) {
	u := query.Build(c.baseURL, fmt.Sprintf("documents/%d/download", id), nil)

	headers, err := c.transport.Head(ctx, u)
	if err != nil {
		return 0, err
	}

	length := headers.Get("Content-Length")
	if length == "" {
		return 0, fmt.Errorf("document %d: response has no Content-Length", id)
	}

	size, err := strconv.ParseInt(length, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("document %d: parse Content-Length %q: %w", id, length, err)
	}
	return size, nil
}
