package pagination

import (
	"context"
	"errors"
	"iter"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog/log"

	"github.com/docstack/paperless-go/pkg/page"
)

// Prometheus metrics for page fetches.
var (
	pagesFetchedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "paperless_pages_fetched_total",
		Help: "Total result pages fetched by resource",
	}, []string{"resource"})

	pageFetchErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "paperless_page_fetch_errors_total",
		Help: "Total failed page fetches by resource",
	}, []string{"resource"})
)

// ErrEndOfSequence signals normal termination of a paginated sequence. It is
// not a failure: like io.EOF it marks the point where no further records
// exist. Repeated demands on an exhausted Paginator keep returning it.
var ErrEndOfSequence = errors.New("end of sequence")

// Fetcher performs a single authenticated GET and returns the raw response
// body. Implemented by the transport in pkg/client.
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// Paginator lazily walks all pages of one resource listing. It buffers at
// most one page at a time and fetches the following page only once the
// buffer is drained, using the server-supplied "next" URL verbatim.
//
// A Paginator is forward-only and not safe for concurrent use.
type Paginator[T any] struct {
	fetcher   Fetcher
	resource  string
	nextURL   string
	buf       []T
	idx       int
	count     int64
	exhausted bool
}

// New creates a Paginator over the listing that starts at startURL. The
// resource name is used for logging and metric labels only.
func New[T any](fetcher Fetcher, resource, startURL string) *Paginator[T] {
	return &Paginator[T]{
		fetcher:  fetcher,
		resource: resource,
		nextURL:  startURL,
	}
}

// Next returns the next record of the sequence. It blocks on network I/O
// when the current page buffer is exhausted and a further page exists.
//
// When the sequence has ended, Next returns ErrEndOfSequence; any other
// error is a *client.TransportError or *page.DecodeError from the page
// fetch that this demand triggered. A failed fetch does not advance the
// paginator: demanding again retries the same page, abandoning the
// paginator simply stops all fetching.
func (p *Paginator[T]) Next(ctx context.Context) (T, error) {
	var zero T

	for {
		if p.idx < len(p.buf) {
			record := p.buf[p.idx]
			p.idx++
			return record, nil
		}

		if p.exhausted || p.nextURL == "" {
			p.exhausted = true
			return zero, ErrEndOfSequence
		}

		if err := p.fetchNext(ctx); err != nil {
			return zero, err
		}
	}
}

// fetchNext fetches and decodes the page at nextURL, replacing the buffer.
// On error the paginator state is left untouched.
func (p *Paginator[T]) fetchNext(ctx context.Context) error {
	body, err := p.fetcher.Fetch(ctx, p.nextURL)
	if err != nil {
		pageFetchErrorsTotal.WithLabelValues(p.resource).Inc()
		log.Warn().
			Err(err).
			Str("resource", p.resource).
			Str("page_url", p.nextURL).
			Msg("Page fetch failed")
		return err
	}

	pg, err := page.Decode[T](body)
	if err != nil {
		pageFetchErrorsTotal.WithLabelValues(p.resource).Inc()
		log.Warn().
			Err(err).
			Str("resource", p.resource).
			Str("page_url", p.nextURL).
			Msg("Page decode failed")
		return err
	}

	pagesFetchedTotal.WithLabelValues(p.resource).Inc()
	log.Debug().
		Str("resource", p.resource).
		Int("records", len(pg.Results)).
		Int64("count", pg.Count).
		Bool("last_page", pg.Next == "").
		Msg("Fetched result page")

	p.buf = pg.Results
	p.idx = 0
	p.count = pg.Count
	p.nextURL = pg.Next

	if len(p.buf) == 0 && p.nextURL == "" {
		p.exhausted = true
	}
	return nil
}

// Count reports the server's total record count across all pages. It is
// zero until the first page has been fetched and is informational only:
// termination is driven by the next link, never by count.
func (p *Paginator[T]) Count() int64 {
	return p.count
}

// All returns a single-use range-over-func iterator over the remaining
// records. Iteration stops at the end of the sequence; a fetch failure is
// yielded once as a non-nil error and then stops the sequence. Breaking out
// early never fetches further pages.
func (p *Paginator[T]) All(ctx context.Context) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		for {
			record, err := p.Next(ctx)
			if errors.Is(err, ErrEndOfSequence) {
				return
			}
			if err != nil {
				var zero T
				yield(zero, err)
				return
			}
			if !yield(record, nil) {
				return
			}
		}
	}
}

// Collect drains the paginator into a slice. Intended for small result sets
// and tests; it defeats laziness by construction.
func (p *Paginator[T]) Collect(ctx context.Context) ([]T, error) {
	var records []T
	for {
		record, err := p.Next(ctx)
		if errors.Is(err, ErrEndOfSequence) {
			return records, nil
		}
		if err != nil {
			return records, err
		}
		records = append(records, record)
	}
}
