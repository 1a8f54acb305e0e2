// Package page decodes the paginated result envelopes returned by the
// Paperless API.
//
// Every list endpoint responds with the same JSON shape:
//
//	{
//	  "count": 3,
//	  "next": "https://x/api/tags/?page=2",
//	  "previous": null,
//	  "results": [ {...}, {...} ]
//	}
//
// Unknown fields in the envelope or in individual records are ignored for
// forward compatibility. The "previous" link is decoded but unused.
package page

import (
	"encoding/json"
	"fmt"
	"net/url"
)

// Page is one decoded result envelope. It is transient: the paginator
// consumes it and the value is never persisted.
type Page[T any] struct {
	// Count is the total number of records across all pages.
	Count int64

	// Next is the absolute URL of the following page, empty when this is
	// the last page.
	Next string

	// Previous is the absolute URL of the preceding page, empty on the
	// first page. Accepted but unused.
	Previous string

	// Results holds the records of this page in server order.
	Results []T
}

// DecodeError reports a malformed or schema-mismatched response body.
type DecodeError struct {
	// Expected describes the shape that failed to decode.
	Expected string
	Err      error
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("decode %s: %v", e.Expected, e.Err)
	}
	return fmt.Sprintf("decode %s", e.Expected)
}

// Unwrap implements error unwrapping for errors.Is/As.
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// envelope mirrors the wire shape. Pointer fields distinguish absent from
// zero-valued fields so the required envelope keys can be enforced.
type envelope[T any] struct {
	Count    *int64  `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  *[]T    `json:"results"`
}

// Decode parses one result envelope. It fails with a *DecodeError when the
// body is not valid JSON, the top-level shape is missing the count or
// results fields, any record does not match the schema of T, or a present
// next link is not an absolute URL.
func Decode[T any](data []byte) (*Page[T], error) {
	var env envelope[T]
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, &DecodeError{Expected: "paginated result envelope", Err: err}
	}

	if env.Count == nil {
		return nil, &DecodeError{Expected: "envelope with count field"}
	}
	if *env.Count < 0 {
		return nil, &DecodeError{Expected: fmt.Sprintf("non-negative count, got %d", *env.Count)}
	}
	if env.Results == nil {
		return nil, &DecodeError{Expected: "envelope with results field"}
	}

	next, err := decodeLink(env.Next)
	if err != nil {
		return nil, err
	}
	// previous is accepted as-is; a broken previous link never blocks
	// forward iteration.
	previous := ""
	if env.Previous != nil {
		previous = *env.Previous
	}

	return &Page[T]{
		Count:    *env.Count,
		Next:     next,
		Previous: previous,
		Results:  *env.Results,
	}, nil
}

// decodeLink validates a next link. Absent (null) and explicitly empty
// values both mean "no further page"; anything else must be an absolute URL.
func decodeLink(link *string) (string, error) {
	if link == nil || *link == "" {
		return "", nil
	}

	u, err := url.Parse(*link)
	if err != nil {
		return "", &DecodeError{Expected: "absolute next URL", Err: err}
	}
	if u.Scheme == "" || u.Host == "" {
		return "", &DecodeError{Expected: fmt.Sprintf("absolute next URL, got %q", *link)}
	}
	return *link, nil
}
