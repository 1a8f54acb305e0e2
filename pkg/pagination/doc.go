// Package pagination provides lazy, forward-only iteration over paginated
// Paperless endpoints.
//
// Paperless list endpoints return bounded result pages linked by a "next"
// URL. A Paginator walks those pages on demand: no page is fetched before a
// record from it is requested, so early termination never costs extra
// requests and arbitrarily large result sets stream in constant memory.
//
// Example usage:
//
//	p := pagination.New[Tag](transport, "tags", startURL)
//	for {
//		tag, err := p.Next(ctx)
//		if errors.Is(err, pagination.ErrEndOfSequence) {
//			break
//		}
//		if err != nil {
//			return err // transport or decode failure; re-demand to retry
//		}
//		handle(tag)
//	}
//
// Or with a range-over-func iterator:
//
//	for tag, err := range p.All(ctx) {
//		...
//	}
//
// A Paginator is single-pass: records already yielded are never re-fetched
// or re-yielded, and the server's "next" link is a one-shot cursor into the
// in-flight result set, not a stable bookmark. Restarting means building a
// fresh Paginator from the original query. Instances are not safe for
// concurrent use; independent Paginators sharing one transport are.
package pagination
