// Package query builds request URLs for Paperless resources.
//
// URL construction is pure and deterministic: the same base URL, resource
// path, and parameter list always produce byte-identical URLs. Parameters
// keep their caller-supplied order and may repeat keys (multi-valued
// filters). "Next" URLs returned by the server are never rebuilt here; the
// paginator uses them verbatim.
package query

import (
	"net/url"
	"strings"
)

// Param is a single query-string key/value pair.
type Param struct {
	Key   string
	Value string
}

// Params is an ordered list of query parameters. The zero value is an empty
// parameter list and is ready to use.
type Params []Param

// Add appends a key/value pair and returns the extended list. Duplicate keys
// are allowed.
func (p Params) Add(key, value string) Params {
	return append(p, Param{Key: key, Value: value})
}

// Encode renders the parameters as a query string, percent-encoding keys and
// values and preserving the list order.
func (p Params) Encode() string {
	if len(p) == 0 {
		return ""
	}

	var b strings.Builder
	for i, param := range p {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(param.Key))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(param.Value))
	}
	return b.String()
}

// Build composes a request URL from the API base URL, a resource path, and
// optional filter parameters.
//
// Base and resource are joined with exactly one slash and the resource path
// always ends with a trailing slash, as the Paperless API requires
// (e.g. Build("https://x/api/", "tags", nil) == "https://x/api/tags/").
func Build(base, resource string, params Params) string {
	base = strings.TrimRight(base, "/")
	resource = strings.Trim(resource, "/")

	u := base + "/" + resource + "/"
	if query := params.Encode(); query != "" {
		u += "?" + query
	}
	return u
}
