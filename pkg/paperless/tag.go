package paperless

import "github.com/docstack/paperless-go/pkg/query"

// Tag is a label attached to documents. Colors are hex strings as the
// server stores them (e.g. "#a6cee3").
type Tag struct {
	ID                int64  `json:"id"`
	Slug              string `json:"slug"`
	Name              string `json:"name"`
	Color             string `json:"color"`
	TextColor         string `json:"text_color"`
	Match             string `json:"match"`
	MatchingAlgorithm int64  `json:"matching_algorithm"`
	IsInsensitive     bool   `json:"is_insensitive"`
	IsInboxTag        bool   `json:"is_inbox_tag"`
	DocumentCount     int64  `json:"document_count"`
}

// TagFilter narrows a tag listing by name. All matches are
// case-insensitive. The zero value applies no filtering.
type TagFilter struct {
	NameStartsWith string
	NameEndsWith   string
	NameContains   string
	NameIs         string
}

func (f TagFilter) params() query.Params {
	var p query.Params
	if f.NameStartsWith != "" {
		p = p.Add("name__istartswith", f.NameStartsWith)
	}
	if f.NameEndsWith != "" {
		p = p.Add("name__iendswith", f.NameEndsWith)
	}
	if f.NameContains != "" {
		p = p.Add("name__icontains", f.NameContains)
	}
	if f.NameIs != "" {
		p = p.Add("name__iexact", f.NameIs)
	}
	return p
}
