package paperless

import "github.com/docstack/paperless-go/pkg/query"

// DocumentType classifies a document: invoice, contract, receipt.
type DocumentType struct {
	ID                int64  `json:"id"`
	Name              string `json:"name"`
	Slug              string `json:"slug"`
	Match             string `json:"match"`
	MatchingAlgorithm int64  `json:"matching_algorithm"`
	IsInsensitive     bool   `json:"is_insensitive"`
	DocumentCount     int64  `json:"document_count"`
}

// DocumentTypeFilter narrows a document type listing by name. All matches
// are case-insensitive. The zero value applies no filtering.
type DocumentTypeFilter struct {
	NameStartsWith string
	NameEndsWith   string
	NameContains   string
	NameIs         string
}

func (f DocumentTypeFilter) params() query.Params {
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
