package paperless

import "github.com/docstack/paperless-go/pkg/query"

// StoragePath controls where the server files a document's archive copy.
type StoragePath struct {
	ID                int64  `json:"id"`
	Name              string `json:"name"`
	Slug              string `json:"slug"`
	Path              string `json:"path"`
	Match             string `json:"match"`
	MatchingAlgorithm int64  `json:"matching_algorithm"`
	IsInsensitive     bool   `json:"is_insensitive"`
	DocumentCount     int64  `json:"document_count"`
}

// StoragePathFilter narrows a storage path listing by name. All matches are
// case-insensitive. The zero value applies no filtering.
type StoragePathFilter struct {
	NameStartsWith string
	NameEndsWith   string
	NameContains   string
	NameIs         string
}

func (f StoragePathFilter) params() query.Params {
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
