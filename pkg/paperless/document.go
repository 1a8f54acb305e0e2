package paperless

import (
	"strconv"
	"strings"
	"time"

	"github.com/docstack/paperless-go/pkg/query"
)

// Document is one stored document with its content and classification.
type Document struct {
	ID                  int64     `json:"id"`
	Correspondent       *int64    `json:"correspondent"`
	DocumentType        *int64    `json:"document_type"`
	StoragePath         *int64    `json:"storage_path"`
	Title               string    `json:"title"`
	Content             string    `json:"content"`
	Tags                []int64   `json:"tags"`
	Created             time.Time `json:"created"`
	CreatedDate         string    `json:"created_date"`
	Modified            time.Time `json:"modified"`
	Added               time.Time `json:"added"`
	ArchiveSerialNumber *ASN      `json:"archive_serial_number"`
	OriginalFileName    *string   `json:"original_file_name"`
	ArchivedFileName    *string   `json:"archived_file_name"`
}

// DocumentFilter narrows a document listing. Multiple fields combine; the
// zero value applies no filtering. String matches are case-insensitive.
type DocumentFilter struct {
	// Query is the full-text query, equivalent to "advanced search" in
	// the web interface.
	Query string

	// TitleContentContains matches either the title or the content.
	TitleContentContains string

	IsInInbox *bool
	IsTagged  *bool

	TitleStartsWith string
	TitleEndsWith   string
	TitleContains   string
	TitleIs         string

	ContentStartsWith string
	ContentEndsWith   string
	ContentContains   string
	ContentIs         string

	ASNIs     *ASN
	ASNGt     *ASN
	ASNGte    *ASN
	ASNLt     *ASN
	ASNLte    *ASN
	ASNIsNull *bool

	CreatedYear   int
	CreatedMonth  int
	CreatedDay    int
	CreatedAfter  time.Time
	CreatedBefore time.Time

	AddedYear   int
	AddedMonth  int
	AddedDay    int
	AddedAfter  time.Time
	AddedBefore time.Time

	ModifiedYear   int
	ModifiedMonth  int
	ModifiedDay    int
	ModifiedAfter  time.Time
	ModifiedBefore time.Time

	CorrespondentIsNull     *bool
	CorrespondentIDIn       []int64
	CorrespondentID         *int64
	CorrespondentStartsWith string
	CorrespondentEndsWith   string
	CorrespondentContains   string
	CorrespondentIs         string

	// TagIDAll requires the document to carry every listed tag.
	TagIDAll []int64
	// TagIDNone requires the document to carry none of the listed tags.
	TagIDNone []int64
	// TagIDIn requires the document to carry at least one listed tag.
	TagIDIn       []int64
	TagID         *int64
	TagStartsWith string
	TagEndsWith   string
	TagContains   string
	TagIs         string

	DocumentTypeIsNull     *bool
	DocumentTypeIDIn       []int64
	DocumentTypeID         *int64
	DocumentTypeStartsWith string
	DocumentTypeEndsWith   string
	DocumentTypeContains   string
	DocumentTypeIs         string

	StoragePathIsNull     *bool
	StoragePathIDIn       []int64
	StoragePathID         *int64
	StoragePathStartsWith string
	StoragePathEndsWith   string
	StoragePathContains   string
	StoragePathIs         string

	// MoreLike asks the server for documents similar to the given one.
	MoreLike *int64
}

const filterTimeLayout = "2006-01-02T15:04:05Z"

func (f DocumentFilter) params() query.Params {
	var p query.Params

	addString := func(key, value string) {
		if value != "" {
			p = p.Add(key, value)
		}
	}
	addBool := func(key string, value *bool) {
		if value != nil {
			p = p.Add(key, strconv.FormatBool(*value))
		}
	}
	addID := func(key string, value *int64) {
		if value != nil {
			p = p.Add(key, strconv.FormatInt(*value, 10))
		}
	}
	addIDs := func(key string, values []int64) {
		if len(values) > 0 {
			p = p.Add(key, joinIDs(values))
		}
	}
	addASN := func(key string, value *ASN) {
		if value != nil {
			p = p.Add(key, value.String())
		}
	}
	addInt := func(key string, value int) {
		if value != 0 {
			p = p.Add(key, strconv.Itoa(value))
		}
	}
	addTime := func(key string, value time.Time) {
		if !value.IsZero() {
			p = p.Add(key, value.UTC().Format(filterTimeLayout))
		}
	}

	addID("more_like_id", f.MoreLike)
	addString("query", f.Query)
	addString("title_content", f.TitleContentContains)
	addBool("is_in_inbox", f.IsInInbox)
	addBool("is_tagged", f.IsTagged)

	addString("title__istartswith", f.TitleStartsWith)
	addString("title__iendswith", f.TitleEndsWith)
	addString("title__icontains", f.TitleContains)
	addString("title__iexact", f.TitleIs)

	addString("content__istartswith", f.ContentStartsWith)
	addString("content__iendswith", f.ContentEndsWith)
	addString("content__icontains", f.ContentContains)
	addString("content__iexact", f.ContentIs)

	addASN("archive_serial_number", f.ASNIs)
	addASN("archive_serial_number__gt", f.ASNGt)
	addASN("archive_serial_number__gte", f.ASNGte)
	addASN("archive_serial_number__lt", f.ASNLt)
	addASN("archive_serial_number__lte", f.ASNLte)
	addBool("archive_serial_number__isnull", f.ASNIsNull)

	addInt("created__year", f.CreatedYear)
	addInt("created__month", f.CreatedMonth)
	addInt("created__day", f.CreatedDay)
	addTime("created__gt", f.CreatedAfter)
	addTime("created__lt", f.CreatedBefore)

	addInt("added__year", f.AddedYear)
	addInt("added__month", f.AddedMonth)
	addInt("added__day", f.AddedDay)
	addTime("added__gt", f.AddedAfter)
	addTime("added__lt", f.AddedBefore)

	addInt("modified__year", f.ModifiedYear)
	addInt("modified__month", f.ModifiedMonth)
	addInt("modified__day", f.ModifiedDay)
	addTime("modified__gt", f.ModifiedAfter)
	addTime("modified__lt", f.ModifiedBefore)

	addBool("correspondent__isnull", f.CorrespondentIsNull)
	addIDs("correspondent__id__in", f.CorrespondentIDIn)
	addID("correspondent__id", f.CorrespondentID)
	addString("correspondent__name__istartswith", f.CorrespondentStartsWith)
	addString("correspondent__name__iendswith", f.CorrespondentEndsWith)
	addString("correspondent__name__icontains", f.CorrespondentContains)
	addString("correspondent__name__iexact", f.CorrespondentIs)

	addIDs("tags__id__all", f.TagIDAll)
	addIDs("tags__id__none", f.TagIDNone)
	addIDs("tags__id__in", f.TagIDIn)
	addID("tags__id", f.TagID)
	addString("tags__name__istartswith", f.TagStartsWith)
	addString("tags__name__iendswith", f.TagEndsWith)
	addString("tags__name__icontains", f.TagContains)
	addString("tags__name__iexact", f.TagIs)

	addBool("document_type__isnull", f.DocumentTypeIsNull)
	addIDs("document_type__id__in", f.DocumentTypeIDIn)
	addID("document_type__id", f.DocumentTypeID)
	addString("document_type__name__istartswith", f.DocumentTypeStartsWith)
	addString("document_type__name__iendswith", f.DocumentTypeEndsWith)
	addString("document_type__name__icontains", f.DocumentTypeContains)
	addString("document_type__name__iexact", f.DocumentTypeIs)

	addBool("storage_path__isnull", f.StoragePathIsNull)
	addIDs("storage_path__id__in", f.StoragePathIDIn)
	addID("storage_path__id", f.StoragePathID)
	addString("storage_path__name__istartswith", f.StoragePathStartsWith)
	addString("storage_path__name__iendswith", f.StoragePathEndsWith)
	addString("storage_path__name__icontains", f.StoragePathContains)
	addString("storage_path__name__iexact", f.StoragePathIs)

	return p
}

// joinIDs renders a list of ids as the comma-separated form the API expects
// for __in/__all/__none filters.
func joinIDs(ids []int64) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.FormatInt(id, 10)
	}
	return strings.Join(parts, ",")
}
