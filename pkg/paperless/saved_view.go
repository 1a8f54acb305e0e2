package paperless

import (
	"strconv"
	"time"
)

// SavedView is a filter selection saved in the web interface for fast
// access to a subset of documents.
type SavedView struct {
	ID              int64        `json:"id"`
	Name            string       `json:"name"`
	ShowOnDashboard bool         `json:"show_on_dashboard"`
	ShowInSidebar   bool         `json:"show_in_sidebar"`
	SortField       string       `json:"sort_field"`
	SortReverse     bool         `json:"sort_reverse"`
	FilterRules     []FilterRule `json:"filter_rules"`
}

// RuleType identifies the kind of a saved-view filter rule. The numeric
// values are the ones the API stores in the rule_type field.
type RuleType int64

const (
	RuleTitleContains RuleType = iota
	RuleContentContains
	RuleASNIs
	RuleCorrespondentIs
	RuleDocumentTypeIs
	RuleIsInInbox
	RuleHasTag
	RuleHasAnyTag
	RuleCreatedBefore
	RuleCreatedAfter
	RuleCreatedYearIs
	RuleCreatedMonthIs
	RuleCreatedDayIs
	RuleAddedBefore
	RuleAddedAfter
	RuleModifiedBefore
	RuleModifiedAfter
	RuleDoesNotHaveTag
	RuleDoesNotHaveASN
	RuleTitleOrContentContains
	RuleFullTextQuery
	RuleMoreLikeThis
	RuleHasTagIn
	RuleASNGreaterThan
	RuleASNLessThan
	RuleStoragePathIs
)

// FilterRule is one rule of a saved view. Value is the raw string the
// server stores; nil means the rule matches the absence of the attribute
// (e.g. a RuleCorrespondentIs rule with a nil value selects documents
// without a correspondent).
type FilterRule struct {
	RuleType RuleType `json:"rule_type"`
	Value    *string  `json:"value"`
}

// DocumentFilterFromRules converts the rules of a saved view into a
// DocumentFilter, so a saved view can be replayed as a listing query.
// Rules whose value fails to parse for their type are skipped.
func DocumentFilterFromRules(rules []FilterRule) DocumentFilter {
	var filter DocumentFilter

	for _, rule := range rules {
		switch rule.RuleType {
		case RuleTitleContains:
			filter.TitleContains = ruleString(rule)
		case RuleContentContains:
			filter.ContentContains = ruleString(rule)
		case RuleASNIs:
			if asn := ruleASN(rule); asn != nil {
				filter.ASNIs = asn
			} else {
				filter.ASNIsNull = boolPtr(true)
			}
		case RuleCorrespondentIs:
			if id := ruleID(rule); id != nil {
				filter.CorrespondentID = id
			} else {
				filter.CorrespondentIsNull = boolPtr(true)
			}
		case RuleDocumentTypeIs:
			if id := ruleID(rule); id != nil {
				filter.DocumentTypeID = id
			} else {
				filter.DocumentTypeIsNull = boolPtr(true)
			}
		case RuleStoragePathIs:
			if id := ruleID(rule); id != nil {
				filter.StoragePathID = id
			} else {
				filter.StoragePathIsNull = boolPtr(true)
			}
		case RuleIsInInbox:
			filter.IsInInbox = ruleBool(rule)
		case RuleHasTag:
			if id := ruleID(rule); id != nil {
				filter.TagIDAll = append(filter.TagIDAll, *id)
			}
		case RuleDoesNotHaveTag:
			if id := ruleID(rule); id != nil {
				filter.TagIDNone = append(filter.TagIDNone, *id)
			}
		case RuleHasTagIn:
			if id := ruleID(rule); id != nil {
				filter.TagIDIn = append(filter.TagIDIn, *id)
			}
		case RuleHasAnyTag:
			filter.IsTagged = ruleBool(rule)
		case RuleDoesNotHaveASN:
			filter.ASNIsNull = ruleBool(rule)
		case RuleCreatedBefore:
			filter.CreatedBefore = ruleTime(rule)
		case RuleCreatedAfter:
			filter.CreatedAfter = ruleTime(rule)
		case RuleCreatedYearIs:
			filter.CreatedYear = ruleInt(rule)
		case RuleCreatedMonthIs:
			filter.CreatedMonth = ruleInt(rule)
		case RuleCreatedDayIs:
			filter.CreatedDay = ruleInt(rule)
		case RuleAddedBefore:
			filter.AddedBefore = ruleTime(rule)
		case RuleAddedAfter:
			filter.AddedAfter = ruleTime(rule)
		case RuleModifiedBefore:
			filter.ModifiedBefore = ruleTime(rule)
		case RuleModifiedAfter:
			filter.ModifiedAfter = ruleTime(rule)
		case RuleTitleOrContentContains:
			filter.TitleContentContains = ruleString(rule)
		case RuleFullTextQuery:
			filter.Query = ruleString(rule)
		case RuleMoreLikeThis:
			filter.MoreLike = ruleID(rule)
		case RuleASNGreaterThan:
			filter.ASNGt = ruleASN(rule)
		case RuleASNLessThan:
			filter.ASNLt = ruleASN(rule)
		}
	}

	return filter
}

func ruleString(rule FilterRule) string {
	if rule.Value == nil {
		return ""
	}
	return *rule.Value
}

func ruleID(rule FilterRule) *int64 {
	if rule.Value == nil {
		return nil
	}
	id, err := strconv.ParseInt(*rule.Value, 10, 64)
	if err != nil {
		return nil
	}
	return &id
}

func ruleASN(rule FilterRule) *ASN {
	id := ruleID(rule)
	if id == nil {
		return nil
	}
	asn := ASN(*id)
	return &asn
}

func ruleBool(rule FilterRule) *bool {
	if rule.Value == nil {
		return nil
	}
	b, err := strconv.ParseBool(*rule.Value)
	if err != nil {
		return nil
	}
	return &b
}

func ruleInt(rule FilterRule) int {
	if rule.Value == nil {
		return 0
	}
	n, err := strconv.Atoi(*rule.Value)
	if err != nil {
		return 0
	}
	return n
}

func ruleTime(rule FilterRule) time.Time {
	if rule.Value == nil {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339, *rule.Value)
	if err != nil {
		return time.Time{}
	}
	return t.UTC()
}

func boolPtr(b bool) *bool {
	return &b
}
