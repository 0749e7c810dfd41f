package contentdm

import (
	"strconv"
	"strings"
)

// NoParent is the sentinel CONTENTdm uses for collections without a parent group.
const NoParent = "0"

// Collection is one named sub-archive in the repository.
type Collection struct {
	Alias     string `json:"alias"`     // canonical short identifier, usually with a leading slash
	Name      string `json:"name"`      // display name
	Secondary string `json:"secondary"` // parent group; NoParent means none
}

// CleanAlias strips the leading slashes CONTENTdm puts on collection aliases.
func CleanAlias(alias string) string {
	return strings.TrimLeft(alias, "/")
}

// Record is one metadata entry from a dmQuery response. CONTENTdm returns a
// flat field map whose values may be strings, numbers, or empty objects, so
// fields are accessed through Field rather than directly.
type Record map[string]any

// Item is the full metadata of a single archived item, as returned by
// dmGetItemInfo. Same shape as a Record with more fields populated.
type Item = Record

// Field returns the first usable value among the candidate keys, in order.
// String values are returned as-is, numbers are formatted (item pointers
// arrive as JSON numbers), and anything else counts as absent: CONTENTdm
// encodes empty fields as {}.
func (r Record) Field(keys ...string) string {
	for _, key := range keys {
		switch v := r[key].(type) {
		case string:
			if v != "" {
				return v
			}
		case float64:
			return strconv.FormatFloat(v, 'f', -1, 64)
		}
	}
	return ""
}

// Pager is the paging metadata of a dmQuery response.
type Pager struct {
	Start   int `json:"start"`
	Maxrecs int `json:"maxrecs"`
	Total   int `json:"total"`
}

// QueryResult is the payload of a dmQuery call (search or browse).
type QueryResult struct {
	Records []Record `json:"records"`
	Pager   Pager    `json:"pager"`
}

// FieldInfo describes one metadata field configured on a collection, as
// returned by dmGetCollectionFieldInfo.
type FieldInfo struct {
	Name   string `json:"name"`
	Nick   string `json:"nick"`
	Type   string `json:"type"`
	Search int    `json:"search"`
	Hide   int    `json:"hide"`
	Req    int    `json:"req"`
}
