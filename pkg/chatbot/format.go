package chatbot

import (
	"fmt"
	"strings"

	"github.com/WaelSawari/AUCArchive/pkg/contentdm"
)

const (
	maxResultsShown     = 10
	maxCollectionsShown = 20
)

const noResultsMessage = "📭 No items found matching your search criteria."

// Formatter renders API payloads as chat replies. BaseURL is used to build
// links to the archive's public item viewer. Missing or malformed fields
// degrade to a placeholder or are omitted, never a failure.
type Formatter struct {
	BaseURL string
}

// itemFields maps each displayed attribute to its candidate metadata keys in
// preference order: CONTENTdm's six-letter nickname first, then the long
// field name.
var itemFields = []struct {
	label string
	keys  []string
}{
	{"Title", []string{"title"}},
	{"Date", []string{"date"}},
	{"Creator", []string{"creato", "creator"}},
	{"Subject", []string{"subjec", "subject"}},
	{"Description", []string{"descri", "description"}},
	{"Format", []string{"format", "type"}},
	{"Rights", []string{"rights"}},
}

// ItemURL builds the public viewer link for one item.
func (f *Formatter) ItemURL(alias, pointer string) string {
	return fmt.Sprintf("%s/digital/collection/%s/id/%s", f.BaseURL, contentdm.CleanAlias(alias), pointer)
}

// SearchResults renders a search or browse payload. A client error becomes a
// single error line; an empty record set becomes a fixed notice. At most ten
// records are rendered, with a truncation summary when more exist.
func (f *Formatter) SearchResults(res *contentdm.QueryResult, err error, collectionName string) string {
	if err != nil {
		return "❌ Search error: " + err.Error()
	}
	if res == nil || len(res.Records) == 0 {
		return noResultsMessage
	}

	var out []string
	if collectionName != "" {
		out = append(out, fmt.Sprintf("🔍 Search results from '%s':\n", collectionName))
	} else {
		out = append(out, "🔍 Search results:\n")
	}

	records := res.Records
	if len(records) > maxResultsShown {
		records = records[:maxResultsShown]
	}
	for i, record := range records {
		out = append(out, f.recordLines(i+1, record, false)...)
	}

	if total := res.Pager.Total; total > len(records) {
		out = append(out, fmt.Sprintf("📊 Showing %d of %d total results", len(records), total))
	}
	return strings.Join(out, "\n")
}

// recordLines renders one numbered search hit: title, optional date, the
// collection line for cross-collection results, and the viewer link.
func (f *Formatter) recordLines(n int, record contentdm.Record, withCollection bool) []string {
	title := record.Field("title")
	if title == "" {
		title = "Untitled"
	}
	lines := []string{fmt.Sprintf("%d. **%s**", n, title)}
	if date := record.Field("date"); date != "" {
		lines = append(lines, "   📅 "+date)
	}
	alias := record.Field("collection")
	if withCollection {
		lines = append(lines, "   📚 Collection: "+alias)
	}
	lines = append(lines, "   🔗 "+f.ItemURL(alias, record.Field("pointer")), "")
	return lines
}

// ItemDetails renders full item metadata in a fixed field order, omitting
// absent fields. Both the short field nickname and its long alias are
// consulted, preferring the nickname.
func (f *Formatter) ItemDetails(item contentdm.Item, err error, alias string) string {
	if err != nil {
		return "❌ Error retrieving item: " + err.Error()
	}

	out := []string{"📄 **Item Details:**\n"}
	for _, field := range itemFields {
		value := item.Field(field.keys...)
		if field.label == "Title" && value == "" {
			value = "Untitled"
		}
		if value == "" {
			continue
		}
		out = append(out, fmt.Sprintf("**%s:** %s", field.label, value))
	}

	// The item payload names its own pointer, under either key.
	if pointer := item.Field("dmrecord", "pointer"); pointer != "" {
		out = append(out, "\n🔗 **View Item:** "+f.ItemURL(alias, pointer))
	}
	return strings.Join(out, "\n")
}

// CollectionList renders up to twenty collections as a bulleted list with a
// nested parent-group line where one is set.
func (f *Formatter) CollectionList(collections []contentdm.Collection) string {
	out := []string{"📚 **Available Collections:**\n"}

	shown := collections
	if len(shown) > maxCollectionsShown {
		shown = shown[:maxCollectionsShown]
	}
	for _, c := range shown {
		name := c.Name
		if name == "" {
			name = "Unknown"
		}
		alias := contentdm.CleanAlias(c.Alias)
		if alias == "" {
			alias = "unknown"
		}
		out = append(out, fmt.Sprintf("• **%s** (`%s`)", name, alias))
		if c.Secondary != "" && c.Secondary != contentdm.NoParent {
			out = append(out, "  └─ Part of: "+c.Secondary)
		}
	}

	if len(collections) > maxCollectionsShown {
		out = append(out, fmt.Sprintf("\n📊 Showing %d of %d collections", maxCollectionsShown, len(collections)))
	}
	return strings.Join(out, "\n")
}
