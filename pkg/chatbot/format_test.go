package chatbot

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/WaelSawari/AUCArchive/pkg/contentdm"
	"github.com/stretchr/testify/assert"
)

func testFormatter() *Formatter {
	return &Formatter{BaseURL: "https://archive.example.edu"}
}

func TestSearchResultsError(t *testing.T) {
	f := testFormatter()

	out := f.SearchResults(nil, errors.New("API request failed: timeout"), "Rare Books")
	assert.Equal(t, "❌ Search error: API request failed: timeout", out)
}

func TestSearchResultsEmpty(t *testing.T) {
	f := testFormatter()

	empty := &contentdm.QueryResult{}
	assert.Equal(t, noResultsMessage, f.SearchResults(empty, nil, "Rare Books"))
	assert.Equal(t, noResultsMessage, f.SearchResults(empty, nil, ""), "label does not change the empty notice")
	assert.Equal(t, noResultsMessage, f.SearchResults(nil, nil, ""))
}

func TestSearchResultsRendering(t *testing.T) {
	f := testFormatter()

	res := &contentdm.QueryResult{
		Records: []contentdm.Record{
			{"title": "Nile Survey", "date": "1910", "collection": "/photos", "pointer": float64(42)},
			{"collection": "/photos", "pointer": float64(43)},
		},
		Pager: contentdm.Pager{Total: 2},
	}
	out := f.SearchResults(res, nil, "Historical Photographs")

	assert.True(t, strings.HasPrefix(out, "🔍 Search results from 'Historical Photographs':\n"))
	assert.Contains(t, out, "1. **Nile Survey**")
	assert.Contains(t, out, "   📅 1910")
	assert.Contains(t, out, "   🔗 https://archive.example.edu/digital/collection/photos/id/42")
	assert.Contains(t, out, "2. **Untitled**", "missing title degrades to a placeholder")
	assert.NotContains(t, out, "Showing", "no truncation summary when everything is rendered")
}

func TestSearchResultsCapAndSummary(t *testing.T) {
	f := testFormatter()

	var records []contentdm.Record
	for i := 0; i < 15; i++ {
		records = append(records, contentdm.Record{
			"title":      fmt.Sprintf("Item %d", i),
			"collection": "/photos",
			"pointer":    float64(i),
		})
	}
	out := f.SearchResults(&contentdm.QueryResult{
		Records: records,
		Pager:   contentdm.Pager{Total: 128},
	}, nil, "")

	assert.True(t, strings.HasPrefix(out, "🔍 Search results:\n"))
	assert.Contains(t, out, "10. **Item 9**")
	assert.NotContains(t, out, "11. **Item 10**", "never more than ten records")
	assert.Contains(t, out, "📊 Showing 10 of 128 total results")
}

func TestItemDetailsError(t *testing.T) {
	f := testFormatter()

	out := f.ItemDetails(nil, errors.New("API request failed: boom"), "photos")
	assert.Equal(t, "❌ Error retrieving item: API request failed: boom", out)
}

func TestItemDetailsFieldOrderAndOmission(t *testing.T) {
	f := testFormatter()

	item := contentdm.Item{
		"title":  "Dahshur Boats",
		"date":   "1894",
		"creato": "de Morgan, Jacques",
		"rights": "Public domain",
		// no subject, description, or format
		"dmrecord": "77",
	}
	out := f.ItemDetails(item, nil, "/manuscripts")

	assert.True(t, strings.HasPrefix(out, "📄 **Item Details:**\n"))
	assert.Contains(t, out, "**Title:** Dahshur Boats")
	assert.Contains(t, out, "**Creator:** de Morgan, Jacques")
	assert.Contains(t, out, "**Rights:** Public domain")
	assert.NotContains(t, out, "**Subject:**")
	assert.NotContains(t, out, "**Description:**")
	assert.Contains(t, out, "🔗 **View Item:** https://archive.example.edu/digital/collection/manuscripts/id/77")

	// Fixed order: Date before Creator before Rights.
	assert.Less(t, strings.Index(out, "**Date:**"), strings.Index(out, "**Creator:**"))
	assert.Less(t, strings.Index(out, "**Creator:**"), strings.Index(out, "**Rights:**"))
}

func TestItemDetailsPrefersShortCodeKeys(t *testing.T) {
	f := testFormatter()

	item := contentdm.Item{
		"title":    "Firman",
		"creato":   "short creator",
		"creator":  "long creator",
		"subject":  "long subject only",
		"dmrecord": "5",
		"pointer":  "999",
	}
	out := f.ItemDetails(item, nil, "manuscripts")

	assert.Contains(t, out, "**Creator:** short creator")
	assert.NotContains(t, out, "long creator")
	assert.Contains(t, out, "**Subject:** long subject only", "long alias is used when the short code is absent")
	assert.Contains(t, out, "/id/5", "dmrecord wins over pointer for the view link")
}

func TestItemDetailsTitlePlaceholder(t *testing.T) {
	f := testFormatter()

	out := f.ItemDetails(contentdm.Item{"date": "1900"}, nil, "photos")
	assert.Contains(t, out, "**Title:** Untitled")
	assert.NotContains(t, out, "View Item", "no link without a pointer")
}

func TestCollectionList(t *testing.T) {
	f := testFormatter()

	out := f.CollectionList(testCollections())

	assert.True(t, strings.HasPrefix(out, "📚 **Available Collections:**\n"))
	assert.Contains(t, out, "• **Historical Photographs** (`photos`)")
	assert.Contains(t, out, "  └─ Part of: Visual Archives")
	assert.Contains(t, out, "• **Rare Books** (`p15795coll7`)")
	assert.NotContains(t, out, "Part of: 0", "the no-parent sentinel is never shown")
	assert.NotContains(t, out, "Showing")
}

func TestCollectionListCapAndSummary(t *testing.T) {
	f := testFormatter()

	var collections []contentdm.Collection
	for i := 0; i < 25; i++ {
		collections = append(collections, contentdm.Collection{
			Alias: fmt.Sprintf("/coll%d", i),
			Name:  fmt.Sprintf("Collection %d", i),
		})
	}
	out := f.CollectionList(collections)

	assert.Contains(t, out, "• **Collection 19** (`coll19`)")
	assert.NotContains(t, out, "• **Collection 20**")
	assert.Contains(t, out, "📊 Showing 20 of 25 collections")
}
