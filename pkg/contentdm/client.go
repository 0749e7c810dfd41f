// Package contentdm is a client for the CONTENTdm dmwebservices API that
// backs the AUC Digital Archive. All failures come back as *Error values
// carrying a transport or decode kind.
package contentdm

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// DefaultBaseURL is the public AUC Digital Archive instance.
const DefaultBaseURL = "https://digitalcollections.aucegypt.edu"

// DefaultMaxRecords caps the records requested per query unless the caller
// asks for fewer.
const DefaultMaxRecords = 20

const requestTimeout = 10 * time.Second

// browseSentinel is the dmQuery search string that disables filtering.
const browseSentinel = "0"

// Default field sets requested from dmQuery, using CONTENTdm's six-letter
// field nicknames.
var (
	defaultSearchFields = []string{"title", "date", "subjec", "descri"}
	defaultBrowseFields = []string{"title", "date", "subjec"}
)

// Client issues queries against one CONTENTdm instance. Safe for reuse; each
// call blocks until the server responds or the fixed timeout elapses.
type Client struct {
	baseURL string
	http    *http.Client
}

// New returns a client for the given instance. An empty baseURL selects the
// AUC archive.
func New(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: requestTimeout},
	}
}

// BaseURL returns the instance this client talks to, without a trailing slash.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Collections fetches the archive's collection list (dmGetCollectionList).
func (c *Client) Collections(ctx context.Context) ([]Collection, error) {
	var out []Collection
	if err := c.request(ctx, "dmGetCollectionList", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Query searches a collection (dmQuery). Terms are matched against all
// fields and ANDed. A nil fields slice requests the default search fields;
// maxRecords <= 0 requests the default cap.
func (c *Client) Query(ctx context.Context, alias, terms string, fields []string, maxRecords int) (*QueryResult, error) {
	if len(fields) == 0 {
		fields = defaultSearchFields
	}
	search := "CISOSEARCHALL^" + terms + "^any^and"
	return c.query(ctx, alias, search, fields, maxRecords)
}

// Browse lists items of a collection without a search filter. Same dmQuery
// operation as Query, with the sentinel "no filter" search string.
func (c *Client) Browse(ctx context.Context, alias string, fields []string, maxRecords int) (*QueryResult, error) {
	if len(fields) == 0 {
		fields = defaultBrowseFields
	}
	return c.query(ctx, alias, browseSentinel, fields, maxRecords)
}

// Item fetches the full metadata of a single item (dmGetItemInfo).
func (c *Client) Item(ctx context.Context, alias, itemID string) (Item, error) {
	var out Item
	if err := c.request(ctx, "dmGetItemInfo", []string{CleanAlias(alias), itemID}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// FieldInfo fetches the metadata field configuration of a collection
// (dmGetCollectionFieldInfo).
func (c *Client) FieldInfo(ctx context.Context, alias string) ([]FieldInfo, error) {
	var out []FieldInfo
	if err := c.request(ctx, "dmGetCollectionFieldInfo", []string{CleanAlias(alias)}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) query(ctx context.Context, alias, search string, fields []string, maxRecords int) (*QueryResult, error) {
	if maxRecords <= 0 {
		maxRecords = DefaultMaxRecords
	}
	params := []string{
		CleanAlias(alias),
		search,
		strings.Join(fields, "!"),
		"nosort",
		strconv.Itoa(maxRecords),
		"1", // start
		"0", // suppress
		"0", // docptr
		"0", // suggest
		"0", // facets
		"0", // showunpub
		"0", // denormalizeFacets
	}
	var out QueryResult
	if err := c.request(ctx, "dmQuery", params, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// request performs one dmwebservices call. The API takes a single q=
// parameter holding the function name and its ordered arguments joined with
// slashes, with the response format appended.
func (c *Client) request(ctx context.Context, fn string, params []string, out any) error {
	parts := make([]string, 0, len(params)+2)
	parts = append(parts, fn)
	for _, p := range params {
		parts = append(parts, url.PathEscape(p))
	}
	parts = append(parts, "json")
	endpoint := c.baseURL + "/digital/bl/dmwebservices/index.php?q=" + strings.Join(parts, "/")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return &Error{Kind: KindTransport, Op: fn, Message: "API request failed", Err: err}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &Error{Kind: KindTransport, Op: fn, Message: "API request failed", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &Error{
			Kind:    KindTransport,
			Op:      fn,
			Message: "API request failed",
			Err:     fmt.Errorf("unexpected status code: %d", resp.StatusCode),
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &Error{Kind: KindTransport, Op: fn, Message: "API request failed", Err: err}
	}

	if err := json.Unmarshal(body, out); err != nil {
		// CONTENTdm reports its own failures as a {code, message} object,
		// which will not match the expected shape of a list response.
		var apiErr struct {
			Message string `json:"message"`
		}
		if json.Unmarshal(body, &apiErr) == nil && apiErr.Message != "" {
			return &Error{Kind: KindDecode, Op: fn, Message: "failed to parse JSON response: " + apiErr.Message}
		}
		return &Error{Kind: KindDecode, Op: fn, Message: "failed to parse JSON response", Err: err}
	}
	return nil
}
