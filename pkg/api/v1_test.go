package api

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/WaelSawari/AUCArchive/pkg/chatbot"
	"github.com/WaelSawari/AUCArchive/pkg/contentdm"
)

type stubArchive struct {
	queryErr error
	itemErr  error
}

func (s *stubArchive) Collections(ctx context.Context) ([]contentdm.Collection, error) {
	return []contentdm.Collection{
		{Alias: "/photos", Name: "Historical Photographs", Secondary: "0"},
		{Alias: "/p15795coll7", Name: "Rare Books", Secondary: "0"},
	}, nil
}

func (s *stubArchive) Query(ctx context.Context, alias, terms string, fields []string, maxRecords int) (*contentdm.QueryResult, error) {
	if s.queryErr != nil {
		return nil, s.queryErr
	}
	return &contentdm.QueryResult{
		Records: []contentdm.Record{{"title": "Nile Survey", "collection": "/" + alias, "pointer": "1"}},
		Pager:   contentdm.Pager{Total: 1},
	}, nil
}

func (s *stubArchive) Browse(ctx context.Context, alias string, fields []string, maxRecords int) (*contentdm.QueryResult, error) {
	return &contentdm.QueryResult{}, nil
}

func (s *stubArchive) Item(ctx context.Context, alias, itemID string) (contentdm.Item, error) {
	if s.itemErr != nil {
		return nil, s.itemErr
	}
	return contentdm.Item{"title": "Firman", "dmrecord": itemID}, nil
}

func newTestAPI(t *testing.T, archive *stubArchive) humatest.TestAPI {
	t.Helper()
	bot, err := chatbot.New(context.Background(), archive, "https://archive.example.edu", nil)
	require.NoError(t, err)

	_, api := humatest.New(t)
	Setup(api, bot, archive)
	return api
}

func TestHealthCheck(t *testing.T) {
	api := newTestAPI(t, &stubArchive{})

	resp := api.Get("/healthz")
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "OK", resp.Body.String())
}

func TestAsk(t *testing.T) {
	api := newTestAPI(t, &stubArchive{})

	resp := api.Post("/v1/query", map[string]any{"text": "help"})
	require.Equal(t, http.StatusOK, resp.Code)

	var out struct {
		Reply string `json:"reply"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &out))
	assert.Contains(t, out.Reply, "AUC Archive Chatbot Help")
}

func TestListCollections(t *testing.T) {
	api := newTestAPI(t, &stubArchive{})

	resp := api.Get("/v1/collections")
	require.Equal(t, http.StatusOK, resp.Code)

	var out []contentdm.Collection
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &out))
	require.Len(t, out, 2)
	assert.Equal(t, "Rare Books", out[1].Name)
}

func TestSearch(t *testing.T) {
	api := newTestAPI(t, &stubArchive{})

	resp := api.Get("/v1/search?terms=nile&collection=rare+books")
	require.Equal(t, http.StatusOK, resp.Code)

	var out contentdm.QueryResult
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &out))
	require.Len(t, out.Records, 1)
	assert.Equal(t, 1, out.Pager.Total)
}

func TestSearchUnknownCollection(t *testing.T) {
	api := newTestAPI(t, &stubArchive{})

	resp := api.Get("/v1/search?terms=nile&collection=firmans")
	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestSearchUpstreamFailure(t *testing.T) {
	api := newTestAPI(t, &stubArchive{
		queryErr: &contentdm.Error{Kind: contentdm.KindTransport, Op: "dmQuery", Message: "API request failed"},
	})

	resp := api.Get("/v1/search?terms=nile&collection=photos")
	assert.Equal(t, http.StatusBadGateway, resp.Code)
}

func TestGetItem(t *testing.T) {
	api := newTestAPI(t, &stubArchive{})

	resp := api.Get("/v1/collections/photos/items/42")
	require.Equal(t, http.StatusOK, resp.Code)

	var out contentdm.Item
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &out))
	assert.Equal(t, "Firman", out.Field("title"))
}

func TestGetItemUpstreamFailure(t *testing.T) {
	api := newTestAPI(t, &stubArchive{
		itemErr: &contentdm.Error{Kind: contentdm.KindDecode, Op: "dmGetItemInfo", Message: "failed to parse JSON response"},
	})

	resp := api.Get("/v1/collections/photos/items/42")
	assert.Equal(t, http.StatusBadGateway, resp.Code)
}
