// Package api exposes the chatbot and the raw archive operations over HTTP.
package api

import (
	"context"

	"github.com/danielgtaylor/huma/v2"

	"github.com/WaelSawari/AUCArchive/pkg/chatbot"
	"github.com/WaelSawari/AUCArchive/pkg/contentdm"
)

type PlainOutput struct {
	ContentType string `header:"Content-Type"`
	Body        []byte
}

type AskInput struct {
	Body struct {
		Text string `json:"text" minLength:"1" doc:"Free-text query, same syntax as the interactive shell"`
	}
}

type AskOutput struct {
	Body struct {
		Reply string `json:"reply"`
	}
}

type CollectionsOutput struct {
	Body []contentdm.Collection
}

type SearchInput struct {
	Terms      string `query:"terms" required:"true" doc:"Search terms, ANDed across the default field set"`
	Collection string `query:"collection" required:"true" doc:"Collection name or alias; resolved case-insensitively"`
	Limit      int    `query:"limit" default:"20" minimum:"1" maximum:"100" doc:"Maximum number of records"`
}

type SearchOutput struct {
	Body contentdm.QueryResult
}

type ItemInput struct {
	Alias string `path:"alias" doc:"Collection alias"`
	ID    string `path:"id" doc:"Item pointer within the collection"`
}

type ItemOutput struct {
	Body contentdm.Item
}

// Setup registers all operations. The raw search and item endpoints go
// through the same Archive client the chatbot uses, and collection names are
// resolved through the chatbot's index.
func Setup(api huma.API, bot *chatbot.Chatbot, archive chatbot.Archive) {
	huma.Register(api, huma.Operation{
		OperationID: "HealthCheck",
		Method:      "GET",
		Path:        "/healthz",
		Summary:     "Health check",
		Description: "Check if the API is running",
		Tags:        []string{"Health"},
	}, func(ctx context.Context, input *struct{}) (*PlainOutput, error) {
		return &PlainOutput{
			ContentType: "text/plain",
			Body:        []byte("OK"),
		}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "Ask",
		Method:      "POST",
		Path:        "/v1/query",
		Summary:     "Ask the chatbot",
		Description: "Run one free-text query through the full intent-resolution pipeline",
		Tags:        []string{"Chatbot"},
	}, func(ctx context.Context, input *AskInput) (*AskOutput, error) {
		resp := &AskOutput{}
		resp.Body.Reply = bot.Handle(ctx, input.Body.Text)
		return resp, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "ListCollections",
		Method:      "GET",
		Path:        "/v1/collections",
		Summary:     "List collections",
		Description: "List the collections loaded at startup",
		Tags:        []string{"Archive"},
	}, func(ctx context.Context, input *struct{}) (*CollectionsOutput, error) {
		return &CollectionsOutput{Body: bot.Collections()}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "Search",
		Method:      "GET",
		Path:        "/v1/search",
		Summary:     "Search a collection",
		Description: "Search for items within a collection by name or alias",
		Tags:        []string{"Archive"},
	}, func(ctx context.Context, input *SearchInput) (*SearchOutput, error) {
		alias, err := bot.ResolveCollection(input.Collection)
		if err != nil {
			return nil, huma.Error404NotFound("collection not found: " + input.Collection)
		}
		res, err := archive.Query(ctx, alias, input.Terms, nil, input.Limit)
		if err != nil {
			return nil, huma.Error502BadGateway("archive query failed", err)
		}
		return &SearchOutput{Body: *res}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "GetItem",
		Method:      "GET",
		Path:        "/v1/collections/{alias}/items/{id}",
		Summary:     "Get item metadata",
		Description: "Fetch the full metadata of a single archived item",
		Tags:        []string{"Archive"},
	}, func(ctx context.Context, input *ItemInput) (*ItemOutput, error) {
		item, err := archive.Item(ctx, input.Alias, input.ID)
		if err != nil {
			return nil, huma.Error502BadGateway("archive item lookup failed", err)
		}
		return &ItemOutput{Body: item}, nil
	})
}
