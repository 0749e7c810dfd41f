// Package chatbot turns free-text queries into calls against the AUC Digital
// Archive and renders the responses as readable replies. The pipeline is
// intent resolution, collection-name resolution, one or more client calls,
// then formatting; all of it synchronous and stateless apart from the
// collection list captured at startup.
package chatbot

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/WaelSawari/AUCArchive/pkg/contentdm"
)

// Archive is the slice of the CONTENTdm client the chatbot consumes.
type Archive interface {
	Collections(ctx context.Context) ([]contentdm.Collection, error)
	Query(ctx context.Context, alias, terms string, fields []string, maxRecords int) (*contentdm.QueryResult, error)
	Browse(ctx context.Context, alias string, fields []string, maxRecords int) (*contentdm.QueryResult, error)
	Item(ctx context.Context, alias, itemID string) (contentdm.Item, error)
}

const (
	searchAllCollections = 5  // collections queried by a global search, in load order
	searchAllPerCap      = 5  // per-collection record cap, to bound total latency
	searchAllCombined    = 10 // combined records rendered
	searchedNamesShown   = 3
)

// Chatbot wires the resolver, the collection index, and the formatter around
// an Archive client. Everything it holds is immutable after New returns.
type Chatbot struct {
	archive     Archive
	collections []contentdm.Collection
	index       *Index
	resolver    *Resolver
	format      *Formatter
	log         *slog.Logger
}

// New loads the collection list and builds the lookup structures. A load
// failure aborts construction: the chatbot never answers without a loaded
// collection index.
func New(ctx context.Context, archive Archive, baseURL string, logger *slog.Logger) (*Chatbot, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if baseURL == "" {
		baseURL = contentdm.DefaultBaseURL
	}
	collections, err := archive.Collections(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading collections: %w", err)
	}
	logger.Info("collections loaded", "count", len(collections))
	return &Chatbot{
		archive:     archive,
		collections: collections,
		index:       NewIndex(collections),
		resolver:    NewResolver(collections),
		format:      &Formatter{BaseURL: strings.TrimRight(baseURL, "/")},
		log:         logger,
	}, nil
}

// Collections returns the collection list captured at startup.
func (b *Chatbot) Collections() []contentdm.Collection {
	return b.collections
}

// ResolveCollection maps a user-facing collection name to its canonical
// alias through the index.
func (b *Chatbot) ResolveCollection(name string) (string, error) {
	return b.index.Resolve(name)
}

// Handle answers one input line. It never returns an error: every failure is
// rendered into the reply.
func (b *Chatbot) Handle(ctx context.Context, line string) string {
	intent := b.resolver.Resolve(line)
	b.log.Debug("resolved intent",
		"kind", intent.Kind.String(),
		"terms", intent.Terms,
		"collection", intent.Collection)

	switch intent.Kind {
	case IntentHelp:
		return HelpMessage
	case IntentListCollections:
		return b.format.CollectionList(b.collections)
	case IntentBrowse:
		return b.browse(ctx, intent.Collection)
	case IntentSearchIn:
		return b.searchIn(ctx, intent.Terms, intent.Collection)
	case IntentItemDetail:
		item, err := b.archive.Item(ctx, intent.Collection, intent.ItemID)
		return b.format.ItemDetails(item, err, intent.Collection)
	default:
		return b.searchAll(ctx, intent.Terms)
	}
}

func notFoundMessage(name string) string {
	return fmt.Sprintf("❌ Collection '%s' not found. Use 'list collections' to see available collections.", name)
}

func (b *Chatbot) browse(ctx context.Context, name string) string {
	alias, err := b.index.Resolve(name)
	if err != nil {
		return notFoundMessage(name)
	}
	res, err := b.archive.Browse(ctx, alias, nil, contentdm.DefaultMaxRecords)
	return b.format.SearchResults(res, err, b.displayName(alias, name))
}

func (b *Chatbot) searchIn(ctx context.Context, terms, name string) string {
	alias, err := b.index.Resolve(name)
	if err != nil {
		return notFoundMessage(name)
	}
	res, err := b.archive.Query(ctx, alias, terms, nil, contentdm.DefaultMaxRecords)
	return b.format.SearchResults(res, err, b.displayName(alias, name))
}

// searchAll queries the first few collections sequentially. A failure in one
// collection must not abort the others: the successful subset still renders.
func (b *Chatbot) searchAll(ctx context.Context, terms string) string {
	targets := b.collections
	if len(targets) > searchAllCollections {
		targets = targets[:searchAllCollections]
	}

	var combined []contentdm.Record
	var searched []string
	for _, c := range targets {
		alias := contentdm.CleanAlias(c.Alias)
		if alias == "" {
			continue
		}
		res, err := b.archive.Query(ctx, alias, terms, nil, searchAllPerCap)
		if err != nil {
			b.log.Warn("collection search failed", "collection", alias, "error", err)
			continue
		}
		if len(res.Records) > 0 {
			combined = append(combined, res.Records...)
			searched = append(searched, c.Name)
		}
	}

	if len(combined) == 0 {
		return fmt.Sprintf("📭 No items found for '%s' across searched collections.", terms)
	}

	out := []string{fmt.Sprintf("🔍 Search results for '%s' across collections:\n", terms)}
	if len(combined) > searchAllCombined {
		combined = combined[:searchAllCombined]
	}
	for i, record := range combined {
		out = append(out, b.format.recordLines(i+1, record, true)...)
	}

	names := searched
	if len(names) > searchedNamesShown {
		names = names[:searchedNamesShown]
	}
	out = append(out, "📊 Searched in: "+strings.Join(names, ", "))
	if len(searched) > searchedNamesShown {
		out = append(out, fmt.Sprintf(" and %d more collections", len(searched)-searchedNamesShown))
	}
	return strings.Join(out, "\n")
}

// displayName prefers the canonical collection name over whatever the user
// typed, falling back to the typed form when the alias is unknown.
func (b *Chatbot) displayName(alias, fallback string) string {
	for _, c := range b.collections {
		if contentdm.CleanAlias(c.Alias) == alias && c.Name != "" {
			return c.Name
		}
	}
	return fallback
}
