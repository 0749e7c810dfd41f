package chatbot

import (
	"strings"

	"github.com/WaelSawari/AUCArchive/pkg/contentdm"
)

// IntentKind enumerates the user goals the resolver can classify.
type IntentKind int

const (
	IntentSearchAll IntentKind = iota // zero value: the fallback for unrecognized input
	IntentHelp
	IntentListCollections
	IntentBrowse
	IntentSearchIn
	IntentItemDetail
)

func (k IntentKind) String() string {
	switch k {
	case IntentHelp:
		return "help"
	case IntentListCollections:
		return "list-collections"
	case IntentBrowse:
		return "browse"
	case IntentSearchIn:
		return "search-in-collection"
	case IntentItemDetail:
		return "item-detail"
	default:
		return "search-all"
	}
}

// Intent is the classified goal of one input line plus its extracted
// arguments. Recomputed per line, never stored.
type Intent struct {
	Kind       IntentKind
	Terms      string // SearchIn, SearchAll
	Collection string // Browse, SearchIn, ItemDetail (name or alias as typed)
	ItemID     string // ItemDetail
}

// rule is one (predicate, extractor) step of the resolver chain.
type rule func(input string) (Intent, bool)

// maxNameMatches caps how many loaded collections take part in the
// display-name rule.
const maxNameMatches = 10

// Resolver classifies free-text input into an Intent. Rules are evaluated in
// a fixed order and the first match wins; the order is the contract, e.g.
// "search X in Y" must be tried before the bare "search " prefix, and a
// collection display name anywhere in the input turns the line into a browse
// before any search rule fires.
type Resolver struct {
	rules []rule
}

// NewResolver builds the rule chain. Display names of the first
// maxNameMatches collections participate in name matching, in load order.
func NewResolver(collections []contentdm.Collection) *Resolver {
	return &Resolver{rules: []rule{
		matchHelp,
		matchListCollections,
		matchBrowse,
		matchCollectionName(collections),
		matchSearchIn,
		matchSearchAll,
		matchItem,
	}}
}

// Resolve classifies one line. Input is trimmed and lowercased first; every
// unrecognized line falls through to a global search.
func (r *Resolver) Resolve(line string) Intent {
	input := strings.ToLower(strings.TrimSpace(line))
	for _, rule := range r.rules {
		if intent, ok := rule(input); ok {
			return intent
		}
	}
	return Intent{Kind: IntentSearchAll, Terms: input}
}

func matchHelp(input string) (Intent, bool) {
	switch input {
	case "help", "?", "commands":
		return Intent{Kind: IntentHelp}, true
	}
	return Intent{}, false
}

func matchListCollections(input string) (Intent, bool) {
	if strings.Contains(input, "collections") {
		return Intent{Kind: IntentListCollections}, true
	}
	return Intent{}, false
}

func matchBrowse(input string) (Intent, bool) {
	rest, ok := strings.CutPrefix(input, "browse ")
	if !ok {
		return Intent{}, false
	}
	rest = strings.TrimSpace(rest)
	if rest == "" {
		return Intent{}, false
	}
	return Intent{Kind: IntentBrowse, Collection: rest}, true
}

// matchCollectionName fires when a known display name appears anywhere in
// the input, turning the line into a browse of that collection. Only the
// first maxNameMatches collections are checked, in load order, and the first
// hit wins.
func matchCollectionName(collections []contentdm.Collection) rule {
	names := collections
	if len(names) > maxNameMatches {
		names = names[:maxNameMatches]
	}
	return func(input string) (Intent, bool) {
		for _, c := range names {
			name := strings.ToLower(c.Name)
			if name != "" && strings.Contains(input, name) {
				return Intent{Kind: IntentBrowse, Collection: contentdm.CleanAlias(c.Alias)}, true
			}
		}
		return Intent{}, false
	}
}

// matchSearchIn splits "search <terms> in <collection>" at the first " in "
// so the terms stay as short as possible.
func matchSearchIn(input string) (Intent, bool) {
	rest, ok := strings.CutPrefix(input, "search ")
	if !ok {
		return Intent{}, false
	}
	terms, collection, found := strings.Cut(rest, " in ")
	if !found {
		return Intent{}, false
	}
	terms = strings.TrimSpace(terms)
	collection = strings.TrimSpace(collection)
	if terms == "" || collection == "" {
		return Intent{}, false
	}
	return Intent{Kind: IntentSearchIn, Terms: terms, Collection: collection}, true
}

func matchSearchAll(input string) (Intent, bool) {
	rest, ok := strings.CutPrefix(input, "search ")
	if !ok {
		return Intent{}, false
	}
	return Intent{Kind: IntentSearchAll, Terms: strings.TrimSpace(rest)}, true
}

// matchItem looks for the literal token "item" followed by two tokens,
// anywhere in the line.
func matchItem(input string) (Intent, bool) {
	fields := strings.Fields(input)
	for i, f := range fields {
		if f == "item" && i+2 < len(fields) {
			return Intent{Kind: IntentItemDetail, Collection: fields[i+1], ItemID: fields[i+2]}, true
		}
	}
	return Intent{}, false
}
