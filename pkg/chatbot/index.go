package chatbot

import (
	"errors"
	"strings"

	"github.com/WaelSawari/AUCArchive/pkg/contentdm"
)

// ErrNotFound is returned by Index.Resolve when no collection matches.
var ErrNotFound = errors.New("collection not found")

// Index resolves user-supplied collection names to canonical aliases. It is
// built once at startup and read-only afterwards.
type Index struct {
	keys    []string          // lookup keys in insertion order, for deterministic partial matching
	aliases map[string]string // lowercased name or alias -> canonical alias
	parents map[string]string // canonical alias -> parent group, when one is set
}

// NewIndex builds the lookup table. For every collection both the cleaned
// alias and the display name are inserted, lowercased, in load order.
func NewIndex(collections []contentdm.Collection) *Index {
	idx := &Index{
		aliases: make(map[string]string, 2*len(collections)),
		parents: make(map[string]string),
	}
	for _, c := range collections {
		alias := contentdm.CleanAlias(c.Alias)
		if alias == "" {
			continue
		}
		idx.insert(strings.ToLower(alias), alias)
		idx.insert(strings.ToLower(c.Name), alias)
		if c.Secondary != "" && c.Secondary != contentdm.NoParent {
			idx.parents[alias] = c.Secondary
		}
	}
	return idx
}

// insert keeps the position of the first occurrence of a key but lets a
// later collection overwrite its value, matching plain map-update semantics.
func (idx *Index) insert(key, alias string) {
	if key == "" {
		return
	}
	if _, ok := idx.aliases[key]; !ok {
		idx.keys = append(idx.keys, key)
	}
	idx.aliases[key] = alias
}

// Resolve maps a user-supplied name to a canonical alias. Exact matches win;
// otherwise the first key in insertion order that contains the input, or is
// contained by it, is used. The first-match order is observable behavior and
// must not change.
func (idx *Index) Resolve(name string) (string, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if alias, ok := idx.aliases[name]; ok {
		return alias, nil
	}
	for _, key := range idx.keys {
		if strings.Contains(key, name) || strings.Contains(name, key) {
			return idx.aliases[key], nil
		}
	}
	return "", ErrNotFound
}

// Parent returns the parent group of a collection, if it has one. The
// CONTENTdm "0" sentinel counts as no parent.
func (idx *Index) Parent(alias string) (string, bool) {
	parent, ok := idx.parents[contentdm.CleanAlias(alias)]
	return parent, ok
}

// Len returns the number of lookup keys in the index.
func (idx *Index) Len() int {
	return len(idx.keys)
}
