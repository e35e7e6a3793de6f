// Package recommender scores grocery items that are likely to complete a
// shopping list. It mines co-purchase patterns across every stored list,
// blends in the requesting user's own purchase history and ranks the result.
//
// The package is a pure function over its inputs: callers fetch the list
// corpus and the user's history beforehand and the engine never performs
// I/O, logs, or keeps state between calls.
package recommender

const (
	// DefaultLimit caps the number of recommendations returned per request.
	DefaultLimit = 10

	// HistoryIncrement is added to a candidate for every time it appears in
	// the user's purchase history.
	HistoryIncrement = 0.5

	// MinSelection is the smallest selection that carries co-occurrence signal.
	MinSelection = 2
)

// Reasons attached to ranked candidates.
const (
	ReasonCoPurchase = "Often bought with your current items"
)

// ListSnapshot is a stored shopping list reduced to the items it contains.
type ListSnapshot struct {
	ID    string
	Items []string
}

// HistoryRecord holds the items of one of a user's past lists.
// Items may repeat; every occurrence counts.
type HistoryRecord struct {
	UserID string
	Items  []string
}

// Selection is what the user has put on the list being edited.
type Selection struct {
	UserID string
	// ListID identifies the active list so it can be left out of the corpus
	// scan. Empty means no list is excluded.
	ListID string
	Items  []string
}

// ScoredCandidate is a single recommended item.
type ScoredCandidate struct {
	ItemID string  `json:"item_id"`
	Score  float64 `json:"score"`
	Reason string  `json:"reason"`
}

// Result is an ordered list of candidates, best first.
type Result []ScoredCandidate

// ItemSet is a set of item ids.
type ItemSet map[string]struct{}

// NewItemSet collapses duplicate ids into a set.
func NewItemSet(items ...string) ItemSet {
	set := make(ItemSet, len(items))
	for _, item := range items {
		set[item] = struct{}{}
	}
	return set
}

// Has reports whether item is in the set.
func (s ItemSet) Has(item string) bool {
	_, ok := s[item]
	return ok
}

// distinct returns items with duplicates removed, keeping first occurrences.
func distinct(items []string) []string {
	seen := make(map[string]struct{}, len(items))
	out := make([]string, 0, len(items))
	for _, item := range items {
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		out = append(out, item)
	}
	return out
}
