package recommender

import (
	"fmt"
	"sort"
)

// Rank orders candidates by descending score and keeps the best limit.
// Equal scores keep discovery order.
func Rank(scores *Scores, limit int) (Result, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("%w: limit must be positive, got %d", ErrInvalidArgument, limit)
	}

	items := scores.Items()
	sort.SliceStable(items, func(i, j int) bool {
		return scores.values[items[i]] > scores.values[items[j]]
	})
	if len(items) > limit {
		items = items[:limit]
	}

	result := make(Result, 0, len(items))
	for _, item := range items {
		result = append(result, ScoredCandidate{
			ItemID: item,
			Score:  scores.values[item],
			Reason: ReasonCoPurchase,
		})
	}
	return result, nil
}
