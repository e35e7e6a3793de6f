package recommender

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// cancelCheckEvery is how many lists a scan worker handles between context checks.
const cancelCheckEvery = 256

// Score scans the corpus for lists that share items with current and scores
// every other item on those lists.
//
// A qualifying list gives each of its items outside current
// 1 + |overlap| / |list|, so more corroborating lists and larger overlaps rank
// higher while big unrelated lists do not dominate by bulk. Lists with fewer
// than two distinct items, lists with no overlap and the list named by
// excludeListID contribute nothing.
func Score(current ItemSet, excludeListID string, corpus []ListSnapshot) *Scores {
	scores := NewScores()
	for i := range corpus {
		scoreList(scores, current, excludeListID, &corpus[i])
	}
	return scores
}

// ScoreParallel computes the same scores as Score by splitting the corpus into
// contiguous partitions scanned by up to workers goroutines. Partial tables are
// merged in partition order, which keeps discovery order identical to the
// serial scan. Sums may differ from Score in the last floating point bits.
func ScoreParallel(ctx context.Context, current ItemSet, excludeListID string, corpus []ListSnapshot, workers int) (*Scores, error) {
	if workers <= 1 || len(corpus) < 2*workers {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return Score(current, excludeListID, corpus), nil
	}

	chunk := (len(corpus) + workers - 1) / workers
	partials := make([]*Scores, workers)

	g, ctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		start := w * chunk
		if start >= len(corpus) {
			partials[w] = NewScores()
			continue
		}
		end := min(start+chunk, len(corpus))
		w := w
		g.Go(func() error {
			part := NewScores()
			for i := start; i < end; i++ {
				if (i-start)%cancelCheckEvery == 0 {
					if err := ctx.Err(); err != nil {
						return err
					}
				}
				scoreList(part, current, excludeListID, &corpus[i])
			}
			partials[w] = part
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	merged := NewScores()
	for _, part := range partials {
		merged.Merge(part)
	}
	return merged, nil
}

func scoreList(scores *Scores, current ItemSet, excludeListID string, list *ListSnapshot) {
	if excludeListID != "" && list.ID == excludeListID {
		return
	}
	items := distinct(list.Items)
	if len(items) < MinSelection {
		return
	}

	overlap := 0
	for _, item := range items {
		if current.Has(item) {
			overlap++
		}
	}
	if overlap == 0 {
		return
	}

	contribution := 1 + float64(overlap)/float64(max(len(items), 1))
	for _, item := range items {
		if current.Has(item) {
			continue
		}
		scores.Add(item, contribution)
	}
}
