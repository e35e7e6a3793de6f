package recommender

// Blend adds HistoryIncrement to a copy of base for every occurrence of an
// item in history that is not already in current. Items the user bought
// before but that never co-occurred get an entry of their own. Blending only
// raises scores; an empty history returns an unchanged copy.
func Blend(base *Scores, history []HistoryRecord, current ItemSet) *Scores {
	blended := base.Clone()
	for _, record := range history {
		for _, item := range record.Items {
			if current.Has(item) {
				continue
			}
			blended.Add(item, HistoryIncrement)
		}
	}
	return blended
}
