package recommender

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoreEmptyCorpus(t *testing.T) {
	scores := Score(NewItemSet("A", "B"), "", nil)
	assert.Equal(t, 0, scores.Len())
}

func TestScoreSkipsSmallLists(t *testing.T) {
	current := NewItemSet("A", "B")
	corpus := []ListSnapshot{
		{ID: "l1", Items: []string{"A", "C"}},
		{ID: "l2", Items: []string{"A", "B", "D"}},
	}
	withSmall := append([]ListSnapshot{
		{ID: "s1", Items: []string{"A"}},
		{ID: "s2", Items: []string{"C", "C", "C"}},
		{ID: "s3"},
	}, corpus...)

	assert.Equal(t, Score(current, "", corpus).Map(), Score(current, "", withSmall).Map())
}

func TestScoreDuplicateItemsCollapse(t *testing.T) {
	scores := Score(NewItemSet("A", "B"), "", []ListSnapshot{
		{ID: "l1", Items: []string{"A", "C", "C", "A"}},
	})
	c, ok := scores.Get("C")
	require.True(t, ok)
	assert.InDelta(t, 1+1.0/2.0, c, 1e-9)
}

func TestScoreSkipsNonOverlappingLists(t *testing.T) {
	scores := Score(NewItemSet("A", "B"), "", []ListSnapshot{
		{ID: "l1", Items: []string{"C", "D", "E"}},
	})
	assert.Equal(t, 0, scores.Len())
}

func TestScoreExcludeEqualsRemoval(t *testing.T) {
	current := NewItemSet("A", "B")
	corpus := []ListSnapshot{
		{ID: "l1", Items: []string{"A", "C"}},
		{ID: "active", Items: []string{"A", "B", "C", "D"}},
		{ID: "l3", Items: []string{"B", "D", "E"}},
	}
	removed := []ListSnapshot{corpus[0], corpus[2]}

	excluded := Score(current, "active", corpus)
	assert.Equal(t, Score(current, "", removed).Map(), excluded.Map())
	assert.Equal(t, Score(current, "", removed).Items(), excluded.Items())
	assert.NotEqual(t, Score(current, "", corpus).Map(), excluded.Map())
}

func TestScoreMonotonicInCorroboratingLists(t *testing.T) {
	current := NewItemSet("A", "B")
	corpus := []ListSnapshot{
		{ID: "l1", Items: []string{"A", "C", "D"}},
		{ID: "l2", Items: []string{"B", "C"}},
	}
	before := Score(current, "", corpus).Map()

	more := append(corpus, ListSnapshot{ID: "l3", Items: []string{"A", "B", "C", "E"}})
	after := Score(current, "", more).Map()

	for item, score := range before {
		assert.GreaterOrEqual(t, after[item], score, item)
	}
	assert.Greater(t, after["C"], before["C"])
	assert.Contains(t, after, "E")
}

func TestScoreFormula(t *testing.T) {
	scores := Score(NewItemSet("A", "B", "C"), "", []ListSnapshot{
		{ID: "l1", Items: []string{"A", "B", "X", "Y"}},
		{ID: "l2", Items: []string{"C", "X"}},
	})

	x, _ := scores.Get("X")
	y, _ := scores.Get("Y")
	assert.InDelta(t, (1+2.0/4.0)+(1+1.0/2.0), x, 1e-9)
	assert.InDelta(t, 1+2.0/4.0, y, 1e-9)
	assert.Equal(t, []string{"X", "Y"}, scores.Items())
}

func TestScoreParallelSmallCorpusFallsBack(t *testing.T) {
	corpus := []ListSnapshot{{ID: "l1", Items: []string{"A", "B", "C"}}}
	scores, err := ScoreParallel(context.Background(), NewItemSet("A", "B"), "", corpus, 8)
	require.NoError(t, err)
	assert.Equal(t, Score(NewItemSet("A", "B"), "", corpus).Map(), scores.Map())
}
