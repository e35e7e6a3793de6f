package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"smartshop/internal/models"
	"smartshop/internal/recommender"
)

type fakeListRepo struct {
	snapshots []recommender.ListSnapshot
	err       error
	calls     int
}

func (f *fakeListRepo) FindAll(ctx context.Context) ([]models.ShoppingList, error) {
	return nil, f.err
}

func (f *fakeListRepo) Snapshots(ctx context.Context) ([]recommender.ListSnapshot, error) {
	f.calls++
	return f.snapshots, f.err
}

type fakeHistoryRepo struct {
	records []recommender.HistoryRecord
	created []models.HistoryEntry
	err     error
	calls   int
}

func (f *fakeHistoryRepo) Create(ctx context.Context, entry *models.HistoryEntry) (*models.HistoryEntry, error) {
	if f.err != nil {
		return nil, f.err
	}
	entry.ID = primitive.NewObjectID()
	f.created = append(f.created, *entry)
	return entry, nil
}

func (f *fakeHistoryRepo) FindByUser(ctx context.Context, userID string) ([]models.HistoryEntry, error) {
	return nil, f.err
}

func (f *fakeHistoryRepo) Records(ctx context.Context, userID string) ([]recommender.HistoryRecord, error) {
	f.calls++
	return f.records, f.err
}

func (f *fakeHistoryRepo) EnsureIndexes(ctx context.Context) error { return nil }

func TestRecommend(t *testing.T) {
	lists := &fakeListRepo{snapshots: []recommender.ListSnapshot{
		{ID: "l1", Items: []string{"A", "B", "D"}},
		{ID: "active", Items: []string{"A", "B", "Q"}},
	}}
	history := &fakeHistoryRepo{records: []recommender.HistoryRecord{
		{UserID: "u1", Items: []string{"D", "E", "D"}},
	}}
	svc := NewRecommendationService(lists, history, recommender.New())

	resp, err := svc.Recommend(context.Background(), models.RecommendationRequest{
		UserID:       "u1",
		ListID:       "active",
		CurrentItems: []string{"A", "B"},
	})
	require.NoError(t, err)
	require.Len(t, resp.Recommendations, 2)
	assert.Equal(t, "D", resp.Recommendations[0].ItemID)
	assert.InDelta(t, 1+2.0/3.0+1.0, resp.Recommendations[0].Score, 1e-9)
	assert.Equal(t, "E", resp.Recommendations[1].ItemID)
}

func TestRecommendSkipsFetchForSmallSelection(t *testing.T) {
	lists := &fakeListRepo{}
	history := &fakeHistoryRepo{}
	svc := NewRecommendationService(lists, history, recommender.New())

	resp, err := svc.Recommend(context.Background(), models.RecommendationRequest{UserID: "u1", CurrentItems: []string{"A"}})
	require.NoError(t, err)
	assert.NotNil(t, resp.Recommendations)
	assert.Empty(t, resp.Recommendations)
	assert.Zero(t, lists.calls)
	assert.Zero(t, history.calls)
}

func TestRecommendInvalidRequest(t *testing.T) {
	svc := NewRecommendationService(&fakeListRepo{}, &fakeHistoryRepo{}, recommender.New())

	_, err := svc.Recommend(context.Background(), models.RecommendationRequest{CurrentItems: []string{"A", "B"}})
	assert.True(t, errors.Is(err, recommender.ErrInvalidArgument))
}

func TestRecommendStorageFailure(t *testing.T) {
	boom := errors.New("connection refused")
	svc := NewRecommendationService(&fakeListRepo{err: boom}, &fakeHistoryRepo{}, recommender.New())

	_, err := svc.Recommend(context.Background(), models.RecommendationRequest{UserID: "u1", CurrentItems: []string{"A", "B"}})
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.False(t, errors.Is(err, recommender.ErrInvalidArgument))
}

func TestRecordHistory(t *testing.T) {
	history := &fakeHistoryRepo{}
	svc := NewRecommendationService(&fakeListRepo{}, history, recommender.New())

	entry, err := svc.RecordHistory(context.Background(), models.HistoryRequest{UserID: "u1", ListID: "l1", Items: []string{"milk", "milk", "eggs"}})
	require.NoError(t, err)
	assert.False(t, entry.ID.IsZero())
	assert.False(t, entry.CreatedAt.IsZero())
	require.Len(t, history.created, 1)
	assert.Equal(t, []string{"milk", "milk", "eggs"}, history.created[0].Items)

	_, err = svc.RecordHistory(context.Background(), models.HistoryRequest{UserID: "u1"})
	assert.True(t, errors.Is(err, recommender.ErrInvalidArgument))
	_, err = svc.RecordHistory(context.Background(), models.HistoryRequest{Items: []string{"milk"}})
	assert.True(t, errors.Is(err, recommender.ErrInvalidArgument))
	_, err = svc.RecordHistory(context.Background(), models.HistoryRequest{UserID: "u1", Items: []string{""}})
	assert.True(t, errors.Is(err, recommender.ErrInvalidArgument))
}
