package repositories

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"smartshop/internal/database"
	"smartshop/internal/models"
	"smartshop/internal/recommender"
	"smartshop/internal/utils"
)

// HistoryRepository stores the list snapshots that make up each user's
// purchase history.
type HistoryRepository interface {
	Create(ctx context.Context, entry *models.HistoryEntry) (*models.HistoryEntry, error)
	FindByUser(ctx context.Context, userID string) ([]models.HistoryEntry, error)
	Records(ctx context.Context, userID string) ([]recommender.HistoryRecord, error)
	EnsureIndexes(ctx context.Context) error
}

type historyRepository struct {
	db database.Service
}

func NewHistoryRepository(db database.Service) HistoryRepository {
	return &historyRepository{db: db}
}

func (r *historyRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.db.History().Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: 1}},
		Options: options.Index().SetName("user_id_created_at"),
	})
	if err != nil {
		return fmt.Errorf("failed to create history index: %w", err)
	}
	return nil
}

func (r *historyRepository) Create(ctx context.Context, entry *models.HistoryEntry) (*models.HistoryEntry, error) {
	queryType := "create"
	repository := "history"
	status := "success"
	timer := prometheus.NewTimer(prometheus.ObserverFunc(func(v float64) {
		utils.DBQueryDurationSeconds.WithLabelValues(queryType, repository, status).Observe(v)
	}))
	defer timer.ObserveDuration()

	result, err := r.db.History().InsertOne(ctx, entry)
	if err != nil {
		status = "error"
		utils.DBQueryErrorsTotal.WithLabelValues(queryType, repository).Inc()
		return nil, fmt.Errorf("failed to add history entry: %w", err)
	}
	if id, ok := result.InsertedID.(primitive.ObjectID); ok {
		entry.ID = id
	}
	return entry, nil
}

func (r *historyRepository) FindByUser(ctx context.Context, userID string) ([]models.HistoryEntry, error) {
	queryType := "findByUser"
	repository := "history"
	status := "success"
	timer := prometheus.NewTimer(prometheus.ObserverFunc(func(v float64) {
		utils.DBQueryDurationSeconds.WithLabelValues(queryType, repository, status).Observe(v)
	}))
	defer timer.ObserveDuration()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}, {Key: "_id", Value: 1}})
	cursor, err := r.db.History().Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		status = "error"
		utils.DBQueryErrorsTotal.WithLabelValues(queryType, repository).Inc()
		return nil, fmt.Errorf("failed to retrieve history: %w", err)
	}
	defer cursor.Close(ctx)

	var entries []models.HistoryEntry
	if err := cursor.All(ctx, &entries); err != nil {
		status = "error"
		utils.DBQueryErrorsTotal.WithLabelValues(queryType, repository).Inc()
		return nil, fmt.Errorf("error decoding history: %w", err)
	}
	utils.DBDocumentsScanned.WithLabelValues(repository).Observe(float64(len(entries)))
	return entries, nil
}

// Records returns the user's history in the shape the recommender blends.
func (r *historyRepository) Records(ctx context.Context, userID string) ([]recommender.HistoryRecord, error) {
	entries, err := r.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	records := make([]recommender.HistoryRecord, 0, len(entries))
	for _, e := range entries {
		records = append(records, recommender.HistoryRecord{UserID: e.UserID, Items: e.Items})
	}
	return records, nil
}
