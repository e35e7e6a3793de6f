package repositories

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"smartshop/internal/database"
	"smartshop/internal/models"
	"smartshop/internal/recommender"
	"smartshop/internal/utils"
)

// ListRepository reads the shopping lists persisted by the list service.
type ListRepository interface {
	FindAll(ctx context.Context) ([]models.ShoppingList, error)
	Snapshots(ctx context.Context) ([]recommender.ListSnapshot, error)
}

type listRepository struct {
	db database.Service
}

func NewListRepository(db database.Service) ListRepository {
	return &listRepository{db: db}
}

func (r *listRepository) FindAll(ctx context.Context) ([]models.ShoppingList, error) {
	queryType := "findAll"
	repository := "list"
	status := "success"
	timer := prometheus.NewTimer(prometheus.ObserverFunc(func(v float64) {
		utils.DBQueryDurationSeconds.WithLabelValues(queryType, repository, status).Observe(v)
	}))
	defer timer.ObserveDuration()

	opts := options.Find().
		SetProjection(bson.M{"_id": 1, "items.item_id": 1}).
		SetSort(bson.D{{Key: "_id", Value: 1}})

	cursor, err := r.db.Lists().Find(ctx, bson.M{}, opts)
	if err != nil {
		status = "error"
		utils.DBQueryErrorsTotal.WithLabelValues(queryType, repository).Inc()
		return nil, fmt.Errorf("failed to retrieve lists: %w", err)
	}
	defer cursor.Close(ctx)

	var lists []models.ShoppingList
	if err := cursor.All(ctx, &lists); err != nil {
		status = "error"
		utils.DBQueryErrorsTotal.WithLabelValues(queryType, repository).Inc()
		return nil, fmt.Errorf("error decoding lists: %w", err)
	}
	utils.DBDocumentsScanned.WithLabelValues(repository).Observe(float64(len(lists)))
	return lists, nil
}

// Snapshots returns every list reduced to its id and item ids.
func (r *listRepository) Snapshots(ctx context.Context) ([]recommender.ListSnapshot, error) {
	lists, err := r.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	snapshots := make([]recommender.ListSnapshot, 0, len(lists))
	for _, l := range lists {
		snapshots = append(snapshots, recommender.ListSnapshot{
			ID:    l.IDString(),
			Items: l.ItemIDs(),
		})
	}
	return snapshots, nil
}
