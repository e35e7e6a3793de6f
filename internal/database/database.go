package database

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"smartshop/internal/config"
)

const (
	listsCollection   = "lists"
	historyCollection = "list_history"
)

type Service interface {
	Health() map[string]string
	Client() *mongo.Client
	// Lists is the list service's collection of persisted shopping lists.
	Lists() *mongo.Collection
	// History is the recommender's own collection of past list snapshots.
	History() *mongo.Collection
	Close(ctx context.Context) error
}

type service struct {
	db            *mongo.Client
	listDB        string
	recommenderDB string
}

func New(cfg *config.Config) Service {
	client, err := mongo.Connect(context.Background(), options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to MongoDB")
	}
	return &service{
		db:            client,
		listDB:        cfg.ListDBName,
		recommenderDB: cfg.RecommenderDBName,
	}
}

func (s *service) Health() map[string]string {
	ctx, cancel := context.WithTimeout(context.Background(), 1*time.Second)
	defer cancel()

	err := s.db.Ping(ctx, nil)
	if err != nil {
		log.Error().Err(err).Msg("Database health check failed")
		return map[string]string{
			"message": "db down",
			"error":   err.Error(),
		}
	}

	return map[string]string{
		"message": "It's healthy",
	}
}

func (s *service) Client() *mongo.Client {
	return s.db
}

func (s *service) Lists() *mongo.Collection {
	return s.db.Database(s.listDB).Collection(listsCollection)
}

func (s *service) History() *mongo.Collection {
	return s.db.Database(s.recommenderDB).Collection(historyCollection)
}

func (s *service) Close(ctx context.Context) error {
	return s.db.Disconnect(ctx)
}
