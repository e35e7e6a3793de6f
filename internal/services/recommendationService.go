package services

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"smartshop/internal/metrics"
	"smartshop/internal/models"
	"smartshop/internal/recommender"
	"smartshop/internal/repositories"
)

// RecommendationService answers recommendation requests and records the
// purchase history they are personalized with.
type RecommendationService interface {
	Recommend(ctx context.Context, req models.RecommendationRequest) (*models.RecommendationResponse, error)
	RecordHistory(ctx context.Context, req models.HistoryRequest) (*models.HistoryEntry, error)
}

type recommendationServiceImpl struct {
	listRepo    repositories.ListRepository
	historyRepo repositories.HistoryRepository
	engine      *recommender.Engine
}

func NewRecommendationService(listRepo repositories.ListRepository, historyRepo repositories.HistoryRepository, engine *recommender.Engine) RecommendationService {
	return &recommendationServiceImpl{
		listRepo:    listRepo,
		historyRepo: historyRepo,
		engine:      engine,
	}
}

func (s *recommendationServiceImpl) Recommend(ctx context.Context, req models.RecommendationRequest) (*models.RecommendationResponse, error) {
	log.Debug().Str("user_id", req.UserID).Str("list_id", req.ListID).Int("current_items", len(req.CurrentItems)).Msg("Attempting to build recommendations")

	sel := recommender.Selection{
		UserID: req.UserID,
		ListID: req.ListID,
		Items:  req.CurrentItems,
	}
	if err := recommender.Validate(sel); err != nil {
		log.Warn().Err(err).Str("user_id", req.UserID).Msg("Rejected recommendation request")
		return nil, err
	}

	if !recommender.HasSignal(sel.Items) {
		metrics.RecommendationsServedTotal.WithLabelValues("insufficient_selection").Inc()
		metrics.RecommendationCandidates.Observe(0)
		log.Debug().Str("user_id", req.UserID).Msg("Selection too small for co-occurrence, returning no recommendations")
		return &models.RecommendationResponse{Recommendations: recommender.Result{}}, nil
	}

	var (
		corpus  []recommender.ListSnapshot
		history []recommender.HistoryRecord
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		corpus, err = s.listRepo.Snapshots(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		history, err = s.historyRepo.Records(gctx, req.UserID)
		return err
	})
	if err := g.Wait(); err != nil {
		log.Error().Err(err).Str("user_id", req.UserID).Msg("Failed to load recommendation inputs")
		return nil, fmt.Errorf("failed to load recommendation inputs: %w", err)
	}
	metrics.CorpusListsTotal.Set(float64(len(corpus)))

	timer := prometheus.NewTimer(metrics.RecommendationDurationSeconds)
	result, err := s.engine.Recommend(ctx, sel, corpus, history)
	timer.ObserveDuration()
	if err != nil {
		log.Error().Err(err).Str("user_id", req.UserID).Msg("Recommendation engine failed")
		return nil, err
	}

	outcome := "ranked"
	if len(result) == 0 {
		outcome = "empty"
	}
	metrics.RecommendationsServedTotal.WithLabelValues(outcome).Inc()
	metrics.RecommendationCandidates.Observe(float64(len(result)))

	log.Info().
		Str("user_id", req.UserID).
		Int("corpus_lists", len(corpus)).
		Int("history_records", len(history)).
		Int("count", len(result)).
		Msg("Recommendations built successfully")
	return &models.RecommendationResponse{Recommendations: result}, nil
}

func (s *recommendationServiceImpl) RecordHistory(ctx context.Context, req models.HistoryRequest) (*models.HistoryEntry, error) {
	log.Debug().Str("user_id", req.UserID).Int("items", len(req.Items)).Msg("Attempting to record history")

	if req.UserID == "" {
		return nil, fmt.Errorf("%w: user id is required", recommender.ErrInvalidArgument)
	}
	if len(req.Items) == 0 {
		return nil, fmt.Errorf("%w: at least one item is required", recommender.ErrInvalidArgument)
	}
	for i, item := range req.Items {
		if item == "" {
			return nil, fmt.Errorf("%w: item id at position %d is empty", recommender.ErrInvalidArgument, i)
		}
	}

	entry := &models.HistoryEntry{
		UserID:    req.UserID,
		ListID:    req.ListID,
		Items:     req.Items,
		CreatedAt: time.Now().UTC(),
	}
	created, err := s.historyRepo.Create(ctx, entry)
	if err != nil {
		log.Error().Err(err).Str("user_id", req.UserID).Msg("Failed to record history")
		return nil, err
	}

	metrics.HistoryRecordedTotal.Inc()
	log.Info().Str("user_id", req.UserID).Str("history_id", created.ID.Hex()).Int("items", len(created.Items)).Msg("History recorded successfully")
	return created, nil
}
