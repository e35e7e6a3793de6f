package server

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"

	"smartshop/internal/config"
	"smartshop/internal/database"
	"smartshop/internal/middlewares"
	"smartshop/internal/recommender"
	"smartshop/internal/repositories"
	"smartshop/internal/services"
)

type Server struct {
	cfg                   *config.Config
	httpServer            *http.Server
	db                    database.Service
	recommendationService services.RecommendationService

	prom    *middlewares.PrometheusMiddleware
	limiter *middlewares.RateLimiter
	stats   *middlewares.StatsReporter

	stopCleanup context.CancelFunc
}

func NewServer(cfg *config.Config) *Server {
	db := database.New(cfg)

	listRepo := repositories.NewListRepository(db)
	historyRepo := repositories.NewHistoryRepository(db)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := historyRepo.EnsureIndexes(ctx); err != nil {
		log.Warn().Err(err).Msg("Could not ensure history indexes, continuing without them")
	}

	engine := recommender.New(recommender.WithScanWorkers(cfg.ScanWorkers))

	s := &Server{
		cfg:                   cfg,
		db:                    db,
		recommendationService: services.NewRecommendationService(listRepo, historyRepo, engine),
		prom:                  middlewares.NewPrometheusMiddleware(prometheus.DefaultRegisterer),
		limiter:               middlewares.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst),
		stats:                 middlewares.NewStatsReporter(config.ServiceName, cfg.StatsServiceURL),
	}

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.RegisterRoutes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	return s
}

func (s *Server) Start() error {
	cleanupCtx, cancel := context.WithCancel(context.Background())
	s.stopCleanup = cancel
	go s.limiter.CleanupVisitors(cleanupCtx)

	log.Info().Int("port", s.cfg.Port).Int("scan_workers", s.cfg.ScanWorkers).Msg("Starting server")
	return s.httpServer.ListenAndServe()
}

func (s *Server) GracefulShutdown(done chan bool) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	log.Info().Msg("Shutting down gracefully, press Ctrl+C again to force")
	stop()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.httpServer.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown with error")
	}
	if s.stopCleanup != nil {
		s.stopCleanup()
	}
	if err := s.db.Close(ctx); err != nil {
		log.Error().Err(err).Msg("Failed to disconnect from MongoDB")
	}

	log.Info().Msg("Server exiting")
	done <- true
}
