package server

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"smartshop/internal/handlers"
	"smartshop/internal/middlewares"
)

func (s *Server) RegisterRoutes() http.Handler {
	r := mux.NewRouter()

	r.Use(s.prom.Instrument)
	r.Use(s.stats.Middleware)
	r.Use(middlewares.Cors(s.cfg.AllowedOrigins))

	ch := handlers.NewCommonHandler(s.db)
	r.HandleFunc("/health", ch.HealthHandler).Methods("GET")
	r.Handle("/metrics", promhttp.Handler()).Methods("GET")

	s.registerRecommendationRoutes(r)

	return r
}

func (s *Server) registerRecommendationRoutes(r *mux.Router) {
	rh := handlers.NewRecommendationHandler(s.recommendationService)

	limited := r.NewRoute().Subrouter()
	limited.Use(s.limiter.Middleware)
	limited.HandleFunc("/recommendations", rh.Recommend).Methods("POST", "OPTIONS")
	limited.HandleFunc("/history", rh.RecordHistory).Methods("POST", "OPTIONS")
}
