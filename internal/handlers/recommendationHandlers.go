package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"smartshop/internal/models"
	"smartshop/internal/recommender"
	"smartshop/internal/services"
	"smartshop/internal/utils"
)

type RecommendationHandler struct {
	service services.RecommendationService
}

func NewRecommendationHandler(service services.RecommendationService) *RecommendationHandler {
	return &RecommendationHandler{service: service}
}

func (h *RecommendationHandler) Recommend(w http.ResponseWriter, r *http.Request) {
	var req models.RecommendationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error().Err(err).Msg("Invalid JSON input for Recommend")
		utils.SendJSONError(w, "Invalid JSON input: "+err.Error(), http.StatusBadRequest)
		return
	}

	resp, err := h.service.Recommend(r.Context(), req)
	if err != nil {
		h.sendServiceError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, resp)
}

func (h *RecommendationHandler) RecordHistory(w http.ResponseWriter, r *http.Request) {
	var req models.HistoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error().Err(err).Msg("Invalid JSON input for RecordHistory")
		utils.SendJSONError(w, "Invalid JSON input: "+err.Error(), http.StatusBadRequest)
		return
	}

	entry, err := h.service.RecordHistory(r.Context(), req)
	if err != nil {
		h.sendServiceError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, entry)
}

func (h *RecommendationHandler) sendServiceError(w http.ResponseWriter, err error) {
	if errors.Is(err, recommender.ErrInvalidArgument) {
		utils.SendJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}
	log.Error().Err(err).Msg("Recommendation service error")
	utils.SendJSONError(w, "Failed to process request", http.StatusInternalServerError)
}
