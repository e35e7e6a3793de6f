package models

import "smartshop/internal/recommender"

type RecommendationRequest struct {
	UserID       string   `json:"user_id"`
	ListID       string   `json:"list_id,omitempty"`
	CurrentItems []string `json:"current_items"`
}

type RecommendationResponse struct {
	Recommendations recommender.Result `json:"recommendations"`
}
