package handlers

import (
	"net/http"

	"smartshop/internal/config"
	"smartshop/internal/database"
	"smartshop/internal/utils"
)

type CommonHandler struct {
	db database.Service
}

func NewCommonHandler(db database.Service) *CommonHandler {
	return &CommonHandler{db: db}
}

func (h *CommonHandler) HealthHandler(w http.ResponseWriter, r *http.Request) {
	resp := map[string]interface{}{
		"service": config.ServiceName,
		"status":  "ok",
		"db":      h.db.Health(),
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}
