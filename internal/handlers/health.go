package handlers

import (
	"net/http"

	"fruitscan-backend/internal/dto"
	"fruitscan-backend/internal/utils"
)

// HealthHandler handles health check related requests
type HealthHandler struct{}

// NewHealthHandler creates a new HealthHandler instance
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// HealthCheck handles basic health check. There is no local storage to
// probe; all state lives in the managed platform.
func (h *HealthHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSONResponse(w, http.StatusOK, dto.HealthResponse{
		Status:  "ok",
		Service: "fruitscan-backend",
	})
}
