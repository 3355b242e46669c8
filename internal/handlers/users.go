package handlers

import (
	"log/slog"
	"net/http"

	"fruitscan-backend/internal/users"
	"fruitscan-backend/internal/utils"
)

// UsersHandler handles user listing and profile lookups
type UsersHandler struct {
	users *users.Service
	log   *slog.Logger
}

// NewUsersHandler creates a new UsersHandler instance
func NewUsersHandler(users *users.Service, log *slog.Logger) *UsersHandler {
	return &UsersHandler{users: users, log: log}
}

// List returns all registered users
// @Summary List users
// @Description List all users with complete display fields
// @Tags users
// @Produce json
// @Success 200 {array} models.UserSummary "Users retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /users [get]
func (h *UsersHandler) List(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.users.ListAll(r.Context())
	if err != nil {
		writeServiceError(w, h.log, "user listing failed", "Failed to get users", err)
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, summaries)
}

// Profile returns one user's profile
// @Summary Get user profile
// @Description Get the profile for the given user identifier
// @Tags users
// @Produce json
// @Param userId path string true "User identifier"
// @Success 200 {object} models.UserSummary "Profile retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /profile/{userId} [get]
func (h *UsersHandler) Profile(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("userId")

	profile, err := h.users.GetProfile(r.Context(), userID)
	if err != nil {
		writeServiceError(w, h.log, "profile lookup failed", "Failed to get user profile", err)
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, profile)
}
