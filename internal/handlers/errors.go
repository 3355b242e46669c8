package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"fruitscan-backend/internal/models"
	"fruitscan-backend/internal/utils"
)

// writeServiceError maps the error taxonomy to status codes: validation
// failures to 400, negative auth results to 401, missing records to 404.
// Everything else collapses to a generic 500; the caller gets genericMsg
// and the full detail goes to the server log only.
func writeServiceError(w http.ResponseWriter, log *slog.Logger, op, genericMsg string, err error) {
	switch {
	case errors.Is(err, models.ErrInvalidEmail):
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid email format")
	case errors.Is(err, models.ErrInvalidRequest):
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid request")
	case errors.Is(err, models.ErrInvalidCredentials):
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Invalid password")
	case errors.Is(err, models.ErrUnauthorized):
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized")
	case errors.Is(err, models.ErrNotFound):
		utils.WriteErrorResponse(w, http.StatusNotFound, "User not found")
	default:
		log.Error(op, "error", err)
		utils.WriteErrorResponse(w, http.StatusInternalServerError, genericMsg)
	}
}
