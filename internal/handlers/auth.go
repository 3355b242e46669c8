package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"fruitscan-backend/internal/config"
	"fruitscan-backend/internal/dto"
	"fruitscan-backend/internal/middleware"
	"fruitscan-backend/internal/models"
	"fruitscan-backend/internal/users"
	"fruitscan-backend/internal/utils"
	"fruitscan-backend/internal/validate"
)

// AuthHandler handles authentication-related HTTP requests
type AuthHandler struct {
	users  *users.Service
	jwtCfg *config.JWTConfig
	log    *slog.Logger
}

// NewAuthHandler creates a new AuthHandler instance
func NewAuthHandler(users *users.Service, jwtCfg *config.JWTConfig, log *slog.Logger) *AuthHandler {
	return &AuthHandler{users: users, jwtCfg: jwtCfg, log: log}
}

// Register handles user registration
// @Summary Register a new user
// @Description Create a new user account with name, email, and password
// @Tags authentication
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "User registration data"
// @Success 200 {object} dto.RegisterResponse "Registration successful"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Name == "" || req.Email == "" || req.Password == "" {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Name, email, and password are required")
		return
	}
	if !validate.Email(req.Email) {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid email format")
		return
	}

	summary, err := h.users.Register(r.Context(), users.RegisterParams{
		Name:      req.Name,
		Email:     req.Email,
		Password:  req.Password,
		Residence: req.Residence,
		Phone:     req.Phone,
	})
	if err != nil {
		writeServiceError(w, h.log, "registration failed", "Registration failed", err)
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.RegisterResponse{
		Message: "Registration successful",
		Data:    *summary,
	})
}

// Login handles user login
// @Summary Login user
// @Description Authenticate user with email and password
// @Tags authentication
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.LoginResponse "Login successful"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Invalid password"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	summary, err := h.users.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeServiceError(w, h.log, "login failed", "Login failed", err)
		return
	}

	token, err := middleware.GenerateToken(summary.UID, summary.Email, h.jwtCfg)
	if err != nil {
		h.log.Error("token generation failed", "error", err)
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Login failed")
		return
	}
	if err := h.users.RecordToken(r.Context(), summary.UID, token); err != nil {
		h.log.Error("token record write failed", "system", "document store", "error", err)
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Login failed")
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.LoginResponse{
		Message: "Login successful",
		Data: models.Session{
			UID:   summary.UID,
			Name:  summary.Name,
			Email: summary.Email,
			Token: token,
		},
	})
}

// ResetPassword handles password reset
// @Summary Reset password
// @Description Replace the stored password for the account with the given email
// @Tags authentication
// @Accept json
// @Produce json
// @Param request body dto.ResetPasswordRequest true "Email and new password"
// @Success 200 {object} dto.ResetPasswordResponse "Password reset successful"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /reset-password [post]
func (h *AuthHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req dto.ResetPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.NewPassword == "" {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "New password is required")
		return
	}

	summary, err := h.users.ResetPassword(r.Context(), req.Email, req.NewPassword)
	if err != nil {
		writeServiceError(w, h.log, "password reset failed", "Password reset failed", err)
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.ResetPasswordResponse{
		Message: "Password reset successful",
		Data:    *summary,
	})
}

// Logout handles user logout
// @Summary Logout user
// @Description Revoke the session's refresh tokens and remove the stored token record
// @Tags authentication
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.MessageResponse "Logout successful"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /logout [post]
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	// AuthMiddleware already resolved the bearer token to its owning user.
	uid, ok := middleware.UIDFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	if err := h.users.Logout(r.Context(), uid); err != nil {
		writeServiceError(w, h.log, "logout failed", "Logout failed", err)
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.MessageResponse{Message: "Logout successful"})
}
