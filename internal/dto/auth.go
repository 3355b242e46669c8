package dto

import "fruitscan-backend/internal/models"

// RegisterRequest represents the request payload for user registration
type RegisterRequest struct {
	Name      string `json:"name" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=6"`
	Residence string `json:"residence,omitempty"`
	Phone     string `json:"phone,omitempty"`
}

// RegisterResponse represents the response after successful registration.
// The payload echoes the supplied profile fields; the password never
// appears here in any form.
type RegisterResponse struct {
	Message string             `json:"message"`
	Data    models.UserSummary `json:"data"`
}

// LoginRequest represents the request payload for user login
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse represents the response after successful authentication
type LoginResponse struct {
	Message string         `json:"message"`
	Data    models.Session `json:"data"`
}

// ResetPasswordRequest represents the request payload for a password reset
type ResetPasswordRequest struct {
	Email       string `json:"email" validate:"required,email"`
	NewPassword string `json:"newPassword" validate:"required,min=6"`
}

// ResetPasswordResponse represents the response after a successful reset
type ResetPasswordResponse struct {
	Message string             `json:"message"`
	Data    models.UserSummary `json:"data"`
}
