package models

import "errors"

var (
	// common errors
	ErrNotFound       = errors.New("not found")
	ErrInvalidRequest = errors.New("invalid request")

	// auth-specific errors
	ErrInvalidEmail = errors.New("invalid email format")
	ErrUnauthorized = errors.New("unauthorized")

	// ErrInvalidCredentials is a negative verification result, not an
	// external failure. The route layer reports it as 401.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
