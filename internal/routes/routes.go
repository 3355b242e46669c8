package routes

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"fruitscan-backend/internal/config"
	"fruitscan-backend/internal/handlers"
	"fruitscan-backend/internal/middleware"
)

// Setup configures all application routes on the given mux
func Setup(
	mux *http.ServeMux,
	authHandler *handlers.AuthHandler,
	usersHandler *handlers.UsersHandler,
	scanHandler *handlers.ScanHandler,
	healthHandler *handlers.HealthHandler,
	jwtCfg *config.JWTConfig,
) {
	// Health check route
	mux.HandleFunc("GET /healthz", healthHandler.HealthCheck)

	// Authentication routes
	mux.HandleFunc("POST /register", authHandler.Register)
	mux.HandleFunc("POST /login", authHandler.Login)
	mux.HandleFunc("POST /reset-password", authHandler.ResetPassword)
	mux.HandleFunc("POST /logout", middleware.AuthMiddleware(authHandler.Logout, jwtCfg))

	// User routes
	mux.HandleFunc("GET /users", usersHandler.List)
	mux.HandleFunc("GET /profile/{userId}", usersHandler.Profile)

	// Scan routes
	mux.HandleFunc("POST /upload", scanHandler.Upload)
	mux.HandleFunc("POST /capture", scanHandler.Capture)
	mux.HandleFunc("GET /history", scanHandler.History)

	// API documentation
	mux.Handle("/swagger/", httpSwagger.WrapHandler)
}
