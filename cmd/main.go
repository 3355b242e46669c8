// @title Fruit Scan Backend API
// @version 1.0
// @description Backend API for fruit image upload, scanning, and user management

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"

	"github.com/rs/cors"

	_ "fruitscan-backend/docs" // swagger registration
	"fruitscan-backend/internal/blob"
	"fruitscan-backend/internal/config"
	"fruitscan-backend/internal/firebase"
	"fruitscan-backend/internal/handlers"
	"fruitscan-backend/internal/identity"
	"fruitscan-backend/internal/media"
	"fruitscan-backend/internal/routes"
	"fruitscan-backend/internal/scanner"
	"fruitscan-backend/internal/store"
	"fruitscan-backend/internal/users"
)

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(log)

	cfg, err := config.Load()
	if err != nil {
		log.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Long-lived platform handles, initialized once and passed down
	// explicitly.
	clients, err := firebase.NewClients(context.Background(), cfg.Firebase)
	if err != nil {
		log.Error("failed to initialize firebase clients", "error", err)
		os.Exit(1)
	}
	log.Info("firebase clients initialized", "bucket", clients.BucketName)

	provider := identity.NewFirebaseProvider(clients.Auth, cfg.Firebase.CallTimeout)
	docStore := store.NewFirebaseStore(clients.Database, cfg.Firebase.CallTimeout)
	blobStore := blob.NewGCSStore(clients.Bucket, clients.BucketName, cfg.Firebase.CallTimeout)
	scanClient := scanner.NewClient(cfg.Scanner.Endpoint, cfg.Scanner.Timeout)

	userService := users.NewService(provider, docStore, log)
	mediaService := media.NewService(blobStore, scanClient, docStore, "", log)

	authHandler := handlers.NewAuthHandler(userService, &cfg.JWT, log)
	usersHandler := handlers.NewUsersHandler(userService, log)
	scanHandler := handlers.NewScanHandler(mediaService, log)
	healthHandler := handlers.NewHealthHandler()

	mux := http.NewServeMux()
	routes.Setup(mux, authHandler, usersHandler, scanHandler, healthHandler, &cfg.JWT)

	// CORS wraps the whole mux
	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   cfg.CORS.AllowedMethods,
		AllowedHeaders:   cfg.CORS.AllowedHeaders,
		AllowCredentials: cfg.CORS.AllowCredentials,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           c.Handler(mux),
		ReadHeaderTimeout: cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	go func() {
		log.Info("HTTP server listening", "port", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("ListenAndServe failed", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for SIGINT, then drain in-flight requests
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit
	log.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server shutdown error", "error", err)
	}
	log.Info("server stopped")
}
