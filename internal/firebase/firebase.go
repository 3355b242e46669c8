// Package firebase initializes the managed-platform clients once at startup.
// The bundle is passed explicitly to the adapters that need it; nothing in
// this codebase reaches for these handles through package globals.
package firebase

import (
	"context"
	"fmt"

	cloudstorage "cloud.google.com/go/storage"
	fb "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"firebase.google.com/go/v4/db"
	"google.golang.org/api/option"

	"fruitscan-backend/internal/config"
)

// Clients bundles the long-lived handles to the identity provider, the
// realtime database, and the storage bucket.
type Clients struct {
	Auth       *auth.Client
	Database   *db.Client
	Bucket     *cloudstorage.BucketHandle
	BucketName string
}

// NewClients builds the client bundle from a service-account credentials
// file and the project configuration.
func NewClients(ctx context.Context, cfg config.FirebaseConfig) (*Clients, error) {
	app, err := fb.NewApp(ctx, &fb.Config{
		DatabaseURL:   cfg.DatabaseURL,
		StorageBucket: cfg.StorageBucket,
	}, option.WithCredentialsFile(cfg.CredentialsFile))
	if err != nil {
		return nil, fmt.Errorf("initialize firebase app: %w", err)
	}

	authClient, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("initialize auth client: %w", err)
	}

	dbClient, err := app.Database(ctx)
	if err != nil {
		return nil, fmt.Errorf("initialize database client: %w", err)
	}

	storageClient, err := app.Storage(ctx)
	if err != nil {
		return nil, fmt.Errorf("initialize storage client: %w", err)
	}
	bucket, err := storageClient.DefaultBucket()
	if err != nil {
		return nil, fmt.Errorf("resolve storage bucket: %w", err)
	}

	return &Clients{
		Auth:       authClient,
		Database:   dbClient,
		Bucket:     bucket,
		BucketName: cfg.StorageBucket,
	}, nil
}
