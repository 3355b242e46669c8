package store

import (
	"context"
	"fmt"
	"time"

	"firebase.google.com/go/v4/db"
)

// FirebaseStore implements Store on top of the Realtime Database client.
type FirebaseStore struct {
	client  *db.Client
	timeout time.Duration
}

func NewFirebaseStore(client *db.Client, timeout time.Duration) *FirebaseStore {
	return &FirebaseStore{client: client, timeout: timeout}
}

func (s *FirebaseStore) Get(ctx context.Context, path string, v any) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if err := s.client.NewRef(path).Get(ctx, v); err != nil {
		return fmt.Errorf("document store: get %s: %w", path, err)
	}
	return nil
}

func (s *FirebaseStore) Set(ctx context.Context, path string, v any) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if err := s.client.NewRef(path).Set(ctx, v); err != nil {
		return fmt.Errorf("document store: set %s: %w", path, err)
	}
	return nil
}

func (s *FirebaseStore) Update(ctx context.Context, path string, fields map[string]any) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if err := s.client.NewRef(path).Update(ctx, fields); err != nil {
		return fmt.Errorf("document store: update %s: %w", path, err)
	}
	return nil
}

func (s *FirebaseStore) Delete(ctx context.Context, path string) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if err := s.client.NewRef(path).Delete(ctx); err != nil {
		return fmt.Errorf("document store: delete %s: %w", path, err)
	}
	return nil
}

func (s *FirebaseStore) Push(ctx context.Context, path string, v any) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	ref, err := s.client.NewRef(path).Push(ctx, v)
	if err != nil {
		return "", fmt.Errorf("document store: push %s: %w", path, err)
	}
	return ref.Key, nil
}
