package identity

import (
	"context"
	"fmt"
	"time"

	"firebase.google.com/go/v4/auth"

	"fruitscan-backend/internal/models"
)

// FirebaseProvider implements Provider on top of the Firebase Auth admin
// client. Every call is bounded by timeout; the upstream API otherwise
// blocks for as long as the transport allows.
type FirebaseProvider struct {
	client  *auth.Client
	timeout time.Duration
}

func NewFirebaseProvider(client *auth.Client, timeout time.Duration) *FirebaseProvider {
	return &FirebaseProvider{client: client, timeout: timeout}
}

func (p *FirebaseProvider) CreateUser(ctx context.Context, params CreateParams) (*Record, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	toCreate := (&auth.UserToCreate{}).
		Email(params.Email).
		Password(params.Password).
		DisplayName(params.Name)

	rec, err := p.client.CreateUser(ctx, toCreate)
	if err != nil {
		return nil, fmt.Errorf("identity provider: create user: %w", err)
	}
	return fromUserRecord(rec), nil
}

func (p *FirebaseProvider) GetUserByEmail(ctx context.Context, email string) (*Record, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	rec, err := p.client.GetUserByEmail(ctx, email)
	if err != nil {
		if auth.IsUserNotFound(err) {
			return nil, fmt.Errorf("identity provider: %w", models.ErrNotFound)
		}
		return nil, fmt.Errorf("identity provider: get user by email: %w", err)
	}
	return fromUserRecord(rec), nil
}

func (p *FirebaseProvider) UpdatePassword(ctx context.Context, uid, password string) error {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	toUpdate := (&auth.UserToUpdate{}).Password(password)
	if _, err := p.client.UpdateUser(ctx, uid, toUpdate); err != nil {
		if auth.IsUserNotFound(err) {
			return fmt.Errorf("identity provider: %w", models.ErrNotFound)
		}
		return fmt.Errorf("identity provider: update user: %w", err)
	}
	return nil
}

func (p *FirebaseProvider) RevokeRefreshTokens(ctx context.Context, uid string) error {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	if err := p.client.RevokeRefreshTokens(ctx, uid); err != nil {
		if auth.IsUserNotFound(err) {
			return fmt.Errorf("identity provider: %w", models.ErrNotFound)
		}
		return fmt.Errorf("identity provider: revoke refresh tokens: %w", err)
	}
	return nil
}

func (p *FirebaseProvider) DeleteUser(ctx context.Context, uid string) error {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	if err := p.client.DeleteUser(ctx, uid); err != nil {
		return fmt.Errorf("identity provider: delete user: %w", err)
	}
	return nil
}

func fromUserRecord(rec *auth.UserRecord) *Record {
	return &Record{
		UID:         rec.UID,
		Email:       rec.Email,
		DisplayName: rec.DisplayName,
	}
}
