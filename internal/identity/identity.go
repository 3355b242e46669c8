// Package identity adapts the managed identity provider. User records are
// provider-owned; this service only creates, looks up, updates, and revokes
// them through the documented API.
package identity

import "context"

// Record is the provider-side view of a user.
type Record struct {
	UID         string
	Email       string
	DisplayName string
}

// CreateParams carries the attributes for a new provider record. Password
// is the already-hashed credential; the plaintext never reaches this layer.
type CreateParams struct {
	Name     string
	Email    string
	Password string
}

// Provider is the identity-provider contract. Implementations map the
// provider's not-found condition to models.ErrNotFound.
type Provider interface {
	CreateUser(ctx context.Context, params CreateParams) (*Record, error)
	GetUserByEmail(ctx context.Context, email string) (*Record, error)
	UpdatePassword(ctx context.Context, uid, password string) error
	RevokeRefreshTokens(ctx context.Context, uid string) error
	// DeleteUser backs out a freshly created record when the mirrored
	// document-store write fails.
	DeleteUser(ctx context.Context, uid string) error
}
