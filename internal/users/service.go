// Package users is the user-directory adapter. Every operation keeps two
// external systems in step: the identity provider owns the canonical user
// record, and the document store holds a mirror under users/<uid> that the
// login path verifies passwords against.
package users

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"fruitscan-backend/internal/hash"
	"fruitscan-backend/internal/identity"
	"fruitscan-backend/internal/models"
	"fruitscan-backend/internal/store"
	"fruitscan-backend/internal/validate"
)

const (
	usersPath  = "users"
	tokensPath = "tokens"
)

// Service implements the user directory operations.
type Service struct {
	provider identity.Provider
	store    store.Store
	log      *slog.Logger
}

func NewService(provider identity.Provider, st store.Store, log *slog.Logger) *Service {
	return &Service{provider: provider, store: st, log: log}
}

// RegisterParams carries the registration fields. Email is pre-validated by
// the route layer.
type RegisterParams struct {
	Name      string
	Email     string
	Password  string
	Residence string
	Phone     string
}

// Register creates the provider record and its document-store mirror. The
// two writes are not transactional; if the mirror write fails the freshly
// created provider record is deleted so the systems stay consistent.
func (s *Service) Register(ctx context.Context, params RegisterParams) (*models.UserSummary, error) {
	hashed, err := hash.Password(params.Password)
	if err != nil {
		return nil, err
	}

	rec, err := s.provider.CreateUser(ctx, identity.CreateParams{
		Name:     params.Name,
		Email:    params.Email,
		Password: hashed,
	})
	if err != nil {
		return nil, err
	}

	mirror := models.User{
		Name:         params.Name,
		Email:        params.Email,
		Residence:    params.Residence,
		Phone:        params.Phone,
		PasswordHash: hashed,
	}
	if err := s.store.Set(ctx, usersPath+"/"+rec.UID, mirror); err != nil {
		s.log.Error("mirror write failed, backing out provider record",
			"system", "document store", "uid", rec.UID, "error", err)
		if delErr := s.provider.DeleteUser(ctx, rec.UID); delErr != nil {
			// Both systems failed; the provider record is now orphaned.
			s.log.Error("compensating delete failed, records inconsistent",
				"system", "identity provider", "uid", rec.UID, "error", delErr)
		}
		return nil, err
	}

	return &models.UserSummary{
		UID:       rec.UID,
		Name:      params.Name,
		Email:     params.Email,
		Residence: params.Residence,
		Phone:     params.Phone,
	}, nil
}

// Login verifies credentials against the mirrored record. A wrong password
// is reported as models.ErrInvalidCredentials, a negative result the route
// layer maps to 401.
func (s *Service) Login(ctx context.Context, email, password string) (*models.UserSummary, error) {
	if !validate.Email(email) {
		return nil, fmt.Errorf("%w: %s", models.ErrInvalidEmail, email)
	}

	rec, err := s.provider.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	var mirror models.User
	if err := s.store.Get(ctx, usersPath+"/"+rec.UID, &mirror); err != nil {
		return nil, err
	}
	if password == "" || mirror.PasswordHash == "" {
		return nil, fmt.Errorf("%w: stored record has no password hash", models.ErrInvalidRequest)
	}

	ok, err := hash.Verify(password, mirror.PasswordHash)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, models.ErrInvalidCredentials
	}

	return &models.UserSummary{
		UID:   rec.UID,
		Name:  rec.DisplayName,
		Email: rec.Email,
	}, nil
}

// ResetPassword rehashes and writes the new credential to both systems.
// There is no compensation here: if the mirror update fails after the
// provider update succeeded, the inconsistency is logged and surfaced.
func (s *Service) ResetPassword(ctx context.Context, email, newPassword string) (*models.UserSummary, error) {
	if !validate.Email(email) {
		return nil, fmt.Errorf("%w: %s", models.ErrInvalidEmail, email)
	}

	rec, err := s.provider.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	hashed, err := hash.Password(newPassword)
	if err != nil {
		return nil, err
	}

	if err := s.provider.UpdatePassword(ctx, rec.UID, hashed); err != nil {
		return nil, err
	}
	if err := s.store.Update(ctx, usersPath+"/"+rec.UID, map[string]any{"passwordHash": hashed}); err != nil {
		s.log.Error("mirror password update failed after provider update, records inconsistent",
			"system", "document store", "uid", rec.UID, "error", err)
		return nil, err
	}

	var mirror models.User
	if err := s.store.Get(ctx, usersPath+"/"+rec.UID, &mirror); err != nil {
		return nil, err
	}

	return &models.UserSummary{
		UID:       rec.UID,
		Name:      mirror.Name,
		Email:     mirror.Email,
		Residence: mirror.Residence,
		Phone:     mirror.Phone,
	}, nil
}

// ListAll scans the user collection and returns summaries for records that
// carry the required display fields (name and email), ordered by uid.
func (s *Service) ListAll(ctx context.Context) ([]models.UserSummary, error) {
	var tree map[string]models.User
	if err := s.store.Get(ctx, usersPath, &tree); err != nil {
		return nil, err
	}

	summaries := make([]models.UserSummary, 0, len(tree))
	for uid, u := range tree {
		if u.Name == "" || u.Email == "" {
			continue
		}
		summaries = append(summaries, models.UserSummary{
			UID:       uid,
			Name:      u.Name,
			Email:     u.Email,
			Residence: u.Residence,
			Phone:     u.Phone,
		})
	}
	sort.Slice(summaries, func(i, j int) bool { return summaries[i].UID < summaries[j].UID })

	return summaries, nil
}

// GetProfile returns the mirrored record for uid, without the password hash.
func (s *Service) GetProfile(ctx context.Context, uid string) (*models.UserSummary, error) {
	var mirror models.User
	if err := s.store.Get(ctx, usersPath+"/"+uid, &mirror); err != nil {
		return nil, err
	}
	if mirror == (models.User{}) {
		return nil, fmt.Errorf("user %s: %w", uid, models.ErrNotFound)
	}

	return &models.UserSummary{
		UID:       uid,
		Name:      mirror.Name,
		Email:     mirror.Email,
		Residence: mirror.Residence,
		Phone:     mirror.Phone,
	}, nil
}

// RecordToken stores the session token issued at login under tokens/<uid>.
func (s *Service) RecordToken(ctx context.Context, uid, token string) error {
	return s.store.Set(ctx, tokensPath+"/"+uid, map[string]any{
		"token":     token,
		"createdAt": time.Now().UnixMilli(),
	})
}

// Logout revokes the provider's refresh tokens for uid and removes the
// stored token record. Token-to-uid resolution happens in the route layer;
// this method only ever receives an owning identifier.
func (s *Service) Logout(ctx context.Context, uid string) error {
	if err := s.provider.RevokeRefreshTokens(ctx, uid); err != nil {
		// A vanished user is fine to log out.
		if !errors.Is(err, models.ErrNotFound) {
			return err
		}
	}
	return s.store.Delete(ctx, tokensPath+"/"+uid)
}
