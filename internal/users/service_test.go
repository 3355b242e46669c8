package users

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fruitscan-backend/internal/hash"
	"fruitscan-backend/internal/identity"
	"fruitscan-backend/internal/models"
	"fruitscan-backend/internal/store"
)

// failingStore makes Set fail while delegating everything else.
type failingStore struct {
	store.Store
	setErr error
}

func (f *failingStore) Set(ctx context.Context, path string, v any) error {
	if f.setErr != nil {
		return f.setErr
	}
	return f.Store.Set(ctx, path, v)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestService(t *testing.T) (*Service, *identity.MemoryProvider, *store.MemoryStore) {
	t.Helper()
	provider := identity.NewMemoryProvider()
	st := store.NewMemoryStore()
	return NewService(provider, st, discardLogger()), provider, st
}

func registerTestUser(t *testing.T, svc *Service) *models.UserSummary {
	t.Helper()
	summary, err := svc.Register(context.Background(), RegisterParams{
		Name:      "User One",
		Email:     "u1@test.com",
		Password:  "secret123",
		Residence: "Bandung",
		Phone:     "0812000111",
	})
	require.NoError(t, err)
	return summary
}

func TestService_Register(t *testing.T) {
	svc, provider, st := newTestService(t)
	ctx := context.Background()

	summary := registerTestUser(t, svc)
	assert.Equal(t, "User One", summary.Name)
	assert.Equal(t, "u1@test.com", summary.Email)
	assert.NotEmpty(t, summary.UID)

	// provider record exists
	rec, err := provider.GetUserByEmail(ctx, "u1@test.com")
	require.NoError(t, err)
	assert.Equal(t, summary.UID, rec.UID)

	// mirror carries a hash that verifies the original password only
	var mirror models.User
	require.NoError(t, st.Get(ctx, "users/"+summary.UID, &mirror))
	ok, err := hash.Verify("secret123", mirror.PasswordHash)
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = hash.Verify("wrong", mirror.PasswordHash)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestService_Register_MirrorFailureBacksOutProviderRecord(t *testing.T) {
	provider := identity.NewMemoryProvider()
	st := &failingStore{Store: store.NewMemoryStore(), setErr: errors.New("store down")}
	svc := NewService(provider, st, discardLogger())

	_, err := svc.Register(context.Background(), RegisterParams{
		Name:     "User One",
		Email:    "u1@test.com",
		Password: "secret123",
	})
	require.Error(t, err)

	// the provider-side record was compensated away
	assert.Len(t, provider.Deleted(), 1)
	_, err = provider.GetUserByEmail(context.Background(), "u1@test.com")
	assert.True(t, errors.Is(err, models.ErrNotFound))
}

func TestService_Login(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()
	registered := registerTestUser(t, svc)

	summary, err := svc.Login(ctx, "u1@test.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, registered.UID, summary.UID)
	assert.Equal(t, "User One", summary.Name)
	assert.Equal(t, "u1@test.com", summary.Email)
}

func TestService_Login_WrongPassword(t *testing.T) {
	svc, _, _ := newTestService(t)
	registerTestUser(t, svc)

	_, err := svc.Login(context.Background(), "u1@test.com", "wrong")
	assert.True(t, errors.Is(err, models.ErrInvalidCredentials))
}

func TestService_Login_UnknownEmail(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.Login(context.Background(), "nobody@test.com", "secret123")
	assert.True(t, errors.Is(err, models.ErrNotFound))
}

func TestService_Login_MalformedEmail(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.Login(context.Background(), "not-an-email", "secret123")
	assert.True(t, errors.Is(err, models.ErrInvalidEmail))
}

func TestService_Login_MirrorWithoutHash(t *testing.T) {
	svc, _, st := newTestService(t)
	ctx := context.Background()
	registered := registerTestUser(t, svc)

	require.NoError(t, st.Set(ctx, "users/"+registered.UID, models.User{
		Name:  "User One",
		Email: "u1@test.com",
	}))

	_, err := svc.Login(ctx, "u1@test.com", "secret123")
	assert.True(t, errors.Is(err, models.ErrInvalidRequest))
}

func TestService_ResetPassword(t *testing.T) {
	svc, provider, st := newTestService(t)
	ctx := context.Background()
	registered := registerTestUser(t, svc)

	summary, err := svc.ResetPassword(ctx, "u1@test.com", "brandnew456")
	require.NoError(t, err)
	assert.Equal(t, registered.UID, summary.UID)

	var mirror models.User
	require.NoError(t, st.Get(ctx, "users/"+registered.UID, &mirror))

	ok, err := hash.Verify("secret123", mirror.PasswordHash)
	require.NoError(t, err)
	assert.False(t, ok, "old password must no longer verify")
	ok, err = hash.Verify("brandnew456", mirror.PasswordHash)
	require.NoError(t, err)
	assert.True(t, ok, "new password must verify")

	// provider-side credential was updated in the same pass
	assert.Equal(t, mirror.PasswordHash, provider.Password(registered.UID))
}

func TestService_ResetPassword_UnknownEmail(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.ResetPassword(context.Background(), "nobody@test.com", "x12345")
	assert.True(t, errors.Is(err, models.ErrNotFound))
}

func TestService_ListAll_FiltersIncompleteRecords(t *testing.T) {
	svc, _, st := newTestService(t)
	ctx := context.Background()
	registerTestUser(t, svc)

	// record missing display fields must be filtered out
	require.NoError(t, st.Set(ctx, "users/uid-broken", models.User{Phone: "0800"}))

	list, err := svc.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "u1@test.com", list[0].Email)
}

func TestService_ListAll_Empty(t *testing.T) {
	svc, _, _ := newTestService(t)

	list, err := svc.ListAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestService_GetProfile(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()
	registered := registerTestUser(t, svc)

	profile, err := svc.GetProfile(ctx, registered.UID)
	require.NoError(t, err)
	assert.Equal(t, "User One", profile.Name)
	assert.Equal(t, "Bandung", profile.Residence)

	_, err = svc.GetProfile(ctx, "no-such-uid")
	assert.True(t, errors.Is(err, models.ErrNotFound))
}

func TestService_LogoutRevokesAndRemovesToken(t *testing.T) {
	svc, provider, st := newTestService(t)
	ctx := context.Background()
	registered := registerTestUser(t, svc)

	require.NoError(t, svc.RecordToken(ctx, registered.UID, "session-token"))

	var tokenRec map[string]any
	require.NoError(t, st.Get(ctx, "tokens/"+registered.UID, &tokenRec))
	assert.Equal(t, "session-token", tokenRec["token"])

	require.NoError(t, svc.Logout(ctx, registered.UID))
	assert.Equal(t, 1, provider.RevokedCount(registered.UID))

	tokenRec = nil
	require.NoError(t, st.Get(ctx, "tokens/"+registered.UID, &tokenRec))
	assert.Nil(t, tokenRec)
}
