package identity

import (
	"context"
	"fmt"
	"sync"

	"fruitscan-backend/internal/models"
)

// MemoryProvider is an in-memory Provider used in tests and local
// development. Semantics match the managed provider: uids are opaque and
// provider-assigned, lookups by email, not-found maps to models.ErrNotFound.
type MemoryProvider struct {
	mu        sync.Mutex
	seq       int
	byUID     map[string]*Record
	passwords map[string]string
	revoked   map[string]int
	deleted   []string
}

func NewMemoryProvider() *MemoryProvider {
	return &MemoryProvider{
		byUID:     map[string]*Record{},
		passwords: map[string]string{},
		revoked:   map[string]int{},
	}
}

func (p *MemoryProvider) CreateUser(ctx context.Context, params CreateParams) (*Record, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, rec := range p.byUID {
		if rec.Email == params.Email {
			return nil, fmt.Errorf("identity provider: email already exists")
		}
	}
	p.seq++
	rec := &Record{
		UID:         fmt.Sprintf("uid-%d", p.seq),
		Email:       params.Email,
		DisplayName: params.Name,
	}
	p.byUID[rec.UID] = rec
	p.passwords[rec.UID] = params.Password
	return rec, nil
}

func (p *MemoryProvider) GetUserByEmail(ctx context.Context, email string) (*Record, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, rec := range p.byUID {
		if rec.Email == email {
			out := *rec
			return &out, nil
		}
	}
	return nil, fmt.Errorf("identity provider: %w", models.ErrNotFound)
}

func (p *MemoryProvider) UpdatePassword(ctx context.Context, uid, password string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if _, ok := p.byUID[uid]; !ok {
		return fmt.Errorf("identity provider: %w", models.ErrNotFound)
	}
	p.passwords[uid] = password
	return nil
}

func (p *MemoryProvider) RevokeRefreshTokens(ctx context.Context, uid string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if _, ok := p.byUID[uid]; !ok {
		return fmt.Errorf("identity provider: %w", models.ErrNotFound)
	}
	p.revoked[uid]++
	return nil
}

func (p *MemoryProvider) DeleteUser(ctx context.Context, uid string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.byUID, uid)
	delete(p.passwords, uid)
	p.deleted = append(p.deleted, uid)
	return nil
}

// Password reports the stored credential for uid.
func (p *MemoryProvider) Password(uid string) string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.passwords[uid]
}

// RevokedCount reports how many times refresh tokens were revoked for uid.
func (p *MemoryProvider) RevokedCount(uid string) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.revoked[uid]
}

// Deleted reports the uids removed through DeleteUser.
func (p *MemoryProvider) Deleted() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.deleted...)
}
