package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_SetGet(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	type rec struct {
		Name  string `json:"name"`
		Email string `json:"email"`
	}

	require.NoError(t, s.Set(ctx, "users/u1", rec{Name: "Ana", Email: "a@b.com"}))

	var got rec
	require.NoError(t, s.Get(ctx, "users/u1", &got))
	assert.Equal(t, rec{Name: "Ana", Email: "a@b.com"}, got)

	// subtree read
	var tree map[string]rec
	require.NoError(t, s.Get(ctx, "users", &tree))
	assert.Len(t, tree, 1)
}

func TestMemoryStore_AbsentPathReadsAsNull(t *testing.T) {
	s := NewMemoryStore()

	var got map[string]any
	require.NoError(t, s.Get(context.Background(), "history", &got))
	assert.Nil(t, got)
}

func TestMemoryStore_Update(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "users/u1", map[string]any{"name": "Ana", "passwordHash": "old"}))
	require.NoError(t, s.Update(ctx, "users/u1", map[string]any{"passwordHash": "new"}))

	var got map[string]any
	require.NoError(t, s.Get(ctx, "users/u1", &got))
	assert.Equal(t, "new", got["passwordHash"])
	assert.Equal(t, "Ana", got["name"])
}

func TestMemoryStore_Delete(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "tokens/u1", map[string]any{"token": "x"}))
	require.NoError(t, s.Delete(ctx, "tokens/u1"))

	var got map[string]any
	require.NoError(t, s.Get(ctx, "tokens/u1", &got))
	assert.Nil(t, got)
}

func TestMemoryStore_PushGeneratesDistinctKeys(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	k1, err := s.Push(ctx, "scans", map[string]any{"classification": "ripe"})
	require.NoError(t, err)
	k2, err := s.Push(ctx, "scans", map[string]any{"classification": "rotten"})
	require.NoError(t, err)
	assert.NotEqual(t, k1, k2)

	var tree map[string]map[string]any
	require.NoError(t, s.Get(ctx, "scans", &tree))
	assert.Len(t, tree, 2)
	assert.Equal(t, "ripe", tree[k1]["classification"])
}
