package store

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
)

// MemoryStore is an in-memory Store used in tests and local development. It
// keeps the same tree semantics as the managed store: slash paths, null for
// absent subtrees, server-generated push keys.
type MemoryStore struct {
	mu      sync.RWMutex
	root    map[string]any
	pushSeq int
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{root: map[string]any{}}
}

func splitPath(path string) []string {
	var parts []string
	for _, p := range strings.Split(path, "/") {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return parts
}

// normalize round-trips v through JSON so stored values are plain
// map/slice/scalar trees, like the wire format of the real store.
func normalize(v any) (any, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var out any
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *MemoryStore) lookup(parts []string) (any, bool) {
	var node any = s.root
	for _, p := range parts {
		m, ok := node.(map[string]any)
		if !ok {
			return nil, false
		}
		node, ok = m[p]
		if !ok {
			return nil, false
		}
	}
	return node, true
}

// parent walks to the map holding the final path element, creating
// intermediate maps as needed.
func (s *MemoryStore) parent(parts []string) (map[string]any, string, error) {
	if len(parts) == 0 {
		return nil, "", fmt.Errorf("empty path")
	}
	node := s.root
	for _, p := range parts[:len(parts)-1] {
		child, ok := node[p].(map[string]any)
		if !ok {
			child = map[string]any{}
			node[p] = child
		}
		node = child
	}
	return node, parts[len(parts)-1], nil
}

func (s *MemoryStore) Get(ctx context.Context, path string, v any) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	node, ok := s.lookup(splitPath(path))
	if !ok {
		// Absent subtree reads as null; v stays untouched.
		return nil
	}
	b, err := json.Marshal(node)
	if err != nil {
		return fmt.Errorf("document store: get %s: %w", path, err)
	}
	if err := json.Unmarshal(b, v); err != nil {
		return fmt.Errorf("document store: get %s: %w", path, err)
	}
	return nil
}

func (s *MemoryStore) Set(ctx context.Context, path string, v any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	val, err := normalize(v)
	if err != nil {
		return fmt.Errorf("document store: set %s: %w", path, err)
	}
	node, key, err := s.parent(splitPath(path))
	if err != nil {
		return fmt.Errorf("document store: set %s: %w", path, err)
	}
	node[key] = val
	return nil
}

func (s *MemoryStore) Update(ctx context.Context, path string, fields map[string]any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	parts := splitPath(path)
	node, key, err := s.parent(parts)
	if err != nil {
		return fmt.Errorf("document store: update %s: %w", path, err)
	}
	child, ok := node[key].(map[string]any)
	if !ok {
		child = map[string]any{}
		node[key] = child
	}
	for k, v := range fields {
		val, err := normalize(v)
		if err != nil {
			return fmt.Errorf("document store: update %s: %w", path, err)
		}
		child[k] = val
	}
	return nil
}

func (s *MemoryStore) Delete(ctx context.Context, path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	node, key, err := s.parent(splitPath(path))
	if err != nil {
		return fmt.Errorf("document store: delete %s: %w", path, err)
	}
	delete(node, key)
	return nil
}

func (s *MemoryStore) Push(ctx context.Context, path string, v any) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	val, err := normalize(v)
	if err != nil {
		return "", fmt.Errorf("document store: push %s: %w", path, err)
	}
	node, key, err := s.parent(splitPath(path))
	if err != nil {
		return "", fmt.Errorf("document store: push %s: %w", path, err)
	}
	child, ok := node[key].(map[string]any)
	if !ok {
		child = map[string]any{}
		node[key] = child
	}
	s.pushSeq++
	pushKey := fmt.Sprintf("-K%06d", s.pushSeq)
	child[pushKey] = val
	return pushKey, nil
}
