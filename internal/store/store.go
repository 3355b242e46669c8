// Package store adapts the managed tree-structured document store. Values
// live under slash-separated paths ("users/<uid>", "history"); the store
// serializes conflicting writes per key, so no locking happens here.
package store

import "context"

// Store is the document-store contract.
type Store interface {
	// Get unmarshals the subtree at path into v. An absent subtree leaves
	// v untouched (the upstream reports null, not an error).
	Get(ctx context.Context, path string, v any) error

	// Set replaces the subtree at path.
	Set(ctx context.Context, path string, v any) error

	// Update merges fields into the subtree at path.
	Update(ctx context.Context, path string, fields map[string]any) error

	// Delete removes the subtree at path.
	Delete(ctx context.Context, path string) error

	// Push appends v under a server-generated child key of the collection
	// at path and returns that key.
	Push(ctx context.Context, path string, v any) (string, error)
}
