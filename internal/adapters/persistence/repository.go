// Package persistence provides the generic JSON repository over the key-value
// port. Every tracker persists its whole record list through one of these
// instead of reimplementing load/save boilerplate.
package persistence

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/example/lifexp/internal/ports/secondary"
)

// Repository serializes one value of type T as a JSON blob under one key.
//
// Load treats a missing or corrupt blob as absent and returns the zero value;
// only storage-level failures surface as errors. Save is write-through with no
// batching. This matches the best-effort policy: the app never fails on bad
// data, preferring degraded-but-functional behavior.
type Repository[T any] struct {
	kv  secondary.KeyValueStore
	key string
}

// NewRepository creates a repository for the given storage key.
func NewRepository[T any](kv secondary.KeyValueStore, key string) *Repository[T] {
	return &Repository[T]{kv: kv, key: key}
}

// Key returns the storage key this repository owns.
func (r *Repository[T]) Key() string {
	return r.key
}

// Load reads and decodes the blob. Missing or undecodable blobs yield the zero
// value of T with a nil error.
func (r *Repository[T]) Load(ctx context.Context) (T, error) {
	var zero T

	data, ok, err := r.kv.Get(ctx, r.key)
	if err != nil {
		return zero, fmt.Errorf("failed to load %s: %w", r.key, err)
	}
	if !ok {
		return zero, nil
	}

	var value T
	if err := json.Unmarshal(data, &value); err != nil {
		// Corrupt blob: treated as absent, never propagated.
		return zero, nil
	}
	return value, nil
}

// Save encodes and writes the blob.
func (r *Repository[T]) Save(ctx context.Context, value T) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", r.key, err)
	}
	if err := r.kv.Set(ctx, r.key, data); err != nil {
		return fmt.Errorf("failed to save %s: %w", r.key, err)
	}
	return nil
}

// Clear removes the blob entirely.
func (r *Repository[T]) Clear(ctx context.Context) error {
	if err := r.kv.Delete(ctx, r.key); err != nil {
		return fmt.Errorf("failed to clear %s: %w", r.key, err)
	}
	return nil
}
