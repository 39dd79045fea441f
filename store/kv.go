package store

import (
	"context"
	"errors"
	"sync"
)

// ErrKeyNotFound is returned by KVStore.Get when the slot has never been written.
var ErrKeyNotFound = errors.New("key not found")

// KVStore is the durable key-value slot the cart and wishlist persist into.
// Implementations must treat Get on a missing key as ErrKeyNotFound, not a failure.
type KVStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, key string) error
}

// MemoryKV is an in-memory KVStore used in tests and local development
type MemoryKV struct {
	mu   sync.RWMutex
	data map[string]string
}

// NewMemoryKV creates a new MemoryKV
func NewMemoryKV() *MemoryKV {
	return &MemoryKV{
		data: make(map[string]string),
	}
}

// Ensure MemoryKV implements KVStore
var _ KVStore = (*MemoryKV)(nil)

// Get returns the stored value for key
func (m *MemoryKV) Get(ctx context.Context, key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	value, exists := m.data[key]
	if !exists {
		return "", ErrKeyNotFound
	}
	return value, nil
}

// Set stores value under key
func (m *MemoryKV) Set(ctx context.Context, key string, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.data[key] = value
	return nil
}

// Delete removes key
func (m *MemoryKV) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.data, key)
	return nil
}
