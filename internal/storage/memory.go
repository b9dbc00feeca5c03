package storage

import (
	"context"
	"sync"
)

// MemoryKV is an in-memory KV implementation used by tests and by the
// engine when persistence is unavailable.
type MemoryKV struct {
	mu     sync.RWMutex
	values map[string]string

	// FailGets and FailSets force errors, for exercising degraded paths.
	FailGets error
	FailSets error
}

// NewMemoryKV creates an empty in-memory store.
func NewMemoryKV() *MemoryKV {
	return &MemoryKV{values: make(map[string]string)}
}

// Get retrieves the value for a key.
func (m *MemoryKV) Get(ctx context.Context, key string) (string, bool, error) {
	if err := validateContext(ctx); err != nil {
		return "", false, err
	}
	if m.FailGets != nil {
		return "", false, m.FailGets
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	value, ok := m.values[key]
	return value, ok, nil
}

// Set stores the value for a key.
func (m *MemoryKV) Set(ctx context.Context, key, value string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if m.FailSets != nil {
		return m.FailSets
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

// Close is a no-op for the in-memory store.
func (m *MemoryKV) Close() error {
	return nil
}
