package store

import (
	"context"
	"sync"
	"time"
)

// Cache holds string values for a limited time.
type Cache interface {
	// Get returns the value of key, and false if it is missing or expired.
	Get(ctx context.Context, key string) (string, bool)
	// Set stores value under key. A zero ttl never expires.
	Set(ctx context.Context, key, value string, ttl time.Duration) error
}

type entry struct {
	value   string
	expires time.Time
}

// MemoryCache is a Cache kept in process memory.
type MemoryCache struct {
	Clock Clock

	mu   sync.Mutex
	data map[string]entry
}

// NewMemoryCache returns an empty MemoryCache.
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{data: make(map[string]entry)}
}

func (m *MemoryCache) Get(_ context.Context, key string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.data[key]
	if !ok {
		return "", false
	}
	if !e.expires.IsZero() && !m.Clock.now().Before(e.expires) {
		delete(m.data, key)
		return "", false
	}
	return e.value, true
}

func (m *MemoryCache) Set(_ context.Context, key, value string, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	e := entry{value: value}
	if ttl > 0 {
		e.expires = m.Clock.now().Add(ttl)
	}
	m.data[key] = e
	return nil
}
