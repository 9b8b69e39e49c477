package mocks

import (
	"context"
	"sync"
	"time"
)

// Cache is a mock implementation of ports.Cache.
type Cache struct {
	mu      sync.Mutex
	Entries map[string]string
	GetErr  error
	SetErr  error
	Gets    int
	Sets    int
}

// NewCache creates an empty mock cache.
func NewCache() *Cache {
	return &Cache{Entries: make(map[string]string)}
}

// Get returns the cached value for key.
func (m *Cache) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Gets++
	if m.GetErr != nil {
		return "", false, m.GetErr
	}
	v, ok := m.Entries[key]
	return v, ok, nil
}

// Set stores value under key; the TTL is ignored.
func (m *Cache) Set(_ context.Context, key, value string, _ time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Sets++
	if m.SetErr != nil {
		return m.SetErr
	}
	m.Entries[key] = value
	return nil
}
