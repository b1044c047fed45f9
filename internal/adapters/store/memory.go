package store

import (
	"context"
	"sync"

	"github.com/jsamuelsen/daily-quote/internal/domain"
)

// Memory is an in-process store. Entries live as long as the process.
type Memory struct {
	mu      sync.RWMutex
	entries map[string][]byte
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{entries: make(map[string][]byte)}
}

// Get implements ports.QuoteStore.
func (m *Memory) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	v, ok := m.entries[key]
	if !ok {
		return nil, domain.NewNotFoundError("cache entry", key)
	}

	return append([]byte(nil), v...), nil
}

// Set implements ports.QuoteStore.
func (m *Memory) Set(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries[key] = append([]byte(nil), value...)

	return nil
}

// Name implements ports.HealthChecker.
func (m *Memory) Name() string {
	return "quote-store"
}

// Check implements ports.HealthChecker. Memory is always available.
func (m *Memory) Check(_ context.Context) error {
	return nil
}
