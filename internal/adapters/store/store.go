// Package store provides the key-value backends behind the daily quote cache.
package store

import (
	"fmt"

	"github.com/jsamuelsen/daily-quote/internal/platform/config"
	"github.com/jsamuelsen/daily-quote/internal/ports"
)

// Store is a quote store that can also report its health.
type Store interface {
	ports.QuoteStore
	ports.HealthChecker
}

// New returns the backend selected by cfg.
func New(cfg config.StoreConfig) (Store, error) {
	switch cfg.Backend {
	case config.StoreBackendMemory:
		return NewMemory(), nil
	case config.StoreBackendFile:
		return NewFile(cfg.Path)
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.Backend)
	}
}
