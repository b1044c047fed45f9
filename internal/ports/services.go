// Package ports defines interfaces for external dependencies.
// Ports are contracts that adapters implement, allowing the application layer
// to depend on abstractions rather than concrete implementations.
//
// Port Design Principles:
//   - Context as first parameter (always) for cancellation and deadlines
//   - Return domain types, never external DTOs or infrastructure types
//   - Error returns use domain error types (ErrNotFound, ErrUnavailable, etc.)
//   - Keep interfaces small and focused (Interface Segregation Principle)
package ports

//go:generate mockery
//go:generate mockgen -destination=../adapters/desktop/mock_ports_test.go -package=desktop . NativeSharer,URLOpener

import (
	"context"

	"github.com/jsamuelsen/daily-quote/internal/domain"
)

// QuoteClient fetches quotes from the remote quote API.
//
// Key considerations:
//   - Respect the context deadline; the provider bounds every fetch
//   - Map external errors to domain errors
//   - Never return a quote with empty content
type QuoteClient interface {
	// GetRandomQuote fetches one random quote.
	// Returns domain.ErrUnavailable if the service is unreachable or failing,
	// domain.ErrValidation if the response cannot be turned into a quote.
	GetRandomQuote(ctx context.Context) (domain.Quote, error)
}

// QuoteStore is the date-keyed key-value cache behind the provider.
// Implementations may be backed by memory, a file, or any other store.
// Writes are last-writer-wins; entries never expire.
type QuoteStore interface {
	// Get returns the value stored under key.
	// Returns domain.ErrNotFound if the key does not exist.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key, overwriting any existing entry.
	Set(ctx context.Context, key string, value []byte) error
}

// Display is the surface today's quote is rendered to.
type Display interface {
	// ShowLoading switches the display to its transient loading state.
	ShowLoading()

	// Render shows the quote.
	Render(q domain.Quote)
}

// Clipboard writes text to the system clipboard.
type Clipboard interface {
	// WriteText replaces the clipboard contents.
	WriteText(ctx context.Context, text string) error
}

// Sharer shares a quote with other applications.
// Implementations degrade gracefully and never fail the caller.
type Sharer interface {
	Share(ctx context.Context, text, pageURL string)
}

// NativeSharer is a platform share capability such as a share sheet or a
// desktop portal. No implementation ships with this module: cmd/dailyquote
// passes nil, so sharing always opens the intent URL. Embedders with a share
// UI pass their own to desktop.NewSharer.
type NativeSharer interface {
	// Share hands text and url to the platform share UI.
	// A cancelled share is reported as an error and ignored by callers.
	Share(ctx context.Context, text, url string) error
}

// URLOpener opens a URL in the user's browser.
type URLOpener interface {
	Open(ctx context.Context, url string) error
}
