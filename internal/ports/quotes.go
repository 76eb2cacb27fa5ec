// Package ports defines interfaces for external dependencies.
// Ports are contracts that adapters implement, allowing the application layer
// to depend on abstractions rather than concrete implementations.
//
// Port Design Principles:
//   - Context as first parameter for cancellation and deadlines
//   - Return domain types, never external DTOs or infrastructure types
//   - Error returns use domain error types (ErrNotFound, ErrNetwork, etc.)
package ports

import (
	"context"

	"github.com/jsamuelsen/quotesync/internal/domain"
)

// KeyValueStore is durable string-keyed storage for serialized values.
// The quote collection and the selected filter each live under one key.
type KeyValueStore interface {
	// Get returns the stored value.
	// Returns domain.ErrNotFound when the key has never been written.
	Get(ctx context.Context, key string) ([]byte, error)

	// Put replaces the value under key. The write is complete once Put
	// returns nil. Failures are domain.ErrStorage.
	Put(ctx context.Context, key string, value []byte) error
}

// SessionStore keeps values that live for one session only and are lost on
// restart.
type SessionStore interface {
	KeyValueStore

	// Delete removes a key. Missing keys are not an error.
	Delete(ctx context.Context, key string) error
}

// QuoteRemote is the external, independently mutable copy of the collection.
//
// Implementations must document how external records map to domain.Quote.
type QuoteRemote interface {
	// FetchRemote reads the full remote collection.
	// Returns domain.ErrNetwork on transport failure or an undecodable payload.
	FetchRemote(ctx context.Context) (domain.QuoteSet, error)

	// PushRemote sends one quote to the remote.
	// Returns domain.ErrNetwork on failure.
	PushRemote(ctx context.Context, quote domain.Quote) error
}

// Renderer is the display surface. The application calls it after every
// state change the user should see.
type Renderer interface {
	// ShowQuote displays a single quote.
	ShowQuote(ctx context.Context, quote domain.Quote)

	// ShowNoResults displays the empty-filter placeholder.
	ShowNoResults(ctx context.Context)

	// ShowCategories refreshes the category selector.
	ShowCategories(ctx context.Context, categories []string, selected string)

	// ShowStatus displays the sync status line. Empty text clears it.
	ShowStatus(ctx context.Context, text string, color domain.StatusColor)
}
