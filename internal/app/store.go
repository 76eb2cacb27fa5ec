package app

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sync"

	"github.com/jsamuelsen/quotesync/internal/domain"
	"github.com/jsamuelsen/quotesync/internal/ports"
)

// QuotesKey is the durable storage key holding the serialized collection.
const QuotesKey = "quotes"

// ChangeListener is notified after a mutation has been persisted.
type ChangeListener func(ctx context.Context, quotes domain.QuoteSet)

// QuoteStore owns the in-memory collection and keeps it in step with durable
// storage. A mutation is applied in memory only after it has been persisted,
// so a failed write leaves the previous collection in place.
type QuoteStore struct {
	kv     ports.KeyValueStore
	logger *slog.Logger

	mu     sync.RWMutex
	quotes domain.QuoteSet

	listenersMu sync.RWMutex
	listeners   []ChangeListener
}

// QuoteStoreConfig contains the dependencies of a QuoteStore.
type QuoteStoreConfig struct {
	Storage ports.KeyValueStore
	Logger  *slog.Logger
}

// NewQuoteStore creates a store holding the seed collection until Load runs.
func NewQuoteStore(cfg QuoteStoreConfig) *QuoteStore {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &QuoteStore{
		kv:     cfg.Storage,
		logger: logger.With(slog.String("component", "app.QuoteStore")),
		quotes: domain.DefaultQuotes(),
	}
}

// Subscribe registers a listener for persisted changes.
func (s *QuoteStore) Subscribe(listener ChangeListener) {
	s.listenersMu.Lock()
	defer s.listenersMu.Unlock()

	s.listeners = append(s.listeners, listener)
}

// Load reads the collection from durable storage. Missing or unreadable data
// yields the seed collection. Load never fails.
func (s *QuoteStore) Load(ctx context.Context) domain.QuoteSet {
	loaded := s.read(ctx)

	s.mu.Lock()
	s.quotes = loaded
	s.mu.Unlock()

	return loaded.Clone()
}

func (s *QuoteStore) read(ctx context.Context) domain.QuoteSet {
	raw, err := s.kv.Get(ctx, QuotesKey)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			s.logger.WarnContext(ctx, "reading stored quotes failed, using defaults", slog.Any("error", err))
		}

		return domain.DefaultQuotes()
	}

	var quotes domain.QuoteSet
	if err := json.Unmarshal(raw, &quotes); err != nil || quotes == nil {
		s.logger.WarnContext(ctx, "stored quotes unreadable, using defaults", slog.Any("error", err))

		return domain.DefaultQuotes()
	}

	s.logger.DebugContext(ctx, "loaded stored quotes", slog.Int("count", len(quotes)))

	return quotes
}

// Snapshot returns a copy of the current collection.
func (s *QuoteStore) Snapshot() domain.QuoteSet {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.quotes.Clone()
}

// Len returns the number of quotes held.
func (s *QuoteStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.quotes)
}

// Replace persists quotes as the whole collection.
func (s *QuoteStore) Replace(ctx context.Context, quotes domain.QuoteSet) error {
	_, err := s.Update(ctx, func(domain.QuoteSet) (domain.QuoteSet, bool) {
		return quotes.Clone(), true
	})

	return err
}

// Append adds quotes at the end of the collection in one persisted write.
// Appending nothing is a no-op.
func (s *QuoteStore) Append(ctx context.Context, quotes ...domain.Quote) error {
	if len(quotes) == 0 {
		return nil
	}

	_, err := s.Update(ctx, func(current domain.QuoteSet) (domain.QuoteSet, bool) {
		return append(current, quotes...), true
	})

	return err
}

// Update computes a new collection from a working copy of the current one.
// fn runs under the store's write lock and reports whether it changed
// anything. Unchanged results skip the write entirely.
func (s *QuoteStore) Update(
	ctx context.Context,
	fn func(working domain.QuoteSet) (domain.QuoteSet, bool),
) (bool, error) {
	s.mu.Lock()

	next, changed := fn(s.quotes.Clone())
	if !changed {
		s.mu.Unlock()

		return false, nil
	}

	if err := s.persist(ctx, next); err != nil {
		s.mu.Unlock()

		return false, err
	}

	s.quotes = next
	snapshot := next.Clone()
	s.mu.Unlock()

	s.notify(ctx, snapshot)

	return true, nil
}

func (s *QuoteStore) persist(ctx context.Context, quotes domain.QuoteSet) error {
	if quotes == nil {
		quotes = domain.QuoteSet{}
	}

	raw, err := json.Marshal(quotes)
	if err != nil {
		return domain.NewStorageError("encode", QuotesKey, err)
	}

	if err := s.kv.Put(ctx, QuotesKey, raw); err != nil {
		s.logger.ErrorContext(ctx, "persisting quotes failed", slog.Any("error", err))

		if errors.Is(err, domain.ErrStorage) {
			return err
		}

		return domain.NewStorageError("put", QuotesKey, err)
	}

	s.logger.DebugContext(ctx, "persisted quotes", slog.Int("count", len(quotes)))

	return nil
}

func (s *QuoteStore) notify(ctx context.Context, quotes domain.QuoteSet) {
	s.listenersMu.RLock()
	listeners := make([]ChangeListener, len(s.listeners))
	copy(listeners, s.listeners)
	s.listenersMu.RUnlock()

	for _, l := range listeners {
		l(ctx, quotes)
	}
}
