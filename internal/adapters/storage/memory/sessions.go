package memory

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/jsamuelsen/quotesync/internal/domain"
)

// SessionStore is a bounded in-process store for per-session values.
// Entries expire after ttl, and the least recently used entry is evicted
// once maxEntries is reached.
type SessionStore struct {
	cache *expirable.LRU[string, []byte]
}

// NewSessionStore creates a session store holding at most maxEntries keys.
func NewSessionStore(maxEntries int, ttl time.Duration) *SessionStore {
	return &SessionStore{
		cache: expirable.NewLRU[string, []byte](max(maxEntries, 1), nil, ttl),
	}
}

// Get returns a copy of the value or domain.ErrNotFound once it expired or
// was evicted.
func (s *SessionStore) Get(_ context.Context, key string) ([]byte, error) {
	v, ok := s.cache.Get(key)
	if !ok {
		return nil, domain.NewNotFoundError("session key", key)
	}

	return clone(v), nil
}

// Put stores a copy of value and restarts its expiry.
func (s *SessionStore) Put(_ context.Context, key string, value []byte) error {
	s.cache.Add(key, clone(value))

	return nil
}

// Delete removes key if present.
func (s *SessionStore) Delete(_ context.Context, key string) error {
	s.cache.Remove(key)

	return nil
}

// Len reports the number of live keys.
func (s *SessionStore) Len() int {
	return s.cache.Len()
}
