package app

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/quotesync/internal/adapters/storage/memory"
	"github.com/jsamuelsen/quotesync/internal/domain"
)

// discardLogger returns a logger that discards all output.
func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// recordingRenderer captures every frame sent to the display.
type recordingRenderer struct {
	mu         sync.Mutex
	quotes     []domain.Quote
	noResults  int
	categories [][]string
	selected   []string
	statuses   []string
}

func (r *recordingRenderer) ShowQuote(_ context.Context, q domain.Quote) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.quotes = append(r.quotes, q)
}

func (r *recordingRenderer) ShowNoResults(context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.noResults++
}

func (r *recordingRenderer) ShowCategories(_ context.Context, categories []string, selected string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.categories = append(r.categories, categories)
	r.selected = append(r.selected, selected)
}

func (r *recordingRenderer) ShowStatus(_ context.Context, text string, _ domain.StatusColor) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.statuses = append(r.statuses, text)
}

func (r *recordingRenderer) lastCategories() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.categories) == 0 {
		return nil
	}

	return r.categories[len(r.categories)-1]
}

// seededStore returns a store backed by memory storage holding quotes.
func seededStore(t *testing.T, quotes domain.QuoteSet) (*QuoteStore, *memory.Store) {
	t.Helper()

	kv := memory.New()
	store := NewQuoteStore(QuoteStoreConfig{Storage: kv, Logger: discardLogger()})
	require.NoError(t, store.Replace(context.Background(), quotes))

	return store, kv
}
