package reconcile

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/quotesync/internal/adapters/storage/memory"
	"github.com/jsamuelsen/quotesync/internal/app"
	"github.com/jsamuelsen/quotesync/internal/domain"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// statusRecorder keeps every status line shown.
type statusRecorder struct {
	mu    sync.Mutex
	lines []string
}

func (r *statusRecorder) ShowQuote(context.Context, domain.Quote) {}

func (r *statusRecorder) ShowNoResults(context.Context) {}

func (r *statusRecorder) ShowCategories(context.Context, []string, string) {}

func (r *statusRecorder) ShowStatus(_ context.Context, text string, _ domain.StatusColor) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.lines = append(r.lines, text)
}

func (r *statusRecorder) all() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]string(nil), r.lines...)
}

func (r *statusRecorder) last() string {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.lines) == 0 {
		return ""
	}

	return r.lines[len(r.lines)-1]
}

func newMemoryStore(t *testing.T, quotes domain.QuoteSet) *app.QuoteStore {
	t.Helper()

	store := app.NewQuoteStore(app.QuoteStoreConfig{Storage: memory.New(), Logger: discardLogger()})
	require.NoError(t, store.Replace(context.Background(), quotes))

	return store
}
