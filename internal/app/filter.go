package app

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/jsamuelsen/quotesync/internal/domain"
	"github.com/jsamuelsen/quotesync/internal/ports"
)

// FilterKey is the durable storage key holding the selected category.
const FilterKey = "selectedCategory"

// FilterService owns the persisted category selection.
type FilterService struct {
	kv     ports.KeyValueStore
	store  *QuoteStore
	logger *slog.Logger

	mu       sync.RWMutex
	selected string
}

// NewFilterService creates a filter selecting every category.
func NewFilterService(kv ports.KeyValueStore, store *QuoteStore, logger *slog.Logger) *FilterService {
	if logger == nil {
		logger = slog.Default()
	}

	return &FilterService{
		kv:       kv,
		store:    store,
		logger:   logger.With(slog.String("component", "app.FilterService")),
		selected: domain.AllCategories,
	}
}

// Restore loads the persisted selection and validates it against the
// current categories. A stale or missing selection falls back to all.
func (f *FilterService) Restore(ctx context.Context) string {
	selected := domain.AllCategories

	raw, err := f.kv.Get(ctx, FilterKey)

	switch {
	case err == nil:
		selected = string(raw)
	case !errors.Is(err, domain.ErrNotFound):
		f.logger.WarnContext(ctx, "reading stored filter failed", slog.Any("error", err))
	}

	if !domain.HasCategory(f.store.Snapshot(), selected) {
		f.logger.InfoContext(ctx, "stored filter no longer matches any category",
			slog.String("category", selected),
		)

		selected = domain.AllCategories
	}

	f.mu.Lock()
	f.selected = selected
	f.mu.Unlock()

	return selected
}

// Selected returns the current selection. A selection whose category has
// since disappeared reads as all.
func (f *FilterService) Selected() string {
	f.mu.RLock()
	selected := f.selected
	f.mu.RUnlock()

	if !domain.HasCategory(f.store.Snapshot(), selected) {
		return domain.AllCategories
	}

	return selected
}

// Select validates and persists a new selection.
func (f *FilterService) Select(ctx context.Context, category string) error {
	if category == "" {
		return domain.NewValidationError("category", "must not be empty")
	}

	if !domain.HasCategory(f.store.Snapshot(), category) {
		return domain.NewValidationErrorWithValue("category", "unknown category", category)
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.kv.Put(ctx, FilterKey, []byte(category)); err != nil {
		if errors.Is(err, domain.ErrStorage) {
			return err
		}

		return domain.NewStorageError("put", FilterKey, err)
	}

	f.selected = category

	return nil
}
