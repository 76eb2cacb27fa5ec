// Package app contains application services that orchestrate use cases.
// Services own application state explicitly and reach infrastructure only
// through ports.
package app

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"math/rand/v2"
	"strings"

	"github.com/jsamuelsen/quotesync/internal/domain"
	"github.com/jsamuelsen/quotesync/internal/platform/logging"
	"github.com/jsamuelsen/quotesync/internal/ports"
)

// Display is what the user sees after asking for a quote.
type Display struct {
	// Quote is nil when the filter selects nothing.
	Quote *domain.Quote `json:"quote,omitempty"`

	// Text is the rendered quote or the empty-filter placeholder.
	Text string `json:"text"`
}

// QuoteService orchestrates browsing and authoring use cases.
type QuoteService struct {
	store    *QuoteStore
	filter   *FilterService
	sessions ports.SessionStore
	renderer ports.Renderer
	pick     func(n int) int
	logger   *slog.Logger
}

// QuoteServiceConfig contains configuration for the quote service.
type QuoteServiceConfig struct {
	Store    *QuoteStore
	Filter   *FilterService
	Sessions ports.SessionStore
	Renderer ports.Renderer

	// Pick returns an index in [0, n). Defaults to a uniform random pick.
	Pick   func(n int) int
	Logger *slog.Logger
}

// NewQuoteService creates a new quote service with the provided dependencies.
// The service refreshes the category display whenever the store changes.
func NewQuoteService(cfg QuoteServiceConfig) *QuoteService {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	pick := cfg.Pick
	if pick == nil {
		pick = rand.IntN
	}

	s := &QuoteService{
		store:    cfg.Store,
		filter:   cfg.Filter,
		sessions: cfg.Sessions,
		renderer: cfg.Renderer,
		pick:     pick,
		logger:   logger.With(slog.String("component", "app.QuoteService")),
	}

	cfg.Store.Subscribe(func(ctx context.Context, quotes domain.QuoteSet) {
		s.renderer.ShowCategories(ctx, domain.Categories(quotes), s.filter.Selected())
	})

	return s
}

// Start loads the collection and the persisted filter, then renders the
// initial category list.
func (s *QuoteService) Start(ctx context.Context) {
	quotes := s.store.Load(ctx)
	selected := s.filter.Restore(ctx)

	s.renderer.ShowCategories(ctx, domain.Categories(quotes), selected)

	s.logger.InfoContext(ctx, "quote collection ready",
		slog.Int("count", len(quotes)),
		slog.String("category", selected),
	)
}

// RandomQuote shows a random quote from category, or from the persisted
// filter when category is empty, and remembers it for the session.
func (s *QuoteService) RandomQuote(ctx context.Context, sessionID, category string) (Display, error) {
	if category == "" {
		category = s.filter.Selected()
	}

	candidates := domain.Filter(s.store.Snapshot(), category)
	if len(candidates) == 0 {
		s.renderer.ShowNoResults(ctx)

		return Display{Text: domain.NoQuotesMessage}, nil
	}

	quote := candidates[s.pick(len(candidates))]
	s.renderer.ShowQuote(ctx, quote)
	s.remember(ctx, sessionID, quote)

	return Display{Quote: &quote, Text: quote.Format()}, nil
}

// LastQuote returns the quote most recently shown to the session.
func (s *QuoteService) LastQuote(ctx context.Context, sessionID string) (domain.Quote, error) {
	if sessionID == "" {
		return domain.Quote{}, domain.NewValidationError("session", "session id is required")
	}

	raw, err := s.sessions.Get(ctx, sessionKey(sessionID))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Quote{}, domain.NewNotFoundError("last quote", "")
		}

		return domain.Quote{}, err
	}

	var quote domain.Quote
	if err := json.Unmarshal(raw, &quote); err != nil {
		return domain.Quote{}, domain.NewStorageError("decode", "lastQuote", err)
	}

	return quote, nil
}

// AddQuote validates and appends a quote. It stays local until the next
// sync pushes it.
func (s *QuoteService) AddQuote(ctx context.Context, text, category string) (domain.Quote, error) {
	logger := logging.FromContext(ctx)

	quote := domain.Quote{
		Text:     strings.TrimSpace(text),
		Category: strings.TrimSpace(category),
	}

	if quote.Text == "" {
		return domain.Quote{}, domain.NewValidationError("text", "must not be empty")
	}

	if quote.Category == "" {
		return domain.Quote{}, domain.NewValidationError("category", "must not be empty")
	}

	if err := s.store.Append(ctx, quote); err != nil {
		logger.ErrorContext(ctx, "adding quote failed", slog.Any("error", err))

		return domain.Quote{}, err
	}

	s.renderer.ShowQuote(ctx, quote)

	logger.InfoContext(ctx, "quote added", slog.String("category", quote.Category))

	return quote, nil
}

// ListQuotes returns the quotes in category, or every quote for all.
func (s *QuoteService) ListQuotes(_ context.Context, category string) domain.QuoteSet {
	if category == "" {
		category = domain.AllCategories
	}

	return domain.Filter(s.store.Snapshot(), category)
}

// Categories returns the category list and the current selection.
func (s *QuoteService) Categories(_ context.Context) ([]string, string) {
	return domain.Categories(s.store.Snapshot()), s.filter.Selected()
}

// SelectedCategory returns the current selection.
func (s *QuoteService) SelectedCategory(_ context.Context) string {
	return s.filter.Selected()
}

// SelectCategory persists a new selection and shows a quote from it.
func (s *QuoteService) SelectCategory(ctx context.Context, sessionID, category string) (Display, error) {
	if err := s.filter.Select(ctx, category); err != nil {
		return Display{}, err
	}

	return s.RandomQuote(ctx, sessionID, category)
}

func (s *QuoteService) remember(ctx context.Context, sessionID string, quote domain.Quote) {
	if sessionID == "" {
		return
	}

	raw, err := json.Marshal(quote)
	if err != nil {
		return
	}

	if err := s.sessions.Put(ctx, sessionKey(sessionID), raw); err != nil {
		s.logger.WarnContext(ctx, "recording last quote failed", slog.Any("error", err))
	}
}

func sessionKey(sessionID string) string {
	return "session:" + sessionID + ":lastQuote"
}
