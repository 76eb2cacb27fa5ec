// Package display implements ports.Renderer. Board keeps the latest frame
// for the HTTP API, Terminal draws to a writer and Multi fans out to both.
package display

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/jsamuelsen/quotesync/internal/domain"
	"github.com/jsamuelsen/quotesync/internal/ports"
)

// Status is the status line of a frame.
type Status struct {
	Text  string             `json:"text"`
	Color domain.StatusColor `json:"color"`
}

// Frame is everything currently shown.
type Frame struct {
	// Quote is nil when nothing has been shown or the filter matched nothing.
	Quote      *domain.Quote `json:"quote,omitempty"`
	Text       string        `json:"text"`
	Categories []string      `json:"categories"`
	Selected   string        `json:"selected"`
	Status     Status        `json:"status"`
	UpdatedAt  time.Time     `json:"updatedAt"`
}

// Board holds the most recent frame.
type Board struct {
	mu    sync.RWMutex
	frame Frame
}

var _ ports.Renderer = (*Board)(nil)

// NewBoard creates an empty board selecting every category.
func NewBoard() *Board {
	return &Board{
		frame: Frame{
			Categories: []string{domain.AllCategories},
			Selected:   domain.AllCategories,
			UpdatedAt:  time.Now(),
		},
	}
}

// ShowQuote implements ports.Renderer.
func (b *Board) ShowQuote(_ context.Context, q domain.Quote) {
	b.update(func(f *Frame) {
		f.Quote = &q
		f.Text = q.Format()
	})
}

// ShowNoResults implements ports.Renderer.
func (b *Board) ShowNoResults(context.Context) {
	b.update(func(f *Frame) {
		f.Quote = nil
		f.Text = domain.NoQuotesMessage
	})
}

// ShowCategories implements ports.Renderer.
func (b *Board) ShowCategories(_ context.Context, categories []string, selected string) {
	b.update(func(f *Frame) {
		f.Categories = slices.Clone(categories)
		f.Selected = selected
	})
}

// ShowStatus implements ports.Renderer.
func (b *Board) ShowStatus(_ context.Context, text string, color domain.StatusColor) {
	b.update(func(f *Frame) {
		f.Status = Status{Text: text, Color: color}
	})
}

// Frame returns a copy of the current frame.
func (b *Board) Frame() Frame {
	b.mu.RLock()
	defer b.mu.RUnlock()

	f := b.frame
	f.Categories = slices.Clone(b.frame.Categories)

	if b.frame.Quote != nil {
		q := *b.frame.Quote
		f.Quote = &q
	}

	return f
}

func (b *Board) update(fn func(*Frame)) {
	b.mu.Lock()
	defer b.mu.Unlock()

	fn(&b.frame)
	b.frame.UpdatedAt = time.Now()
}

// Multi forwards every call to each renderer in order.
type Multi []ports.Renderer

// ShowQuote implements ports.Renderer.
func (m Multi) ShowQuote(ctx context.Context, q domain.Quote) {
	for _, r := range m {
		r.ShowQuote(ctx, q)
	}
}

// ShowNoResults implements ports.Renderer.
func (m Multi) ShowNoResults(ctx context.Context) {
	for _, r := range m {
		r.ShowNoResults(ctx)
	}
}

// ShowCategories implements ports.Renderer.
func (m Multi) ShowCategories(ctx context.Context, categories []string, selected string) {
	for _, r := range m {
		r.ShowCategories(ctx, categories, selected)
	}
}

// ShowStatus implements ports.Renderer.
func (m Multi) ShowStatus(ctx context.Context, text string, color domain.StatusColor) {
	for _, r := range m {
		r.ShowStatus(ctx, text, color)
	}
}
