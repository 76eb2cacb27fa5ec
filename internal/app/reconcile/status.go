package reconcile

import (
	"context"
	"sync"
	"time"

	"github.com/jsamuelsen/quotesync/internal/domain"
	"github.com/jsamuelsen/quotesync/internal/ports"
)

// StatusBoard holds the visible sync status and returns it to idle once a
// finished status has been shown for the configured window.
type StatusBoard struct {
	renderer ports.Renderer
	window   time.Duration

	mu     sync.Mutex
	status domain.SyncStatus
	since  time.Time
	reset  *time.Timer
	gen    uint64
	closed bool
}

// NewStatusBoard creates an idle board.
func NewStatusBoard(renderer ports.Renderer, window time.Duration) *StatusBoard {
	return &StatusBoard{
		renderer: renderer,
		window:   window,
		status:   domain.SyncIdle,
		since:    time.Now(),
	}
}

// Set shows status. Terminal statuses schedule a reset to idle, replacing any
// reset still pending from an earlier run.
func (b *StatusBoard) Set(ctx context.Context, status domain.SyncStatus) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}

	if b.reset != nil {
		b.reset.Stop()
		b.reset = nil
	}

	b.gen++
	b.status = status
	b.since = time.Now()
	b.renderer.ShowStatus(ctx, status.Message(), status.Color())

	if !status.Terminal() {
		return
	}

	gen := b.gen
	detached := context.WithoutCancel(ctx)

	b.reset = time.AfterFunc(b.window, func() {
		b.expire(detached, gen)
	})
}

func (b *StatusBoard) expire(ctx context.Context, gen uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	// A newer Set superseded this reset.
	if b.gen != gen || b.closed {
		return
	}

	b.reset = nil
	b.status = domain.SyncIdle
	b.since = time.Now()
	b.renderer.ShowStatus(ctx, "", domain.ColorNormal)
}

// Current returns the visible status and when it was set.
func (b *StatusBoard) Current() (domain.SyncStatus, time.Time) {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.status, b.since
}

// Close cancels any pending reset. Later calls to Set are ignored.
func (b *StatusBoard) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.closed = true

	if b.reset != nil {
		b.reset.Stop()
		b.reset = nil
	}
}
