package reconcile

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jsamuelsen/quotesync/internal/domain"
)

func TestStatusBoard_TerminalStatusResetsToIdle(t *testing.T) {
	display := &statusRecorder{}
	board := NewStatusBoard(display, 20*time.Millisecond)
	t.Cleanup(board.Close)

	board.Set(context.Background(), domain.SyncUpdated)

	status, _ := board.Current()
	assert.Equal(t, domain.SyncUpdated, status)
	assert.Equal(t, "Quotes updated from server.", display.last())

	assert.Eventually(t, func() bool {
		status, _ := board.Current()

		return status == domain.SyncIdle
	}, time.Second, 5*time.Millisecond)

	assert.Empty(t, display.last())
}

func TestStatusBoard_SyncingStaysUntilReplaced(t *testing.T) {
	display := &statusRecorder{}
	board := NewStatusBoard(display, 10*time.Millisecond)
	t.Cleanup(board.Close)

	board.Set(context.Background(), domain.SyncSyncing)
	time.Sleep(40 * time.Millisecond)

	status, _ := board.Current()
	assert.Equal(t, domain.SyncSyncing, status)
	assert.Equal(t, []string{"Syncing with server..."}, display.all())
}

func TestStatusBoard_NewRunCancelsPendingReset(t *testing.T) {
	display := &statusRecorder{}
	board := NewStatusBoard(display, 30*time.Millisecond)
	t.Cleanup(board.Close)

	board.Set(context.Background(), domain.SyncFailed)
	board.Set(context.Background(), domain.SyncSyncing)
	time.Sleep(80 * time.Millisecond)

	status, _ := board.Current()
	assert.Equal(t, domain.SyncSyncing, status)
	assert.Equal(t, []string{"Sync failed. Will retry.", "Syncing with server..."}, display.all())
}

func TestStatusBoard_CloseStopsUpdates(t *testing.T) {
	display := &statusRecorder{}
	board := NewStatusBoard(display, 10*time.Millisecond)

	board.Set(context.Background(), domain.SyncUpToDate)
	board.Close()
	board.Set(context.Background(), domain.SyncSyncing)
	time.Sleep(40 * time.Millisecond)

	status, _ := board.Current()
	assert.Equal(t, domain.SyncUpToDate, status)
	assert.Equal(t, []string{"Quotes are up to date."}, display.all())
}
