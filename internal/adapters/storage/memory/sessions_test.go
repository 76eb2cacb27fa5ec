package memory

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/quotesync/internal/domain"
	"github.com/jsamuelsen/quotesync/internal/ports"
)

var _ ports.SessionStore = (*SessionStore)(nil)

func TestSessionStore_PutGetDelete(t *testing.T) {
	ctx := context.Background()
	store := NewSessionStore(10, time.Hour)

	require.NoError(t, store.Put(ctx, "session:a:lastQuote", []byte(`{"text":"Be brave"}`)))

	got, err := store.Get(ctx, "session:a:lastQuote")
	require.NoError(t, err)
	assert.JSONEq(t, `{"text":"Be brave"}`, string(got))

	require.NoError(t, store.Delete(ctx, "session:a:lastQuote"))

	_, err = store.Get(ctx, "session:a:lastQuote")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSessionStore_EvictsOldestBeyondCapacity(t *testing.T) {
	ctx := context.Background()
	store := NewSessionStore(3, time.Hour)

	for i := range 100 {
		require.NoError(t, store.Put(ctx, fmt.Sprintf("session:%d:lastQuote", i), []byte("q")))
	}

	assert.Equal(t, 3, store.Len())

	_, err := store.Get(ctx, "session:0:lastQuote")
	require.ErrorIs(t, err, domain.ErrNotFound)

	_, err = store.Get(ctx, "session:99:lastQuote")
	assert.NoError(t, err)
}

func TestSessionStore_EntriesExpire(t *testing.T) {
	ctx := context.Background()
	store := NewSessionStore(10, 20*time.Millisecond)

	require.NoError(t, store.Put(ctx, "session:a:lastQuote", []byte("q")))

	assert.Eventually(t, func() bool {
		_, err := store.Get(ctx, "session:a:lastQuote")

		return err != nil
	}, time.Second, 5*time.Millisecond)
}

func TestSessionStore_ValuesAreCopied(t *testing.T) {
	ctx := context.Background()
	store := NewSessionStore(10, time.Hour)
	value := []byte("abc")

	require.NoError(t, store.Put(ctx, "k", value))
	value[0] = 'x'

	got, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), got)
}
