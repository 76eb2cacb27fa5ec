package display

import (
	"bytes"
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/quotesync/internal/domain"
)

func TestBoard_TracksLatestFrame(t *testing.T) {
	ctx := context.Background()
	board := NewBoard()

	frame := board.Frame()
	assert.Nil(t, frame.Quote)
	assert.Equal(t, []string{domain.AllCategories}, frame.Categories)

	q := domain.Quote{Text: "Be brave", Category: "Courage"}
	board.ShowQuote(ctx, q)
	board.ShowCategories(ctx, []string{"all", "Courage"}, "Courage")
	board.ShowStatus(ctx, "Quotes updated from server.", domain.ColorSuccess)

	frame = board.Frame()
	require.NotNil(t, frame.Quote)
	assert.Equal(t, q, *frame.Quote)
	assert.Equal(t, q.Format(), frame.Text)
	assert.Equal(t, []string{"all", "Courage"}, frame.Categories)
	assert.Equal(t, "Courage", frame.Selected)
	assert.Equal(t, Status{Text: "Quotes updated from server.", Color: domain.ColorSuccess}, frame.Status)

	board.ShowNoResults(ctx)

	frame = board.Frame()
	assert.Nil(t, frame.Quote)
	assert.Equal(t, domain.NoQuotesMessage, frame.Text)
}

func TestBoard_FrameIsACopy(t *testing.T) {
	ctx := context.Background()
	board := NewBoard()
	categories := []string{"all", "x"}

	board.ShowCategories(ctx, categories, "all")
	categories[1] = "mutated"

	frame := board.Frame()
	frame.Categories[0] = "changed"

	assert.Equal(t, []string{"all", "x"}, board.Frame().Categories)
}

func TestBoard_ConcurrentUse(t *testing.T) {
	ctx := context.Background()
	board := NewBoard()

	var wg sync.WaitGroup

	for range 20 {
		wg.Go(func() {
			board.ShowQuote(ctx, domain.Quote{Text: "t", Category: "c"})
			board.ShowStatus(ctx, "Syncing with server...", domain.ColorInfo)
			_ = board.Frame()
		})
	}

	wg.Wait()

	assert.Equal(t, "Syncing with server...", board.Frame().Status.Text)
}

func TestTerminal_Writes(t *testing.T) {
	ctx := context.Background()

	var buf bytes.Buffer

	term := NewTerminal(&buf, DefaultStyles())

	term.ShowQuote(ctx, domain.Quote{Text: "Be brave", Category: "Courage"})
	term.ShowNoResults(ctx)
	term.ShowCategories(ctx, []string{"all", "Courage"}, "Courage")
	term.ShowStatus(ctx, "Sync failed. Will retry.", domain.ColorError)
	term.ShowStatus(ctx, "", domain.ColorNormal)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[0], `"Be brave"`)
	assert.Contains(t, lines[0], "Courage")
	assert.Contains(t, lines[1], domain.NoQuotesMessage)
	assert.Contains(t, lines[2], "[Courage]")
	assert.Contains(t, lines[3], "Sync failed. Will retry.")
}

func TestMulti_FansOut(t *testing.T) {
	ctx := context.Background()
	a, b := NewBoard(), NewBoard()
	multi := Multi{a, b}

	multi.ShowQuote(ctx, domain.Quote{Text: "x", Category: "y"})
	multi.ShowCategories(ctx, []string{"all", "y"}, "y")
	multi.ShowStatus(ctx, "Quotes are up to date.", domain.ColorSuccess)
	multi.ShowNoResults(ctx)

	assert.Equal(t, a.Frame().Categories, b.Frame().Categories)
	assert.Equal(t, a.Frame().Status, b.Frame().Status)
	assert.Equal(t, domain.NoQuotesMessage, b.Frame().Text)
}

func TestTerminal_PlainStyles(t *testing.T) {
	var buf bytes.Buffer

	term := NewTerminal(&buf, PlainStyles())
	term.ShowQuote(context.Background(), domain.Quote{Text: "Be brave", Category: "Courage"})
	term.ShowStatus(context.Background(), "Quotes are up to date.", domain.ColorSuccess)

	assert.Equal(t, "\"Be brave\" — Courage\nQuotes are up to date.\n", buf.String())
}
