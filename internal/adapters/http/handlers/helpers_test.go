package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/quotesync/internal/adapters/display"
	"github.com/jsamuelsen/quotesync/internal/adapters/http/middleware"
	"github.com/jsamuelsen/quotesync/internal/adapters/storage/memory"
	"github.com/jsamuelsen/quotesync/internal/app"
	"github.com/jsamuelsen/quotesync/internal/app/reconcile"
	"github.com/jsamuelsen/quotesync/internal/mocks"
)

// testAPI wires every handler over in-memory storage and a mock remote.
type testAPI struct {
	router *gin.Engine
	store  *app.QuoteStore
	kv     *memory.Store
	remote *mocks.MockQuoteRemote
	board  *display.Board
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()

	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	kv := memory.New()
	remote := mocks.NewMockQuoteRemote(t)
	board := display.NewBoard()

	store := app.NewQuoteStore(app.QuoteStoreConfig{Storage: kv, Logger: logger})
	filter := app.NewFilterService(kv, store, logger)

	quotes := app.NewQuoteService(app.QuoteServiceConfig{
		Store:    store,
		Filter:   filter,
		Sessions: memory.New(),
		Renderer: board,
		Pick:     func(int) int { return 0 },
		Logger:   logger,
	})
	quotes.Start(ctx)

	transfer := app.NewTransferService(app.TransferServiceConfig{
		Store:       store,
		Remote:      remote,
		Concurrency: 2,
		Logger:      logger,
	})

	status := reconcile.NewStatusBoard(board, time.Hour)
	t.Cleanup(status.Close)

	reconciler := reconcile.New(reconcile.Config{
		Store:       store,
		Remote:      remote,
		Status:      status,
		Concurrency: 2,
		Logger:      logger,
	})

	router := gin.New()
	router.Use(middleware.Session())

	api := router.Group("/api/v1")
	NewQuoteHandler(quotes).RegisterQuoteRoutes(api)
	NewSyncHandler(reconcile.NewScheduler(reconciler, time.Hour, logger), reconciler, status).RegisterSyncRoutes(api)
	NewTransferHandler(transfer).RegisterTransferRoutes(api)
	NewDisplayHandler(board).RegisterDisplayRoutes(api)

	return &testAPI{
		router: router,
		store:  store,
		kv:     kv,
		remote: remote,
		board:  board,
	}
}

// do sends a request with an optional JSON body and session.
func (a *testAPI) do(method, path, body, session string) *httptest.ResponseRecorder {
	var r io.Reader
	if body != "" {
		r = bytes.NewBufferString(body)
	}

	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	if session != "" {
		req.Header.Set(middleware.HeaderSessionID, session)
	}

	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)

	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())

	return v
}

func requireErrorCode(t *testing.T, w *httptest.ResponseRecorder, status int, code string) {
	t.Helper()

	require.Equal(t, status, w.Code, w.Body.String())

	var resp struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, code, resp.Error.Code)
}
