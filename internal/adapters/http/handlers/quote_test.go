package handlers

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/quotesync/internal/adapters/http/dto"
	"github.com/jsamuelsen/quotesync/internal/adapters/http/middleware"
	"github.com/jsamuelsen/quotesync/internal/domain"
)

func TestQuoteHandler_ListQuotes(t *testing.T) {
	api := newTestAPI(t)

	w := api.do(http.MethodGet, "/api/v1/quotes", "", "")
	require.Equal(t, http.StatusOK, w.Code)

	page := decode[dto.PaginatedResponse[dto.QuoteResponse]](t, w)
	assert.Equal(t, 3, page.Total)
	assert.False(t, page.HasMore)
	require.Len(t, page.Items, 3)
	assert.Equal(t, "Motivation", page.Items[0].Category)
}

func TestQuoteHandler_ListQuotes_Category(t *testing.T) {
	api := newTestAPI(t)

	w := api.do(http.MethodGet, "/api/v1/quotes?category=Wisdom", "", "")
	require.Equal(t, http.StatusOK, w.Code)

	page := decode[dto.PaginatedResponse[dto.QuoteResponse]](t, w)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "In the middle of difficulty lies opportunity.", page.Items[0].Text)
}

func TestQuoteHandler_ListQuotes_FollowsCursor(t *testing.T) {
	api := newTestAPI(t)

	w := api.do(http.MethodGet, "/api/v1/quotes?limit=2", "", "")
	first := decode[dto.PaginatedResponse[dto.QuoteResponse]](t, w)

	require.True(t, first.HasMore)
	require.Len(t, first.Items, 2)

	w = api.do(http.MethodGet, "/api/v1/quotes?limit=2&cursor="+url.QueryEscape(first.NextCursor), "", "")
	second := decode[dto.PaginatedResponse[dto.QuoteResponse]](t, w)

	assert.False(t, second.HasMore)
	require.Len(t, second.Items, 1)
	assert.Equal(t, "Wisdom", second.Items[0].Category)
}

func TestQuoteHandler_ListQuotes_BadParams(t *testing.T) {
	api := newTestAPI(t)

	requireErrorCode(t, api.do(http.MethodGet, "/api/v1/quotes?cursor=%21%21", "", ""),
		http.StatusBadRequest, dto.ErrorCodeBadRequest)
	requireErrorCode(t, api.do(http.MethodGet, "/api/v1/quotes?limit=500", "", ""),
		http.StatusBadRequest, dto.ErrorCodeValidation)
}

func TestQuoteHandler_AddQuote(t *testing.T) {
	api := newTestAPI(t)

	w := api.do(http.MethodPost, "/api/v1/quotes", `{"text":"  Be brave ","category":"Courage"}`, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	got := decode[dto.QuoteResponse](t, w)
	assert.Equal(t, "Be brave", got.Text)
	assert.Equal(t, `"Be brave" — Courage`, got.Display)

	assert.True(t, api.store.Snapshot().Contains(domain.Quote{Text: "Be brave", Category: "Courage"}))
	assert.Contains(t, api.board.Frame().Categories, "Courage")
}

func TestQuoteHandler_AddQuote_Rejected(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		status int
		code   string
	}{
		{"empty text", `{"text":"","category":"Courage"}`, http.StatusBadRequest, dto.ErrorCodeValidation},
		{"blank category", `{"text":"Be brave","category":"  "}`, http.StatusBadRequest, dto.ErrorCodeValidation},
		{"malformed body", `{"text":`, http.StatusBadRequest, dto.ErrorCodeBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := newTestAPI(t)

			requireErrorCode(t, api.do(http.MethodPost, "/api/v1/quotes", tt.body, ""), tt.status, tt.code)
			assert.Equal(t, 3, api.store.Len())
		})
	}
}

func TestQuoteHandler_RandomThenLast(t *testing.T) {
	api := newTestAPI(t)

	w := api.do(http.MethodGet, "/api/v1/quotes/random", "", "session-a")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "session-a", w.Header().Get(middleware.HeaderSessionID))

	shown := decode[dto.DisplayResponse](t, w)
	require.NotNil(t, shown.Quote)
	assert.Equal(t, "Motivation", shown.Quote.Category)

	w = api.do(http.MethodGet, "/api/v1/quotes/last", "", "session-a")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, *shown.Quote, decode[dto.QuoteResponse](t, w))

	requireErrorCode(t, api.do(http.MethodGet, "/api/v1/quotes/last", "", "session-b"),
		http.StatusNotFound, dto.ErrorCodeNotFound)
}

func TestQuoteHandler_RandomQuote_NoMatches(t *testing.T) {
	api := newTestAPI(t)

	w := api.do(http.MethodGet, "/api/v1/quotes/random?category=Nothing", "", "")
	require.Equal(t, http.StatusOK, w.Code)

	got := decode[dto.DisplayResponse](t, w)
	assert.Nil(t, got.Quote)
	assert.Equal(t, domain.NoQuotesMessage, got.Text)
	assert.Equal(t, domain.NoQuotesMessage, api.board.Frame().Text)
}

func TestQuoteHandler_Categories(t *testing.T) {
	api := newTestAPI(t)

	w := api.do(http.MethodGet, "/api/v1/categories", "", "")
	require.Equal(t, http.StatusOK, w.Code)

	got := decode[dto.CategoriesResponse](t, w)
	assert.Equal(t, []string{"all", "Motivation", "Inspiration", "Wisdom"}, got.Categories)
	assert.Equal(t, domain.AllCategories, got.Selected)
}

func TestQuoteHandler_Filter(t *testing.T) {
	api := newTestAPI(t)

	w := api.do(http.MethodPut, "/api/v1/filter", `{"category":"Wisdom"}`, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	shown := decode[dto.DisplayResponse](t, w)
	require.NotNil(t, shown.Quote)
	assert.Equal(t, "Wisdom", shown.Quote.Category)

	w = api.do(http.MethodGet, "/api/v1/filter", "", "")
	assert.Equal(t, "Wisdom", decode[dto.FilterResponse](t, w).Selected)

	stored, err := api.kv.Get(t.Context(), "selectedCategory")
	require.NoError(t, err)
	assert.Equal(t, "Wisdom", string(stored))
}

func TestQuoteHandler_Filter_UnknownCategory(t *testing.T) {
	api := newTestAPI(t)

	requireErrorCode(t, api.do(http.MethodPut, "/api/v1/filter", `{"category":"Nothing"}`, ""),
		http.StatusBadRequest, dto.ErrorCodeValidation)

	w := api.do(http.MethodGet, "/api/v1/filter", "", "")
	assert.Equal(t, domain.AllCategories, decode[dto.FilterResponse](t, w).Selected)
}
