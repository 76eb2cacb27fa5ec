package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/quotesync/internal/adapters/http/dto"
	"github.com/jsamuelsen/quotesync/internal/adapters/http/middleware"
	"github.com/jsamuelsen/quotesync/internal/app"
)

// QuoteHandler handles browsing, authoring and filter endpoints.
type QuoteHandler struct {
	service *app.QuoteService
}

// NewQuoteHandler creates a new quote handler.
func NewQuoteHandler(service *app.QuoteService) *QuoteHandler {
	return &QuoteHandler{
		service: service,
	}
}

// ListQuotes handles GET /api/v1/quotes.
//
// @Summary List quotes
// @Description Lists the collection in order, optionally filtered by category
// @Tags quotes
// @Produce json
// @Param category query string false "Category, or all"
// @Param limit query int false "Page size (1-100)"
// @Param cursor query string false "Cursor from a previous page"
// @Success 200 {object} dto.PaginatedResponse[dto.QuoteResponse]
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/v1/quotes [get]
func (h *QuoteHandler) ListQuotes(c *gin.Context) {
	var req dto.ListQuotesRequest
	if err := dto.BindQueryAndValidate(c, &req); err != nil {
		dto.RespondWithBindError(c, err)
		return
	}

	offset, err := req.Offset()
	if err != nil {
		dto.RespondWithErrorCode(c, dto.ErrorCodeBadRequest, err.Error())
		return
	}

	quotes := h.service.ListQuotes(c.Request.Context(), req.Category)

	c.JSON(http.StatusOK, dto.Paginate(dto.FromQuotes(quotes), offset, req.GetLimit()))
}

// AddQuote handles POST /api/v1/quotes. The quote is stored locally and
// reaches the remote on the next sync.
//
// @Summary Add a quote
// @Tags quotes
// @Accept json
// @Produce json
// @Param quote body dto.AddQuoteRequest true "Quote"
// @Success 201 {object} dto.QuoteResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/v1/quotes [post]
func (h *QuoteHandler) AddQuote(c *gin.Context) {
	var req dto.AddQuoteRequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		dto.RespondWithBindError(c, err)
		return
	}

	quote, err := h.service.AddQuote(c.Request.Context(), req.Text, req.Category)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.FromQuote(quote))
}

// RandomQuote handles GET /api/v1/quotes/random. Without a category query
// the persisted filter applies. An empty selection is not an error: the
// response carries the placeholder text instead of a quote.
func (h *QuoteHandler) RandomQuote(c *gin.Context) {
	var req dto.RandomQuoteRequest
	if err := dto.BindQueryAndValidate(c, &req); err != nil {
		dto.RespondWithBindError(c, err)
		return
	}

	display, err := h.service.RandomQuote(c.Request.Context(), middleware.GetSessionID(c), req.Category)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewDisplayResponse(display.Quote, display.Text))
}

// LastQuote handles GET /api/v1/quotes/last.
func (h *QuoteHandler) LastQuote(c *gin.Context) {
	quote, err := h.service.LastQuote(c.Request.Context(), middleware.GetSessionID(c))
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromQuote(quote))
}

// Categories handles GET /api/v1/categories.
func (h *QuoteHandler) Categories(c *gin.Context) {
	categories, selected := h.service.Categories(c.Request.Context())

	c.JSON(http.StatusOK, dto.CategoriesResponse{
		Categories: categories,
		Selected:   selected,
	})
}

// GetFilter handles GET /api/v1/filter.
func (h *QuoteHandler) GetFilter(c *gin.Context) {
	c.JSON(http.StatusOK, dto.FilterResponse{Selected: h.service.SelectedCategory(c.Request.Context())})
}

// SelectFilter handles PUT /api/v1/filter. The selection is persisted and a
// quote from the new category is returned.
//
// @Summary Select the category filter
// @Tags filter
// @Accept json
// @Produce json
// @Param filter body dto.SelectFilterRequest true "Category"
// @Success 200 {object} dto.DisplayResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/v1/filter [put]
func (h *QuoteHandler) SelectFilter(c *gin.Context) {
	var req dto.SelectFilterRequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		dto.RespondWithBindError(c, err)
		return
	}

	display, err := h.service.SelectCategory(c.Request.Context(), middleware.GetSessionID(c), req.Category)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewDisplayResponse(display.Quote, display.Text))
}

// RegisterQuoteRoutes registers quote, category and filter routes.
func (h *QuoteHandler) RegisterQuoteRoutes(rg *gin.RouterGroup) {
	quotes := rg.Group("/quotes")
	quotes.GET("", h.ListQuotes)
	quotes.POST("", h.AddQuote)
	quotes.GET("/random", h.RandomQuote)
	quotes.GET("/last", h.LastQuote)

	rg.GET("/categories", h.Categories)
	rg.GET("/filter", h.GetFilter)
	rg.PUT("/filter", h.SelectFilter)
}
