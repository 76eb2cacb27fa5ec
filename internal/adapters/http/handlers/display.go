package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/quotesync/internal/adapters/display"
)

// DisplayHandler serves the last frame rendered to the board.
type DisplayHandler struct {
	board *display.Board
}

// NewDisplayHandler creates a display handler.
func NewDisplayHandler(board *display.Board) *DisplayHandler {
	return &DisplayHandler{board: board}
}

// Display handles GET /api/v1/display.
func (h *DisplayHandler) Display(c *gin.Context) {
	c.JSON(http.StatusOK, h.board.Frame())
}

// RegisterDisplayRoutes registers the display route.
func (h *DisplayHandler) RegisterDisplayRoutes(rg *gin.RouterGroup) {
	rg.GET("/display", h.Display)
}
