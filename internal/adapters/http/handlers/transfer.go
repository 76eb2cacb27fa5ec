package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/quotesync/internal/adapters/http/dto"
	"github.com/jsamuelsen/quotesync/internal/app"
)

// importFormField is the multipart field holding an uploaded collection.
const importFormField = "file"

// TransferHandler serves collection export and import.
type TransferHandler struct {
	service *app.TransferService
}

// NewTransferHandler creates a transfer handler.
func NewTransferHandler(service *app.TransferService) *TransferHandler {
	return &TransferHandler{
		service: service,
	}
}

// Export handles GET /api/v1/export as a quotes.json download.
func (h *TransferHandler) Export(c *gin.Context) {
	data, err := h.service.Export(c.Request.Context())
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", app.ExportFilename))
	c.Data(http.StatusOK, "application/json", data)
}

// Import handles POST /api/v1/import. The payload is either a multipart
// upload in the "file" field or the raw JSON body.
//
// @Summary Import quotes
// @Tags transfer
// @Accept json,mpfd
// @Produce json
// @Success 200 {object} dto.ImportResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/v1/import [post]
func (h *TransferHandler) Import(c *gin.Context) {
	data, err := readImportPayload(c)
	if err != nil {
		dto.RespondWithErrorCode(c, dto.ErrorCodeBadRequest, err.Error())
		return
	}

	result, err := h.service.Import(c.Request.Context(), data)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ImportResponse{
		Imported: result.Imported,
		Pushed:   dto.FromBatchResult(result.Pushed),
	})
}

// RegisterTransferRoutes registers export and import.
func (h *TransferHandler) RegisterTransferRoutes(rg *gin.RouterGroup) {
	rg.GET("/export", h.Export)
	rg.POST("/import", h.Import)
}

func readImportPayload(c *gin.Context) ([]byte, error) {
	if !strings.HasPrefix(c.ContentType(), "multipart/") {
		data, err := io.ReadAll(c.Request.Body)
		if err != nil {
			return nil, fmt.Errorf("reading body: %w", err)
		}

		return data, nil
	}

	header, err := c.FormFile(importFormField)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, fmt.Errorf("multipart field %q is required", importFormField)
		}

		return nil, fmt.Errorf("reading upload: %w", err)
	}

	f, err := header.Open()
	if err != nil {
		return nil, fmt.Errorf("opening upload: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("reading upload: %w", err)
	}

	return data, nil
}
