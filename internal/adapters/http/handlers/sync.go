package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/quotesync/internal/adapters/http/dto"
	"github.com/jsamuelsen/quotesync/internal/app/reconcile"
)

// SyncHandler exposes manual sync and the reconciler's state.
type SyncHandler struct {
	scheduler  *reconcile.Scheduler
	reconciler *reconcile.Reconciler
	status     *reconcile.StatusBoard
}

// NewSyncHandler creates a sync handler. Manual runs go through scheduler,
// which drives reconciler.
func NewSyncHandler(scheduler *reconcile.Scheduler, reconciler *reconcile.Reconciler, status *reconcile.StatusBoard) *SyncHandler {
	return &SyncHandler{
		scheduler:  scheduler,
		reconciler: reconciler,
		status:     status,
	}
}

// Sync handles POST /api/v1/sync. It runs a pass, or joins the one in
// flight, and returns its result. A failed pass is reported in the body
// with status 200; local state is untouched by the failure.
//
// @Summary Synchronize with the remote
// @Tags sync
// @Produce json
// @Success 200 {object} dto.SyncResultResponse
// @Router /api/v1/sync [post]
func (h *SyncHandler) Sync(c *gin.Context) {
	result := h.scheduler.RunNow(c.Request.Context())

	c.JSON(http.StatusOK, dto.FromSyncResult(result))
}

// Status handles GET /api/v1/sync/status.
func (h *SyncHandler) Status(c *gin.Context) {
	status, since := h.status.Current()

	resp := dto.SyncStatusResponse{
		Status:  status,
		Message: status.Message(),
		Color:   status.Color(),
		Since:   since,
		Running: h.reconciler.Running(),
		Phase:   string(h.reconciler.Phase()),
	}

	if last, ok := h.reconciler.Last(); ok {
		r := dto.FromSyncResult(last)
		resp.Last = &r
	}

	c.JSON(http.StatusOK, resp)
}

// RegisterSyncRoutes registers the sync routes.
func (h *SyncHandler) RegisterSyncRoutes(rg *gin.RouterGroup) {
	rg.POST("/sync", h.Sync)
	rg.GET("/sync/status", h.Status)
}
