package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/dailyquote/internal/adapters/http/dto"
	"github.com/jsamuelsen/dailyquote/internal/app"
	"github.com/jsamuelsen/dailyquote/internal/domain"
)

// SyncHandler triggers and reports on feed synchronization.
type SyncHandler struct {
	service *app.SyncService
}

// NewSyncHandler creates a new sync handler.
func NewSyncHandler(service *app.SyncService) *SyncHandler {
	return &SyncHandler{service: service}
}

// writeResult answers 200 with the result on success and 502 with its
// message otherwise. Sync failures are outcomes, not request errors.
func writeResult(c *gin.Context, result domain.SyncResult) {
	if !result.OK() {
		dto.HandleErrorCode(c, dto.ErrorCodeSyncFailed, result.Message)
		return
	}

	c.JSON(http.StatusOK, result)
}

// Sync handles POST /api/v1/sync?force=.
func (h *SyncHandler) Sync(c *gin.Context) {
	var query dto.SyncQuery
	if err := dto.BindQueryAndValidate(c, &query); err != nil {
		dto.HandleBindError(c, err)
		return
	}

	writeResult(c, h.service.SyncQuotes(c.Request.Context(), query.Force))
}

// Initialize handles POST /api/v1/sync/initialize?force=.
// It falls back to the built-in quotes when the feed cannot be used.
func (h *SyncHandler) Initialize(c *gin.Context) {
	var query dto.SyncQuery
	if err := dto.BindQueryAndValidate(c, &query); err != nil {
		dto.HandleBindError(c, err)
		return
	}

	writeResult(c, h.service.InitializeQuotes(c.Request.Context(), query.Force))
}

// Status handles GET /api/v1/sync/status.
func (h *SyncHandler) Status(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Status(c.Request.Context()))
}

// RemoteCategories handles GET /api/v1/sync/categories.
func (h *SyncHandler) RemoteCategories(c *gin.Context) {
	categories, err := h.service.SyncCategories(c.Request.Context())
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, categories)
}

// RegisterSyncRoutes registers sync routes.
func (h *SyncHandler) RegisterSyncRoutes(rg *gin.RouterGroup) {
	sync := rg.Group("/sync")
	sync.POST("", h.Sync)
	sync.POST("/initialize", h.Initialize)
	sync.GET("/status", h.Status)
	sync.GET("/categories", h.RemoteCategories)
}
