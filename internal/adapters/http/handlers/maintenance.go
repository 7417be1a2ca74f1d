package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/dailyquote/internal/adapters/http/dto"
	"github.com/jsamuelsen/dailyquote/internal/app"
)

// MaintenanceHandler exposes bulk cleanup of the local store.
type MaintenanceHandler struct {
	service *app.QuoteService
}

// NewMaintenanceHandler creates a new maintenance handler.
func NewMaintenanceHandler(service *app.QuoteService) *MaintenanceHandler {
	return &MaintenanceHandler{service: service}
}

// run executes a maintenance task and reports the affected count.
func run(c *gin.Context, operation string, task func(context.Context) (int, error)) {
	n, err := task(c.Request.Context())
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.AffectedResponse{Operation: operation, Affected: n})
}

// ClearFavorites handles DELETE /api/v1/maintenance/favorites.
func (h *MaintenanceHandler) ClearFavorites(c *gin.Context) {
	run(c, "clear_favorites", h.service.ClearFavorites)
}

// DeleteInvalid handles DELETE /api/v1/maintenance/invalid.
func (h *MaintenanceHandler) DeleteInvalid(c *gin.Context) {
	run(c, "delete_invalid", h.service.DeleteInvalid)
}

// RemoveDuplicates handles POST /api/v1/maintenance/deduplicate.
func (h *MaintenanceHandler) RemoveDuplicates(c *gin.Context) {
	run(c, "remove_duplicates", h.service.RemoveDuplicates)
}

// DeleteByCategory handles DELETE /api/v1/maintenance/categories/:category.
func (h *MaintenanceHandler) DeleteByCategory(c *gin.Context) {
	category := c.Param("category")

	run(c, "delete_by_category", func(ctx context.Context) (int, error) {
		return h.service.DeleteByCategory(ctx, category)
	})
}

// DeleteByAuthor handles DELETE /api/v1/maintenance/authors/:author.
func (h *MaintenanceHandler) DeleteByAuthor(c *gin.Context) {
	author := c.Param("author")

	run(c, "delete_by_author", func(ctx context.Context) (int, error) {
		return h.service.DeleteByAuthor(ctx, author)
	})
}

// RegisterMaintenanceRoutes registers maintenance routes.
func (h *MaintenanceHandler) RegisterMaintenanceRoutes(rg *gin.RouterGroup) {
	m := rg.Group("/maintenance")
	m.DELETE("/favorites", h.ClearFavorites)
	m.DELETE("/invalid", h.DeleteInvalid)
	m.POST("/deduplicate", h.RemoveDuplicates)
	m.DELETE("/categories/:category", h.DeleteByCategory)
	m.DELETE("/authors/:author", h.DeleteByAuthor)
}
