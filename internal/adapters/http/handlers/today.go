package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/dailyquote/internal/adapters/http/dto"
	"github.com/jsamuelsen/dailyquote/internal/app"
)

// TodayHandler serves the quote of the day and its history.
type TodayHandler struct {
	rotation *app.RotationService
}

// NewTodayHandler creates a new quote-of-the-day handler.
func NewTodayHandler(rotation *app.RotationService) *TodayHandler {
	return &TodayHandler{rotation: rotation}
}

// Today handles GET /api/v1/today.
// The first request of a day assigns the quote; later requests return it unchanged.
func (h *TodayHandler) Today(c *gin.Context) {
	quote, err := h.rotation.GetOrCreateTodayQuote(c.Request.Context())
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.TodayResponse{
		Date:  h.rotation.Today(),
		Quote: dto.NewQuoteResponse(quote),
	})
}

// ResetToday handles DELETE /api/v1/today.
func (h *TodayHandler) ResetToday(c *gin.Context) {
	n, err := h.rotation.ResetTodayQuote(c.Request.Context())
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.AffectedResponse{Operation: "reset_today", Affected: n})
}

// History handles GET /api/v1/today/history.
func (h *TodayHandler) History(c *gin.Context) {
	var query dto.HistoryQuery
	if err := dto.BindQueryAndValidate(c, &query); err != nil {
		dto.HandleBindError(c, err)
		return
	}

	quotes, err := h.rotation.RecentlyShown(c.Request.Context(), query.GetLimit())
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewQuoteResponses(quotes))
}

// ResetHistory handles DELETE /api/v1/today/history, restarting the rotation.
func (h *TodayHandler) ResetHistory(c *gin.Context) {
	n, err := h.rotation.ResetAllShown(c.Request.Context())
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.AffectedResponse{Operation: "reset_history", Affected: n})
}

// RegisterTodayRoutes registers quote-of-the-day routes.
func (h *TodayHandler) RegisterTodayRoutes(rg *gin.RouterGroup) {
	today := rg.Group("/today")
	today.GET("", h.Today)
	today.DELETE("", h.ResetToday)
	today.GET("/history", h.History)
	today.DELETE("/history", h.ResetHistory)
}
