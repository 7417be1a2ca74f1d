package handlers

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/dailyquote/internal/adapters/http/dto"
	"github.com/jsamuelsen/dailyquote/internal/app"
	"github.com/jsamuelsen/dailyquote/internal/domain"
	"github.com/jsamuelsen/dailyquote/internal/platform/logging"
)

// snapshotEvent is the SSE event name of a live-view snapshot.
const snapshotEvent = "quotes"

// StreamHandler pushes live views of the store as server-sent events.
// A snapshot is sent on connect and after every change.
type StreamHandler struct {
	service     *app.QuoteService
	maxDuration time.Duration
}

// NewStreamHandler creates a stream handler. Each stream ends after
// maxDuration; clients are expected to reconnect.
func NewStreamHandler(service *app.QuoteService, maxDuration time.Duration) *StreamHandler {
	return &StreamHandler{service: service, maxDuration: maxDuration}
}

// StreamQuotes handles GET /api/v1/stream/quotes.
func (h *StreamHandler) StreamQuotes(c *gin.Context) {
	h.stream(c, "all", h.service.WatchAll)
}

// StreamFavorites handles GET /api/v1/stream/favorites.
func (h *StreamHandler) StreamFavorites(c *gin.Context) {
	h.stream(c, "favorites", h.service.WatchFavorites)
}

func (h *StreamHandler) stream(
	c *gin.Context,
	view string,
	watch func(context.Context) (<-chan []domain.Quote, error),
) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.maxDuration)
	defer cancel()

	updates, err := watch(ctx)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	logger := logging.FromContext(ctx)
	logger.Debug("live view opened", slog.String("view", view))

	c.Header("Cache-Control", "no-cache")
	c.Header("X-Accel-Buffering", "no")

	sent := 0

	c.Stream(func(io.Writer) bool {
		select {
		case quotes, ok := <-updates:
			if !ok {
				return false
			}

			c.SSEvent(snapshotEvent, dto.NewQuoteResponses(quotes))
			sent++

			return true
		case <-ctx.Done():
			return false
		}
	})

	logger.Debug("live view closed", slog.String("view", view), slog.Int("snapshots", sent))
}

// RegisterStreamRoutes registers the live-view routes. The group must not
// carry the request timeout.
func (h *StreamHandler) RegisterStreamRoutes(rg *gin.RouterGroup) {
	stream := rg.Group("/stream")
	stream.GET("/quotes", h.StreamQuotes)
	stream.GET("/favorites", h.StreamFavorites)
}
