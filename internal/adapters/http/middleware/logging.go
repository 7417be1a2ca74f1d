package middleware

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/dailyquote/internal/platform/logging"
)

const (
	probePrefix  = "/-/"
	streamPrefix = "/api/v1/stream/"
)

// Logging writes one record per finished request. Probes are not logged.
// The request's context logger is used when present, logger otherwise.
func Logging(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if strings.HasPrefix(path, probePrefix) {
			c.Next()
			return
		}

		start := time.Now()
		target := c.Request.URL.RequestURI()

		c.Next()

		status := c.Writer.Status()
		ctx := c.Request.Context()

		logging.FromContextOr(ctx, logger).Log(ctx, requestLevel(path, status), "request completed",
			slog.String("method", c.Request.Method),
			slog.String("path", target),
			slog.String("route", c.FullPath()),
			slog.Int("status", status),
			slog.Duration("latency", time.Since(start)),
			slog.Int("bytes", c.Writer.Size()),
			slog.String("client_ip", c.ClientIP()),
		)
	}
}

// requestLevel grades a finished request by status. Healthy live-view
// streams, which stay open for minutes, drop to debug.
func requestLevel(path string, status int) slog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return slog.LevelError
	case status >= http.StatusBadRequest:
		return slog.LevelWarn
	case strings.HasPrefix(path, streamPrefix):
		return slog.LevelDebug
	default:
		return slog.LevelInfo
	}
}
