package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/dailyquote/internal/adapters/http/dto"
	"github.com/jsamuelsen/dailyquote/internal/platform/logging"
)

// Recovery turns a handler panic into a 500 error envelope and logs it with
// the stack. Register it first so it covers every other middleware.
//
// gin's own writer output is discarded; the panic is logged once, here.
func Recovery(logger *slog.Logger) gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(io.Discard, func(c *gin.Context, recovered any) {
		traceID := dto.GetTraceID(c)

		logging.FromContextOr(c.Request.Context(), logger).Error("panic recovered",
			slog.Any("error", recovered),
			slog.String("stack", string(debug.Stack())),
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.String("trace_id", traceID),
		)

		if c.Writer.Written() {
			c.Abort()
			return
		}

		c.AbortWithStatusJSON(http.StatusInternalServerError,
			dto.NewErrorResponse(dto.ErrorCodeInternal, "an internal error occurred").WithTraceID(traceID))
	})
}
