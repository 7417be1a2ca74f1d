package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/jsamuelsen/dailyquote/internal/platform/logging"
)

const (
	// HeaderRequestID identifies one request to this service.
	HeaderRequestID = "X-Request-ID"

	// HeaderCorrelationID spans every request of one caller transaction,
	// including the calls this service makes to the quote feed.
	HeaderCorrelationID = "X-Correlation-ID"

	// gin.Context keys.
	ContextKeyRequestID     = "request_id"
	ContextKeyCorrelationID = "correlation_id"
)

// idKind is one propagated identifier. Each stash stores the ID on the
// request context.
type idKind struct {
	header  string
	key     string
	stashes []func(context.Context, string) context.Context
}

var (
	requestIDKind = idKind{
		header:  HeaderRequestID,
		key:     ContextKeyRequestID,
		stashes: []func(context.Context, string) context.Context{ContextWithRequestID, logging.WithRequestID},
	}

	correlationIDKind = idKind{
		header:  HeaderCorrelationID,
		key:     ContextKeyCorrelationID,
		stashes: []func(context.Context, string) context.Context{ContextWithCorrelationID, logging.WithCorrelationID},
	}
)

// RequestID keeps an incoming X-Request-ID or mints one. The ID is echoed on
// the response, added to the request logger and forwarded to the quote feed.
func RequestID() gin.HandlerFunc {
	return requestIDKind.middleware()
}

// CorrelationID does for X-Correlation-ID what RequestID does for
// X-Request-ID.
func CorrelationID() gin.HandlerFunc {
	return correlationIDKind.middleware()
}

func (k idKind) middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(k.header)
		if id == "" {
			id = uuid.NewString()
		}

		c.Set(k.key, id)
		c.Header(k.header, id)

		ctx := c.Request.Context()
		for _, stash := range k.stashes {
			ctx = stash(ctx, id)
		}

		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// GetRequestID returns the request ID set by RequestID, or "".
func GetRequestID(c *gin.Context) string {
	return c.GetString(ContextKeyRequestID)
}

// GetCorrelationID returns the correlation ID set by CorrelationID, or "".
func GetCorrelationID(c *gin.Context) string {
	return c.GetString(ContextKeyCorrelationID)
}
