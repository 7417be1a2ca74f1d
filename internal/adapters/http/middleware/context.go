// Package middleware provides HTTP middleware for the Gin framework.
package middleware

import (
	"context"
	"net/http"
)

// requestIDs are the identifiers a request carries to the quote feed.
type requestIDs struct {
	request     string
	correlation string
}

// idsKey is the context.Context key of requestIDs.
type idsKey struct{}

func idsFromContext(ctx context.Context) requestIDs {
	if ctx == nil {
		return requestIDs{}
	}

	ids, _ := ctx.Value(idsKey{}).(requestIDs)

	return ids
}

// RequestIDFromContext returns the request ID stored by RequestID, or "".
func RequestIDFromContext(ctx context.Context) string {
	return idsFromContext(ctx).request
}

// CorrelationIDFromContext returns the correlation ID stored by CorrelationID, or "".
func CorrelationIDFromContext(ctx context.Context) string {
	return idsFromContext(ctx).correlation
}

// ContextWithRequestID stores a request ID, keeping any correlation ID.
func ContextWithRequestID(ctx context.Context, id string) context.Context {
	ids := idsFromContext(ctx)
	ids.request = id

	return context.WithValue(ctx, idsKey{}, ids)
}

// ContextWithCorrelationID stores a correlation ID, keeping any request ID.
func ContextWithCorrelationID(ctx context.Context, id string) context.Context {
	ids := idsFromContext(ctx)
	ids.correlation = id

	return context.WithValue(ctx, idsKey{}, ids)
}

// PropagateIDs sets X-Request-ID and X-Correlation-ID on an outbound request
// from the IDs in ctx. Missing IDs leave the header untouched.
func PropagateIDs(ctx context.Context, h http.Header) {
	ids := idsFromContext(ctx)

	if ids.request != "" {
		h.Set(HeaderRequestID, ids.request)
	}

	if ids.correlation != "" {
		h.Set(HeaderCorrelationID, ids.correlation)
	}
}
