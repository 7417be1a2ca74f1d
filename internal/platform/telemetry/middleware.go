package telemetry

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen/dailyquote/internal/platform/logging"
)

// HeaderTraceID echoes the active trace ID back to the caller.
const HeaderTraceID = "X-Trace-ID"

// httpMetrics are the server-side request instruments.
type httpMetrics struct {
	duration metric.Float64Histogram
	requests metric.Int64Counter
	inFlight metric.Int64UpDownCounter
}

func newHTTPMetrics() (*httpMetrics, error) {
	meter := Meter("http")

	duration, err := meter.Float64Histogram(
		"http.server.request.duration",
		metric.WithDescription("HTTP request duration in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}

	requests, err := meter.Int64Counter(
		"http.server.request.total",
		metric.WithDescription("HTTP requests by API area and status"),
	)
	if err != nil {
		return nil, err
	}

	inFlight, err := meter.Int64UpDownCounter(
		"http.server.active_requests",
		metric.WithDescription("HTTP requests in flight, including open quote streams"),
	)
	if err != nil {
		return nil, err
	}

	return &httpMetrics{duration: duration, requests: requests, inFlight: inFlight}, nil
}

// APIArea buckets a route template into the part of the API it serves:
// probe, quotes, today, sync, maintenance, stream or other.
func APIArea(route string) string {
	if strings.HasPrefix(route, "/-/") {
		return "probe"
	}

	rest, ok := strings.CutPrefix(route, "/api/v1/")
	if !ok {
		return "other"
	}

	area, _, _ := strings.Cut(rest, "/")

	switch area {
	case "quotes", "categories", "authors", "favorites", "stats":
		return "quotes"
	case "today", "sync", "maintenance", "stream":
		return area
	default:
		return "other"
	}
}

// Middleware records request metrics, sets X-Trace-ID and adds the trace ID
// to the request logger. It must run after TracingMiddleware.
func Middleware() gin.HandlerFunc {
	// Requests are still served when the instruments cannot be created.
	metrics, err := newHTTPMetrics()
	if err != nil {
		otel.Handle(err)
	}

	return func(c *gin.Context) {
		if sc := trace.SpanFromContext(c.Request.Context()).SpanContext(); sc.HasTraceID() {
			traceID := sc.TraceID().String()
			c.Header(HeaderTraceID, traceID)
			c.Request = c.Request.WithContext(logging.WithTraceID(c.Request.Context(), traceID))
		}

		if metrics == nil {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		start := time.Now()
		route := attribute.String("http.route", c.FullPath())
		method := attribute.String("http.method", c.Request.Method)
		area := attribute.String("api.area", APIArea(c.FullPath()))

		active := metric.WithAttributes(method, route, area)
		metrics.inFlight.Add(ctx, 1, active)
		defer metrics.inFlight.Add(ctx, -1, active)

		c.Next()

		done := metric.WithAttributes(method, route, area, attribute.Int("http.status_code", c.Writer.Status()))
		metrics.duration.Record(ctx, time.Since(start).Seconds(), done)
		metrics.requests.Add(ctx, 1, done)
	}
}

// TracingMiddleware returns the otelgin tracing middleware.
func TracingMiddleware(serviceName string) gin.HandlerFunc {
	return otelgin.Middleware(serviceName)
}
