package telemetry

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
)

func TestNew_Disabled(t *testing.T) {
	provider, err := New(context.Background(), &Config{Enabled: false})
	require.NoError(t, err)

	assert.NoError(t, provider.Shutdown(context.Background()))
}

func TestSampler(t *testing.T) {
	tests := map[float64]string{
		1:    "AlwaysOnSampler",
		2:    "AlwaysOnSampler",
		0:    "AlwaysOffSampler",
		-1:   "AlwaysOffSampler",
		0.25: "TraceIDRatioBased{0.25}",
	}

	for rate, want := range tests {
		desc := sampler(rate).Description()

		assert.True(t, strings.HasPrefix(desc, "ParentBased{root:"+want), desc)
	}
}

func TestNew_InstallsPropagator(t *testing.T) {
	_, err := New(context.Background(), &Config{})
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"traceparent", "tracestate", "baggage"}, otel.GetTextMapPropagator().Fields())
}

func TestTracerAndMeter_NoopWhenDisabled(t *testing.T) {
	_, span := Tracer("feed").Start(context.Background(), "fetch")
	defer span.End()

	assert.False(t, span.SpanContext().IsSampled())
	assert.NotNil(t, Meter("sync"))
}

func TestMiddleware_PassesThrough(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(TracingMiddleware("dailyquote"), Middleware())
	router.GET("/ping", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", http.NoBody))

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestAPIArea(t *testing.T) {
	tests := map[string]string{
		"/-/ready":                            "probe",
		"/api/v1/quotes/:id/favorite":         "quotes",
		"/api/v1/categories":                  "quotes",
		"/api/v1/authors/suggest":             "quotes",
		"/api/v1/today":                       "today",
		"/api/v1/today/history":               "today",
		"/api/v1/sync/initialize":             "sync",
		"/api/v1/maintenance/authors/:author": "maintenance",
		"/api/v1/stream/favorites":            "stream",
		"/api/v1/unknown":                     "other",
		"":                                    "other",
		"/metrics":                            "other",
	}

	for route, want := range tests {
		assert.Equal(t, want, APIArea(route), "route %q", route)
	}
}
