package http

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/dailyquote/internal/adapters/http/dto"
	"github.com/jsamuelsen/dailyquote/internal/adapters/http/handlers"
	"github.com/jsamuelsen/dailyquote/internal/adapters/http/middleware"
	"github.com/jsamuelsen/dailyquote/internal/adapters/storage/sqlite"
	"github.com/jsamuelsen/dailyquote/internal/app"
	"github.com/jsamuelsen/dailyquote/internal/domain"
	"github.com/jsamuelsen/dailyquote/internal/platform/clock"
	"github.com/jsamuelsen/dailyquote/internal/platform/config"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// offlineFeed is a feed that is never reachable.
type offlineFeed struct{}

func (offlineFeed) Ping(context.Context) error {
	return domain.NewUnavailableError("quote feed", "offline")
}

func (offlineFeed) FetchQuotes(context.Context) ([]domain.FeedQuote, error) {
	return nil, domain.NewUnavailableError("quote feed", "offline")
}

func (offlineFeed) FetchCategories(context.Context) ([]domain.Category, error) {
	return nil, domain.NewUnavailableError("quote feed", "offline")
}

func (offlineFeed) FetchMetadata(context.Context) (*domain.SpreadsheetInfo, error) {
	return nil, domain.NewUnavailableError("quote feed", "offline")
}

// newTestRouter wires every handler over an in-memory store seeded with the
// built-in quotes.
func newTestRouter(t *testing.T, timeout time.Duration) *gin.Engine {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	store, err := sqlite.Open(context.Background(), sqlite.Config{Path: sqlite.MemoryPath}, logger)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	quotes := app.NewQuoteService(app.QuoteServiceConfig{Store: store, Logger: logger})
	rotation := app.NewRotationService(app.RotationServiceConfig{
		Store:  store,
		Clock:  clock.NewManual(time.Date(2024, time.June, 1, 8, 0, 0, 0, time.UTC)),
		Logger: logger,
	})
	syncer := app.NewSyncService(app.SyncServiceConfig{Store: store, Feed: offlineFeed{}, Logger: logger})

	require.True(t, syncer.InitializeQuotes(context.Background(), false).OK())

	engine := gin.New()
	SetupRouter(engine, RouterConfig{
		Logger: logger,
		AppConfig: &config.AppConfig{
			Name:        "dailyquote",
			Environment: "test",
			Version:     "1.0.0",
		},
		HealthHandler:      handlers.NewHealthHandler(nil, handlers.BuildInfo{Version: "1.0.0"}),
		QuoteHandler:       handlers.NewQuoteHandler(quotes),
		TodayHandler:       handlers.NewTodayHandler(rotation),
		SyncHandler:        handlers.NewSyncHandler(syncer),
		MaintenanceHandler: handlers.NewMaintenanceHandler(quotes),
		StreamHandler:      handlers.NewStreamHandler(quotes, 50*time.Millisecond),
		Timeout:            timeout,
	})

	return engine
}

func TestSetupRouter(t *testing.T) {
	engine := newTestRouter(t, DefaultRequestTimeout)

	tests := []struct {
		name           string
		method         string
		path           string
		expectedStatus int
	}{
		{name: "liveness", method: http.MethodGet, path: "/-/live", expectedStatus: http.StatusOK},
		{name: "quote of the day", method: http.MethodGet, path: "/api/v1/today", expectedStatus: http.StatusOK},
		{name: "quote list", method: http.MethodGet, path: "/api/v1/quotes?limit=5", expectedStatus: http.StatusOK},
		{name: "single quote", method: http.MethodGet, path: "/api/v1/quotes/1", expectedStatus: http.StatusOK},
		{name: "stats", method: http.MethodGet, path: "/api/v1/stats", expectedStatus: http.StatusOK},
		{name: "sync status", method: http.MethodGet, path: "/api/v1/sync/status", expectedStatus: http.StatusOK},
		{name: "offline remote categories", method: http.MethodGet, path: "/api/v1/sync/categories", expectedStatus: http.StatusServiceUnavailable},
		{name: "offline forced sync", method: http.MethodPost, path: "/api/v1/sync?force=true", expectedStatus: http.StatusBadGateway},
		{name: "deduplicate", method: http.MethodPost, path: "/api/v1/maintenance/deduplicate", expectedStatus: http.StatusOK},
		{name: "unknown route", method: http.MethodGet, path: "/api/v1/nope", expectedStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			engine.ServeHTTP(w, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, tt.expectedStatus, w.Code, w.Body.String())
			assert.NotEmpty(t, w.Header().Get(middleware.HeaderRequestID))
		})
	}
}

func TestSetupRouter_ErrorEnvelopeCarriesRequestID(t *testing.T) {
	engine := newTestRouter(t, DefaultRequestTimeout)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/quotes/9999", nil)
	req.Header.Set(middleware.HeaderRequestID, "req-404")

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, dto.ErrorCodeNotFound, resp.Error.Code)
	assert.Equal(t, "req-404", resp.TraceID)
}

func TestSetupRouter_RequestTimeout(t *testing.T) {
	engine := newTestRouter(t, time.Nanosecond)

	t.Run("API requests surface an expired deadline", func(t *testing.T) {
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/stats", nil))

		require.Equal(t, http.StatusGatewayTimeout, w.Code)

		var resp dto.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, dto.ErrorCodeTimeout, resp.Error.Code)
	})

	t.Run("probes have no deadline", func(t *testing.T) {
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/-/live", nil))

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("streams have no request deadline", func(t *testing.T) {
		w := &closeNotifyingRecorder{ResponseRecorder: httptest.NewRecorder(), closed: make(chan bool)}
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/stream/quotes", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "event:quotes")
	})
}

// closeNotifyingRecorder satisfies http.CloseNotifier, which gin's Stream requires.
type closeNotifyingRecorder struct {
	*httptest.ResponseRecorder
	closed chan bool
}

func (r *closeNotifyingRecorder) CloseNotify() <-chan bool {
	return r.closed
}

func TestSetupRouterWithNilHandlers(t *testing.T) {
	engine := gin.New()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	cfg := RouterConfig{
		Logger:        logger,
		AppConfig:     &config.AppConfig{Name: "dailyquote", Environment: "test", Version: "1.0.0"},
		HealthHandler: handlers.NewHealthHandler(nil, handlers.BuildInfo{}),
		Timeout:       0,
	}

	require.NotPanics(t, func() {
		SetupRouter(engine, cfg)
	})

	for _, route := range engine.Routes() {
		assert.NotContains(t, route.Path, "/api/v1", "no API route without handlers")
	}
}
