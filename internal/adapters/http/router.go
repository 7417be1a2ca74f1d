package http

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/dailyquote/internal/adapters/http/handlers"
	"github.com/jsamuelsen/dailyquote/internal/adapters/http/middleware"
	"github.com/jsamuelsen/dailyquote/internal/platform/config"
	"github.com/jsamuelsen/dailyquote/internal/platform/telemetry"
)

// DefaultRequestTimeout is the default timeout for API requests.
const DefaultRequestTimeout = 30 * time.Second

// RouterConfig contains configuration for setting up the router.
// Nil handlers leave their routes unregistered.
type RouterConfig struct {
	// Logger is the structured logger for request logging.
	Logger *slog.Logger

	// AppConfig contains application configuration.
	AppConfig *config.AppConfig

	HealthHandler      *handlers.HealthHandler
	QuoteHandler       *handlers.QuoteHandler
	TodayHandler       *handlers.TodayHandler
	SyncHandler        *handlers.SyncHandler
	MaintenanceHandler *handlers.MaintenanceHandler
	StreamHandler      *handlers.StreamHandler

	// Timeout is the deadline of API requests. Streams are exempt.
	Timeout time.Duration
}

// SetupRouter configures all routes and middleware on the Gin engine.
// Middleware is applied in the following order (first to last):
//  1. Recovery - catch panics first
//  2. Request ID - generate/extract request ID
//  3. Correlation ID - handle distributed tracing correlation
//  4. OpenTelemetry - tracing, then request metrics
//  5. Logging - request logging (skips health endpoints)
//  6. Timeout - request deadline on /api/v1 except live views
//
// Route groups:
//   - /-/ (internal): Health endpoints
//   - /api/v1/ (public API): quotes, quote of the day, sync and maintenance
//   - /api/v1/stream/ (public API): server-sent live views
func SetupRouter(engine *gin.Engine, cfg RouterConfig) {
	engine.Use(
		middleware.Recovery(cfg.Logger),
		middleware.RequestID(),
		middleware.CorrelationID(),
		telemetry.TracingMiddleware(cfg.AppConfig.Name),
		telemetry.Middleware(),
		middleware.Logging(cfg.Logger),
	)

	// Probes run without a deadline
	if cfg.HealthHandler != nil {
		cfg.HealthHandler.RegisterHealthRoutes(engine.Group("/-"))
	}

	if cfg.StreamHandler != nil {
		cfg.StreamHandler.RegisterStreamRoutes(engine.Group("/api/v1"))
	}

	apiV1 := engine.Group("/api/v1")
	if cfg.Timeout > 0 {
		apiV1.Use(middleware.Timeout(cfg.Timeout))
	}

	setupAPIRoutes(apiV1, cfg)
}

// setupAPIRoutes registers the business API routes.
func setupAPIRoutes(rg *gin.RouterGroup, cfg RouterConfig) {
	if cfg.QuoteHandler != nil {
		cfg.QuoteHandler.RegisterQuoteRoutes(rg)
	}

	if cfg.TodayHandler != nil {
		cfg.TodayHandler.RegisterTodayRoutes(rg)
	}

	if cfg.SyncHandler != nil {
		cfg.SyncHandler.RegisterSyncRoutes(rg)
	}

	if cfg.MaintenanceHandler != nil {
		cfg.MaintenanceHandler.RegisterMaintenanceRoutes(rg)
	}
}
