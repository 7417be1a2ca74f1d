// Package main runs the daily quote service: the quote store, the feed sync
// and the HTTP API in one process.
package main

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/jsamuelsen/dailyquote/internal/adapters/clients"
	"github.com/jsamuelsen/dailyquote/internal/adapters/clients/acl"
	"github.com/jsamuelsen/dailyquote/internal/adapters/http"
	"github.com/jsamuelsen/dailyquote/internal/adapters/http/handlers"
	"github.com/jsamuelsen/dailyquote/internal/adapters/storage/sqlite"
	"github.com/jsamuelsen/dailyquote/internal/app"
	"github.com/jsamuelsen/dailyquote/internal/platform/clock"
	"github.com/jsamuelsen/dailyquote/internal/platform/config"
	"github.com/jsamuelsen/dailyquote/internal/platform/logging"
	"github.com/jsamuelsen/dailyquote/internal/platform/telemetry"
	"github.com/jsamuelsen/dailyquote/internal/ports"
)

// Set with -ldflags "-X main.Version=... -X main.Commit=... -X main.BuildTime=...".
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "quoted: %v\n", err)
		stop()
		os.Exit(1)
	}
}

// core is the wired application: the store, its feed and the services over them.
type core struct {
	store    *sqlite.Store
	health   *ports.DefaultHealthRegistry
	quotes   *app.QuoteService
	rotation *app.RotationService
	sync     *app.SyncService
}

func run(ctx context.Context) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger := newLogger(cfg)
	logging.SetDefault(logger)
	logger.Info("quoted starting",
		slog.String("version", Version),
		slog.String("commit", Commit),
		slog.String("environment", cfg.App.Environment),
		slog.String("store", cfg.Storage.Path),
	)

	tel, err := telemetry.New(ctx, &telemetry.Config{
		Enabled:      cfg.Telemetry.Enabled,
		Endpoint:     cfg.Telemetry.Endpoint,
		ServiceName:  cfg.Telemetry.ServiceName,
		Version:      cfg.App.Version,
		Environment:  cfg.App.Environment,
		SamplingRate: cfg.Telemetry.SamplingRate,
		Insecure:     cfg.Telemetry.Insecure,
	})
	if err != nil {
		return fmt.Errorf("telemetry: %w", err)
	}

	defer func() {
		if err := tel.Shutdown(context.WithoutCancel(ctx)); err != nil {
			logger.Error("telemetry shutdown failed", slog.Any("error", err))
		}
	}()

	c, err := wire(ctx, cfg, logger)
	if err != nil {
		return err
	}

	defer func() {
		if err := c.store.Close(); err != nil {
			logger.Error("closing quote store failed", slog.Any("error", err))
		}
	}()

	initCtx, cancelInit := context.WithTimeout(ctx, cfg.Sync.Timeout)
	result := c.sync.InitializeQuotes(initCtx, cfg.Sync.ForceOnStart)
	cancelInit()

	logger.Info("quotes initialized",
		slog.Bool("success", result.OK()),
		slog.String("message", result.Message),
		slog.Int("quotes", result.QuotesCount),
	)

	workerCtx, stopWorker := context.WithCancel(ctx)

	var workers sync.WaitGroup
	if cfg.Sync.Enabled {
		worker := app.NewSyncWorker(app.SyncWorkerConfig{
			Syncer:   c.sync,
			Interval: cfg.Sync.Interval,
			Force:    cfg.Sync.PeriodicForce,
			Timeout:  cfg.Sync.Timeout,
			Logger:   logger,
		})
		workers.Go(func() { worker.Run(workerCtx) })
	}

	defer func() {
		stopWorker()
		workers.Wait()
	}()

	return serve(ctx, cfg, logger, c)
}

// loadConfig reads the profile named by APP_ENVIRONMENT ("local" when unset)
// and validates it.
func loadConfig() (*config.Config, error) {
	profile := cmp.Or(os.Getenv("APP_ENVIRONMENT"), "local")

	cfg, err := config.Load(profile)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config profile %q: %w", profile, err)
	}

	return cfg, nil
}

func newLogger(cfg *config.Config) *slog.Logger {
	file := cfg.Log.File

	return logging.New(&logging.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: cfg.App.Name,
		Version: cfg.App.Version,
		File: logging.FileConfig{
			Enabled:    file.Enabled,
			Path:       file.Path,
			MaxSizeMB:  file.MaxSizeMB,
			MaxBackups: file.MaxBackups,
			MaxAgeDays: file.MaxAgeDays,
			Compress:   file.Compress,
		},
	})
}

// wire opens the store, builds the feed behind the instrumented client and
// assembles the services. The feed is an optional health check: cached quotes
// keep the service useful while the sheet is unreachable.
func wire(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*core, error) {
	store, err := sqlite.Open(ctx, sqlite.Config{
		Path:        cfg.Storage.Path,
		BusyTimeout: cfg.Storage.BusyTimeout,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("opening quote store: %w", err)
	}

	c, err := assemble(cfg, logger, store)
	if err != nil {
		return nil, errors.Join(err, store.Close())
	}

	return c, nil
}

func assemble(cfg *config.Config, logger *slog.Logger, store *sqlite.Store) (*core, error) {
	client, err := clients.New(&clients.Config{
		BaseURL:     cfg.Feed.BaseURL,
		ServiceName: cfg.Feed.Name,
		Timeout:     cfg.Client.Timeout,
		Circuit:     cfg.Client.CircuitBreaker,
		Transport:   cfg.Client.Transport,
		AuthFunc:    acl.APIKeyAuth(cfg.Feed.APIKey),
		Logger:      logger,
	})
	if err != nil {
		return nil, fmt.Errorf("feed client: %w", err)
	}

	feed := acl.NewSheetsFeed(acl.SheetsFeedConfig{
		Client:          client,
		ServiceName:     cfg.Feed.Name,
		SourceID:        cfg.Feed.SourceID,
		QuotesRange:     cfg.Feed.QuotesRange,
		CategoriesRange: cfg.Feed.CategoriesRange,
		Logger:          logger,
	})

	health := ports.NewHealthRegistry()
	if err := errors.Join(health.Register(store), health.RegisterOptional(feed)); err != nil {
		return nil, fmt.Errorf("health checks: %w", err)
	}

	logger.Debug("health checks registered", slog.Any("checks", health.Names()))

	clk, err := clock.New(cfg.Rotation.Timezone)
	if err != nil {
		return nil, fmt.Errorf("rotation clock: %w", err)
	}

	return &core{
		store:  store,
		health: health,
		quotes: app.NewQuoteService(app.QuoteServiceConfig{Store: store, Logger: logger}),
		rotation: app.NewRotationService(app.RotationServiceConfig{
			Store:  store,
			Clock:  clk,
			Logger: logger,
		}),
		sync: app.NewSyncService(app.SyncServiceConfig{
			Store:  store,
			Feed:   feed,
			Clock:  clk,
			Retry:  cfg.Sync.Retry,
			Logger: logger,
		}),
	}, nil
}

// serve runs the HTTP API until ctx is cancelled by a signal or the listener
// fails, then drains in-flight requests within the shutdown timeout.
func serve(ctx context.Context, cfg *config.Config, logger *slog.Logger, c *core) error {
	server := http.New(&cfg.Server, logger)

	http.SetupRouter(server.Engine(), http.RouterConfig{
		Logger:             logger,
		AppConfig:          &cfg.App,
		HealthHandler:      handlers.NewHealthHandler(c.health, handlers.NewBuildInfo(Version, Commit, BuildTime)),
		QuoteHandler:       handlers.NewQuoteHandler(c.quotes),
		TodayHandler:       handlers.NewTodayHandler(c.rotation),
		SyncHandler:        handlers.NewSyncHandler(c.sync),
		MaintenanceHandler: handlers.NewMaintenanceHandler(c.quotes),
		StreamHandler:      handlers.NewStreamHandler(c.quotes, cfg.Server.StreamMaxDuration),
		Timeout:            cfg.Server.RequestTimeout,
	})

	serverErr := server.Start()

	select {
	case err, ok := <-serverErr:
		if ok && err != nil {
			return fmt.Errorf("http server: %w", err)
		}

		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))

	drainCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(drainCtx); err != nil {
		return fmt.Errorf("draining http server: %w", err)
	}

	logger.Info("shutdown complete")

	return nil
}
