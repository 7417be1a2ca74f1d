package app

import (
	"context"
	"log/slog"
	"time"

	"github.com/jsamuelsen/dailyquote/internal/domain"
)

// Syncer is the part of SyncService the worker drives.
type Syncer interface {
	SyncQuotes(ctx context.Context, force bool) domain.SyncResult
}

// SyncWorkerConfig configures the periodic refresh.
type SyncWorkerConfig struct {
	Syncer   Syncer
	Interval time.Duration

	// Force makes every run a full replace.
	Force bool

	// Timeout bounds one run. Zero means no bound beyond the worker context.
	Timeout time.Duration

	Logger *slog.Logger
}

// SyncWorker refreshes the local cache on a fixed interval.
type SyncWorker struct {
	syncer   Syncer
	interval time.Duration
	force    bool
	timeout  time.Duration
	logger   *slog.Logger
}

// NewSyncWorker creates a worker. It panics if Syncer is nil or Interval is not positive.
func NewSyncWorker(cfg SyncWorkerConfig) *SyncWorker {
	if cfg.Syncer == nil {
		panic("app: SyncWorkerConfig.Syncer is required")
	}

	if cfg.Interval <= 0 {
		panic("app: SyncWorkerConfig.Interval must be positive")
	}

	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	return &SyncWorker{
		syncer:   cfg.Syncer,
		interval: cfg.Interval,
		force:    cfg.Force,
		timeout:  cfg.Timeout,
		logger:   cfg.Logger.With(slog.String("component", "sync_worker")),
	}
}

// Run syncs once per interval until ctx is done. The first run happens one
// interval after Run is called. Failed runs are logged and never stop the loop.
// Without Force a run only fills an empty store.
func (w *SyncWorker) Run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.logger.InfoContext(ctx, "sync worker started",
		slog.Duration("interval", w.interval),
		slog.Bool("force", w.force),
	)

	if !w.force {
		w.logger.InfoContext(ctx, "periodic sync skips a populated store; set sync.periodic_force to refresh cached quotes")
	}

	for {
		select {
		case <-ctx.Done():
			w.logger.InfoContext(ctx, "sync worker stopped")
			return
		case <-ticker.C:
			w.runOnce(ctx)
		}
	}
}

func (w *SyncWorker) runOnce(ctx context.Context) {
	if w.timeout > 0 {
		var cancel context.CancelFunc

		ctx, cancel = context.WithTimeout(ctx, w.timeout)
		defer cancel()
	}

	result := w.syncer.SyncQuotes(ctx, w.force)
	if !result.OK() {
		w.logger.WarnContext(ctx, "periodic sync failed", slog.String("reason", result.Message))
		return
	}

	w.logger.InfoContext(ctx, "periodic sync finished",
		slog.String("message", result.Message),
		slog.Int("quotes", result.QuotesCount),
	)
}
