// Package sqlite implements ports.QuoteStore on an embedded SQLite database.
//
// The schema is versioned with goose migrations embedded in the binary.
// The pool is capped at one connection, which serializes writes and keeps
// in-memory databases alive for the lifetime of the Store.
package sqlite

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/pressly/goose/v3"
	"modernc.org/sqlite"

	"github.com/jsamuelsen/dailyquote/internal/adapters/storage/sqlite/migrations"
)

// MemoryPath opens a private in-memory database.
const MemoryPath = ":memory:"

const (
	driverName         = "sqlite"
	defaultBusyTimeout = 5 * time.Second
	checkerName        = "sqlite"
)

// Config holds database settings.
type Config struct {
	// Path is the database file. MemoryPath opens an in-memory database.
	Path string

	// BusyTimeout bounds how long a statement waits on a locked database.
	BusyTimeout time.Duration
}

// Store is the SQLite-backed quote store.
type Store struct {
	db     *sql.DB
	logger *slog.Logger
	hub    *changeHub
}

var (
	registerOnce sync.Once
	errRegister  error

	// goose keeps its base FS and dialect in package state.
	migrateMu sync.Mutex
)

// Open opens the database, applies pending migrations and returns a ready Store.
func Open(ctx context.Context, cfg Config, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.Default()
	}

	if err := registerFunctions(); err != nil {
		return nil, err
	}

	dsn, err := dataSourceName(cfg.Path)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite database: %w", err)
	}

	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := configure(ctx, db, cfg); err != nil {
		_ = db.Close()
		return nil, err
	}

	if err := migrate(ctx, db, logger); err != nil {
		_ = db.Close()
		return nil, err
	}

	logger.InfoContext(ctx, "quote store opened", slog.String("path", cfg.Path))

	return &Store{
		db:     db,
		logger: logger,
		hub:    newChangeHub(),
	}, nil
}

// Close releases the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Name implements ports.HealthChecker.
func (s *Store) Name() string {
	return checkerName
}

// Check implements ports.HealthChecker.
func (s *Store) Check(ctx context.Context) error {
	defer observe("ping")()

	return s.db.PingContext(ctx)
}

func dataSourceName(path string) (string, error) {
	if path == "" || path == MemoryPath {
		return "file::memory:", nil
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return "", fmt.Errorf("creating database directory: %w", err)
		}
	}

	return "file:" + path, nil
}

func configure(ctx context.Context, db *sql.DB, cfg Config) error {
	busy := cfg.BusyTimeout
	if busy <= 0 {
		busy = defaultBusyTimeout
	}

	pragmas := []string{
		fmt.Sprintf("PRAGMA busy_timeout = %d", busy.Milliseconds()),
		"PRAGMA foreign_keys = ON",
	}

	if cfg.Path != "" && cfg.Path != MemoryPath {
		pragmas = append(pragmas, "PRAGMA journal_mode = WAL", "PRAGMA synchronous = NORMAL")
	}

	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p); err != nil {
			return fmt.Errorf("applying %q: %w", p, err)
		}
	}

	return nil
}

func migrate(ctx context.Context, db *sql.DB, logger *slog.Logger) error {
	migrateMu.Lock()
	defer migrateMu.Unlock()

	goose.SetBaseFS(migrations.FS)
	goose.SetLogger(&gooseLogger{logger: logger})

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("setting migration dialect: %w", err)
	}

	if err := goose.UpContext(ctx, db, "."); err != nil {
		return fmt.Errorf("applying migrations: %w", err)
	}

	return nil
}

// gooseLogger routes goose output through slog.
type gooseLogger struct {
	logger *slog.Logger
}

func (l *gooseLogger) Printf(format string, v ...any) {
	l.logger.Debug(strings.TrimSpace(fmt.Sprintf(format, v...)), slog.String("component", "migrate"))
}

func (l *gooseLogger) Fatalf(format string, v ...any) {
	l.logger.Error(strings.TrimSpace(fmt.Sprintf(format, v...)), slog.String("component", "migrate"))
}

// registerFunctions installs casefold, a Unicode-aware lower() used by search.
// SQLite's built-in lower() only folds ASCII.
func registerFunctions() error {
	registerOnce.Do(func() {
		errRegister = sqlite.RegisterDeterministicScalarFunction("casefold", 1,
			func(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
				switch v := args[0].(type) {
				case string:
					return strings.ToLower(v), nil
				case []byte:
					return strings.ToLower(string(v)), nil
				default:
					return v, nil
				}
			})
	})

	if errRegister != nil {
		return fmt.Errorf("registering sqlite functions: %w", errRegister)
	}

	return nil
}
