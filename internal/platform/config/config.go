// Package config provides configuration loading and management using koanf.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Defaults for settings that are referenced outside the defaults map.
const (
	DefaultServerPort     = 8080
	DefaultMaxRequestSize = 1 << 20

	// DefaultFeedBaseURL is the spreadsheet values API root.
	DefaultFeedBaseURL = "https://sheets.googleapis.com/v4/spreadsheets"

	// Ranges skip the header row of each sheet.
	DefaultQuotesRange     = "Quotes!A2:F"
	DefaultCategoriesRange = "Categories!A2:E"

	DefaultFeedTimeout  = 30 * time.Second
	DefaultSyncInterval = 24 * time.Hour

	// A single attempt keeps startup fast when the feed is down; the built-in
	// quotes cover the gap until the next scheduled sync.
	DefaultSyncRetryMaxAttempts  = 1
	DefaultSyncRetryMultiplier   = 2.0
	DefaultSyncRetryJitterFactor = 0.25

	DefaultClientCircuitMaxFailures     = 5
	DefaultClientCircuitHalfOpenLimit   = 1
	DefaultTransportMaxIdleConns        = 10
	DefaultTransportMaxIdleConnsPerHost = 2

	DefaultLogFileMaxSizeMB  = 100
	DefaultLogFileMaxBackups = 3
	DefaultLogFileMaxAgeDays = 28

	// DefaultDatabasePath is the SQLite file holding the local quote cache.
	DefaultDatabasePath = "./data/quotes.db"
)

// Config is the root configuration structure.
type Config struct {
	App       AppConfig       `koanf:"app"       validate:"required"`
	Server    ServerConfig    `koanf:"server"    validate:"required"`
	Log       LogConfig       `koanf:"log"       validate:"required"`
	Telemetry TelemetryConfig `koanf:"telemetry"`
	Client    ClientConfig    `koanf:"client"    validate:"required"`
	Feed      FeedConfig      `koanf:"feed"      validate:"required"`
	Storage   StorageConfig   `koanf:"storage"   validate:"required"`
	Sync      SyncConfig      `koanf:"sync"      validate:"required"`
	Rotation  RotationConfig  `koanf:"rotation"`
}

// AppConfig contains application-level settings.
type AppConfig struct {
	Name        string `koanf:"name"        validate:"required"`
	Version     string `koanf:"version"     validate:"required"`
	Environment string `koanf:"environment" validate:"required,oneof=local dev qa prod test"`
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Port            int           `koanf:"port"             validate:"required,min=1,max=65535"`
	Host            string        `koanf:"host"             validate:"required"`
	ReadTimeout     time.Duration `koanf:"read_timeout"     validate:"required,min=1s"`
	WriteTimeout    time.Duration `koanf:"write_timeout"    validate:"required,min=1s"`
	IdleTimeout     time.Duration `koanf:"idle_timeout"     validate:"required,min=1s"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout" validate:"required,min=1s"`
	RequestTimeout  time.Duration `koanf:"request_timeout"  validate:"required,min=1s"`
	MaxRequestSize  int64         `koanf:"max_request_size" validate:"required,min=1"`

	// StreamMaxDuration caps one live-view (SSE) response. It must stay below
	// WriteTimeout; clients reconnect when a stream ends.
	StreamMaxDuration time.Duration `koanf:"stream_max_duration" validate:"required,min=1s,ltfield=WriteTimeout"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	Level  string        `koanf:"level"  validate:"required,oneof=trace debug info warn error"`
	Format string        `koanf:"format" validate:"required,oneof=json text pretty"`
	File   LogFileConfig `koanf:"file"`
}

// LogFileConfig contains rolling log file settings.
type LogFileConfig struct {
	Enabled    bool   `koanf:"enabled"`
	Path       string `koanf:"path"        validate:"required_if=Enabled true"`
	MaxSizeMB  int    `koanf:"max_size"    validate:"omitempty,min=1,max=1024"`
	MaxBackups int    `koanf:"max_backups" validate:"omitempty,min=0,max=100"`
	MaxAgeDays int    `koanf:"max_age"     validate:"omitempty,min=0,max=365"`
	Compress   bool   `koanf:"compress"`
}

// TelemetryConfig contains OpenTelemetry settings.
type TelemetryConfig struct {
	Enabled      bool    `koanf:"enabled"`
	Endpoint     string  `koanf:"endpoint"      validate:"required_if=Enabled true"`
	ServiceName  string  `koanf:"service_name"  validate:"required_if=Enabled true"`
	SamplingRate float64 `koanf:"sampling_rate" validate:"min=0,max=1"`
	Insecure     bool    `koanf:"insecure"`
}

// ClientConfig contains HTTP client settings for the remote feed.
// The client never retries; see SyncConfig.Retry.
type ClientConfig struct {
	Timeout        time.Duration        `koanf:"timeout"         validate:"required,min=100ms"`
	CircuitBreaker CircuitBreakerConfig `koanf:"circuit_breaker" validate:"required"`
	Transport      TransportConfig      `koanf:"transport"       validate:"required"`
}

// RetryConfig contains backoff settings for retried operations.
type RetryConfig struct {
	MaxAttempts     int           `koanf:"max_attempts"     validate:"required,min=1,max=10"`
	InitialInterval time.Duration `koanf:"initial_interval" validate:"required,min=10ms"`
	MaxInterval     time.Duration `koanf:"max_interval"     validate:"required,min=100ms"`
	Multiplier      float64       `koanf:"multiplier"       validate:"required,min=1.1,max=10"`
	JitterFactor    float64       `koanf:"jitter_factor"    validate:"min=0,max=1"`
}

// CircuitBreakerConfig contains circuit breaker settings for HTTP clients.
type CircuitBreakerConfig struct {
	MaxFailures   int           `koanf:"max_failures"    validate:"required,min=1"`
	Timeout       time.Duration `koanf:"timeout"         validate:"required,min=1s"`
	HalfOpenLimit int           `koanf:"half_open_limit" validate:"required,min=1"`
}

// TransportConfig contains HTTP transport pool settings.
type TransportConfig struct {
	MaxIdleConns        int           `koanf:"max_idle_conns"          validate:"required,min=1"`
	MaxIdleConnsPerHost int           `koanf:"max_idle_conns_per_host" validate:"required,min=1"`
	IdleConnTimeout     time.Duration `koanf:"idle_conn_timeout"       validate:"required,min=1s"`
}

// FeedConfig locates the spreadsheet that publishes quotes.
type FeedConfig struct {
	Name            string `koanf:"name"             validate:"required"`
	BaseURL         string `koanf:"base_url"         validate:"required,url"`
	SourceID        string `koanf:"source_id"        validate:"required"`
	APIKey          string `koanf:"api_key"`
	QuotesRange     string `koanf:"quotes_range"     validate:"required"`
	CategoriesRange string `koanf:"categories_range" validate:"required"`
}

// StorageConfig contains local database settings.
type StorageConfig struct {
	Path        string        `koanf:"path"         validate:"required"`
	BusyTimeout time.Duration `koanf:"busy_timeout" validate:"required,min=100ms"`
}

// SyncConfig controls startup initialization and the periodic refresh.
type SyncConfig struct {
	// ForceOnStart replaces the local cache with the feed at startup.
	ForceOnStart bool `koanf:"force_on_start"`

	// Enabled turns the periodic refresh on.
	Enabled bool `koanf:"enabled"`

	// Interval is the period of the refresh.
	Interval time.Duration `koanf:"interval" validate:"required_if=Enabled true,omitempty,min=1m"`

	// PeriodicForce makes each periodic refresh a full replace instead of a
	// no-op when quotes are already cached.
	PeriodicForce bool `koanf:"periodic_force"`

	// Timeout bounds one sync run (ping, fetch and store writes).
	Timeout time.Duration `koanf:"timeout" validate:"required,min=1s"`

	Retry RetryConfig `koanf:"retry" validate:"required"`
}

// RotationConfig controls quote-of-the-day dates.
type RotationConfig struct {
	// Timezone is an IANA zone name. Empty means the process local zone.
	Timezone string `koanf:"timezone" validate:"omitempty,timezone"`
}

// defaults returns the default configuration values.
func defaults() map[string]any {
	return map[string]any{
		"app.name":        "dailyquote",
		"app.version":     "dev",
		"app.environment": "local",

		"server.port":                DefaultServerPort,
		"server.host":                "0.0.0.0",
		"server.read_timeout":        "30s",
		"server.write_timeout":       "30s",
		"server.idle_timeout":        "120s",
		"server.shutdown_timeout":    "10s",
		"server.request_timeout":     "25s",
		"server.max_request_size":    DefaultMaxRequestSize,
		"server.stream_max_duration": "25s",

		"log.level":            "info",
		"log.format":           "json",
		"log.file.enabled":     false,
		"log.file.path":        "./logs/dailyquote.log",
		"log.file.max_size":    DefaultLogFileMaxSizeMB,
		"log.file.max_backups": DefaultLogFileMaxBackups,
		"log.file.max_age":     DefaultLogFileMaxAgeDays,
		"log.file.compress":    true,

		"telemetry.enabled":       false,
		"telemetry.endpoint":      "",
		"telemetry.service_name":  "dailyquote",
		"telemetry.sampling_rate": 1.0,
		"telemetry.insecure":      true,

		"client.timeout":                           DefaultFeedTimeout.String(),
		"client.circuit_breaker.max_failures":      DefaultClientCircuitMaxFailures,
		"client.circuit_breaker.timeout":           "60s",
		"client.circuit_breaker.half_open_limit":   DefaultClientCircuitHalfOpenLimit,
		"client.transport.max_idle_conns":          DefaultTransportMaxIdleConns,
		"client.transport.max_idle_conns_per_host": DefaultTransportMaxIdleConnsPerHost,
		"client.transport.idle_conn_timeout":       "90s",

		"feed.name":             "quote-feed",
		"feed.base_url":         DefaultFeedBaseURL,
		"feed.source_id":        "unset",
		"feed.api_key":          "",
		"feed.quotes_range":     DefaultQuotesRange,
		"feed.categories_range": DefaultCategoriesRange,

		"storage.path":         DefaultDatabasePath,
		"storage.busy_timeout": "5s",

		"sync.force_on_start":         false,
		"sync.enabled":                true,
		"sync.interval":               DefaultSyncInterval.String(),
		"sync.periodic_force":         false,
		"sync.timeout":                "2m",
		"sync.retry.max_attempts":     DefaultSyncRetryMaxAttempts,
		"sync.retry.initial_interval": "1s",
		"sync.retry.max_interval":     "30s",
		"sync.retry.multiplier":       DefaultSyncRetryMultiplier,
		"sync.retry.jitter_factor":    DefaultSyncRetryJitterFactor,

		"rotation.timezone": "",
	}
}

// layer is one configuration source. Later layers override earlier ones.
type layer struct {
	name     string
	load     func(k *koanf.Koanf) error
	optional bool
}

// layers lists the sources for profile, lowest precedence first. File
// layers are optional: a missing file is skipped.
func layers(profile string) []layer {
	yamlFile := func(path string) func(*koanf.Koanf) error {
		return func(k *koanf.Koanf) error {
			return k.Load(file.Provider(path), yaml.Parser())
		}
	}

	out := []layer{
		{name: "defaults", load: func(k *koanf.Koanf) error {
			return k.Load(confmap.Provider(defaults(), "."), nil)
		}},
		{name: "configs/base.yaml", load: yamlFile("configs/base.yaml"), optional: true},
	}

	if profile != "" {
		path := "configs/" + profile + ".yaml"
		out = append(out, layer{name: path, load: yamlFile(path), optional: true})
	}

	return append(out, layer{name: "environment", load: func(k *koanf.Koanf) error {
		return k.Load(env.Provider("APP_", ".", envKey), nil)
	}})
}

// Load builds the configuration for profile from the defaults, then
// configs/base.yaml, then configs/{profile}.yaml, then APP_ environment
// variables, each overriding the last.
func Load(profile string) (*Config, error) {
	k := koanf.New(".")

	for _, l := range layers(profile) {
		if l.optional && !fileExists(l.name) {
			continue
		}

		if err := l.load(k); err != nil {
			return nil, fmt.Errorf("loading %s: %w", l.name, err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}

	return &cfg, nil
}

// envKey maps APP_FEED__SOURCE_ID to feed.source_id. A double underscore
// separates levels so that single underscores survive inside key names.
func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, "APP_"))

	return strings.ReplaceAll(s, "__", ".")
}

func fileExists(path string) bool {
	_, err := os.Stat(path)

	return !errors.Is(err, os.ErrNotExist)
}
