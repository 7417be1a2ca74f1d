package clients

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen/dailyquote/internal/adapters/http/middleware"
	"github.com/jsamuelsen/dailyquote/internal/platform/config"
	"github.com/jsamuelsen/dailyquote/internal/platform/logging"
	"github.com/jsamuelsen/dailyquote/internal/platform/telemetry"
)

const (
	defaultTimeout = 30 * time.Second

	defaultMaxIdleConns        = 10
	defaultMaxIdleConnsPerHost = 2
	defaultIdleConnTimeout     = 90 * time.Second
)

// Config configures a Client.
type Config struct {
	// BaseURL prefixes every request path, e.g.
	// "https://sheets.googleapis.com/v4/spreadsheets".
	BaseURL string

	// ServiceName names the downstream in logs, spans and metrics.
	ServiceName string

	// Timeout bounds one request including its body. Zero means 30s.
	Timeout time.Duration

	Circuit   config.CircuitBreakerConfig
	Transport config.TransportConfig

	// AuthFunc, when set, adds credentials to each outgoing request.
	AuthFunc func(*http.Request)

	Logger *slog.Logger
}

// Client is the instrumented HTTP client used for the quote feed. Each call
// is a single attempt behind a circuit breaker; retry policy belongs to the
// caller. Calls carry the request and correlation IDs and the trace context
// of the inbound request.
type Client struct {
	http    *http.Client
	baseURL string
	service string
	auth    func(*http.Request)
	logger  *slog.Logger
	cb      *CircuitBreaker
	tracer  trace.Tracer
	metrics clientMetrics
}

type clientMetrics struct {
	duration metric.Float64Histogram
	total    metric.Int64Counter
}

func newClientMetrics() (clientMetrics, error) {
	meter := telemetry.Meter("clients")

	duration, err := meter.Float64Histogram("http.client.request.duration",
		metric.WithDescription("Duration of HTTP client requests"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return clientMetrics{}, fmt.Errorf("creating duration metric: %w", err)
	}

	total, err := meter.Int64Counter("http.client.request.total",
		metric.WithDescription("Total number of HTTP client requests"),
	)
	if err != nil {
		return clientMetrics{}, fmt.Errorf("creating request counter: %w", err)
	}

	return clientMetrics{duration: duration, total: total}, nil
}

// New builds a Client. Only ServiceName is required.
func New(cfg *Config) (*Client, error) {
	switch {
	case cfg == nil:
		return nil, errors.New("config is required")
	case cfg.ServiceName == "":
		return nil, errors.New("service name is required")
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	logger = logger.With(slog.String("component", "clients.Client"), slog.String("downstream", cfg.ServiceName))

	metrics, err := newClientMetrics()
	if err != nil {
		return nil, err
	}

	cb := NewCircuitBreaker(CircuitBreakerConfig{
		MaxFailures:   cfg.Circuit.MaxFailures,
		Timeout:       cfg.Circuit.Timeout,
		HalfOpenLimit: cfg.Circuit.HalfOpenLimit,
	})
	cb.OnStateChange(func(from, to State) {
		logger.Warn("circuit breaker state changed", slog.String("from", from.String()), slog.String("to", to.String()))
	})

	return &Client{
		http:    &http.Client{Timeout: timeout, Transport: newTransport(cfg.Transport)},
		baseURL: strings.TrimSuffix(cfg.BaseURL, "/"),
		service: cfg.ServiceName,
		auth:    cfg.AuthFunc,
		logger:  logger,
		cb:      cb,
		tracer:  telemetry.Tracer("clients"),
		metrics: metrics,
	}, nil
}

// newTransport builds the connection pool, filling unset sizes with small
// defaults: the service talks to a single host.
func newTransport(cfg config.TransportConfig) *http.Transport {
	pick := func(v, def int) int {
		if v > 0 {
			return v
		}

		return def
	}

	idle := cfg.IdleConnTimeout
	if idle <= 0 {
		idle = defaultIdleConnTimeout
	}

	return &http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		MaxIdleConns:        pick(cfg.MaxIdleConns, defaultMaxIdleConns),
		MaxIdleConnsPerHost: pick(cfg.MaxIdleConnsPerHost, defaultMaxIdleConnsPerHost),
		IdleConnTimeout:     idle,
	}
}

// Get sends GET baseURL+path?query.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*http.Response, error) {
	target := c.buildURL(path)
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	return c.Do(ctx, req)
}

// Do sends req once.
//
// A transport failure comes back as an error wrapping ErrRequestFailed and an
// open circuit as ErrCircuitOpen. Every response, 4xx and 5xx included, is
// returned to the caller; only 5xx responses and transport failures count
// against the circuit.
func (c *Client) Do(ctx context.Context, req *http.Request) (*http.Response, error) {
	start := time.Now()
	logger := logging.FromContext(ctx).With(
		slog.String("downstream", c.service),
		slog.String("method", req.Method),
		slog.String("path", req.URL.Path),
	)

	if !c.cb.Allow() {
		c.record(ctx, req.Method, 0, start, "circuit_open")
		logger.Warn("request blocked by circuit breaker")

		return nil, ErrCircuitOpen
	}

	middleware.PropagateIDs(ctx, req.Header)

	if c.auth != nil {
		c.auth(req)
	}

	// Spans record the path only; the query may hold the API key.
	ctx, span := c.tracer.Start(ctx, "HTTP "+req.Method+" "+c.service,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.method", req.Method),
			attribute.String("url.path", req.URL.Path),
			attribute.String("peer.service", c.service),
		),
	)
	defer span.End()

	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

	resp, err := c.http.Do(req.WithContext(ctx))
	if err != nil {
		err = redactURLError(err)

		result := "error"
		if ctx.Err() != nil {
			result = "context_canceled"
		}

		c.cb.RecordFailure()
		span.RecordError(err)
		span.SetStatus(codes.Error, "transport error")
		c.record(ctx, req.Method, 0, start, result)
		logger.Warn("request failed", slog.Duration("duration", time.Since(start)), slog.Any("error", err))

		return nil, fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}

	if resp.StatusCode >= http.StatusInternalServerError {
		c.cb.RecordFailure()
	} else {
		c.cb.RecordSuccess()
	}

	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))
	if resp.StatusCode >= http.StatusBadRequest {
		span.SetStatus(codes.Error, "HTTP "+resp.Status)
	}

	c.record(ctx, req.Method, resp.StatusCode, start, fmt.Sprintf("%dxx", resp.StatusCode/100))
	logger.Debug("request completed", slog.Int("status", resp.StatusCode), slog.Duration("duration", time.Since(start)))

	return resp, nil
}

// CircuitState returns the breaker's current state.
func (c *Client) CircuitState() State {
	return c.cb.State()
}

// Circuit returns a snapshot of the breaker for status reporting.
func (c *Client) Circuit() Snapshot {
	return c.cb.Snapshot()
}

func (c *Client) buildURL(path string) string {
	return c.baseURL + "/" + strings.TrimPrefix(path, "/")
}

// record adds one request to the duration histogram and the request counter.
// status is zero when no response arrived.
func (c *Client) record(ctx context.Context, method string, status int, start time.Time, result string) {
	attrs := []attribute.KeyValue{
		attribute.String("http.method", method),
		attribute.String("peer.service", c.service),
		attribute.String("result", result),
	}

	if status > 0 {
		attrs = append(attrs, attribute.Int("http.status_code", status))
	}

	opt := metric.WithAttributes(attrs...)
	c.metrics.duration.Record(ctx, time.Since(start).Seconds(), opt)
	c.metrics.total.Add(ctx, 1, opt)
}

// redactURLError drops the query string from a *url.Error, whose message
// embeds the full request URL.
func redactURLError(err error) error {
	var urlErr *url.Error
	if !errors.As(err, &urlErr) {
		return err
	}

	u, parseErr := url.Parse(urlErr.URL)
	if parseErr != nil {
		return urlErr.Err
	}

	u.RawQuery = ""

	return &url.Error{Op: urlErr.Op, URL: u.String(), Err: urlErr.Err}
}
