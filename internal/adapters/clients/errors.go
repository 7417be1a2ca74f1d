// Package clients provides the instrumented HTTP client used by feed adapters.
package clients

import "errors"

// Client errors represent failures in the HTTP client layer.
// Feed adapters translate them into domain.UnavailableError.
var (
	// ErrCircuitOpen is returned when the circuit breaker is open.
	// The downstream service is considered unhealthy and requests are blocked.
	ErrCircuitOpen = errors.New("circuit breaker open")

	// ErrRequestFailed wraps transport-level failures: timeouts, refused
	// connections and DNS errors. No response was received.
	ErrRequestFailed = errors.New("request failed")
)
