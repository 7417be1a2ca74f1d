package clients

import (
	"sync"
	"time"
)

// State is the position of the feed circuit.
type State int

const (
	// StateClosed lets every request through.
	StateClosed State = iota
	// StateOpen rejects requests until the cool-down ends.
	StateOpen
	// StateHalfOpen lets a limited number of probe requests through.
	StateHalfOpen
)

func (s State) String() string {
	switch s {
	case StateClosed:
		return "closed"
	case StateOpen:
		return "open"
	case StateHalfOpen:
		return "half-open"
	default:
		return "unknown"
	}
}

// CircuitBreakerConfig configures a CircuitBreaker.
type CircuitBreakerConfig struct {
	// MaxFailures consecutive failures open the circuit.
	MaxFailures int
	// Timeout is the cool-down before an open circuit admits a probe.
	Timeout time.Duration
	// HalfOpenLimit is both the number of concurrent probes and the number of
	// successful probes needed to close the circuit again.
	HalfOpenLimit int
}

// Snapshot is a point-in-time view of the breaker for sync status.
type Snapshot struct {
	State    State
	Failures int

	// RetryIn is the rest of the cool-down of an open circuit; zero otherwise.
	RetryIn time.Duration
}

// CircuitBreaker stops calling the quote feed while it is failing, so a
// sync attempted during an outage fails fast and the reconciler falls back
// to cached or built-in quotes.
//
// closed -> open after MaxFailures consecutive failures; open -> half-open
// once Timeout has passed; half-open -> closed after HalfOpenLimit
// successes; half-open -> open on any failure.
type CircuitBreaker struct {
	cfg CircuitBreakerConfig
	now func() time.Time

	mu        sync.Mutex
	state     State
	failures  int
	successes int
	probes    int
	openUntil time.Time
	onChange  func(from, to State)
}

// NewCircuitBreaker returns a closed breaker.
func NewCircuitBreaker(cfg CircuitBreakerConfig) *CircuitBreaker {
	return &CircuitBreaker{cfg: cfg, now: time.Now}
}

// OnStateChange registers fn to run after every transition, outside the
// breaker's lock.
func (cb *CircuitBreaker) OnStateChange(fn func(from, to State)) {
	cb.mu.Lock()
	cb.onChange = fn
	cb.mu.Unlock()
}

// Allow reports whether a feed request may go out. Every allowed request
// must be followed by RecordSuccess or RecordFailure.
func (cb *CircuitBreaker) Allow() bool {
	cb.mu.Lock()

	allowed, notify := false, noop

	switch cb.state {
	case StateClosed:
		allowed = true
	case StateOpen:
		if !cb.now().Before(cb.openUntil) {
			notify = cb.moveTo(StateHalfOpen)
			cb.probes = 1
			allowed = true
		}
	case StateHalfOpen:
		if cb.probes < cb.cfg.HalfOpenLimit {
			cb.probes++
			allowed = true
		}
	}

	cb.mu.Unlock()
	notify()

	return allowed
}

// RecordSuccess closes a half-open circuit once enough probes succeed and
// clears the failure streak of a closed one.
func (cb *CircuitBreaker) RecordSuccess() {
	cb.mu.Lock()

	notify := noop

	switch cb.state {
	case StateClosed:
		cb.failures = 0
	case StateHalfOpen:
		cb.probes--
		cb.successes++

		if cb.successes >= cb.cfg.HalfOpenLimit {
			notify = cb.moveTo(StateClosed)
		}
	}

	cb.mu.Unlock()
	notify()
}

// RecordFailure extends the failure streak of a closed circuit, opening it
// at MaxFailures, and reopens a half-open one immediately.
func (cb *CircuitBreaker) RecordFailure() {
	cb.mu.Lock()

	notify := noop

	switch cb.state {
	case StateClosed:
		cb.failures++

		if cb.failures >= cb.cfg.MaxFailures {
			notify = cb.moveTo(StateOpen)
		}
	case StateHalfOpen:
		cb.probes--
		notify = cb.moveTo(StateOpen)
	}

	cb.mu.Unlock()
	notify()
}

// State returns the current state without advancing an expired cool-down.
func (cb *CircuitBreaker) State() State {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	return cb.state
}

// Snapshot returns the state, the failure streak and the remaining cool-down.
func (cb *CircuitBreaker) Snapshot() Snapshot {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	snap := Snapshot{State: cb.state, Failures: cb.failures}

	if cb.state == StateOpen {
		snap.RetryIn = max(cb.openUntil.Sub(cb.now()), 0)
	}

	return snap
}

func noop() {}

// moveTo switches state and resets the streak counters. It returns the hook
// call to make once the lock is released. cb.mu must be held.
func (cb *CircuitBreaker) moveTo(to State) func() {
	from := cb.state
	if from == to {
		return noop
	}

	cb.state = to
	cb.failures = 0
	cb.successes = 0

	if to == StateOpen {
		cb.openUntil = cb.now().Add(cb.cfg.Timeout)
	}

	if fn := cb.onChange; fn != nil {
		return func() { fn(from, to) }
	}

	return noop
}
