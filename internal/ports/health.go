package ports

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

// ErrDuplicateChecker is returned when a checker name is registered twice.
var ErrDuplicateChecker = errors.New("duplicate health checker")

// HealthChecker is a component that can report on itself, such as the quote
// store (a ping on the database) or the quote feed (a metadata read).
type HealthChecker interface {
	Name() string

	// Check returns nil when the component works. It must honor ctx.
	Check(ctx context.Context) error
}

// HealthRegistry collects the checkers behind the readiness probe.
type HealthRegistry interface {
	// Register adds a checker whose failure makes the service unhealthy.
	Register(checker HealthChecker) error

	// RegisterOptional adds a checker whose failure only degrades the
	// service. The quote feed is optional: cached quotes are still served.
	RegisterOptional(checker HealthChecker) error

	// CheckAll runs every checker concurrently.
	CheckAll(ctx context.Context) *HealthResult
}

// HealthStatus is ordered: a higher rank is worse.
type HealthStatus string

const (
	HealthStatusHealthy   HealthStatus = "healthy"
	HealthStatusDegraded  HealthStatus = "degraded"
	HealthStatusUnhealthy HealthStatus = "unhealthy"
)

func (s HealthStatus) rank() int {
	switch s {
	case HealthStatusUnhealthy:
		return 2
	case HealthStatusDegraded:
		return 1
	default:
		return 0
	}
}

// HealthResult is the outcome of CheckAll.
type HealthResult struct {
	Status    HealthStatus            `json:"status"`
	Checks    map[string]*CheckResult `json:"checks"`
	Timestamp time.Time               `json:"timestamp"`
}

// CheckResult is the outcome of one checker.
type CheckResult struct {
	Status   HealthStatus  `json:"status"`
	Message  string        `json:"message,omitempty"`
	Optional bool          `json:"optional,omitempty"`
	Duration time.Duration `json:"duration"`
}

type registration struct {
	checker  HealthChecker
	optional bool
}

// DefaultHealthRegistry is safe for concurrent use.
type DefaultHealthRegistry struct {
	mu     sync.RWMutex
	order  []string
	checks map[string]registration
}

func NewHealthRegistry() *DefaultHealthRegistry {
	return &DefaultHealthRegistry{checks: make(map[string]registration)}
}

func (r *DefaultHealthRegistry) Register(checker HealthChecker) error {
	return r.add(registration{checker: checker})
}

func (r *DefaultHealthRegistry) RegisterOptional(checker HealthChecker) error {
	return r.add(registration{checker: checker, optional: true})
}

func (r *DefaultHealthRegistry) add(reg registration) error {
	name := reg.checker.Name()

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.checks[name]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateChecker, name)
	}

	r.checks[name] = reg
	r.order = append(r.order, name)

	return nil
}

// Names lists the registered checkers in registration order.
func (r *DefaultHealthRegistry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]string(nil), r.order...)
}

// CheckAll runs the checkers concurrently. The overall status is the worst
// of the individual ones, with an optional failure counting as degraded.
func (r *DefaultHealthRegistry) CheckAll(ctx context.Context) *HealthResult {
	r.mu.RLock()
	regs := make([]registration, 0, len(r.order))
	for _, name := range r.order {
		regs = append(regs, r.checks[name])
	}
	r.mu.RUnlock()

	results := make([]*CheckResult, len(regs))

	var g errgroup.Group
	for i, reg := range regs {
		g.Go(func() error {
			results[i] = runCheck(ctx, reg)
			return nil
		})
	}
	_ = g.Wait()

	out := &HealthResult{
		Status:    HealthStatusHealthy,
		Checks:    make(map[string]*CheckResult, len(regs)),
		Timestamp: time.Now().UTC(),
	}

	for i, reg := range regs {
		res := results[i]
		out.Checks[reg.checker.Name()] = res

		effect := res.Status
		if reg.optional && effect == HealthStatusUnhealthy {
			effect = HealthStatusDegraded
		}

		if effect.rank() > out.Status.rank() {
			out.Status = effect
		}
	}

	return out
}

func runCheck(ctx context.Context, reg registration) *CheckResult {
	start := time.Now()
	err := reg.checker.Check(ctx)

	res := &CheckResult{Status: HealthStatusHealthy, Optional: reg.optional, Duration: time.Since(start)}
	if err != nil {
		res.Status = HealthStatusUnhealthy
		res.Message = err.Error()
	}

	return res
}
