package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen/dailyquote/internal/platform/logging"
	"github.com/jsamuelsen/dailyquote/internal/platform/telemetry"
)

// An Operation runs as validate, perform, verify, archive, respond. The store
// is written in archive only, so a feed that fails or yields nothing usable
// never leaves the local cache half replaced.

// ExecutionStep names a stage of an Operation.
type ExecutionStep string

const (
	StepValidate ExecutionStep = "validate"
	StepPerform  ExecutionStep = "perform"
	StepVerify   ExecutionStep = "verify"
	StepArchive  ExecutionStep = "archive"
	StepRespond  ExecutionStep = "respond"
)

// ExecutionError records the stage an Operation failed in.
type ExecutionError struct {
	Step    ExecutionStep
	Message string
	Cause   error
}

func (e *ExecutionError) Error() string {
	if e.Cause == nil {
		return fmt.Sprintf("%s failed: %s", e.Step, e.Message)
	}

	return fmt.Sprintf("%s failed: %s: %v", e.Step, e.Message, e.Cause)
}

func (e *ExecutionError) Unwrap() error {
	return e.Cause
}

// stepMessages is the ExecutionError message per stage.
var stepMessages = map[ExecutionStep]string{
	StepValidate: "precondition failed",
	StepPerform:  "operation failed",
	StepVerify:   "verification failed",
	StepArchive:  "state persistence failed",
}

// errShortCircuit ends an Operation from Validate with the ShortCircuit
// result. It is not a failure.
var errShortCircuit = errors.New("short circuit")

// Executor runs Operations under one span each and logs every stage.
type Executor struct {
	logger *slog.Logger
	tracer trace.Tracer
}

func NewExecutor(logger *slog.Logger) *Executor {
	if logger == nil {
		logger = slog.Default()
	}

	return &Executor{logger: logger, tracer: telemetry.Tracer("app")}
}

// Operation holds the stages of one staged call. Nil stages are skipped and
// pass the zero value on.
type Operation[I, P, V, O any] struct {
	Name string

	Validate     func(ctx context.Context, input I) error
	ShortCircuit func(ctx context.Context, input I) (O, error)
	Perform      func(ctx context.Context, input I) (P, error)
	Verify       func(ctx context.Context, input I, performed P) (V, error)
	Archive      func(ctx context.Context, input I, verified V) error
	Respond      func(ctx context.Context, input I, verified V) (O, error)
}

// stage runs fn for step, logging it and wrapping a failure in an
// ExecutionError.
func stage[T any](ctx context.Context, logger *slog.Logger, step ExecutionStep, fn func() (T, error)) (T, error) {
	logger.DebugContext(ctx, "running step", slog.String("step", string(step)))

	out, err := fn()
	if err == nil || errors.Is(err, errShortCircuit) {
		return out, err
	}

	level := slog.LevelWarn
	if step == StepArchive {
		level = slog.LevelError
	}

	logger.Log(ctx, level, "step failed", slog.String("step", string(step)), slog.Any("error", err))

	var zero T

	return zero, &ExecutionError{Step: step, Message: stepMessages[step], Cause: err}
}

// Execute runs op against input. The first failing stage ends the run with an
// *ExecutionError.
func Execute[I, P, V, O any](ctx context.Context, exec *Executor, op Operation[I, P, V, O], input I) (result O, err error) {
	ctx, span := exec.tracer.Start(ctx, "app."+op.Name)
	defer func() {
		if err != nil {
			if step, ok := GetExecutionStep(err); ok {
				span.SetAttributes(attribute.String("app.step", string(step)))
			}

			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}

		span.End()
	}()

	logger := logging.FromContextOr(ctx, exec.logger).With(slog.String("operation", op.Name))
	start := time.Now()

	var (
		zero      O
		performed P
		verified  V
	)

	if op.Validate != nil {
		_, err = stage(ctx, logger, StepValidate, func() (struct{}, error) {
			return struct{}{}, op.Validate(ctx, input)
		})

		if errors.Is(err, errShortCircuit) && op.ShortCircuit != nil {
			logger.DebugContext(ctx, "operation short-circuited")
			span.SetAttributes(attribute.Bool("app.short_circuit", true))

			return op.ShortCircuit(ctx, input)
		}

		if err != nil {
			return zero, err
		}
	}

	if op.Perform != nil {
		if performed, err = stage(ctx, logger, StepPerform, func() (P, error) {
			return op.Perform(ctx, input)
		}); err != nil {
			return zero, err
		}
	}

	if op.Verify != nil {
		if verified, err = stage(ctx, logger, StepVerify, func() (V, error) {
			return op.Verify(ctx, input, performed)
		}); err != nil {
			return zero, err
		}
	}

	if op.Archive != nil {
		if _, err = stage(ctx, logger, StepArchive, func() (struct{}, error) {
			return struct{}{}, op.Archive(ctx, input, verified)
		}); err != nil {
			return zero, err
		}
	}

	if op.Respond != nil {
		if result, err = op.Respond(ctx, input, verified); err != nil {
			return zero, err
		}
	}

	logger.InfoContext(ctx, "operation completed", slog.Duration("duration", time.Since(start)))

	return result, nil
}

// IsExecutionError reports whether err came out of a failed stage.
func IsExecutionError(err error) bool {
	_, ok := GetExecutionStep(err)

	return ok
}

// GetExecutionStep returns the stage err failed in.
func GetExecutionStep(err error) (ExecutionStep, bool) {
	var execErr *ExecutionError
	if errors.As(err, &execErr) {
		return execErr.Step, true
	}

	return "", false
}
