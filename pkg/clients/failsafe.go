// Package clients wraps calls to backing stores in failsafe-go retry and
// circuit breaker policies.
package clients

import (
	"context"
	"errors"
	"time"

	"github.com/failsafe-go/failsafe-go"
	"github.com/failsafe-go/failsafe-go/circuitbreaker"
	"github.com/failsafe-go/failsafe-go/retrypolicy"

	"stratagix/pkg/logging"
)

// BreakerState represents the state of the circuit breaker.
type BreakerState int

const (
	StateClosed BreakerState = iota
	StateHalfOpen
	StateOpen
)

func (s BreakerState) String() string {
	switch s {
	case StateClosed:
		return "closed"
	case StateHalfOpen:
		return "half-open"
	case StateOpen:
		return "open"
	default:
		return "unknown"
	}
}

// ExecutorConfig configures retries and the circuit breaker of an Executor.
type ExecutorConfig struct {
	// Name identifies the executor in logs and metrics.
	Name string

	MaxRetries int
	BaseDelay  time.Duration
	MaxDelay   time.Duration

	// The breaker opens after FailureThreshold failures within the last
	// FailureWindow executions, stays open for OpenDelay, then needs
	// SuccessThreshold successes in half-open state to close.
	FailureThreshold uint
	FailureWindow    uint
	OpenDelay        time.Duration
	SuccessThreshold uint

	// Retryable decides whether an error is retried and counted against the
	// breaker. Defaults to DefaultRetryable.
	Retryable func(err error) bool

	Logger        logging.Logger
	OnStateChange func(name string, from, to BreakerState)
}

// DefaultExecutorConfig returns sensible defaults
func DefaultExecutorConfig(name string) ExecutorConfig {
	return ExecutorConfig{
		Name:             name,
		MaxRetries:       2,
		BaseDelay:        50 * time.Millisecond,
		MaxDelay:         time.Second,
		FailureThreshold: 5,
		FailureWindow:    10,
		OpenDelay:        15 * time.Second,
		SuccessThreshold: 1,
	}
}

func normalize(cfg ExecutorConfig) ExecutorConfig {
	def := DefaultExecutorConfig(cfg.Name)
	if cfg.Name == "" {
		cfg.Name = "executor"
	}
	if cfg.MaxRetries < 0 {
		cfg.MaxRetries = 0
	}
	if cfg.BaseDelay <= 0 {
		cfg.BaseDelay = def.BaseDelay
	}
	if cfg.MaxDelay < cfg.BaseDelay {
		cfg.MaxDelay = cfg.BaseDelay
	}
	if cfg.FailureWindow == 0 {
		cfg.FailureWindow = def.FailureWindow
	}
	if cfg.FailureThreshold == 0 || cfg.FailureThreshold > cfg.FailureWindow {
		cfg.FailureThreshold = cfg.FailureWindow
	}
	if cfg.OpenDelay <= 0 {
		cfg.OpenDelay = def.OpenDelay
	}
	if cfg.SuccessThreshold == 0 {
		cfg.SuccessThreshold = 1
	}
	if cfg.Retryable == nil {
		cfg.Retryable = DefaultRetryable
	}
	return cfg
}

type permanentError struct{ err error }

func (p permanentError) Error() string { return p.err.Error() }
func (p permanentError) Unwrap() error { return p.err }

// Permanent marks err as not worth retrying. It does not count as a breaker
// failure either: the store answered, the answer was just negative.
func Permanent(err error) error {
	if err == nil {
		return nil
	}
	return permanentError{err: err}
}

// DefaultRetryable retries everything except permanent errors and context
// cancellation.
func DefaultRetryable(err error) bool {
	if err == nil {
		return false
	}
	var p permanentError
	if errors.As(err, &p) {
		return false
	}
	return !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
}

// IsCircuitOpen reports whether err was returned because the breaker is open.
func IsCircuitOpen(err error) bool {
	return errors.Is(err, circuitbreaker.ErrOpen)
}

// Executor runs calls returning T through retry and circuit breaker policies.
type Executor[T any] struct {
	name     string
	breaker  circuitbreaker.CircuitBreaker[T]
	executor failsafe.Executor[T]
}

// NewExecutor builds an executor from cfg.
func NewExecutor[T any](cfg ExecutorConfig) *Executor[T] {
	cfg = normalize(cfg)
	handle := func(_ T, err error) bool { return cfg.Retryable(err) }

	retry := retrypolicy.NewBuilder[T]().
		WithBackoff(cfg.BaseDelay, cfg.MaxDelay).
		WithMaxRetries(cfg.MaxRetries).
		WithJitterFactor(0.1).
		HandleIf(handle).
		ReturnLastFailure().
		Build()

	builder := circuitbreaker.NewBuilder[T]().
		WithFailureThresholdRatio(cfg.FailureThreshold, cfg.FailureWindow).
		WithDelay(cfg.OpenDelay).
		WithSuccessThreshold(cfg.SuccessThreshold).
		HandleIf(handle)

	if cfg.Logger != nil || cfg.OnStateChange != nil {
		builder = builder.OnStateChanged(func(event circuitbreaker.StateChangedEvent) {
			from, to := convertState(event.OldState), convertState(event.NewState)
			if cfg.Logger != nil {
				cfg.Logger.WithFields(logging.Fields{
					"circuit_breaker": cfg.Name,
					"from_state":      from.String(),
					"to_state":        to.String(),
				}).Warn("circuit breaker state change")
			}
			if cfg.OnStateChange != nil {
				cfg.OnStateChange(cfg.Name, from, to)
			}
		})
	}
	breaker := builder.Build()

	// Retries wrap the breaker, so an open breaker fails each attempt fast.
	return &Executor[T]{
		name:     cfg.Name,
		breaker:  breaker,
		executor: failsafe.With[T](retry, breaker),
	}
}

// Get runs fn. ctx bounds the whole execution including backoff waits.
func (e *Executor[T]) Get(ctx context.Context, fn func(ctx context.Context) (T, error)) (T, error) {
	return e.executor.WithContext(ctx).Get(func() (T, error) {
		return fn(ctx)
	})
}

// State returns the current state of the circuit breaker.
func (e *Executor[T]) State() BreakerState {
	return convertState(e.breaker.State())
}

func (e *Executor[T]) Name() string {
	return e.name
}

func convertState(state circuitbreaker.State) BreakerState {
	switch state {
	case circuitbreaker.HalfOpenState:
		return StateHalfOpen
	case circuitbreaker.OpenState:
		return StateOpen
	default:
		return StateClosed
	}
}
