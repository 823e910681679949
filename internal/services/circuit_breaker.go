package services

import (
	"errors"
	"sync"
	"time"

	"finance-tracker/internal/models"
)

var ErrCircuitBreakerOpen = errors.New("circuit breaker is open")

const (
	StateClosed models.CircuitBreakerState = iota
	StateOpen
	StateHalfOpen
)

// CircuitBreakerConfig tunes the breaker in front of the mail broker.
// Clock defaults to SystemClock.
type CircuitBreakerConfig struct {
	MaxFailures     int
	ResetTimeout    time.Duration
	HalfOpenMaxSucc int
	Clock           Clock
}

func DefaultCircuitBreakerConfig() CircuitBreakerConfig {
	return CircuitBreakerConfig{
		MaxFailures:     5,
		ResetTimeout:    30 * time.Second,
		HalfOpenMaxSucc: 1,
	}
}

type CircuitBreaker struct {
	mu       sync.Mutex
	cfg      CircuitBreakerConfig
	state    models.CircuitBreakerState
	failures int
	probes   int
	openedAt time.Time
}

func NewCircuitBreaker(cfg CircuitBreakerConfig) CircuitBreakerInterface {
	cfg.MaxFailures = max(cfg.MaxFailures, 1)
	cfg.HalfOpenMaxSucc = max(cfg.HalfOpenMaxSucc, 1)
	if cfg.Clock == nil {
		cfg.Clock = SystemClock{}
	}
	return &CircuitBreaker{cfg: cfg, state: StateClosed}
}

// IsOpen reports whether deliveries must be skipped. Once ResetTimeout has
// passed since the breaker opened, it turns half-open and admits probes.
func (cb *CircuitBreaker) IsOpen() bool {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	if cb.state != StateOpen {
		return false
	}
	if cb.cfg.Clock.Now().Sub(cb.openedAt) >= cb.cfg.ResetTimeout {
		cb.state = StateHalfOpen
		cb.probes = 0
		return false
	}
	return true
}

func (cb *CircuitBreaker) RecordSuccess() {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	if cb.state != StateHalfOpen {
		cb.failures = 0
		return
	}
	cb.probes++
	if cb.probes >= cb.cfg.HalfOpenMaxSucc {
		cb.close()
	}
}

func (cb *CircuitBreaker) RecordFailure() {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	if cb.state == StateHalfOpen {
		cb.trip()
		return
	}
	cb.failures++
	if cb.state == StateClosed && cb.failures >= cb.cfg.MaxFailures {
		cb.trip()
	}
}

func (cb *CircuitBreaker) GetState() models.CircuitBreakerState {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	return cb.state
}

func (cb *CircuitBreaker) GetFailureCount() int {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	return cb.failures
}

func (cb *CircuitBreaker) Reset() {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	cb.close()
}

func (cb *CircuitBreaker) trip() {
	cb.state = StateOpen
	cb.probes = 0
	cb.openedAt = cb.cfg.Clock.Now()
}

func (cb *CircuitBreaker) close() {
	cb.state = StateClosed
	cb.failures = 0
	cb.probes = 0
}
