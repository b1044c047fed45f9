package clients

import (
	"sync"
	"time"

	"github.com/jsamuelsen/daily-quote/internal/platform/config"
)

const defaultCircuitTimeout = 30 * time.Second

// State is the position of a CircuitBreaker.
type State int

const (
	// StateClosed lets every request through.
	StateClosed State = iota
	// StateOpen refuses requests until the cool-down has passed.
	StateOpen
	// StateHalfOpen lets a few trial requests through.
	StateHalfOpen
)

var stateNames = [...]string{
	StateClosed:   "closed",
	StateOpen:     "open",
	StateHalfOpen: "half-open",
}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "unknown"
	}

	return stateNames[s]
}

// CircuitBreaker stops hammering the quote API once it keeps failing.
// While open, the provider goes straight to the fallback list.
//
//	closed    --MaxFailures consecutive failures--> open
//	open      --Timeout elapsed, next Allow-------> half-open
//	half-open --HalfOpenLimit successes-----------> closed
//	half-open --any failure-----------------------> open
type CircuitBreaker struct {
	mu  sync.RWMutex
	cfg config.CircuitBreakerConfig

	state    State
	failures int // consecutive, while closed
	// trials in flight and trials succeeded, while half-open
	inFlight  int
	successes int
	openedAt  time.Time

	onStateChange func(from, to State)

	// now is replaced in tests.
	now func() time.Time
}

// NewCircuitBreaker returns a closed breaker. Zero config values fall back
// to the package defaults.
func NewCircuitBreaker(cfg config.CircuitBreakerConfig) *CircuitBreaker {
	if cfg.MaxFailures < 1 {
		cfg.MaxFailures = config.DefaultClientCircuitMaxFailures
	}

	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultCircuitTimeout
	}

	if cfg.HalfOpenLimit < 1 {
		cfg.HalfOpenLimit = config.DefaultClientCircuitHalfOpenLimit
	}

	return &CircuitBreaker{cfg: cfg, now: time.Now}
}

// OnStateChange registers fn to be called, on its own goroutine, after
// every transition.
func (cb *CircuitBreaker) OnStateChange(fn func(from, to State)) {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	cb.onStateChange = fn
}

// Allow reports whether a request may be sent now. Once the cool-down has
// passed, the first call moves an open breaker to half-open and takes a
// trial slot; at most HalfOpenLimit trials run at once.
func (cb *CircuitBreaker) Allow() bool {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	if cb.state == StateOpen {
		if cb.now().Sub(cb.openedAt) < cb.cfg.Timeout {
			return false
		}

		cb.moveTo(StateHalfOpen)
	}

	if cb.state == StateHalfOpen {
		if cb.inFlight >= cb.cfg.HalfOpenLimit {
			return false
		}

		cb.inFlight++
	}

	return true
}

// RecordSuccess reports a request the quote API answered.
func (cb *CircuitBreaker) RecordSuccess() {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	switch cb.state {
	case StateClosed:
		cb.failures = 0
	case StateHalfOpen:
		cb.releaseTrial()

		cb.successes++
		if cb.successes >= cb.cfg.HalfOpenLimit {
			cb.moveTo(StateClosed)
		}
	}
}

// RecordFailure reports a request the quote API failed. A failed trial
// reopens the breaker at once.
func (cb *CircuitBreaker) RecordFailure() {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	cb.openedAt = cb.now()

	switch cb.state {
	case StateClosed:
		cb.failures++
		if cb.failures >= cb.cfg.MaxFailures {
			cb.moveTo(StateOpen)
		}
	case StateHalfOpen:
		cb.releaseTrial()
		cb.moveTo(StateOpen)
	}
}

// Abandon releases the half-open slot of a request that was cancelled before
// the downstream answered. It counts as neither success nor failure.
func (cb *CircuitBreaker) Abandon() {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	if cb.state == StateHalfOpen {
		cb.releaseTrial()
	}
}

// State returns the current state.
func (cb *CircuitBreaker) State() State {
	cb.mu.RLock()
	defer cb.mu.RUnlock()

	return cb.state
}

// releaseTrial frees one half-open slot. Callers hold mu.
func (cb *CircuitBreaker) releaseTrial() {
	if cb.inFlight > 0 {
		cb.inFlight--
	}
}

// moveTo switches state and resets the counters. Callers hold mu.
func (cb *CircuitBreaker) moveTo(next State) {
	if cb.state == next {
		return
	}

	prev := cb.state
	cb.state = next
	cb.failures = 0
	cb.successes = 0
	cb.inFlight = 0

	if fn := cb.onStateChange; fn != nil {
		go fn(prev, next)
	}
}
