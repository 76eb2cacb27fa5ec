package clients

import (
	"sync"
	"time"

	"github.com/jsamuelsen/quotesync/internal/platform/config"
)

// State is the position of a circuit breaker.
type State int

const (
	// StateClosed lets every request through.
	StateClosed State = iota

	// StateOpen rejects requests until the cool-down elapses.
	StateOpen

	// StateHalfOpen lets a limited number of probes through.
	StateHalfOpen
)

// String returns a human-readable name for the state.
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

// StateChangeFunc observes breaker transitions.
type StateChangeFunc func(from, to State)

// CircuitBreaker stops calls to a remote that keeps failing so a sync pass
// fails fast instead of waiting out every retry.
//
// Transitions:
//   - Closed → Open after MaxFailures consecutive failures
//   - Open → HalfOpen once Timeout has passed since the last failure
//   - HalfOpen → Closed after HalfOpenLimit consecutive successes
//   - HalfOpen → Open on any failure
type CircuitBreaker struct {
	cfg config.CircuitBreakerConfig
	now func() time.Time

	mu          sync.Mutex
	state       State
	failures    int
	successes   int
	probes      int
	lastFailure time.Time
	listeners   []StateChangeFunc
}

// NewCircuitBreaker creates a closed breaker.
func NewCircuitBreaker(cfg config.CircuitBreakerConfig) *CircuitBreaker {
	if cfg.MaxFailures < 1 {
		cfg.MaxFailures = 1
	}

	if cfg.HalfOpenLimit < 1 {
		cfg.HalfOpenLimit = 1
	}

	return &CircuitBreaker{
		cfg:   cfg,
		now:   time.Now,
		state: StateClosed,
	}
}

// OnStateChange registers fn to run after every transition.
func (cb *CircuitBreaker) OnStateChange(fn StateChangeFunc) {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	cb.listeners = append(cb.listeners, fn)
}

// Allow returns ErrCircuitOpen when the request must not be sent. A nil
// return reserves a slot that the caller releases with Record.
func (cb *CircuitBreaker) Allow() error {
	cb.mu.Lock()

	var notify func()

	allowed := true

	switch cb.state {
	case StateOpen:
		if cb.now().Sub(cb.lastFailure) < cb.cfg.Timeout {
			allowed = false

			break
		}

		notify = cb.transition(StateHalfOpen)
		cb.probes = 1
	case StateHalfOpen:
		if cb.probes >= cb.cfg.HalfOpenLimit {
			allowed = false

			break
		}

		cb.probes++
	}

	cb.mu.Unlock()

	if notify != nil {
		notify()
	}

	if !allowed {
		return ErrCircuitOpen
	}

	return nil
}

// Record releases the slot taken by Allow and counts the outcome.
func (cb *CircuitBreaker) Record(failed bool) {
	cb.mu.Lock()

	var notify func()

	if failed {
		cb.lastFailure = cb.now()
	}

	switch cb.state {
	case StateClosed:
		if !failed {
			cb.failures = 0

			break
		}

		cb.failures++
		if cb.failures >= cb.cfg.MaxFailures {
			notify = cb.transition(StateOpen)
		}
	case StateHalfOpen:
		cb.probes = max(cb.probes-1, 0)

		if failed {
			notify = cb.transition(StateOpen)

			break
		}

		cb.successes++
		if cb.successes >= cb.cfg.HalfOpenLimit {
			notify = cb.transition(StateClosed)
		}
	}

	cb.mu.Unlock()

	if notify != nil {
		notify()
	}
}

// State returns the current state.
func (cb *CircuitBreaker) State() State {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	return cb.state
}

// transition must be called with the lock held. The returned func notifies
// listeners and must be called after unlocking.
func (cb *CircuitBreaker) transition(to State) func() {
	from := cb.state
	if from == to {
		return nil
	}

	cb.state = to
	cb.failures = 0
	cb.successes = 0

	if to != StateHalfOpen {
		cb.probes = 0
	}

	listeners := append([]StateChangeFunc(nil), cb.listeners...)

	return func() {
		for _, fn := range listeners {
			fn(from, to)
		}
	}
}
