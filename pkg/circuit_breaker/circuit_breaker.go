package circuit_breaker

import (
	"errors"
	"sync"
	"time"
)

type Status uint8

const (
	Closed   Status = 1
	Open     Status = 2
	HalfOpen Status = 3
)

func (s Status) String() string {
	switch s {
	case Closed:
		return "CLOSED"
	case Open:
		return "OPEN"
	case HalfOpen:
		return "HALF_OPEN"
	default:
		return "UNKNOWN"
	}
}

var ErrOpenCB = errors.New("circuit breaker is open")

type Settings struct {
	// Window is how many of the latest calls are tracked while closed.
	Window int
	// Timeout is how long the breaker stays open before letting a probe through.
	Timeout time.Duration
	// FailureRatio of the window that trips the breaker.
	FailureRatio float64
	// RecoveryRequests is the number of consecutive half-open successes needed to close.
	RecoveryRequests int
}

type CircuitBreaker interface {
	Call(fn func() error) error
	State() Status
	Reset()
}

type circuitBreaker struct {
	mu       sync.Mutex
	settings Settings

	state    Status
	openedAt time.Time
	// failed[i] is the outcome of a call in a ring of Window slots.
	failed    []bool
	pos       int
	successes int
}

func New(s Settings) CircuitBreaker {
	if s.Window <= 0 {
		s.Window = 1
	}
	if s.RecoveryRequests <= 0 {
		s.RecoveryRequests = 1
	}
	return &circuitBreaker{
		settings: s,
		state:    Closed,
		failed:   make([]bool, s.Window),
	}
}

func (cb *circuitBreaker) Call(fn func() error) error {
	if err := cb.before(); err != nil {
		return err
	}
	err := fn()
	cb.after(err != nil)
	return err
}

func (cb *circuitBreaker) before() error {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	if cb.state != Open {
		return nil
	}
	if time.Since(cb.openedAt) <= cb.settings.Timeout {
		return ErrOpenCB
	}
	cb.state = HalfOpen
	cb.successes = 0
	return nil
}

func (cb *circuitBreaker) after(failed bool) {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	cb.failed[cb.pos] = failed
	cb.pos = (cb.pos + 1) % len(cb.failed)

	switch cb.state {
	case HalfOpen:
		if failed {
			cb.trip()
			return
		}
		cb.successes++
		if cb.successes >= cb.settings.RecoveryRequests {
			cb.reset()
		}
	case Closed:
		fails := 0
		for _, f := range cb.failed {
			if f {
				fails++
			}
		}
		if float64(fails)/float64(len(cb.failed)) >= cb.settings.FailureRatio {
			cb.trip()
		}
	}
}

func (cb *circuitBreaker) trip() {
	cb.state = Open
	cb.successes = 0
	cb.openedAt = time.Now()
}

func (cb *circuitBreaker) State() Status {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	return cb.state
}

func (cb *circuitBreaker) Reset() {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	cb.reset()
}

func (cb *circuitBreaker) reset() {
	for i := range cb.failed {
		cb.failed[i] = false
	}
	cb.pos = 0
	cb.successes = 0
	cb.state = Closed
}
