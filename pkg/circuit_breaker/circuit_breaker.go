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
		return "closed"
	case Open:
		return "open"
	case HalfOpen:
		return "half-open"
	}
	return "unknown"
}

var ErrOpenCB = errors.New("circuit breaker is open")

type Config struct {
	// RecordLength is the number of most recent calls tracked while closed.
	RecordLength int
	// Timeout is how long the breaker stays open before letting calls probe.
	Timeout time.Duration
	// Percentile is the failure share of the window that opens the breaker.
	Percentile float64
	// RecoveryRequests successful half-open calls close the breaker again.
	RecoveryRequests int
}

type CircuitBreaker interface {
	Call(service func() error) error
	State() Status
	Reset()
}

type Option func(cb *circuitBreaker)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(cb *circuitBreaker) {
		cb.now = now
	}
}

type circuitBreaker struct {
	mu  sync.Mutex
	cfg Config
	now func() time.Time

	state    Status
	openedAt time.Time
	// failures of the last RecordLength calls, a ring indexed by pos
	buffer       []bool
	pos          int
	successCount int
}

func New(cfg Config, opts ...Option) CircuitBreaker {
	if cfg.RecordLength <= 0 {
		cfg.RecordLength = 1
	}
	cb := &circuitBreaker{
		cfg:    cfg,
		now:    time.Now,
		state:  Closed,
		buffer: make([]bool, cfg.RecordLength),
	}
	for _, opt := range opts {
		opt(cb)
	}
	return cb
}

func (cb *circuitBreaker) Call(service func() error) error {
	cb.mu.Lock()
	if cb.state == Open {
		if cb.now().Sub(cb.openedAt) < cb.cfg.Timeout {
			cb.mu.Unlock()
			return ErrOpenCB
		}
		cb.state = HalfOpen
		cb.successCount = 0
	}
	cb.mu.Unlock()

	err := service()

	cb.mu.Lock()
	defer cb.mu.Unlock()

	if cb.state == HalfOpen {
		if err != nil {
			cb.trip()
			return err
		}
		cb.successCount++
		if cb.successCount >= cb.cfg.RecoveryRequests {
			cb.reset()
		}
		return nil
	}

	cb.buffer[cb.pos] = err != nil
	cb.pos = (cb.pos + 1) % len(cb.buffer)

	fails := 0
	for _, failed := range cb.buffer {
		if failed {
			fails++
		}
	}
	if float64(fails)/float64(len(cb.buffer)) >= cb.cfg.Percentile {
		cb.trip()
	}
	return err
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

func (cb *circuitBreaker) trip() {
	cb.state = Open
	cb.successCount = 0
	cb.openedAt = cb.now()
}

func (cb *circuitBreaker) reset() {
	for i := range cb.buffer {
		cb.buffer[i] = false
	}
	cb.successCount = 0
	cb.pos = 0
	cb.state = Closed
}
