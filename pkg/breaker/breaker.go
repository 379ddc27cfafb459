package breaker

import (
	"errors"
	"sync"
	"time"
)

type state uint8

const (
	closed state = iota + 1
	open
	halfOpen
)

var ErrOpen = errors.New("circuit breaker is open")

// Breaker guards a remote dependency. While closed it tracks the failure
// ratio over a sliding window of calls; when the ratio crosses the threshold
// it opens and fails fast until the cooldown elapses, then lets calls through
// half-open until a recovery streak closes it again.
type Breaker interface {
	Call(fn func() error) error
	Reset()
}

type circuitBreaker struct {
	mu sync.Mutex

	state           state
	window          []bool
	pos             int
	threshold       float64
	cooldown        time.Duration
	recoveryStreak  int
	successes       int
	lastAttemptedAt time.Time

	now func() time.Time
}

func New(windowSize int, cooldown time.Duration, threshold float64, recoveryStreak int) Breaker {
	return &circuitBreaker{
		state:          closed,
		window:         make([]bool, windowSize),
		threshold:      threshold,
		cooldown:       cooldown,
		recoveryStreak: recoveryStreak,
		now:            time.Now,
	}
}

func (cb *circuitBreaker) Call(fn func() error) error {
	cb.mu.Lock()
	if cb.state == open {
		if cb.now().Sub(cb.lastAttemptedAt) <= cb.cooldown {
			cb.mu.Unlock()
			return ErrOpen
		}
		cb.state = halfOpen
		cb.successes = 0
	}
	cb.mu.Unlock()

	err := fn()

	cb.mu.Lock()
	defer cb.mu.Unlock()

	cb.window[cb.pos] = err != nil
	cb.pos = (cb.pos + 1) % len(cb.window)

	if cb.state == halfOpen {
		if err != nil {
			cb.state = open
			cb.successes = 0
			cb.lastAttemptedAt = cb.now()
		} else {
			cb.successes++
			if cb.successes > cb.recoveryStreak {
				cb.reset()
			}
		}
		return err
	}

	fails := 0
	for _, failed := range cb.window {
		if failed {
			fails++
		}
	}
	if float64(fails)/float64(len(cb.window)) >= cb.threshold {
		cb.state = open
		cb.successes = 0
		cb.lastAttemptedAt = cb.now()
	}

	return err
}

func (cb *circuitBreaker) Reset() {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	cb.reset()
}

func (cb *circuitBreaker) reset() {
	for i := range cb.window {
		cb.window[i] = false
	}
	cb.pos = 0
	cb.successes = 0
	cb.state = closed
}
