// Package throttle rate-limits a callback to one accepted call per window.
package throttle

import (
	"sync"
	"time"

	"github.com/alexanderramin/timewheel/internal/clock"
)

// DefaultWindow is the minimum spacing between accepted calls.
const DefaultWindow = 200 * time.Millisecond

// Throttle drops calls that arrive within Window of the last accepted
// one. Dropped calls are not queued or replayed. A Throttle is shared by
// every caller that goes through it.
type Throttle[T any] struct {
	mu           sync.Mutex
	clock        clock.Clock
	window       time.Duration
	lastAccepted time.Time
}

// Option configures a Throttle.
type Option func(*options)

type options struct {
	clock  clock.Clock
	window time.Duration
}

// WithClock overrides the time source.
func WithClock(c clock.Clock) Option {
	return func(o *options) { o.clock = c }
}

// WithWindow overrides the throttle window. Non-positive values are ignored.
func WithWindow(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.window = d
		}
	}
}

// New creates a Throttle whose first call is always accepted.
func New[T any](opts ...Option) *Throttle[T] {
	o := options{clock: clock.Real{}, window: DefaultWindow}
	for _, opt := range opts {
		opt(&o)
	}
	return &Throttle[T]{
		clock:        o.clock,
		window:       o.window,
		lastAccepted: o.clock.Now().Add(-o.window),
	}
}

// Call invokes fn(arg) if at least one window has passed since the last
// accepted call, and reports whether it did.
func (t *Throttle[T]) Call(fn func(T), arg T) bool {
	if !t.admit() {
		return false
	}
	fn(arg)
	return true
}

func (t *Throttle[T]) admit() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	now := t.clock.Now()
	if now.Before(t.lastAccepted.Add(t.window)) {
		return false
	}
	t.lastAccepted = now
	return true
}

// Window returns the configured window.
func (t *Throttle[T]) Window() time.Duration {
	return t.window
}
