// Package animation implements the count-up stat counters and the price
// display tween.
package animation

import (
	"context"
	"math"
	"sync"
	"time"

	"github.com/Faisal-badshah/pathan-fitness/internal/metrics"
)

// State is the counter lifecycle: a counter idles until its one-shot
// visibility trigger, animates frame by frame, and settles exactly on the
// target.
type State int

const (
	StateIdle State = iota
	StateAnimating
	StateSettled
)

// DefaultDuration matches the stock count-up duration.
const DefaultDuration = 2 * time.Second

// frameInterval approximates a 60 fps frame callback.
const frameInterval = 16 * time.Millisecond

// EaseOutQuart maps linear progress [0,1] onto the quartic ease-out curve.
func EaseOutQuart(progress float64) float64 {
	return 1 - math.Pow(1-progress, 4)
}

// Sample derives the displayed value at a moment in the animation: eased
// progress times the target, floored. At or past the full duration the value
// is forced to exactly the target so easing and floor rounding can never
// leave it short.
func Sample(target int, elapsed, duration time.Duration) int {
	if duration <= 0 || elapsed >= duration {
		return target
	}
	if elapsed < 0 {
		return 0
	}

	progress := float64(elapsed) / float64(duration)
	return int(math.Floor(EaseOutQuart(progress) * float64(target)))
}

// Counter animates an integer from 0 to a target. Trigger starts it at most
// once; Stop (or context cancellation) tears the frame loop down and
// guarantees no frame callback fires afterwards.
type Counter struct {
	target   int
	duration time.Duration
	onFrame  func(value int)

	mu      sync.Mutex
	state   State
	value   int
	cancel  context.CancelFunc
	done    chan struct{}
}

// NewCounter builds an idle counter. onFrame receives every sampled value,
// including the final exact target; it may be nil.
func NewCounter(target int, duration time.Duration, onFrame func(int)) *Counter {
	if duration <= 0 {
		duration = DefaultDuration
	}
	return &Counter{
		target:   target,
		duration: duration,
		onFrame:  onFrame,
	}
}

// Trigger starts the animation the first time the counter becomes visible.
// Subsequent calls are no-ops, matching the once-per-mount visibility
// trigger.
func (c *Counter) Trigger(ctx context.Context) {
	c.mu.Lock()
	if c.state != StateIdle {
		c.mu.Unlock()
		return
	}

	runCtx, cancel := context.WithCancel(ctx)
	c.state = StateAnimating
	c.cancel = cancel
	c.done = make(chan struct{})
	c.mu.Unlock()

	go c.run(runCtx)
}

func (c *Counter) run(ctx context.Context) {
	defer close(c.done)

	start := time.Now()
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			metrics.RecordCounterAnimation("cancelled")
			return
		case now := <-ticker.C:
			elapsed := now.Sub(start)
			value := Sample(c.target, elapsed, c.duration)

			c.mu.Lock()
			c.value = value
			settled := elapsed >= c.duration
			if settled {
				c.state = StateSettled
			}
			c.mu.Unlock()

			if c.onFrame != nil {
				c.onFrame(value)
			}
			if settled {
				metrics.RecordCounterAnimation("settled")
				return
			}
		}
	}
}

// Stop cancels a running animation and waits for the frame loop to exit, so
// the caller knows no late callback will touch discarded state. Stopping an
// idle or settled counter is a no-op.
func (c *Counter) Stop() {
	c.mu.Lock()
	cancel := c.cancel
	done := c.done
	c.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}

// Value is the most recently displayed integer.
func (c *Counter) Value() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.value
}

func (c *Counter) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}
