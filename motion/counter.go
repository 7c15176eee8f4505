package motion

import (
	"math"
	"sync"
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const (
	// DefaultCounterDuration is used when CounterOptions.Duration is zero.
	DefaultCounterDuration = 2000 * time.Millisecond
	// FrameInterval is the ~60 Hz sampling cadence.
	FrameInterval = 16 * time.Millisecond
)

// CounterOptions configure a Counter. Zero Duration and Interval take the
// package defaults.
type CounterOptions struct {
	End      float64
	Start    float64
	Duration time.Duration
	Delay    time.Duration
	Interval time.Duration
}

func (o CounterOptions) withDefaults() CounterOptions {
	if o.Duration <= 0 {
		o.Duration = DefaultCounterDuration
	}
	if o.Interval <= 0 {
		o.Interval = FrameInterval
	}
	return o
}

// CounterValueAt returns the unrounded counter value elapsed after sampling
// began: Start + (End-Start) * (1 - (1-p)^4) with p = min(elapsed/Duration, 1).
func CounterValueAt(opts CounterOptions, elapsed time.Duration) float64 {
	opts = opts.withDefaults()
	switch {
	case elapsed <= 0:
		return opts.Start
	case elapsed >= opts.Duration:
		return opts.End
	}
	return opts.Start + (opts.End-opts.Start)*easeOutQuart(elapsed, opts.Duration)
}

// easeOutQuart maps elapsed/duration onto [0, 1]. The tween runs over the
// unit interval so float32 precision never pushes a value past End.
func easeOutQuart(elapsed, duration time.Duration) float64 {
	tw := gween.New(0, 1, millis(duration), ease.OutQuart)
	p, _ := tw.Set(millis(elapsed))
	return float64(p)
}

func millis(d time.Duration) float32 {
	return float32(float64(d) / float64(time.Millisecond))
}

// roundHalfUp matches the browser's Math.round, which rounds .5 toward +Inf.
func roundHalfUp(v float64) int64 {
	return int64(math.Floor(v + 0.5))
}

// Counter drives a number from Start to End over Duration once Delay has
// elapsed since mount.
type Counter struct {
	mu       sync.Mutex
	clock    Clock
	opts     CounterOptions
	delay    Timer
	ticker   Timer
	run      uint64
	started  bool
	begun    time.Time
	done     bool
	stopped  bool
	frozen   int64
	last     int64
	onChange func(int64)
}

// NewCounter mounts a Counter: the delay timer is armed immediately.
func NewCounter(clock Clock, opts CounterOptions) *Counter {
	opts = opts.withDefaults()
	c := &Counter{clock: clock, opts: opts, last: roundHalfUp(opts.Start)}
	c.mu.Lock()
	defer c.mu.Unlock()
	if opts.Delay <= 0 {
		c.beginLocked()
		return c
	}
	c.delay = clock.AfterFunc(opts.Delay, func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		if c.stopped || c.started {
			return
		}
		c.beginLocked()
	})
	return c
}

// OnChange registers fn to run from the sampling ticks whenever the rounded
// value changes.
func (c *Counter) OnChange(fn func(int64)) {
	c.mu.Lock()
	c.onChange = fn
	c.mu.Unlock()
}

func (c *Counter) beginLocked() {
	c.started = true
	c.done = false
	c.begun = c.clock.Now()
	c.run++
	run := c.run
	if c.ticker != nil {
		c.ticker.Stop()
	}
	c.ticker = c.clock.Every(c.opts.Interval, func() { c.tick(run) })
}

func (c *Counter) tick(run uint64) {
	c.mu.Lock()
	if c.stopped || run != c.run {
		c.mu.Unlock()
		return
	}
	now := c.clock.Now()
	v := c.valueLocked(now)
	if now.Sub(c.begun) >= c.opts.Duration {
		c.done = true
		if c.ticker != nil {
			c.ticker.Stop()
			c.ticker = nil
		}
	}
	changed := v != c.last
	c.last = v
	fn := c.onChange
	c.mu.Unlock()
	if changed && fn != nil {
		fn(v)
	}
}

func (c *Counter) valueLocked(now time.Time) int64 {
	switch {
	case c.stopped:
		return c.frozen
	case !c.started:
		return roundHalfUp(c.opts.Start)
	case c.done:
		return roundHalfUp(c.opts.End)
	}
	return roundHalfUp(CounterValueAt(c.opts, now.Sub(c.begun)))
}

// Value returns the rounded value at the clock's current time.
func (c *Counter) Value() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.valueLocked(c.clock.Now())
}

// Animating reports whether the counter is between its delay and its end.
func (c *Counter) Animating() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.started && !c.done && !c.stopped
}

// Done reports whether the counter reached End.
func (c *Counter) Done() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.done
}

// Options returns the effective options.
func (c *Counter) Options() CounterOptions {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.opts
}

// Retarget swaps end, start and duration while mounted. If the delay has
// already elapsed, sampling restarts now from the new parameters; otherwise
// the new parameters apply when the delay fires.
func (c *Counter) Retarget(end, start float64, duration time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.stopped {
		return
	}
	c.opts.End = end
	c.opts.Start = start
	c.opts.Duration = duration
	c.opts = c.opts.withDefaults()
	if c.started {
		c.beginLocked()
	}
}

// Stop unmounts the counter, releasing its timers and freezing its value.
func (c *Counter) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.stopped {
		return
	}
	c.frozen = c.valueLocked(c.clock.Now())
	c.stopped = true
	if c.delay != nil {
		c.delay.Stop()
		c.delay = nil
	}
	if c.ticker != nil {
		c.ticker.Stop()
		c.ticker = nil
	}
}
