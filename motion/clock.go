package motion

import (
	"sort"
	"sync"
	"time"
)

// Timer is a pending one-shot or repeating callback. Stop reports whether
// the call stopped an active timer.
type Timer interface {
	Stop() bool
}

// Clock is the time source injected into every hook.
type Clock interface {
	Now() time.Time
	// AfterFunc calls f once after d.
	AfterFunc(d time.Duration, f func()) Timer
	// Every calls f every d until the returned Timer is stopped. d must be
	// positive.
	Every(d time.Duration, f func()) Timer
}

// SystemClock is a Clock backed by the runtime timers. Callbacks run on
// their own goroutines.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

func (SystemClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

func (SystemClock) Every(d time.Duration, f func()) Timer {
	t := &tickerTimer{ticker: time.NewTicker(d), done: make(chan struct{})}
	go func() {
		for {
			select {
			case <-t.ticker.C:
				f()
			case <-t.done:
				return
			}
		}
	}()
	return t
}

type tickerTimer struct {
	ticker *time.Ticker
	done   chan struct{}
	once   sync.Once
}

func (t *tickerTimer) Stop() bool {
	stopped := false
	t.once.Do(func() {
		t.ticker.Stop()
		close(t.done)
		stopped = true
	})
	return stopped
}

// VirtualClock is a manually advanced Clock. Advance fires every callback
// that falls due, in deadline order (registration order for equal
// deadlines), with Now reporting each callback's deadline while it runs.
// Callbacks run synchronously on the goroutine calling Advance and may
// schedule or stop timers.
type VirtualClock struct {
	mu     sync.Mutex
	now    time.Time
	seq    uint64
	timers []*virtualTimer
}

// NewVirtualClock returns a VirtualClock reading start.
func NewVirtualClock(start time.Time) *VirtualClock {
	return &VirtualClock{now: start}
}

func (c *VirtualClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *VirtualClock) AfterFunc(d time.Duration, f func()) Timer {
	return c.schedule(d, 0, f)
}

func (c *VirtualClock) Every(d time.Duration, f func()) Timer {
	if d <= 0 {
		panic("motion: non-positive interval for VirtualClock.Every")
	}
	return c.schedule(d, d, f)
}

func (c *VirtualClock) schedule(d, every time.Duration, f func()) Timer {
	c.mu.Lock()
	defer c.mu.Unlock()
	if d < 0 {
		d = 0
	}
	c.seq++
	t := &virtualTimer{clock: c, at: c.now.Add(d), every: every, seq: c.seq, fn: f}
	c.timers = append(c.timers, t)
	return t
}

// Pending returns the number of scheduled timers.
func (c *VirtualClock) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.timers)
}

// Advance moves the clock forward by d, firing due callbacks along the way.
func (c *VirtualClock) Advance(d time.Duration) {
	c.mu.Lock()
	target := c.now.Add(d)
	c.mu.Unlock()
	c.AdvanceTo(target)
}

// AdvanceTo moves the clock to target. Moving backwards is a no-op.
func (c *VirtualClock) AdvanceTo(target time.Time) {
	for {
		c.mu.Lock()
		t := c.nextDue(target)
		if t == nil {
			if target.After(c.now) {
				c.now = target
			}
			c.mu.Unlock()
			return
		}
		c.now = t.at
		if t.every > 0 {
			t.at = t.at.Add(t.every)
			c.seq++
			t.seq = c.seq
		} else {
			c.remove(t)
		}
		fn := t.fn
		c.mu.Unlock()
		fn()
	}
}

func (c *VirtualClock) nextDue(target time.Time) *virtualTimer {
	if len(c.timers) == 0 {
		return nil
	}
	sort.SliceStable(c.timers, func(i, j int) bool {
		a, b := c.timers[i], c.timers[j]
		if a.at.Equal(b.at) {
			return a.seq < b.seq
		}
		return a.at.Before(b.at)
	})
	if first := c.timers[0]; !first.at.After(target) {
		return first
	}
	return nil
}

func (c *VirtualClock) remove(t *virtualTimer) bool {
	for i, x := range c.timers {
		if x == t {
			c.timers = append(c.timers[:i], c.timers[i+1:]...)
			return true
		}
	}
	return false
}

type virtualTimer struct {
	clock *VirtualClock
	at    time.Time
	every time.Duration
	seq   uint64
	fn    func()
}

func (t *virtualTimer) Stop() bool {
	t.clock.mu.Lock()
	defer t.clock.mu.Unlock()
	return t.clock.remove(t)
}
