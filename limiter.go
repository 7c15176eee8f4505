package clinic

import (
	"sync"
	"time"

	"github.com/13harshit/ri-dianosic/motion"
)

// Limiter rate-limits attempts per key (usually a client IP) within a
// sliding window.
type Limiter struct {
	mu       sync.Mutex
	clock    motion.Clock
	attempts map[string][]time.Time
	max      int
	window   time.Duration
	sweeper  motion.Timer
}

// NewLimiter creates a Limiter that allows max attempts per window. Expired
// entries are swept once per window until Stop.
func NewLimiter(clock motion.Clock, max int, window time.Duration) *Limiter {
	if clock == nil {
		clock = motion.SystemClock{}
	}
	l := &Limiter{
		clock:    clock,
		attempts: make(map[string][]time.Time),
		max:      max,
		window:   window,
	}
	l.sweeper = clock.Every(window, l.sweep)
	return l
}

func (l *Limiter) sweep() {
	cutoff := l.clock.Now().Add(-l.window)
	l.mu.Lock()
	defer l.mu.Unlock()
	for key, hits := range l.attempts {
		kept := prune(hits, cutoff)
		if len(kept) == 0 {
			delete(l.attempts, key)
		} else {
			l.attempts[key] = kept
		}
	}
}

func prune(hits []time.Time, cutoff time.Time) []time.Time {
	kept := hits[:0]
	for _, t := range hits {
		if t.After(cutoff) {
			kept = append(kept, t)
		}
	}
	return kept
}

// Allow checks the limit and records the attempt when it is allowed.
func (l *Limiter) Allow(key string) bool {
	now := l.clock.Now()
	l.mu.Lock()
	defer l.mu.Unlock()
	kept := prune(l.attempts[key], now.Add(-l.window))
	if len(kept) >= l.max {
		l.attempts[key] = kept
		return false
	}
	l.attempts[key] = append(kept, now)
	return true
}

// Check returns true if key has not exceeded the limit. It does not record
// an attempt; call Record separately, e.g. only on a failed login.
func (l *Limiter) Check(key string) bool {
	cutoff := l.clock.Now().Add(-l.window)
	l.mu.Lock()
	defer l.mu.Unlock()
	kept := prune(l.attempts[key], cutoff)
	l.attempts[key] = kept
	return len(kept) < l.max
}

// Record registers an attempt for key.
func (l *Limiter) Record(key string) {
	now := l.clock.Now()
	l.mu.Lock()
	l.attempts[key] = append(l.attempts[key], now)
	l.mu.Unlock()
}

// Reset forgets every attempt for key.
func (l *Limiter) Reset(key string) {
	l.mu.Lock()
	delete(l.attempts, key)
	l.mu.Unlock()
}

// Stop ends the background sweep.
func (l *Limiter) Stop() {
	l.sweeper.Stop()
}

func (l *Limiter) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.attempts)
}
