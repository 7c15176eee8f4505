package motion

import (
	"sync"
	"time"
)

// DefaultTypeInterval is the per-character interval when none is set.
const DefaultTypeInterval = 50 * time.Millisecond

// TypewriterOptions configure a Typewriter. A zero Interval takes
// DefaultTypeInterval.
type TypewriterOptions struct {
	Text     string
	Interval time.Duration
	Delay    time.Duration
}

func (o TypewriterOptions) withDefaults() TypewriterOptions {
	if o.Interval <= 0 {
		o.Interval = DefaultTypeInterval
	}
	return o
}

// Typewriter reveals Text one rune per Interval after Delay. The prefix of
// length k is shown at Delay + k*Interval.
type Typewriter struct {
	mu       sync.Mutex
	clock    Clock
	opts     TypewriterOptions
	runes    []rune
	n        int
	delay    Timer
	ticker   Timer
	run      uint64
	stopped  bool
	onChange func(string)
}

// NewTypewriter mounts a Typewriter with an empty prefix.
func NewTypewriter(clock Clock, opts TypewriterOptions) *Typewriter {
	t := &Typewriter{clock: clock}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.armLocked(opts.withDefaults())
	return t
}

// OnChange registers fn to run after every revealed character.
func (t *Typewriter) OnChange(fn func(prefix string)) {
	t.mu.Lock()
	t.onChange = fn
	t.mu.Unlock()
}

func (t *Typewriter) armLocked(opts TypewriterOptions) {
	t.releaseLocked()
	t.opts = opts
	t.runes = []rune(opts.Text)
	t.n = 0
	t.run++
	run := t.run
	if opts.Delay <= 0 {
		t.startLocked(run)
		return
	}
	t.delay = t.clock.AfterFunc(opts.Delay, func() {
		t.mu.Lock()
		defer t.mu.Unlock()
		t.startLocked(run)
	})
}

func (t *Typewriter) startLocked(run uint64) {
	if t.stopped || run != t.run || t.ticker != nil {
		return
	}
	t.delay = nil
	if len(t.runes) == 0 {
		return
	}
	t.ticker = t.clock.Every(t.opts.Interval, func() { t.tick(run) })
}

func (t *Typewriter) tick(run uint64) {
	t.mu.Lock()
	if t.stopped || run != t.run || t.n >= len(t.runes) {
		t.mu.Unlock()
		return
	}
	t.n++
	if t.n == len(t.runes) && t.ticker != nil {
		t.ticker.Stop()
		t.ticker = nil
	}
	prefix := string(t.runes[:t.n])
	fn := t.onChange
	t.mu.Unlock()
	if fn != nil {
		fn(prefix)
	}
}

func (t *Typewriter) releaseLocked() {
	if t.delay != nil {
		t.delay.Stop()
		t.delay = nil
	}
	if t.ticker != nil {
		t.ticker.Stop()
		t.ticker = nil
	}
}

// Text returns the revealed prefix.
func (t *Typewriter) Text() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return string(t.runes[:t.n])
}

// Len returns the revealed prefix length in runes.
func (t *Typewriter) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.n
}

// Full returns the target text.
func (t *Typewriter) Full() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.opts.Text
}

// Done reports whether the whole text is shown.
func (t *Typewriter) Done() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.n == len(t.runes)
}

// SetText restarts the reveal from empty for a new target text, honouring
// the delay again. Setting the current text is a no-op.
func (t *Typewriter) SetText(s string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.stopped || s == t.opts.Text {
		return
	}
	opts := t.opts
	opts.Text = s
	t.armLocked(opts)
}

// Stop unmounts the typewriter and releases its timers.
func (t *Typewriter) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stopped = true
	t.releaseLocked()
}
