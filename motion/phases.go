package motion

import (
	"strconv"
	"sync"
	"time"
)

// DefaultPhaseDelay separates consecutive phases of a multi-phase reveal.
const DefaultPhaseDelay = 500 * time.Millisecond

// PhaseOptions configure a Phases hook.
type PhaseOptions struct {
	Phases     int
	PhaseDelay time.Duration
	Observe    ObserveOptions
}

// Phases is a multi-step entrance: once its element becomes visible the
// phase counter advances by one every PhaseDelay until it reaches Phases.
type Phases struct {
	mu       sync.Mutex
	clock    Clock
	opts     PhaseOptions
	vis      *OneShot
	phase    int
	timer    Timer
	stopped  bool
	onChange func(int)
}

// NewPhases returns an unbound Phases hook at phase 0.
func NewPhases(clock Clock, w ViewportWatcher, opts PhaseOptions) *Phases {
	if opts.PhaseDelay <= 0 {
		opts.PhaseDelay = DefaultPhaseDelay
	}
	p := &Phases{clock: clock, opts: opts, vis: NewOneShot(w, opts.Observe)}
	p.vis.OnChange(func(visible bool) {
		if !visible {
			return
		}
		p.mu.Lock()
		defer p.mu.Unlock()
		p.scheduleLocked()
	})
	return p
}

// OnChange registers fn to run after each phase advance.
func (p *Phases) OnChange(fn func(phase int)) {
	p.mu.Lock()
	p.onChange = fn
	p.mu.Unlock()
}

// Bind attaches the hook to the element identified by key.
func (p *Phases) Bind(key string) { p.vis.Bind(key) }

func (p *Phases) scheduleLocked() {
	if p.stopped || p.timer != nil || p.phase >= p.opts.Phases {
		return
	}
	p.timer = p.clock.AfterFunc(p.opts.PhaseDelay, p.advance)
}

func (p *Phases) advance() {
	p.mu.Lock()
	if p.stopped {
		p.mu.Unlock()
		return
	}
	p.timer = nil
	if p.phase < p.opts.Phases {
		p.phase++
	}
	phase := p.phase
	p.scheduleLocked()
	fn := p.onChange
	p.mu.Unlock()
	if fn != nil {
		fn(phase)
	}
}

// Phase returns the current phase in [0, Phases].
func (p *Phases) Phase() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.phase
}

func (p *Phases) Visible() bool { return p.vis.Visible() }

// Stop unmounts the hook.
func (p *Phases) Stop() {
	p.vis.Unbind()
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stopped = true
	if p.timer != nil {
		p.timer.Stop()
		p.timer = nil
	}
}

// DefaultParallaxSpeed is the scroll factor of the hero image.
const DefaultParallaxSpeed = 0.5

// ParallaxOffset returns the vertical translation for a scroll position.
func ParallaxOffset(scrollY, speed float64) float64 {
	return scrollY * speed
}

// ParallaxTransform renders ParallaxOffset as a CSS transform.
func ParallaxTransform(scrollY, speed float64) string {
	return "translateY(" + strconv.FormatFloat(ParallaxOffset(scrollY, speed), 'f', -1, 64) + "px)"
}
