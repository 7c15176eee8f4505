package motion

import "sync"

// DefaultThreshold is the visible fraction the site's reveals use when a
// region does not set its own.
const DefaultThreshold = 0.1

// ObserveOptions configure a viewport watch.
type ObserveOptions struct {
	Threshold  float64 // visible fraction in [0, 1]
	RootMargin string  // CSS margin around the viewport, "0px" when empty
}

func (o ObserveOptions) withDefaults() ObserveOptions {
	if o.RootMargin == "" {
		o.RootMargin = "0px"
	}
	return o
}

// Entry is one intersection report for an observed element. Hooks drop
// entries whose Key is not the key they are bound to.
type Entry struct {
	Key          string
	Intersecting bool
	Ratio        float64
	Top          float64
}

// ViewportWatcher reports intersection changes for elements identified by
// key. Implementations must not invoke fn synchronously from Observe, and
// must not hold locks while invoking it. The returned cancel func stops the
// watch and is safe to call more than once.
type ViewportWatcher interface {
	Observe(key string, opts ObserveOptions, fn func(Entry)) (cancel func())
}

// OneShot flips to visible the first time its element intersects the
// viewport and never reverts. Once triggered it stops watching.
type OneShot struct {
	mu       sync.Mutex
	watcher  ViewportWatcher
	opts     ObserveOptions
	key      string
	cancel   func()
	visible  bool
	animated bool
	onChange func(bool)
}

// NewOneShot returns an unbound OneShot. Until Bind is called nothing is
// observed and Visible reports false.
func NewOneShot(w ViewportWatcher, opts ObserveOptions) *OneShot {
	return &OneShot{watcher: w, opts: opts.withDefaults()}
}

// OnChange registers fn to run after the visible flag changes.
func (o *OneShot) OnChange(fn func(visible bool)) {
	o.mu.Lock()
	o.onChange = fn
	o.mu.Unlock()
}

// Bind attaches the hook to the element identified by key, replacing any
// previous binding. A nil watcher or empty key leaves the hook unbound.
func (o *OneShot) Bind(key string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.releaseLocked()
	o.key = key
	if o.watcher == nil || key == "" || o.animated {
		return
	}
	o.cancel = o.watcher.Observe(key, o.opts, o.handle)
}

// Unbind stops observation. The visible flag is kept.
func (o *OneShot) Unbind() {
	o.mu.Lock()
	o.releaseLocked()
	o.key = ""
	o.mu.Unlock()
}

func (o *OneShot) releaseLocked() {
	if o.cancel != nil {
		o.cancel()
		o.cancel = nil
	}
}

func (o *OneShot) handle(e Entry) {
	o.mu.Lock()
	if o.cancel == nil || e.Key != o.key || o.animated || !e.Intersecting {
		o.mu.Unlock()
		return
	}
	o.visible = true
	o.animated = true
	o.releaseLocked()
	fn := o.onChange
	o.mu.Unlock()
	if fn != nil {
		fn(true)
	}
}

// Key returns the bound element key, or "" when unbound.
func (o *OneShot) Key() string {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.key
}

// Bound reports whether a watch is active.
func (o *OneShot) Bound() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.cancel != nil
}

func (o *OneShot) Visible() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.visible
}

// HasAnimated reports whether the entrance already fired.
func (o *OneShot) HasAnimated() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.animated
}

// Repeating tracks the live intersection state of its element, so effects
// replay every time the element re-enters the viewport.
type Repeating struct {
	mu       sync.Mutex
	watcher  ViewportWatcher
	opts     ObserveOptions
	key      string
	cancel   func()
	visible  bool
	onChange func(bool)
}

// NewRepeating returns an unbound Repeating hook.
func NewRepeating(w ViewportWatcher, opts ObserveOptions) *Repeating {
	return &Repeating{watcher: w, opts: opts.withDefaults()}
}

// OnChange registers fn to run after the visible flag changes.
func (r *Repeating) OnChange(fn func(visible bool)) {
	r.mu.Lock()
	r.onChange = fn
	r.mu.Unlock()
}

// Bind attaches the hook to the element identified by key.
func (r *Repeating) Bind(key string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.releaseLocked()
	r.key = key
	if r.watcher == nil || key == "" {
		return
	}
	r.cancel = r.watcher.Observe(key, r.opts, r.handle)
}

// Unbind stops observation.
func (r *Repeating) Unbind() {
	r.mu.Lock()
	r.releaseLocked()
	r.key = ""
	r.mu.Unlock()
}

func (r *Repeating) releaseLocked() {
	if r.cancel != nil {
		r.cancel()
		r.cancel = nil
	}
}

func (r *Repeating) handle(e Entry) {
	r.mu.Lock()
	if r.cancel == nil || e.Key != r.key || r.visible == e.Intersecting {
		r.mu.Unlock()
		return
	}
	r.visible = e.Intersecting
	fn := r.onChange
	r.mu.Unlock()
	if fn != nil {
		fn(e.Intersecting)
	}
}

// Bound reports whether a watch is active.
func (r *Repeating) Bound() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.cancel != nil
}

func (r *Repeating) Visible() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.visible
}
