// Package motiontest provides a scriptable viewport for exercising motion
// hooks without a browser.
package motiontest

import (
	"sync"

	"github.com/13harshit/ri-dianosic/motion"
)

// Viewport is a motion.ViewportWatcher driven by explicit ratio updates.
// An observer sees an entry when its element first gets a ratio (on Flush
// or SetRatio) and afterwards only when its intersecting state flips, as
// a browser IntersectionObserver does.
type Viewport struct {
	mu        sync.Mutex
	ratios    map[string]float64
	observers map[string][]*observer
}

type observer struct {
	opts      motion.ObserveOptions
	fn        func(motion.Entry)
	delivered bool
	last      bool
}

// New returns an empty Viewport where every element has ratio 0.
func New() *Viewport {
	return &Viewport{
		ratios:    make(map[string]float64),
		observers: make(map[string][]*observer),
	}
}

// Observe implements motion.ViewportWatcher. No callback runs until Flush
// or SetRatio.
func (v *Viewport) Observe(key string, opts motion.ObserveOptions, fn func(motion.Entry)) func() {
	o := &observer{opts: opts, fn: fn}
	v.mu.Lock()
	v.observers[key] = append(v.observers[key], o)
	v.mu.Unlock()
	var once sync.Once
	return func() {
		once.Do(func() {
			v.mu.Lock()
			defer v.mu.Unlock()
			list := v.observers[key]
			for i, x := range list {
				if x == o {
					v.observers[key] = append(list[:i], list[i+1:]...)
					break
				}
			}
			if len(v.observers[key]) == 0 {
				delete(v.observers, key)
			}
		})
	}
}

// SetRatio sets the visible fraction of key and notifies its observers.
func (v *Viewport) SetRatio(key string, ratio float64) {
	v.mu.Lock()
	v.ratios[key] = ratio
	v.mu.Unlock()
	v.deliver(key)
}

// Flush delivers the initial entry to every observer that has not had one.
func (v *Viewport) Flush() {
	v.mu.Lock()
	keys := make([]string, 0, len(v.observers))
	for k := range v.observers {
		keys = append(keys, k)
	}
	v.mu.Unlock()
	for _, k := range keys {
		v.deliver(k)
	}
}

func (v *Viewport) deliver(key string) {
	type call struct {
		fn    func(motion.Entry)
		entry motion.Entry
	}
	v.mu.Lock()
	ratio := v.ratios[key]
	var calls []call
	for _, o := range v.observers[key] {
		in := ratio > 0 && ratio >= o.opts.Threshold
		if o.delivered && o.last == in {
			continue
		}
		o.delivered = true
		o.last = in
		calls = append(calls, call{fn: o.fn, entry: motion.Entry{Key: key, Intersecting: in, Ratio: ratio}})
	}
	v.mu.Unlock()
	for _, c := range calls {
		c.fn(c.entry)
	}
}

// Observers returns the number of active watches on key.
func (v *Viewport) Observers(key string) int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return len(v.observers[key])
}

// Total returns the number of active watches across all keys.
func (v *Viewport) Total() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	n := 0
	for _, list := range v.observers {
		n += len(list)
	}
	return n
}
