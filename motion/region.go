package motion

import (
	"fmt"
	"sync"
	"time"
)

// Kind selects the hook a Region mounts.
type Kind int

const (
	KindReveal       Kind = iota // one-shot entrance
	KindRevealRepeat             // replays on every re-entry
	KindCounter
	KindTypewriter
	KindStagger
)

var kindNames = [...]string{"reveal", "reveal-repeat", "counter", "typewriter", "stagger"}

func (k Kind) String() string {
	if int(k) < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("kind(%d)", int(k))
	}
	return kindNames[k]
}

func (k Kind) MarshalText() ([]byte, error) {
	if int(k) < 0 || int(k) >= len(kindNames) {
		return nil, fmt.Errorf("motion: unknown kind %d", int(k))
	}
	return []byte(kindNames[k]), nil
}

func (k *Kind) UnmarshalText(b []byte) error {
	for i, name := range kindNames {
		if name == string(b) {
			*k = Kind(i)
			return nil
		}
	}
	return fmt.Errorf("motion: unknown kind %q", b)
}

// StaggerOptions configure a KindStagger region.
type StaggerOptions struct {
	Count int
	Delay time.Duration
}

// Region is one animated element of a page: which element, which effect,
// and the effect's timing. Only the options matching Kind are read.
type Region struct {
	Key        string
	Kind       Kind
	Observe    ObserveOptions
	Counter    CounterOptions
	Typewriter TypewriterOptions
	Stagger    StaggerOptions
}

// RegionState is the presentation-facing snapshot of a mounted region.
type RegionState struct {
	Key     string
	Kind    Kind
	Visible bool
	Value   int64
	Text    string
	Delays  []time.Duration
}

// ValidateRegions reports the first region with an empty or duplicate key.
func ValidateRegions(regions []Region) error {
	seen := make(map[string]struct{}, len(regions))
	for i, r := range regions {
		if r.Key == "" {
			return fmt.Errorf("motion: region %d has no key", i)
		}
		if _, dup := seen[r.Key]; dup {
			return fmt.Errorf("motion: duplicate region key %q", r.Key)
		}
		seen[r.Key] = struct{}{}
	}
	return nil
}

// Scene is a set of mounted regions, one independent hook per region.
type Scene struct {
	mu       sync.Mutex
	regions  []Region
	index    map[string]int
	reveals  map[string]*OneShot
	repeats  map[string]*Repeating
	counters map[string]*Counter
	writers  map[string]*Typewriter
	onChange func(key string)
	closed   bool
}

// Mount instantiates a hook for every region and binds visibility hooks to
// w under the region key. With a nil w every reveal stays unbound and
// hidden. Later regions reusing a key are skipped.
func Mount(clock Clock, w ViewportWatcher, regions []Region) *Scene {
	s := &Scene{
		index:    make(map[string]int, len(regions)),
		reveals:  make(map[string]*OneShot),
		repeats:  make(map[string]*Repeating),
		counters: make(map[string]*Counter),
		writers:  make(map[string]*Typewriter),
	}
	for _, r := range regions {
		if _, dup := s.index[r.Key]; dup || r.Key == "" {
			continue
		}
		s.index[r.Key] = len(s.regions)
		s.regions = append(s.regions, r)
		key := r.Key
		switch r.Kind {
		case KindReveal:
			h := NewOneShot(w, r.Observe)
			h.OnChange(func(bool) { s.notify(key) })
			h.Bind(key)
			s.reveals[key] = h
		case KindRevealRepeat:
			h := NewRepeating(w, r.Observe)
			h.OnChange(func(bool) { s.notify(key) })
			h.Bind(key)
			s.repeats[key] = h
		case KindCounter:
			h := NewCounter(clock, r.Counter)
			h.OnChange(func(int64) { s.notify(key) })
			s.counters[key] = h
		case KindTypewriter:
			h := NewTypewriter(clock, r.Typewriter)
			h.OnChange(func(string) { s.notify(key) })
			s.writers[key] = h
		}
	}
	return s
}

// OnChange registers fn to run with the key of every region whose exposed
// state changed.
func (s *Scene) OnChange(fn func(key string)) {
	s.mu.Lock()
	s.onChange = fn
	s.mu.Unlock()
}

func (s *Scene) notify(key string) {
	s.mu.Lock()
	fn := s.onChange
	closed := s.closed
	s.mu.Unlock()
	if fn != nil && !closed {
		fn(key)
	}
}

// State returns the snapshot of the region with key.
func (s *Scene) State(key string) (RegionState, bool) {
	s.mu.Lock()
	i, ok := s.index[key]
	s.mu.Unlock()
	if !ok {
		return RegionState{}, false
	}
	return s.state(s.regions[i]), true
}

// States returns snapshots of every region in table order.
func (s *Scene) States() []RegionState {
	out := make([]RegionState, 0, len(s.regions))
	for _, r := range s.regions {
		out = append(out, s.state(r))
	}
	return out
}

func (s *Scene) state(r Region) RegionState {
	st := RegionState{Key: r.Key, Kind: r.Kind}
	switch r.Kind {
	case KindReveal:
		st.Visible = s.reveals[r.Key].Visible()
	case KindRevealRepeat:
		st.Visible = s.repeats[r.Key].Visible()
	case KindCounter:
		st.Value = s.counters[r.Key].Value()
	case KindTypewriter:
		st.Text = s.writers[r.Key].Text()
	case KindStagger:
		st.Delays = Stagger(r.Stagger.Count, staggerDelay(r.Stagger))
	}
	return st
}

func staggerDelay(o StaggerOptions) time.Duration {
	if o.Delay <= 0 {
		return DefaultStagger
	}
	return o.Delay
}

// Close unmounts every hook. The last states stay readable.
func (s *Scene) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	s.mu.Unlock()
	for _, h := range s.reveals {
		h.Unbind()
	}
	for _, h := range s.repeats {
		h.Unbind()
	}
	for _, h := range s.counters {
		h.Stop()
	}
	for _, h := range s.writers {
		h.Stop()
	}
}
