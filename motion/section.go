package motion

import "sync"

// SectionThreshold is the visible fraction at which a section counts as
// intersecting.
const SectionThreshold = 0.3

// SectionTracker records which page section is active. When several
// sections intersect at once the one listed first wins, so ids must be
// given in document order (topmost first). When none intersect, the last
// active id is kept.
type SectionTracker struct {
	mu           sync.Mutex
	ids          []string
	intersecting map[string]bool
	active       string
	cancels      []func()
	onChange     func(string)
}

// NewSectionTracker starts watching every id. initial is reported by
// Active until a section intersects. Duplicate ids are ignored.
func NewSectionTracker(w ViewportWatcher, ids []string, initial string) *SectionTracker {
	s := &SectionTracker{intersecting: make(map[string]bool), active: initial}
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		s.ids = append(s.ids, id)
	}
	if w == nil {
		return s
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	opts := ObserveOptions{Threshold: SectionThreshold}.withDefaults()
	for _, id := range s.ids {
		s.cancels = append(s.cancels, w.Observe(id, opts, s.handle))
	}
	return s
}

// OnChange registers fn to run after the active id changes.
func (s *SectionTracker) OnChange(fn func(active string)) {
	s.mu.Lock()
	s.onChange = fn
	s.mu.Unlock()
}

func (s *SectionTracker) handle(e Entry) {
	s.mu.Lock()
	if s.cancels == nil {
		s.mu.Unlock()
		return
	}
	s.intersecting[e.Key] = e.Intersecting
	next := s.active
	for _, id := range s.ids {
		if s.intersecting[id] {
			next = id
			break
		}
	}
	changed := next != s.active
	s.active = next
	fn := s.onChange
	s.mu.Unlock()
	if changed && fn != nil {
		fn(next)
	}
}

// Active returns the active section id.
func (s *SectionTracker) Active() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}

// IDs returns the tracked ids in resolution order.
func (s *SectionTracker) IDs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.ids...)
}

// Close stops every watch.
func (s *SectionTracker) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, cancel := range s.cancels {
		cancel()
	}
	s.cancels = nil
}
