package motion_test

import (
	"testing"

	"github.com/13harshit/ri-dianosic/motion"
	"github.com/13harshit/ri-dianosic/motion/motiontest"
)

func TestOneShotTriggersOnceAndDetaches(t *testing.T) {
	vp := motiontest.New()
	o := motion.NewOneShot(vp, motion.ObserveOptions{Threshold: 0.2})
	changes := 0
	o.OnChange(func(bool) { changes++ })
	o.Bind("hero-title")

	vp.SetRatio("hero-title", 0.1)
	if o.Visible() {
		t.Fatal("below threshold should not be visible")
	}
	vp.SetRatio("hero-title", 0.25)
	if !o.Visible() || !o.HasAnimated() {
		t.Fatal("crossing threshold should set visible and animated")
	}
	if vp.Observers("hero-title") != 0 {
		t.Errorf("Observers = %d, want 0 after trigger", vp.Observers("hero-title"))
	}

	vp.SetRatio("hero-title", 0)
	if !o.Visible() {
		t.Error("one-shot visibility must not revert")
	}
	if changes != 1 {
		t.Errorf("changes = %d, want 1", changes)
	}
}

func TestOneShotUnboundIsSilent(t *testing.T) {
	vp := motiontest.New()
	o := motion.NewOneShot(vp, motion.ObserveOptions{Threshold: 0.1})
	vp.SetRatio("footer", 1)
	if o.Visible() || o.Bound() {
		t.Error("unbound hook should stay hidden and unobserved")
	}

	nilWatcher := motion.NewOneShot(nil, motion.ObserveOptions{})
	nilWatcher.Bind("footer")
	if nilWatcher.Bound() || nilWatcher.Visible() {
		t.Error("nil watcher should leave the hook unbound")
	}
}

func TestOneShotUnbindReleasesWatch(t *testing.T) {
	vp := motiontest.New()
	o := motion.NewOneShot(vp, motion.ObserveOptions{Threshold: 0.1})
	o.Bind("contact-form")
	if vp.Observers("contact-form") != 1 {
		t.Fatalf("Observers = %d, want 1", vp.Observers("contact-form"))
	}
	o.Unbind()
	if vp.Observers("contact-form") != 0 {
		t.Fatalf("Observers = %d, want 0 after Unbind", vp.Observers("contact-form"))
	}
	vp.SetRatio("contact-form", 1)
	if o.Visible() {
		t.Error("entries after Unbind must be ignored")
	}
}

func TestOneShotRebindMovesWatch(t *testing.T) {
	vp := motiontest.New()
	o := motion.NewOneShot(vp, motion.ObserveOptions{})
	o.Bind("a")
	o.Bind("b")
	if vp.Observers("a") != 0 || vp.Observers("b") != 1 {
		t.Fatalf("observers a=%d b=%d, want 0 and 1", vp.Observers("a"), vp.Observers("b"))
	}
	if o.Key() != "b" {
		t.Errorf("Key = %q, want %q", o.Key(), "b")
	}
}

func TestOneShotInitialEntryOnFlush(t *testing.T) {
	vp := motiontest.New()
	vp.SetRatio("hero-badge", 1)
	o := motion.NewOneShot(vp, motion.ObserveOptions{Threshold: 0.2})
	o.Bind("hero-badge")
	if o.Visible() {
		t.Fatal("Observe must not deliver synchronously")
	}
	vp.Flush()
	if !o.Visible() {
		t.Error("initial entry for an already visible element should trigger")
	}
}

func TestRepeatingFollowsIntersection(t *testing.T) {
	vp := motiontest.New()
	r := motion.NewRepeating(vp, motion.ObserveOptions{Threshold: 0.1})
	var seen []bool
	r.OnChange(func(v bool) { seen = append(seen, v) })
	r.Bind("hero-image")

	for _, ratio := range []float64{0.5, 0, 0.3, 0.05} {
		vp.SetRatio("hero-image", ratio)
	}
	want := []bool{true, false, true, false}
	if len(seen) != len(want) {
		t.Fatalf("changes = %v, want %v", seen, want)
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Errorf("change %d = %v, want %v", i, seen[i], want[i])
		}
	}
	r.Unbind()
	if vp.Observers("hero-image") != 0 {
		t.Error("Unbind should release the watch")
	}
}

// lateWatcher hands out callbacks but never cancels them, like an observer
// whose queued entries arrive after the element was swapped.
type lateWatcher struct {
	fns map[string]func(motion.Entry)
}

func (w *lateWatcher) Observe(key string, _ motion.ObserveOptions, fn func(motion.Entry)) func() {
	if w.fns == nil {
		w.fns = make(map[string]func(motion.Entry))
	}
	w.fns[key] = fn
	return func() {}
}

func TestHooksIgnoreEntriesForPreviousKey(t *testing.T) {
	w := &lateWatcher{}
	o := motion.NewOneShot(w, motion.ObserveOptions{})
	o.Bind("old")
	old := w.fns["old"]
	o.Bind("new")
	old(motion.Entry{Key: "old", Intersecting: true, Ratio: 1})
	if o.Visible() {
		t.Error("OneShot accepted an entry for its previous key")
	}
	w.fns["new"](motion.Entry{Key: "new", Intersecting: true, Ratio: 1})
	if !o.Visible() {
		t.Error("OneShot should accept an entry for its bound key")
	}

	r := motion.NewRepeating(w, motion.ObserveOptions{})
	r.Bind("old")
	old = w.fns["old"]
	r.Bind("new")
	old(motion.Entry{Key: "old", Intersecting: true, Ratio: 1})
	if r.Visible() {
		t.Error("Repeating accepted an entry for its previous key")
	}
	w.fns["new"](motion.Entry{Key: "new", Intersecting: true, Ratio: 1})
	if !r.Visible() {
		t.Error("Repeating should accept an entry for its bound key")
	}
}
