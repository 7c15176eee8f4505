package motion_test

import (
	"testing"
	"time"

	"github.com/13harshit/ri-dianosic/motion"
	"github.com/13harshit/ri-dianosic/motion/motiontest"
)

func sceneRegions() []motion.Region {
	return []motion.Region{
		{Key: "hero-title", Kind: motion.KindReveal, Observe: motion.ObserveOptions{Threshold: 0.2}},
		{Key: "hero-image", Kind: motion.KindRevealRepeat},
		{Key: "stat-patients", Kind: motion.KindCounter, Counter: motion.CounterOptions{End: 50000, Delay: 600 * time.Millisecond}},
		{Key: "hero-tagline", Kind: motion.KindTypewriter, Typewriter: motion.TypewriterOptions{Text: "Care", Interval: 10 * time.Millisecond}},
		{Key: "services-grid", Kind: motion.KindStagger, Stagger: motion.StaggerOptions{Count: 3}},
		{Key: "hero-title", Kind: motion.KindCounter},
	}
}

func TestMountDrivesEveryRegion(t *testing.T) {
	clock := motion.NewVirtualClock(time.Unix(0, 0))
	vp := motiontest.New()
	scene := motion.Mount(clock, vp, sceneRegions())
	defer scene.Close()

	changed := map[string]int{}
	scene.OnChange(func(key string) { changed[key]++ })

	if got := len(scene.States()); got != 5 {
		t.Fatalf("States = %d regions, want duplicate key skipped", got)
	}

	vp.SetRatio("hero-title", 0.5)
	clock.Advance(3 * time.Second)

	title, ok := scene.State("hero-title")
	if !ok || !title.Visible || title.Kind != motion.KindReveal {
		t.Errorf("hero-title = %+v, want visible reveal", title)
	}
	stat, _ := scene.State("stat-patients")
	if stat.Value != 50000 {
		t.Errorf("stat-patients = %d, want 50000", stat.Value)
	}
	tag, _ := scene.State("hero-tagline")
	if tag.Text != "Care" {
		t.Errorf("hero-tagline = %q, want %q", tag.Text, "Care")
	}
	grid, _ := scene.State("services-grid")
	if len(grid.Delays) != 3 || grid.Delays[2] != 2*motion.DefaultStagger {
		t.Errorf("services-grid delays = %v", grid.Delays)
	}
	if _, ok := scene.State("missing"); ok {
		t.Error("State for an unknown key should report false")
	}
	if changed["hero-title"] != 1 || changed["stat-patients"] == 0 || changed["hero-tagline"] != 4 {
		t.Errorf("changes = %v", changed)
	}
}

func TestMountWithoutViewportStaysHidden(t *testing.T) {
	clock := motion.NewVirtualClock(time.Unix(0, 0))
	scene := motion.Mount(clock, nil, sceneRegions())
	clock.Advance(time.Minute)
	for _, st := range scene.States() {
		if st.Visible {
			t.Errorf("%s visible without a viewport", st.Key)
		}
	}
	scene.Close()
}

func TestSceneCloseReleasesEverything(t *testing.T) {
	clock := motion.NewVirtualClock(time.Unix(0, 0))
	vp := motiontest.New()
	scene := motion.Mount(clock, vp, sceneRegions())
	if vp.Total() == 0 || clock.Pending() == 0 {
		t.Fatal("mount should hold watches and timers")
	}
	scene.Close()
	scene.Close()
	if vp.Total() != 0 {
		t.Errorf("Total = %d, want 0", vp.Total())
	}
	if clock.Pending() != 0 {
		t.Errorf("Pending = %d, want 0", clock.Pending())
	}
}

func TestValidateRegions(t *testing.T) {
	if err := motion.ValidateRegions(sceneRegions()[:5]); err != nil {
		t.Fatalf("ValidateRegions: %v", err)
	}
	if err := motion.ValidateRegions(sceneRegions()); err == nil {
		t.Error("duplicate key should be rejected")
	}
	if err := motion.ValidateRegions([]motion.Region{{Kind: motion.KindReveal}}); err == nil {
		t.Error("empty key should be rejected")
	}
}

func TestKindText(t *testing.T) {
	for k := motion.KindReveal; k <= motion.KindStagger; k++ {
		b, err := k.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText(%d): %v", k, err)
		}
		var back motion.Kind
		if err := back.UnmarshalText(b); err != nil || back != k {
			t.Errorf("UnmarshalText(%q) = %v, %v; want %v", b, back, err, k)
		}
	}
	var k motion.Kind
	if err := k.UnmarshalText([]byte("spin")); err == nil {
		t.Error("unknown kind should fail")
	}
}
