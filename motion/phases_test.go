package motion_test

import (
	"testing"
	"time"

	"github.com/13harshit/ri-dianosic/motion"
	"github.com/13harshit/ri-dianosic/motion/motiontest"
)

func TestPhasesAdvanceAfterVisible(t *testing.T) {
	clock := motion.NewVirtualClock(time.Unix(0, 0))
	vp := motiontest.New()
	p := motion.NewPhases(clock, vp, motion.PhaseOptions{Phases: 3, Observe: motion.ObserveOptions{Threshold: 0.3}})
	var seen []int
	p.OnChange(func(n int) { seen = append(seen, n) })
	p.Bind("about-features")

	clock.Advance(2 * time.Second)
	if p.Phase() != 0 {
		t.Fatalf("Phase = %d before visible, want 0", p.Phase())
	}

	vp.SetRatio("about-features", 0.5)
	for want := 1; want <= 3; want++ {
		clock.Advance(motion.DefaultPhaseDelay)
		if p.Phase() != want {
			t.Fatalf("Phase = %d, want %d", p.Phase(), want)
		}
	}
	clock.Advance(5 * time.Second)
	if p.Phase() != 3 {
		t.Errorf("Phase = %d, want to stop at 3", p.Phase())
	}
	if clock.Pending() != 0 {
		t.Errorf("Pending = %d, want 0", clock.Pending())
	}
	if len(seen) != 3 {
		t.Errorf("changes = %v, want three", seen)
	}
}

func TestPhasesStopCancelsSchedule(t *testing.T) {
	clock := motion.NewVirtualClock(time.Unix(0, 0))
	vp := motiontest.New()
	p := motion.NewPhases(clock, vp, motion.PhaseOptions{Phases: 4, PhaseDelay: 100 * time.Millisecond})
	p.Bind("services")
	vp.SetRatio("services", 1)
	clock.Advance(150 * time.Millisecond)
	p.Stop()
	clock.Advance(time.Second)
	if p.Phase() != 1 {
		t.Errorf("Phase = %d, want 1", p.Phase())
	}
	if clock.Pending() != 0 || vp.Total() != 0 {
		t.Errorf("Pending = %d, Total = %d, want both 0", clock.Pending(), vp.Total())
	}
}
