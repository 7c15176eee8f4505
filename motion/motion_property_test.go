//go:build property
// +build property

package motion_test

import (
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/13harshit/ri-dianosic/motion"
	"github.com/13harshit/ri-dianosic/motion/motiontest"
)

func TestMotionProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	// A one-shot reveal never goes back to hidden.
	properties.Property("one-shot never reverts", prop.ForAll(
		func(threshold float64, ratios []float64) bool {
			vp := motiontest.New()
			o := motion.NewOneShot(vp, motion.ObserveOptions{Threshold: threshold})
			o.Bind("el")
			seen := false
			for _, r := range ratios {
				vp.SetRatio("el", r)
				if seen && !o.Visible() {
					return false
				}
				if o.Visible() {
					seen = true
					if vp.Observers("el") != 0 {
						return false
					}
				}
			}
			return true
		},
		gen.Float64Range(0.01, 1),
		gen.SliceOf(gen.Float64Range(0, 1)),
	))

	properties.Property("counter is monotonic and lands on its end", prop.ForAll(
		func(end int, frac float64, durMs int, delayMs int) bool {
			opts := motion.CounterOptions{
				End:      float64(end),
				Start:    float64(end) * frac,
				Duration: time.Duration(durMs) * time.Millisecond,
				Delay:    time.Duration(delayMs) * time.Millisecond,
			}
			clock := motion.NewVirtualClock(time.Unix(0, 0))
			c := motion.NewCounter(clock, opts)
			defer c.Stop()

			prev := c.Value()
			total := opts.Delay + opts.Duration
			for clock.Now().Sub(time.Unix(0, 0)) < total {
				clock.Advance(37 * time.Millisecond)
				v := c.Value()
				if v < prev {
					return false
				}
				prev = v
			}
			return c.Value() == int64(end)
		},
		gen.IntRange(0, 1000000),
		gen.Float64Range(0, 1),
		gen.IntRange(100, 5000),
		gen.IntRange(0, 1000),
	))

	properties.Property("typewriter reveals one rune per interval", prop.ForAll(
		func(text string, intervalMs int, delayMs int) bool {
			interval := time.Duration(intervalMs) * time.Millisecond
			delay := time.Duration(delayMs) * time.Millisecond
			clock := motion.NewVirtualClock(time.Unix(0, 0))
			tw := motion.NewTypewriter(clock, motion.TypewriterOptions{Text: text, Interval: interval, Delay: delay})
			defer tw.Stop()

			n := len([]rune(text))
			clock.Advance(delay)
			for k := 0; k <= n; k++ {
				if tw.Len() != k {
					return false
				}
				clock.Advance(interval)
			}
			return tw.Done() && tw.Text() == text
		},
		gen.AlphaString(),
		gen.IntRange(1, 200),
		gen.IntRange(1, 1000),
	))

	properties.Property("stagger delays are exact multiples", prop.ForAll(
		func(n int, stepMs int) bool {
			step := time.Duration(stepMs) * time.Millisecond
			delays := motion.Stagger(n, step)
			if len(delays) != n {
				return false
			}
			for i, d := range delays {
				if d != time.Duration(i)*step {
					return false
				}
			}
			return true
		},
		gen.IntRange(0, 50),
		gen.IntRange(0, 500),
	))

	properties.TestingRun(t)
}
