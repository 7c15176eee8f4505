package motion

import (
	"strconv"
	"time"
)

// Frame is one keyframe of a baked timeline. At is milliseconds since
// mount. For counters Value is the number and Text its display form; for
// typewriters Value is the revealed length in runes.
type Frame struct {
	At    int64  `json:"at"`
	Value int64  `json:"v"`
	Text  string `json:"t,omitempty"`
}

// Track is the browser-facing description of one region.
type Track struct {
	Key        string  `json:"key"`
	Kind       Kind    `json:"kind"`
	Threshold  float64 `json:"threshold"`
	RootMargin string  `json:"rootMargin"`
	Once       bool    `json:"once"`
	Text       string  `json:"text,omitempty"`
	Delays     []int64 `json:"delays,omitempty"`
	Frames     []Frame `json:"frames,omitempty"`
}

// Manifest is everything the browser player needs to replay a page's
// regions.
type Manifest struct {
	Regions          []Track  `json:"regions"`
	Sections         []string `json:"sections,omitempty"`
	SectionThreshold float64  `json:"sectionThreshold,omitempty"`
}

// Formatter renders a counter value for display.
type Formatter func(r Region, v int64) string

var epoch = time.Unix(0, 0).UTC()

// Bake runs every timed region on its own VirtualClock and records the
// frames at which its exposed value changes. A nil format uses plain
// decimal.
func Bake(regions []Region, format Formatter) Manifest {
	if format == nil {
		format = func(_ Region, v int64) string { return strconv.FormatInt(v, 10) }
	}
	m := Manifest{Regions: make([]Track, 0, len(regions))}
	seen := make(map[string]struct{}, len(regions))
	for _, r := range regions {
		if _, dup := seen[r.Key]; dup || r.Key == "" {
			continue
		}
		seen[r.Key] = struct{}{}
		obs := r.Observe.withDefaults()
		t := Track{
			Key:        r.Key,
			Kind:       r.Kind,
			Threshold:  obs.Threshold,
			RootMargin: obs.RootMargin,
			Once:       r.Kind != KindRevealRepeat,
		}
		switch r.Kind {
		case KindCounter:
			t.Frames = BakeCounter(r.Counter, func(v int64) string { return format(r, v) })
		case KindTypewriter:
			t.Text = r.Typewriter.Text
			t.Frames = BakeTypewriter(r.Typewriter)
		case KindStagger:
			t.Delays = StaggerMillis(r.Stagger.Count, staggerDelay(r.Stagger))
		}
		m.Regions = append(m.Regions, t)
	}
	return m
}

// BakeCounter returns the frames of a counter from mount to completion.
// The first frame is the start value at 0 and the last is the end value.
func BakeCounter(opts CounterOptions, format func(int64) string) []Frame {
	opts = opts.withDefaults()
	clock := NewVirtualClock(epoch)
	c := NewCounter(clock, opts)
	defer c.Stop()

	start := roundHalfUp(opts.Start)
	frames := []Frame{{At: 0, Value: start, Text: format(start)}}
	c.OnChange(func(v int64) {
		at := clock.Now().Sub(epoch).Milliseconds()
		frames = append(frames, Frame{At: at, Value: v, Text: format(v)})
	})
	clock.Advance(opts.Delay + opts.Duration + 2*opts.Interval)
	return frames
}

// BakeTypewriter returns one frame per revealed rune.
func BakeTypewriter(opts TypewriterOptions) []Frame {
	opts = opts.withDefaults()
	clock := NewVirtualClock(epoch)
	t := NewTypewriter(clock, opts)
	defer t.Stop()

	frames := []Frame{{At: 0, Value: 0}}
	t.OnChange(func(prefix string) {
		at := clock.Now().Sub(epoch).Milliseconds()
		frames = append(frames, Frame{At: at, Value: int64(len([]rune(prefix)))})
	})
	n := len([]rune(opts.Text))
	clock.Advance(opts.Delay + time.Duration(n+1)*opts.Interval)
	return frames
}
