package clinic

import (
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/13harshit/ri-dianosic/motion"
)

// Reveal thresholds used on the home page.
const (
	heroThreshold    = 0.2
	sectionThreshold = 0.1
	cardStagger      = 150 * time.Millisecond
	menuStagger      = 50 * time.Millisecond
)

const (
	typewriterInterval = 80 * time.Millisecond
	typewriterDelay    = 500 * time.Millisecond
)

var printer = message.NewPrinter(language.English)

// FormatStat renders a counter value the way the hero shows it.
func FormatStat(f StatFormat, v int64) string {
	switch f {
	case StatPlus:
		return printer.Sprintf("%d+", v)
	default:
		return printer.Sprintf("%d", v)
	}
}

func reveal(key string, threshold float64) motion.Region {
	return motion.Region{Key: key, Kind: motion.KindReveal, Observe: motion.ObserveOptions{Threshold: threshold}}
}

func sectionHeader(section string, threshold float64) []motion.Region {
	return []motion.Region{
		reveal(section+"-badge", threshold),
		reveal(section+"-title", threshold),
		reveal(section+"-description", threshold),
	}
}

// HomeRegions returns the animated regions of the home page in document
// order.
func HomeRegions(site Site, posts []Post) []motion.Region {
	var rs []motion.Region
	rs = append(rs,
		reveal("header", heroThreshold),
		motion.Region{
			Key:  "nav-mobile",
			Kind: motion.KindStagger,
			Stagger: motion.StaggerOptions{
				Count: len(site.Nav),
				Delay: menuStagger,
			},
		},
		reveal("hero-badge", heroThreshold),
		reveal("hero-title", heroThreshold),
		motion.Region{
			Key:  "hero-typewriter",
			Kind: motion.KindTypewriter,
			Typewriter: motion.TypewriterOptions{
				Text:     site.Hero.Headline,
				Interval: typewriterInterval,
				Delay:    typewriterDelay,
			},
		},
		reveal("hero-description", heroThreshold),
		reveal("hero-buttons", heroThreshold),
		reveal("hero-stats", heroThreshold),
	)
	for _, st := range site.Stats {
		rs = append(rs, motion.Region{
			Key:  st.Key,
			Kind: motion.KindCounter,
			Counter: motion.CounterOptions{
				End:      float64(st.End),
				Duration: st.Duration,
				Delay:    st.Delay,
			},
		})
	}
	rs = append(rs, motion.Region{
		Key:     "hero-image",
		Kind:    motion.KindRevealRepeat,
		Observe: motion.ObserveOptions{Threshold: sectionThreshold},
	})

	rs = append(rs, sectionHeader("about", heroThreshold)...)
	rs = append(rs, reveal("about-features", heroThreshold), reveal("about-image", heroThreshold))

	rs = append(rs, sectionHeader("services", sectionThreshold)...)
	rs = append(rs, stagger("services-cards", len(site.Services.Items)))

	rs = append(rs, sectionHeader("testimonials", sectionThreshold)...)
	rs = append(rs, stagger("testimonials-cards", len(site.Testimonials.Items)))

	rs = append(rs, sectionHeader("blog", sectionThreshold)...)
	rs = append(rs, stagger("blog-cards", len(posts)))

	rs = append(rs, sectionHeader("contact", sectionThreshold)...)
	rs = append(rs, reveal("contact-info", heroThreshold), reveal("contact-form", heroThreshold))

	rs = append(rs, reveal("footer", sectionThreshold))
	return rs
}

func stagger(key string, n int) motion.Region {
	return motion.Region{Key: key, Kind: motion.KindStagger, Stagger: motion.StaggerOptions{Count: n, Delay: cardStagger}}
}

// statFormatter formats counter frames by looking up the stat that owns
// the region.
func statFormatter(site Site) motion.Formatter {
	formats := make(map[string]StatFormat, len(site.Stats))
	for _, st := range site.Stats {
		formats[st.Key] = st.Format
	}
	return func(r motion.Region, v int64) string {
		return FormatStat(formats[r.Key], v)
	}
}

// BuildManifest bakes the home page regions for the browser player.
func BuildManifest(site Site, posts []Post) motion.Manifest {
	m := motion.Bake(HomeRegions(site, posts), statFormatter(site))
	m.Sections = site.SectionIDs()
	m.SectionThreshold = motion.SectionThreshold
	return m
}

// InitialRegions mounts the home page without a viewport on a stopped
// clock, which yields the pre-script state of every region: reveals
// hidden, counters at their start and the typewriter empty.
func InitialRegions(site Site, posts []Post) Regions {
	clock := motion.NewVirtualClock(time.Unix(0, 0))
	scene := motion.Mount(clock, nil, HomeRegions(site, posts))
	defer scene.Close()
	out := make(Regions)
	for _, st := range scene.States() {
		out[st.Key] = st
	}
	return out
}

// StatViews pairs each stat with its display text for regions.
func StatViews(site Site, regions Regions) []StatView {
	out := make([]StatView, 0, len(site.Stats))
	for _, st := range site.Stats {
		if st.Final == "" {
			st.Final = FormatStat(st.Format, st.End)
		}
		out = append(out, StatView{Stat: st, Display: FormatStat(st.Format, regions[st.Key].Value)})
	}
	return out
}
