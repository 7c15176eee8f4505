package clinic

import (
	"fmt"
	"io/fs"
	"time"

	"gopkg.in/yaml.v3"
)

// Site is the static content of the home page.
type Site struct {
	Name         string         `yaml:"name"`
	Tagline      string         `yaml:"tagline"`
	Nav          []NavItem      `yaml:"nav"`
	Hero         Hero           `yaml:"hero"`
	Stats        []Stat         `yaml:"stats"`
	About        About          `yaml:"about"`
	Services     ServiceSection `yaml:"services"`
	Testimonials Testimonials   `yaml:"testimonials"`
	Blog         SectionHeader  `yaml:"blog"`
	Contact      Contact        `yaml:"contact"`
	Footer       Footer         `yaml:"footer"`
}

// NavItem links to a page section by id.
type NavItem struct {
	ID    string `yaml:"id"`
	Label string `yaml:"label"`
}

type Action struct {
	Label  string `yaml:"label"`
	Target string `yaml:"target"` // section id
}

type Hero struct {
	Badge       string `yaml:"badge"`
	Headline    string `yaml:"headline"`
	Description string `yaml:"description"`
	Image       string `yaml:"image"`
	Primary     Action `yaml:"primary"`
	Secondary   Action `yaml:"secondary"`
}

// StatFormat selects how a counter value is displayed.
type StatFormat string

const (
	StatGrouped StatFormat = "grouped" // 50,000
	StatPlus    StatFormat = "plus"    // 15+
)

// Stat is an animated hero counter.
type Stat struct {
	Key      string        `yaml:"key"`
	Icon     string        `yaml:"icon"`
	Label    string        `yaml:"label"`
	End      int64         `yaml:"end"`
	Duration time.Duration `yaml:"duration"`
	Delay    time.Duration `yaml:"delay"`
	Format   StatFormat    `yaml:"format"`
	Final    string        `yaml:"final"` // shown without scripts, defaults to End formatted
}

// SectionHeader is the badge, title and lead paragraph of a section. The
// Highlight word of Title is rendered in the accent colour.
type SectionHeader struct {
	Badge       string `yaml:"badge"`
	Title       string `yaml:"title"`
	Highlight   string `yaml:"highlight"`
	Description string `yaml:"description"`
}

type Feature struct {
	Icon  string `yaml:"icon"`
	Title string `yaml:"title"`
	Text  string `yaml:"text"`
}

type About struct {
	SectionHeader `yaml:",inline"`
	Paragraphs    []string  `yaml:"paragraphs"`
	Features      []Feature `yaml:"features"`
	Image         string    `yaml:"image"`
	Years         string    `yaml:"years"`
}

type Service struct {
	Icon        string   `yaml:"icon"`
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Features    []string `yaml:"features"`
	Image       string   `yaml:"image"`
}

type ServiceSection struct {
	SectionHeader `yaml:",inline"`
	Items         []Service `yaml:"items"`
}

type Testimonial struct {
	Name   string `yaml:"name"`
	Role   string `yaml:"role"`
	Rating int    `yaml:"rating"`
	Text   string `yaml:"text"`
}

// Initials returns the first letter of each word of the name.
func (t Testimonial) Initials() string {
	var out []rune
	start := true
	for _, r := range t.Name {
		if r == ' ' {
			start = true
			continue
		}
		if start {
			out = append(out, r)
			start = false
		}
	}
	return string(out)
}

type Testimonials struct {
	SectionHeader `yaml:",inline"`
	Items         []Testimonial `yaml:"items"`
}

type Channel struct {
	Icon  string   `yaml:"icon"`
	Title string   `yaml:"title"`
	Lines []string `yaml:"lines"`
}

type Contact struct {
	SectionHeader   `yaml:",inline"`
	InfoTitle       string    `yaml:"info_title"`
	InfoDescription string    `yaml:"info_description"`
	FormTitle       string    `yaml:"form_title"`
	FormDescription string    `yaml:"form_description"`
	Channels        []Channel `yaml:"channels"`
}

type Link struct {
	Label string `yaml:"label"`
	Href  string `yaml:"href"`
}

type Footer struct {
	About     string `yaml:"about"`
	Copyright string `yaml:"copyright"`
	Links     []Link `yaml:"links"`
}

// SectionIDs returns the nav section ids in document order.
func (s Site) SectionIDs() []string {
	ids := make([]string, 0, len(s.Nav))
	for _, n := range s.Nav {
		ids = append(ids, n.ID)
	}
	return ids
}

// LoadSite decodes site content from name in fsys.
func LoadSite(fsys fs.FS, name string) (Site, error) {
	b, err := fs.ReadFile(fsys, name)
	if err != nil {
		return Site{}, fmt.Errorf("clinic: read site: %w", err)
	}
	var s Site
	if err := yaml.Unmarshal(b, &s); err != nil {
		return Site{}, fmt.Errorf("clinic: decode site: %w", err)
	}
	if len(s.Nav) == 0 {
		return Site{}, fmt.Errorf("clinic: site %s has no sections", name)
	}
	for _, st := range s.Stats {
		if st.Key == "" {
			return Site{}, fmt.Errorf("clinic: stat %q has no key", st.Label)
		}
	}
	return s, nil
}
