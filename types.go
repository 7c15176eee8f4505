package clinic

import (
	"time"

	"github.com/13harshit/ri-dianosic/motion"
	"github.com/13harshit/ri-dianosic/richtext"
)

// Post is one Health Insights article.
type Post struct {
	ID       string            `yaml:"id"`
	Title    string            `yaml:"title"`
	Excerpt  string            `yaml:"excerpt"`
	Date     string            `yaml:"date"` // display form, e.g. "Dec 15, 2024"
	ReadTime string            `yaml:"read_time"`
	Category string            `yaml:"category"`
	Image    string            `yaml:"image"`
	Body     richtext.Document `yaml:"body"`
}

// Link returns the site-relative URL of the post.
func (p Post) Link() string {
	return "/blog/" + p.ID + "/"
}

// Published parses Date. It returns the zero time when Date is not in the
// "Jan 2, 2006" form.
func (p Post) Published() time.Time {
	t, err := time.Parse(postDateLayout, p.Date)
	if err != nil {
		return time.Time{}
	}
	return t
}

const postDateLayout = "Jan 2, 2006"

// PageMeta carries per-page OpenGraph and SEO metadata into the <head> template.
type PageMeta struct {
	Title       string
	Description string
	URL         string // canonical + og:url
	OGType      string // "website" or "article"
	Image       string
}

// Regions maps region keys to their server-side snapshot.
type Regions map[string]motion.RegionState

// Visible reports whether the region with key is in its revealed state.
func (r Regions) Visible(key string) bool {
	return r[key].Visible
}

// HomePage is everything the home view renders.
type HomePage struct {
	Meta    PageMeta
	Site    Site
	Posts   []Post
	Regions Regions
	Stats   []StatView
	Active  string // active section id
	Form    ContactForm
	Notice  string
	CSRF    string
	JSONLD  string
}

// StatView is a hero statistic with its current and final display text.
type StatView struct {
	Stat
	Display string
}

// PostPage is everything the article view renders.
type PostPage struct {
	Meta   PageMeta
	Site   Site
	Post   Post
	More   []Post
	JSONLD string
}
