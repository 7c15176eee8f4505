package clinic

import (
	"encoding/xml"
	"io"
	"time"
)

type urlSet struct {
	XMLName    xml.Name   `xml:"urlset"`
	XMLNS      string     `xml:"xmlns,attr"`
	XMLNSImage string     `xml:"xmlns:image,attr"`
	URLs       []urlEntry `xml:"url"`
}

type urlEntry struct {
	Loc      string     `xml:"loc"`
	LastMod  string     `xml:"lastmod,omitempty"`
	Priority string     `xml:"priority,omitempty"`
	Images   []urlImage `xml:"image:image,omitempty"`
}

type urlImage struct {
	Loc string `xml:"image:loc"`
}

// writeSitemap lists the home page and every article, with article
// header images in the image extension.
func (a *App) writeSitemap(w io.Writer) error {
	base := a.Config.URL
	set := urlSet{
		XMLNS:      "http://www.sitemaps.org/schemas/sitemap/0.9",
		XMLNSImage: "http://www.google.com/schemas/sitemap-image/1.1",
		URLs: []urlEntry{{
			Loc:      BuildURL(base),
			Priority: "1.0",
			Images:   []urlImage{{Loc: absURL(base, a.Site.Hero.Image)}},
		}},
	}
	for _, p := range a.Catalog.Posts() {
		e := urlEntry{Loc: BuildURL(base, "blog", p.ID), Priority: "0.7"}
		if t := p.Published(); !t.IsZero() {
			e.LastMod = t.Format(time.DateOnly)
		}
		if p.Image != "" {
			e.Images = []urlImage{{Loc: absURL(base, p.Image)}}
		}
		set.URLs = append(set.URLs, e)
	}
	return writeXML(w, set)
}

type rssFeed struct {
	XMLName   xml.Name   `xml:"rss"`
	Version   string     `xml:"version,attr"`
	XMLNSAtom string     `xml:"xmlns:atom,attr"`
	Channel   rssChannel `xml:"channel"`
}

type rssChannel struct {
	Title         string    `xml:"title"`
	Link          string    `xml:"link"`
	Description   string    `xml:"description"`
	Language      string    `xml:"language"`
	LastBuildDate string    `xml:"lastBuildDate,omitempty"`
	Self          atomLink  `xml:"atom:link"`
	Items         []rssItem `xml:"item"`
}

type atomLink struct {
	Href string `xml:"href,attr"`
	Rel  string `xml:"rel,attr"`
	Type string `xml:"type,attr"`
}

type rssItem struct {
	Title       string `xml:"title"`
	Link        string `xml:"link"`
	Description string `xml:"description"`
	Category    string `xml:"category,omitempty"`
	PubDate     string `xml:"pubDate,omitempty"`
	GUID        string `xml:"guid"`
}

// writeFeed renders the Health Insights articles as RSS 2.0. The build
// date is that of the newest article so the feed is stable across
// restarts.
func (a *App) writeFeed(w io.Writer) error {
	base := a.Config.URL
	ch := rssChannel{
		Title:       a.Site.Name + " Health Insights",
		Link:        BuildURL(base),
		Description: a.Config.Description,
		Language:    "en-in",
		Self:        atomLink{Href: base + "/feed.xml", Rel: "self", Type: "application/rss+xml"},
	}
	var newest time.Time
	for _, p := range a.Catalog.Posts() {
		link := BuildURL(base, "blog", p.ID)
		item := rssItem{
			Title:       p.Title,
			Link:        link,
			Description: p.Excerpt,
			Category:    p.Category,
			GUID:        link,
		}
		if t := p.Published(); !t.IsZero() {
			item.PubDate = t.Format(time.RFC1123Z)
			if t.After(newest) {
				newest = t
			}
		}
		ch.Items = append(ch.Items, item)
	}
	if !newest.IsZero() {
		ch.LastBuildDate = newest.Format(time.RFC1123Z)
	}
	return writeXML(w, rssFeed{Version: "2.0", XMLNSAtom: "http://www.w3.org/2005/Atom", Channel: ch})
}

func writeXML(w io.Writer, v any) error {
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	return xml.NewEncoder(w).Encode(v)
}
