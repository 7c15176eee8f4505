package views

import (
	"strconv"
	"time"

	clinic "github.com/13harshit/ri-dianosic"
)

// motionCSS hides regions until motion.js reveals them. Without scripts
// the js-motion class is never set and every region stays visible.
const motionCSS = `[data-motion],[data-motion-item]{transition:opacity .7s ease-out,transform .7s ease-out}
.js-motion [data-visible="false"]{opacity:0;transform:translateY(2rem)}
[data-motion="nav-mobile"][data-open="false"]{display:none}
[data-header][data-scrolled="true"]{box-shadow:0 1px 3px rgb(0 0 0 / .1)}
[data-nav][data-active="true"]{color:var(--color-primary,#0d9488)}`

type head struct {
	meta   clinic.PageMeta
	site   clinic.Site
	jsonld string
	motion bool
}

func (d *doc) head(h head) {
	d.raw("<!DOCTYPE html>\n")
	d.open("html", "lang", "en")
	d.raw("<head>")
	d.raw(`<meta charset="utf-8">`)
	d.raw(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
	d.el("title", h.meta.Title)
	d.open("meta", "name", "description", "content", h.meta.Description)
	if h.meta.URL != "" {
		d.open("link", "rel", "canonical", "href", h.meta.URL)
		d.open("meta", "property", "og:url", "content", h.meta.URL)
	}
	d.open("meta", "property", "og:title", "content", h.meta.Title)
	d.open("meta", "property", "og:description", "content", h.meta.Description)
	d.open("meta", "property", "og:type", "content", h.meta.OGType)
	d.open("meta", "property", "og:site_name", "content", h.site.Name)
	if h.meta.Image != "" {
		d.open("meta", "property", "og:image", "content", h.meta.Image)
	}
	d.raw(`<meta name="twitter:card" content="summary_large_image">`)
	d.raw(`<link rel="icon" href="/favicon.svg" type="image/svg+xml">`)
	d.open("link", "rel", "alternate", "type", "application/rss+xml", "title", h.site.Name, "href", "/feed.xml")
	d.raw(`<link rel="stylesheet" href="/public/styles.css">`)
	d.raw("<style>", motionCSS, "</style>")
	d.raw(`<noscript><style>.motion-live{display:none}</style></noscript>`)
	if h.jsonld != "" {
		// encoding/json escapes '<', so the body cannot close the element.
		d.raw(`<script type="application/ld+json">`, h.jsonld, "</script>")
	}
	if h.motion {
		d.raw(`<script src="/public/motion.js" defer></script>`)
	}
	d.raw("</head>")
}

// header writes the fixed top bar. Nav links point at home page sections;
// prefix is "" on the home page and "/" elsewhere.
func (d *doc) header(site clinic.Site, active, prefix string, regions clinic.Regions) {
	d.open("header", "data-header", "", "data-motion", "header", "data-visible", visibleAttr(regions.Visible("header")),
		"class", "fixed top-0 inset-x-0 z-50 bg-white/90 backdrop-blur")
	d.raw(`<div class="container mx-auto flex items-center justify-between px-4 py-3">`)
	d.open("a", "href", prefix+"#home", "class", "text-xl font-bold text-primary")
	d.text(site.Name)
	d.close("a")

	d.raw(`<nav class="hidden md:flex items-center gap-8" aria-label="Main">`)
	for _, n := range site.Nav {
		d.el("a", n.Label, "href", prefix+"#"+n.ID, "data-nav", n.ID,
			"data-active", visibleAttr(n.ID == active), "class", NavClass(n.ID == active))
	}
	d.raw("</nav>")
	d.raw(`<button type="button" class="md:hidden" data-menu-toggle aria-expanded="false" aria-controls="nav-mobile">Menu</button>`)
	d.raw("</div>")

	delays := regions["nav-mobile"].Delays
	d.raw(`<nav id="nav-mobile" class="md:hidden border-t px-4 py-2" data-motion="nav-mobile" data-open="false" aria-label="Mobile">`)
	for i, n := range site.Nav {
		d.el("a", n.Label, "href", prefix+"#"+n.ID, "data-nav", n.ID, "class", "block py-2 "+NavClass(n.ID == active),
			"style", delayStyle(delays, i))
	}
	d.raw("</nav>")
	d.close("header")
}

func delayStyle(delays []time.Duration, i int) string {
	if i >= len(delays) {
		return ""
	}
	return "transition-delay:" + strconv.FormatInt(delays[i].Milliseconds(), 10) + "ms"
}

func (d *doc) footer(site clinic.Site, prefix string, regions clinic.Regions) {
	d.open("footer", "data-motion", "footer", "data-visible", visibleAttr(regions.Visible("footer")),
		"class", "bg-gray-900 text-gray-300 py-12")
	d.raw(`<div class="container mx-auto px-4 grid gap-8 md:grid-cols-3">`)
	d.raw("<div>")
	d.el("p", site.Name, "class", "text-xl font-bold text-white mb-3")
	d.el("p", site.Footer.About, "class", "text-sm")
	d.raw("</div>")

	d.raw(`<div><p class="font-semibold text-white mb-3">Quick Links</p><ul class="space-y-2 text-sm">`)
	for _, n := range site.Nav {
		d.raw("<li>")
		d.el("a", n.Label, "href", prefix+"#"+n.ID, "class", "hover:text-white")
		d.raw("</li>")
	}
	d.raw("</ul></div>")

	if len(site.Footer.Links) > 0 {
		d.raw(`<div><ul class="space-y-2 text-sm">`)
		for _, l := range site.Footer.Links {
			d.raw("<li>")
			d.el("a", l.Label, "href", l.Href, "class", "hover:text-white")
			d.raw("</li>")
		}
		d.raw("</ul></div>")
	}
	d.raw("</div>")
	d.el("p", site.Footer.Copyright, "class", "container mx-auto px-4 mt-8 text-xs text-gray-500")
	d.close("footer")
}
