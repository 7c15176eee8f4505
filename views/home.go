package views

import (
	"strconv"

	"github.com/a-h/templ"

	clinic "github.com/13harshit/ri-dianosic"
)

// Home renders the single-page site.
func Home(p clinic.HomePage) templ.Component {
	return component(func(d *doc) {
		d.head(head{meta: p.Meta, site: p.Site, jsonld: p.JSONLD, motion: true})
		d.raw(`<body class="min-h-screen bg-white text-gray-900 antialiased">`)
		d.header(p.Site, p.Active, "", p.Regions)
		d.raw("<main>")
		d.hero(p)
		d.about(p.Site.About, p.Regions)
		d.services(p.Site.Services, p.Regions)
		d.testimonials(p.Site.Testimonials, p.Regions)
		d.blog(p.Site.Blog, p.Posts, p.Regions)
		d.contact(p)
		d.raw("</main>")
		d.footer(p.Site, "", p.Regions)
		d.raw("</body></html>")
	})
}

// reveal opens an element bound to a one-shot or repeating region.
func (d *doc) reveal(tag, key string, regions clinic.Regions, attrs ...string) {
	d.open(tag, append([]string{"data-motion", key, "data-visible", visibleAttr(regions.Visible(key))}, attrs...)...)
}

func (d *doc) sectionHeader(section string, h clinic.SectionHeader, regions clinic.Regions) {
	d.raw(`<div class="text-center max-w-3xl mx-auto mb-16">`)
	d.reveal("span", section+"-badge", regions, "class", "inline-block rounded-full bg-primary/10 px-4 py-1 text-sm font-medium text-primary mb-4")
	d.text(h.Badge)
	d.close("span")

	d.reveal("h2", section+"-title", regions, "class", "text-3xl md:text-4xl font-bold mb-4")
	before, word, after := SplitHighlight(h)
	d.text(before)
	if word != "" {
		d.el("span", word, "class", "text-primary")
	}
	d.text(after)
	d.close("h2")

	if h.Description != "" {
		d.reveal("p", section+"-description", regions, "class", "text-lg text-gray-600")
		d.text(h.Description)
		d.close("p")
	}
	d.raw("</div>")
}

// image writes a responsive img. Extra attrs may override loading.
func (d *doc) image(src, alt, class string, width int, attrs ...string) {
	a := []string{"src", ImageURL(src, width), "alt", alt, "class", class}
	if !hasAttr(attrs, "loading") {
		a = append(a, "loading", "lazy")
	}
	if set := Srcset(src); set != "" {
		a = append(a, "srcset", set, "sizes", "(min-width: 768px) 50vw, 100vw")
	}
	d.open("img", append(a, attrs...)...)
}

func hasAttr(attrs []string, name string) bool {
	for i := 0; i < len(attrs); i += 2 {
		if attrs[i] == name {
			return true
		}
	}
	return false
}

func (d *doc) hero(p clinic.HomePage) {
	h := p.Site.Hero
	r := p.Regions
	d.raw(`<section id="home" class="relative min-h-screen flex items-center overflow-hidden pt-20">`)
	d.reveal("div", "hero-image", r, "class", "absolute inset-0 -z-10")
	d.image(h.Image, "", "w-full h-full object-cover opacity-20", 1200, "data-parallax", "0.5", "loading", "eager")
	d.close("div")

	d.raw(`<div class="container mx-auto px-4 py-20 max-w-3xl">`)
	d.reveal("span", "hero-badge", r, "class", "inline-block rounded-full bg-primary/10 px-4 py-1 text-sm font-medium text-primary mb-6")
	d.text(h.Badge)
	d.close("span")

	d.reveal("h1", "hero-title", r, "class", "text-4xl md:text-6xl font-bold leading-tight mb-6", "aria-label", h.Headline)
	d.open("span", "data-motion", "hero-typewriter")
	d.el("span", r["hero-typewriter"].Text, "data-motion-text", "", "class", "motion-live")
	d.raw(`<span class="motion-live animate-pulse" aria-hidden="true">|</span>`)
	d.raw("<noscript>")
	d.text(h.Headline)
	d.raw("</noscript>")
	d.close("span")
	d.close("h1")

	d.reveal("p", "hero-description", r, "class", "text-lg md:text-xl text-gray-600 mb-8")
	d.text(h.Description)
	d.close("p")

	d.reveal("div", "hero-buttons", r, "class", "flex flex-wrap gap-4 mb-12")
	d.el("a", h.Primary.Label, "href", "#"+h.Primary.Target, "class", "rounded-lg bg-primary px-6 py-3 font-semibold text-white")
	d.el("a", h.Secondary.Label, "href", "#"+h.Secondary.Target, "class", "rounded-lg border border-primary px-6 py-3 font-semibold text-primary")
	d.close("div")

	d.reveal("div", "hero-stats", r, "class", "grid grid-cols-2 md:grid-cols-4 gap-6")
	for _, st := range p.Stats {
		d.open("div", "data-motion", st.Key, "data-icon", st.Icon, "class", "text-center")
		d.raw(`<p class="text-3xl font-bold text-primary">`)
		d.raw(`<span class="motion-live">`)
		d.el("span", st.Display, "data-motion-value", "")
		d.raw("</span><noscript>")
		d.text(st.Final)
		d.raw("</noscript></p>")
		d.el("p", st.Label, "class", "text-sm text-gray-600")
		d.close("div")
	}
	d.close("div")
	d.raw("</div></section>")
}

func (d *doc) about(a clinic.About, r clinic.Regions) {
	d.raw(`<section id="about" class="py-20 bg-gray-50"><div class="container mx-auto px-4">`)
	d.sectionHeader("about", a.SectionHeader, r)
	d.raw(`<div class="grid gap-12 md:grid-cols-2 items-center">`)

	d.reveal("div", "about-features", r)
	for _, para := range a.Paragraphs {
		d.el("p", para, "class", "text-gray-600 mb-4")
	}
	d.raw(`<ul class="mt-8 space-y-4">`)
	for _, f := range a.Features {
		d.open("li", "data-icon", f.Icon, "class", "flex gap-4")
		d.raw("<div>")
		d.el("p", f.Title, "class", "font-semibold")
		d.el("p", f.Text, "class", "text-sm text-gray-600")
		d.raw("</div>")
		d.close("li")
	}
	d.raw("</ul>")
	d.close("div")

	d.reveal("div", "about-image", r, "class", "relative")
	d.image(a.Image, a.Title, "rounded-2xl shadow-xl w-full", 800)
	if a.Years != "" {
		d.raw(`<div class="absolute -bottom-6 -left-6 rounded-xl bg-primary p-6 text-white">`)
		d.el("p", a.Years, "class", "text-3xl font-bold")
		d.raw(`<p class="text-sm">Years of Excellence</p></div>`)
	}
	d.close("div")
	d.raw("</div></div></section>")
}

// staggerItem opens a card of a staggered list.
func (d *doc) staggerItem(tag string, delays []int64, i int, class string) {
	style := ""
	if i < len(delays) {
		style = "transition-delay:" + strconv.FormatInt(delays[i], 10) + "ms"
	}
	d.open(tag, "data-motion-item", "", "data-visible", "false", "style", style, "class", class)
}

func delaysMillis(r clinic.Regions, key string) []int64 {
	ds := r[key].Delays
	out := make([]int64, len(ds))
	for i, v := range ds {
		out[i] = v.Milliseconds()
	}
	return out
}

func (d *doc) services(s clinic.ServiceSection, r clinic.Regions) {
	d.raw(`<section id="services" class="py-20"><div class="container mx-auto px-4">`)
	d.sectionHeader("services", s.SectionHeader, r)
	delays := delaysMillis(r, "services-cards")
	d.raw(`<div data-motion="services-cards" class="grid gap-8 md:grid-cols-2">`)
	for i, svc := range s.Items {
		d.staggerItem("article", delays, i, "rounded-2xl border bg-white overflow-hidden shadow-sm hover:shadow-xl transition-shadow")
		d.image(svc.Image, svc.Title, "h-48 w-full object-cover", 800)
		d.open("div", "class", "p-6", "data-icon", svc.Icon)
		d.el("h3", svc.Title, "class", "text-xl font-bold mb-2")
		d.el("p", svc.Description, "class", "text-gray-600 mb-4")
		d.raw(`<ul class="grid grid-cols-2 gap-2 text-sm">`)
		for _, f := range svc.Features {
			d.el("li", f)
		}
		d.raw("</ul></div>")
		d.close("article")
	}
	d.raw("</div></div></section>")
}

func (d *doc) testimonials(t clinic.Testimonials, r clinic.Regions) {
	d.raw(`<section id="testimonials" class="py-20 bg-gray-50"><div class="container mx-auto px-4">`)
	d.sectionHeader("testimonials", t.SectionHeader, r)
	delays := delaysMillis(r, "testimonials-cards")
	d.raw(`<div data-motion="testimonials-cards" class="grid gap-8 md:grid-cols-3">`)
	for i, tm := range t.Items {
		d.staggerItem("figure", delays, i, "rounded-2xl bg-white p-8 shadow-sm")
		d.el("p", Stars(tm.Rating), "class", "text-yellow-500 mb-4", "aria-label", strconv.Itoa(tm.Rating)+" out of 5")
		d.raw(`<blockquote class="text-gray-600 italic mb-6">`)
		d.text("“" + tm.Text + "”")
		d.raw("</blockquote>")
		d.raw(`<figcaption class="flex items-center gap-3">`)
		d.el("span", tm.Initials(), "class", "flex h-12 w-12 items-center justify-center rounded-full bg-primary text-white font-bold")
		d.raw("<span>")
		d.el("span", tm.Name, "class", "block font-semibold")
		d.el("span", tm.Role, "class", "block text-sm text-gray-500")
		d.raw("</span></figcaption>")
		d.close("figure")
	}
	d.raw("</div></div></section>")
}

func (d *doc) postCard(p clinic.Post, delays []int64, i int) {
	d.staggerItem("article", delays, i, "rounded-2xl border bg-white overflow-hidden shadow-sm hover:shadow-xl transition-shadow")
	d.open("a", "href", p.Link(), "class", "block")
	d.image(p.Image, p.Title, "h-48 w-full object-cover", 480)
	d.raw(`<div class="p-6">`)
	d.el("span", p.Category, "class", "text-xs font-semibold uppercase text-primary")
	d.el("h3", p.Title, "class", "text-xl font-bold mt-2 mb-2")
	d.el("p", p.Excerpt, "class", "text-gray-600 mb-4")
	d.raw(`<p class="text-sm text-gray-500">`)
	d.text(p.Date + " · " + p.ReadTime)
	d.raw("</p></div>")
	d.close("a")
	d.close("article")
}

func (d *doc) blog(h clinic.SectionHeader, posts []clinic.Post, r clinic.Regions) {
	d.raw(`<section id="blog" class="py-20"><div class="container mx-auto px-4">`)
	d.sectionHeader("blog", h, r)
	delays := delaysMillis(r, "blog-cards")
	d.raw(`<div data-motion="blog-cards" class="grid gap-8 md:grid-cols-3">`)
	for i, p := range posts {
		d.postCard(p, delays, i)
	}
	d.raw("</div></div></section>")
}

// contactFields lists the form inputs with the validation field each one
// reports under.
var contactFields = []struct {
	name, field, label, typ string
	required                bool
}{
	{"firstName", "first_name", "First Name", "text", true},
	{"lastName", "last_name", "Last Name", "text", false},
	{"email", "email", "Email", "email", true},
	{"phone", "phone", "Phone", "tel", false},
	{"subject", "subject", "Subject", "text", false},
}

func fieldValue(m clinic.Message, name string) string {
	switch name {
	case "firstName":
		return m.FirstName
	case "lastName":
		return m.LastName
	case "email":
		return m.Email
	case "phone":
		return m.Phone
	case "subject":
		return m.Subject
	}
	return ""
}

func (d *doc) fieldError(f clinic.ContactForm, field string) {
	if f.HasError(field) {
		d.el("p", f.Error.Reason, "class", "mt-1 text-sm text-red-600", "role", "alert")
	}
}

func (d *doc) contact(p clinic.HomePage) {
	c := p.Site.Contact
	r := p.Regions
	d.raw(`<section id="contact" class="py-20 bg-gray-50"><div class="container mx-auto px-4">`)
	d.sectionHeader("contact", c.SectionHeader, r)
	d.raw(`<div class="grid gap-12 md:grid-cols-2">`)

	d.reveal("div", "contact-info", r)
	d.el("h3", c.InfoTitle, "class", "text-2xl font-bold mb-4")
	d.el("p", c.InfoDescription, "class", "text-gray-600 mb-8")
	d.raw(`<ul class="space-y-6">`)
	for _, ch := range c.Channels {
		d.open("li", "data-icon", ch.Icon)
		d.el("p", ch.Title, "class", "font-semibold")
		for _, line := range ch.Lines {
			d.el("p", line, "class", "text-gray-600")
		}
		d.close("li")
	}
	d.raw("</ul>")
	d.close("div")

	d.reveal("div", "contact-form", r, "class", "rounded-2xl bg-white p-8 shadow-sm")
	d.el("h3", c.FormTitle, "class", "text-2xl font-bold mb-2")
	d.el("p", c.FormDescription, "class", "text-gray-600 mb-6")
	if p.Notice != "" {
		d.el("p", p.Notice, "class", "mb-6 rounded-lg bg-primary/10 p-4 text-primary", "role", "status")
	}
	d.raw(`<form method="post" action="/contact/" class="space-y-4">`)
	d.open("input", "type", "hidden", "name", "_csrf", "value", p.CSRF)
	for _, f := range contactFields {
		d.raw("<div>")
		d.el("label", f.label, "for", f.name, "class", "block text-sm font-medium mb-1")
		attrs := []string{"id", f.name, "name", f.name, "type", f.typ, "value", fieldValue(p.Form.Message, f.name),
			"class", "w-full rounded-lg border px-4 py-2"}
		if f.required {
			attrs = append(attrs, "required", "")
		}
		d.open("input", attrs...)
		d.fieldError(p.Form, f.field)
		d.raw("</div>")
	}
	d.raw(`<div><label for="message" class="block text-sm font-medium mb-1">Message</label>`)
	d.raw(`<textarea id="message" name="message" rows="5" required class="w-full rounded-lg border px-4 py-2">`)
	d.text(p.Form.Body)
	d.raw("</textarea>")
	d.fieldError(p.Form, "message")
	d.raw("</div>")
	d.raw(`<button type="submit" class="w-full rounded-lg bg-primary px-6 py-3 font-semibold text-white">Send Message</button>`)
	d.raw("</form>")
	d.close("div")
	d.raw("</div></div></section>")
}
