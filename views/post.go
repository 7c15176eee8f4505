package views

import (
	"github.com/a-h/templ"

	clinic "github.com/13harshit/ri-dianosic"
)

// Post renders an article detail page with links to other articles.
func Post(p clinic.PostPage) templ.Component {
	return component(func(d *doc) {
		d.head(head{meta: p.Meta, site: p.Site, jsonld: p.JSONLD})
		d.raw(`<body class="min-h-screen bg-white text-gray-900 antialiased">`)
		d.header(p.Site, "blog", "/", nil)
		d.raw(`<main class="pt-24 pb-20"><article class="container mx-auto px-4 max-w-3xl">`)
		d.raw(`<a href="/#blog" class="text-sm text-primary">← Back to Blog</a>`)

		post := p.Post
		d.raw(`<header class="mt-6 mb-8">`)
		d.el("span", post.Category, "class", "text-xs font-semibold uppercase text-primary")
		d.el("h1", post.Title, "class", "text-3xl md:text-5xl font-bold mt-2 mb-4")
		d.raw(`<p class="text-sm text-gray-500">`)
		d.open("time", "datetime", isoDate(post))
		d.text(post.Date)
		d.close("time")
		d.text(" · " + post.ReadTime)
		d.raw("</p></header>")

		d.image(post.Image, post.Title, "rounded-2xl w-full mb-10", 1200, "loading", "eager")
		d.raw(`<div class="prose max-w-none text-gray-700">`)
		d.render(post.Body.Component())
		d.raw("</div></article>")

		if len(p.More) > 0 {
			d.raw(`<aside class="container mx-auto px-4 max-w-5xl mt-20">`)
			d.raw(`<h2 class="text-2xl font-bold mb-8">More Health Insights</h2>`)
			d.raw(`<div class="grid gap-8 md:grid-cols-2">`)
			for i, o := range p.More {
				d.postCard(o, nil, i)
			}
			d.raw("</div></aside>")
		}
		d.raw("</main>")
		d.footer(p.Site, "/", nil)
		d.raw("</body></html>")
	})
}

func isoDate(p clinic.Post) string {
	t := p.Published()
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02")
}
