package views

import (
	"github.com/a-h/templ"

	clinic "github.com/13harshit/ri-dianosic"
)

func errorPage(title, heading, text string) templ.Component {
	return component(func(d *doc) {
		d.head(head{meta: clinic.PageMeta{Title: title, Description: text, OGType: "website"}})
		d.raw(`<body class="min-h-screen flex items-center justify-center bg-white text-gray-900 antialiased">`)
		d.raw(`<main class="text-center px-4">`)
		d.el("h1", heading, "class", "text-4xl font-bold mb-4")
		d.el("p", text, "class", "text-gray-600 mb-8")
		d.raw(`<a href="/" class="rounded-lg bg-primary px-6 py-3 font-semibold text-white">Back to Home</a>`)
		d.raw("</main></body></html>")
	})
}

// NotFound renders the 404 page, also used for unknown article ids.
func NotFound() templ.Component {
	return errorPage("Not Found", "Page Not Found", "The page you are looking for does not exist or has been moved.")
}

func ServerError() templ.Component {
	return errorPage("Server Error", "Something went wrong", "Please try again in a moment.")
}
