package views

import (
	"strconv"

	"github.com/a-h/templ"

	clinic "github.com/13harshit/ri-dianosic"
)

func adminHead(d *doc, title string) {
	d.head(head{meta: clinic.PageMeta{Title: title}})
	d.raw(`<body class="min-h-screen bg-gray-50 text-gray-900 antialiased">`)
}

// AdminLogin renders the password form of the inbox.
func AdminLogin(showError bool, csrf string) templ.Component {
	return component(func(d *doc) {
		adminHead(d, "Admin")
		d.raw(`<main class="max-w-sm mx-auto pt-24 px-4">`)
		d.raw(`<h1 class="text-2xl font-bold mb-6">Inbox</h1>`)
		if showError {
			d.raw(`<p class="mb-4 text-sm text-red-600" role="alert">Wrong password.</p>`)
		}
		d.raw(`<form method="post" action="/admin/login/" class="space-y-4">`)
		d.open("input", "type", "hidden", "name", "_csrf", "value", csrf)
		d.raw(`<label for="password" class="block text-sm font-medium">Password</label>`)
		d.raw(`<input id="password" name="password" type="password" required autofocus class="w-full rounded-lg border px-4 py-2">`)
		d.raw(`<button type="submit" class="w-full rounded-lg bg-primary px-4 py-2 font-semibold text-white">Sign in</button>`)
		d.raw("</form></main></body></html>")
	})
}

// AdminInbox lists contact messages newest first, each with a delete form.
func AdminInbox(messages []clinic.Message, notice, csrf string) templ.Component {
	return component(func(d *doc) {
		adminHead(d, "Inbox")
		d.raw(`<main class="max-w-4xl mx-auto pt-12 px-4">`)
		d.raw(`<div class="flex items-center justify-between mb-8">`)
		d.raw(`<h1 class="text-2xl font-bold">Inbox `)
		d.el("span", "("+strconv.Itoa(len(messages))+")", "class", "text-gray-500")
		d.raw("</h1>")
		d.raw(`<form method="post" action="/admin/logout/">`)
		d.open("input", "type", "hidden", "name", "_csrf", "value", csrf)
		d.raw(`<button type="submit" class="text-sm text-gray-600 underline">Sign out</button></form>`)
		d.raw("</div>")

		if notice != "" {
			d.el("p", notice, "class", "mb-6 rounded-lg bg-primary/10 p-4 text-primary", "role", "status")
		}
		if len(messages) == 0 {
			d.raw(`<p class="text-gray-500">No messages yet.</p>`)
		}
		for _, m := range messages {
			d.open("article", "id", "message-"+strconv.FormatInt(m.ID, 10), "class", "rounded-xl bg-white p-6 shadow-sm mb-4")
			d.raw(`<div class="flex items-start justify-between gap-4">`)
			d.raw("<div>")
			d.el("p", m.Name(), "class", "font-semibold")
			d.open("a", "href", "mailto:"+m.Email, "class", "text-sm text-primary")
			d.text(m.Email)
			d.close("a")
			if m.Phone != "" {
				d.el("p", m.Phone, "class", "text-sm text-gray-600")
			}
			d.raw("</div>")
			d.open("time", "datetime", m.CreatedAt.UTC().Format("2006-01-02T15:04:05Z"), "class", "text-xs text-gray-500")
			d.text(m.CreatedAt.Format("Jan 2, 2006 15:04"))
			d.close("time")
			d.raw("</div>")
			if m.Subject != "" {
				d.el("h2", m.Subject, "class", "mt-4 font-semibold")
			}
			d.el("p", m.Body, "class", "mt-2 whitespace-pre-line text-gray-700")
			d.open("form", "method", "post", "action", "/admin/message/"+strconv.FormatInt(m.ID, 10)+"/", "class", "mt-4")
			d.raw(`<input type="hidden" name="_method" value="DELETE">`)
			d.open("input", "type", "hidden", "name", "_csrf", "value", csrf)
			d.raw(`<button type="submit" class="text-sm text-red-600">Delete</button>`)
			d.close("form")
			d.close("article")
		}
		d.raw("</main></body></html>")
	})
}
