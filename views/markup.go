package views

import (
	"bytes"
	"context"
	"io"

	"github.com/a-h/templ"
)

// doc accumulates escaped HTML for one component.
type doc struct {
	ctx context.Context
	buf bytes.Buffer
	err error
}

func component(fn func(d *doc)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		d := doc{ctx: ctx}
		fn(&d)
		if d.err != nil {
			return d.err
		}
		_, err := w.Write(d.buf.Bytes())
		return err
	})
}

// raw writes trusted markup.
func (d *doc) raw(ss ...string) {
	for _, s := range ss {
		d.buf.WriteString(s)
	}
}

func (d *doc) text(s string) {
	d.buf.WriteString(templ.EscapeString(s))
}

// open writes a start tag. attrs are name, value pairs; values are
// escaped.
func (d *doc) open(tag string, attrs ...string) {
	d.buf.WriteByte('<')
	d.buf.WriteString(tag)
	for i := 0; i+1 < len(attrs); i += 2 {
		d.buf.WriteByte(' ')
		d.buf.WriteString(attrs[i])
		d.buf.WriteString(`="`)
		d.buf.WriteString(templ.EscapeString(attrs[i+1]))
		d.buf.WriteByte('"')
	}
	d.buf.WriteByte('>')
}

func (d *doc) close(tag string) {
	d.raw("</", tag, ">")
}

// el writes a complete element with escaped text content.
func (d *doc) el(tag, text string, attrs ...string) {
	d.open(tag, attrs...)
	d.text(text)
	d.close(tag)
}

// render writes a child component into d. The first error is kept.
func (d *doc) render(c templ.Component) {
	if d.err != nil {
		return
	}
	d.err = c.Render(d.ctx, &d.buf)
}
