package richtext

import (
	"bytes"
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"
)

// Class names applied to rendered blocks.
const (
	ClassParagraph = "mb-4"
	ClassHeading   = "text-2xl font-bold mb-3 mt-6"
	ClassList      = "list-disc pl-6 mb-4 space-y-2"
	ClassOrdered   = "list-decimal pl-6 mb-4 space-y-2"
)

// Component returns a templ.Component that renders d.
func (d Document) Component() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var buf bytes.Buffer
		d.render(&buf)
		_, err := w.Write(buf.Bytes())
		return err
	})
}

// HTML returns the rendered document.
func (d Document) HTML() string {
	var buf bytes.Buffer
	d.render(&buf)
	return buf.String()
}

func (d Document) render(buf *bytes.Buffer) {
	for _, b := range d {
		switch b.Kind {
		case KindHeading:
			tag := "h" + strconv.Itoa(clampLevel(b.Level))
			buf.WriteString("<" + tag + ` class="` + ClassHeading + `">`)
			buf.WriteString(FormatInline(b.Text))
			buf.WriteString("</" + tag + ">")
		case KindParagraph:
			buf.WriteString(`<p class="` + ClassParagraph + `">`)
			buf.WriteString(FormatInline(b.Text))
			buf.WriteString("</p>")
		case KindList:
			tag, class := "ul", ClassList
			if b.Ordered {
				tag, class = "ol", ClassOrdered
			}
			buf.WriteString("<" + tag + ` class="` + class + `">`)
			for _, item := range b.Items {
				buf.WriteString("<li>")
				buf.WriteString(FormatInline(item))
				buf.WriteString("</li>")
			}
			buf.WriteString("</" + tag + ">")
		}
		buf.WriteByte('\n')
	}
}

func clampLevel(n int) int {
	if n < 1 {
		return 1
	}
	if n > 4 {
		return 4
	}
	return n
}
