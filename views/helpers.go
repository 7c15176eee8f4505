package views

import (
	"net/url"
	"strconv"
	"strings"

	clinic "github.com/13harshit/ri-dianosic"
)

// PathEscape wraps url.PathEscape for use in templates.
func PathEscape(s string) string {
	return url.PathEscape(s)
}

// SplitHighlight splits a section title around its highlighted word. When
// the word does not occur the whole title is returned as before.
func SplitHighlight(h clinic.SectionHeader) (before, word, after string) {
	if h.Highlight == "" {
		return h.Title, "", ""
	}
	i := strings.Index(h.Title, h.Highlight)
	if i < 0 {
		return h.Title, "", ""
	}
	return h.Title[:i], h.Highlight, h.Title[i+len(h.Highlight):]
}

// Srcset returns the srcset of a public image served through /img/. Paths
// outside /images/ return "".
func Srcset(image string) string {
	name, ok := strings.CutPrefix(image, "/images/")
	if !ok || name == "" || strings.Contains(name, "/") {
		return ""
	}
	parts := make([]string, 0, len(clinic.ImageWidths))
	for _, w := range clinic.ImageWidths {
		parts = append(parts, ImageURL(image, w)+" "+strconv.Itoa(w)+"w")
	}
	return strings.Join(parts, ", ")
}

// ImageURL returns the resized variant of a public image, or image itself
// when it is not under /images/.
func ImageURL(image string, width int) string {
	name, ok := strings.CutPrefix(image, "/images/")
	if !ok || name == "" || strings.Contains(name, "/") {
		return image
	}
	return "/img/" + PathEscape(name) + "/?w=" + strconv.Itoa(width)
}

// Stars returns a rating as filled and empty stars out of five.
func Stars(n int) string {
	n = max(0, min(n, 5))
	return strings.Repeat("★", n) + strings.Repeat("☆", 5-n)
}

// visibleAttr is the data-visible value for a region snapshot.
func visibleAttr(visible bool) string {
	if visible {
		return "true"
	}
	return "false"
}

// NavClass returns the classes of a nav link.
func NavClass(active bool) string {
	base := "text-sm font-medium transition-colors hover:text-primary"
	if active {
		base += " text-primary"
	}
	return base
}
