package richtext

import (
	"html"
	"net/url"
	"regexp"
	"strconv"
	"strings"
)

var (
	reBold         = regexp.MustCompile(`\*\*(.+?)\*\*`)
	reItalic       = regexp.MustCompile(`\*([^*]+)\*`)
	reInlineCode   = regexp.MustCompile("`([^`]+)`")
	reLink         = regexp.MustCompile(`\[(.*?)\]\((.*?)\)(\^)?`)
	reStripMarkers = regexp.MustCompile("\\*\\*|\\*|`")
)

// FormatInline escapes s and applies **bold**, *em*, `code` and
// [text](url) formatting. A trailing ^ on a link opens it in a new tab.
func FormatInline(s string) string {
	escaped := html.EscapeString(s)
	escaped = reLink.ReplaceAllStringFunc(escaped, func(m string) string {
		match := reLink.FindStringSubmatch(m)
		href := SafeURL(match[2])
		if href == "" {
			return match[1]
		}
		attrs := `class="text-primary underline underline-offset-4"`
		if match[3] == "^" {
			attrs += ` target="_blank" rel="noopener noreferrer"`
		}
		return `<a href="` + href + `" ` + attrs + `>` + match[1] + `</a>`
	})
	// Code spans are swapped for placeholders so emphasis never reaches
	// inside them.
	var code []string
	escaped = reInlineCode.ReplaceAllStringFunc(escaped, func(m string) string {
		match := reInlineCode.FindStringSubmatch(m)
		code = append(code, "<code>"+match[1]+"</code>")
		return "\x00C" + strconv.Itoa(len(code)-1) + "\x00"
	})
	escaped = applyOutsideTags(escaped, func(seg string) string {
		seg = reBold.ReplaceAllString(seg, "<strong>$1</strong>")
		return reItalic.ReplaceAllString(seg, "<em>$1</em>")
	})
	for i, c := range code {
		escaped = strings.Replace(escaped, "\x00C"+strconv.Itoa(i)+"\x00", c, 1)
	}
	return escaped
}

// StripInline removes inline markers, keeping link text and dropping the
// target.
func StripInline(s string) string {
	s = reLink.ReplaceAllString(s, "$1")
	return reStripMarkers.ReplaceAllString(s, "")
}

// applyOutsideTags runs fn on text between HTML tags only, so href values
// are never rewritten.
func applyOutsideTags(s string, fn func(string) string) string {
	var buf strings.Builder
	for len(s) > 0 {
		lt := strings.Index(s, "<")
		if lt < 0 {
			buf.WriteString(fn(s))
			break
		}
		if lt > 0 {
			buf.WriteString(fn(s[:lt]))
		}
		gt := strings.Index(s[lt:], ">")
		if gt < 0 {
			buf.WriteString(s[lt:])
			break
		}
		buf.WriteString(s[lt : lt+gt+1])
		s = s[lt+gt+1:]
	}
	return buf.String()
}

// SafeURL returns raw escaped for an href when it is site-relative, a
// fragment, or uses http, https, mailto or tel. Anything else yields "".
func SafeURL(raw string) string {
	val := strings.TrimSpace(html.UnescapeString(raw))
	if val == "" {
		return ""
	}
	if strings.HasPrefix(val, "/") || strings.HasPrefix(val, "#") {
		if strings.HasPrefix(val, "//") {
			return ""
		}
		return html.EscapeString(val)
	}
	parsed, err := url.Parse(val)
	if err != nil || parsed.Scheme == "" {
		return ""
	}
	switch strings.ToLower(parsed.Scheme) {
	case "http", "https", "mailto", "tel":
		return html.EscapeString(val)
	default:
		return ""
	}
}
