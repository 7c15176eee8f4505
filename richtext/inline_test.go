package richtext

import (
	"strings"
	"testing"
)

func TestFormatInline(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"**bold**", "<strong>bold</strong>"},
		{"text *italic* more", "text <em>italic</em> more"},
		{"**bold *italic* text**", "<strong>bold <em>italic</em> text</strong>"},
		{"use `fmt.Println` here", "use <code>fmt.Println</code> here"},
		{"`**not bold**`", "<code>**not bold**</code>"},
		{"HbA1c < 5.7% & LDL > 100", "HbA1c &lt; 5.7% &amp; LDL &gt; 100"},
		{"<script>alert(1)</script>", "&lt;script&gt;alert(1)&lt;/script&gt;"},
	}
	for _, tt := range tests {
		if got := FormatInline(tt.input); got != tt.expected {
			t.Errorf("FormatInline(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestFormatInlineLinks(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{
			"[book a test](/#contact)",
			`<a href="/#contact" class="text-primary underline underline-offset-4">book a test</a>`,
		},
		{
			"[guide](https://example.com/some_page_here)^",
			`<a href="https://example.com/some_page_here" class="text-primary underline underline-offset-4" target="_blank" rel="noopener noreferrer">guide</a>`,
		},
		{"[call](tel:+911234567890)", `<a href="tel:+911234567890" class="text-primary underline underline-offset-4">call</a>`},
		{"[bad](javascript:void)", "bad"},
		{"[proto](//evil.example)", "proto"},
	}
	for _, tt := range tests {
		if got := FormatInline(tt.input); got != tt.expected {
			t.Errorf("FormatInline(%q)\n  got:  %q\n  want: %q", tt.input, got, tt.expected)
		}
	}
}

func TestFormatInlineBoldNotItalic(t *testing.T) {
	if got := FormatInline("**bold**"); strings.Contains(got, "<em>") {
		t.Errorf("FormatInline(**bold**) = %q, should not contain <em>", got)
	}
}

func TestSafeURL(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", ""},
		{"/blog/1/", "/blog/1/"},
		{"#services", "#services"},
		{"https://example.com/?a=1&b=2", "https://example.com/?a=1&amp;b=2"},
		{"mailto:info@ritudiagnostic.com", "mailto:info@ritudiagnostic.com"},
		{"data:text/html,hi", ""},
		{"example.com", ""},
	}
	for _, tt := range tests {
		if got := SafeURL(tt.in); got != tt.want {
			t.Errorf("SafeURL(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestStripInline(t *testing.T) {
	got := StripInline("See **your** [results](/r) and `HbA1c`")
	if want := "See your results and HbA1c"; got != want {
		t.Errorf("StripInline = %q, want %q", got, want)
	}
}
