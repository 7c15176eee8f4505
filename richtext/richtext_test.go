package richtext

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestParse(t *testing.T) {
	src := `
Regular checkups help.
They catch issues early.

### Why It Matters
- Reduces risk.
- Detects **early**.
1. first
2. second
Closing line.
`
	got := Parse(src)
	want := Document{
		Paragraph("Regular checkups help. They catch issues early."),
		Heading(3, "Why It Matters"),
		List("Reduces risk.", "Detects **early**."),
		{Kind: KindList, Ordered: true, Items: []string{"first", "second"}},
		Paragraph("Closing line."),
	}
	if len(got) != len(want) {
		t.Fatalf("Parse produced %d blocks, want %d: %#v", len(got), len(want), got)
	}
	for i := range want {
		g, w := got[i], want[i]
		if g.Kind != w.Kind || g.Level != w.Level || g.Text != w.Text || g.Ordered != w.Ordered || strings.Join(g.Items, "|") != strings.Join(w.Items, "|") {
			t.Errorf("block %d = %#v, want %#v", i, g, w)
		}
	}
}

func TestParseHeadingNeedsSpace(t *testing.T) {
	doc := Parse("#hashtag")
	if len(doc) != 1 || doc[0].Kind != KindParagraph {
		t.Errorf("Parse(#hashtag) = %#v, want a paragraph", doc)
	}
}

func TestRenderHTML(t *testing.T) {
	doc := Document{
		Paragraph("Blood tests <matter>."),
		Heading(3, "Lipid Profile"),
		List("LDL", "HDL"),
	}
	want := `<p class="mb-4">Blood tests &lt;matter&gt;.</p>` + "\n" +
		`<h3 class="text-2xl font-bold mb-3 mt-6">Lipid Profile</h3>` + "\n" +
		`<ul class="list-disc pl-6 mb-4 space-y-2"><li>LDL</li><li>HDL</li></ul>` + "\n"
	if got := doc.HTML(); got != want {
		t.Errorf("HTML =\n%s\nwant\n%s", got, want)
	}

	var buf bytes.Buffer
	if err := doc.Component().Render(context.Background(), &buf); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if buf.String() != want {
		t.Errorf("Component output differs from HTML: %q", buf.String())
	}
}

func TestDocumentYAML(t *testing.T) {
	src := `
blocks:
  - p: Regular health checkups are essential.
  - h3: Benefits of Preventive Care
  - ul:
      - Reduces the risk of getting sick.
      - Increases lifespan.
  - ol: [one, two]
text: |
  ## From text
  Body line.
`
	var v struct {
		Blocks Document `yaml:"blocks"`
		Text   Document `yaml:"text"`
	}
	if err := yaml.Unmarshal([]byte(src), &v); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if len(v.Blocks) != 4 {
		t.Fatalf("blocks = %d, want 4", len(v.Blocks))
	}
	if b := v.Blocks[1]; b.Kind != KindHeading || b.Level != 3 || b.Text != "Benefits of Preventive Care" {
		t.Errorf("heading = %#v", b)
	}
	if b := v.Blocks[2]; b.Kind != KindList || len(b.Items) != 2 || b.Ordered {
		t.Errorf("list = %#v", b)
	}
	if !v.Blocks[3].Ordered {
		t.Error("ol should decode as an ordered list")
	}
	if err := v.Blocks.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
	if len(v.Text) != 2 || v.Text[0].Level != 2 {
		t.Errorf("text document = %#v", v.Text)
	}

	out, err := yaml.Marshal(v.Blocks)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var back Document
	if err := yaml.Unmarshal(out, &back); err != nil {
		t.Fatalf("Unmarshal marshalled blocks: %v", err)
	}
	if back.HTML() != v.Blocks.HTML() {
		t.Errorf("marshalled document renders differently:\n%s", out)
	}
}

func TestDocumentYAMLRejectsUnknownBlock(t *testing.T) {
	var d Document
	err := yaml.Unmarshal([]byte("- blink: hello\n"), &d)
	if err == nil || !strings.Contains(err.Error(), "unknown block") {
		t.Errorf("err = %v, want unknown block", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		doc  Document
		ok   bool
	}{
		{"empty document", nil, true},
		{"heading level", Document{Heading(7, "x")}, false},
		{"blank paragraph", Document{Paragraph("  ")}, false},
		{"empty list", Document{List()}, false},
		{"unknown kind", Document{{Kind: "table"}}, false},
	}
	for _, tt := range tests {
		err := tt.doc.Validate()
		if (err == nil) != tt.ok {
			t.Errorf("%s: Validate = %v, want ok=%v", tt.name, err, tt.ok)
		}
	}
}

func TestReadTime(t *testing.T) {
	short := Document{Paragraph("one two three")}
	if got := short.ReadTime(); got != "1 min read" {
		t.Errorf("ReadTime = %q, want %q", got, "1 min read")
	}
	long := Document{Paragraph(strings.Repeat("word ", 401))}
	if got := long.ReadTime(); got != "3 min read" {
		t.Errorf("ReadTime = %q, want %q", got, "3 min read")
	}
}
