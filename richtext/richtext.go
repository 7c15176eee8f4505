// Package richtext holds article bodies as a small tree of typed blocks
// and renders them to escaped HTML as templ components.
package richtext

import (
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Kind is the type of a block.
type Kind string

const (
	KindHeading   Kind = "heading"
	KindParagraph Kind = "paragraph"
	KindList      Kind = "list"
)

// Block is one element of a Document. Headings and paragraphs use Text;
// lists use Items. Text and items may carry inline formatting.
type Block struct {
	Kind    Kind
	Level   int // heading level, 1 to 4
	Text    string
	Items   []string
	Ordered bool
}

// Heading returns a heading block.
func Heading(level int, text string) Block {
	return Block{Kind: KindHeading, Level: level, Text: text}
}

// Paragraph returns a paragraph block.
func Paragraph(text string) Block {
	return Block{Kind: KindParagraph, Text: text}
}

// List returns a bulleted list block.
func List(items ...string) Block {
	return Block{Kind: KindList, Items: items}
}

// Document is an ordered list of blocks.
type Document []Block

var errEmptyBlock = errors.New("empty block")

// Validate reports the first malformed block.
func (d Document) Validate() error {
	for i, b := range d {
		var err error
		switch b.Kind {
		case KindHeading:
			if b.Level < 1 || b.Level > 4 {
				err = fmt.Errorf("heading level %d out of range", b.Level)
			} else if strings.TrimSpace(b.Text) == "" {
				err = errEmptyBlock
			}
		case KindParagraph:
			if strings.TrimSpace(b.Text) == "" {
				err = errEmptyBlock
			}
		case KindList:
			if len(b.Items) == 0 {
				err = errEmptyBlock
			}
		default:
			err = fmt.Errorf("unknown kind %q", b.Kind)
		}
		if err != nil {
			return fmt.Errorf("richtext: block %d: %w", i, err)
		}
	}
	return nil
}

// PlainText returns the text of every block with inline markers removed,
// one block per line.
func (d Document) PlainText() string {
	var sb strings.Builder
	for i, b := range d {
		if i > 0 {
			sb.WriteByte('\n')
		}
		switch b.Kind {
		case KindList:
			for j, item := range b.Items {
				if j > 0 {
					sb.WriteByte('\n')
				}
				sb.WriteString(StripInline(item))
			}
		default:
			sb.WriteString(StripInline(b.Text))
		}
	}
	return sb.String()
}

// Words counts whitespace-separated words in the document.
func (d Document) Words() int {
	return len(strings.Fields(d.PlainText()))
}

// ReadTime estimates reading time at 200 words per minute, at least one.
func (d Document) ReadTime() string {
	n := (d.Words() + 199) / 200
	if n < 1 {
		n = 1
	}
	return fmt.Sprintf("%d min read", n)
}

// UnmarshalYAML accepts either a block sequence or a literal string in the
// line syntax understood by Parse.
//
//	body:
//	  - p: Regular checkups matter.
//	  - h3: Why Early Detection Matters
//	  - ul: [one, two]
func (d *Document) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		*d = Parse(node.Value)
		return nil
	}
	if node.Kind != yaml.SequenceNode {
		return fmt.Errorf("richtext: line %d: document must be a list or a string", node.Line)
	}
	out := make(Document, 0, len(node.Content))
	for _, n := range node.Content {
		var b Block
		if err := n.Decode(&b); err != nil {
			return err
		}
		out = append(out, b)
	}
	*d = out
	return nil
}

// UnmarshalYAML decodes a single-key mapping such as {h3: text},
// {p: text}, {ul: [items]} or {ol: [items]}.
func (b *Block) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode || len(node.Content) != 2 {
		return fmt.Errorf("richtext: line %d: block must be a single-key mapping", node.Line)
	}
	key, val := node.Content[0].Value, node.Content[1]
	switch key {
	case "h1", "h2", "h3", "h4":
		*b = Heading(int(key[1]-'0'), "")
		return val.Decode(&b.Text)
	case "p":
		*b = Paragraph("")
		return val.Decode(&b.Text)
	case "ul", "ol":
		*b = Block{Kind: KindList, Ordered: key == "ol"}
		return val.Decode(&b.Items)
	}
	return fmt.Errorf("richtext: line %d: unknown block %q", node.Line, key)
}

// MarshalYAML writes the single-key form read by UnmarshalYAML.
func (b Block) MarshalYAML() (interface{}, error) {
	switch b.Kind {
	case KindHeading:
		return map[string]string{fmt.Sprintf("h%d", b.Level): b.Text}, nil
	case KindParagraph:
		return map[string]string{"p": b.Text}, nil
	case KindList:
		key := "ul"
		if b.Ordered {
			key = "ol"
		}
		return map[string][]string{key: b.Items}, nil
	}
	return nil, fmt.Errorf("richtext: unknown kind %q", b.Kind)
}
