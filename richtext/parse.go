package richtext

import (
	"regexp"
	"strings"
)

var reOrderedItem = regexp.MustCompile(`^(\d+)\.\s`)

// Parse reads the line syntax used for hand-written bodies:
//
//	## Heading
//	- bullet
//	1. numbered
//
// Any other non-blank line is paragraph text; consecutive lines join into
// one paragraph and a blank line ends it.
func Parse(src string) Document {
	var (
		doc  Document
		para []string
		list *Block
	)
	flushPara := func() {
		if len(para) > 0 {
			doc = append(doc, Paragraph(strings.Join(para, " ")))
			para = nil
		}
	}
	flushList := func() {
		if list != nil {
			doc = append(doc, *list)
			list = nil
		}
	}
	addItem := func(ordered bool, text string) {
		flushPara()
		if list != nil && list.Ordered != ordered {
			flushList()
		}
		if list == nil {
			list = &Block{Kind: KindList, Ordered: ordered}
		}
		list.Items = append(list.Items, text)
	}

	for _, raw := range strings.Split(src, "\n") {
		line := strings.TrimSpace(strings.TrimRight(raw, "\r"))
		switch {
		case line == "":
			flushPara()
			flushList()
		case headingLevel(line) > 0:
			flushPara()
			flushList()
			n := headingLevel(line)
			doc = append(doc, Heading(n, strings.TrimSpace(line[n+1:])))
		case strings.HasPrefix(line, "- "):
			addItem(false, strings.TrimSpace(line[2:]))
		case reOrderedItem.MatchString(line):
			addItem(true, strings.TrimSpace(reOrderedItem.ReplaceAllString(line, "")))
		default:
			flushList()
			para = append(para, line)
		}
	}
	flushPara()
	flushList()
	return doc
}

func headingLevel(line string) int {
	n := 0
	for n < len(line) && line[n] == '#' {
		n++
	}
	if n == 0 || n > 4 || n >= len(line) || line[n] != ' ' {
		return 0
	}
	return n
}
