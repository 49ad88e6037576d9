package content

import (
	"html"
	"strings"
)

// BlockType classifies one source line of page content.
type BlockType string

const (
	BlockHeading   BlockType = "heading"
	BlockListItem  BlockType = "list-item"
	BlockParagraph BlockType = "paragraph"
	BlockBlank     BlockType = "blank"
)

// Span is a run of paragraph text, optionally bold.
type Span struct {
	Text string `json:"text"`
	Bold bool   `json:"bold,omitempty"`
}

// Block is the rendered form of a single content line.
type Block struct {
	Type  BlockType `json:"type"`
	Level int       `json:"level,omitempty"`
	Text  string    `json:"text,omitempty"`
	Spans []Span    `json:"spans,omitempty"`
}

// Render classifies content line by line. The markup is deliberately
// small and non-standard: heading level is the leading '#' count (max
// three), '- ' starts a list item, '**' pairs bold a span within a
// single line. List items never nest and keep any '**' literally,
// because the list check wins over the bold check.
func Render(content string) []Block {
	lines := strings.Split(content, "\n")
	blocks := make([]Block, 0, len(lines))
	for _, line := range lines {
		blocks = append(blocks, classify(line))
	}
	return blocks
}

func classify(line string) Block {
	switch {
	case strings.HasPrefix(line, "# "):
		return Block{Type: BlockHeading, Level: 1, Text: line[2:]}
	case strings.HasPrefix(line, "## "):
		return Block{Type: BlockHeading, Level: 2, Text: line[3:]}
	case strings.HasPrefix(line, "### "):
		return Block{Type: BlockHeading, Level: 3, Text: line[4:]}
	case strings.HasPrefix(line, "- "):
		return Block{Type: BlockListItem, Text: line[2:]}
	case strings.Contains(line, "**"):
		return Block{Type: BlockParagraph, Spans: boldSpans(line)}
	case strings.TrimSpace(line) == "":
		return Block{Type: BlockBlank}
	default:
		return Block{Type: BlockParagraph, Spans: []Span{{Text: line}}}
	}
}

// boldSpans splits on '**'; odd segments are bold. A lone unmatched
// marker therefore bolds the tail.
func boldSpans(line string) []Span {
	parts := strings.Split(line, "**")
	spans := make([]Span, 0, len(parts))
	for i, part := range parts {
		if part == "" {
			continue
		}
		spans = append(spans, Span{Text: part, Bold: i%2 == 1})
	}
	return spans
}

// RenderHTML renders blocks to a minimal HTML fragment. List items are
// emitted as bare <li> elements without a surrounding list, mirroring
// the flat line-by-line rendering of the source markup.
func RenderHTML(content string) string {
	var b strings.Builder
	for _, block := range Render(content) {
		switch block.Type {
		case BlockHeading:
			tag := [...]string{"h1", "h2", "h3"}[block.Level-1]
			b.WriteString("<" + tag + ">" + html.EscapeString(block.Text) + "</" + tag + ">\n")
		case BlockListItem:
			b.WriteString("<li>" + html.EscapeString(block.Text) + "</li>\n")
		case BlockParagraph:
			b.WriteString("<p>")
			for _, span := range block.Spans {
				if span.Bold {
					b.WriteString("<strong>" + html.EscapeString(span.Text) + "</strong>")
				} else {
					b.WriteString(html.EscapeString(span.Text))
				}
			}
			b.WriteString("</p>\n")
		case BlockBlank:
			b.WriteString("<br>\n")
		}
	}
	return b.String()
}
