package render

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/julien-sobczak/mdscan/pkg/markdown"
	"github.com/julien-sobczak/mdscan/pkg/text"
)

// How many spaces to indent headings per level
const indentHeading = 2

// How many spaces to indent code blocks
const indentCode = 4

// How many spaces to indent list items per depth
const indentList = 2

// TextRenderer outputs plain text without any Markdown syntax.
type TextRenderer struct {
	opts Options
}

func NewTextRenderer(opts Options) *TextRenderer {
	return &TextRenderer{opts: opts}
}

func (r *TextRenderer) Render(doc markdown.Document) string {
	return r.RenderBlocks(r.opts.Parser.ParseBlocks(doc.String()))
}

// RenderBlocks renders already parsed blocks, separated by an empty line.
func (r *TextRenderer) RenderBlocks(blocks []markdown.Block) string {
	var parts []string
	for _, block := range blocks {
		parts = append(parts, r.renderBlock(block))
	}
	if len(parts) == 0 {
		return ""
	}
	return strings.Join(parts, "\n\n") + "\n"
}

func (r *TextRenderer) renderBlock(block markdown.Block) string {
	switch b := block.(type) {
	case markdown.Paragraph:
		return plainLines(b.Text)
	case markdown.Heading:
		title := plainLines(b.Text)
		switch b.Level {
		case 1:
			return title + "\n" + strings.Repeat("=", runewidth.StringWidth(title))
		case 2:
			return title + "\n" + strings.Repeat("-", runewidth.StringWidth(title))
		default:
			return strings.Repeat(" ", (b.Level-2)*indentHeading) + title
		}
	case markdown.CodeBlock:
		code := strings.TrimSuffix(b.Text, "\n")
		return strings.TrimSuffix(text.PrefixLines(code, strings.Repeat(" ", indentCode)), "\n")
	case markdown.Blockquote:
		return `"` + plainLines(b.Text) + `"`
	case markdown.Alert:
		if b.Text == "" {
			return string(b.Type)
		}
		return string(b.Type) + ": " + plainLines(b.Text)
	case markdown.List:
		return r.renderList(b)
	case markdown.Table:
		grid := newTableGrid(b)
		lines := []string{joinCells(grid.header), joinCells(grid.separator())}
		for _, row := range grid.rows {
			lines = append(lines, joinCells(row))
		}
		return strings.Join(lines, "\n")
	case markdown.ThematicBreak:
		return "* * *"
	}
	return ""
}

func (r *TextRenderer) renderList(list markdown.List) string {
	var lines []string
	if r.opts.NestLists {
		writeTextNodes(&lines, list.Ordered, markdown.NestItems(list.Items), 0)
		return strings.Join(lines, "\n")
	}

	numbers := listNumbers(list)
	for i, item := range list.Items {
		lines = append(lines, textListItem(item, list.Ordered, list.Depth(i), numbers[i]))
	}
	return strings.Join(lines, "\n")
}

// listNumbers returns the number of each item of an ordered list.
// Numbering restarts when going deeper.
func listNumbers(list markdown.List) []int {
	numbers := make([]int, len(list.Items))
	counters := map[int]int{}
	for i := range list.Items {
		depth := list.Depth(i)
		for d := range counters {
			if d > depth {
				delete(counters, d)
			}
		}
		counters[depth]++
		numbers[i] = counters[depth]
	}
	return numbers
}

func writeTextNodes(lines *[]string, ordered bool, nodes []*markdown.ListNode, depth int) {
	for i, node := range nodes {
		*lines = append(*lines, textListItem(node.Item, ordered, depth, i+1))
		writeTextNodes(lines, ordered, node.Children, depth+1)
	}
}

func textListItem(item markdown.ListItem, ordered bool, depth, number int) string {
	var sb strings.Builder
	sb.WriteString(strings.Repeat(" ", depth*indentList))
	if ordered {
		fmt.Fprintf(&sb, "%d. ", number)
	} else {
		sb.WriteString("- ")
	}
	if item.IsTask() {
		if item.Done() {
			sb.WriteString("[x] ")
		} else {
			sb.WriteString("[ ] ")
		}
	}
	sb.WriteString(plainLines(item.Text))
	return sb.String()
}

// plainLines strips the inline syntax of every line.
func plainLines(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = markdown.PlainText(markdown.ParseInline(line))
	}
	return strings.Join(lines, "\n")
}

// DefaultExcerptLength is the number of runes kept by excerpts when unspecified.
const DefaultExcerptLength = 100

// Excerpt returns the first runes of the plain text of a document.
// Code blocks and tables are skipped.
func Excerpt(doc markdown.Document, maxRunes int) string {
	var plain []string
	for _, block := range doc.Blocks() {
		switch block.(type) {
		case markdown.CodeBlock, markdown.Table:
			continue
		}
		for _, span := range markdown.Spans(block) {
			plain = append(plain, plainLines(span))
		}
	}
	return text.Excerpt(strings.Join(plain, " "), maxRunes)
}
