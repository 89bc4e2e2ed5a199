package render

import (
	"fmt"
	"html"
	"strings"

	"github.com/julien-sobczak/mdscan/internal/toc"
	"github.com/julien-sobczak/mdscan/pkg/markdown"
)

var alertTitles = map[markdown.AlertKind]string{
	markdown.AlertNote:      "Note",
	markdown.AlertTip:       "Tip",
	markdown.AlertImportant: "Important",
	markdown.AlertWarning:   "Warning",
	markdown.AlertCaution:   "Caution",
}

// HTMLRenderer outputs an HTML fragment.
type HTMLRenderer struct {
	opts Options
}

func NewHTMLRenderer(opts Options) *HTMLRenderer {
	return &HTMLRenderer{opts: opts}
}

func (r *HTMLRenderer) Render(doc markdown.Document) string {
	return r.RenderBlocks(r.opts.Parser.ParseBlocks(doc.String()))
}

// RenderBlocks renders already parsed blocks.
func (r *HTMLRenderer) RenderBlocks(blocks []markdown.Block) string {
	var sb strings.Builder
	slugger := toc.NewSlugger(r.opts.Anchors)

	for _, block := range blocks {
		switch b := block.(type) {
		case markdown.Paragraph:
			fmt.Fprintf(&sb, "<p>%s</p>\n", htmlInline(b.Text))
		case markdown.Heading:
			fmt.Fprintf(&sb, "<h%d id=\"%s\">%s</h%d>\n", b.Level, html.EscapeString(slugger.ID(b.Text)), htmlInline(b.Text), b.Level)
		case markdown.CodeBlock:
			if b.Language != "" {
				fmt.Fprintf(&sb, "<pre><code class=\"language-%s\">%s</code></pre>\n", html.EscapeString(b.Language), html.EscapeString(b.Text))
			} else {
				fmt.Fprintf(&sb, "<pre><code>%s</code></pre>\n", html.EscapeString(b.Text))
			}
		case markdown.Blockquote:
			fmt.Fprintf(&sb, "<blockquote>\n<p>%s</p>\n</blockquote>\n", htmlLines(b.Text))
		case markdown.Alert:
			kind := strings.ToLower(string(b.Type))
			fmt.Fprintf(&sb, "<div class=\"alert alert-%s\">\n<p class=\"alert-title\">%s</p>\n", kind, alertTitles[b.Type])
			if b.Text != "" {
				fmt.Fprintf(&sb, "<p>%s</p>\n", htmlLines(b.Text))
			}
			sb.WriteString("</div>\n")
		case markdown.List:
			if r.opts.NestLists {
				writeHTMLNestedList(&sb, b.Ordered, markdown.NestItems(b.Items))
			} else {
				writeHTMLList(&sb, b)
			}
		case markdown.Table:
			writeHTMLTable(&sb, b)
		case markdown.ThematicBreak:
			sb.WriteString("<hr>\n")
		}
	}

	return sb.String()
}

func listTag(ordered bool) string {
	if ordered {
		return "ol"
	}
	return "ul"
}

func writeHTMLList(sb *strings.Builder, list markdown.List) {
	tag := listTag(list.Ordered)
	fmt.Fprintf(sb, "<%s>\n", tag)
	for i, item := range list.Items {
		var classes []string
		if depth := list.Depth(i); depth > 0 {
			classes = append(classes, fmt.Sprintf("depth-%d", depth))
		}
		if item.IsTask() {
			classes = append(classes, "task")
		}
		if len(classes) > 0 {
			fmt.Fprintf(sb, "<li class=\"%s\">", strings.Join(classes, " "))
		} else {
			sb.WriteString("<li>")
		}
		sb.WriteString(htmlListItem(item))
		sb.WriteString("</li>\n")
	}
	fmt.Fprintf(sb, "</%s>\n", tag)
}

func writeHTMLNestedList(sb *strings.Builder, ordered bool, nodes []*markdown.ListNode) {
	tag := listTag(ordered)
	fmt.Fprintf(sb, "<%s>\n", tag)
	for _, node := range nodes {
		if node.Item.IsTask() {
			sb.WriteString("<li class=\"task\">")
		} else {
			sb.WriteString("<li>")
		}
		sb.WriteString(htmlListItem(node.Item))
		if len(node.Children) > 0 {
			sb.WriteString("\n")
			writeHTMLNestedList(sb, ordered, node.Children)
		}
		sb.WriteString("</li>\n")
	}
	fmt.Fprintf(sb, "</%s>\n", tag)
}

func htmlListItem(item markdown.ListItem) string {
	content := htmlInline(item.Text)
	if !item.IsTask() {
		return content
	}
	if item.Done() {
		return "<input type=\"checkbox\" disabled checked> " + content
	}
	return "<input type=\"checkbox\" disabled> " + content
}

func writeHTMLTable(sb *strings.Builder, table markdown.Table) {
	sb.WriteString("<table>\n<thead>\n<tr>")
	for i, header := range table.Headers {
		fmt.Fprintf(sb, "<th%s>%s</th>", htmlAlign(table, i), htmlInline(header))
	}
	sb.WriteString("</tr>\n</thead>\n")
	if len(table.Rows) > 0 {
		sb.WriteString("<tbody>\n")
		for _, row := range table.Rows {
			sb.WriteString("<tr>")
			// Short rows are padded, long rows are kept
			for i := 0; i < len(row) || i < len(table.Headers); i++ {
				cell := ""
				if i < len(row) {
					cell = row[i]
				}
				fmt.Fprintf(sb, "<td%s>%s</td>", htmlAlign(table, i), htmlInline(cell))
			}
			sb.WriteString("</tr>\n")
		}
		sb.WriteString("</tbody>\n")
	}
	sb.WriteString("</table>\n")
}

func htmlAlign(table markdown.Table, column int) string {
	if column >= len(table.Alignments) || !table.Delimited {
		return ""
	}
	switch table.Alignments[column] {
	case markdown.AlignCenter:
		return ` style="text-align:center"`
	case markdown.AlignRight:
		return ` style="text-align:right"`
	}
	return ""
}

// htmlLines renders a multi-line text, preserving line breaks.
func htmlLines(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = htmlInline(line)
	}
	return strings.Join(lines, "<br>\n")
}

func htmlInline(text string) string {
	var sb strings.Builder
	for _, node := range markdown.ParseInline(text) {
		content := html.EscapeString(node.Text)
		switch node.Kind {
		case markdown.InlineText:
			sb.WriteString(content)
		case markdown.InlineBold:
			fmt.Fprintf(&sb, "<strong>%s</strong>", content)
		case markdown.InlineItalic:
			fmt.Fprintf(&sb, "<em>%s</em>", content)
		case markdown.InlineStrike:
			fmt.Fprintf(&sb, "<del>%s</del>", content)
		case markdown.InlineCode:
			fmt.Fprintf(&sb, "<code>%s</code>", content)
		case markdown.InlineHighlight:
			fmt.Fprintf(&sb, "<mark>%s</mark>", content)
		case markdown.InlineKbd:
			fmt.Fprintf(&sb, "<kbd>%s</kbd>", content)
		case markdown.InlineLink:
			fmt.Fprintf(&sb, "<a href=\"%s\" target=\"_blank\" rel=\"noreferrer\">%s</a>", html.EscapeString(SafeURL(node.URL)), content)
		case markdown.InlineImage:
			fmt.Fprintf(&sb, "<img src=\"%s\" alt=\"%s\">", html.EscapeString(SafeURL(node.URL)), content)
		case markdown.InlineAutoLink:
			fmt.Fprintf(&sb, "<a href=\"%s\" target=\"_blank\" rel=\"noreferrer\">%s</a>", html.EscapeString(SafeURL(node.URL)), content)
		}
	}
	return sb.String()
}

// SafeURL neutralizes URLs using a scheme able to run code.
func SafeURL(url string) string {
	normalized := strings.ToLower(strings.TrimSpace(url))
	// Browsers ignore control characters and spaces inside the scheme
	normalized = strings.Map(func(r rune) rune {
		if r <= ' ' {
			return -1
		}
		return r
	}, normalized)
	for _, scheme := range []string{"javascript:", "vbscript:", "data:"} {
		if strings.HasPrefix(normalized, scheme) {
			if scheme == "data:" && strings.HasPrefix(normalized, "data:image/") && !strings.HasPrefix(normalized, "data:image/svg") {
				return url
			}
			return "#"
		}
	}
	return url
}
