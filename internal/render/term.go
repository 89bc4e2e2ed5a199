package render

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/termenv"

	"github.com/julien-sobczak/mdscan/pkg/markdown"
)

// IsTerminal determines whether the given file is a terminal.
func IsTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

var alertColors = map[markdown.AlertKind]lipgloss.Color{
	markdown.AlertNote:      lipgloss.Color("33"),
	markdown.AlertTip:       lipgloss.Color("35"),
	markdown.AlertImportant: lipgloss.Color("135"),
	markdown.AlertWarning:   lipgloss.Color("214"),
	markdown.AlertCaution:   lipgloss.Color("196"),
}

type termStyles struct {
	heading   lipgloss.Style
	code      lipgloss.Style
	quote     lipgloss.Style
	bold      lipgloss.Style
	italic    lipgloss.Style
	strike    lipgloss.Style
	codeSpan  lipgloss.Style
	highlight lipgloss.Style
	kbd       lipgloss.Style
	link      lipgloss.Style
	url       lipgloss.Style
	header    lipgloss.Style
	alert     func(kind markdown.AlertKind) lipgloss.Style
}

func newTermStyles(w io.Writer) termStyles {
	r := lipgloss.NewRenderer(w)
	// The caller decides whether colors are wanted
	r.SetColorProfile(termenv.ANSI256)

	return termStyles{
		heading:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("170")),
		code:      r.NewStyle().Foreground(lipgloss.Color("245")),
		quote:     r.NewStyle().Faint(true),
		bold:      r.NewStyle().Bold(true),
		italic:    r.NewStyle().Italic(true),
		strike:    r.NewStyle().Strikethrough(true),
		codeSpan:  r.NewStyle().Foreground(lipgloss.Color("203")),
		highlight: r.NewStyle().Background(lipgloss.Color("58")),
		kbd:       r.NewStyle().Reverse(true),
		link:      r.NewStyle().Underline(true).Foreground(lipgloss.Color("39")),
		url:       r.NewStyle().Faint(true),
		header:    r.NewStyle().Bold(true),
		alert: func(kind markdown.AlertKind) lipgloss.Style {
			return r.NewStyle().Bold(true).Foreground(alertColors[kind])
		},
	}
}

// TermRenderer outputs text for a terminal, using ANSI styles when colors are enabled.
type TermRenderer struct {
	opts   Options
	styles termStyles
}

func NewTermRenderer(opts Options) *TermRenderer {
	return &TermRenderer{
		opts:   opts,
		styles: newTermStyles(os.Stdout),
	}
}

func (r *TermRenderer) Render(doc markdown.Document) string {
	return r.RenderBlocks(r.opts.Parser.ParseBlocks(doc.String()))
}

// RenderBlocks renders already parsed blocks, separated by an empty line.
func (r *TermRenderer) RenderBlocks(blocks []markdown.Block) string {
	var parts []string
	for _, block := range blocks {
		parts = append(parts, r.renderBlock(block))
	}
	if len(parts) == 0 {
		return ""
	}
	return strings.Join(parts, "\n\n") + "\n"
}

func (r *TermRenderer) style(style lipgloss.Style, s string) string {
	if !r.opts.Color || s == "" {
		return s
	}
	return style.Render(s)
}

// wrap breaks lines longer than the configured width.
// ANSI sequences are ignored when measuring lines.
func (r *TermRenderer) wrap(s string) string {
	return wrapWidth(s, r.opts.Width)
}

func wrapWidth(s string, width int) string {
	if width <= 0 {
		return s
	}
	return wordwrap.String(s, width)
}

func (r *TermRenderer) renderBlock(block markdown.Block) string {
	switch b := block.(type) {
	case markdown.Paragraph:
		return r.wrap(r.inlineLines(b.Text))
	case markdown.Heading:
		return r.style(r.styles.heading, strings.Repeat("#", b.Level)+" "+plainLines(b.Text))
	case markdown.CodeBlock:
		var lines []string
		for _, line := range strings.Split(strings.TrimSuffix(b.Text, "\n"), "\n") {
			lines = append(lines, strings.Repeat(" ", indentCode)+r.style(r.styles.code, line))
		}
		return strings.Join(lines, "\n")
	case markdown.Blockquote:
		return r.quoteLines(b.Text)
	case markdown.Alert:
		title := r.style(r.styles.alert(b.Type), "│ "+string(b.Type))
		if b.Text == "" {
			return title
		}
		return title + "\n" + r.quoteLines(b.Text)
	case markdown.List:
		var lines []string
		numbers := listNumbers(b)
		for i, item := range b.Items {
			lines = append(lines, r.listItem(item, b.Ordered, b.Depth(i), numbers[i]))
		}
		return strings.Join(lines, "\n")
	case markdown.Table:
		grid := newTableGrid(b)
		header := make([]string, len(grid.header))
		for i, cell := range grid.header {
			header[i] = r.style(r.styles.header, cell)
		}
		lines := []string{joinCells(header), joinCells(grid.separator())}
		for _, row := range grid.rows {
			lines = append(lines, joinCells(row))
		}
		return strings.Join(lines, "\n")
	case markdown.ThematicBreak:
		width := r.opts.Width
		if width <= 0 {
			width = 40
		}
		return r.style(r.styles.quote, strings.Repeat("─", width))
	}
	return ""
}

func (r *TermRenderer) listItem(item markdown.ListItem, ordered bool, depth, number int) string {
	var sb strings.Builder
	sb.WriteString(strings.Repeat(" ", depth*indentList))
	if ordered {
		fmt.Fprintf(&sb, "%d. ", number)
	} else {
		sb.WriteString("• ")
	}
	if item.IsTask() {
		if item.Done() {
			sb.WriteString("☑ ")
		} else {
			sb.WriteString("☐ ")
		}
	}
	sb.WriteString(r.inline(item.Text))
	return sb.String()
}

func (r *TermRenderer) quoteLines(s string) string {
	var lines []string
	prefix := r.style(r.styles.quote, "│ ")
	for _, line := range strings.Split(s, "\n") {
		for _, wrapped := range strings.Split(wrapWidth(r.inline(line), r.opts.Width-2), "\n") {
			lines = append(lines, prefix+wrapped)
		}
	}
	return strings.Join(lines, "\n")
}

func (r *TermRenderer) inlineLines(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = r.inline(line)
	}
	return strings.Join(lines, "\n")
}

func (r *TermRenderer) inline(s string) string {
	var sb strings.Builder
	for _, node := range markdown.ParseInline(s) {
		switch node.Kind {
		case markdown.InlineText:
			sb.WriteString(node.Text)
		case markdown.InlineBold:
			sb.WriteString(r.style(r.styles.bold, node.Text))
		case markdown.InlineItalic:
			sb.WriteString(r.style(r.styles.italic, node.Text))
		case markdown.InlineStrike:
			sb.WriteString(r.style(r.styles.strike, node.Text))
		case markdown.InlineCode:
			sb.WriteString(r.style(r.styles.codeSpan, node.Text))
		case markdown.InlineHighlight:
			sb.WriteString(r.style(r.styles.highlight, node.Text))
		case markdown.InlineKbd:
			sb.WriteString(r.style(r.styles.kbd, "["+node.Text+"]"))
		case markdown.InlineLink:
			sb.WriteString(r.style(r.styles.link, node.Text))
			if node.URL != "" {
				sb.WriteString(r.style(r.styles.url, " <"+node.URL+">"))
			}
		case markdown.InlineImage:
			sb.WriteString(r.style(r.styles.url, "[image: "+node.Text+"]"))
		case markdown.InlineAutoLink:
			sb.WriteString(r.style(r.styles.link, node.URL))
		}
	}
	return sb.String()
}
