package markdown

import "fmt"

// BlockKind identifies the concrete type of a Block.
type BlockKind int

const (
	KindParagraph BlockKind = iota
	KindHeading
	KindCode
	KindBlockquote
	KindAlert
	KindList
	KindTable
	KindThematicBreak
)

var blockKindNames = map[BlockKind]string{
	KindParagraph:     "paragraph",
	KindHeading:       "heading",
	KindCode:          "code",
	KindBlockquote:    "blockquote",
	KindAlert:         "alert",
	KindList:          "list",
	KindTable:         "table",
	KindThematicBreak: "thematic-break",
}

func (k BlockKind) String() string {
	if name, ok := blockKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("BlockKind(%d)", int(k))
}

// Block is a top-level structural unit of a Markdown document.
// The set of implementations is closed: Paragraph, Heading, CodeBlock,
// Blockquote, Alert, List, Table and ThematicBreak.
type Block interface {
	Kind() BlockKind
	block()
}

type Paragraph struct {
	Text string
}

type Heading struct {
	Level int // 1..6
	Text  string
}

// CodeBlock is a fenced code block. Every line of Text ends with a newline.
type CodeBlock struct {
	Language string // empty when the fence has no info string
	Text     string
}

type Blockquote struct {
	Text string
}

// AlertKind is the category marker of a GitHub-style admonition.
type AlertKind string

const (
	AlertNote      AlertKind = "NOTE"
	AlertTip       AlertKind = "TIP"
	AlertImportant AlertKind = "IMPORTANT"
	AlertWarning   AlertKind = "WARNING"
	AlertCaution   AlertKind = "CAUTION"
)

// Alert is a blockquote starting with a [!KIND] marker.
type Alert struct {
	Type AlertKind
	Text string
}

type List struct {
	Ordered bool
	Items   []ListItem
}

// ListItem is a single item of a flat list run.
type ListItem struct {
	Text    string
	Indent  int   // column of the first non-space character
	Checked *bool // non-nil for task-list items
}

// IsTask returns if the item uses the task-list syntax.
func (i ListItem) IsTask() bool {
	return i.Checked != nil
}

// Done returns if the item is a checked task.
func (i ListItem) Done() bool {
	return i.Checked != nil && *i.Checked
}

// Depth returns the relative nesting level of the i-th item,
// computed from its indent relative to the first item of the list.
func (l List) Depth(i int) int {
	if i <= 0 || i >= len(l.Items) {
		return 0
	}
	depth := (l.Items[i].Indent - l.Items[0].Indent) / 2
	if depth < 0 {
		return 0
	}
	return depth
}

// Alignment of a table column.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

func (a Alignment) String() string {
	switch a {
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	default:
		return "left"
	}
}

// Table is a pipe table. Alignments always has one entry per header.
// Rows may be ragged.
type Table struct {
	Headers    []string
	Alignments []Alignment
	Rows       [][]string
	// Delimited reports whether a separator row followed the header row.
	Delimited bool
}

type ThematicBreak struct{}

func (Paragraph) Kind() BlockKind     { return KindParagraph }
func (Heading) Kind() BlockKind       { return KindHeading }
func (CodeBlock) Kind() BlockKind     { return KindCode }
func (Blockquote) Kind() BlockKind    { return KindBlockquote }
func (Alert) Kind() BlockKind         { return KindAlert }
func (List) Kind() BlockKind          { return KindList }
func (Table) Kind() BlockKind         { return KindTable }
func (ThematicBreak) Kind() BlockKind { return KindThematicBreak }

func (Paragraph) block()     {}
func (Heading) block()       {}
func (CodeBlock) block()     {}
func (Blockquote) block()    {}
func (Alert) block()         {}
func (List) block()          {}
func (Table) block()         {}
func (ThematicBreak) block() {}

// InlineKind identifies the type of an inline node.
type InlineKind int

const (
	InlineText InlineKind = iota
	InlineBold
	InlineItalic
	InlineStrike
	InlineCode
	InlineHighlight
	InlineKbd
	InlineLink
	InlineImage
	InlineAutoLink
)

var inlineKindNames = map[InlineKind]string{
	InlineText:      "text",
	InlineBold:      "bold",
	InlineItalic:    "italic",
	InlineStrike:    "strike",
	InlineCode:      "code",
	InlineHighlight: "highlight",
	InlineKbd:       "kbd",
	InlineLink:      "link",
	InlineImage:     "image",
	InlineAutoLink:  "autolink",
}

func (k InlineKind) String() string {
	if name, ok := inlineKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("InlineKind(%d)", int(k))
}

// Inline is a span-level node. Inline nodes never nest.
//
// Text holds the payload without delimiters (the label of a link, the alt
// text of an image). URL is only set for links, images and autolinks.
type Inline struct {
	Kind InlineKind
	Text string
	URL  string
}

func (i Inline) String() string {
	switch i.Kind {
	case InlineLink, InlineImage:
		return fmt.Sprintf("%s[%s](%s)", i.Kind, i.Text, i.URL)
	case InlineAutoLink:
		return fmt.Sprintf("%s(%s)", i.Kind, i.URL)
	default:
		return fmt.Sprintf("%s(%q)", i.Kind, i.Text)
	}
}
