package markdown

import (
	"regexp"
	"strings"
)

const codeFence = "```"

var (
	regexHeading  = regexp.MustCompile(`^(#{1,6})[ \t](.*)$`)
	regexAlert    = regexp.MustCompile(`^\[!(NOTE|TIP|IMPORTANT|WARNING|CAUTION)\]`)
	regexListItem = regexp.MustCompile(`^(\s*)(-|\+|\*|\d+\.)\s`)
	regexTaskItem = regexp.MustCompile(`^\s*[-+*]\s\[( |x)\]`)
)

// Parser holds the few switches altering the block scanner behavior.
// The zero value is ready to use.
type Parser struct {
	// LegacyTableSeparator drops every table row looking like a separator row
	// (ex: "|---|---|"), even after the first one, instead of keeping it as data.
	LegacyTableSeparator bool
}

// ParseBlocks splits a Markdown document into blocks using the default parser.
func ParseBlocks(md string) []Block {
	return Parser{}.ParseBlocks(md)
}

// ParseBlocks splits a Markdown document into blocks.
//
// The function is total: any input, including the empty string, unterminated
// code fences or malformed tables, produces a list of blocks.
func (p Parser) ParseBlocks(md string) []Block {
	s := &scanner{legacyTableSeparator: p.LegacyTableSeparator}
	for _, line := range strings.Split(md, "\n") {
		s.scan(line)
	}
	s.flush()
	return s.blocks
}

// scanner is the single-pass line state machine.
// At most one block is open at any time.
type scanner struct {
	legacyTableSeparator bool

	blocks  []Block
	current openBlock
}

func (s *scanner) emit(block Block) {
	s.blocks = append(s.blocks, block)
}

// flush closes the open block, if any.
func (s *scanner) flush() {
	if s.current == nil {
		return
	}
	s.emit(s.current.finalize())
	s.current = nil
}

func (s *scanner) open(block openBlock) {
	s.flush()
	s.current = block
}

func (s *scanner) scan(line string) {
	// Fences take precedence over everything else
	if strings.HasPrefix(line, codeFence) {
		if _, ok := s.current.(*openCode); ok {
			s.flush()
			return
		}
		s.open(&openCode{language: strings.TrimSpace(line[len(codeFence):])})
		return
	}
	if code, ok := s.current.(*openCode); ok {
		code.text.WriteString(line)
		code.text.WriteByte('\n')
		return
	}

	trimmed := strings.TrimSpace(line)

	if isThematicBreak(trimmed) {
		s.flush()
		s.emit(ThematicBreak{})
		return
	}

	if match := regexHeading.FindStringSubmatch(line); match != nil {
		s.flush()
		s.emit(Heading{
			Level: len(match[1]),
			Text:  match[2],
		})
		return
	}

	if strings.HasPrefix(line, ">") {
		s.scanQuote(line)
		return
	}

	if item, ordered, ok := parseListItem(line); ok {
		if list, ok := s.current.(*openList); ok {
			// The ordered flag is fixed by the first item of the run
			list.items = append(list.items, item)
			return
		}
		s.open(&openList{ordered: ordered, items: []ListItem{item}})
		return
	}

	if cells, ok := splitTableRow(trimmed); ok {
		s.scanTableRow(line, cells)
		return
	}

	if trimmed == "" {
		s.flush()
		return
	}

	if paragraph, ok := s.current.(*openParagraph); ok {
		paragraph.lines = append(paragraph.lines, line)
		return
	}
	s.open(&openParagraph{lines: []string{line}})
}

func (s *scanner) scanQuote(line string) {
	content := strings.TrimPrefix(line[1:], " ")

	if match := regexAlert.FindStringSubmatch(content); match != nil {
		// A marker always starts a new alert, even in the middle of a quote
		remainder := strings.TrimLeft(content[len(match[0]):], " \t")
		s.open(&openQuote{
			alert: AlertKind(match[1]),
			lines: []string{remainder},
		})
		return
	}

	if quote, ok := s.current.(*openQuote); ok {
		quote.lines = append(quote.lines, content)
		return
	}
	s.open(&openQuote{lines: []string{content}})
}

func (s *scanner) scanTableRow(line string, cells []string) {
	table, ok := s.current.(*openTable)
	if !ok {
		s.open(&openTable{headers: cells})
		return
	}

	if !table.delimited {
		if isSeparatorRow(cells) {
			table.delimit(cells)
			return
		}
		// No separator after the header: close the table and start over with this line
		s.flush()
		s.scan(line)
		return
	}

	if s.legacyTableSeparator && isSeparatorRow(cells) {
		return
	}
	table.rows = append(table.rows, cells)
}

// isThematicBreak tests a trimmed line.
func isThematicBreak(trimmed string) bool {
	return trimmed == "---" || trimmed == "***" || trimmed == "___"
}

// parseListItem returns the item present on the line and whether the marker is ordered.
func parseListItem(line string) (ListItem, bool, bool) {
	match := regexListItem.FindStringSubmatch(line)
	if match == nil {
		return ListItem{}, false, false
	}

	item := ListItem{
		Indent: len(match[1]),
	}
	ordered := strings.HasSuffix(match[2], ".")
	content := line[len(match[0]):]

	if task := regexTaskItem.FindStringSubmatch(line); task != nil {
		checked := task[1] == "x"
		item.Checked = &checked
		content = line[len(task[0]):]
	}

	item.Text = strings.TrimLeft(content, " \t")
	return item, ordered, true
}

/*
 * Open blocks
 */

// openBlock is a block under construction. finalize returns the immutable block.
type openBlock interface {
	finalize() Block
}

type openParagraph struct {
	lines []string
}

func (o *openParagraph) finalize() Block {
	return Paragraph{Text: strings.Join(o.lines, "\n")}
}

type openCode struct {
	language string
	text     strings.Builder
}

func (o *openCode) finalize() Block {
	return CodeBlock{
		Language: o.language,
		Text:     o.text.String(),
	}
}

type openQuote struct {
	alert AlertKind // empty for plain blockquotes
	lines []string
}

func (o *openQuote) finalize() Block {
	if o.alert == "" {
		return Blockquote{Text: strings.Join(o.lines, "\n")}
	}
	lines := o.lines
	if len(lines) > 1 && lines[0] == "" {
		// "> [!NOTE]" alone on its line
		lines = lines[1:]
	}
	return Alert{
		Type: o.alert,
		Text: strings.Join(lines, "\n"),
	}
}

type openList struct {
	ordered bool
	items   []ListItem
}

func (o *openList) finalize() Block {
	return List{
		Ordered: o.ordered,
		Items:   o.items,
	}
}

type openTable struct {
	headers    []string
	alignments []Alignment
	rows       [][]string
	delimited  bool
}

func (o *openTable) delimit(separators []string) {
	o.alignments = parseAlignments(separators, len(o.headers))
	o.delimited = true
}

func (o *openTable) finalize() Block {
	alignments := o.alignments
	if !o.delimited {
		alignments = parseAlignments(nil, len(o.headers))
	}
	return Table{
		Headers:    o.headers,
		Alignments: alignments,
		Rows:       o.rows,
		Delimited:  o.delimited,
	}
}
