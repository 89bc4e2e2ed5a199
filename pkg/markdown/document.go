package markdown

import (
	"crypto/md5"
	"fmt"
	"strings"

	"github.com/julien-sobczak/mdscan/pkg/text"
)

// Document represents a Markdown document (can be a whole file, or just a snippet)
type Document string

// Null object
var EmptyDocument = Document("")

func (m Document) IsBlank() bool {
	return text.IsBlank(string(m))
}

// Hash returns a MD5 hash of the raw content (acceptable as not used for security reasons).
func (m Document) Hash() string {
	return fmt.Sprintf("%x", md5.Sum([]byte(m)))
}

func (m Document) String() string {
	return string(m)
}

// TrimSpace removes spaces at the start and end of a markdown document.
func (m Document) TrimSpace() Document {
	return Document(strings.TrimSpace(string(m)))
}

// Blocks parses the document with the default parser.
func (m Document) Blocks() []Block {
	return ParseBlocks(string(m))
}

// Headings returns the headings in document order.
func (m Document) Headings() []Heading {
	var results []Heading
	for _, block := range m.Blocks() {
		if heading, ok := block.(Heading); ok {
			results = append(results, heading)
		}
	}
	return results
}

// CodeBlocks returns the fenced code blocks in document order.
func (m Document) CodeBlocks() []CodeBlock {
	var results []CodeBlock
	for _, block := range m.Blocks() {
		if code, ok := block.(CodeBlock); ok {
			results = append(results, code)
		}
	}
	return results
}

// Links returns the links, images and autolinks of the document.
// Code blocks are ignored.
func (m Document) Links() []Inline {
	var results []Inline
	for _, block := range m.Blocks() {
		for _, span := range Spans(block) {
			for _, node := range ParseInline(span) {
				switch node.Kind {
				case InlineLink, InlineImage, InlineAutoLink:
					results = append(results, node)
				}
			}
		}
	}
	return results
}

// Spans returns the text fragments of a block subject to inline tokenization:
// the text of paragraphs, headings and quotes, each list item and each table cell.
// Code blocks and thematic breaks have none.
func Spans(block Block) []string {
	switch b := block.(type) {
	case Paragraph:
		return []string{b.Text}
	case Heading:
		return []string{b.Text}
	case Blockquote:
		return []string{b.Text}
	case Alert:
		return []string{b.Text}
	case List:
		spans := make([]string, 0, len(b.Items))
		for _, item := range b.Items {
			spans = append(spans, item.Text)
		}
		return spans
	case Table:
		spans := append([]string{}, b.Headers...)
		for _, row := range b.Rows {
			spans = append(spans, row...)
		}
		return spans
	}
	return nil
}
