// Package export converts parsed blocks into a serializable model.
package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/davecgh/go-spew/spew"
	"gopkg.in/yaml.v3"

	"github.com/julien-sobczak/mdscan/internal/toc"
	"github.com/julien-sobczak/mdscan/pkg/markdown"
)

// Default indentation in YAML and JSON outputs
const Indent int = 2

type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
	FormatDump Format = "dump"
)

var formats = []Format{FormatYAML, FormatJSON, FormatDump}

// ParseFormat validates a format name.
func ParseFormat(name string) (Format, error) {
	for _, format := range formats {
		if string(format) == name {
			return format, nil
		}
	}
	return "", fmt.Errorf("unknown export format %q (supported: %v)", name, formats)
}

// Options controls the content of the exported model.
type Options struct {
	Parser markdown.Parser
	// Inline adds the inline nodes of every text payload.
	Inline bool
	// Anchors controls the ids of headings.
	Anchors toc.Options
}

var DefaultOptions = Options{
	Inline:  true,
	Anchors: toc.Options{Unique: true},
}

// Document is the exported form of a Markdown document.
type Document struct {
	Path   string `yaml:"path,omitempty" json:"path,omitempty"`
	Hash   string `yaml:"hash" json:"hash"`
	Blocks []Node `yaml:"blocks" json:"blocks"`
}

// Node is the exported form of a block. Only the fields relevant for the block type are set.
type Node struct {
	Type     string       `yaml:"type" json:"type"`
	Level    int          `yaml:"level,omitempty" json:"level,omitempty"`
	ID       string       `yaml:"id,omitempty" json:"id,omitempty"`
	Language string       `yaml:"language,omitempty" json:"language,omitempty"`
	Alert    string       `yaml:"alert,omitempty" json:"alert,omitempty"`
	Ordered  bool         `yaml:"ordered,omitempty" json:"ordered,omitempty"`
	Text     string       `yaml:"text,omitempty" json:"text,omitempty"`
	Inline   []InlineNode `yaml:"inline,omitempty" json:"inline,omitempty"`
	Items    []ItemNode   `yaml:"items,omitempty" json:"items,omitempty"`
	Table    *TableNode   `yaml:"table,omitempty" json:"table,omitempty"`
}

type InlineNode struct {
	Type string `yaml:"type" json:"type"`
	Text string `yaml:"text,omitempty" json:"text,omitempty"`
	URL  string `yaml:"url,omitempty" json:"url,omitempty"`
}

type ItemNode struct {
	Text    string       `yaml:"text" json:"text"`
	Indent  int          `yaml:"indent,omitempty" json:"indent,omitempty"`
	Depth   int          `yaml:"depth,omitempty" json:"depth,omitempty"`
	Checked *bool        `yaml:"checked,omitempty" json:"checked,omitempty"`
	Inline  []InlineNode `yaml:"inline,omitempty" json:"inline,omitempty"`
}

type TableNode struct {
	Headers    []CellNode   `yaml:"headers" json:"headers"`
	Alignments []string     `yaml:"alignments" json:"alignments"`
	Rows       [][]CellNode `yaml:"rows,omitempty" json:"rows,omitempty"`
	Delimited  bool         `yaml:"delimited" json:"delimited"`
}

type CellNode struct {
	Text   string       `yaml:"text" json:"text"`
	Inline []InlineNode `yaml:"inline,omitempty" json:"inline,omitempty"`
}

// New parses a document and converts its blocks.
func New(path string, doc markdown.Document, opts Options) Document {
	return Document{
		Path:   path,
		Hash:   doc.Hash(),
		Blocks: FromBlocks(opts.Parser.ParseBlocks(doc.String()), opts),
	}
}

// FromBlocks converts blocks, preserving their order.
func FromBlocks(blocks []markdown.Block, opts Options) []Node {
	slugger := toc.NewSlugger(opts.Anchors)
	inline := func(text string) []InlineNode {
		if !opts.Inline {
			return nil
		}
		return FromInline(markdown.ParseInline(text))
	}

	nodes := make([]Node, 0, len(blocks))
	for _, block := range blocks {
		node := Node{Type: block.Kind().String()}
		switch b := block.(type) {
		case markdown.Paragraph:
			node.Text = b.Text
			node.Inline = inline(b.Text)
		case markdown.Heading:
			node.Level = b.Level
			node.ID = slugger.ID(b.Text)
			node.Text = b.Text
			node.Inline = inline(b.Text)
		case markdown.CodeBlock:
			// Code is never tokenized
			node.Language = b.Language
			node.Text = b.Text
		case markdown.Blockquote:
			node.Text = b.Text
			node.Inline = inline(b.Text)
		case markdown.Alert:
			node.Alert = string(b.Type)
			node.Text = b.Text
			node.Inline = inline(b.Text)
		case markdown.List:
			node.Ordered = b.Ordered
			for i, item := range b.Items {
				node.Items = append(node.Items, ItemNode{
					Text:    item.Text,
					Indent:  item.Indent,
					Depth:   b.Depth(i),
					Checked: item.Checked,
					Inline:  inline(item.Text),
				})
			}
		case markdown.Table:
			table := &TableNode{Delimited: b.Delimited}
			for _, header := range b.Headers {
				table.Headers = append(table.Headers, CellNode{Text: header, Inline: inline(header)})
			}
			for _, alignment := range b.Alignments {
				table.Alignments = append(table.Alignments, alignment.String())
			}
			for _, row := range b.Rows {
				cells := make([]CellNode, 0, len(row))
				for _, cell := range row {
					cells = append(cells, CellNode{Text: cell, Inline: inline(cell)})
				}
				table.Rows = append(table.Rows, cells)
			}
			node.Table = table
		}
		nodes = append(nodes, node)
	}
	return nodes
}

// FromInline converts inline nodes.
func FromInline(nodes []markdown.Inline) []InlineNode {
	var results []InlineNode
	for _, node := range nodes {
		results = append(results, InlineNode{
			Type: node.Kind.String(),
			Text: node.Text,
			URL:  node.URL,
		})
	}
	return results
}

// Encode writes a value in the given format.
func Encode(w io.Writer, format Format, v any) error {
	switch format {
	case FormatYAML:
		var buf bytes.Buffer
		encoder := yaml.NewEncoder(&buf)
		encoder.SetIndent(Indent)
		if err := encoder.Encode(v); err != nil {
			return fmt.Errorf("unable to encode YAML: %w", err)
		}
		if err := encoder.Close(); err != nil {
			return fmt.Errorf("unable to encode YAML: %w", err)
		}
		_, err := w.Write(buf.Bytes())
		return err
	case FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		// Keep "<" and "&" readable in Markdown text
		encoder.SetEscapeHTML(false)
		if err := encoder.Encode(v); err != nil {
			return fmt.Errorf("unable to encode JSON: %w", err)
		}
		return nil
	case FormatDump:
		config := spew.ConfigState{
			Indent:                  "  ",
			DisablePointerAddresses: true,
			DisableCapacities:       true,
			SortKeys:                true,
		}
		config.Fdump(w, v)
		return nil
	}
	return fmt.Errorf("unknown export format %q", format)
}

// Decode reads a document previously encoded in YAML or JSON.
func Decode(r io.Reader, format Format) (Document, error) {
	var doc Document
	switch format {
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
			return doc, fmt.Errorf("unable to decode YAML: %w", err)
		}
	case FormatJSON:
		if err := json.NewDecoder(r).Decode(&doc); err != nil {
			return doc, fmt.Errorf("unable to decode JSON: %w", err)
		}
	default:
		return doc, fmt.Errorf("format %q cannot be decoded", format)
	}
	return doc, nil
}
