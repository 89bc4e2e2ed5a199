// Package toc extracts a table of contents from parsed Markdown blocks.
package toc

import (
	"fmt"
	"html"
	"strings"

	"github.com/gosimple/slug"

	"github.com/julien-sobczak/mdscan/pkg/markdown"
)

// Entry is a heading listed in the table of contents.
type Entry struct {
	Level int    `yaml:"level" json:"level"`
	Text  string `yaml:"text" json:"text"`
	ID    string `yaml:"id" json:"id"`
}

// Options controls which headings are listed and how ids are generated.
type Options struct {
	// MaxLevel ignores deeper headings. Zero means all levels.
	MaxLevel int
	// Unique appends a numeric suffix to ids already used in the document.
	Unique bool
	// ASCII transliterates ids (ex: "你好" => "ni-hao") instead of keeping CJK characters.
	ASCII bool
}

// DefaultOptions lists the first two heading levels like the blog sidebar.
var DefaultOptions = Options{
	MaxLevel: 2,
	Unique:   true,
}

// Slugger generates heading ids for a single document.
// A Slugger must not be shared between documents.
type Slugger struct {
	unique bool
	ascii  bool
	counts map[string]int  // occurrences per base id
	used   map[string]bool // ids already returned
}

// NewSlugger returns a slugger configured from the options.
func NewSlugger(opts Options) *Slugger {
	return &Slugger{
		unique: opts.Unique,
		ascii:  opts.ASCII,
		counts: make(map[string]int),
		used:   make(map[string]bool),
	}
}

// ID returns the anchor id of a heading text.
//
// With Unique, collisions get a suffix: "intro", "intro-1", "intro-2", ...
func (s *Slugger) ID(text string) string {
	var id string
	if s.ascii {
		id = slug.Make(text)
	} else {
		id = markdown.Slugify(text)
	}
	if !s.unique {
		return id
	}

	for n := s.counts[id]; ; n++ {
		candidate := id
		if n > 0 {
			candidate = fmt.Sprintf("%s-%d", id, n)
		}
		if !s.used[candidate] {
			s.used[candidate] = true
			s.counts[id] = n + 1
			return candidate
		}
	}
}

// Build returns the table of contents of the given blocks.
//
// Ids are generated for every heading, including the ones filtered out by
// MaxLevel, so that they match the ids produced when rendering the whole document.
func Build(blocks []markdown.Block, opts Options) []Entry {
	var entries []Entry
	slugger := NewSlugger(opts)
	for _, block := range blocks {
		heading, ok := block.(markdown.Heading)
		if !ok {
			continue
		}
		text := markdown.PlainText(markdown.ParseInline(heading.Text))
		id := slugger.ID(heading.Text)
		if opts.MaxLevel > 0 && heading.Level > opts.MaxLevel {
			continue
		}
		entries = append(entries, Entry{
			Level: heading.Level,
			Text:  text,
			ID:    id,
		})
	}
	return entries
}

// Indent returns the nesting level of an entry relative to the top entry.
func Indent(entries []Entry, i int) int {
	top := 0
	for _, entry := range entries {
		if top == 0 || entry.Level < top {
			top = entry.Level
		}
	}
	return entries[i].Level - top
}

// Markdown renders the entries as a nested Markdown list of anchor links.
func Markdown(entries []Entry) string {
	var sb strings.Builder
	for i, entry := range entries {
		sb.WriteString(strings.Repeat("  ", Indent(entries, i)))
		sb.WriteString(fmt.Sprintf("- [%s](#%s)\n", entry.Text, entry.ID))
	}
	return sb.String()
}

// HTML renders the entries as a navigation block.
func HTML(entries []Entry) string {
	if len(entries) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteString("<nav class=\"toc\">\n<ul>\n")
	for i, entry := range entries {
		sb.WriteString(fmt.Sprintf("<li class=\"toc-level-%d\"><a href=\"#%s\">%s</a></li>\n",
			Indent(entries, i), html.EscapeString(entry.ID), html.EscapeString(entry.Text)))
	}
	sb.WriteString("</ul>\n</nav>\n")
	return sb.String()
}
