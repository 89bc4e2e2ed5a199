// Package render converts parsed Markdown blocks into output formats.
//
// The parser only classifies text. Escaping and URL filtering happen here.
package render

import (
	"fmt"

	"golang.org/x/exp/slices"

	"github.com/julien-sobczak/mdscan/internal/toc"
	"github.com/julien-sobczak/mdscan/pkg/markdown"
)

// Renderer renders a whole Markdown document.
type Renderer interface {
	Render(doc markdown.Document) string
}

// Options are shared by all renderers.
type Options struct {
	// Parser used to split the document into blocks.
	Parser markdown.Parser
	// Anchors controls heading ids.
	Anchors toc.Options
	// NestLists renders indented list items as nested lists.
	NestLists bool
	// Color enables ANSI styles (terminal renderer only).
	Color bool
	// Width wraps paragraphs (terminal renderer only). Zero disables wrapping.
	Width int
}

// DefaultOptions are used when no configuration is present.
var DefaultOptions = Options{
	Anchors: toc.Options{Unique: true},
}

var factories = map[string]func(Options) Renderer{
	"html":      func(opts Options) Renderer { return NewHTMLRenderer(opts) },
	"text":      func(opts Options) Renderer { return NewTextRenderer(opts) },
	"term":      func(opts Options) Renderer { return NewTermRenderer(opts) },
	"reference": func(opts Options) Renderer { return NewReferenceRenderer() },
}

// New returns the renderer registered under the given format name.
func New(format string, opts Options) (Renderer, error) {
	factory, ok := factories[format]
	if !ok {
		return nil, fmt.Errorf("unknown format %q (supported: %v)", format, Formats())
	}
	return factory(opts), nil
}

// Formats lists the supported format names.
func Formats() []string {
	var names []string
	for name := range factories {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
