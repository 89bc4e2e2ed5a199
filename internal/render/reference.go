package render

import (
	"strings"

	gomarkdown "github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"

	"github.com/julien-sobczak/mdscan/pkg/markdown"
)

// ReferenceRenderer converts the raw document using a CommonMark-like library.
// Useful to compare the output of the block scanner with an established parser.
type ReferenceRenderer struct{}

func NewReferenceRenderer() *ReferenceRenderer {
	return &ReferenceRenderer{}
}

func (r *ReferenceRenderer) Render(doc markdown.Document) string {
	// Parsers cannot be reused between documents
	p := parser.NewWithExtensions(parser.CommonExtensions | parser.AutoHeadingIDs)
	renderer := html.NewRenderer(html.RendererOptions{
		Flags: html.CommonFlags | html.HrefTargetBlank | html.NoreferrerLinks | html.Safelink,
	})
	result := strings.TrimSpace(string(gomarkdown.ToHTML([]byte(doc), p, renderer)))
	if result == "" {
		return ""
	}
	return result + "\n"
}
