package render_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/julien-sobczak/mdscan/internal/render"
	"github.com/julien-sobczak/mdscan/internal/testutil"
	"github.com/julien-sobczak/mdscan/pkg/markdown"
)

func TestTextRenderer(t *testing.T) {
	doc := markdown.Document(testutil.GoldenFileNamed(t, "sample.md"))
	r := render.NewTextRenderer(render.DefaultOptions)
	testutil.AssertGolden(t, "sample.txt", r.Render(doc))
}

func TestTextRendererBlocks(t *testing.T) {
	var tests = []struct {
		name     string
		md       string
		expected string
	}{
		{
			name:     "Empty",
			md:       "",
			expected: "",
		},
		{
			name:     "Second-level heading",
			md:       "## Über",
			expected: "Über\n----\n",
		},
		{
			name:     "Links are replaced by their text",
			md:       "See [the docs](https://example.com) and ![logo](logo.png).",
			expected: "See the docs and logo.\n",
		},
		{
			name:     "Task list",
			md:       "- [x] Done\n- [ ] Todo",
			expected: "- [x] Done\n- [ ] Todo\n",
		},
		{
			name:     "Ordered list numbering restarts per depth",
			md:       "1. a\n   1. b\n   2. c\n2. d\n   3. e",
			expected: "1. a\n  1. b\n  2. c\n2. d\n  1. e\n",
		},
		{
			name:     "Empty alert",
			md:       "> [!CAUTION]",
			expected: "CAUTION\n",
		},
		{
			name:     "Ragged table",
			md:       "| a | b |\n| --- | :-: |\n| 1 |\n| 1 | 2 | 3 |",
			expected: "| a   |  b  |     |\n| --- | --- | --- |\n| 1   |     |     |\n| 1   |  2  | 3   |\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := render.NewTextRenderer(render.DefaultOptions)
			assert.Equal(t, tt.expected, r.Render(markdown.Document(tt.md)))
		})
	}
}

func TestTextRendererNestedLists(t *testing.T) {
	opts := render.DefaultOptions
	opts.NestLists = true
	r := render.NewTextRenderer(opts)

	// Irregular indents are normalized
	actual := r.Render("- a\n     - b\n - c")
	assert.Equal(t, "- a\n  - b\n  - c\n", actual)
}

func TestExcerpt(t *testing.T) {
	doc := markdown.Document("# Title\n\nSome **bold** text.\n\n```\ncode\n```\n\n- [x] done")
	assert.Equal(t, "Title Some bold text. done", render.Excerpt(doc, render.DefaultExcerptLength))
	assert.Equal(t, "Title So...", render.Excerpt(doc, 8))
	assert.Equal(t, "", render.Excerpt(markdown.EmptyDocument, 10))
}
