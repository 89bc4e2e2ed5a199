package render_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/julien-sobczak/mdscan/internal/render"
	"github.com/julien-sobczak/mdscan/pkg/markdown"
	"github.com/julien-sobczak/mdscan/pkg/text"
)

func TestHTMLRenderer(t *testing.T) {
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
			name:     "Heading with inline syntax",
			md:       "# Hello *World*",
			expected: "<h1 id=\"hello-world-\">Hello <em>World</em></h1>\n",
		},
		{
			name:     "Duplicate headings",
			md:       "## Setup\n\n## Setup",
			expected: "<h2 id=\"setup\">Setup</h2>\n<h2 id=\"setup-1\">Setup</h2>\n",
		},
		{
			name:     "Escaping and unsafe link",
			md:       "a < b & [x](javascript:alert(1))",
			expected: "<p>a &lt; b &amp; <a href=\"#\" target=\"_blank\" rel=\"noreferrer\">x</a>)</p>\n",
		},
		{
			name:     "Multi-line paragraph",
			md:       "first\nsecond",
			expected: "<p>first\nsecond</p>\n",
		},
		{
			name: "Code block",
			md: text.UnescapeTestContent(`”””go
fmt.Println("<hi>")
”””`),
			expected: "<pre><code class=\"language-go\">fmt.Println(&#34;&lt;hi&gt;&#34;)\n</code></pre>\n",
		},
		{
			name:     "Blockquote",
			md:       "> one\n> **two**",
			expected: "<blockquote>\n<p>one<br>\n<strong>two</strong></p>\n</blockquote>\n",
		},
		{
			name:     "Alert",
			md:       "> [!WARNING]\n> Be careful",
			expected: "<div class=\"alert alert-warning\">\n<p class=\"alert-title\">Warning</p>\n<p>Be careful</p>\n</div>\n",
		},
		{
			name:     "Empty alert",
			md:       "> [!TIP]",
			expected: "<div class=\"alert alert-tip\">\n<p class=\"alert-title\">Tip</p>\n</div>\n",
		},
		{
			name: "Task list",
			md:   "- [x] Done\n- [ ] Todo\n  - Sub",
			expected: "<ul>\n" +
				"<li class=\"task\"><input type=\"checkbox\" disabled checked> Done</li>\n" +
				"<li class=\"task\"><input type=\"checkbox\" disabled> Todo</li>\n" +
				"<li class=\"depth-1\">Sub</li>\n" +
				"</ul>\n",
		},
		{
			name:     "Ordered list",
			md:       "1. a\n2. b",
			expected: "<ol>\n<li>a</li>\n<li>b</li>\n</ol>\n",
		},
		{
			name: "Table with alignments and short row",
			md:   "| a | b |\n|:-:|--:|\n| 1 |",
			expected: "<table>\n<thead>\n" +
				"<tr><th style=\"text-align:center\">a</th><th style=\"text-align:right\">b</th></tr>\n" +
				"</thead>\n<tbody>\n" +
				"<tr><td style=\"text-align:center\">1</td><td style=\"text-align:right\"></td></tr>\n" +
				"</tbody>\n</table>\n",
		},
		{
			name:     "Table without separator",
			md:       "| a | b |",
			expected: "<table>\n<thead>\n<tr><th>a</th><th>b</th></tr>\n</thead>\n</table>\n",
		},
		{
			name:     "Thematic break",
			md:       "---",
			expected: "<hr>\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := render.NewHTMLRenderer(render.DefaultOptions)
			assert.Equal(t, tt.expected, r.Render(markdown.Document(tt.md)))
		})
	}
}

func TestHTMLRendererNestedLists(t *testing.T) {
	opts := render.DefaultOptions
	opts.NestLists = true
	r := render.NewHTMLRenderer(opts)

	actual := r.Render("- [x] Done\n- [ ] Todo\n  - Sub")
	assert.Equal(t, "<ul>\n"+
		"<li class=\"task\"><input type=\"checkbox\" disabled checked> Done</li>\n"+
		"<li class=\"task\"><input type=\"checkbox\" disabled> Todo\n"+
		"<ul>\n"+
		"<li>Sub</li>\n"+
		"</ul>\n"+
		"</li>\n"+
		"</ul>\n", actual)
}

func TestHTMLRendererInline(t *testing.T) {
	r := render.NewHTMLRenderer(render.DefaultOptions)
	actual := r.Render(markdown.Document(text.UnescapeTestContent(
		"==hl== ~~del~~ ‛<code>‛ <kbd>K</kbd> ![cat](cat.png) https://example.com")))
	assert.Equal(t, "<p>"+
		"<mark>hl</mark> <del>del</del> <code>&lt;code&gt;</code> <kbd>K</kbd> "+
		"<img src=\"cat.png\" alt=\"cat\"> "+
		"<a href=\"https://example.com\" target=\"_blank\" rel=\"noreferrer\">https://example.com</a>"+
		"</p>\n", actual)
}

func TestSafeURL(t *testing.T) {
	var tests = []struct {
		url      string
		expected string
	}{
		{"https://example.com", "https://example.com"},
		{"/relative/path", "/relative/path"},
		{"#anchor", "#anchor"},
		{"", ""},
		{"javascript:alert(1)", "#"},
		{"JavaScript:alert(1)", "#"},
		{" java\tscript:alert(1)", "#"},
		{"vbscript:msgbox", "#"},
		{"data:text/html;base64,AAAA", "#"},
		{"data:image/svg+xml;base64,AAAA", "#"},
		{"data:image/png;base64,AAAA", "data:image/png;base64,AAAA"},
	}
	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			assert.Equal(t, tt.expected, render.SafeURL(tt.url))
		})
	}
}
