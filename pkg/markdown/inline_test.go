package markdown_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/julien-sobczak/mdscan/pkg/markdown"
	"github.com/julien-sobczak/mdscan/pkg/text"
)

func TestParseInline(t *testing.T) {
	var tests = []struct {
		name     string
		input    string
		expected []markdown.Inline
	}{
		{
			name:     "Empty",
			input:    "",
			expected: nil,
		},
		{
			name:  "Raw text",
			input: "no special Markdown character",
			expected: []markdown.Inline{
				{Kind: markdown.InlineText, Text: "no special Markdown character"},
			},
		},
		{
			name:  "Image",
			input: "![alt](http://x/y.png)",
			expected: []markdown.Inline{
				{Kind: markdown.InlineImage, Text: "alt", URL: "http://x/y.png"},
			},
		},
		{
			name:  "Link",
			input: "Read [the docs](https://example.com/docs) first",
			expected: []markdown.Inline{
				{Kind: markdown.InlineText, Text: "Read "},
				{Kind: markdown.InlineLink, Text: "the docs", URL: "https://example.com/docs"},
				{Kind: markdown.InlineText, Text: " first"},
			},
		},
		{
			name:  "Link with empty target",
			input: "[nowhere]()",
			expected: []markdown.Inline{
				{Kind: markdown.InlineLink, Text: "nowhere", URL: ""},
			},
		},
		{
			name:  "Code span",
			input: "Call ‛fmt.Println‛ now",
			expected: []markdown.Inline{
				{Kind: markdown.InlineText, Text: "Call "},
				{Kind: markdown.InlineCode, Text: "fmt.Println"},
				{Kind: markdown.InlineText, Text: " now"},
			},
		},
		{
			name:  "Code span wins over emphasis",
			input: "‛**not bold**‛",
			expected: []markdown.Inline{
				{Kind: markdown.InlineCode, Text: "**not bold**"},
			},
		},
		{
			name:  "Code span hides link",
			input: "‛[a](b)‛",
			expected: []markdown.Inline{
				{Kind: markdown.InlineCode, Text: "[a](b)"},
			},
		},
		{
			name:  "Highlight",
			input: "==important==",
			expected: []markdown.Inline{
				{Kind: markdown.InlineHighlight, Text: "important"},
			},
		},
		{
			name:  "Bold and italic",
			input: "I just love **bold text** and *italics*.",
			expected: []markdown.Inline{
				{Kind: markdown.InlineText, Text: "I just love "},
				{Kind: markdown.InlineBold, Text: "bold text"},
				{Kind: markdown.InlineText, Text: " and "},
				{Kind: markdown.InlineItalic, Text: "italics"},
				{Kind: markdown.InlineText, Text: "."},
			},
		},
		{
			name:  "Multiplication is not italic",
			input: "2 * 3 * 4",
			expected: []markdown.Inline{
				{Kind: markdown.InlineText, Text: "2 * 3 * 4"},
			},
		},
		{
			name:  "Single character italic",
			input: "*a*",
			expected: []markdown.Inline{
				{Kind: markdown.InlineItalic, Text: "a"},
			},
		},
		{
			name:  "Strike",
			input: "~~gone~~ here",
			expected: []markdown.Inline{
				{Kind: markdown.InlineStrike, Text: "gone"},
				{Kind: markdown.InlineText, Text: " here"},
			},
		},
		{
			name:  "Keyboard key",
			input: "Press <kbd>Ctrl</kbd>+<kbd>C</kbd>",
			expected: []markdown.Inline{
				{Kind: markdown.InlineText, Text: "Press "},
				{Kind: markdown.InlineKbd, Text: "Ctrl"},
				{Kind: markdown.InlineText, Text: "+"},
				{Kind: markdown.InlineKbd, Text: "C"},
			},
		},
		{
			name:  "Autolink",
			input: "See https://example.com/a?b=c for details",
			expected: []markdown.Inline{
				{Kind: markdown.InlineText, Text: "See "},
				{Kind: markdown.InlineAutoLink, Text: "https://example.com/a?b=c", URL: "https://example.com/a?b=c"},
				{Kind: markdown.InlineText, Text: " for details"},
			},
		},
		{
			name:  "Link wins over autolink",
			input: "[site](https://example.com)",
			expected: []markdown.Inline{
				{Kind: markdown.InlineLink, Text: "site", URL: "https://example.com"},
			},
		},
		{
			name:  "Image inside sentence",
			input: "Look: ![a cat](cat.png)!",
			expected: []markdown.Inline{
				{Kind: markdown.InlineText, Text: "Look: "},
				{Kind: markdown.InlineImage, Text: "a cat", URL: "cat.png"},
				{Kind: markdown.InlineText, Text: "!"},
			},
		},
		{
			name:  "Unclosed delimiters",
			input: "**open and `tick and [bracket",
			expected: []markdown.Inline{
				{Kind: markdown.InlineText, Text: "**open and `tick and [bracket"},
			},
		},
		{
			name:  "CJK text",
			input: "少即是多 **纯粹**",
			expected: []markdown.Inline{
				{Kind: markdown.InlineText, Text: "少即是多 "},
				{Kind: markdown.InlineBold, Text: "纯粹"},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actual := markdown.ParseInline(text.UnescapeTestContent(tt.input))
			assert.Equal(t, tt.expected, actual)
		})
	}
}

func TestPlainText(t *testing.T) {
	nodes := markdown.ParseInline("**Bold**, [link](x) and https://example.com")
	assert.Equal(t, "Bold, link and https://example.com", markdown.PlainText(nodes))
}

func TestInlineString(t *testing.T) {
	assert.Equal(t, `bold("x")`, markdown.Inline{Kind: markdown.InlineBold, Text: "x"}.String())
	assert.Equal(t, "link[a](b)", markdown.Inline{Kind: markdown.InlineLink, Text: "a", URL: "b"}.String())
	assert.Equal(t, "autolink(http://a)", markdown.Inline{Kind: markdown.InlineAutoLink, Text: "http://a", URL: "http://a"}.String())
}
