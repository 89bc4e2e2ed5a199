package text_test

import (
	"testing"

	"github.com/julien-sobczak/mdscan/pkg/text"
	"github.com/stretchr/testify/assert"
)

func TestPrefixLines(t *testing.T) {
	tests := []struct {
		name     string
		input    string // input
		prefix   string // input
		expected string // output
	}{
		{
			name:     "Basic",
			input:    "Hello\nWorld",
			prefix:   "> ",
			expected: "> Hello\n> World\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actual := text.PrefixLines(tt.input, tt.prefix)
			assert.Equal(t, tt.expected, actual)
		})
	}
}

func TestIsBlank(t *testing.T) {
	var tests = []struct {
		name  string
		input string
		blank bool
	}{

		{
			name:  "Empty",
			input: "",
			blank: true,
		},

		{
			name:  "Only spaces",
			input: "   ",
			blank: true,
		},

		{
			name:  "Leading spaces",
			input: " Not blank",
			blank: false,
		},

		{
			name:  "EOL",
			input: "\n",
			blank: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actual := text.IsBlank(tt.input)
			assert.Equal(t, actual, tt.blank)
		})
	}
}

func TestExcerpt(t *testing.T) {
	var tests = []struct {
		name     string
		input    string
		max      int
		expected string
	}{
		{
			name:     "Short text",
			input:    "Less is more.",
			max:      100,
			expected: "Less is more.",
		},
		{
			name:     "Truncated",
			input:    "Less is more. How to catch the light?",
			max:      13,
			expected: "Less is more....",
		},
		{
			name:     "Trailing space before ellipsis",
			input:    "Less is more",
			max:      5,
			expected: "Less...",
		},
		{
			name:     "Collapsed whitespaces",
			input:    "Less\n\nis   more",
			max:      0,
			expected: "Less is more",
		},
		{
			name:     "Runes",
			input:    "少即是多。如何捕捉光影",
			max:      4,
			expected: "少即是多...",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, text.Excerpt(tt.input, tt.max))
		})
	}
}
