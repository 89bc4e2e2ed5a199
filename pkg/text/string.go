package text

import (
	"bytes"
	"strings"
	"unicode/utf8"
)

// IsBlank returns if a text is blank.
func IsBlank(text string) bool {
	return len(strings.TrimSpace(text)) == 0
}

// PrefixLines adds a prefix in front of every line. Every line ends with a newline.
func PrefixLines(text string, prefix string) string {
	var res bytes.Buffer
	for _, line := range strings.Split(text, "\n") {
		res.WriteString(prefix)
		res.WriteString(line)
		res.WriteRune('\n')
	}
	return res.String()
}

// Excerpt returns the first runes of a text, followed by "..." when truncated.
// Whitespaces are collapsed first.
func Excerpt(text string, maxRunes int) string {
	text = strings.Join(strings.Fields(text), " ")
	if maxRunes <= 0 || utf8.RuneCountInString(text) <= maxRunes {
		return text
	}
	runes := []rune(text)
	return strings.TrimRight(string(runes[:maxRunes]), " ") + "..."
}
