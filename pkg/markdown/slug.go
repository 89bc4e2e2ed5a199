package markdown

import (
	"regexp"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Anything except ASCII word characters and CJK unified ideographs
var regexSlugSeparators = regexp.MustCompile(`[^\w\x{4e00}-\x{9fa5}]+`)

// Slugify converts a heading text to an anchor id.
//
// Ex: "Hello, World! 你好" => "hello-world-你好"
//
// Collisions between headings of the same document are not handled here.
func Slugify(text string) string {
	// Casers are stateful and must not be shared between goroutines
	lower := cases.Lower(language.Und).String(text)
	return regexSlugSeparators.ReplaceAllString(lower, "-")
}
