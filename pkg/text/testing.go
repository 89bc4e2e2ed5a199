package text

import "strings"

// UnescapeTestContent supports content using a special character instead of backticks.
func UnescapeTestContent(content string) string {
	// Multiline strings in Golang cannot contain backticks but code spans
	// and code fences need them.

	// We allow the ” character instead as suggested here: https://stackoverflow.com/a/59900008
	//
	// Example: ”””go will become ```go
	result := strings.ReplaceAll(content, "”", "`")

	// We allow the ‛ character
	// Example: ‛fmt.Println‛ will become `fmt.Println`
	result = strings.ReplaceAll(result, "‛", "`")

	return result
}
