package markdown

import (
	"regexp"
	"strings"
)

// inlineRule associates a pattern with the constructor of its node.
// Patterns must not contain capturing groups.
type inlineRule struct {
	pattern string
	build   func(match string) Inline
}

// inlineRules are listed by precedence.
// Rules are combined in a single alternation where the first alternative
// matching at a given position wins (ex: images are never read as links).
var inlineRules = []inlineRule{
	{
		pattern: "`[^`]+`",
		build: func(match string) Inline {
			return Inline{Kind: InlineCode, Text: match[1 : len(match)-1]}
		},
	},
	{
		pattern: `!\[[^\]]*\]\([^)]*\)`,
		build: func(match string) Inline {
			alt, src := splitLink(match[1:])
			return Inline{Kind: InlineImage, Text: alt, URL: src}
		},
	},
	{
		pattern: `\[[^\]]*\]\([^)]*\)`,
		build: func(match string) Inline {
			label, href := splitLink(match)
			return Inline{Kind: InlineLink, Text: label, URL: href}
		},
	},
	{
		pattern: `==[^=]+==`,
		build:   delimited(InlineHighlight, "=="),
	},
	{
		pattern: `\*\*[^*]+\*\*`,
		build:   delimited(InlineBold, "**"),
	},
	{
		// No space just inside the asterisks to leave "a * b * c" alone
		pattern: `\*[^*\s](?:[^*]*[^*\s])?\*`,
		build:   delimited(InlineItalic, "*"),
	},
	{
		pattern: `~~[^~]+~~`,
		build:   delimited(InlineStrike, "~~"),
	},
	{
		pattern: `<kbd>.+?</kbd>`,
		build: func(match string) Inline {
			return Inline{Kind: InlineKbd, Text: match[len("<kbd>") : len(match)-len("</kbd>")]}
		},
	},
	{
		pattern: `https?://\S+`,
		build: func(match string) Inline {
			return Inline{Kind: InlineAutoLink, Text: match, URL: match}
		},
	},
}

var regexInline = compileInlineRules(inlineRules)

func compileInlineRules(rules []inlineRule) *regexp.Regexp {
	alternatives := make([]string, len(rules))
	for i, rule := range rules {
		alternatives[i] = "(" + rule.pattern + ")"
	}
	return regexp.MustCompile(strings.Join(alternatives, "|"))
}

func delimited(kind InlineKind, delimiter string) func(string) Inline {
	return func(match string) Inline {
		return Inline{Kind: kind, Text: match[len(delimiter) : len(match)-len(delimiter)]}
	}
}

// splitLink extracts the two parts of "[label](url)".
func splitLink(match string) (string, string) {
	separator := strings.Index(match, "](")
	return match[1:separator], strings.TrimSpace(match[separator+2 : len(match)-1])
}

// ParseInline splits a text span into inline nodes.
//
// Text not claimed by any syntax is returned as InlineText nodes.
// Nodes never nest: the payload of a node is never tokenized again.
func ParseInline(text string) []Inline {
	var nodes []Inline

	appendText := func(s string) {
		if s != "" {
			nodes = append(nodes, Inline{Kind: InlineText, Text: s})
		}
	}

	last := 0
	for _, match := range regexInline.FindAllStringSubmatchIndex(text, -1) {
		appendText(text[last:match[0]])
		nodes = append(nodes, buildInline(text, match))
		last = match[1]
	}
	appendText(text[last:])

	return nodes
}

// buildInline finds which alternative matched and delegates to its rule.
func buildInline(text string, match []int) Inline {
	for i, rule := range inlineRules {
		start, end := match[2*(i+1)], match[2*(i+1)+1]
		if start >= 0 {
			return rule.build(text[start:end])
		}
	}
	// Unreachable: one group always participates in the match
	return Inline{Kind: InlineText, Text: text[match[0]:match[1]]}
}

// PlainText returns the text of the nodes without any markup.
func PlainText(nodes []Inline) string {
	var sb strings.Builder
	for _, node := range nodes {
		switch node.Kind {
		case InlineAutoLink:
			sb.WriteString(node.URL)
		default:
			sb.WriteString(node.Text)
		}
	}
	return sb.String()
}
