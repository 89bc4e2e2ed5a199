package config

import (
	"path/filepath"
	"regexp"
	"runtime"
	"strings"
)

// GlobPath is a gitignore-like pattern. A leading ! negates the pattern.
type GlobPath string

func (g GlobPath) Negate() bool {
	return strings.HasPrefix(string(g), "!")
}

func (g GlobPath) Expr() string {
	return strings.TrimPrefix(string(g), "!")
}

// Match tests a given path. NB: Directories must have a trailing /.
func (g GlobPath) Match(path string) bool {
	// The Go standard library doesn't support the same Git syntax (ex: ** is missing).
	// Compare https://git-scm.com/docs/gitignore with https://go.dev/src/path/filepath/match.go

	if runtime.GOOS == "windows" {
		path = filepath.ToSlash(path)
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	expr := g.Expr()
	leadingSlash := strings.HasPrefix(expr, "/")
	trailingSlash := strings.HasSuffix(expr, "/")
	// Ex: "drafts/" => `/drafts/.*?` to match "drafts/index.md" but not "mydrafts/"
	if !leadingSlash {
		expr = "/" + expr
	}
	if trailingSlash {
		expr = expr + "**/"
	}

	var partsPatterns []string
	for _, part := range strings.Split(expr, "**/") {
		var subparts []string
		for _, subpart := range strings.Split(part, "*") {
			subparts = append(subparts, regexp.QuoteMeta(subpart))
		}
		partsPatterns = append(partsPatterns, strings.Join(subparts, "[^/]*?")) // * => [^/]*
	}
	pattern := strings.Join(partsPatterns, "(?:.*/)?") // ** => any number of directories

	if leadingSlash {
		pattern = "^" + pattern
	}
	if !trailingSlash {
		pattern += "$"
	}

	return regexp.MustCompile(pattern).MatchString(path)
}

type GlobPaths []GlobPath

// Match tests if a file path satisfies the conditions.
func (g GlobPaths) Match(path string) bool {
	foundMatch := false
	for _, entry := range g {
		// Test all lines to find a match (if a line match = the path must be included)
		if entry.Match(path) {
			if entry.Negate() {
				// An exclusion matched, the file must no longer be included.
				return false
			}
			foundMatch = true
		}
	}
	return foundMatch
}
