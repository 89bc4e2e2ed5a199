package markdown

import (
	"regexp"
	"strings"
)

var regexSeparatorCell = regexp.MustCompile(`^[ \-:]+$`)

// splitTableRow returns the trimmed cells of a row written between pipes.
// The line must already be trimmed.
func splitTableRow(trimmed string) ([]string, bool) {
	if len(trimmed) < 2 || trimmed[0] != '|' || trimmed[len(trimmed)-1] != '|' {
		return nil, false
	}
	parts := strings.Split(trimmed, "|")
	cells := parts[1 : len(parts)-1]
	for i, cell := range cells {
		cells[i] = strings.TrimSpace(cell)
	}
	return cells, true
}

// isSeparatorRow returns if all cells are made of dashes, colons and spaces only.
func isSeparatorRow(cells []string) bool {
	if len(cells) == 0 {
		return false
	}
	for _, cell := range cells {
		if !regexSeparatorCell.MatchString(cell) {
			return false
		}
	}
	return true
}

// parseAlignments returns exactly one alignment per column.
// Columns without a separator cell are left-aligned.
func parseAlignments(separators []string, columns int) []Alignment {
	alignments := make([]Alignment, columns)
	for i := range alignments {
		if i < len(separators) {
			alignments[i] = parseAlignment(separators[i])
		}
	}
	return alignments
}

func parseAlignment(separator string) Alignment {
	left := strings.HasPrefix(separator, ":")
	right := strings.HasSuffix(separator, ":")
	switch {
	case left && right:
		return AlignCenter
	case right:
		return AlignRight
	default:
		return AlignLeft
	}
}
