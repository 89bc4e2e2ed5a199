package render

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/julien-sobczak/mdscan/pkg/markdown"
)

// tableGrid holds the plain text of every cell, padded to the column width.
// Ragged rows are padded with empty cells.
type tableGrid struct {
	header []string
	rows   [][]string
	widths []int
}

func newTableGrid(table markdown.Table) tableGrid {
	columns := len(table.Headers)
	for _, row := range table.Rows {
		if len(row) > columns {
			columns = len(row)
		}
	}

	plain := func(cells []string) []string {
		result := make([]string, columns)
		for i := range result {
			if i < len(cells) {
				result[i] = markdown.PlainText(markdown.ParseInline(cells[i]))
			}
		}
		return result
	}

	grid := tableGrid{
		header: plain(table.Headers),
		widths: make([]int, columns),
	}
	for _, row := range table.Rows {
		grid.rows = append(grid.rows, plain(row))
	}

	for _, cells := range append([][]string{grid.header}, grid.rows...) {
		for i, cell := range cells {
			if width := runewidth.StringWidth(cell); width > grid.widths[i] {
				grid.widths[i] = width
			}
		}
	}
	// Room for the separator dashes
	for i, width := range grid.widths {
		if width < 3 {
			grid.widths[i] = 3
		}
	}

	alignOf := func(column int) markdown.Alignment {
		if column < len(table.Alignments) {
			return table.Alignments[column]
		}
		return markdown.AlignLeft
	}
	for i := range grid.header {
		grid.header[i] = padCell(grid.header[i], grid.widths[i], alignOf(i))
	}
	for _, row := range grid.rows {
		for i := range row {
			row[i] = padCell(row[i], grid.widths[i], alignOf(i))
		}
	}
	return grid
}

func padCell(s string, width int, align markdown.Alignment) string {
	switch align {
	case markdown.AlignRight:
		return runewidth.FillLeft(s, width)
	case markdown.AlignCenter:
		left := (width - runewidth.StringWidth(s)) / 2
		return strings.Repeat(" ", left) + runewidth.FillRight(s, width-left)
	default:
		return runewidth.FillRight(s, width)
	}
}

func (g tableGrid) separator() []string {
	cells := make([]string, len(g.widths))
	for i, width := range g.widths {
		cells[i] = strings.Repeat("-", width)
	}
	return cells
}

func joinCells(cells []string) string {
	return "| " + strings.Join(cells, " | ") + " |"
}
