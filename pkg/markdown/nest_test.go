package markdown_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/julien-sobczak/mdscan/pkg/markdown"
)

func TestNestItems(t *testing.T) {
	list := markdown.ParseBlocks(`- Design
  - Typography
  - Color
    - Contrast
- Engineering
    - Swift
  - UIKit`)[0].(markdown.List)

	roots := markdown.NestItems(list.Items)
	require.Len(t, roots, 2)

	design := roots[0]
	assert.Equal(t, "Design", design.Item.Text)
	require.Len(t, design.Children, 2)
	assert.Equal(t, "Typography", design.Children[0].Item.Text)
	assert.Empty(t, design.Children[0].Children)
	assert.Equal(t, "Color", design.Children[1].Item.Text)
	require.Len(t, design.Children[1].Children, 1)
	assert.Equal(t, "Contrast", design.Children[1].Children[0].Item.Text)

	// Indents don't have to be consistent
	engineering := roots[1]
	assert.Equal(t, "Engineering", engineering.Item.Text)
	require.Len(t, engineering.Children, 2)
	assert.Equal(t, "Swift", engineering.Children[0].Item.Text)
	assert.Equal(t, "UIKit", engineering.Children[1].Item.Text)
}

func TestNestItemsEmpty(t *testing.T) {
	assert.Empty(t, markdown.NestItems(nil))
}

func TestNestItemsFirstItemIndented(t *testing.T) {
	items := []markdown.ListItem{
		{Text: "a", Indent: 4},
		{Text: "b", Indent: 0},
		{Text: "c", Indent: 2},
	}
	roots := markdown.NestItems(items)
	require.Len(t, roots, 2)
	assert.Equal(t, "a", roots[0].Item.Text)
	assert.Equal(t, "b", roots[1].Item.Text)
	require.Len(t, roots[1].Children, 1)
	assert.Equal(t, "c", roots[1].Children[0].Item.Text)
}
