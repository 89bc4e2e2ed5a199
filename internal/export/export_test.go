package export_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/julien-sobczak/mdscan/internal/export"
	"github.com/julien-sobczak/mdscan/pkg/markdown"
)

func TestFromBlocks(t *testing.T) {
	blocks := markdown.ParseBlocks("# Intro\n\n## Intro\n\n> [!TIP]\n> Use `go vet`\n\n```go\n**not bold**\n```\n\n| A | B |\n|---|:-:|\n| [x](y) |")
	nodes := export.FromBlocks(blocks, export.DefaultOptions)
	require.Len(t, nodes, 5)

	assert.Equal(t, export.Node{
		Type:   "heading",
		Level:  1,
		ID:     "intro",
		Text:   "Intro",
		Inline: []export.InlineNode{{Type: "text", Text: "Intro"}},
	}, nodes[0])
	assert.Equal(t, "intro-1", nodes[1].ID)

	assert.Equal(t, "alert", nodes[2].Type)
	assert.Equal(t, "TIP", nodes[2].Alert)
	assert.Equal(t, []export.InlineNode{
		{Type: "text", Text: "Use "},
		{Type: "code", Text: "go vet"},
	}, nodes[2].Inline)

	assert.Equal(t, export.Node{Type: "code", Language: "go", Text: "**not bold**\n"}, nodes[3])

	require.NotNil(t, nodes[4].Table)
	assert.Equal(t, []string{"left", "center"}, nodes[4].Table.Alignments)
	assert.True(t, nodes[4].Table.Delimited)
	require.Len(t, nodes[4].Table.Rows, 1)
	assert.Equal(t, []export.CellNode{
		{Text: "[x](y)", Inline: []export.InlineNode{{Type: "link", Text: "x", URL: "y"}}},
	}, nodes[4].Table.Rows[0])
}

func TestFromBlocksWithoutInline(t *testing.T) {
	nodes := export.FromBlocks(markdown.ParseBlocks("- [ ] a\n  - b"), export.Options{})
	require.Len(t, nodes, 1)
	unchecked := false
	assert.Equal(t, export.Node{
		Type: "list",
		Items: []export.ItemNode{
			{Text: "a", Checked: &unchecked},
			{Text: "b", Indent: 2, Depth: 1},
		},
	}, nodes[0])
}

func TestEncodeYAML(t *testing.T) {
	doc := export.New("a.md", "# Hi\n\n- [x] a", export.Options{})

	var buf bytes.Buffer
	require.NoError(t, export.Encode(&buf, export.FormatYAML, doc))
	assert.Equal(t, ""+
		"path: a.md\n"+
		"hash: 9385ed2a99f8c04fc8b248d05b59c963\n"+
		"blocks:\n"+
		"  - type: heading\n"+
		"    level: 1\n"+
		"    id: hi\n"+
		"    text: Hi\n"+
		"  - type: list\n"+
		"    items:\n"+
		"      - text: a\n"+
		"        checked: true\n", buf.String())

	decoded, err := export.Decode(&buf, export.FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, doc, decoded)
}

func TestEncodeJSON(t *testing.T) {
	doc := export.New("", "a < b **c**", export.DefaultOptions)

	var buf bytes.Buffer
	require.NoError(t, export.Encode(&buf, export.FormatJSON, doc))
	assert.Contains(t, buf.String(), `"text": "a < b **c**"`)
	assert.Contains(t, buf.String(), `"type": "bold"`)
	assert.NotContains(t, buf.String(), `"path"`)

	decoded, err := export.Decode(&buf, export.FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, doc, decoded)
}

func TestEncodeDump(t *testing.T) {
	doc := export.New("a.md", "# Hi", export.DefaultOptions)

	var buf bytes.Buffer
	require.NoError(t, export.Encode(&buf, export.FormatDump, doc))
	assert.Contains(t, buf.String(), `"heading"`)
	assert.Contains(t, buf.String(), `"a.md"`)

	_, err := export.Decode(&buf, export.FormatDump)
	assert.Error(t, err)
}

func TestParseFormat(t *testing.T) {
	format, err := export.ParseFormat("json")
	require.NoError(t, err)
	assert.Equal(t, export.FormatJSON, format)

	_, err = export.ParseFormat("xml")
	assert.ErrorContains(t, err, `unknown export format "xml"`)
}
