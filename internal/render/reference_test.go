package render_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/julien-sobczak/mdscan/internal/render"
)

func TestReferenceRenderer(t *testing.T) {
	r := render.NewReferenceRenderer()

	assert.Equal(t, "", r.Render(""))

	actual := r.Render("# Hello\n\nVisit [Go](https://go.dev).\n\n| a | b |\n|---|---|\n| 1 | 2 |\n")
	assert.Contains(t, actual, `<h1 id="hello">Hello</h1>`)
	assert.Contains(t, actual, `target="_blank"`)
	assert.Contains(t, actual, "<table>")
}
