package page_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-hexmap-atlas/internal/page"
	"go-hexmap-atlas/pkg/hexmap"
	"go-hexmap-atlas/pkg/render"
)

func TestRender(t *testing.T) {
	c := hexmap.NewCollection([]hexmap.Cell{
		{Hex: hexmap.Hex{Q: 0, R: 0}, Name: "A & B", Color: "red"},
		{Hex: hexmap.Hex{Q: 1, R: 0}, Name: "C", Color: "blue"},
	})
	var buf bytes.Buffer
	err := page.Render(&buf, page.Page{
		Title:   "Scrum <Dashboard>",
		Heading: "Hexagon Map!!!!",
		Scene:   render.RenderGrid(c, render.DefaultOptions()),
	})
	require.NoError(t, err)
	out := buf.String()

	assert.Contains(t, out, "<title>Scrum &lt;Dashboard&gt;</title>")
	assert.Contains(t, out, "<h2>Hexagon Map!!!!</h2>")
	assert.Contains(t, out, "<svg width=")
	assert.Equal(t, 2, strings.Count(out, "<g data-key="))
	assert.Contains(t, out, ">A &amp; B</text>")
	assert.Contains(t, out, ".hex-outline:hover { stroke-width: 2; }")
	assert.NotContains(t, out, "<?xml")
}

func TestRender_EmptyMap(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, page.Render(&buf, page.Page{Title: "T", Heading: "H"}))
	assert.Contains(t, buf.String(), `<svg width="0" height="0"`)
	assert.NotContains(t, buf.String(), "<g ")
}
