package svg_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/beevik/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-hexmap-atlas/pkg/hexmap"
	"go-hexmap-atlas/pkg/render"
	"go-hexmap-atlas/pkg/render/svg"
	"go-hexmap-atlas/pkg/utils"
)

func scene(t *testing.T, cells ...hexmap.Cell) render.Scene {
	t.Helper()
	return render.RenderGrid(hexmap.NewCollection(cells), render.DefaultOptions())
}

func parse(t *testing.T, s render.Scene, opts svg.Options) *etree.Element {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, svg.Encode(&buf, s, opts))

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(buf.Bytes()))
	root := doc.Root()
	require.NotNil(t, root)
	return root
}

func TestEncode_Structure(t *testing.T) {
	s := scene(t,
		hexmap.Cell{Hex: hexmap.Hex{Q: 0, R: 0}, Name: "A", Color: "red"},
		hexmap.Cell{Hex: hexmap.Hex{Q: 1, R: 0}, Name: "B", Color: "#00ff00"},
	)
	root := parse(t, s, svg.DefaultOptions())

	assert.Equal(t, "svg", root.Tag)
	assert.Equal(t, "http://www.w3.org/2000/svg", root.SelectAttrValue("xmlns", ""))
	assert.Equal(t, utils.FormatFloat(s.Width), root.SelectAttrValue("width", ""))
	assert.Equal(t, utils.FormatFloat(s.Height), root.SelectAttrValue("height", ""))
	assert.Contains(t, root.SelectAttrValue("style", ""), "border: solid thin white")

	groups := root.SelectElements("g")
	require.Len(t, groups, 2)
	assert.Equal(t, "0-0", groups[0].SelectAttrValue("data-key", ""))
	assert.Equal(t, "0-1", groups[1].SelectAttrValue("data-key", ""))
	assert.True(t, strings.HasPrefix(groups[0].SelectAttrValue("transform", ""), "translate("))

	box := groups[1].SelectElement("svg")
	require.NotNil(t, box)
	assert.Equal(t, "0 0 140 140", box.SelectAttrValue("viewBox", ""))

	polys := box.SelectElements("polygon")
	require.Len(t, polys, 2)
	assert.Equal(t, "#00ff00", polys[0].SelectAttrValue("fill", ""))
	assert.True(t, strings.HasPrefix(polys[0].SelectAttrValue("points", ""), "130,105 70,140 9,105 "))
	assert.Equal(t, polys[0].SelectAttrValue("points", ""), polys[1].SelectAttrValue("points", ""))
	assert.Equal(t, "transparent", polys[1].SelectAttrValue("fill", ""))
	assert.Equal(t, "white", polys[1].SelectAttrValue("stroke", ""))
	assert.Equal(t, "hex-outline", polys[1].SelectAttrValue("class", ""))

	text := box.SelectElement("text")
	require.NotNil(t, text)
	assert.Equal(t, "B", text.Text())
	assert.Equal(t, "70", text.SelectAttrValue("x", ""))
	assert.Equal(t, "78", text.SelectAttrValue("y", ""))
	assert.Equal(t, "16", text.SelectAttrValue("font-size", ""))
	assert.Equal(t, "middle", text.SelectAttrValue("text-anchor", ""))
}

func TestEncode_EscapesNames(t *testing.T) {
	s := scene(t, hexmap.Cell{Hex: hexmap.Hex{}, Name: `R&D <"core">`, Color: "red"})
	root := parse(t, s, svg.Options{})

	text := root.FindElement("./g/svg/text")
	require.NotNil(t, text)
	assert.Equal(t, `R&D <"core">`, text.Text())
}

func TestEncode_Inline(t *testing.T) {
	s := scene(t, hexmap.Cell{Hex: hexmap.Hex{}, Name: "A", Color: "red"})
	out, err := svg.String(s, svg.Options{})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "<svg "), "inline output has no xml declaration")
	assert.NotContains(t, out, "xmlns")
	assert.NotContains(t, out, "\n")
}

func TestEncode_EmptyScene(t *testing.T) {
	root := parse(t, render.Scene{}, svg.DefaultOptions())
	assert.Equal(t, "0", root.SelectAttrValue("width", ""))
	assert.Equal(t, "0", root.SelectAttrValue("height", ""))
	assert.Empty(t, root.SelectElements("g"))
}
