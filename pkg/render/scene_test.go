package render_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-hexmap-atlas/pkg/hexmap"
	"go-hexmap-atlas/pkg/render"
)

func collection(hexes ...hexmap.Hex) *hexmap.Collection {
	cells := make([]hexmap.Cell, 0, len(hexes))
	for _, h := range hexes {
		cells = append(cells, hexmap.Cell{Hex: h, Name: h.String(), Color: "red"})
	}
	return hexmap.NewCollection(cells)
}

func TestRenderGrid_SingleCell(t *testing.T) {
	opts := render.DefaultOptions()
	g := opts.Geometry
	c := hexmap.NewCollection([]hexmap.Cell{{Hex: hexmap.Hex{Q: 0, R: 0}, Name: "A", Color: "red"}})

	s := render.RenderGrid(c, opts)
	require.Len(t, s.Items, 1)

	it := s.Items[0]
	assert.Equal(t, "0-0", it.Key)
	assert.False(t, it.Placeholder)
	assert.Equal(t, "A", it.Hexagon.Label.Text)
	assert.Equal(t, "red", it.Hexagon.Fill)
	assert.InDelta(t, s.Width/2, it.X+g.Width/2, 1e-9, "centered horizontally")
	assert.InDelta(t, s.Height/2, it.Y+g.Height/2, 1e-9, "centered vertically")
}

func TestRenderGrid_Neighbours(t *testing.T) {
	opts := render.DefaultOptions()
	s := render.RenderGrid(collection(hexmap.Hex{Q: 0, R: 0}, hexmap.Hex{Q: 1, R: 0}), opts)

	require.Len(t, s.Items, 2)
	assert.Equal(t, 2, s.Layout.Columns)
	assert.Equal(t, 1, s.Layout.Rows)
	assert.InDelta(t, opts.Geometry.Width, s.Items[1].X-s.Items[0].X, 1e-9)
	assert.InDelta(t, s.Items[0].Y, s.Items[1].Y, 1e-9)
}

func TestRenderGrid_SkipsEmptyCoordinates(t *testing.T) {
	c := collection(hexmap.Hex{Q: 0, R: 0}, hexmap.Hex{Q: 5, R: 5})

	s := render.RenderGrid(c, render.DefaultOptions())
	assert.Equal(t, 6, s.Layout.Columns)
	assert.Equal(t, 6, s.Layout.Rows)
	require.Len(t, s.Items, 2)
	assert.Equal(t, "0-0", s.Items[0].Key)
	assert.Equal(t, "5-5", s.Items[1].Key)
	assert.Len(t, s.Cells(), 2)
}

func TestRenderGrid_DrawEmptyCells(t *testing.T) {
	opts := render.DefaultOptions()
	opts.DrawEmptyCells = true

	s := render.RenderGrid(collection(hexmap.Hex{Q: 0, R: 0}, hexmap.Hex{Q: 5, R: 5}), opts)
	require.Len(t, s.Items, 36)
	assert.Len(t, s.Cells(), 2)

	placeholder := s.Items[1]
	assert.True(t, placeholder.Placeholder)
	assert.Equal(t, "0-1", placeholder.Key)
	assert.Equal(t, "blue", placeholder.Hexagon.Fill)
	assert.Equal(t, "", placeholder.Hexagon.Label.Text)
	assert.Equal(t, "empty hex", placeholder.Hexagon.Cell.Description)
}

func TestRenderGrid_FrontierPlaceholders(t *testing.T) {
	opts := render.DefaultOptions()
	opts.DrawEmptyCells = true

	// leftmost cell sits in odd column 1 on an even row
	s := render.RenderGrid(collection(hexmap.Hex{Q: 1, R: 0}, hexmap.Hex{Q: 2, R: 1}), opts)
	require.True(t, s.Layout.MinQEvenRow)

	keys := make([]string, 0, len(s.Items))
	for _, it := range s.Items {
		keys = append(keys, it.Key)
	}
	assert.Equal(t, []string{"0-1", "0-2", "1-2"}, keys, "odd frontier slot 1-1 is skipped")
}

func TestRenderGrid_Empty(t *testing.T) {
	s := render.RenderGrid(hexmap.NewCollection(nil), render.DefaultOptions())
	assert.Equal(t, render.Scene{}, s)
	assert.True(t, s.Empty())
	assert.Empty(t, s.Cells())
}

func TestRenderGrid_Deterministic(t *testing.T) {
	c := collection(hexmap.Hex{Q: -2, R: 1}, hexmap.Hex{Q: 3, R: -1}, hexmap.Hex{Q: 0, R: 0}, hexmap.Hex{Q: 1, R: 2})
	opts := render.DefaultOptions()
	assert.Equal(t, render.RenderGrid(c, opts), render.RenderGrid(c, opts))
}

func TestRenderGrid_DuplicateFirstWins(t *testing.T) {
	c := hexmap.NewCollection([]hexmap.Cell{
		{Hex: hexmap.Hex{Q: 0, R: 0}, Name: "first", Color: "red"},
		{Hex: hexmap.Hex{Q: 0, R: 0}, Name: "second", Color: "blue"},
	})
	s := render.RenderGrid(c, render.DefaultOptions())
	require.Len(t, s.Items, 1)
	assert.Equal(t, "first", s.Items[0].Hexagon.Label.Text)
}

func TestDrawHexagon(t *testing.T) {
	opts := render.DefaultOptions()
	h := render.DrawHexagon(hexmap.Cell{Name: "Sprint 1", Color: "#ff0000"}, opts)

	assert.Equal(t, "#ff0000", h.Fill)
	assert.Equal(t, 140.0, h.ViewBox)
	assert.Len(t, h.Points, 6)
	assert.Equal(t, h.Points, h.Outline.Points)
	assert.Equal(t, "transparent", h.Outline.Fill)
	assert.Equal(t, "white", h.Outline.Stroke)
	assert.Equal(t, "hex-outline", h.Outline.Class)

	assert.Equal(t, "Sprint 1", h.Label.Text)
	assert.Equal(t, 70.0, h.Label.X)
	assert.Equal(t, 78.0, h.Label.Y)
	assert.Equal(t, 16.0, h.Label.FontSize)
	assert.Equal(t, "white", h.Label.Fill)
}

func TestScene_HitTest(t *testing.T) {
	opts := render.DefaultOptions()
	g := opts.Geometry
	s := render.RenderGrid(collection(hexmap.Hex{Q: 0, R: 0}, hexmap.Hex{Q: 1, R: 0}), opts)

	for _, it := range s.Items {
		got, ok := s.HitTest(it.X+g.Width/2, it.Y+g.Height/2)
		require.True(t, ok, "center of %s", it.Key)
		assert.Equal(t, it.Key, got.Key)
	}

	_, ok := s.HitTest(0, 0)
	assert.False(t, ok, "canvas corner is padding")
	_, ok = render.Scene{}.HitTest(10, 10)
	assert.False(t, ok)
}
