// pkg/render/scene.go
package render

import (
	"strconv"

	"go-hexmap-atlas/pkg/hexmap"
)

// Scene is the full drawing of a map: a canvas and the hexagons placed on it.
// It holds no reference to any drawing surface.
type Scene struct {
	Width  float64
	Height float64
	Layout hexmap.Layout
	Items  []Placement
}

// Placement is a hexagon translated to (X, Y) on the canvas.
type Placement struct {
	Key         string
	Row, Col    int
	X, Y        float64
	Hexagon     Hexagon
	Placeholder bool
}

// Key identifies a grid slot as "row-col".
func Key(row, col int) string {
	return strconv.Itoa(row) + "-" + strconv.Itoa(col)
}

// RenderGrid lays the collection out and places one hexagon per occupied
// coordinate, scanning the bounding rectangle row by row.
func RenderGrid(c *hexmap.Collection, opts Options) Scene {
	g := opts.Geometry
	l := hexmap.ComputeLayout(c, g)
	if l.Empty() {
		return Scene{}
	}

	scene := Scene{
		Width:  l.GridWidth,
		Height: l.GridHeight,
		Layout: l,
		Items:  make([]Placement, 0, c.Len()),
	}

	for row := l.MinR; row < l.MinR+l.Rows; row++ {
		for col := l.MinQ; col < l.MinQ+l.Columns; col++ {
			h := hexmap.Hex{Q: col, R: row}
			cell, ok := c.Lookup(h)
			if !ok {
				if !opts.DrawEmptyCells || skipFrontier(l, col) {
					continue
				}
				cell = hexmap.Cell{Hex: h, Description: opts.EmptyDescription, Color: opts.EmptyColor}
			}

			x, y := l.Position(g, col, row)
			scene.Items = append(scene.Items, Placement{
				Key:         Key(row, col),
				Row:         row,
				Col:         col,
				X:           x,
				Y:           y,
				Hexagon:     DrawHexagon(cell, opts),
				Placeholder: !ok,
			})
		}
	}
	return scene
}

// skipFrontier drops placeholders in odd columns on the left edge when the
// leftmost cell is on an even row; the offset rows leave no room there.
func skipFrontier(l hexmap.Layout, col int) bool {
	return col == l.MinQ && col%2 != 0 && l.MinQEvenRow
}

// Cells returns the real cells of the scene in draw order.
func (s Scene) Cells() []hexmap.Cell {
	out := make([]hexmap.Cell, 0, len(s.Items))
	for _, it := range s.Items {
		if !it.Placeholder {
			out = append(out, it.Hexagon.Cell)
		}
	}
	return out
}

// Empty reports whether there is nothing to draw.
func (s Scene) Empty() bool {
	return len(s.Items) == 0
}
