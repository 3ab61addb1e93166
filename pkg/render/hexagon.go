// pkg/render/hexagon.go
package render

import (
	"image"

	"go-hexmap-atlas/pkg/hexmap"
)

// Hexagon is one drawn cell in its own square view box of side ViewBox,
// displayed in a Width × Height box.
type Hexagon struct {
	Cell    hexmap.Cell
	Width   float64
	Height  float64
	ViewBox float64
	Points  []image.Point
	Fill    string
	Label   Label
	Outline Outline
}

// Label is text centered on the hexagon.
type Label struct {
	Text     string
	X, Y     float64
	FontSize float64
	Fill     string
}

// Outline is a transparent copy of the polygon used only for the hover stroke.
type Outline struct {
	Points []image.Point
	Fill   string
	Stroke string
	Class  string
}

// DrawHexagon builds the shapes for a single cell. Name and color are used
// verbatim.
func DrawHexagon(cell hexmap.Cell, opts Options) Hexagon {
	g := opts.Geometry
	points := g.Points()

	return Hexagon{
		Cell:    cell,
		Width:   g.Width,
		Height:  g.Height,
		ViewBox: g.ViewBox(),
		Points:  points,
		Fill:    cell.Color,
		Label: Label{
			Text:     cell.Name,
			X:        g.Size,
			Y:        g.Size + opts.FontSize/2,
			FontSize: opts.FontSize,
			Fill:     opts.LabelFill,
		},
		Outline: Outline{
			Points: points,
			Fill:   "transparent",
			Stroke: opts.OutlineStroke,
			Class:  opts.OutlineClass,
		},
	}
}

// Scale returns the uniform factor and the padding that fit the view box
// into the display box, centered, keeping the aspect ratio.
func (h Hexagon) Scale() (s, padX, padY float64) {
	if h.ViewBox <= 0 {
		return 0, 0, 0
	}
	s = h.Width / h.ViewBox
	if sy := h.Height / h.ViewBox; sy < s {
		s = sy
	}
	padX = (h.Width - h.ViewBox*s) / 2
	padY = (h.Height - h.ViewBox*s) / 2
	return s, padX, padY
}
