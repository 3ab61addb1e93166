// pkg/render/viewport.go
package render

// Viewport maps canvas coordinates onto a screen area.
type Viewport struct {
	Scale   float64
	OffsetX float64
	OffsetY float64
}

// Fit scales the canvas down, never up, to fit a w × h area and centers it.
func Fit(s Scene, w, h float64) Viewport {
	if s.Width <= 0 || s.Height <= 0 || w <= 0 || h <= 0 {
		return Viewport{Scale: 1}
	}
	scale := 1.0
	if sx := w / s.Width; sx < scale {
		scale = sx
	}
	if sy := h / s.Height; sy < scale {
		scale = sy
	}
	return Viewport{
		Scale:   scale,
		OffsetX: (w - s.Width*scale) / 2,
		OffsetY: (h - s.Height*scale) / 2,
	}
}

// ToScreen converts a canvas point to the screen.
func (v Viewport) ToScreen(x, y float64) (float64, float64) {
	return v.OffsetX + x*v.Scale, v.OffsetY + y*v.Scale
}

// ToCanvas converts a screen point back to the canvas.
func (v Viewport) ToCanvas(x, y float64) (float64, float64) {
	if v.Scale == 0 {
		return x, y
	}
	return (x - v.OffsetX) / v.Scale, (y - v.OffsetY) / v.Scale
}
