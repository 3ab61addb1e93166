// pkg/render/hittest.go
package render

import "image"

// HitTest returns the hexagon under canvas point (px, py). Later placements
// are drawn on top, so they are checked first.
func (s Scene) HitTest(px, py float64) (Placement, bool) {
	for i := len(s.Items) - 1; i >= 0; i-- {
		it := s.Items[i]
		scale, padX, padY := it.Hexagon.Scale()
		if scale == 0 {
			continue
		}
		lx := (px - it.X - padX) / scale
		ly := (py - it.Y - padY) / scale
		if insidePolygon(it.Hexagon.Points, lx, ly) {
			return it, true
		}
	}
	return Placement{}, false
}

// insidePolygon is the even-odd ray casting test.
func insidePolygon(pts []image.Point, x, y float64) bool {
	inside := false
	for i, j := 0, len(pts)-1; i < len(pts); j, i = i, i+1 {
		xi, yi := float64(pts[i].X), float64(pts[i].Y)
		xj, yj := float64(pts[j].X), float64(pts[j].Y)
		if (yi > y) != (yj > y) && x < (xj-xi)*(y-yi)/(yj-yi)+xi {
			inside = !inside
		}
	}
	return inside
}
