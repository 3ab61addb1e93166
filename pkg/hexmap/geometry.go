// pkg/hexmap/geometry.go
package hexmap

import (
	"fmt"
	"image"
	"math"

	"go-hexmap-atlas/pkg/utils"
)

// DefaultSize is the distance from a hex center to a corner, in pixels.
const DefaultSize = 70.0

// Geometry describes a pointy-top hexagon.
//
//	Size   - distance from center to a corner
//	Width  - distance between the left and right edges (Size·√3)
//	Height - distance between the top and bottom corners (2·Size)
type Geometry struct {
	Size   float64
	Width  float64
	Height float64
}

// NewGeometry derives width and height from size.
func NewGeometry(size float64) Geometry {
	return Geometry{
		Size:   size,
		Width:  size * Sqrt3,
		Height: 2 * size,
	}
}

// DefaultGeometry returns the geometry for DefaultSize.
func DefaultGeometry() Geometry {
	return NewGeometry(DefaultSize)
}

// Validate checks that the size is usable.
func (g Geometry) Validate() error {
	if !utils.IsFinite(g.Size) || g.Size <= 0 {
		return fmt.Errorf("%w: got %v", ErrInvalidSize, g.Size)
	}
	return nil
}

// ViewBox is the side of the square local coordinate space a single
// hexagon is drawn in.
func (g Geometry) ViewBox() float64 {
	return 2 * g.Size
}

// Points returns the six corners of a hexagon inside its ViewBox, starting at
// the lower-right corner and turning clockwise in screen coordinates.
// Coordinates are floored to whole pixels.
func (g Geometry) Points() []image.Point {
	points := make([]image.Point, 0, 6)
	for i := 0; i < 6; i++ {
		angle := vertexAngle(i)
		x := math.Floor(g.Size*math.Cos(angle) + g.Size)
		y := math.Floor(g.Size*math.Sin(angle) + g.Size)
		points = append(points, image.Pt(int(x), int(y)))
	}
	return points
}
