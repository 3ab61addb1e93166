// pkg/hexmap/utils.go
package hexmap

import "math"

// Константа √3 для вычислений
const Sqrt3 = 1.7320508075688772935274463415059

// vertexAngle is the angle of the i-th corner of a pointy-top hexagon,
// rotated 30° off the flat-top orientation.
//
// π is divided as a float64 value, not as an untyped constant: the rounded
// angles decide which pixel the floored corners land on.
func vertexAngle(i int) float64 {
	pi := math.Pi
	return pi/3*float64(i) + pi/6
}
