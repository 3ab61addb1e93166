// pkg/utils/math.go
package utils

import (
	"math"
	"strconv"
)

// Abs returns the absolute value of x.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// IsFinite reports whether f is neither NaN nor an infinity.
func IsFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// FormatFloat prints f with the fewest digits that round-trip, the way
// browsers print numbers in attributes.
func FormatFloat(f float64) string {
	if f == 0 {
		return "0" // no "-0"
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
