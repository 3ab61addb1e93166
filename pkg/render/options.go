// pkg/render/options.go
package render

import "go-hexmap-atlas/pkg/hexmap"

// Options configures scene construction.
type Options struct {
	Geometry hexmap.Geometry

	FontSize      float64
	LabelFill     string
	OutlineStroke string
	OutlineClass  string

	// DrawEmptyCells fills coordinates inside the bounding rectangle that no
	// cell occupies with placeholder hexagons. Off by default: empty
	// coordinates are skipped.
	DrawEmptyCells   bool
	EmptyColor       string
	EmptyDescription string
}

// DefaultOptions returns the options the page is drawn with.
func DefaultOptions() Options {
	return Options{
		Geometry:         hexmap.DefaultGeometry(),
		FontSize:         16,
		LabelFill:        "white",
		OutlineStroke:    "white",
		OutlineClass:     "hex-outline",
		DrawEmptyCells:   false,
		EmptyColor:       "blue",
		EmptyDescription: "empty hex",
	}
}
