package render

import "errors"

// ErrUnknownColor indicates a color string ParseColor cannot read.
var ErrUnknownColor = errors.New("render: unknown color")
