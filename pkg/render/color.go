// pkg/render/color.go
package render

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// ParseColor understands the CSS color forms map data uses: names
// ("red", "steelblue"), "transparent", "#rgb", "#rrggbb", "#rrggbbaa" and
// "rgb(r, g, b)".
func ParseColor(s string) (color.RGBA, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	switch {
	case v == "transparent":
		return color.RGBA{}, nil
	case strings.HasPrefix(v, "#"):
		return parseHexColor(v[1:], s)
	case strings.HasPrefix(v, "rgb(") && strings.HasSuffix(v, ")"):
		return parseRGBFunc(v[4:len(v)-1], s)
	}
	if c, ok := colornames.Map[v]; ok {
		return c, nil
	}
	return color.RGBA{}, fmt.Errorf("%w: %q", ErrUnknownColor, s)
}

func parseHexColor(h, orig string) (color.RGBA, error) {
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) == 6 {
		h += "ff"
	}
	if len(h) != 8 {
		return color.RGBA{}, fmt.Errorf("%w: %q", ErrUnknownColor, orig)
	}
	n, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("%w: %q", ErrUnknownColor, orig)
	}
	return color.RGBA{R: uint8(n >> 24), G: uint8(n >> 16), B: uint8(n >> 8), A: uint8(n)}, nil
}

func parseRGBFunc(args, orig string) (color.RGBA, error) {
	parts := strings.Split(args, ",")
	if len(parts) != 3 {
		return color.RGBA{}, fmt.Errorf("%w: %q", ErrUnknownColor, orig)
	}
	var ch [3]uint8
	for i, p := range parts {
		n, err := strconv.ParseUint(strings.TrimSpace(p), 10, 8)
		if err != nil {
			return color.RGBA{}, fmt.Errorf("%w: %q", ErrUnknownColor, orig)
		}
		ch[i] = uint8(n)
	}
	return color.RGBA{R: ch[0], G: ch[1], B: ch[2], A: 255}, nil
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

// LightenColor adds 40 to each channel, the outline tint used on hover.
func LightenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(min(255, int(c.R)+40)),
		G: uint8(min(255, int(c.G)+40)),
		B: uint8(min(255, int(c.B)+40)),
		A: c.A,
	}
}
