package render_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go-hexmap-atlas/pkg/render"
)

func TestFit(t *testing.T) {
	cases := []struct {
		name  string
		scene render.Scene
		w, h  float64
		want  render.Viewport
	}{
		{"FitsAlready", render.Scene{Width: 100, Height: 50}, 200, 100, render.Viewport{Scale: 1, OffsetX: 50, OffsetY: 25}},
		{"TooWide", render.Scene{Width: 400, Height: 100}, 200, 200, render.Viewport{Scale: 0.5, OffsetX: 0, OffsetY: 75}},
		{"TooTall", render.Scene{Width: 100, Height: 400}, 200, 200, render.Viewport{Scale: 0.5, OffsetX: 75, OffsetY: 0}},
		{"EmptyScene", render.Scene{}, 200, 200, render.Viewport{Scale: 1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, render.Fit(tc.scene, tc.w, tc.h))
		})
	}
}

func TestViewport_RoundTrip(t *testing.T) {
	v := render.Fit(render.Scene{Width: 400, Height: 100}, 200, 200)
	sx, sy := v.ToScreen(120, 40)
	assert.InDelta(t, 60.0, sx, 1e-9)
	assert.InDelta(t, 95.0, sy, 1e-9)

	x, y := v.ToCanvas(sx, sy)
	assert.InDelta(t, 120.0, x, 1e-9)
	assert.InDelta(t, 40.0, y, 1e-9)
}
