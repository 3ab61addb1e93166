// Package raster draws a render.Scene into an RGBA image and encodes it as
// PNG. Output mirrors the SVG surface: same canvas, same polygons, labels
// centered on the same baseline.
package raster

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"go-hexmap-atlas/pkg/render"
)

// ErrEmptyScene is returned for a scene with nothing to draw.
var ErrEmptyScene = errors.New("raster: scene is empty")

// fallbackColor replaces fills that cannot be parsed.
var fallbackColor = color.RGBA{128, 128, 128, 255}

// Options configures rasterization.
type Options struct {
	// Scale multiplies every canvas coordinate; 2 gives a retina image.
	Scale float64
	// Background fills the canvas first. Empty leaves it transparent.
	Background string
	// Border is the color of the one pixel canvas frame. Empty draws none.
	Border string
	// DrawOutline strokes every hexagon with its outline color, the way the
	// page shows a hovered cell.
	DrawOutline  bool
	OutlineWidth float64
	// Strict turns unparseable colors into an error instead of gray.
	Strict bool
}

// DefaultOptions returns sensible defaults for PNG rendering.
func DefaultOptions() Options {
	return Options{
		Scale:        1,
		Border:       "white",
		OutlineWidth: 2,
	}
}

// renderContext holds per-image drawing state.
type renderContext struct {
	img   *image.RGBA
	z     *vector.Rasterizer
	scale float64
	font  *opentype.Font
	faces map[float64]font.Face
	errs  []error
}

func (ctx *renderContext) color(s string) color.RGBA {
	c, err := render.ParseColor(s)
	if err != nil {
		ctx.errs = append(ctx.errs, err)
		return fallbackColor
	}
	return c
}

func (ctx *renderContext) face(size float64) (font.Face, error) {
	if f, ok := ctx.faces[size]; ok {
		return f, nil
	}
	f, err := opentype.NewFace(ctx.font, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create font face: %w", err)
	}
	ctx.faces[size] = f
	return f, nil
}

// Rasterize draws s.
func Rasterize(s render.Scene, opts Options) (*image.RGBA, error) {
	if s.Empty() {
		return nil, ErrEmptyScene
	}
	if opts.Scale <= 0 {
		opts.Scale = 1
	}

	fnt, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}

	w := int(math.Ceil(s.Width * opts.Scale))
	h := int(math.Ceil(s.Height * opts.Scale))
	ctx := &renderContext{
		img:   image.NewRGBA(image.Rect(0, 0, w, h)),
		z:     vector.NewRasterizer(w, h),
		scale: opts.Scale,
		font:  fnt,
		faces: make(map[float64]font.Face),
	}
	defer func() {
		for _, f := range ctx.faces {
			f.Close()
		}
	}()

	if opts.Background != "" {
		bg := ctx.color(opts.Background)
		draw.Draw(ctx.img, ctx.img.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
	}

	for _, it := range s.Items {
		if err := drawPlacement(ctx, it, opts); err != nil {
			return nil, err
		}
	}

	if opts.Border != "" {
		drawBorder(ctx.img, ctx.color(opts.Border))
	}

	if opts.Strict && len(ctx.errs) > 0 {
		return nil, errors.Join(ctx.errs...)
	}
	return ctx.img, nil
}

// EncodePNG rasterizes s and writes it to w.
func EncodePNG(w io.Writer, s render.Scene, opts Options) error {
	img, err := Rasterize(s, opts)
	if err != nil {
		return err
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("failed to encode png: %w", err)
	}
	return nil
}

func drawPlacement(ctx *renderContext, it render.Placement, opts Options) error {
	hex := it.Hexagon
	s, padX, padY := hex.Scale()
	toCanvas := func(p image.Point) (float32, float32) {
		x := (it.X + padX + float64(p.X)*s) * ctx.scale
		y := (it.Y + padY + float64(p.Y)*s) * ctx.scale
		return float32(x), float32(y)
	}

	fillPolygon(ctx, hex.Points, toCanvas, ctx.color(hex.Fill))

	if hex.Label.Text != "" {
		face, err := ctx.face(hex.Label.FontSize * s * ctx.scale)
		if err != nil {
			return err
		}
		x := (it.X + padX + hex.Label.X*s) * ctx.scale
		y := (it.Y + padY + hex.Label.Y*s) * ctx.scale
		drawTextCentered(ctx.img, face, x, y, hex.Label.Text, ctx.color(hex.Label.Fill))
	}

	if opts.DrawOutline && opts.OutlineWidth > 0 {
		strokePolygon(ctx, hex.Outline.Points, toCanvas, opts.OutlineWidth*ctx.scale, ctx.color(hex.Outline.Stroke))
	}
	return nil
}

func fillPolygon(ctx *renderContext, pts []image.Point, toCanvas func(image.Point) (float32, float32), c color.RGBA) {
	if len(pts) < 3 || c.A == 0 {
		return
	}
	b := ctx.img.Bounds()
	ctx.z.Reset(b.Dx(), b.Dy())
	ctx.z.DrawOp = draw.Over
	for i, p := range pts {
		x, y := toCanvas(p)
		if i == 0 {
			ctx.z.MoveTo(x, y)
		} else {
			ctx.z.LineTo(x, y)
		}
	}
	ctx.z.ClosePath()
	ctx.z.Draw(ctx.img, b, image.NewUniform(c), image.Point{})
}

// strokePolygon draws each edge as a quad of the given width.
func strokePolygon(ctx *renderContext, pts []image.Point, toCanvas func(image.Point) (float32, float32), width float64, c color.RGBA) {
	if c.A == 0 {
		return
	}
	b := ctx.img.Bounds()
	half := float32(width / 2)
	for i := range pts {
		x1, y1 := toCanvas(pts[i])
		x2, y2 := toCanvas(pts[(i+1)%len(pts)])
		dx, dy := x2-x1, y2-y1
		length := float32(math.Hypot(float64(dx), float64(dy)))
		if length == 0 {
			continue
		}
		nx, ny := -dy/length*half, dx/length*half

		ctx.z.Reset(b.Dx(), b.Dy())
		ctx.z.DrawOp = draw.Over
		ctx.z.MoveTo(x1+nx, y1+ny)
		ctx.z.LineTo(x2+nx, y2+ny)
		ctx.z.LineTo(x2-nx, y2-ny)
		ctx.z.LineTo(x1-nx, y1-ny)
		ctx.z.ClosePath()
		ctx.z.Draw(ctx.img, b, image.NewUniform(c), image.Point{})
	}
}

// drawTextCentered draws text with its baseline at y, centered on x.
func drawTextCentered(img *image.RGBA, face font.Face, x, y float64, text string, c color.Color) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c),
		Face: face,
	}
	width := d.MeasureString(text)
	d.Dot = fixed.Point26_6{
		X: fixed.Int26_6(x*64) - width/2,
		Y: fixed.Int26_6(y * 64),
	}
	d.DrawString(text)
}

func drawBorder(img *image.RGBA, c color.RGBA) {
	b := img.Bounds()
	src := image.NewUniform(c)
	for _, r := range []image.Rectangle{
		image.Rect(b.Min.X, b.Min.Y, b.Max.X, b.Min.Y+1),
		image.Rect(b.Min.X, b.Max.Y-1, b.Max.X, b.Max.Y),
		image.Rect(b.Min.X, b.Min.Y, b.Min.X+1, b.Max.Y),
		image.Rect(b.Max.X-1, b.Min.Y, b.Max.X, b.Max.Y),
	} {
		draw.Draw(img, r, src, image.Point{}, draw.Over)
	}
}
