package viewer

import (
	"image"
	"image/color"
	"log"

	"go-hexmap-atlas/internal/assets"
	"go-hexmap-atlas/internal/config"
	"go-hexmap-atlas/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// HexRenderer draws a render.Scene into an ebiten window.
type HexRenderer struct {
	scene    render.Scene
	viewport render.Viewport
	fonts    *assets.FontManager
	fillImg  *ebiten.Image
	fillVs   []ebiten.Vertex
	fillIs   []uint16
	strokeVs []ebiten.Vertex
	strokeIs []uint16
	colors   map[string]color.RGBA
	mapImage *ebiten.Image // Поле для предрендеренной карты
}

// NewHexRenderer fits the scene into a width × height area and pre-renders it.
func NewHexRenderer(scene render.Scene, fonts *assets.FontManager, width, height int) *HexRenderer {
	fillImg := ebiten.NewImage(1, 1)
	fillImg.Fill(color.White)

	r := &HexRenderer{
		scene:    scene,
		viewport: render.Fit(scene, float64(width), float64(height)),
		fonts:    fonts,
		fillImg:  fillImg,
		fillVs:   make([]ebiten.Vertex, 0, 18),
		fillIs:   make([]uint16, 0, 18),
		strokeVs: make([]ebiten.Vertex, 0, 36),
		strokeIs: make([]uint16, 0, 36),
		colors:   make(map[string]color.RGBA),
		mapImage: ebiten.NewImage(width, height),
	}

	// Отрисовываем карту один раз при инициализации
	r.RenderMapImage()
	return r
}

// RenderMapImage создаёт предрендеренное изображение карты
func (r *HexRenderer) RenderMapImage() {
	r.mapImage.Clear()
	if r.scene.Empty() {
		return
	}

	for _, it := range r.scene.Items {
		r.drawHexFill(r.mapImage, it)
	}

	// Рамка холста, как "border: solid thin white" на странице
	x, y := r.viewport.ToScreen(0, 0)
	vector.StrokeRect(r.mapImage, float32(x), float32(y),
		float32(r.scene.Width*r.viewport.Scale), float32(r.scene.Height*r.viewport.Scale),
		1, config.BorderColor, true)
}

// Draw blits the map and outlines the hovered hexagon, if any.
func (r *HexRenderer) Draw(screen *ebiten.Image, hovered *render.Placement) {
	screen.DrawImage(r.mapImage, nil)
	if hovered != nil {
		r.drawHexOutline(screen, *hovered)
	}
}

func (r *HexRenderer) color(s string) color.RGBA {
	if c, ok := r.colors[s]; ok {
		return c
	}
	c, err := render.ParseColor(s)
	if err != nil {
		log.Printf("WARNING: %v, drawing gray", err)
		c = color.RGBA{128, 128, 128, 255}
	}
	r.colors[s] = c
	return c
}

// hexPath builds the polygon of a placement in screen coordinates.
func (r *HexRenderer) hexPath(it render.Placement) vector.Path {
	s, padX, padY := it.Hexagon.Scale()
	path := vector.Path{}
	for i, p := range it.Hexagon.Points {
		x, y := r.viewport.ToScreen(it.X+padX+float64(p.X)*s, it.Y+padY+float64(p.Y)*s)
		if i == 0 {
			path.MoveTo(float32(x), float32(y))
		} else {
			path.LineTo(float32(x), float32(y))
		}
	}
	path.Close()
	return path
}

func (r *HexRenderer) drawHexFill(target *ebiten.Image, it render.Placement) {
	path := r.hexPath(it)
	fillColor := r.color(it.Hexagon.Fill)

	r.fillVs, r.fillIs = path.AppendVerticesAndIndicesForFilling(r.fillVs[:0], r.fillIs[:0])
	paint(r.fillVs, fillColor)
	target.DrawTriangles(r.fillVs, r.fillIs, r.fillImg, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})

	label := it.Hexagon.Label
	if label.Text == "" {
		return
	}
	s, padX, padY := it.Hexagon.Scale()
	face := r.fonts.Face(label.FontSize * s * r.viewport.Scale)
	if face == nil {
		return
	}
	x, y := r.viewport.ToScreen(it.X+padX+label.X*s, it.Y+padY+label.Y*s)
	bounds := text.BoundString(face, label.Text)
	text.Draw(target, label.Text, face, int(x)-bounds.Dx()/2, int(y), r.color(label.Fill))
}

func (r *HexRenderer) drawHexOutline(target *ebiten.Image, it render.Placement) {
	path := r.hexPath(it)

	r.strokeVs, r.strokeIs = path.AppendVerticesAndIndicesForStroke(r.strokeVs[:0], r.strokeIs[:0], &vector.StrokeOptions{
		Width: float32(config.HoverStrokeWidth),
	})
	paint(r.strokeVs, r.color(it.Hexagon.Outline.Stroke))
	target.DrawTriangles(r.strokeVs, r.strokeIs, r.fillImg, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}

// HitTest returns the placement under a screen point.
func (r *HexRenderer) HitTest(p image.Point) (render.Placement, bool) {
	x, y := r.viewport.ToCanvas(float64(p.X), float64(p.Y))
	return r.scene.HitTest(x, y)
}

func paint(vs []ebiten.Vertex, c color.RGBA) {
	for i := range vs {
		vs[i].ColorR = float32(c.R) / 255
		vs[i].ColorG = float32(c.G) / 255
		vs[i].ColorB = float32(c.B) / 255
		vs[i].ColorA = float32(c.A) / 255
	}
}
