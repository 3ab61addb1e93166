// internal/ui/info_panel.go
package ui

import (
	"image"
	"image/color"
	"math"

	"go-hexmap-atlas/internal/config"
	"go-hexmap-atlas/internal/event"
	"go-hexmap-atlas/pkg/hexmap"
	"go-hexmap-atlas/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const (
	animationSpeed = 10.0
	lineHeight     = 22
	swatchSize     = 24
)

// InfoPanel slides up from the bottom of the window and shows the name and
// description of the hovered cell.
type InfoPanel struct {
	IsVisible     bool
	Target        hexmap.Cell
	fontFace      font.Face
	titleFontFace font.Face
	currentY      float64
	targetY       float64
	width         int
	height        int
}

// NewInfoPanel creates a new information panel.
func NewInfoPanel(font, titleFont font.Face, width, height int) *InfoPanel {
	return &InfoPanel{
		fontFace:      font,
		titleFontFace: titleFont,
		currentY:      float64(height),
		targetY:       float64(height),
		width:         width,
		height:        height,
	}
}

// SetTarget shows cell in the panel.
func (p *InfoPanel) SetTarget(cell hexmap.Cell) {
	p.Target = cell
	p.IsVisible = true
	p.targetY = float64(p.height - config.InfoPanelHeight)
}

// Hide starts sliding the panel out.
func (p *InfoPanel) Hide() {
	p.targetY = float64(p.height)
}

// OnEvent follows hover events from the map.
func (p *InfoPanel) OnEvent(e event.Event) {
	switch e.Type {
	case event.CellHovered:
		if cell, ok := e.Data.(hexmap.Cell); ok {
			p.SetTarget(cell)
		}
	case event.CellLeft:
		p.Hide()
	}
}

func (p *InfoPanel) Update() {
	// Анимация панели
	if p.currentY != p.targetY {
		diff := p.targetY - p.currentY
		if math.Abs(diff) < animationSpeed {
			p.currentY = p.targetY
		} else if diff > 0 {
			p.currentY += animationSpeed
		} else {
			p.currentY -= animationSpeed
		}

		if p.currentY >= float64(p.height) {
			p.IsVisible = false
			p.Target = hexmap.Cell{}
		}
	}
}

func (p *InfoPanel) Draw(screen *ebiten.Image) {
	if !p.IsVisible && p.currentY >= float64(p.height) {
		return
	}

	m := config.InfoPanelMargin
	panelRect := image.Rect(
		m,
		int(p.currentY)+m,
		p.width-m,
		int(p.currentY)+config.InfoPanelHeight-m,
	)

	fill, err := render.ParseColor(p.Target.Color)
	if err != nil {
		fill = config.PanelColor
	}

	vector.DrawFilledRect(screen, float32(panelRect.Min.X), float32(panelRect.Min.Y), float32(panelRect.Dx()), float32(panelRect.Dy()), config.PanelColor, true)
	vector.StrokeRect(screen, float32(panelRect.Min.X), float32(panelRect.Min.Y), float32(panelRect.Dx()), float32(panelRect.Dy()), 2, render.DarkenColor(fill), true)

	// Образец цвета гекса
	sx := float32(panelRect.Min.X + 15)
	sy := float32(panelRect.Min.Y + 15)
	vector.DrawFilledRect(screen, sx, sy, swatchSize, swatchSize, fill, true)
	vector.StrokeRect(screen, sx, sy, swatchSize, swatchSize, 1, render.LightenColor(fill), true)

	x := panelRect.Min.X + 15 + swatchSize + 12
	y := panelRect.Min.Y + 15
	p.drawLine(screen, p.titleFontFace, p.title(), x, y+swatchSize-4, config.TextLightColor)
	p.drawLine(screen, p.fontFace, p.Target.Description, x, y+swatchSize-4+lineHeight, color.RGBA{200, 200, 210, 255})
}

func (p *InfoPanel) title() string {
	name := p.Target.Name
	if name == "" {
		name = "(unnamed)"
	}
	return name + "  [" + p.Target.Hex.String() + "]"
}

func (p *InfoPanel) drawLine(screen *ebiten.Image, face font.Face, s string, x, y int, c color.Color) {
	if face == nil || s == "" {
		return
	}
	text.Draw(screen, s, face, x, y, c)
}
