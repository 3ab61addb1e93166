// internal/state/map_state.go
package state

import (
	"image"
	"log"

	"go-hexmap-atlas/internal/assets"
	"go-hexmap-atlas/internal/config"
	"go-hexmap-atlas/internal/event"
	"go-hexmap-atlas/internal/ui"
	"go-hexmap-atlas/internal/viewer"
	"go-hexmap-atlas/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
)

// MapState shows one map and highlights the cell under the cursor.
type MapState struct {
	scene      render.Scene
	fonts      *assets.FontManager
	renderer   *viewer.HexRenderer // создаётся в первом Update
	infoPanel  *ui.InfoPanel
	dispatcher *event.Dispatcher
	hovered    *render.Placement
}

// NewMapState prepares the info panel; the renderer needs a running game
// and is built on the first Update.
func NewMapState(scene render.Scene, fonts *assets.FontManager) *MapState {
	infoPanel := ui.NewInfoPanel(fonts.Face(config.TextFontSize), fonts.Face(config.TitleFontSize), config.ScreenWidth, config.ScreenHeight)
	dispatcher := event.NewDispatcher()
	dispatcher.Subscribe(event.CellHovered, infoPanel)
	dispatcher.Subscribe(event.CellLeft, infoPanel)

	return &MapState{
		scene:      scene,
		fonts:      fonts,
		infoPanel:  infoPanel,
		dispatcher: dispatcher,
	}
}

func (m *MapState) Enter() {
	log.Printf("Map view: %d hexagons on a %.0fx%.0f canvas", len(m.scene.Items), m.scene.Width, m.scene.Height)
}

func (m *MapState) Update(deltaTime float64) {
	if m.renderer == nil {
		mapHeight := config.ScreenHeight - config.InfoPanelHeight
		m.renderer = viewer.NewHexRenderer(m.scene, m.fonts, config.ScreenWidth, mapHeight)
	}

	x, y := ebiten.CursorPosition()
	if it, ok := m.renderer.HitTest(image.Pt(x, y)); ok {
		if m.hovered == nil || m.hovered.Key != it.Key {
			m.dispatcher.Dispatch(event.Event{Type: event.CellHovered, Data: it.Hexagon.Cell})
		}
		m.hovered = &it
	} else if m.hovered != nil {
		m.hovered = nil
		m.dispatcher.Dispatch(event.Event{Type: event.CellLeft})
	}
	m.infoPanel.Update()
}

func (m *MapState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	if m.renderer == nil {
		return
	}
	m.renderer.Draw(screen, m.hovered)
	m.infoPanel.Draw(screen)
}

func (m *MapState) Exit() {
	m.hovered = nil
}
